package models

// Reveal stages for the official results state machine.
const (
	StageEmpty         = 0
	StageTop15Revealed = 1
	StageTop5Revealed  = 2
	StageFinalRevealed = 3
)

// Cardinalities required of submissions and official reveals.
const (
	Top15Size        = 15
	Top5Size         = 5
	FinalRankingSize = 5
)

// Candidate is one contestant in the season's roster. Candidates are seeded
// once at startup and never mutated afterwards; they are referenced by name
// everywhere else.
type Candidate struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PhotoURL     string `json:"photo_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Player is a registered party guest identified by pseudo.
type Player struct {
	ID        int    `json:"id"`
	Pseudo    string `json:"pseudo"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Submission holds one player's pronostics. Fields are empty until the
// player saves them, and become immutable once the matching stage is
// revealed.
type Submission struct {
	PlayerID     int      `json:"player_id"`
	Top15        []string `json:"top15"`
	BonusTop15   string   `json:"bonus_top15"`
	GoldenPick   string   `json:"golden_pick"`
	Top5         []string `json:"top5"`
	BonusTop5    string   `json:"bonus_top5"`
	FinalRanking []string `json:"final_ranking"`
	SubmittedAt  string   `json:"submitted_at,omitempty"`
}

// OfficialResults is the single global record of what the admin has revealed
// so far. Content for stages beyond Stage is always empty, never stale.
type OfficialResults struct {
	Stage        int      `json:"stage"`
	Top15        []string `json:"official_top15,omitempty"`
	Top5         []string `json:"official_top5,omitempty"`
	FinalRanking []string `json:"official_final_ranking,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// Winner returns the overall winner's name, or "" before the final reveal.
func (r *OfficialResults) Winner() string {
	if r.Stage < StageFinalRevealed || len(r.FinalRanking) == 0 {
		return ""
	}
	return r.FinalRanking[0]
}

// Score is one player's cached component scores. Total is always the sum of
// the five components; it is recomputed with every component write and never
// updated independently.
type Score struct {
	PlayerID        int     `json:"player_id"`
	PredictionScore int     `json:"prediction_score"`
	QuizScore       int     `json:"quiz_score"`
	TriviaScore     float64 `json:"trivia_score"`
	ChallengeScore  int     `json:"challenge_score"`
	CostumeScore    int     `json:"costume_score"`
	TotalScore      float64 `json:"total_score"`
}

// LeaderboardEntry is one row of the projected scoreboard.
type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	Pseudo          string  `json:"pseudo"`
	PredictionScore int     `json:"prediction_score"`
	QuizScore       int     `json:"quiz_score"`
	TriviaScore     float64 `json:"trivia_score"`
	ChallengeScore  int     `json:"challenge_score"`
	CostumeScore    int     `json:"costume_score"`
	TotalScore      float64 `json:"total_score"`
}

// QuizAnswer records a player's answer to one quiz question.
type QuizAnswer struct {
	PlayerID   int  `json:"player_id"`
	QuestionID int  `json:"question_id"`
	Answer     int  `json:"answer"`
	Correct    bool `json:"correct"`
	Points     int  `json:"points"`
}

// TriviaAnswer records one scored answer inside a trivia category
// submission.
type TriviaAnswer struct {
	PlayerID   int     `json:"player_id"`
	Category   string  `json:"category"`
	QuestionID int     `json:"question_id"`
	Answer     int     `json:"answer"`
	Correct    bool    `json:"correct"`
	Points     float64 `json:"points"`
}

// ChallengeCompletion records a completed party challenge.
type ChallengeCompletion struct {
	PlayerID    int `json:"player_id"`
	ChallengeID int `json:"challenge_id"`
	Points      int `json:"points"`
}

// CostumeEntry is a player's entry in the costume contest.
type CostumeEntry struct {
	PlayerID  int    `json:"player_id"`
	Pseudo    string `json:"pseudo"`
	Title     string `json:"title"`
	VoteCount int    `json:"vote_count"`
}
