package handlers

// RegisterRequest represents a request to register a new player
type RegisterRequest struct {
	Pseudo string `json:"pseudo"`
}

// LoginRequest represents a player login request
type LoginRequest struct {
	Pseudo string `json:"pseudo"`
}

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// Top15Request represents a request to save a Top 15 pronostic
type Top15Request struct {
	Top15      []string `json:"top15"`
	BonusTop15 string   `json:"bonus_top15"`
	GoldenPick string   `json:"golden_pick"`
}

// Top5Request represents a request to save a Top 5 pronostic
type Top5Request struct {
	Top5      []string `json:"top5"`
	BonusTop5 string   `json:"bonus_top5"`
}

// FinalRankingRequest represents a request to save a final ranking pronostic
type FinalRankingRequest struct {
	Ranking []string `json:"ranking"`
}

// RevealRequest represents an admin request to reveal a results stage
type RevealRequest struct {
	Names []string `json:"names"`
}

// RollbackRequest represents an admin request to roll results back
type RollbackRequest struct {
	Stage int `json:"stage"`
}

// QuizAnswerRequest represents a quiz answer submission
type QuizAnswerRequest struct {
	QuestionID int `json:"question_id"`
	Answer     int `json:"answer"`
}

// TriviaSubmitRequest represents a whole-category trivia submission.
// Answers maps question ID to the chosen option index.
type TriviaSubmitRequest struct {
	Answers map[int]int `json:"answers"`
}

// CostumeEnterRequest represents a costume contest entry
type CostumeEnterRequest struct {
	Title string `json:"title"`
}

// CostumeVoteRequest represents a costume contest vote
type CostumeVoteRequest struct {
	PlayerID int `json:"player_id"`
}
