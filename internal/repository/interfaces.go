package repository

import (
	"context"

	"github.com/spacieba/miss-france/internal/models"
)

// PlayerRepository defines player account data operations
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, pseudo string) (int64, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	GetPlayerByPseudo(ctx context.Context, pseudo string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
}

// CandidateRepository defines roster data operations
type CandidateRepository interface {
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	CandidateExists(ctx context.Context, name string) (bool, error)
	SeedCandidates(ctx context.Context, roster []models.Candidate) (int, error)
	CountCandidates(ctx context.Context) (int, error)
}

// SubmissionRepository defines pronostic data operations. Each upsert writes
// its whole field group in one statement so a failed save never leaves a
// partial record.
type SubmissionRepository interface {
	GetSubmission(ctx context.Context, playerID int) (*models.Submission, error)
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	UpsertTop15(ctx context.Context, playerID int, top15 []string, bonusTop15, goldenPick string) error
	UpsertTop5(ctx context.Context, playerID int, top5 []string, bonusTop5 string) error
	UpsertFinalRanking(ctx context.Context, playerID int, ranking []string) error
}

// ResultsRepository stores the single official results record
type ResultsRepository interface {
	GetOfficialResults(ctx context.Context) (*models.OfficialResults, error)
	SaveOfficialResults(ctx context.Context, results *models.OfficialResults) error
}

// ScoreRepository defines score row operations. UpdateScore persists the
// components and their sum in a single statement; nothing else writes
// total_score.
type ScoreRepository interface {
	GetScore(ctx context.Context, playerID int) (*models.Score, error)
	UpdateScore(ctx context.Context, playerID, prediction, quiz int, trivia float64, challenge, costume int) error
	ListScoreboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// QuizRepository defines quiz answer log operations
type QuizRepository interface {
	SaveQuizAnswer(ctx context.Context, answer models.QuizAnswer) error
	ListQuizAnswers(ctx context.Context, playerID int) ([]models.QuizAnswer, error)
	SumQuizPoints(ctx context.Context, playerID int) (int, error)
}

// TriviaRepository defines trivia answer log operations
type TriviaRepository interface {
	HasTriviaCategory(ctx context.Context, playerID int, category string) (bool, error)
	SaveTriviaAnswers(ctx context.Context, answers []models.TriviaAnswer) error
	ListTriviaAnswers(ctx context.Context, playerID int) ([]models.TriviaAnswer, error)
	SumTriviaPoints(ctx context.Context, playerID int) (float64, error)
}

// ChallengeRepository defines challenge completion log operations
type ChallengeRepository interface {
	SaveChallengeCompletion(ctx context.Context, completion models.ChallengeCompletion) error
	ListCompletedChallenges(ctx context.Context, playerID int) ([]int, error)
	SumChallengePoints(ctx context.Context, playerID int) (int, error)
}

// CostumeRepository defines costume contest data operations
type CostumeRepository interface {
	UpsertCostumeEntry(ctx context.Context, playerID int, title string) error
	ListCostumeEntries(ctx context.Context) ([]models.CostumeEntry, error)
	SaveCostumeVote(ctx context.Context, voterID, entryPlayerID int) error
	GetCostumeVote(ctx context.Context, voterID int) (int, error)
	CountCostumeVotes(ctx context.Context, playerID int) (int, error)
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetPartyStats(ctx context.Context) (map[string]interface{}, error)
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	PlayerRepository
	CandidateRepository
	SubmissionRepository
	ResultsRepository
	ScoreRepository
	QuizRepository
	TriviaRepository
	ChallengeRepository
	CostumeRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
