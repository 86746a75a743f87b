package services

import (
	"context"

	"github.com/spacieba/miss-france/internal/content"
	"github.com/spacieba/miss-france/internal/models"
)

// PlayerServicer defines the interface for player account operations
type PlayerServicer interface {
	Register(ctx context.Context, pseudo string) (*models.Player, error)
	Login(ctx context.Context, pseudo string) (*models.Player, error)
	Me(ctx context.Context, playerID int) (*PlayerInfo, error)
	JoinQR(ctx context.Context) ([]byte, error)
}

// RegistryServicer defines the interface for candidate roster operations
type RegistryServicer interface {
	List(ctx context.Context) ([]models.Candidate, error)
	Seed(ctx context.Context, roster []models.Candidate) (int, error)
}

// SubmissionServicer defines the interface for pronostic operations
type SubmissionServicer interface {
	Get(ctx context.Context, playerID int) (*models.Submission, error)
	SaveTop15(ctx context.Context, playerID int, top15 []string, bonusTop15, goldenPick string) error
	SaveTop5(ctx context.Context, playerID int, top5 []string, bonusTop5 string) error
	SaveFinalRanking(ctx context.Context, playerID int, ranking []string) error
}

// ResultsServicer defines the interface for official results operations
type ResultsServicer interface {
	Get(ctx context.Context) (*models.OfficialResults, error)
	RevealTop15(ctx context.Context, names []string) (*RevealResult, error)
	RevealTop5(ctx context.Context, names []string) (*RevealResult, error)
	RevealFinal(ctx context.Context, ranking []string) (*FinalRevealResult, error)
	Rollback(ctx context.Context, targetStage int) (*RollbackResult, error)
	Stats(ctx context.Context) (map[string]interface{}, error)
}

// ScoreServicer defines the interface for score aggregation operations
type ScoreServicer interface {
	GetScore(ctx context.Context, playerID int) (*models.Score, error)
	Recalculate(ctx context.Context, playerID int) (*models.Score, error)
	SetProjector(p Projector)
}

// QuizServicer defines the interface for quiz operations
type QuizServicer interface {
	Questions() []content.QuizQuestion
	Answer(ctx context.Context, playerID, questionID, answer int) (*QuizAnswerResult, error)
	Summary(ctx context.Context, playerID int) (*QuizSummary, error)
}

// TriviaServicer defines the interface for trivia operations
type TriviaServicer interface {
	Categories(ctx context.Context, playerID int) ([]TriviaCategoryStatus, error)
	Submit(ctx context.Context, playerID int, category string, answers map[int]int) (*TriviaResult, error)
}

// ChallengeServicer defines the interface for party challenge operations
type ChallengeServicer interface {
	Next(ctx context.Context, playerID int) (*content.Challenge, error)
	Complete(ctx context.Context, playerID, challengeID int) (*ChallengeResult, error)
	Completed(ctx context.Context, playerID int) ([]int, error)
}

// CostumeServicer defines the interface for costume contest operations
type CostumeServicer interface {
	Enter(ctx context.Context, playerID int, title string) error
	List(ctx context.Context) ([]models.CostumeEntry, error)
	Vote(ctx context.Context, voterID, entryPlayerID int) error
}

// LeaderboardServicer defines the interface for leaderboard operations
type LeaderboardServicer interface {
	Overall(ctx context.Context) ([]models.LeaderboardEntry, error)
	ByComponent(ctx context.Context, component string) ([]models.LeaderboardEntry, error)
}

// Ensure concrete types implement interfaces
var (
	_ PlayerServicer      = (*PlayerService)(nil)
	_ RegistryServicer    = (*RegistryService)(nil)
	_ SubmissionServicer  = (*SubmissionService)(nil)
	_ ResultsServicer     = (*ResultsService)(nil)
	_ ScoreServicer       = (*ScoreService)(nil)
	_ QuizServicer        = (*QuizService)(nil)
	_ TriviaServicer      = (*TriviaService)(nil)
	_ ChallengeServicer   = (*ChallengeService)(nil)
	_ CostumeServicer     = (*CostumeService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
)
