package services

import (
	"context"
	"sort"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// Component names accepted by ByComponent.
const (
	ComponentPrediction = "prediction"
	ComponentQuiz       = "quiz"
	ComponentTrivia     = "trivia"
	ComponentChallenge  = "challenge"
	ComponentCostume    = "costume"
)

// LeaderboardServiceRepository defines the repository methods needed by LeaderboardService
type LeaderboardServiceRepository interface {
	repository.ScoreRepository
}

// LeaderboardService is a read-only projection over the score rows.
// Ordering is deterministic: total (or component) descending, pseudo
// ascending on ties.
type LeaderboardService struct {
	log  logger.Logger
	repo LeaderboardServiceRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(log logger.Logger, repo LeaderboardServiceRepository) *LeaderboardService {
	return &LeaderboardService{log: log, repo: repo}
}

// Overall returns the scoreboard ordered by total score
func (s *LeaderboardService) Overall(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := s.repo.ListScoreboard(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// ByComponent returns the scoreboard ordered by a single component score
func (s *LeaderboardService) ByComponent(ctx context.Context, component string) ([]models.LeaderboardEntry, error) {
	value, err := componentValue(component)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListScoreboard(ctx)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by total desc, pseudo asc; a stable sort on the
	// component keeps pseudo asc as the tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := value(&entries[i]), value(&entries[j])
		if vi != vj {
			return vi > vj
		}
		return entries[i].Pseudo < entries[j].Pseudo
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func componentValue(component string) (func(*models.LeaderboardEntry) float64, error) {
	switch component {
	case ComponentPrediction:
		return func(e *models.LeaderboardEntry) float64 { return float64(e.PredictionScore) }, nil
	case ComponentQuiz:
		return func(e *models.LeaderboardEntry) float64 { return float64(e.QuizScore) }, nil
	case ComponentTrivia:
		return func(e *models.LeaderboardEntry) float64 { return e.TriviaScore }, nil
	case ComponentChallenge:
		return func(e *models.LeaderboardEntry) float64 { return float64(e.ChallengeScore) }, nil
	case ComponentCostume:
		return func(e *models.LeaderboardEntry) float64 { return float64(e.CostumeScore) }, nil
	default:
		return nil, errors.InvalidInputf("unknown score component %q", component)
	}
}
