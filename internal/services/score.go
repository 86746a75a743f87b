package services

import (
	"context"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// Each vote a costume entry receives is worth this many points.
const PointsPerCostumeVote = 5

// Projector mirrors the scoreboard to an external read cache (e.g. a Redis
// sorted set a projector screen polls). Publishing is best-effort.
type Projector interface {
	Publish(ctx context.Context, entries []models.LeaderboardEntry) error
}

// ScoreServiceRepository defines the repository methods needed by ScoreService
type ScoreServiceRepository interface {
	repository.ScoreRepository
	repository.SubmissionRepository
	repository.ResultsRepository
	repository.QuizRepository
	repository.TriviaRepository
	repository.ChallengeRepository
	repository.CostumeRepository
}

// ScoreService is the category score aggregator. It is the only write path
// for score rows: every component score is re-read from its source of truth
// and persisted together with the total in a single statement, so the total
// can never drift from the components.
type ScoreService struct {
	log       logger.Logger
	repo      ScoreServiceRepository
	projector Projector
}

// NewScoreService creates a new ScoreService
func NewScoreService(log logger.Logger, repo ScoreServiceRepository) *ScoreService {
	return &ScoreService{log: log, repo: repo}
}

// SetProjector attaches an optional scoreboard projector
func (s *ScoreService) SetProjector(p Projector) {
	s.projector = p
}

// GetScore returns a player's current score row
func (s *ScoreService) GetScore(ctx context.Context, playerID int) (*models.Score, error) {
	score, err := s.repo.GetScore(ctx, playerID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("no score for player %d", playerID)
	}
	return score, err
}

// Recalculate recomputes every component score for one player from the raw
// answer logs and the current official results, and persists the new row.
func (s *ScoreService) Recalculate(ctx context.Context, playerID int) (*models.Score, error) {
	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.GetSubmission(ctx, playerID)
	if err != nil && err != repository.ErrNotFound {
		return nil, err
	}
	prediction := ScorePrediction(sub, official)

	quiz, err := s.repo.SumQuizPoints(ctx, playerID)
	if err != nil {
		return nil, err
	}
	trivia, err := s.repo.SumTriviaPoints(ctx, playerID)
	if err != nil {
		return nil, err
	}
	challenge, err := s.repo.SumChallengePoints(ctx, playerID)
	if err != nil {
		return nil, err
	}
	votes, err := s.repo.CountCostumeVotes(ctx, playerID)
	if err != nil {
		return nil, err
	}
	costume := votes * PointsPerCostumeVote

	if err := s.repo.UpdateScore(ctx, playerID, prediction, quiz, trivia, challenge, costume); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("no score row for player %d", playerID)
		}
		return nil, err
	}

	s.publish(ctx)

	return s.repo.GetScore(ctx, playerID)
}

// publish mirrors the current scoreboard to the projector, if one is
// attached. Failures are logged, never surfaced: the cache is a read
// optimization, SQLite stays the source of truth.
func (s *ScoreService) publish(ctx context.Context) {
	if s.projector == nil {
		return
	}
	entries, err := s.repo.ListScoreboard(ctx)
	if err != nil {
		s.log.Warn("Failed to read scoreboard for projection", "error", err)
		return
	}
	if err := s.projector.Publish(ctx, entries); err != nil {
		s.log.Warn("Failed to publish scoreboard", "error", err)
	}
}
