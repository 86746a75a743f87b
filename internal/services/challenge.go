package services

import (
	"context"
	"math/rand"

	"github.com/spacieba/miss-france/internal/content"
	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// ChallengeServiceRepository defines the repository methods needed by ChallengeService
type ChallengeServiceRepository interface {
	repository.ChallengeRepository
}

// ChallengeService hands out party challenges. Next picks a random
// not-yet-completed challenge; each challenge can be completed once.
type ChallengeService struct {
	log   logger.Logger
	repo  ChallengeServiceRepository
	score ScoreServicer
}

// NewChallengeService creates a new ChallengeService
func NewChallengeService(log logger.Logger, repo ChallengeServiceRepository, score ScoreServicer) *ChallengeService {
	return &ChallengeService{log: log, repo: repo, score: score}
}

// ChallengeResult is what a player sees after completing a challenge.
type ChallengeResult struct {
	ChallengeID int `json:"challenge_id"`
	Points      int `json:"points"`
}

// Next returns a random challenge the player has not completed yet, or nil
// when all are done.
func (s *ChallengeService) Next(ctx context.Context, playerID int) (*content.Challenge, error) {
	completed, err := s.repo.ListCompletedChallenges(ctx, playerID)
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	var available []content.Challenge
	for _, c := range content.Challenges {
		if !done[c.ID] {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}
	pick := available[rand.Intn(len(available))]
	return &pick, nil
}

// Complete records a finished challenge and recomputes the player's score
func (s *ChallengeService) Complete(ctx context.Context, playerID, challengeID int) (*ChallengeResult, error) {
	challenge, ok := content.FindChallenge(challengeID)
	if !ok {
		return nil, errors.NotFoundf("challenge %d not found", challengeID)
	}

	err := s.repo.SaveChallengeCompletion(ctx, models.ChallengeCompletion{
		PlayerID:    playerID,
		ChallengeID: challengeID,
		Points:      challenge.Points,
	})
	if err == repository.ErrDuplicate {
		return nil, errors.Conflictf("challenge %d already completed", challengeID)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.score.Recalculate(ctx, playerID); err != nil {
		return nil, err
	}

	s.log.Info("Challenge completed", "player_id", playerID, "challenge_id", challengeID, "points", challenge.Points)
	return &ChallengeResult{ChallengeID: challengeID, Points: challenge.Points}, nil
}

// Completed returns the IDs of a player's completed challenges
func (s *ChallengeService) Completed(ctx context.Context, playerID int) ([]int, error) {
	return s.repo.ListCompletedChallenges(ctx, playerID)
}
