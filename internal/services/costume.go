package services

import (
	"context"
	"strings"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// CostumeServiceRepository defines the repository methods needed by CostumeService
type CostumeServiceRepository interface {
	repository.CostumeRepository
	repository.PlayerRepository
}

// CostumeService runs the costume contest among the party guests. Each
// player enters once, votes once (never for themselves), and earns
// PointsPerCostumeVote per vote received. Re-voting moves the vote and
// rescores both affected entrants.
type CostumeService struct {
	log   logger.Logger
	repo  CostumeServiceRepository
	score ScoreServicer
}

// NewCostumeService creates a new CostumeService
func NewCostumeService(log logger.Logger, repo CostumeServiceRepository, score ScoreServicer) *CostumeService {
	return &CostumeService{log: log, repo: repo, score: score}
}

// Enter creates or renames a player's contest entry
func (s *CostumeService) Enter(ctx context.Context, playerID int, title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.Validation("costume title is required")
	}
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFoundf("player %d not found", playerID)
		}
		return err
	}
	if err := s.repo.UpsertCostumeEntry(ctx, playerID, strings.TrimSpace(title)); err != nil {
		return err
	}
	s.log.Info("Costume entry saved", "player_id", playerID)
	return nil
}

// List returns all entries with their vote counts, best first
func (s *CostumeService) List(ctx context.Context) ([]models.CostumeEntry, error) {
	return s.repo.ListCostumeEntries(ctx)
}

// Vote records or moves a player's single costume vote and rescores every
// entrant whose vote count changed.
func (s *CostumeService) Vote(ctx context.Context, voterID, entryPlayerID int) error {
	if voterID == entryPlayerID {
		return errors.Validation("cannot vote for your own costume")
	}

	entries, err := s.repo.ListCostumeEntries(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		if e.PlayerID == entryPlayerID {
			found = true
			break
		}
	}
	if !found {
		return errors.NotFoundf("no costume entry for player %d", entryPlayerID)
	}

	previous, err := s.repo.GetCostumeVote(ctx, voterID)
	if err != nil && err != repository.ErrNotFound {
		return err
	}
	if previous == entryPlayerID {
		return nil
	}

	if err := s.repo.SaveCostumeVote(ctx, voterID, entryPlayerID); err != nil {
		return err
	}

	if _, err := s.score.Recalculate(ctx, entryPlayerID); err != nil {
		return err
	}
	if previous != 0 {
		if _, err := s.score.Recalculate(ctx, previous); err != nil {
			return err
		}
	}

	s.log.Info("Costume vote recorded", "voter_id", voterID, "entry_player_id", entryPlayerID)
	return nil
}
