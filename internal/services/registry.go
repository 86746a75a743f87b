package services

import (
	"context"

	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// RegistryServiceRepository defines the repository methods needed by RegistryService
type RegistryServiceRepository interface {
	repository.CandidateRepository
}

// RegistryService exposes the season's candidate roster. The roster is
// seeded once at startup and read-only afterwards.
type RegistryService struct {
	log  logger.Logger
	repo RegistryServiceRepository
}

// NewRegistryService creates a new RegistryService
func NewRegistryService(log logger.Logger, repo RegistryServiceRepository) *RegistryService {
	return &RegistryService{log: log, repo: repo}
}

// List returns the roster in display order
func (s *RegistryService) List(ctx context.Context) ([]models.Candidate, error) {
	return s.repo.ListCandidates(ctx)
}

// Seed inserts any roster entries not stored yet and reports how many were
// added. Safe to call on every startup.
func (s *RegistryService) Seed(ctx context.Context, roster []models.Candidate) (int, error) {
	if len(roster) == 0 {
		return 0, nil
	}
	inserted, err := s.repo.SeedCandidates(ctx, roster)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		s.log.Info("Candidate roster seeded", "inserted", inserted)
	}
	return inserted, nil
}
