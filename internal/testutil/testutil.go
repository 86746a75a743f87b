package testutil

import (
	"context"
	"testing"

	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// NewTestRepository creates a new in-memory repository for testing.
// Each call creates a fresh database with all migrations applied.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

// Roster returns a 20-candidate roster large enough for Top 15 picks.
func Roster() []models.Candidate {
	names := []string{
		"Île-de-France", "Provence", "Alsace", "Bretagne", "Normandie",
		"Aquitaine", "Corse", "Lorraine", "Picardie", "Languedoc",
		"Tahiti", "Guadeloupe", "Martinique", "Réunion", "Franche-Comté",
		"Limousin", "Auvergne", "Roussillon", "Champagne", "Bourgogne",
	}
	roster := make([]models.Candidate, 0, len(names))
	for i, name := range names {
		roster = append(roster, models.Candidate{Name: "Miss " + name, DisplayOrder: i + 1})
	}
	return roster
}

// SeedRoster creates the test roster in the repository.
func SeedRoster(t *testing.T, repo *repository.Repository) []models.Candidate {
	t.Helper()

	roster := Roster()
	if _, err := repo.SeedCandidates(context.Background(), roster); err != nil {
		t.Fatalf("failed to seed candidates: %v", err)
	}
	return roster
}

// CreatePlayer registers a player and returns the new ID.
func CreatePlayer(t *testing.T, repo *repository.Repository, pseudo string) int {
	t.Helper()

	id, err := repo.CreatePlayer(context.Background(), pseudo)
	if err != nil {
		t.Fatalf("failed to create player %q: %v", pseudo, err)
	}
	return int(id)
}
