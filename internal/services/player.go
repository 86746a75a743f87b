package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// PlayerServiceRepository defines the repository methods needed by PlayerService
type PlayerServiceRepository interface {
	repository.PlayerRepository
	repository.ScoreRepository
	repository.SettingsRepository
}

// PlayerService handles guest accounts. Registration is pseudo-only, party
// style; a zero score row is created with the account so the player shows
// up on the leaderboard immediately.
type PlayerService struct {
	log  logger.Logger
	repo PlayerServiceRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(log logger.Logger, repo PlayerServiceRepository) *PlayerService {
	return &PlayerService{log: log, repo: repo}
}

// PlayerInfo bundles a player with their current score.
type PlayerInfo struct {
	Player *models.Player `json:"player"`
	Score  *models.Score  `json:"score"`
}

// Register creates a new player account
func (s *PlayerService) Register(ctx context.Context, pseudo string) (*models.Player, error) {
	pseudo = strings.TrimSpace(pseudo)
	if pseudo == "" {
		return nil, errors.Validation("pseudo is required")
	}

	id, err := s.repo.CreatePlayer(ctx, pseudo)
	if err == repository.ErrDuplicate {
		return nil, errors.Conflictf("pseudo %q is already taken", pseudo)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Player registered", "player_id", id, "pseudo", pseudo)
	return &models.Player{ID: int(id), Pseudo: pseudo}, nil
}

// Login finds an existing player by pseudo
func (s *PlayerService) Login(ctx context.Context, pseudo string) (*models.Player, error) {
	pseudo = strings.TrimSpace(pseudo)
	if pseudo == "" {
		return nil, errors.Validation("pseudo is required")
	}

	player, err := s.repo.GetPlayerByPseudo(ctx, pseudo)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("player %q not found", pseudo)
	}
	if err != nil {
		return nil, err
	}
	return player, nil
}

// Me returns a player's account and current score
func (s *PlayerService) Me(ctx context.Context, playerID int) (*PlayerInfo, error) {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("player %d not found", playerID)
	}
	if err != nil {
		return nil, err
	}
	score, err := s.repo.GetScore(ctx, playerID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("no score for player %d", playerID)
	}
	if err != nil {
		return nil, err
	}
	return &PlayerInfo{Player: player, Score: score}, nil
}

// JoinQR generates a QR code PNG pointing at the join page, for the
// screen by the front door.
func (s *PlayerService) JoinQR(ctx context.Context) ([]byte, error) {
	baseURL, err := s.repo.GetSetting(ctx, "base_url")
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, errors.Precondition("base_url not configured")
	}
	joinURL := fmt.Sprintf("%s/join", strings.TrimSuffix(baseURL, "/"))
	return qrcode.Encode(joinURL, qrcode.Medium, 256)
}
