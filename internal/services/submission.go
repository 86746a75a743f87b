package services

import (
	"context"
	"strings"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// SubmissionServiceRepository defines the repository methods needed by SubmissionService
type SubmissionServiceRepository interface {
	repository.SubmissionRepository
	repository.ResultsRepository
	repository.CandidateRepository
	repository.PlayerRepository
}

// SubmissionService handles pronostic saves and enforces the stage locks:
// each field group becomes immutable the moment the matching official stage
// is revealed. Everything is validated before anything is written. Saves
// run under the read side of the shared stage lock so a reveal cannot
// commit between the stage check and the write.
type SubmissionService struct {
	log    logger.Logger
	repo   SubmissionServiceRepository
	stages *StageLock
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(log logger.Logger, repo SubmissionServiceRepository, stages *StageLock) *SubmissionService {
	return &SubmissionService{log: log, repo: repo, stages: stages}
}

// Get returns a player's pronostics, or nil if nothing was saved yet.
func (s *SubmissionService) Get(ctx context.Context, playerID int) (*models.Submission, error) {
	sub, err := s.repo.GetSubmission(ctx, playerID)
	if err == repository.ErrNotFound {
		return nil, nil
	}
	return sub, err
}

// SaveTop15 stores a player's Top 15 picks together with the bonus and
// golden picks. Locked once the official Top 15 is out.
func (s *SubmissionService) SaveTop15(ctx context.Context, playerID int, top15 []string, bonusTop15, goldenPick string) error {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return err
	}
	s.stages.RLock()
	defer s.stages.RUnlock()

	if err := s.requireStageBelow(ctx, models.StageTop15Revealed, "top 15 pronostics"); err != nil {
		return err
	}
	if err := s.validateNameList(ctx, top15, models.Top15Size, "top15"); err != nil {
		return err
	}
	if err := s.validateOptionalPick(ctx, bonusTop15, "bonus_top15"); err != nil {
		return err
	}
	if err := s.validateOptionalPick(ctx, goldenPick, "golden_pick"); err != nil {
		return err
	}

	if err := s.repo.UpsertTop15(ctx, playerID, top15, bonusTop15, goldenPick); err != nil {
		return err
	}
	s.log.Info("Top 15 pronostic saved", "player_id", playerID)
	return nil
}

// SaveTop5 stores a player's Top 5 picks together with the bonus pick.
// Allowed before the official Top 15 is out; locked once the official
// Top 5 is revealed.
func (s *SubmissionService) SaveTop5(ctx context.Context, playerID int, top5 []string, bonusTop5 string) error {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return err
	}
	s.stages.RLock()
	defer s.stages.RUnlock()

	if err := s.requireStageBelow(ctx, models.StageTop5Revealed, "top 5 pronostics"); err != nil {
		return err
	}
	if err := s.validateNameList(ctx, top5, models.Top5Size, "top5"); err != nil {
		return err
	}
	if err := s.validateOptionalPick(ctx, bonusTop5, "bonus_top5"); err != nil {
		return err
	}

	if err := s.repo.UpsertTop5(ctx, playerID, top5, bonusTop5); err != nil {
		return err
	}
	s.log.Info("Top 5 pronostic saved", "player_id", playerID)
	return nil
}

// SaveFinalRanking stores a player's predicted podium order. Locked once
// the official final ranking is revealed.
func (s *SubmissionService) SaveFinalRanking(ctx context.Context, playerID int, ranking []string) error {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return err
	}
	s.stages.RLock()
	defer s.stages.RUnlock()

	if err := s.requireStageBelow(ctx, models.StageFinalRevealed, "final ranking pronostic"); err != nil {
		return err
	}
	if err := s.validateNameList(ctx, ranking, models.FinalRankingSize, "final_ranking"); err != nil {
		return err
	}

	if err := s.repo.UpsertFinalRanking(ctx, playerID, ranking); err != nil {
		return err
	}
	s.log.Info("Final ranking pronostic saved", "player_id", playerID)
	return nil
}

func (s *SubmissionService) requirePlayer(ctx context.Context, playerID int) error {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFoundf("player %d not found", playerID)
		}
		return err
	}
	return nil
}

func (s *SubmissionService) requireStageBelow(ctx context.Context, lockStage int, what string) error {
	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return err
	}
	if official.Stage >= lockStage {
		return errors.Lockedf("%s are locked: official results already revealed", what)
	}
	return nil
}

// validateNameList checks cardinality, blanks, duplicates and registry
// membership.
func (s *SubmissionService) validateNameList(ctx context.Context, names []string, want int, field string) error {
	if len(names) != want {
		return errors.Validationf("%s must contain exactly %d candidates, got %d", field, want, len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.Validationf("%s contains a blank candidate name", field)
		}
		if seen[name] {
			return errors.Validationf("%s contains %q twice", field, name)
		}
		seen[name] = true
		if err := s.requireCandidate(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// validateOptionalPick accepts an empty pick; a non-empty one must be a
// registered candidate.
func (s *SubmissionService) validateOptionalPick(ctx context.Context, name, field string) error {
	if name == "" {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		return errors.Validationf("%s is blank", field)
	}
	return s.requireCandidate(ctx, name)
}

func (s *SubmissionService) requireCandidate(ctx context.Context, name string) error {
	exists, err := s.repo.CandidateExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Validationf("unknown candidate %q", name)
	}
	return nil
}
