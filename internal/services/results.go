package services

import (
	"context"
	"strings"
	"sync"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// ResultsServiceRepository defines the repository methods needed by ResultsService
type ResultsServiceRepository interface {
	repository.ResultsRepository
	repository.SubmissionRepository
	repository.PlayerRepository
	repository.CandidateRepository
	repository.SettingsRepository
}

// StageLock guards the official stage against pronostic saves running at
// the same time. Reveals and rollbacks hold the write side for the whole
// transition and recompute; saves hold the read side across their stage
// check and write, so the stage a save checked cannot move underneath it.
type StageLock struct {
	sync.RWMutex
}

// NewStageLock creates the lock shared by ResultsService and
// SubmissionService.
func NewStageLock() *StageLock {
	return &StageLock{}
}

// ResultsService owns the official results state machine. Stages move
// forward one reveal at a time (Top 15, Top 5, final ranking) and can be
// rolled back explicitly; every transition recomputes all player scores
// from scratch through the aggregator.
//
// Reveals and rollbacks are admin-only and rare, so they run serialized
// under the stage lock's write side; reads do not take it.
type ResultsService struct {
	log    logger.Logger
	repo   ResultsServiceRepository
	score  ScoreServicer
	stages *StageLock
}

// NewResultsService creates a new ResultsService
func NewResultsService(log logger.Logger, repo ResultsServiceRepository, score ScoreServicer, stages *StageLock) *ResultsService {
	return &ResultsService{log: log, repo: repo, score: score, stages: stages}
}

// RevealResult reports the outcome of a Top 15 or Top 5 reveal.
type RevealResult struct {
	UsersUpdated int `json:"users_updated"`
	BonusWinners int `json:"bonus_winners"`
}

// FinalRevealResult reports the outcome of the final ranking reveal.
type FinalRevealResult struct {
	UsersUpdated      int    `json:"users_updated"`
	GoldenPickWinners int    `json:"golden_pick_winners"`
	Winner            string `json:"winner"`
}

// RollbackResult reports the outcome of a rollback.
type RollbackResult struct {
	UsersUpdated int `json:"users_updated"`
	Stage        int `json:"stage"`
}

// Get returns the current official results record
func (s *ResultsService) Get(ctx context.Context) (*models.OfficialResults, error) {
	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateOfficial(official); err != nil {
		return nil, err
	}
	return official, nil
}

// RevealTop15 publishes the official Top 15 and moves the machine to stage 1.
func (s *ResultsService) RevealTop15(ctx context.Context, names []string) (*RevealResult, error) {
	s.stages.Lock()
	defer s.stages.Unlock()

	if err := s.validateRevealNames(ctx, names, models.Top15Size, "top 15"); err != nil {
		return nil, err
	}

	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return nil, err
	}
	if official.Stage != models.StageEmpty {
		return nil, errors.Preconditionf("cannot reveal top 15 at stage %d", official.Stage)
	}

	official.Stage = models.StageTop15Revealed
	official.Top15 = names
	if err := s.repo.SaveOfficialResults(ctx, official); err != nil {
		return nil, err
	}

	updated, err := s.recomputeAll(ctx)
	if err != nil {
		return nil, err
	}

	winners, err := s.countWinners(ctx, func(sub *models.Submission) bool {
		return WinsBonusTop15(sub, names)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Top 15 revealed", "users_updated", updated, "bonus_winners", winners)
	return &RevealResult{UsersUpdated: updated, BonusWinners: winners}, nil
}

// RevealTop5 publishes the official Top 5 and moves the machine to stage 2.
func (s *ResultsService) RevealTop5(ctx context.Context, names []string) (*RevealResult, error) {
	s.stages.Lock()
	defer s.stages.Unlock()

	if err := s.validateRevealNames(ctx, names, models.Top5Size, "top 5"); err != nil {
		return nil, err
	}

	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return nil, err
	}
	if official.Stage != models.StageTop15Revealed {
		return nil, errors.Preconditionf("cannot reveal top 5 at stage %d", official.Stage)
	}

	official.Stage = models.StageTop5Revealed
	official.Top5 = names
	if err := s.repo.SaveOfficialResults(ctx, official); err != nil {
		return nil, err
	}

	updated, err := s.recomputeAll(ctx)
	if err != nil {
		return nil, err
	}

	winners, err := s.countWinners(ctx, func(sub *models.Submission) bool {
		return WinsBonusTop5(sub, names)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Top 5 revealed", "users_updated", updated, "bonus_winners", winners)
	return &RevealResult{UsersUpdated: updated, BonusWinners: winners}, nil
}

// RevealFinal publishes the official final ranking (index 0 is the winner)
// and moves the machine to its terminal stage 3.
func (s *ResultsService) RevealFinal(ctx context.Context, ranking []string) (*FinalRevealResult, error) {
	s.stages.Lock()
	defer s.stages.Unlock()

	if err := s.validateRevealNames(ctx, ranking, models.FinalRankingSize, "final ranking"); err != nil {
		return nil, err
	}

	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return nil, err
	}
	if official.Stage != models.StageTop5Revealed {
		return nil, errors.Preconditionf("cannot reveal final ranking at stage %d", official.Stage)
	}

	official.Stage = models.StageFinalRevealed
	official.FinalRanking = ranking
	if err := s.repo.SaveOfficialResults(ctx, official); err != nil {
		return nil, err
	}

	updated, err := s.recomputeAll(ctx)
	if err != nil {
		return nil, err
	}

	winner := ranking[0]
	winners, err := s.countWinners(ctx, func(sub *models.Submission) bool {
		return WinsGoldenPick(sub, winner)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Final ranking revealed", "winner", winner, "users_updated", updated, "golden_pick_winners", winners)
	return &FinalRevealResult{UsersUpdated: updated, GoldenPickWinners: winners, Winner: winner}, nil
}

// Rollback retracts every reveal past targetStage and recomputes all
// scores against the retained official content. Rolling back to the
// current or a later stage is rejected.
func (s *ResultsService) Rollback(ctx context.Context, targetStage int) (*RollbackResult, error) {
	s.stages.Lock()
	defer s.stages.Unlock()

	if targetStage < models.StageEmpty || targetStage > models.StageTop5Revealed {
		return nil, errors.InvalidInputf("invalid rollback stage %d", targetStage)
	}

	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return nil, err
	}
	if targetStage >= official.Stage {
		return nil, errors.Preconditionf("cannot roll back from stage %d to stage %d", official.Stage, targetStage)
	}

	official.Stage = targetStage
	if targetStage < models.StageFinalRevealed {
		official.FinalRanking = nil
	}
	if targetStage < models.StageTop5Revealed {
		official.Top5 = nil
	}
	if targetStage < models.StageTop15Revealed {
		official.Top15 = nil
	}
	if err := s.repo.SaveOfficialResults(ctx, official); err != nil {
		return nil, err
	}

	updated, err := s.recomputeAll(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info("Results rolled back", "stage", targetStage, "users_updated", updated)
	return &RollbackResult{UsersUpdated: updated, Stage: targetStage}, nil
}

// Stats returns the counters the admin dashboard polls for. The current
// stage rides along in the same map.
func (s *ResultsService) Stats(ctx context.Context) (map[string]interface{}, error) {
	return s.repo.GetPartyStats(ctx)
}

// validateRevealNames checks cardinality, duplicates, blanks and registry
// membership before anything is written.
func (s *ResultsService) validateRevealNames(ctx context.Context, names []string, want int, what string) error {
	if len(names) != want {
		return errors.Validationf("%s must contain exactly %d candidates, got %d", what, want, len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.Validationf("%s contains a blank candidate name", what)
		}
		if seen[name] {
			return errors.Validationf("%s contains %q twice", what, name)
		}
		seen[name] = true
		exists, err := s.repo.CandidateExists(ctx, name)
		if err != nil {
			return err
		}
		if !exists {
			return errors.Validationf("unknown candidate %q", name)
		}
	}
	return nil
}

// recomputeAll recomputes every player's score. The returned count covers
// players holding a pronostic submission, matching what the admin screen
// reports after a reveal.
func (s *ResultsService) recomputeAll(ctx context.Context) (int, error) {
	official, err := s.repo.GetOfficialResults(ctx)
	if err != nil {
		return 0, err
	}
	if err := validateOfficial(official); err != nil {
		return 0, err
	}

	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, p := range players {
		if _, err := s.score.Recalculate(ctx, p.ID); err != nil {
			return 0, err
		}
		if _, err := s.repo.GetSubmission(ctx, p.ID); err == nil {
			updated++
		} else if err != repository.ErrNotFound {
			return 0, err
		}
	}
	return updated, nil
}

// countWinners counts submissions matching a bet predicate.
func (s *ResultsService) countWinners(ctx context.Context, wins func(*models.Submission) bool) (int, error) {
	subs, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range subs {
		if wins(&subs[i]) {
			count++
		}
	}
	return count, nil
}

// validateOfficial rejects a stored record whose content does not match its
// stage. The state machine never produces such a record; seeing one means
// the store was tampered with, and scoring against it would be silently
// wrong.
func validateOfficial(official *models.OfficialResults) error {
	if official.Stage >= models.StageTop15Revealed && len(official.Top15) != models.Top15Size {
		return errors.Internalf("official results at stage %d with %d top 15 names", official.Stage, len(official.Top15))
	}
	if official.Stage >= models.StageTop5Revealed && len(official.Top5) != models.Top5Size {
		return errors.Internalf("official results at stage %d with %d top 5 names", official.Stage, len(official.Top5))
	}
	if official.Stage >= models.StageFinalRevealed && len(official.FinalRanking) != models.FinalRankingSize {
		return errors.Internalf("official results at stage %d with %d ranked names", official.Stage, len(official.FinalRanking))
	}
	return nil
}
