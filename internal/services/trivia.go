package services

import (
	"context"

	"github.com/spacieba/miss-france/internal/content"
	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// TriviaServiceRepository defines the repository methods needed by TriviaService
type TriviaServiceRepository interface {
	repository.TriviaRepository
}

// TriviaService scores the culture trivia. A whole category is submitted at
// once and cannot be resubmitted; point values may be fractional.
type TriviaService struct {
	log   logger.Logger
	repo  TriviaServiceRepository
	score ScoreServicer
}

// NewTriviaService creates a new TriviaService
func NewTriviaService(log logger.Logger, repo TriviaServiceRepository, score ScoreServicer) *TriviaService {
	return &TriviaService{log: log, repo: repo, score: score}
}

// TriviaCategoryStatus is one category with its submission state for a
// player.
type TriviaCategoryStatus struct {
	content.TriviaCategory
	Submitted bool `json:"submitted"`
}

// TriviaResult is what a player sees after submitting a category.
type TriviaResult struct {
	Category       string  `json:"category"`
	CorrectAnswers int     `json:"correct_answers"`
	Points         float64 `json:"points"`
}

// Categories returns the trivia bank annotated with the player's progress
func (s *TriviaService) Categories(ctx context.Context, playerID int) ([]TriviaCategoryStatus, error) {
	statuses := make([]TriviaCategoryStatus, 0, len(content.TriviaCategories))
	for _, cat := range content.TriviaCategories {
		submitted, err := s.repo.HasTriviaCategory(ctx, playerID, cat.Name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, TriviaCategoryStatus{TriviaCategory: cat, Submitted: submitted})
	}
	return statuses, nil
}

// Submit scores a whole category at once. Answers maps question ID to the
// chosen answer index; every question of the category must be answered.
func (s *TriviaService) Submit(ctx context.Context, playerID int, category string, answers map[int]int) (*TriviaResult, error) {
	cat, ok := content.FindTriviaCategory(category)
	if !ok {
		return nil, errors.NotFoundf("trivia category %q not found", category)
	}

	submitted, err := s.repo.HasTriviaCategory(ctx, playerID, category)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, errors.Conflictf("category %q already submitted", category)
	}

	if len(answers) != len(cat.Questions) {
		return nil, errors.Validationf("category %q needs %d answers, got %d", category, len(cat.Questions), len(answers))
	}

	result := &TriviaResult{Category: category}
	rows := make([]models.TriviaAnswer, 0, len(cat.Questions))
	for _, q := range cat.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			return nil, errors.Validationf("missing answer for question %d", q.ID)
		}
		if answer < 0 || answer >= len(q.Answers) {
			return nil, errors.Validationf("answer index %d out of range for question %d", answer, q.ID)
		}
		correct := answer == q.Correct
		points := 0.0
		if correct {
			points = q.Points
			result.CorrectAnswers++
			result.Points += q.Points
		}
		rows = append(rows, models.TriviaAnswer{
			PlayerID:   playerID,
			Category:   category,
			QuestionID: q.ID,
			Answer:     answer,
			Correct:    correct,
			Points:     points,
		})
	}

	if err := s.repo.SaveTriviaAnswers(ctx, rows); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.Conflictf("category %q already submitted", category)
		}
		return nil, err
	}

	if _, err := s.score.Recalculate(ctx, playerID); err != nil {
		return nil, err
	}

	s.log.Info("Trivia category scored", "player_id", playerID, "category", category, "points", result.Points)
	return result, nil
}
