package services

import (
	"context"

	"github.com/spacieba/miss-france/internal/content"
	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/repository"
)

// QuizServiceRepository defines the repository methods needed by QuizService
type QuizServiceRepository interface {
	repository.QuizRepository
}

// QuizService scores the pageant quiz. Each question can be answered once;
// a correct answer is worth the question's point value.
type QuizService struct {
	log   logger.Logger
	repo  QuizServiceRepository
	score ScoreServicer
}

// NewQuizService creates a new QuizService
func NewQuizService(log logger.Logger, repo QuizServiceRepository, score ScoreServicer) *QuizService {
	return &QuizService{log: log, repo: repo, score: score}
}

// QuizAnswerResult is what a player sees after answering.
type QuizAnswerResult struct {
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizSummary aggregates a player's quiz progress.
type QuizSummary struct {
	TotalAnswers   int `json:"total_answers"`
	CorrectAnswers int `json:"correct_answers"`
	TotalPoints    int `json:"total_points"`
}

// Questions returns the quiz bank. Correct indexes are not serialized.
func (s *QuizService) Questions() []content.QuizQuestion {
	return content.QuizQuestions
}

// Answer records a player's answer to one question and recomputes their
// score. Answering the same question twice is rejected.
func (s *QuizService) Answer(ctx context.Context, playerID, questionID, answer int) (*QuizAnswerResult, error) {
	question, ok := content.FindQuizQuestion(questionID)
	if !ok {
		return nil, errors.NotFoundf("quiz question %d not found", questionID)
	}
	if answer < 0 || answer >= len(question.Answers) {
		return nil, errors.Validationf("answer index %d out of range", answer)
	}

	correct := answer == question.Correct
	points := 0
	if correct {
		points = question.Points
	}

	err := s.repo.SaveQuizAnswer(ctx, models.QuizAnswer{
		PlayerID:   playerID,
		QuestionID: questionID,
		Answer:     answer,
		Correct:    correct,
		Points:     points,
	})
	if err == repository.ErrDuplicate {
		return nil, errors.Conflictf("question %d already answered", questionID)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.score.Recalculate(ctx, playerID); err != nil {
		return nil, err
	}

	return &QuizAnswerResult{
		Correct:       correct,
		Points:        points,
		CorrectAnswer: question.Answers[question.Correct],
	}, nil
}

// Summary returns a player's quiz progress
func (s *QuizService) Summary(ctx context.Context, playerID int) (*QuizSummary, error) {
	answers, err := s.repo.ListQuizAnswers(ctx, playerID)
	if err != nil {
		return nil, err
	}
	summary := &QuizSummary{TotalAnswers: len(answers)}
	for _, a := range answers {
		if a.Correct {
			summary.CorrectAnswers++
		}
		summary.TotalPoints += a.Points
	}
	return summary, nil
}
