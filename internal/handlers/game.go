package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetQuiz returns the quiz questions without their answers
func (h *Handlers) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Quiz.Questions())
}

// handleAnswerQuiz scores one quiz answer
func (h *Handlers) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Quiz.Answer(r.Context(), playerID(r), req.QuestionID, req.Answer)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleQuizSummary returns the player's quiz progress
func (h *Handlers) handleQuizSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Quiz.Summary(r.Context(), playerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, summary)
}

// handleGetTrivia returns the trivia categories with submission status
func (h *Handlers) handleGetTrivia(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Trivia.Categories(r.Context(), playerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, categories)
}

// handleSubmitTrivia scores a whole trivia category at once
func (h *Handlers) handleSubmitTrivia(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, BadRequest("Missing category parameter"))
		return
	}

	var req TriviaSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Trivia.Submit(r.Context(), playerID(r), category, req.Answers)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleNextChallenge returns a random uncompleted challenge, or null when
// the player has finished them all
func (h *Handlers) handleNextChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.Challenge.Next(r.Context(), playerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, challenge)
}

// handleCompleteChallenge marks a challenge done and awards its points
func (h *Handlers) handleCompleteChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Challenge.Complete(r.Context(), playerID(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleCompletedChallenges returns the IDs of the player's completed challenges
func (h *Handlers) handleCompletedChallenges(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Challenge.Completed(r.Context(), playerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ids)
}

// handleGetCostumes returns all costume contest entries with vote counts
func (h *Handlers) handleGetCostumes(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Costume.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, entries)
}

// handleEnterCostume enters or updates the player's costume
func (h *Handlers) handleEnterCostume(w http.ResponseWriter, r *http.Request) {
	var req CostumeEnterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Costume.Enter(r.Context(), playerID(r), req.Title); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Costume entered")
}

// handleVoteCostume casts or moves the player's costume vote
func (h *Handlers) handleVoteCostume(w http.ResponseWriter, r *http.Request) {
	var req CostumeVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Costume.Vote(r.Context(), playerID(r), req.PlayerID); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Vote recorded")
}
