package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Accounts (public)
	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
	r.Post("/api/logout", h.handleLogout)

	// Read-only party state (public, polled by every screen)
	r.Get("/api/candidates", h.handleGetCandidates)
	r.Get("/api/results", h.handleGetResults)
	r.Get("/api/leaderboard", h.handleGetLeaderboard)
	r.Get("/api/leaderboard/{component}", h.handleGetComponentLeaderboard)
	r.Get("/api/costumes", h.handleGetCostumes)

	// Admin session (public)
	r.Post("/api/admin/login", h.handleAdminLogin)
	r.Post("/api/admin/logout", h.handleAdminLogout)

	// Player API (session required)
	r.Group(func(r chi.Router) {
		r.Use(h.requirePlayer)

		r.Get("/api/me", h.handleMe)

		// Pronostics
		r.Get("/api/pronostics", h.handleGetPronostic)
		r.Post("/api/pronostics/top15", h.handleSaveTop15)
		r.Post("/api/pronostics/top5", h.handleSaveTop5)
		r.Post("/api/pronostics/final", h.handleSaveFinalRanking)

		// Quiz
		r.Get("/api/quiz", h.handleGetQuiz)
		r.Post("/api/quiz/answer", h.handleAnswerQuiz)
		r.Get("/api/quiz/summary", h.handleQuizSummary)

		// Trivia
		r.Get("/api/trivia", h.handleGetTrivia)
		r.Post("/api/trivia/{category}", h.handleSubmitTrivia)

		// Challenges
		r.Get("/api/challenges/next", h.handleNextChallenge)
		r.Post("/api/challenges/{id}/complete", h.handleCompleteChallenge)
		r.Get("/api/challenges/completed", h.handleCompletedChallenges)

		// Costume contest
		r.Post("/api/costumes/enter", h.handleEnterCostume)
		r.Post("/api/costumes/vote", h.handleVoteCostume)
	})

	// Admin API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAdminAPI)

		r.Post("/api/admin/reveal/top15", h.handleRevealTop15)
		r.Post("/api/admin/reveal/top5", h.handleRevealTop5)
		r.Post("/api/admin/reveal/final", h.handleRevealFinal)
		r.Post("/api/admin/rollback", h.handleRollback)
		r.Get("/api/admin/stats", h.handleAdminStats)
		r.Get("/api/admin/join-qr", h.handleJoinQR)
	})

	return r
}
