package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetCandidates returns the season's candidate roster
func (h *Handlers) handleGetCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.Registry.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, candidates)
}

// handleGetResults returns the official results revealed so far
func (h *Handlers) handleGetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.Results.Get(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, results)
}

// handleGetLeaderboard returns the overall standings
func (h *Handlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Leaderboard.Overall(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, entries)
}

// handleGetComponentLeaderboard returns standings for one score component
func (h *Handlers) handleGetComponentLeaderboard(w http.ResponseWriter, r *http.Request) {
	component := chi.URLParam(r, "component")
	entries, err := h.Leaderboard.ByComponent(r.Context(), component)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, entries)
}
