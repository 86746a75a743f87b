package handlers

import (
	"net/http"
)

// handleGetPronostic returns the logged-in player's pronostics, or null if
// nothing has been saved yet
func (h *Handlers) handleGetPronostic(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Submission.Get(r.Context(), playerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, sub)
}

// handleSaveTop15 saves the Top 15 pronostic with its bets
func (h *Handlers) handleSaveTop15(w http.ResponseWriter, r *http.Request) {
	var req Top15Request
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Submission.SaveTop15(r.Context(), playerID(r), req.Top15, req.BonusTop15, req.GoldenPick); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Top 15 saved")
}

// handleSaveTop5 saves the Top 5 pronostic with its bet
func (h *Handlers) handleSaveTop5(w http.ResponseWriter, r *http.Request) {
	var req Top5Request
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Submission.SaveTop5(r.Context(), playerID(r), req.Top5, req.BonusTop5); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Top 5 saved")
}

// handleSaveFinalRanking saves the final ranking pronostic
func (h *Handlers) handleSaveFinalRanking(w http.ResponseWriter, r *http.Request) {
	var req FinalRankingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Submission.SaveFinalRanking(r.Context(), playerID(r), req.Ranking); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Final ranking saved")
}
