package handlers

import (
	"net/http"

	"github.com/spacieba/miss-france/internal/auth"
)

// handleAdminLogin validates the admin password and opens a session
func (h *Handlers) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, ok := h.Auth.AdminLogin(req.Password)
	if !ok {
		respondError(w, Unauthorized("Invalid password"))
		return
	}

	auth.SetAdminCookie(w, token)
	respondSuccess(w, "Logged in")
}

// handleAdminLogout clears the admin session
func (h *Handlers) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.AdminCookieName); err == nil {
		h.Auth.AdminLogout(cookie.Value)
	}
	auth.ClearAdminCookie(w)
	respondSuccess(w, "Logged out")
}

// handleRevealTop15 publishes the official Top 15
func (h *Handlers) handleRevealTop15(w http.ResponseWriter, r *http.Request) {
	var req RevealRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Results.RevealTop15(r.Context(), req.Names)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleRevealTop5 publishes the official Top 5
func (h *Handlers) handleRevealTop5(w http.ResponseWriter, r *http.Request) {
	var req RevealRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Results.RevealTop5(r.Context(), req.Names)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleRevealFinal publishes the official final ranking
func (h *Handlers) handleRevealFinal(w http.ResponseWriter, r *http.Request) {
	var req RevealRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Results.RevealFinal(r.Context(), req.Names)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleRollback retracts reveals back to the requested stage
func (h *Handlers) handleRollback(w http.ResponseWriter, r *http.Request) {
	var req RollbackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Results.Rollback(r.Context(), req.Stage)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleAdminStats returns the party dashboard counters
func (h *Handlers) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Results.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}

// handleJoinQR returns a QR code PNG pointing at the join page
func (h *Handlers) handleJoinQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Player.JoinQR(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
