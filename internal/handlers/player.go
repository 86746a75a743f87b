package handlers

import (
	"context"
	"net/http"

	"github.com/spacieba/miss-france/internal/auth"
)

type contextKey string

const playerIDKey contextKey = "playerID"

// requirePlayer middleware validates the player session and stores the
// player ID in the request context.
func (h *Handlers) requirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := h.Auth.PlayerFromRequest(r)
		if !ok {
			respondError(w, Unauthorized("Unauthorized - please log in"))
			return
		}
		ctx := context.WithValue(r.Context(), playerIDKey, playerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// playerID returns the player ID stored by requirePlayer
func playerID(r *http.Request) int {
	id, _ := r.Context().Value(playerIDKey).(int)
	return id
}

// handleRegister creates a new player account and opens a session
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	player, err := h.Player.Register(r.Context(), req.Pseudo)
	if err != nil {
		respondError(w, err)
		return
	}

	token := h.Auth.PlayerLogin(player.ID)
	auth.SetPlayerCookie(w, token)
	respondCreated(w, player)
}

// handleLogin reopens a session for an existing pseudo
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	player, err := h.Player.Login(r.Context(), req.Pseudo)
	if err != nil {
		respondError(w, err)
		return
	}

	token := h.Auth.PlayerLogin(player.ID)
	auth.SetPlayerCookie(w, token)
	respondOK(w, player)
}

// handleLogout clears the player session
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.PlayerCookieName); err == nil {
		h.Auth.PlayerLogout(cookie.Value)
	}
	auth.ClearPlayerCookie(w)
	respondSuccess(w, "Logged out")
}

// handleMe returns the logged-in player's account and score
func (h *Handlers) handleMe(w http.ResponseWriter, r *http.Request) {
	info, err := h.Player.Me(r.Context(), playerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, info)
}
