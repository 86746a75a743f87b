package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	AdminCookieName  = "missfrance_admin"
	PlayerCookieName = "missfrance_player"
	SessionExpiry    = 24 * time.Hour
)

// Pageant-themed words for password generation
var pageantWords = []string{
	"couronne", "ruban", "diadème", "podium", "paillette",
	"miss", "région", "écharpe", "bouquet", "gala",
	"robe", "satin", "étoile", "dauphine", "jury",
	"défilé", "strass", "tiare",
}

// Auth handles admin and player session authentication. Admin sessions
// are password-gated; player sessions simply bind a cookie token to a
// registered player ID.
type Auth struct {
	password string
	admins   map[string]time.Time
	players  map[string]playerSession
	mu       sync.RWMutex
}

type playerSession struct {
	playerID int
	expiry   time.Time
}

// New creates a new Auth instance with the given admin password
func New(password string) *Auth {
	return &Auth{
		password: password,
		admins:   make(map[string]time.Time),
		players:  make(map[string]playerSession),
	}
}

// GeneratePassword creates a random 3-word password
func GeneratePassword() string {
	words := make([]string, 3)
	for i := range words {
		idx := randomInt(len(pageantWords))
		words[i] = pageantWords[idx]
	}
	return strings.Join(words, "-")
}

// AdminLogin validates the password and returns a session token if valid
func (a *Auth) AdminLogin(password string) (string, bool) {
	if password != a.password {
		return "", false
	}

	token := generateToken()
	a.mu.Lock()
	a.admins[token] = time.Now().Add(SessionExpiry)
	a.mu.Unlock()

	return token, true
}

// AdminLogout invalidates an admin session token
func (a *Auth) AdminLogout(token string) {
	a.mu.Lock()
	delete(a.admins, token)
	a.mu.Unlock()
}

// ValidateAdminSession checks if an admin session token is valid
func (a *Auth) ValidateAdminSession(token string) bool {
	a.mu.RLock()
	expiry, exists := a.admins[token]
	a.mu.RUnlock()

	if !exists {
		return false
	}

	if time.Now().After(expiry) {
		a.mu.Lock()
		delete(a.admins, token)
		a.mu.Unlock()
		return false
	}

	return true
}

// PlayerLogin creates a session token bound to a player ID
func (a *Auth) PlayerLogin(playerID int) string {
	token := generateToken()
	a.mu.Lock()
	a.players[token] = playerSession{playerID: playerID, expiry: time.Now().Add(SessionExpiry)}
	a.mu.Unlock()
	return token
}

// PlayerLogout invalidates a player session token
func (a *Auth) PlayerLogout(token string) {
	a.mu.Lock()
	delete(a.players, token)
	a.mu.Unlock()
}

// ValidatePlayerSession returns the player ID bound to a token, if any
func (a *Auth) ValidatePlayerSession(token string) (int, bool) {
	a.mu.RLock()
	session, exists := a.players[token]
	a.mu.RUnlock()

	if !exists {
		return 0, false
	}

	if time.Now().After(session.expiry) {
		a.mu.Lock()
		delete(a.players, token)
		a.mu.Unlock()
		return 0, false
	}

	return session.playerID, true
}

// IsAdminRequest extracts and validates the admin session from a request
func (a *Auth) IsAdminRequest(r *http.Request) bool {
	cookie, err := r.Cookie(AdminCookieName)
	if err != nil {
		return false
	}
	return a.ValidateAdminSession(cookie.Value)
}

// PlayerFromRequest extracts and validates the player session from a request
func (a *Auth) PlayerFromRequest(r *http.Request) (int, bool) {
	cookie, err := r.Cookie(PlayerCookieName)
	if err != nil {
		return 0, false
	}
	return a.ValidatePlayerSession(cookie.Value)
}

// RequireAdminAPI middleware for admin API endpoints (returns 401)
func (a *Auth) RequireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.IsAdminRequest(r) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
	})
}

// SetAdminCookie sets the admin session cookie on the response
func SetAdminCookie(w http.ResponseWriter, token string) {
	setCookie(w, AdminCookieName, token, int(SessionExpiry.Seconds()))
}

// ClearAdminCookie removes the admin session cookie
func ClearAdminCookie(w http.ResponseWriter) {
	setCookie(w, AdminCookieName, "", -1)
}

// SetPlayerCookie sets the player session cookie on the response
func SetPlayerCookie(w http.ResponseWriter, token string) {
	setCookie(w, PlayerCookieName, token, int(SessionExpiry.Seconds()))
}

// ClearPlayerCookie removes the player session cookie
func ClearPlayerCookie(w http.ResponseWriter) {
	setCookie(w, PlayerCookieName, "", -1)
}

func setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// generateToken creates a random session token
func generateToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// randomInt returns a random int in [0, max)
func randomInt(max int) int {
	bytes := make([]byte, 1)
	rand.Read(bytes)
	return int(bytes[0]) % max
}
