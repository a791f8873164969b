// Package handlers is the HTTP boundary: PocketBase request handlers
// exposing the catalog, the offer wizard and the document exports as JSON
// endpoints and file downloads.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/services"
)

type contextKey string

const SessionKey contextKey = "offerSession"
const ProfileKey contextKey = "userProfile"

// UserProfile is the minimal user record the session boundary knows about.
// Presence of a name is what the UI keys its user-menu control on.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// sessionEntry pairs a user profile with its wizard session.
type sessionEntry struct {
	profile UserProfile
	session *services.Session
}

// SessionStore is the explicit session context: one wizard session per
// issued token, initialized at login and cleared at logout. State is
// in-memory only; restarting the process forgets every offer in flight.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: map[string]*sessionEntry{}}
}

// Open mints a token for the given profile and starts a fresh wizard
// session under it.
func (st *SessionStore) Open(profile UserProfile) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	token := uuid.NewString()
	st.entries[token] = &sessionEntry{
		profile: profile,
		session: services.NewSession(),
	}
	return token
}

// Lookup resolves a token to its session and profile.
func (st *SessionStore) Lookup(token string) (*services.Session, UserProfile, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.entries[token]
	if !ok {
		return nil, UserProfile{}, false
	}
	return entry.session, entry.profile, true
}

// Close tears down the session behind a token. Unknown tokens are a no-op.
func (st *SessionStore) Close(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if entry, ok := st.entries[token]; ok {
		entry.session.Close()
		delete(st.entries, token)
	}
}

// GetSession extracts the wizard session from the request context.
func GetSession(r *http.Request) *services.Session {
	if val, ok := r.Context().Value(SessionKey).(*services.Session); ok {
		return val
	}
	return nil
}

// GetProfile extracts the user profile from the request context.
func GetProfile(r *http.Request) UserProfile {
	if val, ok := r.Context().Value(ProfileKey).(UserProfile); ok {
		return val
	}
	return UserProfile{}
}

// AuthCookieName carries the session token. Its existence is the only
// authentication check this application performs.
const AuthCookieName = "auth_token"

// RequireSession gates every route except the login endpoint behind a token
// existence check: requests without a known token are redirected to /login
// (or get a 401 when they ask for JSON).
func RequireSession(store *SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		path := e.Request.URL.Path
		if path == "/login" || strings.HasPrefix(path, "/static/") {
			return e.Next()
		}

		token := ""
		if cookie, err := e.Request.Cookie(AuthCookieName); err == nil {
			token = cookie.Value
		}

		session, profile, ok := store.Lookup(token)
		if !ok {
			if wantsJSON(e.Request) {
				return e.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			return e.Redirect(http.StatusFound, "/login")
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, session)
		ctx = context.WithValue(ctx, ProfileKey, profile)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
