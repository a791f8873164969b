package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// HandleLogin issues a session token for the posted profile and starts a
// fresh wizard session. There is no credential check: the boundary is a
// token existence gate, nothing more.
func HandleLogin(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var profile UserProfile
		if err := e.BindBody(&profile); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid login payload"})
		}
		profile.Name = strings.TrimSpace(profile.Name)
		if profile.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
		}

		token := store.Open(profile)
		http.SetCookie(e.Response, &http.Cookie{
			Name:     AuthCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return e.JSON(http.StatusOK, map[string]any{
			"token":   token,
			"profile": profile,
		})
	}
}

// HandleLogout closes the wizard session behind the token and clears the
// cookie. The in-flight offer is discarded; nothing is saved.
func HandleLogout(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if cookie, err := e.Request.Cookie(AuthCookieName); err == nil {
			store.Close(cookie.Value)
		}
		http.SetCookie(e.Response, &http.Cookie{
			Name:   AuthCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.JSON(http.StatusOK, map[string]string{"status": "logged out"})
	}
}
