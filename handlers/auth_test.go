package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleLogin(t *testing.T) {
	store := NewSessionStore()
	handler := HandleLogin(store)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"name": "Alice", "email": "alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Token   string      `json:"token"`
		Profile UserProfile `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Token == "" {
		t.Error("expected a token in the response")
	}
	if body.Profile.Name != "Alice" {
		t.Errorf("profile name = %q, want Alice", body.Profile.Name)
	}

	// the token is live in the store
	if _, _, ok := store.Lookup(body.Token); !ok {
		t.Error("issued token not found in the store")
	}

	// and set as an HttpOnly cookie
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("auth cookie not set")
	}
	if cookie.Value != body.Token {
		t.Error("cookie value differs from the issued token")
	}
	if !cookie.HttpOnly {
		t.Error("auth cookie is not HttpOnly")
	}
}

func TestHandleLogin_MissingName(t *testing.T) {
	store := NewSessionStore()
	handler := HandleLogin(store)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"name": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLogout(t *testing.T) {
	store := NewSessionStore()
	token := store.Open(UserProfile{Name: "Alice"})
	handler := HandleLogout(store)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if _, _, ok := store.Lookup(token); ok {
		t.Error("token still valid after logout")
	}

	// cookie is expired
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName && c.MaxAge >= 0 {
			t.Error("auth cookie was not expired")
		}
	}
}

func TestHandleLogout_NoCookie(t *testing.T) {
	store := NewSessionStore()
	handler := HandleLogout(store)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
