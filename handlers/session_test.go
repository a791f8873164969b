package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"offerbuilder/services"
)

func TestSessionStoreOpenLookupClose(t *testing.T) {
	store := NewSessionStore()

	token := store.Open(UserProfile{Name: "Alice", Email: "alice@example.com"})
	if token == "" {
		t.Fatal("Open returned an empty token")
	}

	session, profile, ok := store.Lookup(token)
	if !ok {
		t.Fatal("Lookup failed for a freshly opened token")
	}
	if session == nil {
		t.Fatal("Lookup returned a nil session")
	}
	if profile.Name != "Alice" {
		t.Errorf("profile name = %q, want Alice", profile.Name)
	}

	store.Close(token)
	if _, _, ok := store.Lookup(token); ok {
		t.Error("Lookup succeeded after Close")
	}

	// closing an unknown token is a no-op
	store.Close("missing")
}

func TestSessionStoreTokensAreIndependent(t *testing.T) {
	store := NewSessionStore()

	t1 := store.Open(UserProfile{Name: "Alice"})
	t2 := store.Open(UserProfile{Name: "Bob"})
	if t1 == t2 {
		t.Fatal("two logins produced the same token")
	}

	s1, _, _ := store.Lookup(t1)
	s2, _, _ := store.Lookup(t2)
	s1.Toggle(services.LineItem{ID: "a", OriginalPrice: 10})

	if len(s2.Selection()) != 0 {
		t.Error("selection leaked between sessions")
	}
}

func TestGetSession_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/offer", nil)
	if GetSession(req) != nil {
		t.Error("expected nil session for a bare request")
	}
}

func TestGetProfile_FromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/offer", nil)
	req = withSession(req, services.NewSession())

	if got := GetProfile(req); got.Name != "Test User" {
		t.Errorf("profile name = %q, want Test User", got.Name)
	}
}

func TestRequireSession_SkipsLogin(t *testing.T) {
	store := NewSessionStore()
	middleware := RequireSession(store)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	// no token and no redirect: the login route passes through
	_ = middleware(e)
	if rec.Code == http.StatusFound || rec.Code == http.StatusUnauthorized {
		t.Errorf("login route was gated, status = %d", rec.Code)
	}
}

func TestRequireSession_NoTokenRedirects(t *testing.T) {
	store := NewSessionStore()
	middleware := RequireSession(store)

	req := httptest.NewRequest(http.MethodGet, "/offer", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := middleware(e); err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect location = %q, want /login", loc)
	}
}

func TestRequireSession_NoTokenJSONGets401(t *testing.T) {
	store := NewSessionStore()
	middleware := RequireSession(store)

	req := httptest.NewRequest(http.MethodGet, "/offer", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := middleware(e); err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the body")
	}
}

func TestRequireSession_ValidTokenInjectsContext(t *testing.T) {
	store := NewSessionStore()
	token := store.Open(UserProfile{Name: "Alice"})
	middleware := RequireSession(store)

	req := httptest.NewRequest(http.MethodGet, "/offer", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	_ = middleware(e)

	if GetSession(e.Request) == nil {
		t.Error("session missing from request context after middleware")
	}
	if got := GetProfile(e.Request); got.Name != "Alice" {
		t.Errorf("profile name = %q, want Alice", got.Name)
	}
}

func TestRequireSession_UnknownTokenRejected(t *testing.T) {
	store := NewSessionStore()
	middleware := RequireSession(store)

	req := httptest.NewRequest(http.MethodGet, "/offer", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "stale-token"})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := middleware(e); err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want 302 redirect for unknown token", rec.Code)
	}
}
