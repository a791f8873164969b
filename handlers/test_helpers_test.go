package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/services"
)

func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withSession injects a wizard session and profile into the request context,
// the way RequireSession does for authenticated requests.
func withSession(req *http.Request, session *services.Session) *http.Request {
	ctx := context.WithValue(req.Context(), SessionKey, session)
	ctx = context.WithValue(ctx, ProfileKey, UserProfile{Name: "Test User"})
	return req.WithContext(ctx)
}
