package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"offerbuilder/services"
	"offerbuilder/testhelpers"
)

func exportSession(t *testing.T) *services.Session {
	t.Helper()
	session := services.NewSession()
	t.Cleanup(session.Close)

	for _, li := range testhelpers.SampleLines() {
		session.Toggle(li)
	}
	session.ApplyDetails(services.DetailsPatch{
		ClientName: strPtr("Acme GmbH"),
		OfferName:  strPtr("Solar Rollout"),
	})
	return session
}

func strPtr(s string) *string { return &s }

func TestHandleOfferExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	session := exportSession(t)

	req := httptest.NewRequest(http.MethodGet, "/offer/export/pdf", nil)
	req = withSession(req, session)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleOfferExportPDF(app, "euro-classic")(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="Solar-Rollout.pdf"`) {
		t.Errorf("content disposition = %q, want sanitized offer name", cd)
	}

	body := rec.Body.Bytes()
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response body is not a PDF")
	}

	if session.ExportStatus() != services.StatusSuccess {
		t.Errorf("export status = %v, want success", session.ExportStatus())
	}
}

func TestHandleOfferExportPDF_DefaultFilename(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	session := services.NewSession()
	t.Cleanup(session.Close)

	req := httptest.NewRequest(http.MethodGet, "/offer/export/pdf", nil)
	req = withSession(req, session)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleOfferExportPDF(app, "euro-classic")(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="Offer.pdf"`) {
		t.Errorf("content disposition = %q, want the Offer.pdf fallback", cd)
	}
}

func TestHandleOfferExportPDF_NoSession(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/offer/export/pdf", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleOfferExportPDF(app, "euro-classic")(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleOfferExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	session := exportSession(t)

	req := httptest.NewRequest(http.MethodGet, "/offer/export/excel", nil)
	req = withSession(req, session)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleOfferExportExcel(app, "euro-classic")(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q, want a spreadsheet type", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="Solar-Rollout.xlsx"`) {
		t.Errorf("content disposition = %q, want sanitized offer name", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("response body is empty")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"Solar Rollout", "Solar-Rollout"},
		{"a/b\\c:d", "a-b-c-d"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.expect {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
