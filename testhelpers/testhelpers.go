// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/collections"
	"offerbuilder/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProfile creates a composer profile record and returns it.
func CreateTestProfile(t *testing.T, app *pocketbase.PocketBase, name, currencySymbol string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("composer_profiles")
	if err != nil {
		t.Fatalf("failed to find composer_profiles collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("brand_label", "Test Brand")
	record.Set("document_label", "INVOICE")
	record.Set("currency_symbol", currencySymbol)
	record.Set("accent_r", 247)
	record.Set("accent_g", 147)
	record.Set("accent_b", 30)
	record.Set("contact_line", "Test Co • test@example.com")
	record.Set("thanks_line", "Thank you!")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test profile: %v", err)
	}

	return record
}

// NewCatalogServer starts an httptest server that serves the given sheets
// under the excel-data endpoint, in the shape the HTTP catalog source
// expects. The server is closed automatically when the test finishes.
func NewCatalogServer(t *testing.T, sheets map[string][]services.CatalogRecord) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/excel-data/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": sheets})
	}))
	t.Cleanup(srv.Close)

	return srv
}

// SampleLines returns a small selected line set for export and pricing tests.
func SampleLines() []services.LineItem {
	return []services.LineItem{
		{
			ID:            "Materials-0",
			Name:          "CAT-100",
			Category:      services.CategoryMaterial,
			Description:   "Mounting rail 2m",
			OriginalPrice: 100,
			Quantity:      2,
			Unit:          "pcs",
			Selected:      true,
		},
		{
			ID:            "Services-1",
			Name:          "SRV-200",
			Category:      services.CategoryService,
			Description:   "On-site installation",
			OriginalPrice: 250,
			Quantity:      1,
			Unit:          "pcs",
			Selected:      true,
		},
	}
}
