// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strings"

	"offerbuilder/services"
)

// Config carries the deployment knobs: where the catalog lives, which
// composer profile letterheads the documents, and any explicit sheet to
// category mapping.
type Config struct {
	// CatalogBaseURL is the spreadsheet-backed key-value endpoint, with a
	// trailing slash. Ignored when CatalogWorkbook is set.
	CatalogBaseURL string

	// CatalogWorkbook is a local .xlsx path serving as the catalog source.
	CatalogWorkbook string

	// ComposerProfile names the active composer_profiles record.
	ComposerProfile string

	// SheetCategories maps sheet names to category tags, replacing the
	// substring heuristic for the sheets it covers. Format:
	// "Licenses=subscription,Consulting=service".
	SheetCategories map[string]services.Category
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "http://localhost:9000/"),
		CatalogWorkbook: os.Getenv("CATALOG_WORKBOOK"),
		ComposerProfile: getEnv("COMPOSER_PROFILE", "euro-classic"),
		SheetCategories: parseSheetCategories(os.Getenv("CATALOG_SHEET_CATEGORIES")),
	}
}

// CatalogSource builds the configured catalog source: a local workbook when
// one is set, the HTTP endpoint otherwise.
func (c Config) CatalogSource() services.CatalogSource {
	if c.CatalogWorkbook != "" {
		return services.NewWorkbookCatalog(c.CatalogWorkbook)
	}
	return services.NewHTTPCatalog(c.CatalogBaseURL)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseSheetCategories(raw string) map[string]services.Category {
	out := map[string]services.Category{}
	for _, pair := range strings.Split(raw, ",") {
		name, category, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" {
			continue
		}
		switch services.Category(category) {
		case services.CategoryMaterial, services.CategorySubscription, services.CategoryService:
			out[name] = services.Category(category)
		}
	}
	return out
}
