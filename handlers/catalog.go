package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/services"
)

// HandleCatalogSheets lists the catalog sheet names. A fetch failure is
// logged and degrades to an empty list; the catalog source offers no retry.
func HandleCatalogSheets(src services.CatalogSource) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		names, err := src.SheetNames(e.Request.Context())
		if err != nil {
			log.Printf("catalog: failed to fetch sheet names: %v", err)
			names = []string{}
		}
		return e.JSON(http.StatusOK, map[string]any{"sheets": names})
	}
}

// HandleCatalogSheet loads one sheet's candidates, reflecting the session's
// selection membership and applying the q / type query filters. The
// session's loader suppresses refetching the currently loaded sheet and
// discards loads that complete after a newer one was issued.
func HandleCatalogSheet(src services.CatalogSource, categories map[string]services.Category) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sheet := e.Request.PathValue("name")
		if sheet == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing sheet name"})
		}

		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		var candidates []services.LineItem
		if id, skip := session.Loader.Begin(sheet); skip {
			_, candidates = session.Candidates()
		} else {
			records, err := src.Sheet(e.Request.Context(), sheet)
			if err != nil {
				// Serve an empty list for this response only. The load is
				// not committed, so re-selecting the sheet goes back to
				// the source.
				log.Printf("catalog: failed to fetch sheet %q: %v", sheet, err)
				candidates = services.MapSheet(sheet, nil, categories)
			} else {
				candidates = services.MapSheet(sheet, records, categories)
				if session.Loader.Commit(id, sheet) {
					session.SetCandidates(sheet, candidates)
				}
			}
		}

		candidates = services.MarkSelected(candidates, session.Selection())
		query := e.Request.URL.Query().Get("q")
		typeFilter := e.Request.URL.Query().Get("type")
		filtered := services.FilterCandidates(candidates, query, typeFilter)

		return e.JSON(http.StatusOK, map[string]any{
			"sheet": sheet,
			"items": filtered,
		})
	}
}
