package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/collections"
	"offerbuilder/services"
)

// HandleOfferExportPDF composes the offer into a PDF and streams it as a
// download named after the offer. Composition errors are caught here: the
// session's transient status flips to error and no partial file leaves the
// handler.
func HandleOfferExportPDF(app *pocketbase.PocketBase, profileName string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		profile := collections.ProfileByName(app, profileName)
		data := services.BuildOfferExportData(session.ExportLines(), session.Details(), profile)

		pdfBytes, err := services.GenerateOfferPDF(data)
		if err != nil {
			log.Printf("offer_export: failed to generate PDF: %v", err)
			session.SetExportStatus(services.StatusError)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate PDF"})
		}
		session.SetExportStatus(services.StatusSuccess)

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(services.ExportBaseName(data.Details.OfferName)))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleOfferExportExcel streams the offer as a workbook download.
func HandleOfferExportExcel(app *pocketbase.PocketBase, profileName string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		profile := collections.ProfileByName(app, profileName)
		data := services.BuildOfferExportData(session.ExportLines(), session.Details(), profile)

		xlsxBytes, err := services.GenerateOfferExcel(data)
		if err != nil {
			log.Printf("offer_export: failed to generate workbook: %v", err)
			session.SetExportStatus(services.StatusError)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate workbook"})
		}
		session.SetExportStatus(services.StatusSuccess)

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(services.ExportBaseName(data.Details.OfferName)))
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// sanitizeFilename strips path and separator characters from a download
// name.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
