package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/collections"
	"offerbuilder/config"
	"offerbuilder/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("main: no .env file loaded: %v", err)
	}

	cfg := config.Load()
	app := pocketbase.New()
	sessions := handlers.NewSessionStore()
	catalog := cfg.CatalogSource()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Everything below /login and /static requires a session token
		se.Router.BindFunc(handlers.RequireSession(sessions))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.POST("/login", handlers.HandleLogin(sessions))
		se.Router.POST("/logout", handlers.HandleLogout(sessions))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/catalog/sheets", handlers.HandleCatalogSheets(catalog))
		se.Router.GET("/catalog/sheets/{name}", handlers.HandleCatalogSheet(catalog, cfg.SheetCategories))

		// ── Offer wizard ─────────────────────────────────────────
		se.Router.GET("/offer", handlers.HandleOfferSnapshot())
		se.Router.POST("/offer/lines/toggle", handlers.HandleToggleLine())
		se.Router.PATCH("/offer/lines/{id}", handlers.HandleUpdateLine())
		se.Router.POST("/offer/lines/{id}/increment", handlers.HandleIncrementLine())
		se.Router.POST("/offer/lines/{id}/decrement", handlers.HandleDecrementLine())
		se.Router.DELETE("/offer/lines", handlers.HandleClearLines())
		se.Router.PATCH("/offer/details", handlers.HandleDetailsPatch())
		se.Router.POST("/offer/next", handlers.HandleNextStep())
		se.Router.POST("/offer/back", handlers.HandleBackStep())
		se.Router.PATCH("/offer/review/lines/{id}", handlers.HandleReviewUpdateLine())

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/offer/export/pdf", handlers.HandleOfferExportPDF(app, cfg.ComposerProfile))
		se.Router.GET("/offer/export/excel", handlers.HandleOfferExportExcel(app, cfg.ComposerProfile))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
