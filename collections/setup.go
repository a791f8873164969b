// Package collections creates and seeds the PocketBase collections backing
// the offer builder's configuration.
package collections

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically ensures the composer_profiles collection exists.
// A profile record selects a document letterhead: brand and document-type
// labels, currency symbol, accent color and footer lines.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "composer_profiles", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "brand_label", Required: true})
		c.Fields.Add(&core.TextField{Name: "document_label", Required: true})
		c.Fields.Add(&core.TextField{Name: "currency_symbol", Required: true})
		c.Fields.Add(&core.NumberField{Name: "accent_r", Required: false})
		c.Fields.Add(&core.NumberField{Name: "accent_g", Required: false})
		c.Fields.Add(&core.NumberField{Name: "accent_b", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_line", Required: false})
		c.Fields.Add(&core.TextField{Name: "thanks_line", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base collection
// is created, the addFields callback is invoked to populate its fields, and
// the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Printf("collections: failed to create %q: %v", name, err)
		return nil
	}
	return collection
}
