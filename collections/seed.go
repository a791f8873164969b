package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/services"
)

// Seed inserts the two historical composer variants when the
// composer_profiles collection is empty. Which letterhead is authoritative
// was never settled upstream, so both ship as selectable records.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("composer_profiles")
	if err != nil {
		return fmt.Errorf("composer_profiles collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("query composer_profiles: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, profile := range []services.ComposerProfile{services.EuroProfile(), services.DollarProfile()} {
		record := core.NewRecord(col)
		record.Set("name", profile.Name)
		record.Set("brand_label", profile.BrandLabel)
		record.Set("document_label", profile.DocumentLabel)
		record.Set("currency_symbol", profile.CurrencySymbol)
		record.Set("accent_r", profile.Accent.R)
		record.Set("accent_g", profile.Accent.G)
		record.Set("accent_b", profile.Accent.B)
		record.Set("contact_line", profile.ContactLine)
		record.Set("thanks_line", profile.ThanksLine)

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed composer profile %q: %w", profile.Name, err)
		}
	}
	return nil
}

// ProfileByName loads a composer profile record into the services struct,
// falling back to the euro variant when the record is missing.
func ProfileByName(app *pocketbase.PocketBase, name string) services.ComposerProfile {
	records, err := app.FindRecordsByFilter(
		"composer_profiles",
		"name = {:name}",
		"",
		1,
		0,
		map[string]any{"name": name},
	)
	if err != nil || len(records) == 0 {
		return services.EuroProfile()
	}

	rec := records[0]
	return services.ComposerProfile{
		Name:           rec.GetString("name"),
		BrandLabel:     rec.GetString("brand_label"),
		DocumentLabel:  rec.GetString("document_label"),
		CurrencySymbol: rec.GetString("currency_symbol"),
		Accent: services.RGB{
			R: rec.GetInt("accent_r"),
			G: rec.GetInt("accent_g"),
			B: rec.GetInt("accent_b"),
		},
		ContactLine: rec.GetString("contact_line"),
		ThanksLine:  rec.GetString("thanks_line"),
	}
}
