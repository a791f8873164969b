package services

import "time"

// OfferDetails carries the client and offer metadata entered in the wizard's
// detail step. Fields are free text; nothing beyond non-empty hints is
// validated at entry. Discount and Tax are whole percentages, kept at or
// above zero by SanitizePercent at the edit boundary.
type OfferDetails struct {
	ClientName     string     `json:"clientName"`
	ClientEmail    string     `json:"clientEmail"`
	OfferName      string     `json:"offerName"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	Notes          string     `json:"notes"`
	Discount       int        `json:"discount"`
	Tax            int        `json:"tax"`
}

// RGB is a plain color triple, kept free of any PDF library types so
// profiles can be stored and served as data.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ComposerProfile selects the letterhead variant of the composed document:
// brand and document-type labels, currency symbol and accent color. The two
// historical variants that shipped with the original builder differ exactly
// in these knobs, so both are kept as data instead of picking a winner.
type ComposerProfile struct {
	Name           string `json:"name"`
	BrandLabel     string `json:"brandLabel"`
	DocumentLabel  string `json:"documentLabel"`
	CurrencySymbol string `json:"currencySymbol"`
	Accent         RGB    `json:"accent"`
	ContactLine    string `json:"contactLine"`
	ThanksLine     string `json:"thanksLine"`
}

// EuroProfile is the discount-and-tax-capable variant with a euro
// letterhead.
func EuroProfile() ComposerProfile {
	return ComposerProfile{
		Name:           "euro-classic",
		BrandLabel:     "Company Name",
		DocumentLabel:  "INVOICE",
		CurrencySymbol: "€",
		Accent:         RGB{R: 247, G: 147, B: 30},
		ContactLine:    "Your Company Name • contact@yourcompany.com • +1 (000) 123-4567",
		ThanksLine:     "Thank you for your business!",
	}
}

// DollarProfile is the dollar-letterhead variant.
func DollarProfile() ComposerProfile {
	return ComposerProfile{
		Name:           "dollar-classic",
		BrandLabel:     "COMPANY",
		DocumentLabel:  "INVOICE",
		CurrencySymbol: "$",
		Accent:         RGB{R: 247, G: 147, B: 30},
		ContactLine:    "Your Company Name • contact@yourcompany.com • +1 (000) 123-4567",
		ThanksLine:     "Thank you for your business!",
	}
}

// OfferExportData is everything the document composers consume: the line
// items, the detail record, the derived totals and the letterhead profile.
type OfferExportData struct {
	Profile ComposerProfile
	Lines   []LineItem
	Details OfferDetails
	Totals  Totals
}

// BuildOfferExportData snapshots an offer for export. Totals are derived
// here so both composers and the on-screen review read the same numbers.
func BuildOfferExportData(lines []LineItem, details OfferDetails, profile ComposerProfile) *OfferExportData {
	return &OfferExportData{
		Profile: profile,
		Lines:   lines,
		Details: details,
		Totals:  ComputeTotals(lines, float64(details.Discount), float64(details.Tax)),
	}
}

// ExportBaseName is the file name stem of the generated document: the offer
// name, or the literal "Offer" when it is empty.
func ExportBaseName(offerName string) string {
	if offerName == "" {
		return "Offer"
	}
	return offerName
}

// FormatExpiration renders the expiration date, or the explicit
// "No expiration" placeholder when none is set.
func FormatExpiration(t *time.Time) string {
	if t == nil {
		return "No expiration"
	}
	return t.Format("02 Jan 2006")
}
