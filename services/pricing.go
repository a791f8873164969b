package services

// Totals holds every derived amount for an offer. Values are recomputed on
// each read, never cached: line items, discount and tax move independently.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Discounted     float64
	TaxAmount      float64
	GrandTotal     float64
}

// ComputeTotals derives offer totals from the given lines. Tax compounds on
// the discounted amount, not the original subtotal. Intermediate values keep
// full float64 precision; rounding to two decimals happens at format time.
// An empty line list yields all-zero totals.
func ComputeTotals(lines []LineItem, discountPct, taxPct float64) Totals {
	var t Totals
	for _, li := range lines {
		t.Subtotal += li.Total()
	}
	t.DiscountAmount = t.Subtotal * discountPct / 100
	t.Discounted = t.Subtotal - t.DiscountAmount
	t.TaxAmount = t.Discounted * taxPct / 100
	t.GrandTotal = t.Discounted + t.TaxAmount
	return t
}
