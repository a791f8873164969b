package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney renders an amount with the given currency symbol, thousands
// grouping and exactly 2 decimal places (e.g. "€1,234,567.89"). This is the
// only place monetary values are rounded; totals keep full precision until
// they reach formatting.
func FormatMoney(symbol string, amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	result := symbol + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatQty renders a quantity with its unit label, dropping a trailing
// ".0" for whole numbers ("2 pcs", "2.5 kg"). Plain decimal notation
// throughout; large quantities never switch to exponent form.
func FormatQty(qty float64, unit string) string {
	s := strconv.FormatFloat(qty, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
