// Package services provides the offer-building core: line item selection,
// pricing, catalog mapping and document composition.
package services

import (
	"strconv"
	"strings"
)

// Category classifies a catalog entry.
type Category string

const (
	CategoryMaterial     Category = "material"
	CategorySubscription Category = "subscription"
	CategoryService      Category = "service"
)

// LineItem is one priced, quantified entry in an offer. OriginalPrice and
// Description hold the canonical catalog values; ModifiedPrice and
// ModifiedDescription are user overrides and stay nil until edited.
type LineItem struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Category            Category `json:"type"`
	Description         string   `json:"description"`
	OriginalPrice       float64  `json:"originalPrice"`
	ModifiedPrice       *float64 `json:"modifiedPrice,omitempty"`
	ModifiedDescription *string  `json:"modifiedDescription,omitempty"`
	Quantity            float64  `json:"quantity"`
	Unit                string   `json:"unit,omitempty"`
	Selected            bool     `json:"selected"`

	// Degraded-mode markers: the ID was synthesized from sheet position,
	// or the source price could not be parsed.
	SyntheticID  bool `json:"syntheticId,omitempty"`
	PriceMissing bool `json:"priceMissing,omitempty"`
}

// EffectivePrice returns the override price when one has been set,
// otherwise the canonical catalog price.
func (li LineItem) EffectivePrice() float64 {
	if li.ModifiedPrice != nil {
		return *li.ModifiedPrice
	}
	return li.OriginalPrice
}

// EffectiveDescription returns the override description when one has been
// set, otherwise the base description.
func (li LineItem) EffectiveDescription() string {
	if li.ModifiedDescription != nil {
		return *li.ModifiedDescription
	}
	return li.Description
}

// Total is the line contribution to the subtotal.
func (li LineItem) Total() float64 {
	return li.EffectivePrice() * li.Quantity
}

// LinePatch is a partial line item update. Nil fields are left untouched.
type LinePatch struct {
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
}

// IsSelected reports whether the selection contains an item with the given
// identifier. Identity is by ID, never by slice position, so a re-fetched
// catalog candidate is recognized across reloads.
func IsSelected(selection []LineItem, id string) bool {
	for _, li := range selection {
		if li.ID == id {
			return true
		}
	}
	return false
}

// Toggle adds the item to the selection as a selected copy, or removes it
// when an entry with the same ID is already present. The appended copy is
// decoupled from the catalog candidate: later edits to either never mutate
// the other.
func Toggle(selection []LineItem, item LineItem) []LineItem {
	if IsSelected(selection, item.ID) {
		out := make([]LineItem, 0, len(selection)-1)
		for _, li := range selection {
			if li.ID != item.ID {
				out = append(out, li)
			}
		}
		return out
	}

	added := item
	added.Selected = true
	if added.Quantity <= 0 {
		added.Quantity = 1
	}
	out := make([]LineItem, len(selection), len(selection)+1)
	copy(out, selection)
	return append(out, added)
}

// UpdateLine applies a partial override to exactly the line matching id.
// All other lines are carried over unchanged. Unknown IDs are a no-op.
func UpdateLine(selection []LineItem, id string, patch LinePatch) []LineItem {
	out := make([]LineItem, len(selection))
	copy(out, selection)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Price != nil {
			p := *patch.Price
			out[i].ModifiedPrice = &p
		}
		if patch.Description != nil {
			d := *patch.Description
			out[i].ModifiedDescription = &d
		}
		if patch.Quantity != nil {
			out[i].Quantity = *patch.Quantity
		}
	}
	return out
}

// IncrementQty raises the quantity of the matching line by one.
func IncrementQty(selection []LineItem, id string) []LineItem {
	out := make([]LineItem, len(selection))
	copy(out, selection)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity++
		}
	}
	return out
}

// DecrementQty lowers the quantity of the matching line by one, clamped at 1.
// Direct numeric entry may still set 0 through UpdateLine; only the dedicated
// decrement control refuses to go below 1.
func DecrementQty(selection []LineItem, id string) []LineItem {
	out := make([]LineItem, len(selection))
	copy(out, selection)
	for i := range out {
		if out[i].ID == id && out[i].Quantity > 1 {
			out[i].Quantity--
		}
	}
	return out
}

// ClearSelections returns the empty selection set.
func ClearSelections() []LineItem {
	return []LineItem{}
}

// ParseQuantity parses a free-text quantity. Parse failures fall back to 0,
// which is a valid zero-value line rather than an error.
func ParseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParsePrice parses a free-text price edit. Parse failures fall back to 0.
func ParsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// SanitizePercent normalizes a discount/tax field: non-digit characters are
// stripped and leading zeros dropped, so a negative or malformed entry can
// never produce a percentage below zero.
func SanitizePercent(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return 0
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return v
}
