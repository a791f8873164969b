package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cast"
)

// CatalogRecord is one raw row of a catalog sheet as delivered by the
// external source. UnitPrice is left untyped because the spreadsheet backend
// emits it as either a JSON number or a string.
type CatalogRecord struct {
	ItemCode    string `json:"Item Code"`
	Description string `json:"Description"`
	UnitPrice   any    `json:"Unit Price"`
}

// CatalogSource lists sheet names and loads sheet contents. Implementations
// are read-only from the core's perspective.
type CatalogSource interface {
	SheetNames(ctx context.Context) ([]string, error)
	Sheet(ctx context.Context, name string) ([]CatalogRecord, error)
}

// CategoryForSheet resolves the category tag for a sheet. An explicit
// mapping supplied by configuration wins; otherwise the sheet name is
// matched by substring against "subscription" and "service", with material
// as the default.
func CategoryForSheet(sheet string, overrides map[string]Category) Category {
	if c, ok := overrides[sheet]; ok {
		return c
	}
	lower := strings.ToLower(sheet)
	switch {
	case strings.Contains(lower, "subscription"):
		return CategorySubscription
	case strings.Contains(lower, "service"):
		return CategoryService
	default:
		return CategoryMaterial
	}
}

// MapSheet turns raw sheet records into selectable line item candidates.
// A record without an item code gets the positional identifier
// "<sheet>-<index>" and is flagged SyntheticID, since that fallback is not
// stable across reloads when record order changes. A unit price that cannot
// be read as a number becomes 0 with PriceMissing set.
func MapSheet(sheet string, records []CatalogRecord, categories map[string]Category) []LineItem {
	category := CategoryForSheet(sheet, categories)
	items := make([]LineItem, 0, len(records))
	for i, rec := range records {
		id := rec.ItemCode
		synthetic := false
		if id == "" {
			id = fmt.Sprintf("%s-%d", sheet, i)
			synthetic = true
		}

		price, err := cast.ToFloat64E(rec.UnitPrice)
		missing := err != nil || rec.UnitPrice == nil
		if missing {
			price = 0
		}

		items = append(items, LineItem{
			ID:            id,
			Name:          rec.Description,
			Category:      category,
			Description:   rec.Description,
			OriginalPrice: price,
			Quantity:      1,
			Unit:          "pcs",
			SyntheticID:   synthetic,
			PriceMissing:  missing,
		})
	}
	return items
}

// MarkSelected sets the selection flag on every candidate whose ID is
// already in the selection set.
func MarkSelected(candidates, selection []LineItem) []LineItem {
	out := make([]LineItem, len(candidates))
	copy(out, candidates)
	for i := range out {
		out[i].Selected = IsSelected(selection, out[i].ID)
	}
	return out
}

// FilterCandidates keeps candidates whose name or description contains the
// query (case-insensitive), intersected with an exact category match unless
// typeFilter is "all" or empty. Source order is preserved; there is no
// ranking.
func FilterCandidates(candidates []LineItem, query, typeFilter string) []LineItem {
	q := strings.ToLower(query)
	out := make([]LineItem, 0, len(candidates))
	for _, li := range candidates {
		matches := strings.Contains(strings.ToLower(li.Name), q) ||
			strings.Contains(strings.ToLower(li.Description), q)
		if !matches {
			continue
		}
		if typeFilter != "" && typeFilter != "all" && string(li.Category) != typeFilter {
			continue
		}
		out = append(out, li)
	}
	return out
}

// SheetLoader serializes sheet loads for one wizard session. Each load is
// tagged with a monotonically increasing request ID; a completing load whose
// ID is no longer the latest issued is discarded, so an out-of-order reply
// for a previously selected sheet can never overwrite newer state. It also
// remembers the last committed sheet to suppress redundant refetching.
type SheetLoader struct {
	mu         sync.Mutex
	lastIssued int64
	lastLoaded string
}

// Begin registers intent to load the named sheet. When the sheet is already
// the last committed one, Begin reports skip=true and no request ID is
// consumed.
func (l *SheetLoader) Begin(sheet string) (id int64, skip bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if sheet != "" && sheet == l.lastLoaded {
		return 0, true
	}
	l.lastIssued++
	return l.lastIssued, false
}

// Commit finalizes the load started under id. It reports false, and leaves
// the loader untouched, when a newer load has been issued in the meantime.
func (l *SheetLoader) Commit(id int64, sheet string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id != l.lastIssued {
		return false
	}
	l.lastLoaded = sheet
	return true
}

// Reset forgets the last loaded sheet, forcing the next Begin to fetch.
func (l *SheetLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastLoaded = ""
}
