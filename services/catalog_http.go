package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// HTTPCatalog reads the catalog from the spreadsheet-backed key-value
// endpoint: GET <base>excel-data/ returning {"data": {sheet: [records]}}.
// There is no pagination, no auth header and no caching layer.
type HTTPCatalog struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPCatalog builds a source for the given base URL. The base URL is
// expected to end with a slash.
func NewHTTPCatalog(baseURL string) *HTTPCatalog {
	return &HTTPCatalog{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type catalogPayload struct {
	Data map[string][]CatalogRecord `json:"data"`
}

func (c *HTTPCatalog) fetch(ctx context.Context) (map[string][]CatalogRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"excel-data/", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var payload catalogPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return payload.Data, nil
}

// SheetNames lists the catalog sheets. Names are sorted for a stable order,
// since the JSON object carries none.
func (c *HTTPCatalog) SheetNames(ctx context.Context) ([]string, error) {
	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Sheet retrieves the raw records of one sheet. The endpoint has no per-sheet
// route, so the whole document is fetched on every call.
func (c *HTTPCatalog) Sheet(ctx context.Context, name string) ([]CatalogRecord, error) {
	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	records, ok := data[name]
	if !ok {
		return nil, fmt.Errorf("catalog sheet %q not found", name)
	}
	return records, nil
}
