package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkbookCatalog reads the catalog from a local .xlsx workbook. The remote
// endpoint this system normally talks to is itself spreadsheet-backed, so a
// local workbook is the degenerate deployment: each worksheet is one catalog
// sheet, with an "Item Code" / "Description" / "Unit Price" header row.
type WorkbookCatalog struct {
	Path string
}

// NewWorkbookCatalog builds a source for the given workbook path.
func NewWorkbookCatalog(path string) *WorkbookCatalog {
	return &WorkbookCatalog{Path: path}
}

// SheetNames lists the worksheets of the workbook in file order.
func (w *WorkbookCatalog) SheetNames(ctx context.Context) ([]string, error) {
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// Sheet reads one worksheet into raw catalog records. Columns are resolved
// by header name, so column order in the workbook does not matter. Rows
// whose description cell is empty are skipped.
func (w *WorkbookCatalog) Sheet(ctx context.Context, name string) ([]CatalogRecord, error) {
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	codeCol, descCol, priceCol := -1, -1, -1
	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "item code":
			codeCol = i
		case "description":
			descCol = i
		case "unit price":
			priceCol = i
		}
	}
	if descCol < 0 {
		return nil, fmt.Errorf("catalog sheet %q has no Description column", name)
	}

	var records []CatalogRecord
	for _, row := range rows[1:] {
		rec := CatalogRecord{
			ItemCode:    cellAt(row, codeCol),
			Description: cellAt(row, descCol),
		}
		if price := cellAt(row, priceCol); price != "" {
			rec.UnitPrice = price
		}
		if rec.Description == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// cellAt returns the trimmed cell value, tolerating ragged rows.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
