package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateOfferExcel renders the same offer as a styled workbook, for
// clients that want the numbers editable instead of a PDF. Returns the file
// contents as a byte slice.
func GenerateOfferExcel(data *OfferExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Worksheet names cap at 31 chars.
	sheetName := ExportBaseName(data.Details.OfferName)
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	widths := []float64{28, 46, 14, 12, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	captionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#F7931E"},
	})
	if err != nil {
		return nil, fmt.Errorf("create caption style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F7931E"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}
	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	symbol := data.Profile.CurrencySymbol
	rowIdx := 1

	// Title and info block.
	setCell(f, sheetName, "A", rowIdx, data.Profile.BrandLabel)
	f.SetCellStyle(sheetName, cellRef("A", rowIdx), cellRef("A", rowIdx), titleStyle)
	rowIdx += 2

	setCell(f, sheetName, "A", rowIdx, "INVOICE TO:")
	f.SetCellStyle(sheetName, cellRef("A", rowIdx), cellRef("A", rowIdx), captionStyle)
	setCell(f, sheetName, "D", rowIdx, "Offer Info")
	f.SetCellStyle(sheetName, cellRef("D", rowIdx), cellRef("D", rowIdx), captionStyle)
	rowIdx++
	setCell(f, sheetName, "A", rowIdx, data.Details.ClientName)
	setCell(f, sheetName, "D", rowIdx, fmt.Sprintf("Offer: %s", data.Details.OfferName))
	rowIdx++
	setCell(f, sheetName, "A", rowIdx, fmt.Sprintf("Client Email: %s", data.Details.ClientEmail))
	setCell(f, sheetName, "D", rowIdx, fmt.Sprintf("Expires: %s", FormatExpiration(data.Details.ExpirationDate)))
	rowIdx += 2

	// Item table.
	headers := []string{"Item", "Description", "Price", "Quantity", "Total"}
	for i, h := range headers {
		setCell(f, sheetName, columns[i], rowIdx, h)
	}
	f.SetCellStyle(sheetName, cellRef("A", rowIdx), cellRef("E", rowIdx), headerStyle)
	rowIdx++

	for _, li := range data.Lines {
		setCell(f, sheetName, "A", rowIdx, li.Name)
		setCell(f, sheetName, "B", rowIdx, li.EffectiveDescription())
		setCell(f, sheetName, "C", rowIdx, FormatMoney(symbol, li.EffectivePrice()))
		setCell(f, sheetName, "D", rowIdx, FormatQty(li.Quantity, li.Unit))
		setCell(f, sheetName, "E", rowIdx, FormatMoney(symbol, li.Total()))
		f.SetCellStyle(sheetName, cellRef("A", rowIdx), cellRef("E", rowIdx), bodyStyle)
		rowIdx++
	}
	rowIdx++

	// Totals block.
	t := data.Totals
	totals := []struct{ label, value string }{
		{"Subtotal:", FormatMoney(symbol, t.Subtotal)},
		{fmt.Sprintf("Discount (%d%%):", data.Details.Discount), "-" + FormatMoney(symbol, t.DiscountAmount)},
		{fmt.Sprintf("Tax (%d%%):", data.Details.Tax), FormatMoney(symbol, t.TaxAmount)},
		{"Total:", FormatMoney(symbol, t.GrandTotal)},
	}
	for _, tr := range totals {
		setCell(f, sheetName, "D", rowIdx, tr.label)
		f.SetCellStyle(sheetName, cellRef("D", rowIdx), cellRef("D", rowIdx), totalLabelStyle)
		setCell(f, sheetName, "E", rowIdx, tr.value)
		rowIdx++
	}

	// Notes.
	if data.Details.Notes != "" {
		rowIdx++
		setCell(f, sheetName, "A", rowIdx, "Notes:")
		f.SetCellStyle(sheetName, cellRef("A", rowIdx), cellRef("A", rowIdx), captionStyle)
		rowIdx++
		setCell(f, sheetName, "A", rowIdx, data.Details.Notes)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet, col string, row int, value any) {
	f.SetCellValue(sheet, cellRef(col, row), value)
}

func cellRef(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
