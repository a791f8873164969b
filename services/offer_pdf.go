package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateOfferPDF composes the offer document with maroto/v2 and returns
// the raw PDF bytes. The layout is the fixed template: header band, info
// blocks, item table, totals, wrapped notes, signature block, footer. Rows
// flow across page breaks automatically; only the table continues on a new
// page, the header band is not repeated. There is no internal recovery: the
// composer either completes the document or returns the error.
func GenerateOfferPDF(data *OfferExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addOfferHeader(m, data)
	addOfferInfoBlocks(m, data)
	addOfferLinesTable(m, data)
	addOfferTotals(m, data)
	addOfferNotes(m, data)
	addOfferSignature(m)
	addOfferFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate offer PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func accentColor(data *OfferExportData) *props.Color {
	return &props.Color{
		Red:   data.Profile.Accent.R,
		Green: data.Profile.Accent.G,
		Blue:  data.Profile.Accent.B,
	}
}

// addOfferHeader adds the full-width dark band with the brand label on the
// left, the document-type label on the right, and the short accent rule.
func addOfferHeader(m core.Maroto, data *OfferExportData) {
	bandBg := &props.Color{Red: 0, Green: 0, Blue: 0}
	bandCell := &props.Cell{BackgroundColor: bandBg}

	m.AddRows(
		row.New(16).Add(
			col.New(6).Add(
				text.New(data.Profile.BrandLabel, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Top:   4,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(bandCell),
			col.New(6).Add(
				text.New(data.Profile.DocumentLabel, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Right,
					Top:   3,
					Color: accentColor(data),
				}),
			).WithStyle(bandCell),
		),
	)

	// Short accent rule under the brand label.
	m.AddRows(
		row.New(2).Add(
			col.New(3).WithStyle(&props.Cell{BackgroundColor: accentColor(data)}),
			col.New(9),
		),
	)

	m.AddRows(row.New(6))
}

// addOfferInfoBlocks adds the two-column info block: client under
// "INVOICE TO" on the left, offer name and expiration under "Offer Info" on
// the right.
func addOfferInfoBlocks(m core.Maroto, data *OfferExportData) {
	captionLeft := props.Text{
		Size:  11,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: accentColor(data),
	}
	captionRight := captionLeft
	captionRight.Align = align.Right

	valueLeft := props.Text{Size: 10, Align: align.Left}
	valueRight := props.Text{Size: 10, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("INVOICE TO:", captionLeft)),
			col.New(6).Add(text.New("Offer Info", captionRight)),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(data.Details.ClientName, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(6).Add(text.New(fmt.Sprintf("Offer: %s", data.Details.OfferName), valueRight)),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Client Email: %s", data.Details.ClientEmail), valueLeft)),
			col.New(6).Add(text.New(fmt.Sprintf("Expires: %s", FormatExpiration(data.Details.ExpirationDate)), valueRight)),
		),
	)

	m.AddRows(row.New(6))
}

// addOfferLinesTable adds the item table. Maroto paginates the rows when
// they run past the page height, so only the table flows onto continuation
// pages.
func addOfferLinesTable(m core.Maroto, data *OfferExportData) {
	headerText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerTextCenter := headerText
	headerTextCenter.Align = align.Center
	headerCell := &props.Cell{BackgroundColor: accentColor(data)}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("ITEM", headerText)).WithStyle(headerCell),
			col.New(4).Add(text.New("DESCRIPTION", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("PRICE", headerTextRight)).WithStyle(headerCell),
			col.New(1).Add(text.New("QTY", headerTextCenter)).WithStyle(headerCell),
			col.New(2).Add(text.New("TOTAL", headerTextRight)).WithStyle(headerCell),
		),
	)

	bodyBg := &props.Color{Red: 249, Green: 249, Blue: 249}
	symbol := data.Profile.CurrencySymbol

	for _, li := range data.Lines {
		bodyText := props.Text{Size: 9, Align: align.Left}
		bodyTextRight := props.Text{Size: 9, Align: align.Right}
		bodyTextCenter := props.Text{Size: 9, Align: align.Center}
		bodyCell := &props.Cell{BackgroundColor: bodyBg}

		m.AddRows(
			row.New(7).Add(
				col.New(3).Add(text.New(li.Name, bodyText)).WithStyle(bodyCell),
				col.New(4).Add(text.New(li.EffectiveDescription(), bodyText)).WithStyle(bodyCell),
				col.New(2).Add(text.New(FormatMoney(symbol, li.EffectivePrice()), bodyTextRight)).WithStyle(bodyCell),
				col.New(1).Add(text.New(FormatQty(li.Quantity, li.Unit), bodyTextCenter)).WithStyle(bodyCell),
				col.New(2).Add(text.New(FormatMoney(symbol, li.Total()), bodyTextRight)).WithStyle(bodyCell),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addOfferTotals adds the right-aligned totals block below the table's last
// row, on whichever page that lands: Subtotal, Discount with its literal
// percentage, Tax likewise, and the emphasized Total.
func addOfferTotals(m core.Maroto, data *OfferExportData) {
	labelStyle := props.Text{Size: 10, Align: align.Left}
	valueStyle := props.Text{Size: 10, Align: align.Right}

	symbol := data.Profile.CurrencySymbol
	t := data.Totals

	rows := []struct{ label, value string }{
		{"Subtotal:", FormatMoney(symbol, t.Subtotal)},
		{fmt.Sprintf("Discount (%d%%):", data.Details.Discount), "-" + FormatMoney(symbol, t.DiscountAmount)},
		{fmt.Sprintf("Tax (%d%%):", data.Details.Tax), FormatMoney(symbol, t.TaxAmount)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(6).Add(
				col.New(7),
				col.New(3).Add(text.New(r.label, labelStyle)),
				col.New(2).Add(text.New(r.value, valueStyle)),
			),
		)
	}

	grandStyle := props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Right,
		Top:   1,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	grandLabelStyle := grandStyle
	grandLabelStyle.Align = align.Left
	grandCell := &props.Cell{BackgroundColor: accentColor(data)}

	m.AddRows(
		row.New(9).Add(
			col.New(7),
			col.New(3).Add(text.New("Total:", grandLabelStyle)).WithStyle(grandCell),
			col.New(2).Add(text.New(FormatMoney(symbol, t.GrandTotal), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(4))
}

// addOfferNotes adds the label and the word-wrapped notes text, one row per
// wrapped line. Everything after the block moves down by the wrapped line
// count times NoteLineHeight.
func addOfferNotes(m core.Maroto, data *OfferExportData) {
	lines := WrapText(data.Details.Notes, NotesLineChars)
	if len(lines) == 0 {
		return
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("Notes:", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	noteStyle := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 85, Green: 85, Blue: 85},
	}
	for _, line := range lines {
		m.AddRows(
			row.New(NoteLineHeight).Add(
				col.New(12).Add(text.New(line, noteStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addOfferSignature adds the two-caption signature block anchored to the
// right.
func addOfferSignature(m core.Maroto) {
	m.AddRows(row.New(10))

	lineStyle := props.Text{
		Size:  9,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	captionStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
	}
	subCaptionStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(5).Add(
			col.New(8),
			col.New(4).Add(text.New("____________________________", lineStyle)),
		),
	)
	m.AddRows(
		row.New(5).Add(
			col.New(8),
			col.New(4).Add(text.New("Your Name & Signature", captionStyle)),
		),
	)
	m.AddRows(
		row.New(5).Add(
			col.New(8),
			col.New(4).Add(text.New("Account Manager", subCaptionStyle)),
		),
	)
}

// addOfferFooter adds the contact and thanks lines.
func addOfferFooter(m core.Maroto, data *OfferExportData) {
	if data.Profile.ContactLine == "" && data.Profile.ThanksLine == "" {
		return
	}

	footerStyle := props.Text{
		Size:  8,
		Style: fontstyle.Italic,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(row.New(8))
	if data.Profile.ContactLine != "" {
		m.AddRows(
			row.New(4).Add(col.New(12).Add(text.New(data.Profile.ContactLine, footerStyle))),
		)
	}
	if data.Profile.ThanksLine != "" {
		m.AddRows(
			row.New(4).Add(col.New(12).Add(text.New(data.Profile.ThanksLine, footerStyle))),
		)
	}
}
