// Package documents builds the downloadable artifacts the admin UI offers:
// the printable estimate quote (PDF) and the customer book export (XLSX).
package documents

import (
	"fmt"
	"strconv"
	"time"

	"aquaops/internal/domain/entities"
	"aquaops/pkg/format"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// BuildEstimatePDF renders the quote document for an estimate. The customer
// may be a zero value when the record no longer exists; the document is
// still produced without the recipient block.
func BuildEstimatePDF(e entities.Estimate, c entities.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, e, c)
	addItemsTableHeader(m)
	for _, li := range e.Items {
		addItemRow(m, li)
	}
	addEstimateSummary(m, e)
	addEstimateFooter(m, e)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addEstimateHeader(m core.Maroto, e entities.Estimate, c entities.Customer) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Pool Service Estimate", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtle := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Estimate #%s", e.ID), props.Text{
					Size:  9,
					Align: align.Left,
					Color: subtle,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", format.Date(e.CreatedAt, format.Location())), props.Text{
					Size:  9,
					Align: align.Right,
					Color: subtle,
				}),
			),
		),
	)

	if c.ID != "" {
		prepared := fmt.Sprintf("Prepared for: %s", c.Name)
		if c.Phone != "" {
			prepared += "  |  " + c.Phone
		}
		if c.Email != "" {
			prepared += "  |  " + c.Email
		}
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(prepared, props.Text{Size: 9, Align: align.Left}),
				),
			),
		)
	}

	if e.ValidUntil != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Valid until: %s", e.ValidUntil), props.Text{
						Size:  9,
						Align: align.Left,
						Color: subtle,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addItemsTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addItemRow(m core.Maroto, li entities.LineItem) {
	cell := props.Text{Size: 8, Align: align.Right}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(li.Description, props.Text{Size: 8, Align: align.Left})),
			col.New(2).Add(text.New(strconv.FormatFloat(li.Quantity, 'f', -1, 64), cell)),
			col.New(2).Add(text.New(format.Currency(li.UnitPriceCents), cell)),
			col.New(2).Add(text.New(format.Currency(li.TotalCents), cell)),
		),
	)
}

func addEstimateSummary(m core.Maroto, e entities.Estimate) {
	m.AddRows(row.New(4))

	label := props.Text{Size: 9, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right}
	bold := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(10).Add(text.New("Subtotal", label)),
			col.New(2).Add(text.New(format.Currency(e.SubtotalCents), value)),
		),
		row.New(6).Add(
			col.New(10).Add(text.New(fmt.Sprintf("Tax (%s)", format.Percent(e.TaxRate)), label)),
			col.New(2).Add(text.New(format.Currency(e.TaxCents), value)),
		),
		row.New(7).Add(
			col.New(10).Add(text.New("Total", bold)),
			col.New(2).Add(text.New(format.Currency(e.TotalCents), bold)),
		),
	)
}

func addEstimateFooter(m core.Maroto, e entities.Estimate) {
	subtle := &props.Color{Red: 120, Green: 120, Blue: 120}

	if e.Notes != "" {
		m.AddRows(
			row.New(4),
			row.New(6).Add(
				col.New(12).Add(
					text.New("Notes", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}),
				),
			),
			row.New(10).Add(
				col.New(12).Add(
					text.New(e.Notes, props.Text{Size: 8, Align: align.Left}),
				),
			),
		)
	}

	m.AddRows(
		row.New(4),
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated %s", format.Date(time.Now(), format.Location())), props.Text{
					Size:  7,
					Align: align.Left,
					Color: subtle,
				}),
			),
		),
	)
}
