// Package export renders companies and plans listings as downloadable
// reports. The PDF exporter uses Maroto v2, the spreadsheet exporter uses
// excelize; both take the already filtered/sorted listing so the file
// matches what the console showed.
package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter renders listings with Maroto v2.
type PDFExporter struct{}

// NewPDFExporter builds the exporter.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

// Companies renders the companies listing and returns the PDF bytes.
func (e *PDFExporter) Companies(companies []entity.Company) ([]byte, error) {
	m := newDocument("Companies Report")

	m.AddRows(headerRow(
		cell{"Tenant", 2, align.Left},
		cell{"Name", 3, align.Left},
		cell{"Email", 3, align.Left},
		cell{"City", 1, align.Left},
		cell{"Status", 1, align.Center},
		cell{"Users", 1, align.Right},
		cell{"Created", 1, align.Right},
	))
	for _, c := range companies {
		m.AddRows(detailRow(
			cell{c.TenantID, 2, align.Left},
			cell{c.DisplayName(), 3, align.Left},
			cell{c.Email, 3, align.Left},
			cell{c.City, 1, align.Left},
			cell{c.NormalizedStatus(), 1, align.Center},
			cell{fmt.Sprintf("%d", c.UserCount), 1, align.Right},
			cell{formatDate(c.CreatedAt), 1, align.Right},
		))
	}

	return generate(m)
}

// Plans renders the plans listing and returns the PDF bytes.
func (e *PDFExporter) Plans(plans []entity.Plan) ([]byte, error) {
	m := newDocument("Plans Report")

	m.AddRows(headerRow(
		cell{"Name", 3, align.Left},
		cell{"Offer", 2, align.Right},
		cell{"Sale", 2, align.Right},
		cell{"Days", 1, align.Right},
		cell{"Businesses", 2, align.Right},
		cell{"Active", 2, align.Center},
	))
	for _, p := range plans {
		m.AddRows(detailRow(
			cell{p.Name, 3, align.Left},
			cell{p.OfferPrice.StringFixed(2), 2, align.Right},
			cell{p.SalePrice.StringFixed(2), 2, align.Right},
			cell{fmt.Sprintf("%d", p.NoOfDays), 1, align.Right},
			cell{fmt.Sprintf("%d", p.ManageBusiness), 2, align.Right},
			cell{yesNo(p.IsActive), 2, align.Center},
		))
	}

	return generate(m)
}

// cell pairs a value with its grid width and alignment.
type cell struct {
	value string
	size  int
	align align.Type
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New("Generated "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

func headerRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.value, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func detailRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.value, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
