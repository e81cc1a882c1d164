package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

// ExcelExporter renders listings as .xlsx workbooks.
type ExcelExporter struct{}

// NewExcelExporter builds the exporter.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// Companies renders the companies listing and returns the workbook bytes.
func (e *ExcelExporter) Companies(companies []entity.Company) ([]byte, error) {
	rows := make([][]interface{}, 0, len(companies))
	for _, c := range companies {
		created := ""
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			string(c.ID), c.TenantID, c.DisplayName(), c.Email, c.Phone,
			c.City, c.State, c.NormalizedStatus(), c.UserCount, created,
		})
	}
	return writeSheet("Companies",
		[]string{"ID", "Tenant", "Name", "Email", "Phone", "City", "State", "Status", "Users", "Created"},
		rows)
}

// Plans renders the plans listing and returns the workbook bytes.
func (e *ExcelExporter) Plans(plans []entity.Plan) ([]byte, error) {
	rows := make([][]interface{}, 0, len(plans))
	for _, p := range plans {
		offer, _ := p.OfferPrice.Float64()
		sale, _ := p.SalePrice.Float64()
		rows = append(rows, []interface{}{
			string(p.ID), p.Name, offer, sale, p.NoOfDays,
			p.ManageBusiness, p.Branch, p.AccessUsers, yesNo(p.IsActive),
		})
	}
	return writeSheet("Plans",
		[]string{"ID", "Name", "Offer Price", "Sale Price", "Days", "Businesses", "Branches", "Users", "Active"},
		rows)
}

func writeSheet(sheet string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export: create sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("export: header %q: %w", h, err)
		}
	}

	for r, values := range rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("export: row %d: %w", r+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
