package documents

import (
	"fmt"

	"aquaops/internal/domain/entities"
	"aquaops/pkg/format"

	"github.com/xuri/excelize/v2"
)

const customersSheetName = "Customers"

// BuildCustomersXLSX renders the customer book as an XLSX workbook and
// returns the file contents.
func BuildCustomersXLSX(customers []entities.Customer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, customersSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	widths := []float64{30, 18, 32, 18, 14}
	for i, c := range columns {
		if err := f.SetColWidth(customersSheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Name", "Phone", "Email", "Lead Source", "Joined"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", columns[i])
		if err := f.SetCellValue(customersSheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(customersSheetName, "A1", "E1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header row: %w", err)
	}

	loc := format.Location()
	for i, c := range customers {
		rowNum := i + 2
		values := []interface{}{c.Name, c.Phone, c.Email, c.LeadSource, format.Date(c.CreatedAt, loc)}
		for j, v := range values {
			cell := fmt.Sprintf("%s%d", columns[j], rowNum)
			if err := f.SetCellValue(customersSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
