package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table is a report rendered as header plus rows of plain cell values.
// Nil cells are written as empty.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Filename is the attachment name used for downloads.
func (t Table) Filename() string {
	return fmt.Sprintf("%s.xlsx", t.Name)
}

// XLSX renders the table on a single sheet named after it. The caller closes the file.
func XLSX(t Table) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := t.Name
	if sheet == "" {
		sheet = "Report"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			_ = f.Close()
			return nil, err
		}
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)

		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, float64(max(len(h)+4, 12)))
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}
