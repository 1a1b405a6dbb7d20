package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Statement"

var xlsxHeaders = []string{"Date", "Type", "Amount", "Description", "Tags"}

// RenderXLSX writes the statement as a single-sheet workbook: one row per
// entry followed by the totals.
func RenderXLSX(st *Statement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", bold); err != nil {
		return nil, err
	}

	row := 2
	for _, e := range st.Entries {
		values := []interface{}{
			e.CreatedAt.Format("2006-01-02 15:04"),
			string(e.Type),
			signedAmount(e).InexactFloat64(),
			e.Description,
			tagTitles(e, true),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Total income", st.Income.InexactFloat64()},
		{"Total expense", st.Expense.InexactFloat64()},
		{"Balance", st.Balance().InexactFloat64()},
	}
	for _, t := range totals {
		label := fmt.Sprintf("B%d", row)
		if err := f.SetCellValue(sheetName, label, t.label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.value); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, label, label, bold); err != nil {
			return nil, err
		}
		row++
	}

	widths := map[string]float64{"A": 18, "B": 14, "C": 12, "D": 40, "E": 30}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
