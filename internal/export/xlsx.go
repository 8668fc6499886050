package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const HierarchySheet = "Vista Completa"

// WriteXLSX renders rows (header first) into a single-sheet workbook.
func WriteXLSX(sheet string, rows [][]any) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		r := row
		if err := xl.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if len(rows) > 0 {
		if err := xl.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, fmt.Errorf("freeze header: %w", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
