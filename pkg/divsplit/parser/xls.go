package parser

import (
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
)

// xlsSource reads legacy BIFF workbooks. Cells come back as text and are typed
// with parseValue, so date cells surface as their serial numbers.
type xlsSource struct {
	wb xls.Workbook
}

func openXLS(path string) (*xlsSource, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsSource{wb: wb}, nil
}

func (s *xlsSource) Sheet(name string) (models.Table, error) {
	for _, sheet := range s.wb.GetSheets() {
		if sheet.GetName() != name {
			continue
		}

		var grid [][]string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, cell := range row.GetCols() {
				cells = append(cells, cell.GetString())
			}
			grid = append(grid, cells)
		}
		return tableFromGrid(name, grid), nil
	}
	return models.Table{}, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func (s *xlsSource) Close() error {
	return nil
}

// tableFromGrid builds a table from untyped text rows, header first.
func tableFromGrid(sheet string, grid [][]string) models.Table {
	table := models.Table{Sheet: sheet}
	if len(grid) == 0 {
		return table
	}
	table.Columns = headerNames(grid[0])

	for _, row := range grid[1:] {
		values := make([]interface{}, len(table.Columns))
		hasData := false
		for i, raw := range row {
			if raw == "" || i >= len(values) {
				continue
			}
			values[i] = parseValue(raw)
			hasData = true
		}
		if hasData {
			table.Rows = append(table.Rows, values)
		}
	}
	return table
}
