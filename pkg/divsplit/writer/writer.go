// Package writer renders customer partitions as styled report workbooks.
package writer

import (
	"fmt"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new workbook starts with.
const defaultSheet = "Sheet1"

// Write saves a report workbook for p at path. Each non-empty side of the
// partition becomes its own sheet; when both are empty the workbook keeps a
// single blank sheet.
func Write(path string, p models.Partition) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Render(f, p); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Render writes and formats the partition's sheets into f.
func Render(f *excelize.File, p models.Partition) error {
	styles := newStyleCache(f)
	for i, t := range p.Tables() {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(t.Sheet); err != nil {
			return err
		}

		if err := writeTable(f, t); err != nil {
			return fmt.Errorf("write sheet %q: %w", t.Sheet, err)
		}
		if err := formatTable(f, styles, t); err != nil {
			return fmt.Errorf("format sheet %q: %w", t.Sheet, err)
		}
	}
	return nil
}

func writeTable(f *excelize.File, t models.Table) error {
	for c, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(t.Sheet, cell, name); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if v == nil || v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(t.Sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatTable(f *excelize.File, styles *styleCache, t models.Table) error {
	for c, w := range columnWidths(t) {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.Sheet, col, col, w); err != nil {
			return err
		}
	}

	var currency []string
	if spec, ok := models.SpecFor(t.Sheet); ok {
		currency = spec.CurrencyColumns
	}

	for r, row := range planStyles(t, currency) {
		for c, s := range row {
			id, err := styles.id(s)
			if err != nil {
				return err
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(t.Sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}
	return nil
}
