// Package parser reads report sheets from workbook files into models.Table values.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates a requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// cellReader converts raw cell text into typed values, caching style lookups.
type cellReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	isDate   map[int]bool
}

func newCellReader(f *excelize.File, sheet string) *cellReader {
	r := &cellReader{f: f, sheet: sheet, isDate: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// ExtractTable reads a sheet into a table. The first row is the header; fully
// blank rows are skipped and short rows are padded with nil.
func ExtractTable(f *excelize.File, sheetName string) (models.Table, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return models.Table{}, err
	}
	if idx < 0 {
		return models.Table{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Table{}, err
	}

	table := models.Table{Sheet: sheetName}
	if len(rows) == 0 {
		return table, nil
	}
	table.Columns = headerNames(rows[0])

	r := newCellReader(f, sheetName)
	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, below the header
		values := make([]interface{}, len(table.Columns))
		hasData := false

		for colIdx, raw := range row {
			if raw == "" || colIdx >= len(values) {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return models.Table{}, err
			}
			v, err := r.value(cellName, raw)
			if err != nil {
				return models.Table{}, fmt.Errorf("cell %s: %w", cellName, err)
			}
			values[colIdx] = v
			hasData = true
		}

		if hasData {
			table.Rows = append(table.Rows, values)
		}
	}

	return table, nil
}

// headerNames returns the header row with blank names replaced by "Unnamed: <idx>".
func headerNames(row []string) []string {
	names := make([]string, len(row))
	for i, name := range row {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		names[i] = name
	}
	return names
}

func (r *cellReader) value(cellName, raw string) (interface{}, error) {
	typ, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return t, nil
		}
		return raw, nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, nil
		}
		isDate, err := r.hasDateFormat(cellName)
		if err != nil {
			return nil, err
		}
		if isDate {
			if t, err := excelize.ExcelDateToTime(n, r.date1904); err == nil {
				return t, nil
			}
		}
		return parseValue(raw), nil
	default:
		return raw, nil
	}
}

func (r *cellReader) hasDateFormat(cellName string) (bool, error) {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil || styleID == 0 {
		return false, err
	}
	if cached, ok := r.isDate[styleID]; ok {
		return cached, nil
	}
	style, err := r.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	r.isDate[styleID] = isDate
	return isDate, nil
}

// isDateNumFmt reports whether a built-in number format id or custom format code
// renders a date or time.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode looks for date/time tokens outside quoted and bracketed sections.
func isDateFormatCode(code string) bool {
	if strings.EqualFold(code, "general") {
		return false
	}
	inQuote, inBracket := false, false
	for _, c := range strings.ToLower(code) {
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		case strings.ContainsRune("ymdhs", c):
			return true
		}
	}
	return false
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
