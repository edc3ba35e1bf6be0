// Package models defines the tabular data structures shared by the divsplit pipeline.
package models

// Table is a named sheet held in memory: an ordered header plus rows of cell values.
//
// Cell values are nil, string, int64, float64, bool or time.Time.
type Table struct {
	// Sheet is the sheet name the table was read from or will be written to.
	Sheet string
	// Columns holds the header names in sheet order.
	Columns []string
	// Rows holds data rows; every row has len(Columns) cells.
	Rows [][]interface{}
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the 0-based index of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column is present.
func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the cell at row for the named column, or nil when the column is absent.
func (t Table) Value(row int, column string) interface{} {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][idx]
}

// WithRows returns a copy of t sharing the header but holding rows.
func (t Table) WithRows(rows [][]interface{}) Table {
	return Table{
		Sheet:   t.Sheet,
		Columns: t.Columns,
		Rows:    rows,
	}
}
