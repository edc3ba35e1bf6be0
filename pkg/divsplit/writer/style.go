package writer

import (
	"time"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
	"github.com/xuri/excelize/v2"
)

const (
	// HighlightColor fills the header row and truthy totals cells.
	HighlightColor = "#C5D9F1"

	// AccountingFormat renders positives with a currency symbol, negatives in
	// parentheses and zero as a dash.
	AccountingFormat = `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`

	// DateTimeFormat is applied to date cells.
	DateTimeFormat = "yyyy-mm-dd hh:mm:ss"
)

// Border sides, combined as a bit set.
const (
	borderLeft uint8 = 1 << iota
	borderTop
	borderRight
	borderBottom

	borderAll = borderLeft | borderTop | borderRight | borderBottom
)

// cellStyle is the resolved formatting of one cell. It is comparable so that
// identical cells share one workbook style.
type cellStyle struct {
	bold   bool
	fill   bool
	header bool
	border uint8
	numFmt string
}

// planStyles resolves the style of every cell of a sheet holding t, header
// included: plan[0] is the header row, plan[len(t.Rows)] the last row.
// Passes run in order and later passes overwrite earlier ones.
func planStyles(t models.Table, currency []string) [][]cellStyle {
	maxRow := len(t.Rows) + 1
	maxCol := len(t.Columns)

	plan := make([][]cellStyle, maxRow)
	for r := range plan {
		plan[r] = make([]cellStyle, maxCol)
	}
	value := func(row, col int) interface{} {
		if row == 0 {
			return t.Columns[col]
		}
		data := t.Rows[row-1]
		if col < len(data) {
			return data[col]
		}
		return nil
	}

	// Date cells carry a date format from the start; currency formatting below wins.
	for r := 1; r < maxRow; r++ {
		for c := 0; c < maxCol; c++ {
			if _, ok := value(r, c).(time.Time); ok {
				plan[r][c].numFmt = DateTimeFormat
			}
		}
	}

	// Header: bold and filled.
	for c := 0; c < maxCol; c++ {
		plan[0][c].bold = true
		plan[0][c].fill = true
		plan[0][c].header = true
	}

	last := maxRow - 1
	// Totals row: bold everywhere, fill only where a value is present.
	if maxRow > 1 {
		for c := 0; c < maxCol; c++ {
			plan[last][c].bold = true
			if models.Truthy(value(last, c)) {
				plan[last][c].fill = true
			}
		}
	}

	// Header borders: top and bottom on every cell, outer left and right edges.
	for c := 0; c < maxCol; c++ {
		b := borderTop | borderBottom
		if c == 0 {
			b |= borderLeft
		}
		if c == maxCol-1 {
			b |= borderRight
		}
		plan[0][c].border = b
	}

	// Data region outline, rows between the header and the totals row.
	if maxRow > 2 {
		first, end := 1, maxRow-2
		for r := first; r <= end; r++ {
			for c := 0; c < maxCol; c++ {
				var b uint8
				if r == first {
					b |= borderTop
				}
				if r == end {
					b |= borderBottom
				}
				if c == 0 {
					b |= borderLeft
				}
				if c == maxCol-1 {
					b |= borderRight
				}
				plan[r][c].border = b
			}
		}
	}

	// Totals cells with a value get a full box.
	if maxRow > 1 {
		for c := 0; c < maxCol; c++ {
			if models.Truthy(value(last, c)) {
				plan[last][c].border = borderAll
			}
		}
	}

	// Currency columns, every row below the header.
	for _, name := range currency {
		c := t.ColumnIndex(name)
		if c < 0 {
			continue
		}
		for r := 1; r < maxRow; r++ {
			plan[r][c].numFmt = AccountingFormat
		}
	}

	return plan
}

// excelStyle converts a resolved cell style into an excelize style definition.
func (s cellStyle) excelStyle() *excelize.Style {
	style := &excelize.Style{}
	if s.bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if s.fill {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{HighlightColor}, Pattern: 1}
	}
	if s.header {
		style.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "top"}
	}
	for _, side := range []struct {
		bit  uint8
		name string
	}{
		{borderLeft, "left"},
		{borderTop, "top"},
		{borderRight, "right"},
		{borderBottom, "bottom"},
	} {
		if s.border&side.bit != 0 {
			style.Border = append(style.Border, excelize.Border{Type: side.name, Color: "000000", Style: 1})
		}
	}
	if s.numFmt != "" {
		numFmt := s.numFmt
		style.CustomNumFmt = &numFmt
	}
	return style
}

// styleCache registers each distinct cellStyle with the workbook once.
type styleCache struct {
	f   *excelize.File
	ids map[cellStyle]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, ids: make(map[cellStyle]int)}
}

func (c *styleCache) id(s cellStyle) (int, error) {
	if id, ok := c.ids[s]; ok {
		return id, nil
	}
	id, err := c.f.NewStyle(s.excelStyle())
	if err != nil {
		return 0, err
	}
	c.ids[s] = id
	return id, nil
}
