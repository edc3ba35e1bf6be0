package writer

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
)

// maxColumnWidth is the widest column a worksheet accepts.
const maxColumnWidth = 255

// blankText is how an empty cell measures once the saved sheet is read back.
const blankText = "None"

// columnWidths returns, per column, the longest measured text over the header and
// every row plus two characters of padding.
func columnWidths(t models.Table) []float64 {
	widths := make([]float64, len(t.Columns))
	for c, name := range t.Columns {
		longest := utf8.RuneCountInString(name)
		for _, row := range t.Rows {
			var v interface{}
			if c < len(row) {
				v = row[c]
			}
			if n := utf8.RuneCountInString(measuredText(v)); n > longest {
				longest = n
			}
		}
		w := float64(longest + 2)
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		widths[c] = w
	}
	return widths
}

// measuredText renders v as it reads back from the saved sheet: blank cells
// become "None" and whole floats are stored, and so read, as integers.
func measuredText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return blankText
	case string:
		if x == "" {
			return blankText
		}
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
	}
	return models.DisplayText(v)
}
