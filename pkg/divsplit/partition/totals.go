package partition

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
)

// AppendTotals returns t with a totals row appended. The customer column holds
// models.TotalLabel, each present sum column holds the sum of its numeric cells
// and every other cell is nil. Sum columns absent from t are skipped. An empty
// table is returned unchanged.
func AppendTotals(t models.Table, sumColumns []string) models.Table {
	if t.Empty() {
		return t
	}

	totals := make([]interface{}, len(t.Columns))
	if idx := t.ColumnIndex(models.ColumnCustomer); idx >= 0 {
		totals[idx] = models.TotalLabel
	}
	for _, name := range sumColumns {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		totals[idx] = Sum(t, idx).InexactFloat64()
	}

	rows := make([][]interface{}, 0, len(t.Rows)+1)
	rows = append(rows, t.Rows...)
	rows = append(rows, totals)
	return t.WithRows(rows)
}

// Sum adds the numeric cells of column idx. Blank and non-numeric cells count as zero.
func Sum(t models.Table, idx int) decimal.Decimal {
	total := decimal.Zero
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		if d, ok := models.Numeric(row[idx]); ok {
			total = total.Add(d)
		}
	}
	return total
}
