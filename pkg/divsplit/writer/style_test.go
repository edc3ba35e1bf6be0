package writer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
)

func sampleTable() models.Table {
	return models.Table{
		Sheet: models.SheetPayout,
		Columns: []string{
			models.ColumnCustomer,
			"DPA",
			models.ColumnPaymentAmount,
			models.ColumnCustomerDividend,
		},
		Rows: [][]interface{}{
			{"Acme", "D1", 10.0, 0.5},
			{"Acme", "D2", -2.5, 0.0},
			{"Acme", nil, 0.0, 0.25},
			{models.TotalLabel, nil, 7.5, 0.0},
		},
	}
}

func TestPlanStylesHeader(t *testing.T) {
	plan := planStyles(sampleTable(), models.PayoutSpec.CurrencyColumns)
	require.Len(t, plan, 5)

	for c, s := range plan[0] {
		assert.True(t, s.bold, "header col %d bold", c)
		assert.True(t, s.fill, "header col %d filled", c)
		assert.Empty(t, s.numFmt)
	}
	assert.Equal(t, borderTop|borderBottom|borderLeft, plan[0][0].border)
	assert.Equal(t, borderTop|borderBottom, plan[0][1].border)
	assert.Equal(t, borderTop|borderBottom|borderRight, plan[0][3].border)
}

func TestPlanStylesDataRegion(t *testing.T) {
	plan := planStyles(sampleTable(), models.PayoutSpec.CurrencyColumns)

	// Rows 2..4 in sheet terms are plan rows 1..3.
	assert.Equal(t, borderTop|borderLeft, plan[1][0].border)
	assert.Equal(t, borderTop, plan[1][1].border)
	assert.Equal(t, borderTop|borderRight, plan[1][3].border)
	assert.Equal(t, borderLeft, plan[2][0].border)
	assert.Equal(t, uint8(0), plan[2][1].border)
	assert.Equal(t, borderRight, plan[2][3].border)
	assert.Equal(t, borderBottom|borderLeft, plan[3][0].border)
	assert.Equal(t, borderBottom, plan[3][1].border)

	for r := 1; r <= 3; r++ {
		for c := range plan[r] {
			assert.False(t, plan[r][c].bold)
			assert.False(t, plan[r][c].fill)
		}
	}
}

func TestPlanStylesTotalsRow(t *testing.T) {
	plan := planStyles(sampleTable(), models.PayoutSpec.CurrencyColumns)
	totals := plan[4]

	for _, s := range totals {
		assert.True(t, s.bold)
	}
	// "Total" and 7.5 are truthy; the blank DPA cell and the zero dividend are not.
	assert.True(t, totals[0].fill)
	assert.Equal(t, borderAll, totals[0].border)
	assert.False(t, totals[1].fill)
	assert.Equal(t, uint8(0), totals[1].border)
	assert.True(t, totals[2].fill)
	assert.Equal(t, borderAll, totals[2].border)
	assert.False(t, totals[3].fill)
	assert.Equal(t, uint8(0), totals[3].border)
}

func TestPlanStylesCurrencyColumns(t *testing.T) {
	plan := planStyles(sampleTable(), models.ProcessedSpec.CurrencyColumns)

	for r := 1; r < len(plan); r++ {
		assert.Equal(t, AccountingFormat, plan[r][2].numFmt)
		assert.Empty(t, plan[r][3].numFmt, "dividend is not a currency column on this sheet")
	}
	assert.Empty(t, plan[0][2].numFmt)
}

func TestPlanStylesTwoRowSheet(t *testing.T) {
	tbl := models.Table{
		Sheet:   models.SheetProcessed,
		Columns: []string{models.ColumnCustomer, models.ColumnPaymentAmount},
		Rows:    [][]interface{}{{models.TotalLabel, 0.0}},
	}

	plan := planStyles(tbl, nil)

	// With no data region the totals row keeps only the truthy box.
	assert.Equal(t, borderAll, plan[1][0].border)
	assert.Equal(t, uint8(0), plan[1][1].border)
	assert.False(t, plan[1][1].fill)
}

func TestPlanStylesDates(t *testing.T) {
	when := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	tbl := models.Table{
		Sheet:   models.SheetPayout,
		Columns: []string{models.ColumnCustomer, "Date Fees Collected", models.ColumnPaymentAmount},
		Rows:    [][]interface{}{{"Acme", when, when}, {models.TotalLabel, nil, 1.0}},
	}

	plan := planStyles(tbl, models.PayoutSpec.CurrencyColumns)

	assert.Equal(t, DateTimeFormat, plan[1][1].numFmt)
	assert.Equal(t, AccountingFormat, plan[1][2].numFmt, "currency format wins over date format")
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths(sampleTable())

	assert.Equal(t, []float64{
		float64(len(models.ColumnCustomer) + 2),
		float64(len("None") + 2),
		float64(len(models.ColumnPaymentAmount) + 2),
		float64(len(models.ColumnCustomerDividend) + 2),
	}, widths)

	long := models.Table{
		Columns: []string{"A"},
		Rows:    [][]interface{}{{"Société Générale"}, {int64(1234567)}},
	}
	assert.Equal(t, []float64{18}, columnWidths(long))
}

func TestColumnWidthsBlankTotals(t *testing.T) {
	tbl := models.Table{
		Sheet:   models.SheetPayout,
		Columns: []string{models.ColumnCustomer, "DPA", "Amt"},
		Rows: [][]interface{}{
			{"Acme", "Yes", 15.0},
			{"Acme", "No", ""},
			{models.TotalLabel, nil, 15.0},
		},
	}

	// Blank cells measure as "None"; the whole-number total as "15".
	assert.Equal(t, []float64{
		float64(len(models.ColumnCustomer) + 2),
		6,
		6,
	}, columnWidths(tbl))
}

func TestMeasuredText(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, "None"},
		{"", "None"},
		{"Acme", "Acme"},
		{15.0, "15"},
		{-2.0, "-2"},
		{7.5, "7.5"},
		{int64(3), "3"},
		{true, "True"},
		{time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC), "2024-01-05 09:30:00"},
	}

	for _, tt := range tests {
		if got := measuredText(tt.input); got != tt.expected {
			t.Errorf("measuredText(%#v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
