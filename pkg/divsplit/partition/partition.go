// Package partition groups report rows by customer and appends totals rows.
package partition

import (
	"strings"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
)

// Key returns the customer key of a cell and whether it names a customer.
// Blank cells do not.
func Key(v interface{}) (string, bool) {
	key := models.DisplayText(v)
	if strings.TrimSpace(key) == "" {
		return "", false
	}
	return key, true
}

// Customers returns the distinct customer keys across tables in first-seen order.
// A table without the customer column contributes nothing.
func Customers(tables ...models.Table) []string {
	seen := make(map[string]bool)
	var customers []string
	for _, t := range tables {
		idx := t.ColumnIndex(models.ColumnCustomer)
		if idx < 0 {
			continue
		}
		for _, row := range t.Rows {
			key, ok := Key(cell(row, idx))
			if !ok || seen[key] {
				continue
			}
			seen[key] = true
			customers = append(customers, key)
		}
	}
	return customers
}

// Rows returns the rows of t whose customer key equals customer exactly.
func Rows(t models.Table, customer string) models.Table {
	idx := t.ColumnIndex(models.ColumnCustomer)
	var rows [][]interface{}
	if idx >= 0 {
		for _, row := range t.Rows {
			if key, ok := Key(cell(row, idx)); ok && key == customer {
				rows = append(rows, row)
			}
		}
	}
	return t.WithRows(rows)
}

// Split extracts the customer's rows from both sheets.
func Split(payout, processed models.Table, customer string) models.Partition {
	return models.Partition{
		Customer:  customer,
		Payout:    Rows(payout, customer),
		Processed: Rows(processed, customer),
	}
}

// All splits both sheets for every customer and appends totals to each side.
func All(payout, processed models.Table) []models.Partition {
	customers := Customers(payout, processed)
	parts := make([]models.Partition, 0, len(customers))
	for _, c := range customers {
		p := Split(payout, processed, c)
		p.Payout = AppendTotals(p.Payout, sumColumns(p.Payout.Sheet))
		p.Processed = AppendTotals(p.Processed, sumColumns(p.Processed.Sheet))
		parts = append(parts, p)
	}
	return parts
}

func cell(row []interface{}, idx int) interface{} {
	if idx < len(row) {
		return row[idx]
	}
	return nil
}

func sumColumns(sheet string) []string {
	spec, ok := models.SpecFor(sheet)
	if !ok {
		return nil
	}
	return spec.SumColumns
}
