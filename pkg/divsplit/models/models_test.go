package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected bool
	}{
		{nil, false},
		{"", false},
		{"Total", true},
		{int64(0), false},
		{int64(3), true},
		{0.0, false},
		{-2.5, true},
		{false, false},
		{true, true},
		{decimal.Zero, false},
		{decimal.NewFromFloat(7.5), true},
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		if got := Truthy(tt.input); got != tt.expected {
			t.Errorf("Truthy(%#v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"Acme", "Acme"},
		{int64(12345), "12345"},
		{10.0, "10.0"},
		{7.5, "7.5"},
		{-2.25, "-2.25"},
		{true, "True"},
		{time.Date(2024, 1, 5, 13, 4, 5, 0, time.UTC), "2024-01-05 13:04:05"},
	}

	for _, tt := range tests {
		if got := DisplayText(tt.input); got != tt.expected {
			t.Errorf("DisplayText(%#v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNumeric(t *testing.T) {
	if d, ok := Numeric(10.5); !ok || !d.Equal(decimal.RequireFromString("10.5")) {
		t.Errorf("Numeric(10.5) = %v, %v", d, ok)
	}
	if d, ok := Numeric(int64(-3)); !ok || !d.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("Numeric(-3) = %v, %v", d, ok)
	}
	for _, v := range []interface{}{nil, "12", true, time.Now()} {
		if _, ok := Numeric(v); ok {
			t.Errorf("Numeric(%#v) should not be numeric", v)
		}
	}
}

func TestTableLookup(t *testing.T) {
	tbl := Table{
		Sheet:   SheetPayout,
		Columns: []string{ColumnCustomer, ColumnPaymentAmount},
		Rows:    [][]interface{}{{"Acme", 10.0}},
	}

	if tbl.ColumnIndex(ColumnPaymentAmount) != 1 {
		t.Errorf("expected Payment Amount at index 1")
	}
	if tbl.HasColumn(ColumnCustomerDividend) {
		t.Errorf("did not expect %q", ColumnCustomerDividend)
	}
	if tbl.Value(0, ColumnPaymentAmount) != 10.0 {
		t.Errorf("expected 10.0, got %v", tbl.Value(0, ColumnPaymentAmount))
	}
	if tbl.Value(0, "Nope") != nil {
		t.Errorf("expected nil for an absent column")
	}
}

func TestPartitionTables(t *testing.T) {
	p := Partition{
		Customer:  "Acme",
		Payout:    Table{Sheet: SheetPayout},
		Processed: Table{Sheet: SheetProcessed, Rows: [][]interface{}{{"Acme"}}},
	}
	tables := p.Tables()
	if len(tables) != 1 || tables[0].Sheet != SheetProcessed {
		t.Errorf("expected only the Processed table, got %+v", tables)
	}
}

func TestSpecFor(t *testing.T) {
	spec, ok := SpecFor(SheetProcessed)
	if !ok {
		t.Fatal("expected a Processed spec")
	}
	if len(spec.SumColumns) != 1 || spec.SumColumns[0] != ColumnPaymentAmount {
		t.Errorf("unexpected sum columns %v", spec.SumColumns)
	}
	if _, ok := SpecFor("Sheet1"); ok {
		t.Errorf("did not expect a spec for Sheet1")
	}
}
