package models

// Column names with a fixed role in the reports.
const (
	ColumnCustomer         = "Disburser Company Name"
	ColumnPaymentAmount    = "Payment Amount"
	ColumnCustomerDividend = "Coupa Customer Dividend"

	// TotalLabel is written to the customer column of a totals row.
	TotalLabel = "Total"
)

// Sheet names read from the input workbook and written to every report.
const (
	SheetPayout    = "Payout"
	SheetProcessed = "Processed"
)

// SheetSpec describes how one report sheet is projected, totalled and formatted.
type SheetSpec struct {
	// Name is the sheet name in both input and output workbooks.
	Name string
	// Columns is the ordered allow-list of canonical column names.
	Columns []string
	// SumColumns are totalled in the appended totals row.
	SumColumns []string
	// CurrencyColumns receive the accounting number format.
	CurrencyColumns []string
}

// PayoutSpec is the layout of the Payout sheet.
var PayoutSpec = SheetSpec{
	Name: SheetPayout,
	Columns: []string{
		ColumnCustomer,
		"Disburser Paymode Account",
		"Collector Paymode",
		"Collector Network Fee Billing Method",
		"Channel Dividend Currency",
		"DPA",
		"Payment Credit Settlement Date",
		"Date Fees Collected",
		ColumnPaymentAmount,
		ColumnCustomerDividend,
		"Payment Number",
	},
	SumColumns:      []string{ColumnPaymentAmount, ColumnCustomerDividend},
	CurrencyColumns: []string{ColumnPaymentAmount, ColumnCustomerDividend},
}

// ProcessedSpec is the layout of the Processed sheet.
var ProcessedSpec = SheetSpec{
	Name: SheetProcessed,
	Columns: []string{
		ColumnCustomer,
		"Disburser Paymode Account",
		"Collector Paymode",
		"Collector Network Fee Billing Method",
		"Channel Dividend",
		"Currency",
		"DPA",
		"Payment Credit Settlement Date",
		"Date Fees Collected",
		ColumnPaymentAmount,
		"Fee Details",
		"Payment Number",
	},
	SumColumns:      []string{ColumnPaymentAmount},
	CurrencyColumns: []string{ColumnPaymentAmount},
}

// Specs lists the report sheets in output order.
var Specs = []SheetSpec{PayoutSpec, ProcessedSpec}

// SpecFor returns the spec for a sheet name.
func SpecFor(sheet string) (SheetSpec, bool) {
	for _, s := range Specs {
		if s.Name == sheet {
			return s, true
		}
	}
	return SheetSpec{}, false
}
