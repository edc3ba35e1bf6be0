package models

// Workbook holds the two report sheets loaded from the input file.
type Workbook struct {
	// BookName is the input file name (no path).
	BookName string
	// Payout is the Payout sheet.
	Payout Table
	// Processed is the Processed sheet.
	Processed Table
}

// Partition is the slice of both sheets that belongs to one customer.
type Partition struct {
	// Customer is the exact "Disburser Company Name" value shared by every row.
	Customer string
	// Payout holds the customer's Payout rows, possibly with a totals row.
	Payout Table
	// Processed holds the customer's Processed rows, possibly with a totals row.
	Processed Table
}

// Tables returns the non-empty sides of the partition in output order.
func (p Partition) Tables() []Table {
	var tables []Table
	for _, t := range []Table{p.Payout, p.Processed} {
		if !t.Empty() {
			tables = append(tables, t)
		}
	}
	return tables
}
