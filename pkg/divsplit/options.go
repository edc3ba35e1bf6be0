// Package divsplit splits a Paymode-X dividends workbook into one formatted
// report workbook per customer.
package divsplit

import "go.uber.org/zap"

// Options configures a split run.
type Options struct {
	// InputPath is the workbook holding the Payout and Processed sheets.
	InputPath string
	// OutputDir receives one report per customer. It is created if absent.
	OutputDir string
	// ArchivePath, when set, bundles every written report into one zip file.
	ArchivePath string
	// Workers bounds how many reports are written at once. Values below 1 mean 1.
	Workers int
	// ContinueOnError keeps writing the remaining reports after one fails.
	// By default the first failure aborts the run.
	ContinueOnError bool
	// RunID tags log lines and the run report. Generated when empty.
	RunID string
	// Logger receives progress lines. A no-op logger is used when nil.
	Logger *zap.Logger
}

// DefaultOptions returns default split options.
func DefaultOptions() Options {
	return Options{
		InputPath: "Coupa Paymode-X Dividends Report.xlsx",
		OutputDir: "Px Customers Breakdown",
		Workers:   1,
	}
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
