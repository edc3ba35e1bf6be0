package divsplit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/normalize"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/partition"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/writer"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CustomerResult describes the report produced for one customer.
type CustomerResult struct {
	Customer      string
	Path          string
	PayoutRows    int
	ProcessedRows int
	// Superseded is set when a later customer maps to the same file name.
	Superseded bool
	Err        error
}

// Report summarises a split run.
type Report struct {
	RunID       string
	BookName    string
	Customers   []CustomerResult
	Warnings    []models.Warning
	ArchivePath string
	Elapsed     time.Duration
}

// Written returns the paths of the reports present on disk after the run.
func (r *Report) Written() []string {
	var paths []string
	for _, c := range r.Customers {
		if c.Err == nil && !c.Superseded && c.Path != "" {
			paths = append(paths, c.Path)
		}
	}
	return paths
}

// Failed returns the customers whose report could not be written.
func (r *Report) Failed() []CustomerResult {
	var failed []CustomerResult
	for _, c := range r.Customers {
		if c.Err != nil {
			failed = append(failed, c)
		}
	}
	return failed
}

// Split loads the input workbook, normalizes both sheets and writes one
// report per customer into opts.OutputDir.
//
// Input errors are returned before anything is written. The returned report
// is non-nil whenever loading succeeded, even if writing later failed.
func Split(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	log := opts.logger().With(zap.String("run_id", opts.RunID))

	wb, err := Load(opts.InputPath)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: opts.RunID, BookName: wb.BookName}
	payout, warnings := normalize.Sheet(wb.Payout, models.PayoutSpec)
	report.Warnings = append(report.Warnings, warnings...)
	processed, warnings := normalize.Sheet(wb.Processed, models.ProcessedSpec)
	report.Warnings = append(report.Warnings, warnings...)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return report, fmt.Errorf("create output directory: %w", err)
	}

	parts := partition.All(payout, processed)
	report.Customers = make([]CustomerResult, len(parts))
	for i, p := range parts {
		report.Customers[i] = CustomerResult{
			Customer:      p.Customer,
			Path:          filepath.Join(opts.OutputDir, writer.FileName(p.Customer)),
			PayoutRows:    len(p.Payout.Rows),
			ProcessedRows: len(p.Processed.Rows),
		}
	}
	report.Warnings = append(report.Warnings, markSuperseded(report.Customers)...)
	for _, w := range report.Warnings {
		log.Warn(w.String(),
			zap.String("kind", string(w.Kind)),
			zap.String("sheet", w.Sheet),
			zap.String("column", w.Column))
	}

	err = writeReports(ctx, opts, log, parts, report.Customers)
	report.Elapsed = time.Since(start)
	if err != nil {
		return report, err
	}

	if opts.ArchivePath != "" {
		if err := BundleReports(opts.ArchivePath, report.Written()); err != nil {
			return report, fmt.Errorf("bundle reports: %w", err)
		}
		report.ArchivePath = opts.ArchivePath
		report.Elapsed = time.Since(start)
	}

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%d of %d: %w", len(failed), len(report.Customers), ErrCustomerFailures)
	}
	return report, nil
}

// markSuperseded flags every result whose file a later customer overwrites,
// so that only the last writer of each path runs.
func markSuperseded(results []CustomerResult) []models.Warning {
	var warnings []models.Warning
	last := make(map[string]int, len(results))
	for i, r := range results {
		if prev, ok := last[r.Path]; ok {
			results[prev].Superseded = true
			warnings = append(warnings, models.Warning{
				Kind:     models.WarningNameCollision,
				Customer: r.Customer,
				Detail:   fmt.Sprintf("the report of %q (%s)", results[prev].Customer, filepath.Base(r.Path)),
			})
		}
		last[r.Path] = i
	}
	return warnings
}

func writeReports(ctx context.Context, opts Options, log *zap.Logger, parts []models.Partition, results []CustomerResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i := range parts {
		if results[i].Superseded {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			log.Info("Processing customer",
				zap.String("customer", res.Customer),
				zap.Int("payout_rows", res.PayoutRows),
				zap.Int("processed_rows", res.ProcessedRows))

			if err := writer.Write(res.Path, parts[i]); err != nil {
				res.Err = &CustomerError{Customer: res.Customer, Path: res.Path, Err: err}
				if opts.ContinueOnError {
					log.Error("Customer report failed", zap.String("customer", res.Customer), zap.Error(err))
					return nil
				}
				return res.Err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
