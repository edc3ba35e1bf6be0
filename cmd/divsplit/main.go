// Package main provides the CLI entry point for divsplit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/divsplit-go/internal/config"
	"github.com/ukaji3/divsplit-go/internal/logging"
	"github.com/ukaji3/divsplit-go/pkg/divsplit"
	"go.uber.org/zap"
)

var (
	configPath      string
	inputPath       string
	outputDir       string
	archivePath     string
	workers         int
	continueOnError bool
	logLevel        string
	logFormat       string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "divsplit [input.xlsx]",
		Short: "Split a Paymode-X dividends workbook into per-customer reports",
		Long: `divsplit reads the Payout and Processed sheets of a dividends workbook,
groups the rows by "Disburser Company Name", appends a totals row per sheet
and writes one formatted "<customer> Monthly Dividend Report.xlsx" per customer.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./"+config.DefaultFile+" when present)")
	flags.StringVarP(&inputPath, "input", "i", "", "Input workbook path")
	flags.StringVarP(&outputDir, "output", "o", "", "Output directory for customer reports")
	flags.StringVar(&archivePath, "archive", "", "Bundle all reports into this .zip file")
	flags.IntVar(&workers, "workers", 1, "Number of reports written concurrently")
	flags.BoolVar(&continueOnError, "continue-on-error", false, "Keep going when a customer report fails")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: console or json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	defer logger.Sync()

	start := time.Now()
	report, err := divsplit.Split(cmd.Context(), divsplit.Options{
		InputPath:       cfg.InputPath,
		OutputDir:       cfg.OutputDir,
		ArchivePath:     cfg.ArchivePath,
		Workers:         cfg.Workers,
		ContinueOnError: cfg.ContinueOnError,
		Logger:          logger,
	})
	if divsplit.IsInputError(err) {
		logger.Error("Could not read the input workbook", zap.String("input", cfg.InputPath), zap.Error(err))
		return err
	}

	if report != nil {
		for _, f := range report.Failed() {
			logger.Error("Customer report failed", zap.String("customer", f.Customer), zap.Error(f.Err))
		}
		if report.ArchivePath != "" {
			logger.Info("Reports bundled", zap.String("archive", report.ArchivePath))
		}
	}
	if err != nil {
		logger.Error("Run aborted", zap.Error(err))
		return err
	}

	elapsed := time.Since(start)
	fmt.Fprintln(cmd.OutOrStdout(), "\n--- Script Finished ---")
	fmt.Fprintf(cmd.OutOrStdout(), "Total execution time: %d minutes and %d seconds.\n",
		int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	return nil
}

// loadConfig layers flags that were set explicitly over the loaded config.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		cfg.InputPath = args[0]
	}
	if flags.Changed("input") {
		cfg.InputPath = inputPath
	}
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("archive") {
		cfg.ArchivePath = archivePath
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("continue-on-error") {
		cfg.ContinueOnError = continueOnError
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
