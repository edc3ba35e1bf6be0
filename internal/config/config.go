// Package config loads divsplit settings from defaults, an optional TOML file,
// a .env file and DIVSPLIT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override, e.g. DIVSPLIT_OUTPUT_DIR.
const EnvPrefix = "DIVSPLIT"

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "divsplit.toml"

// Config holds the settings of one run.
type Config struct {
	InputPath       string        `toml:"input_path" envconfig:"INPUT"`
	OutputDir       string        `toml:"output_dir" envconfig:"OUTPUT_DIR"`
	ArchivePath     string        `toml:"archive_path" envconfig:"ARCHIVE"`
	Workers         int           `toml:"workers" envconfig:"WORKERS"`
	ContinueOnError bool          `toml:"continue_on_error" envconfig:"CONTINUE_ON_ERROR"`
	Logging         LoggingConfig `toml:"logging" envconfig:"LOG"`
}

// LoggingConfig selects the log level and encoding.
type LoggingConfig struct {
	Level  string `toml:"level" envconfig:"LEVEL"`
	Format string `toml:"format" envconfig:"FORMAT"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		InputPath: "Coupa Paymode-X Dividends Report.xlsx",
		OutputDir: "Px Customers Breakdown",
		Workers:   1,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration. An explicit path must exist; otherwise
// DefaultFile is read only when present.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// A missing .env is not an error.
	_ = godotenv.Load()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		if err := cfg.loadFile(file); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.InputPath) == "" {
		errs = append(errs, errors.New("input path is required"))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("invalid workers %d: must be at least 1", c.Workers))
	}
	if c.ArchivePath != "" && !strings.EqualFold(filepath.Ext(c.ArchivePath), ".zip") {
		errs = append(errs, fmt.Errorf("invalid archive path %q: must end in .zip", c.ArchivePath))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be console or json", c.Logging.Format))
	}

	return errors.Join(errs...)
}
