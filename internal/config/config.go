// Package config defines the application configuration and its resolution
// from command-line flags, BIGSHIFT_* environment variables and defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	apperrors "github.com/agbru/bigshift/internal/errors"
	"github.com/agbru/bigshift/internal/ui"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "BIGSHIFT_"

const (
	// DefaultTimeout bounds a benchmark run. A single shift and the HTTP
	// service are not time limited.
	DefaultTimeout = 5 * time.Minute
	// DefaultIterations is the per-worker iteration count of the benchmark.
	DefaultIterations = 1_000_000
	// DefaultPoolSize is the number of pregenerated benchmark inputs.
	DefaultPoolSize = 8192
	// DefaultLogLevel is the zerolog level name used when none is given.
	DefaultLogLevel = "info"
	// DefaultTheme is the color theme used when none is given.
	DefaultTheme = "dark"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Value is the number to shift, in decimal or 0x-prefixed hexadecimal.
	Value string
	// Shift is the left shift amount in bits.
	Shift uint

	// Bench runs the concurrent stress benchmark instead of a single shift.
	Bench bool
	// Workers is the number of benchmark goroutines (0 = one per CPU).
	Workers int
	// Iterations is the number of shifts each benchmark worker performs.
	Iterations int
	// PoolSize is the number of pregenerated benchmark inputs.
	PoolSize int
	// Seed seeds the benchmark input generator (0 = time based).
	Seed int64

	// Serve is the listen address of the HTTP service; empty disables it.
	Serve string

	Timeout time.Duration
	Quiet   bool
	Verbose bool
	NoColor bool
	// Theme names the color theme: dark, light or none.
	Theme    string
	LogLevel string
	Version  bool
}

// ParseValue parses Value as a non-negative integer. Hexadecimal input needs
// a 0x prefix; underscores are accepted as digit separators.
func (c AppConfig) ParseValue() (*big.Int, error) {
	s := strings.TrimSpace(c.Value)
	if s == "" {
		return nil, apperrors.ValidationError{Field: "value", Message: "must not be empty"}
	}
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, apperrors.ValidationError{Field: "value", Message: fmt.Sprintf("%q is not an integer", c.Value)}
	}
	if v.Sign() < 0 {
		return nil, apperrors.ValidationError{Field: "value", Message: "must be non-negative"}
	}
	return v, nil
}

// Validate checks the configuration for inconsistencies.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.Bench {
		if c.Iterations <= 0 {
			return apperrors.NewConfigError("iterations must be positive, got %d", c.Iterations)
		}
		if c.PoolSize <= 0 {
			return apperrors.NewConfigError("pool must be positive, got %d", c.PoolSize)
		}
	}
	if c.Theme != "" {
		if _, ok := ui.LookupTheme(c.Theme); !ok {
			return apperrors.NewConfigError("unknown theme %q (want dark, light or none)", c.Theme)
		}
	}
	if c.Bench && c.Serve != "" {
		return apperrors.NewConfigError("-bench and -serve are mutually exclusive")
	}
	if !c.Bench && c.Serve == "" && !c.Version {
		if _, err := c.ParseValue(); err != nil {
			return err
		}
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig. Values from
// flags take precedence over BIGSHIFT_* environment variables, which take
// precedence over defaults.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Shifts a fixed-capacity big integer left in place.\n\n")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.Value, "value", "", "Number to shift (decimal or 0x-prefixed hex).")
	fs.StringVar(&config.Value, "x", "", "Number to shift (shorthand).")
	fs.UintVar(&config.Shift, "shift", 0, "Left shift amount in bits.")
	fs.UintVar(&config.Shift, "s", 0, "Left shift amount in bits (shorthand).")
	fs.BoolVar(&config.Bench, "bench", false, "Run the concurrent stress benchmark.")
	fs.IntVar(&config.Workers, "workers", 0, "Benchmark goroutines (0 = number of CPUs).")
	fs.IntVar(&config.Iterations, "iterations", DefaultIterations, "Shifts per benchmark worker.")
	fs.IntVar(&config.PoolSize, "pool", DefaultPoolSize, "Number of pregenerated benchmark inputs.")
	fs.Int64Var(&config.Seed, "seed", 0, "Benchmark input seed (0 = time based).")
	fs.StringVar(&config.Serve, "serve", "", "Start the HTTP service on this address (e.g. :8080).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum benchmark run time.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Print only the result (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print extra detail (decimal values, memory statistics).")
	fs.BoolVar(&config.Verbose, "v", false, "Print extra detail (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme (dark, light, none).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.Version, "version", false, "Print version information.")
	fs.BoolVar(&config.Version, "V", false, "Print version information (shorthand).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveDefaults(config)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
