package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultJobs is the number of documents checked concurrently.
	// 1 preserves the original strictly sequential behavior; checking
	// documents in parallel is safe because no two documents share
	// writable state, but it reorders nothing (output stays in input
	// order) and is opt-in.
	DefaultJobs = 1

	// DefaultCheckTimeout bounds each external checker process.
	// 0 disables the bound, matching the original contract where a hung
	// compiler hangs the run. Set via --check-timeout for CI robustness.
	DefaultCheckTimeout = 0 * time.Second

	// DefaultConfigFile is the configuration file name searched for in
	// the current and home directories.
	DefaultConfigFile = ".rstcheck.yaml"

	// AppName is the application name used for XDG directory paths.
	AppName = "rstcheck"
)

// Config holds all configuration options for one rstcheck run.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Targets are the document file paths to check, in command-line order.
	Targets []string

	// StrictRST escalates markup warnings to fatal parse errors: the
	// parser halts on the lowest markup severity level instead of the
	// permissive default.
	StrictRST bool

	// StrictWarnings makes unknown languages and compiler warnings
	// (for toolchains with a warnings-as-errors flag) count as failures.
	StrictWarnings bool

	// Jobs is the number of documents checked concurrently.
	Jobs int

	// CheckTimeout bounds each checker process; zero means unbounded.
	CheckTimeout time.Duration

	// JSONReport selects JSON output for the run report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output for the run report.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, receives the JSON or Markdown report instead
	// of standard output.
	ReportFile string

	// ConfigFilePath is an explicit configuration file path. Empty means
	// search the default locations.
	ConfigFilePath string

	// Save records the run's outcomes in the history database.
	Save bool

	// DBDir is the directory holding the history database.
	DBDir string

	// File holds the loaded configuration file, or an empty File when
	// none was found.
	File *File
}

// NewConfig creates a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		Jobs:         DefaultJobs,
		CheckTimeout: DefaultCheckTimeout,
		DBDir:        XDGDataDir(),
		File:         &File{Languages: map[string]Language{}},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.Jobs < 1 {
		return ErrInvalidJobs
	}
	if c.CheckTimeout < 0 {
		return ErrInvalidCheckTimeout
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGDataDir returns the XDG data directory for rstcheck, used for the
// run-history database.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
