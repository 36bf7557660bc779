package types

import "fmt"

// OutputFormat selects how extraction results are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// LookupConfig holds settings for the medicine lookup table.
type LookupConfig struct {
	// MedicinesFile is a YAML file mapping medicine names to codes.
	// Empty selects the built-in table.
	MedicinesFile string `json:"medicines_file" yaml:"medicines_file"`
}

// ReportConfig holds settings for rendering results.
type ReportConfig struct {
	// Format is text, json, or yaml (default text).
	Format OutputFormat `json:"format" yaml:"format"`
}

// LoggingConfig holds settings for diagnostics.
type LoggingConfig struct {
	// Verbose enables debug output, including a notice for every skipped line.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// LogFile, when set, receives JSON logs through a rotating writer.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`

	// MaxSizeMB is the size at which LogFile is rotated (default 10).
	MaxSizeMB int `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`

	// MaxBackups is the number of rotated files kept (default 3).
	MaxBackups int `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
}

// Config groups all settings of the medextract CLI.
type Config struct {
	Lookup  LookupConfig  `json:"lookup" yaml:"lookup"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Report.Format != "" && !c.Report.Format.Valid() {
		return fmt.Errorf("invalid format %q: must be one of text, json, yaml", c.Report.Format)
	}
	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("invalid max_size_mb %d: must not be negative", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxBackups < 0 {
		return fmt.Errorf("invalid max_backups %d: must not be negative", c.Logging.MaxBackups)
	}
	return nil
}
