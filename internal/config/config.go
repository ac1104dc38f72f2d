package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Default paths used when no flags are given.
const (
	DefaultInputPath  = "survey.csv"
	DefaultOutputPath = "survey_final_typed.csv"
)

// Config holds all runtime configuration for a surveyclean run.
type Config struct {
	DSN         string
	InputPath   string
	OutputPath  string
	Format      string   `yaml:"format"`
	LogFormat   string   // "text" or "json"
	NullMarkers []string `yaml:"null_markers"` // cell strings read as null; nil selects csvio defaults
	OutputNull  string   `yaml:"output_null"`  // written for null integers in CSV output
	Force       bool     // reload a source file that was already loaded
}

// yamlConfig is the on-disk YAML structure. Pointers distinguish unset keys
// from explicit empty values.
type yamlConfig struct {
	Format      *string  `yaml:"format"`
	NullMarkers []string `yaml:"null_markers"`
	OutputNull  *string  `yaml:"output_null"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Format != nil {
		c.Format = *yc.Format
	}
	if yc.NullMarkers != nil {
		c.NullMarkers = yc.NullMarkers
	}
	if yc.OutputNull != nil {
		c.OutputNull = *yc.OutputNull
	}
	if c.Format == "" {
		return nil
	}
	return c.validateFormat()
}

// validateFormat checks Format, defaulting it to csv when empty.
func (c *Config) validateFormat() error {
	switch c.Format {
	case "":
		c.Format = FormatCSV
	case FormatCSV, FormatParquet:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Format, FormatCSV, FormatParquet)
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--input is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("input not accessible: %w", err)
	}
	return c.validateFormat()
}

// ValidateOutput checks the input and that an output path is set.
func (c *Config) ValidateOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--output is required")
	}
	if c.OutputPath == c.InputPath {
		return fmt.Errorf("--output must differ from --input")
	}
	return nil
}

// ValidateWithDSN checks both input and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
