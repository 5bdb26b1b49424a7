// Package config loads table descriptions for the pround command from YAML
// or TOML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/pround"
)

// Config describes one table: its format, where it goes, and its columns in
// display order.
type Config struct {
	// Output format (latex, excel). Default: latex.
	Format string `yaml:"format,omitempty" toml:"format"`

	// File to write. Empty prints the bare table to stdout.
	Output string `yaml:"output,omitempty" toml:"output"`

	// Page orientation of LaTeX documents (landscape, portrait).
	Orientation string `yaml:"orientation,omitempty" toml:"orientation"`

	// Rows restricts output to a half-open row range.
	Rows *Rows `yaml:"rows,omitempty" toml:"rows"`

	Columns []Column `yaml:"columns" toml:"columns"`

	// Dir is the directory relative sources are resolved against. Load sets
	// it to the config file's directory.
	Dir string `yaml:"-" toml:"-"`

	// Logger receives source and table events. Nil uses slog.Default.
	Logger *slog.Logger `yaml:"-" toml:"-"`
}

// Rows is a half-open row range. A nil Stop runs to the last row.
type Rows struct {
	Start int  `yaml:"start,omitempty" toml:"start"`
	Stop  *int `yaml:"stop,omitempty" toml:"stop"`
}

// Column is one table column. Its data is given inline with Values (and
// optionally Uncertainties) or read from the CSV file Source using the
// columns named by Value (and optionally Uncertainty).
type Column struct {
	Name          string `yaml:"name" toml:"name"`
	Values        any    `yaml:"values,omitempty" toml:"values"`
	Uncertainties any    `yaml:"uncertainties,omitempty" toml:"uncertainties"`

	// Digits is the number of decimals for columns without uncertainties.
	// Default: pround.DefaultDigits.
	Digits *int `yaml:"digits,omitempty" toml:"digits"`

	Source      string `yaml:"source,omitempty" toml:"source"`
	Value       string `yaml:"value,omitempty" toml:"value"`
	Uncertainty string `yaml:"uncertainty,omitempty" toml:"uncertainty"`
}

// ValidationError represents an invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Load reads a config file. The decoder is chosen by extension: .yaml and
// .yml use YAML, .toml uses TOML. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates config data. ext selects the decoder as in
// [Load].
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config type %q (want .yaml, .yml or .toml)", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config without reading any sources.
func (c *Config) Validate() error {
	if _, err := c.format(); err != nil {
		return err
	}
	if _, err := pround.ParseOrientation(c.Orientation); err != nil {
		return &ValidationError{Field: "orientation", Message: err.Error()}
	}
	if len(c.Columns) == 0 {
		return &ValidationError{Field: "columns", Message: "at least one column is required"}
	}
	for i, col := range c.Columns {
		if err := col.validate(); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

func (c *Config) format() (pround.Format, error) {
	if c.Format == "" {
		return pround.Latex, nil
	}
	return pround.ParseFormat(c.Format)
}

func (col Column) validate() error {
	if col.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	inline := col.Values != nil
	sourced := col.Source != ""
	switch {
	case inline && sourced:
		return &ValidationError{Field: col.Name, Message: "set either values or source, not both"}
	case !inline && !sourced:
		return &ValidationError{Field: col.Name, Message: "one of values or source is required"}
	case sourced && col.Value == "":
		return &ValidationError{Field: col.Name, Message: "source needs a value column"}
	case inline && (col.Value != "" || col.Uncertainty != ""):
		return &ValidationError{Field: col.Name, Message: "value and uncertainty name source columns; use values and uncertainties inline"}
	case sourced && col.Uncertainties != nil:
		return &ValidationError{Field: col.Name, Message: "uncertainties are inline; use uncertainty to name a source column"}
	}
	if col.Digits != nil && col.hasUncertainty() {
		return &ValidationError{Field: col.Name, Message: "digits only applies to columns without uncertainties"}
	}
	return nil
}

func (col Column) hasUncertainty() bool {
	return col.Uncertainties != nil || col.Uncertainty != ""
}
