package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bjaus/pround"
)

// Table reads every column's data and assembles the table. The config's
// Logger is passed to the table ahead of opts.
func (c *Config) Table(opts ...pround.Option) (*pround.Table, error) {
	f, err := c.format()
	if err != nil {
		return nil, err
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tbl, err := pround.New(f, append([]pround.Option{pround.WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}
	sources := make(map[string]*csvSource)
	for _, col := range c.Columns {
		in, err := c.input(col, sources, logger)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		if err := tbl.AddColumn(col.Name, in); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func (c *Config) input(col Column, sources map[string]*csvSource, logger *slog.Logger) (pround.Input, error) {
	var values, uncertainties []float64
	var err error
	if col.Source != "" {
		path := col.Source
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Dir, path)
		}
		src, ok := sources[path]
		if !ok {
			if src, err = readCSV(path); err != nil {
				return nil, err
			}
			sources[path] = src
			logger.Debug("source loaded", "path", path, "columns", len(src.header), "rows", len(src.records))
		}
		if values, err = src.floats(col.Value); err != nil {
			return nil, err
		}
		if col.Uncertainty != "" {
			if uncertainties, err = src.floats(col.Uncertainty); err != nil {
				return nil, err
			}
		}
	} else {
		if values, err = pround.Floats(col.Values); err != nil {
			return nil, fmt.Errorf("values: %w", err)
		}
		if col.Uncertainties != nil {
			if uncertainties, err = pround.Floats(col.Uncertainties); err != nil {
				return nil, fmt.Errorf("uncertainties: %w", err)
			}
		}
	}

	if col.hasUncertainty() {
		return pround.Paired{Values: values, Uncertainties: uncertainties}, nil
	}
	digits := pround.DefaultDigits
	if col.Digits != nil {
		digits = *col.Digits
	}
	return pround.Plain{Values: values, Digits: digits}, nil
}

// RenderOptions translates the row range and orientation.
func (c *Config) RenderOptions() ([]pround.RenderOption, error) {
	o, err := pround.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, &ValidationError{Field: "orientation", Message: err.Error()}
	}
	opts := []pround.RenderOption{pround.WithOrientation(o)}
	if c.Rows != nil {
		if c.Rows.Stop != nil {
			opts = append(opts, pround.RowRange(c.Rows.Start, *c.Rows.Stop))
		} else {
			opts = append(opts, pround.RowsFrom(c.Rows.Start))
		}
	}
	return opts, nil
}
