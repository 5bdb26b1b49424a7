package pround

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Input is the data of one column. The variants are [Plain], [Paired] and
// [Measurements]; the set is closed.
type Input interface {
	cells(f Format) ([]string, error)
}

// Plain is a column of values without uncertainties, each rendered with
// [RoundPlain] at Digits decimals. A zero Digits renders integers; use
// [Values] for the default of [DefaultDigits].
type Plain struct {
	Values []float64
	Digits int
}

// Values returns a Plain column with [DefaultDigits] decimals.
func Values(v ...float64) Plain {
	return Plain{Values: v, Digits: DefaultDigits}
}

// WithDigits returns a copy of p rendered at n decimals.
func (p Plain) WithDigits(n int) Plain {
	p.Digits = n
	return p
}

func (p Plain) cells(Format) ([]string, error) {
	out := make([]string, len(p.Values))
	for i, v := range p.Values {
		out[i] = RoundPlain(v, p.Digits)
	}
	return out, nil
}

// Paired is a column of values with one uncertainty per value.
type Paired struct {
	Values        []float64
	Uncertainties []float64
}

func (p Paired) cells(f Format) ([]string, error) {
	if len(p.Values) != len(p.Uncertainties) {
		return nil, fmt.Errorf("%w: %d values but %d uncertainties", ErrShape, len(p.Values), len(p.Uncertainties))
	}
	out := make([]string, len(p.Values))
	for i, v := range p.Values {
		cell, err := measurementCell(f, v, p.Uncertainties[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = cell
	}
	return out, nil
}

// Measurements is a column of values that already carry their uncertainty.
type Measurements []Measurement

func (ms Measurements) cells(f Format) ([]string, error) {
	out := make([]string, len(ms))
	for i, m := range ms {
		cell, err := measurementCell(f, m.Value, m.Uncertainty)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = cell
	}
	return out, nil
}

// measurementCell renders "v +- u", wrapped in siunitx's \num for LaTeX.
func measurementCell(f Format, value, uncertainty float64) (string, error) {
	v, u, err := Round(value, uncertainty)
	if err != nil {
		return "", err
	}
	if f == Latex {
		return `\num{` + v + " +- " + u + "}", nil
	}
	return v + " +- " + u, nil
}

// Floats converts a foreign one-dimensional sequence into float64 values.
// It accepts slices and arrays of any numeric kind, of strings holding
// decimal numbers, and of interfaces wrapping either (as decoded from YAML or
// TOML). Nested sequences fail with [ErrShape]; nil, scalars, and elements
// that are not numbers fail with [ErrTypeMismatch].
func Floats(v any) ([]float64, error) {
	if f, ok := v.([]float64); ok {
		out := make([]float64, len(f))
		copy(out, f)
		return out, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil column", ErrTypeMismatch)
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrTypeMismatch, v)
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, err := toFloat(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(rv reflect.Value) (float64, error) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, fmt.Errorf("%w: nil element", ErrTypeMismatch)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrTypeMismatch, rv.String())
		}
		return f, nil
	case reflect.Slice, reflect.Array:
		return 0, fmt.Errorf("%w: nested sequence, columns must be one-dimensional", ErrShape)
	default:
		return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, rv.Type())
	}
}
