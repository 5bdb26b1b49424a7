package pround

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrShape              = errors.New("shape mismatch")
	ErrInvalidUncertainty = errors.New("invalid uncertainty")
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrTypeMismatch       = errors.New("type mismatch")
)

// Format represents an output format.
type Format string

const (
	Latex Format = "latex"
	Excel Format = "excel"
)

var formats = []Format{Latex, Excel}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) valid() bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}

// Orientation selects the page geometry of a full LaTeX document.
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// ParseOrientation parses "landscape" or "portrait".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "landscape", "":
		return Landscape, nil
	case "portrait":
		return Portrait, nil
	default:
		return Landscape, fmt.Errorf("unknown orientation %q", s)
	}
}
