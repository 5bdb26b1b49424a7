// Package logging builds the slog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Handler formats.
const (
	Text = "text"
	JSON = "json"
)

// New returns a logger writing to w (os.Stderr when nil) in the given
// handler format. Debug lowers the level from Info to Debug.
func New(debug bool, w io.Writer, format string) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case Text, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case JSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, Text, JSON)
	}
}
