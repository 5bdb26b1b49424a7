package pround

import (
	"bytes"
	"fmt"
	"io"

	"github.com/natefinch/atomic"
)

type renderConfig struct {
	span        Span
	orientation Orientation
}

// RenderOption configures [Table.Render], [Table.Document] and
// [Table.WriteFile].
type RenderOption func(*renderConfig)

// RowRange renders rows [start, stop) only.
func RowRange(start, stop int) RenderOption {
	return WithSpan(Between(start, stop))
}

// RowsFrom renders rows from start to the end.
func RowsFrom(start int) RenderOption {
	return WithSpan(From(start))
}

// WithSpan renders the rows selected by s.
func WithSpan(s Span) RenderOption {
	return func(c *renderConfig) { c.span = s }
}

// WithOrientation sets the page orientation of a LaTeX document.
// Default: [Landscape].
func WithOrientation(o Orientation) RenderOption {
	return func(c *renderConfig) { c.orientation = o }
}

func newRenderConfig(opts []RenderOption) renderConfig {
	c := renderConfig{orientation: Landscape}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Render writes the table without any surrounding document: a bare tabular
// environment for [Latex], a plain text dump for [Excel].
func (t *Table) Render(w io.Writer, opts ...RenderOption) error {
	c := newRenderConfig(opts)
	if err := t.check(); err != nil {
		return err
	}
	header, rows := t.Header(), t.collect(c.span)
	t.logger.Debug("rendering table", "format", t.format, "columns", len(header), "rows", len(rows))
	switch t.format {
	case Latex:
		return writeTabular(w, header, rows)
	case Excel:
		return writeDump(w, header, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, t.format)
	}
}

// Marshal renders the table with [Table.Render] and returns the bytes.
func (t *Table) Marshal(opts ...RenderOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Render(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Document writes the table as a standalone file: a compilable LaTeX
// document for [Latex], an xlsx workbook for [Excel].
func (t *Table) Document(w io.Writer, opts ...RenderOption) error {
	c := newRenderConfig(opts)
	if err := t.check(); err != nil {
		return err
	}
	header, rows := t.Header(), t.collect(c.span)
	t.logger.Debug("rendering document", "format", t.format, "columns", len(header), "rows", len(rows))
	switch t.format {
	case Latex:
		return writeDocument(w, header, rows, c.orientation)
	case Excel:
		return writeWorkbook(w, header, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, t.format)
	}
}

// WriteFile writes [Table.Document] to path, replacing any existing file.
// The file is replaced atomically, so a failed write leaves the old content.
func (t *Table) WriteFile(path string, opts ...RenderOption) error {
	var buf bytes.Buffer
	if err := t.Document(&buf, opts...); err != nil {
		return err
	}
	n := buf.Len()
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	t.logger.Debug("document written", "path", path, "bytes", n)
	return nil
}
