package pround

import (
	"fmt"
	"iter"
	"log/slog"
)

type column struct {
	name  string
	cells []string
}

// Table is an ordered set of named columns of rendered cells. Cells are
// rendered once, when the column is added, for the table's [Format].
//
// A Table is not safe for concurrent use.
type Table struct {
	format  Format
	columns []column
	index   map[string]int
	logger  *slog.Logger
}

// Option configures a [Table].
type Option func(*Table)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// New returns an empty table whose cells are rendered for format f.
func New(f Format, opts ...Option) (*Table, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	t := &Table{
		format: f,
		index:  make(map[string]int),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Format returns the format the table renders cells for.
func (t *Table) Format() Format { return t.format }

// AddColumn renders in and stores it under name. Adding a name that already
// exists replaces that column's cells and keeps its position.
//
// The new column must have as many rows as the other columns, otherwise
// AddColumn fails with [ErrShape]. On any error the table is left unchanged.
func (t *Table) AddColumn(name string, in Input) error {
	if in == nil {
		return fmt.Errorf("column %q: %w: nil input", name, ErrTypeMismatch)
	}
	cells, err := in.cells(t.format)
	if err != nil {
		return fmt.Errorf("column %q: %w", name, err)
	}
	if n, ok := t.rowCount(name); ok && n != len(cells) {
		return fmt.Errorf("column %q: %w: %d rows, table has %d", name, ErrShape, len(cells), n)
	}
	i, replaced := t.index[name]
	if replaced {
		t.columns[i].cells = cells
	} else {
		t.index[name] = len(t.columns)
		t.columns = append(t.columns, column{name: name, cells: cells})
	}
	t.logger.Debug("column added", "name", name, "rows", len(cells), "replaced", replaced)
	return nil
}

// AddPlain adds values rendered with ndigits decimals.
func (t *Table) AddPlain(name string, values []float64, ndigits int) error {
	return t.AddColumn(name, Plain{Values: values, Digits: ndigits})
}

// AddPaired adds values with their uncertainties.
func (t *Table) AddPaired(name string, values, uncertainties []float64) error {
	return t.AddColumn(name, Paired{Values: values, Uncertainties: uncertainties})
}

// rowCount returns the row count of the columns other than skip.
func (t *Table) rowCount(skip string) (int, bool) {
	for _, c := range t.columns {
		if c.name != skip {
			return len(c.cells), true
		}
	}
	return 0, false
}

// Header returns the column names in display order.
func (t *Table) Header() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.name
	}
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].cells)
}

// Span selects a half-open range of rows [Start, Stop). Stop only applies
// when Bounded is set; the zero Span selects every row. Negative indices
// count from the end and out-of-range bounds are clamped, so a Start past the
// last row selects nothing.
type Span struct {
	Start   int
	Stop    int
	Bounded bool
}

// Between returns the span [start, stop).
func Between(start, stop int) Span { return Span{Start: start, Stop: stop, Bounded: true} }

// From returns the span from start to the last row.
func From(start int) Span { return Span{Start: start} }

func (s Span) bounds(n int) (lo, hi int) {
	lo = clampIndex(s.Start, n)
	hi = n
	if s.Bounded {
		hi = clampIndex(s.Stop, n)
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// Rows yields the rows selected by s with their table index. Each row is a
// fresh slice.
func (t *Table) Rows(s Span) iter.Seq2[int, []string] {
	return func(yield func(int, []string) bool) {
		lo, hi := s.bounds(t.Len())
		for i := lo; i < hi; i++ {
			row := make([]string, len(t.columns))
			for j, c := range t.columns {
				row[j] = c.cells[i]
			}
			if !yield(i, row) {
				return
			}
		}
	}
}

// check reports columns whose row counts disagree.
func (t *Table) check() error {
	n := t.Len()
	for _, c := range t.columns {
		if len(c.cells) != n {
			return fmt.Errorf("%w: column %q has %d rows, expected %d", ErrShape, c.name, len(c.cells), n)
		}
	}
	return nil
}

func (t *Table) collect(s Span) [][]string {
	var rows [][]string
	for _, row := range t.Rows(s) {
		rows = append(rows, row)
	}
	return rows
}
