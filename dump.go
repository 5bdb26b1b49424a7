package pround

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeDump writes a plain text table: right-aligned columns separated by two
// spaces, a dashed rule under the header. Widths are display widths, so
// wide characters line up.
func writeDump(w io.Writer, header []string, rows [][]string) error {
	if len(header) == 0 {
		return nil
	}
	widths := computeWidths(header, rows)
	if err := writeDumpRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeDumpRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeDumpRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padLeft(cell, width)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}

func padLeft(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
