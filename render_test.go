package pround_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/pround"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

func twoColumnTable(t *testing.T, f pround.Format) *pround.Table {
	t.Helper()
	tbl := newTable(t, f)
	require.NoError(t, tbl.AddPaired("x", []float64{1.23456789, 2.3456789}, []float64{0.123456789, 0.23456789}))
	require.NoError(t, tbl.AddPlain("z", []float64{42, 21}, 1))
	return tbl
}

func fiveRowTable(t *testing.T, f pround.Format) *pround.Table {
	t.Helper()
	tbl := newTable(t, f)
	require.NoError(t, tbl.AddPlain("i", []float64{0, 1, 2, 3, 4}, 0))
	require.NoError(t, tbl.AddPlain("sq", []float64{0, 1, 4, 9, 16}, 1))
	return tbl
}

// ============================================================
// Tests
// ============================================================

// --- LaTeX ---

func TestRenderLatex(t *testing.T) {
	t.Parallel()
	tbl := twoColumnTable(t, pround.Latex)
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	want := `\begin{tabular}{cc}\toprule
x & z\\
\midrule
\num{1.23 +- 0.12} & 42.0\\
\num{2.35 +- 0.23} & 21.0\\
\bottomrule
\end{tabular}
`
	assert.Equal(t, want, buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), `\begin{tabular}{cc}\toprule`))
}

func TestRenderLatexRowRange(t *testing.T) {
	t.Parallel()
	tbl := fiveRowTable(t, pround.Latex)
	out, err := tbl.Marshal(pround.RowRange(1, 3))
	require.NoError(t, err)
	assert.Equal(t, `\begin{tabular}{cc}\toprule
i & sq\\
\midrule
1 & 1.0\\
2 & 4.0\\
\bottomrule
\end{tabular}
`, string(out))
}

func TestRenderLatexRowsFrom(t *testing.T) {
	t.Parallel()
	tbl := fiveRowTable(t, pround.Latex)
	out, err := tbl.Marshal(pround.RowsFrom(4))
	require.NoError(t, err)
	assert.Contains(t, string(out), `4 & 16.0\\`)
	assert.NotContains(t, string(out), `3 & 9.0\\`)
}

func TestRenderLatexStartPastEnd(t *testing.T) {
	t.Parallel()
	tbl := fiveRowTable(t, pround.Latex)
	out, err := tbl.Marshal(pround.RowRange(10, 20))
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tabular}{cc}\\toprule\ni & sq\\\\\n\\midrule\n\\bottomrule\n\\end{tabular}\n", string(out))
}

func TestRenderLatexEmpty(t *testing.T) {
	t.Parallel()
	tbl := newTable(t, pround.Latex)
	out, err := tbl.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tabular}{}\\toprule\n\\\\\n\\midrule\n\\bottomrule\n\\end{tabular}\n", string(out))
}

func TestDocumentLatex(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts      []pround.RenderOption
		landscape bool
	}{
		"default landscape": {landscape: true},
		"landscape":         {opts: []pround.RenderOption{pround.WithOrientation(pround.Landscape)}, landscape: true},
		"portrait":          {opts: []pround.RenderOption{pround.WithOrientation(pround.Portrait)}, landscape: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := twoColumnTable(t, pround.Latex)
			var buf bytes.Buffer
			require.NoError(t, tbl.Document(&buf, tt.opts...))
			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "\\documentclass{scrartcl}\n"))
			assert.Contains(t, out, `\usepackage{booktabs}`)
			assert.Contains(t, out, `\usepackage[separate-uncertainty=true]{siunitx}`)
			assert.Contains(t, out, `\usepackage{physics}`)
			assert.Contains(t, out, "\\begin{document}\n\\begin{tabular}{cc}\\toprule\n")
			assert.True(t, strings.HasSuffix(out, "\\end{tabular}\n\\end{document}\n"))
			if tt.landscape {
				assert.Contains(t, out, `\KOMAoptions{fontsize=12pt, paper=a4, paper=landscape}`)
			} else {
				assert.Contains(t, out, `\KOMAoptions{fontsize=12pt, paper=a4}`)
				assert.NotContains(t, out, "landscape")
			}
		})
	}
}

// --- Excel ---

func TestRenderExcelDump(t *testing.T) {
	t.Parallel()
	tbl := twoColumnTable(t, pround.Excel)
	out, err := tbl.Marshal()
	require.NoError(t, err)
	want := strings.Join([]string{
		strings.Repeat(" ", 11) + "x" + "  " + "   z",
		strings.Repeat("-", 12) + "  " + "----",
		"1.23 +- 0.12  42.0",
		"2.35 +- 0.23  21.0",
	}, "\n") + "\n"
	assert.Equal(t, want, string(out))
}

func TestRenderExcelDumpWideHeader(t *testing.T) {
	t.Parallel()
	tbl := newTable(t, pround.Excel)
	require.NoError(t, tbl.AddPlain("時間 / s", []float64{1}, 0))
	out, err := tbl.Marshal()
	require.NoError(t, err)
	// Each CJK character occupies two columns.
	assert.Equal(t, "時間 / s\n--------\n       1\n", string(out))
}

func TestRenderExcelDumpEmpty(t *testing.T) {
	t.Parallel()
	tbl := newTable(t, pround.Excel)
	out, err := tbl.Marshal()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDocumentExcel(t *testing.T) {
	t.Parallel()
	tbl := fiveRowTable(t, pround.Excel)
	var buf bytes.Buffer
	require.NoError(t, tbl.Document(&buf, pround.RowRange(1, 3)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"i", "sq"},
		{"1", "1.0"},
		{"2", "4.0"},
	}, rows)
}

// --- Files ---

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.tex")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than nothing"), 0o644))

	tbl := twoColumnTable(t, pround.Latex)
	require.NoError(t, tbl.WriteFile(path, pround.WithOrientation(pround.Portrait)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.True(t, strings.HasPrefix(string(data), `\documentclass{scrartcl}`))
	assert.Contains(t, string(data), `\num{2.35 +- 0.23} & 21.0\\`)
}

func TestWriteFileExcel(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.xlsx")
	tbl := twoColumnTable(t, pround.Excel)
	require.NoError(t, tbl.WriteFile(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"x", "z"},
		{"1.23 +- 0.12", "42.0"},
		{"2.35 +- 0.23", "21.0"},
	}, rows)
}

func TestWriteFileMissingDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "table.tex")
	tbl := twoColumnTable(t, pround.Latex)
	err := tbl.WriteFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table.tex")
}

// --- Write errors ---

func TestRenderWriteErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format   pround.Format
		document bool
	}{
		"latex fragment": {format: pround.Latex},
		"latex document": {format: pround.Latex, document: true},
		"excel dump":     {format: pround.Excel},
		"excel workbook": {format: pround.Excel, document: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := twoColumnTable(t, tt.format)
			var err error
			if tt.document {
				err = tbl.Document(&errWriter{})
			} else {
				err = tbl.Render(&errWriter{})
			}
			require.Error(t, err)
		})
	}
}
