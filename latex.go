package pround

import (
	"fmt"
	"io"
	"strings"
)

const (
	latexColSep = " & "
	latexRowEnd = `\\`
)

var latexPackages = []string{
	`\usepackage{booktabs}`,
	`\usepackage{amsfonts}`,
	`\usepackage{amsmath,amssymb}`,
	`\usepackage{physics}`,
	`\usepackage[separate-uncertainty=true]{siunitx}`,
	`\usepackage[utf8]{inputenc}`,
	`\usepackage[T1]{fontenc}`,
	`\usepackage{fontspec}`,
}

// writeTabular writes a booktabs tabular environment with one centered
// column per header entry. Cells are written verbatim so headers may carry
// math such as $\Delta x$.
func writeTabular(w io.Writer, header []string, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "\\begin{tabular}{%s}\\toprule\n", strings.Repeat("c", len(header))); err != nil {
		return err
	}
	if err := writeLatexRow(w, header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\\midrule\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeLatexRow(w, row); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\\bottomrule\n\\end{tabular}\n")
	return err
}

func writeLatexRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintln(w, strings.Join(cells, latexColSep)+latexRowEnd)
	return err
}

// writeDocument wraps the tabular in a KOMA-Script article with the packages
// needed for \num and booktabs rules.
func writeDocument(w io.Writer, header []string, rows [][]string, o Orientation) error {
	paper := "a4"
	if o == Landscape {
		paper += ", paper=landscape"
	}
	var sb strings.Builder
	sb.WriteString("\\documentclass{scrartcl}\n")
	fmt.Fprintf(&sb, "\\KOMAoptions{fontsize=12pt, paper=%s}\n", paper)
	sb.WriteString("\\KOMAoptions{DIV=20}\n")
	for _, pkg := range latexPackages {
		sb.WriteString(pkg)
		sb.WriteByte('\n')
	}
	sb.WriteString("\\pagenumbering{gobble}\n")
	sb.WriteString("\\begin{document}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if err := writeTabular(w, header, rows); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\\end{document}\n")
	return err
}
