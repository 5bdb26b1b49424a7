// Package pround rounds measurements to significant figures and renders them
// as LaTeX or spreadsheet tables.
//
// # Rounding
//
// [Round] follows the usual convention for reporting a value with its
// uncertainty: the uncertainty is rounded to its first significant digit, or
// to two digits when the first one is a 1 or a 2, and the value is rounded to
// the same decimal place:
//
//	v, u, err := pround.Round(10.23456789, 1.23456789) // "10.2", "1.2"
//	v, u, err := pround.Round(3.456789, 0.3656789)     // "3.5", "0.4"
//
// [Precision] exposes the decimal place alone. [RoundPlain] formats values
// that have no uncertainty with a fixed number of decimals.
//
// # Tables
//
// A [Table] collects named columns in insertion order. Its [Format] is fixed
// at construction because cells are rendered once, when the column is added:
//
//	t, err := pround.New(pround.Latex)
//	err = t.AddColumn("x / cm", pround.Paired{Values: x, Uncertainties: dx})
//	err = t.AddColumn("z / cm", pround.Values(z...).WithDigits(1))
//
// The input variants are [Plain], [Paired] and [Measurements]. Data from
// other sources (decoded YAML, CSV string columns, integer slices) goes
// through [Floats] first.
//
// # Output
//
//   - [Table.Render] writes the bare table: a booktabs tabular for [Latex],
//     an aligned text dump for [Excel].
//   - [Table.Document] writes a standalone file: a compilable LaTeX document
//     or an xlsx workbook.
//   - [Table.WriteFile] writes the document to a path, replacing it.
//
// [RowRange] and [RowsFrom] select a half-open range of rows.
// [WithOrientation] chooses a portrait or landscape LaTeX page.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrShape] — mismatched lengths or nested sequences
//   - [ErrInvalidUncertainty] — zero, negative, NaN or infinite uncertainty
//   - [ErrUnsupportedFormat] — format other than latex or excel
//   - [ErrTypeMismatch] — column data that is not numeric
//
// A failed [Table.AddColumn] leaves the table unchanged.
package pround
