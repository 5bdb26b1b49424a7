package pround

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook writes an xlsx workbook with a single sheet: the header in
// the first row, one row per table row below it, no index column.
func writeWorkbook(w io.Writer, header []string, rows [][]string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := setSheetRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setSheetRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
