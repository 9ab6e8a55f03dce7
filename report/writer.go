package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/optionfdm/matrix"
)

// Format selects the output file type.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// DefaultPrecision is the number of decimals kept by the writers.
const DefaultPrecision int32 = 6

// ParseFormat maps "csv" or "xlsx" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, XLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FileName returns <kind>_<n1>_<n2>[_<n3>].<format> for a table.
func FileName(t *Table, format Format) string {
	parts := []string{t.Kind.String()}
	for _, n := range t.Shape {
		parts = append(parts, strconv.Itoa(n))
	}

	return strings.Join(parts, "_") + "." + string(format)
}

// Write stores t in dir under FileName and returns the full path.
// dir is created if missing.
func Write(dir string, t *Table, format Format, precision int32) (string, error) {
	if t == nil {
		return "", fmt.Errorf("Write: %w", matrix.ErrNilMatrix)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(t, format))

	switch format {
	case XLSX:
		return path, WriteXLSX(path, t, precision)
	case CSV:
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if err = WriteCSV(f, t, precision); err != nil {
			_ = f.Close()
			return "", err
		}

		return path, f.Close()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteCSV writes a header line and one line per row, every number rounded
// to precision decimals.
func WriteCSV(w io.Writer, t *Table, precision int32) error {
	if t == nil {
		return fmt.Errorf("WriteCSV: %w", matrix.ErrNilMatrix)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = formatFixed(v, precision)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteXLSX writes t to a new workbook at path, on a sheet named after t.Kind.
// The header row is bold.
func WriteXLSX(path string, t *Table, precision int32) (err error) {
	if t == nil {
		return fmt.Errorf("WriteXLSX: %w", matrix.ErrNilMatrix)
	}
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sheet := t.Kind.String()
	if err = f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err = f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	cells := make([]interface{}, len(t.Columns))
	for r, row := range t.Rows {
		for i, v := range row {
			cells[i] = cellValue(v, precision)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// formatFixed renders v with exactly precision decimals.
// NaN and ±Inf, which a diverged explicit run can produce, are written as is.
func formatFixed(v float64, precision int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return decimal.NewFromFloat(v).StringFixed(precision)
}

func cellValue(v float64, precision int32) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return decimal.NewFromFloat(v).Round(precision).InexactFloat64()
}
