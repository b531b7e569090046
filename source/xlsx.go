package source

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/radial/validate"
)

// XLSXOptions configures spreadsheet extraction.
type XLSXOptions struct {
	// Sheet names the worksheet to read; empty selects the first sheet.
	Sheet string
	// SkipHeader drops the first row (column titles).
	SkipHeader bool
}

// DefaultXLSXOptions reads the first sheet with a header row.
func DefaultXLSXOptions() XLSXOptions {
	return XLSXOptions{SkipHeader: true}
}

// XLSXSource reads name/value pairs from the first two columns of a
// worksheet. Cells that do not parse as numbers pass through as raw
// strings so the validator can diagnose them; fully blank rows are
// skipped.
type XLSXSource struct {
	r    io.Reader
	opts XLSXOptions
}

// NewXLSXSource wraps a spreadsheet stream.
func NewXLSXSource(r io.Reader, opts XLSXOptions) XLSXSource {
	return XLSXSource{r: r, opts: opts}
}

// Records implements Source.
func (s XLSXSource) Records() ([]validate.Record, error) {
	return DecodeXLSX(s.r, s.opts)
}

// DecodeXLSX extracts raw records from a spreadsheet: column A is the
// name, column B the value. Numeric-looking value cells become float64;
// anything else survives as-is for the validator. Missing cells become
// nil fields.
func DecodeXLSX(r io.Reader, opts XLSXOptions) ([]validate.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("source: open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("source: read sheet %q: %w", sheet, err)
	}
	if opts.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	records := make([]validate.Record, 0, len(rows))
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		records = append(records, validate.Record{
			Name:  cellAt(row, 0),
			Value: parseCell(cellAt(row, 1)),
		})
	}

	return records, nil
}

// cellAt returns the cell text at col, or nil when the row is too short.
// excelize trims trailing empty cells, so short rows are common.
func cellAt(row []string, col int) any {
	if col >= len(row) || row[col] == "" {
		return nil
	}

	return row[col]
}

// parseCell promotes numeric-looking cell text to float64.
func parseCell(cell any) any {
	s, ok := cell.(string)
	if !ok {
		return cell
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

// blankRow reports whether every cell of the row is empty.
func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}

	return true
}
