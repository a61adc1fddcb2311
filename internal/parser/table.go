// Package parser normalizes delimited-text and spreadsheet uploads into rows
// and maps them onto candidate records.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// utf8BOM is written by spreadsheet editors at the start of exported CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one non-blank data row. Number is the 1-based position after the
// header, counting blank rows, so it points at the row a user sees.
type Row struct {
	Number int
	Cells  []string
}

// Cell returns the trimmed value at idx or "" when the row is shorter.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx]
}

// Table is the normalized form of an uploaded sheet.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable builds a table from raw rows where the first row is the header.
// Cells are trimmed and fully blank rows are dropped.
func NewTable(raw [][]string) *Table {
	t := &Table{}
	for len(raw) > 0 && isBlank(trimAll(raw[0])) {
		raw = raw[1:]
	}
	if len(raw) == 0 {
		return t
	}
	t.Header = trimAll(raw[0])
	for i, cells := range raw[1:] {
		cells = trimAll(cells)
		if isBlank(cells) {
			continue
		}
		t.Rows = append(t.Rows, Row{Number: i + 1, Cells: cells})
	}
	return t
}

// ReadTable parses file bytes according to the file extension.
func ReadTable(data []byte, ext string) (*Table, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return ReadCSV(bytes.NewReader(data))
	case ".xlsx":
		return ReadXLSX(data)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", domain.ErrFileUnreadable, ext)
	}
}

// ReadCSV reads a delimited-text file. Rows may have varying widths.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileUnreadable, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// The reader skips empty lines; pad them back so row numbers match lines.
	var raw [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrFileUnreadable, err)
		}
		line, _ := reader.FieldPos(0)
		for len(raw) < line-1 {
			raw = append(raw, nil)
		}
		raw = append(raw, rec)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", domain.ErrFileUnreadable)
	}
	return NewTable(raw), nil
}

// ReadXLSX reads the first worksheet of a workbook using raw cell values so
// dates arrive as serial numbers instead of locale-formatted strings.
func ReadXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileUnreadable, err)
	}
	defer f.Close()

	raw, err := FirstSheetRows(f)
	if err != nil {
		return nil, err
	}
	return NewTable(raw), nil
}

// FirstSheetRows returns the raw rows of the first worksheet.
func FirstSheetRows(f *excelize.File) ([][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no worksheets", domain.ErrFileUnreadable)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileUnreadable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: worksheet is empty", domain.ErrFileUnreadable)
	}
	return rows, nil
}

// ErrNoRows is returned when a table has a header but no data rows.
var ErrNoRows = errors.New("file contains no data rows")

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// normalizeHeader folds case and drops separators so "First Name",
// "first_name" and "firstName" compare equal.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
