// Package frame holds the tabular dataset a report file parses into.
// Values are kept as the strings they arrived as; numeric views are
// computed on demand so the display layer can pass unparseable cells
// through untouched.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func New(columns []string, rows [][]string) *Frame {
	f := &Frame{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range f.columns {
		f.index[c] = i
	}
	for _, row := range rows {
		f.rows = append(f.rows, normalizeRow(row, len(columns)))
	}
	return f
}

// FromCSV reads a full CSV document, first record as the header.
func FromCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return New(nil, nil), nil
	}
	return New(records[0], records[1:]), nil
}

func FromFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer file.Close()
	return FromCSV(file)
}

func normalizeRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

func (f *Frame) HasColumns(names ...string) bool {
	for _, n := range names {
		if !f.HasColumn(n) {
			return false
		}
	}
	return true
}

// MissingColumns returns the subset of names absent from the frame,
// preserving the requested order.
func (f *Frame) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !f.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

func (f *Frame) NumRows() int { return len(f.rows) }

func (f *Frame) Empty() bool { return len(f.rows) == 0 }

// Value returns the cell at (row, column); empty string when either
// coordinate is out of range.
func (f *Frame) Value(row int, column string) string {
	i, ok := f.index[column]
	if !ok || row < 0 || row >= len(f.rows) {
		return ""
	}
	return f.rows[row][i]
}

func (f *Frame) SetValue(row int, column, value string) {
	i, ok := f.index[column]
	if !ok || row < 0 || row >= len(f.rows) {
		return
	}
	f.rows[row][i] = value
}

// Column returns a copy of one column's values.
func (f *Frame) Column(name string) []string {
	i, ok := f.index[name]
	if !ok {
		return nil
	}
	out := make([]string, len(f.rows))
	for r, row := range f.rows {
		out[r] = row[i]
	}
	return out
}

// Floats returns the column parsed as numbers. Cells that do not parse
// (after currency/thousands cleanup) come back as 0 with ok=false.
func (f *Frame) Floats(name string) ([]float64, []bool) {
	values := f.Column(name)
	nums := make([]float64, len(values))
	oks := make([]bool, len(values))
	for i, v := range values {
		nums[i], oks[i] = ParseNumber(v)
	}
	return nums, oks
}

func (f *Frame) Rows() [][]string {
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func (f *Frame) Copy() *Frame {
	return New(f.columns, f.rows)
}

// Filter returns a new frame with the rows keep reports true for.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	var rows [][]string
	for i := range f.rows {
		if keep(i) {
			rows = append(rows, f.rows[i])
		}
	}
	return New(f.columns, rows)
}

// ParseNumber parses a cell as a float, tolerating a currency prefix,
// thousands separators and surrounding whitespace.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
