package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ColumnCountryName   = "Country Name"
	ColumnIndicatorCode = "Indicator Code"
)

var (
	ErrMissingColumn = errors.New("column not present")
	ErrEmptyCell     = errors.New("empty cell")
	ErrNotFinite     = errors.New("value is not finite")
)

// Dataset is a header plus string rows, as read from a WDI style table.
type Dataset struct {
	header  []string
	columns map[string]int
	rows    [][]string
}

// Row is a single record addressed by column name.
type Row struct {
	ds     *Dataset
	values []string
}

func New(header []string, rows [][]string) *Dataset {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			continue
		}
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	return &Dataset{header: header, columns: columns, rows: rows}
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Find returns the first row whose country name and indicator code match.
func (d *Dataset) Find(country, indicator string) (Row, bool) {
	ci, ok := d.columns[ColumnCountryName]
	if !ok {
		return Row{}, false
	}
	ii, ok := d.columns[ColumnIndicatorCode]
	if !ok {
		return Row{}, false
	}

	for _, values := range d.rows {
		if cell(values, ci) == country && cell(values, ii) == indicator {
			return Row{ds: d, values: values}, true
		}
	}
	return Row{}, false
}

func (r Row) String(column string) (string, error) {
	i, ok := r.ds.columns[column]
	if !ok {
		return "", fmt.Errorf("%q: %w", column, ErrMissingColumn)
	}
	return cell(r.values, i), nil
}

// Float parses the cell under column. Empty cells are an error, not zero,
// and NaN or infinite values are rejected.
func (r Row) Float(column string) (float64, error) {
	raw, err := r.String(column)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, fmt.Errorf("%q: %w", column, ErrEmptyCell)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", column, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %q: %w", column, raw, ErrNotFinite)
	}
	return v, nil
}

func cell(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}
