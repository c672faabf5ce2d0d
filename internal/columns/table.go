// Package columns identifies which columns of a loosely structured data table
// carry which physical quantities, and picks plot axes for a technique.
package columns

import (
	"strings"

	"github.com/spf13/cast"
)

// Column is a named, ordered sequence of cell values. Cells are typically
// strings (as read from CSV) or numbers; nil marks a missing cell.
type Column struct {
	Name   string
	Values []any
}

// Table is an ordered list of columns.
type Table struct {
	Columns []Column
}

// NewTable builds a table from a header row and data rows. Short rows leave
// missing cells; cells beyond the header are dropped.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		t.Columns[i] = Column{Name: name, Values: make([]any, len(rows))}
	}
	for r, row := range rows {
		for c := range header {
			if c < len(row) {
				t.Columns[c].Values[r] = row[c]
			}
		}
	}
	return t
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Rows returns the length of the longest column.
func (t *Table) Rows() int {
	n := 0
	for _, c := range t.Columns {
		n = max(n, len(c.Values))
	}
	return n
}

// Cell returns the value at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) any {
	if col < 0 || col >= len(t.Columns) {
		return nil
	}
	vals := t.Columns[col].Values
	if row < 0 || row >= len(vals) {
		return nil
	}
	return vals[row]
}

var missingMarkers = map[string]bool{"": true, "na": true, "n/a": true, "nan": true, "null": true, "none": true}

// IsMissing reports whether a cell holds no value.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return missingMarkers[strings.ToLower(strings.TrimSpace(s))]
	}
	return false
}

// ToFloat coerces a non-missing cell to float64. Booleans are not numbers.
func ToFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		v = strings.TrimSpace(t)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Numeric reports whether every non-missing cell of c coerces to a number
// and at least one such cell exists.
func (c Column) Numeric() bool {
	seen := false
	for _, v := range c.Values {
		if IsMissing(v) {
			continue
		}
		if _, ok := ToFloat(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// Floats returns the numeric values of c, skipping missing cells.
func (c Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if IsMissing(v) {
			continue
		}
		if f, ok := ToFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// NumericColumns returns the names of numeric columns in table order.
func NumericColumns(t *Table) []string {
	if t == nil {
		return nil
	}
	var out []string
	for _, c := range t.Columns {
		if c.Numeric() {
			out = append(out, c.Name)
		}
	}
	return out
}
