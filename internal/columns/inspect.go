package columns

import (
	"fmt"
	"strings"

	"github.com/Haghighatbin/echem-fairifier/internal/technique"
)

// Diagnostics are structural observations about a data table.
type Diagnostics struct {
	Errors   []string `yaml:"errors"`
	Warnings []string `yaml:"warnings"`
	Info     []string `yaml:"info"`
}

// Inspect checks the structure of t for technique tech: emptiness, expected
// columns, numeric column count, missing cells, duplicate rows and constant
// columns. It never looks at the measured values beyond that.
func Inspect(t *Table, tech string) (Diagnostics, error) {
	var d Diagnostics
	roles, err := Infer(t)
	if err != nil {
		return d, err
	}

	rows := t.Rows()
	if rows == 0 || len(t.Columns) == 0 {
		d.Errors = append(d.Errors, "Data file is empty")
		return d, nil
	}
	d.Info = append(d.Info, fmt.Sprintf("Data file contains %d rows and %d columns", rows, len(t.Columns)))

	var found []string
	for _, r := range technique.ExpectedRoles(tech) {
		if col, ok := roles.Get(Role(r)); ok {
			found = append(found, fmt.Sprintf("%s=%s", r, col))
		} else {
			d.Warnings = append(d.Warnings, fmt.Sprintf("No %s column found for %s", r, tech))
		}
	}
	if len(found) > 0 {
		d.Info = append(d.Info, "Found expected columns: "+strings.Join(found, ", "))
	} else {
		d.Warnings = append(d.Warnings, fmt.Sprintf("No expected columns found for %s", tech))
	}

	numeric := NumericColumns(t)
	if len(numeric) < 2 {
		d.Warnings = append(d.Warnings, "Expected at least 2 numeric columns for electrochemical data")
	}

	var missing []string
	for _, c := range t.Columns {
		n := 0
		for r := range rows {
			if r >= len(c.Values) || IsMissing(c.Values[r]) {
				n++
			}
		}
		if n > 0 {
			missing = append(missing, fmt.Sprintf("%s=%d", c.Name, n))
		}
	}
	if len(missing) > 0 {
		d.Warnings = append(d.Warnings, "Missing values found in columns: "+strings.Join(missing, ", "))
	}

	if dup := duplicateRows(t, rows); dup > 0 {
		d.Warnings = append(d.Warnings, fmt.Sprintf("Found %d duplicate rows", dup))
	}

	for _, c := range t.Columns {
		if c.Numeric() && constant(c.Floats()) {
			d.Warnings = append(d.Warnings, fmt.Sprintf("Column '%s' has constant values", c.Name))
		}
	}
	return d, nil
}

func duplicateRows(t *Table, rows int) int {
	seen := make(map[string]bool, rows)
	dup := 0
	for r := range rows {
		cells := make([]string, len(t.Columns))
		for c := range t.Columns {
			if v := t.Cell(r, c); !IsMissing(v) {
				cells[c] = strings.TrimSpace(fmt.Sprint(v))
			}
		}
		key := strings.Join(cells, "\x1f")
		if seen[key] {
			dup++
		}
		seen[key] = true
	}
	return dup
}

func constant(vals []float64) bool {
	if len(vals) < 2 {
		return false
	}
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}
