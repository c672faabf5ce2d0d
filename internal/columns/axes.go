package columns

import (
	"github.com/Haghighatbin/echem-fairifier/internal/technique"
)

// Status tells how a Plot's axes were chosen.
type Status string

const (
	// Matched means both technique axes were resolved by role.
	Matched Status = "matched"
	// Fallback pairs the first two numeric columns in table order.
	Fallback Status = "fallback"
	// RowIndex plots the only numeric column against row number; X is empty.
	RowIndex Status = "row_index"
	// Ungraphable means the table has no numeric column at all.
	Ungraphable Status = "ungraphable"
)

// Plot is the axis choice for a (table, technique) pair.
type Plot struct {
	Status Status
	Title  string
	X, Y   string
	// XRole and YRole are the technique axes, set whatever the status.
	XRole, YRole Role
	Roles        RoleMap
}

// Graphable reports whether the plot has at least one data axis.
func (p Plot) Graphable() bool { return p.Status != Ungraphable }

// Axes picks plot axes for t under technique tech. When inference cannot
// resolve the technique's axis pair, a generic fallback is used; an explicit
// Ungraphable status is returned when no column is numeric.
func Axes(t *Table, tech string) (Plot, error) {
	roles, err := Infer(t)
	if err != nil {
		return Plot{}, err
	}
	xr, yr, title := technique.PlotAxes(tech)
	p := Plot{Title: title, XRole: Role(xr), YRole: Role(yr), Roles: roles}

	if roles.Has(p.XRole, p.YRole) {
		p.Status, p.X, p.Y = Matched, roles[p.XRole], roles[p.YRole]
		return p, nil
	}

	numeric := NumericColumns(t)
	switch len(numeric) {
	case 0:
		p.Status = Ungraphable
	case 1:
		p.Status, p.Y = RowIndex, numeric[0]
	default:
		p.Status, p.X, p.Y = Fallback, numeric[0], numeric[1]
	}
	logf("no %s/%s pair for %q, using %s", xr, yr, tech, p.Status)
	return p, nil
}
