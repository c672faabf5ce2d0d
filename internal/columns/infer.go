package columns

import (
	"sort"
	"strings"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
)

// RoleMap maps a role to the name of the column carrying it. Unmatched roles
// are absent.
type RoleMap map[Role]string

// Get returns the column for role.
func (m RoleMap) Get(role Role) (string, bool) {
	name, ok := m[role]
	return name, ok
}

// Has reports whether every role in roles is matched.
func (m RoleMap) Has(roles ...Role) bool {
	for _, r := range roles {
		if _, ok := m[r]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns "role=column" pairs in inference order.
func (m RoleMap) Sorted() []string {
	order := map[Role]int{}
	for i, r := range Roles() {
		order[r] = i
	}
	keys := make([]Role, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return order[keys[i]] < order[keys[j]] })

	out := make([]string, len(keys))
	for i, r := range keys {
		out[i] = string(r) + "=" + m[r]
	}
	return out
}

// Infer assigns columns of t to roles. For each role in order, its patterns
// are tried most specific first against every column name (trimmed) in table
// order; the first numeric, still unassigned column that matches wins.
// A nil table is a precondition violation and returns apperr.ErrNilTable.
func Infer(t *Table) (RoleMap, error) {
	if t == nil {
		return nil, apperr.ErrNilTable
	}

	names := make([]string, len(t.Columns))
	numeric := make([]bool, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = strings.TrimSpace(c.Name)
		numeric[i] = c.Numeric()
	}

	roles := RoleMap{}
	taken := make([]bool, len(t.Columns))
	for _, rp := range rolePatterns {
	patterns:
		for _, re := range rp.patterns {
			for i, name := range names {
				if taken[i] || !re.MatchString(name) {
					continue
				}
				if !numeric[i] {
					logf("column %q matches %s but is not numeric", t.Columns[i].Name, rp.role)
					continue
				}
				roles[rp.role] = t.Columns[i].Name
				taken[i] = true
				break patterns
			}
		}
	}
	logf("inferred %d roles from %d columns", len(roles), len(t.Columns))
	return roles, nil
}
