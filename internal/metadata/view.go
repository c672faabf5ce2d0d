package metadata

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// View is a read-only accessor over the bare mapping form of a record.
// It tolerates missing sections and foreign types: lookups that cannot be
// resolved report absence instead of failing.
type View struct {
	m map[string]any
}

// NewView wraps m. A nil map behaves like an empty record.
func NewView(m map[string]any) View { return View{m: m} }

// Map returns the wrapped mapping.
func (v View) Map() map[string]any { return v.m }

// Raw returns the value at key and whether every path segment resolved.
func (v View) Raw(key Key) (any, bool) {
	var cur any = v.m
	for _, seg := range key.Segments() {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Present reports whether key holds a non-empty value: not nil, not a blank
// string and not an empty collection. Numbers and booleans (including zero
// and false) count as present.
func (v View) Present(key Key) bool {
	x, ok := v.Raw(key)
	if !ok {
		return false
	}
	return IsPresent(x)
}

// IsPresent applies the presence rule used by View.Present to a bare value.
func IsPresent(x any) bool {
	if x == nil {
		return false
	}
	if s, ok := x.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	switch rv := reflect.ValueOf(x); rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// String returns the trimmed string at key.
func (v View) String(key Key) (string, bool) {
	x, ok := v.Raw(key)
	if !ok || x == nil {
		return "", false
	}
	s, ok := x.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Section returns the nested mapping at key.
func (v View) Section(key Key) map[string]any {
	x, _ := v.Raw(key)
	m, _ := x.(map[string]any)
	return m
}

// Number coerces a scalar to float64. Booleans, blank strings and
// non-numeric text are rejected.
func Number(x any) (float64, bool) {
	switch t := x.(type) {
	case nil, bool:
		return 0, false
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0, false
		}
		x = t
	}
	f, err := cast.ToFloat64E(x)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Numbers coerces a list value to []float64. Every element must be numeric.
func Numbers(x any) ([]float64, bool) {
	if x == nil {
		return nil, false
	}
	if fs, ok := x.([]float64); ok {
		return append([]float64(nil), fs...), true
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]float64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		f, ok := Number(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}
