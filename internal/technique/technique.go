// Package technique holds the static registry of supported electrochemical
// measurement techniques and their parameters.
//
// The registry is read-only after package initialisation; every lookup is a
// pure function and unknown ids never cause an error.
package technique

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a parameter value.
type Kind string

const (
	KindNumber Kind = "number"
	KindText   Kind = "text"
	KindList   Kind = "list"
)

// UnknownDescription is returned by Description for ids not in the registry.
const UnknownDescription = "Unknown technique"

// Parameter is one named parameter of a technique.
//
// Default holds a float64 for KindNumber and a []float64 for KindList.
type Parameter struct {
	Name        string
	Default     any
	Description string
	Unit        string
	Kind        Kind
	Min         *float64
	Max         *float64
}

// Bounded reports whether the parameter declares both bounds.
func (p Parameter) Bounded() bool { return p.Min != nil && p.Max != nil }

// Contains reports whether v lies inside the declared bounds. Missing bounds
// are treated as open.
func (p Parameter) Contains(v float64) bool {
	if p.Min != nil && v < *p.Min {
		return false
	}
	if p.Max != nil && v > *p.Max {
		return false
	}
	return true
}

// DefaultString renders Default for display and form prefill; lists are
// comma separated.
func (p Parameter) DefaultString() string {
	switch v := p.Default.(type) {
	case nil:
		return ""
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, ",")
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// RangeString renders the bounds as "[min, max]", or "" when unbounded.
func (p Parameter) RangeString() string {
	if !p.Bounded() {
		return ""
	}
	return fmt.Sprintf("[%g, %g]", *p.Min, *p.Max)
}

// Definition describes a technique: its parameters in display order, the
// column roles a data file for it is expected to carry, and the pair of roles
// it is plotted with.
type Definition struct {
	ID          string
	Description string
	Parameters  []Parameter

	// Roles lists the column roles expected in a data file, most important first.
	Roles []string
	// Axes is the (x, y) role pair used for plotting.
	Axes [2]string
	// PlotTitle names the canonical plot for this technique.
	PlotTitle string
}

// Parameter returns the named parameter.
func (d Definition) Parameter(name string) (Parameter, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

func bound(v float64) *float64 { return &v }

func num(name string, def float64, unit, desc string, min, max float64) Parameter {
	return Parameter{Name: name, Default: def, Unit: unit, Description: desc, Kind: KindNumber, Min: bound(min), Max: bound(max)}
}

func list(name string, def []float64, unit, desc string) Parameter {
	return Parameter{Name: name, Default: def, Unit: unit, Description: desc, Kind: KindList}
}

var definitions = []Definition{
	{
		ID:          "CV",
		Description: "Cyclic Voltammetry - Potential swept linearly between limits",
		Parameters: []Parameter{
			num("scan_rate", 0.1, "V/s", "Rate of potential change", 0.001, 10),
			num("start_potential", -0.2, "V", "Initial potential", -5, 5),
			num("end_potential", 0.6, "V", "Final potential", -5, 5),
			num("step_size", 0.002, "V", "Potential increment", 0.0001, 0.1),
			num("cycles", 1, "", "Number of cycles", 1, 100),
		},
		Roles:     []string{"potential", "current"},
		Axes:      [2]string{"potential", "current"},
		PlotTitle: "Cyclic Voltammogram",
	},
	{
		ID:          "DPV",
		Description: "Differential Pulse Voltammetry - Series of potential pulses",
		Parameters: []Parameter{
			num("pulse_amplitude", 0.05, "V", "Pulse height", 0.001, 0.5),
			num("pulse_width", 0.05, "s", "Pulse duration", 0.001, 1),
			num("step_potential", 0.005, "V", "Potential step between pulses", 0.001, 0.1),
			num("scan_rate", 0.01, "V/s", "Effective scan rate", 0.001, 1),
		},
		Roles:     []string{"potential", "current"},
		Axes:      [2]string{"potential", "current"},
		PlotTitle: "Differential Pulse Voltammogram",
	},
	{
		ID:          "SWV",
		Description: "Square Wave Voltammetry - Square wave potential modulation",
		Parameters: []Parameter{
			num("frequency", 25, "Hz", "Square wave frequency", 1, 1000),
			num("amplitude", 0.025, "V", "Square wave amplitude", 0.001, 0.5),
			num("step_height", 0.004, "V", "Staircase step height", 0.001, 0.1),
		},
		Roles:     []string{"potential", "current"},
		Axes:      [2]string{"potential", "current"},
		PlotTitle: "Square Wave Voltammogram",
	},
	{
		ID:          "EIS",
		Description: "Electrochemical Impedance Spectroscopy - AC frequency response",
		Parameters: []Parameter{
			list("frequency_range", []float64{100000, 0.01}, "Hz", "Frequency range [high, low]"),
			num("ac_amplitude", 0.01, "V", "AC perturbation amplitude", 0.001, 0.1),
			num("bias_potential", 0.0, "V", "DC bias potential", -5, 5),
			num("equilibration_time", 10, "s", "Time before measurement", 0, 3600),
		},
		Roles:     []string{"frequency", "z_real", "z_imag", "phase"},
		Axes:      [2]string{"z_real", "z_imag"},
		PlotTitle: "Nyquist Plot",
	},
	{
		ID:          "CA",
		Description: "Chronoamperometry - Current response to potential steps",
		Parameters: []Parameter{
			list("step_potentials", []float64{0.0, 0.5}, "V", "Potential steps"),
			list("step_times", []float64{5, 60}, "s", "Duration of each step"),
			num("total_duration", 65, "s", "Total experiment time", 1, 86400),
		},
		Roles:     []string{"time", "current", "potential"},
		Axes:      [2]string{"time", "current"},
		PlotTitle: "Chronoamperogram",
	},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(definitions))
	for i, d := range definitions {
		m[d.ID] = i
	}
	return m
}()

func normalizeID(id string) string { return strings.ToUpper(strings.TrimSpace(id)) }

// List returns the technique ids in registry order.
func List() []string {
	ids := make([]string, 0, len(definitions))
	for _, d := range definitions {
		ids = append(ids, d.ID)
	}
	return ids
}

// Lookup returns the definition for id. Ids are matched case-insensitively.
func Lookup(id string) (Definition, bool) {
	i, ok := byID[normalizeID(id)]
	if !ok {
		return Definition{}, false
	}
	d := definitions[i]
	d.Parameters = append([]Parameter(nil), d.Parameters...)
	d.Roles = append([]string(nil), d.Roles...)
	return d, true
}

// Known reports whether id names a registered technique.
func Known(id string) bool {
	_, ok := byID[normalizeID(id)]
	return ok
}

// Parameters returns the ordered parameters of id, or an empty slice.
func Parameters(id string) []Parameter {
	d, ok := Lookup(id)
	if !ok {
		return []Parameter{}
	}
	return d.Parameters
}

// ParameterOf returns a single parameter of a technique.
func ParameterOf(id, name string) (Parameter, bool) {
	d, ok := Lookup(id)
	if !ok {
		return Parameter{}, false
	}
	return d.Parameter(name)
}

// Description returns the human-readable description of id, or
// UnknownDescription.
func Description(id string) string {
	d, ok := Lookup(id)
	if !ok {
		return UnknownDescription
	}
	return d.Description
}

// Defaults returns a fresh name→default map for id. List defaults are copied.
func Defaults(id string) map[string]any {
	out := map[string]any{}
	for _, p := range Parameters(id) {
		switch v := p.Default.(type) {
		case []float64:
			out[p.Name] = append([]float64(nil), v...)
		default:
			out[p.Name] = v
		}
	}
	return out
}

// ExpectedRoles returns the column roles a data file for id should carry.
// Unknown techniques fall back to a potential/current pair.
func ExpectedRoles(id string) []string {
	d, ok := Lookup(id)
	if !ok {
		return []string{"potential", "current"}
	}
	return d.Roles
}

// PlotAxes returns the (x, y) role pair and plot title for id.
func PlotAxes(id string) (x, y, title string) {
	d, ok := Lookup(id)
	if !ok {
		name := strings.TrimSpace(id)
		if name == "" {
			name = "Electrochemical"
		}
		return "potential", "current", name + " Measurement"
	}
	return d.Axes[0], d.Axes[1], d.PlotTitle
}

// OutOfRange lists human-readable notes for numeric values in params that fall
// outside the registry bounds of id. Parameters not in the registry, or not
// numeric, are ignored. The result follows registry parameter order.
func OutOfRange(id string, params map[string]any) []string {
	var notes []string
	for _, p := range Parameters(id) {
		if p.Kind != KindNumber {
			continue
		}
		v, ok := params[p.Name].(float64)
		if !ok || p.Contains(v) {
			continue
		}
		note := fmt.Sprintf("%s=%g outside [%g, %g] %s", p.Name, v, *p.Min, *p.Max, p.Unit)
		notes = append(notes, strings.TrimSpace(note))
	}
	return notes
}
