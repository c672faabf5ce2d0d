package validation

import (
	"math"
	"strings"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

type params map[string]any

func (p params) number(name string) (float64, bool, bool) {
	x, ok := p[name]
	if !ok || x == nil {
		return 0, false, false
	}
	f, ok := metadata.Number(x)
	return f, true, ok
}

func (p params) numbers(name string) ([]float64, bool) {
	x, ok := p[name]
	if !ok {
		return nil, false
	}
	return metadata.Numbers(x)
}

type checker func(p params, r *Report)

var checkers = map[string]checker{
	"CV":  checkCV,
	"EIS": checkEIS,
	"DPV": checkDPV,
	"SWV": checkSWV,
	"CA":  checkCA,
}

// Technique runs the plausibility rules for the technique named in m.
// Unknown or missing technique names produce an empty report.
func Technique(m map[string]any) Report {
	var r Report
	v := metadata.NewView(m)
	name, _ := v.String(metadata.TechniqueName)
	check, ok := checkers[strings.ToUpper(name)]
	if !ok {
		return r
	}
	check(params(v.Section(metadata.TechniqueParameters)), &r)
	return r
}

func checkCV(p params, r *Report) {
	if rate, set, ok := p.number("scan_rate"); set {
		switch {
		case !ok || !(rate > 0) || math.IsInf(rate, 1):
			r.Errors = append(r.Errors, "CV scan rate must be positive number")
		case rate > 10:
			r.Warnings = append(r.Warnings, "CV scan rate seems high (>10 V/s) - please verify")
		}
	}
	start, _, okStart := p.number("start_potential")
	end, _, okEnd := p.number("end_potential")
	if okStart && okEnd && math.Abs(end-start) < 0.1 {
		r.Warnings = append(r.Warnings, "CV potential window seems narrow (<0.1 V)")
	}
}

func checkEIS(p params, r *Report) {
	if fr, ok := p.numbers("frequency_range"); ok && len(fr) >= 2 && fr[0] <= fr[1] {
		r.Warnings = append(r.Warnings, "EIS frequency range should be [high, low]")
	}
	if amp, _, ok := p.number("ac_amplitude"); ok && amp > 0.1 {
		r.Warnings = append(r.Warnings, "EIS AC amplitude >0.1V may cause non-linear response")
	}
}

func checkDPV(p params, r *Report) {
	if w, _, ok := p.number("pulse_width"); ok && w < 0.01 {
		r.Warnings = append(r.Warnings, "DPV pulse width <10ms may be too short")
	}
}

func checkSWV(p params, r *Report) {
	if f, _, ok := p.number("frequency"); ok && f > 1000 {
		r.Warnings = append(r.Warnings, "SWV frequency >1000Hz may be too high")
	}
}

func checkCA(p params, r *Report) {
	times, ok := p.numbers("step_times")
	if !ok {
		return
	}
	for _, t := range times {
		if t < 0.1 {
			r.Warnings = append(r.Warnings, "CA step times <0.1s may be too short for steady-state")
			return
		}
	}
}
