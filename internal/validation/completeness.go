package validation

import (
	"fmt"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Completeness scores field presence over the metadata registry and emits a
// single summary line.
func Completeness(m map[string]any) Report {
	v := metadata.NewView(m)
	var (
		earned, max float64
		missingReq  []metadata.Key
		missingRec  []metadata.Key
	)

	for _, spec := range metadata.Registry() {
		if spec.Weight <= 0 {
			continue
		}
		max += spec.Weight
		if spec.IsPresent(v) {
			earned += spec.Weight
			continue
		}
		if spec.Required {
			missingReq = append(missingReq, spec.Key)
		} else {
			missingRec = append(missingRec, spec.Key)
		}
	}

	score := 0.0
	if max > 0 {
		score = earned / max
	}

	r := Report{
		CompletenessScore:  score,
		MissingRequired:    missingReq,
		MissingRecommended: missingRec,
	}
	pct := score * 100
	switch {
	case score >= 0.8:
		r.Info = append(r.Info, fmt.Sprintf("High completeness score: %.1f%%", pct))
	case score >= 0.6:
		r.Warnings = append(r.Warnings, fmt.Sprintf("Moderate completeness: %.1f%% - consider adding more details", pct))
	default:
		r.Warnings = append(r.Warnings, fmt.Sprintf("Low completeness: %.1f%% - important information missing", pct))
	}
	return r
}
