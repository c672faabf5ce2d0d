package validation

import (
	"fmt"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Report is the outcome of one or more validation passes. Errors are
// structural violations, Warnings are quality recommendations and Info holds
// positive confirmations. Scores are in [0, 1].
type Report struct {
	Errors   []string `yaml:"errors"`
	Warnings []string `yaml:"warnings"`
	Info     []string `yaml:"info"`

	FAIRScore         float64 `yaml:"fair_score"`
	CompletenessScore float64 `yaml:"completeness_score"`

	MissingRequired    []metadata.Key `yaml:"missing_required,omitempty"`
	MissingRecommended []metadata.Key `yaml:"missing_recommended,omitempty"`
}

// Valid reports whether the report carries no errors.
func (r Report) Valid() bool { return len(r.Errors) == 0 }

// merge appends the messages of o and adopts any scores and missing-field
// lists it carries.
func (r *Report) merge(o Report) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
	r.Info = append(r.Info, o.Info...)
	if o.FAIRScore != 0 {
		r.FAIRScore = o.FAIRScore
	}
	if o.CompletenessScore != 0 {
		r.CompletenessScore = o.CompletenessScore
	}
	if o.MissingRequired != nil {
		r.MissingRequired = o.MissingRequired
	}
	if o.MissingRecommended != nil {
		r.MissingRecommended = o.MissingRecommended
	}
}

// Summary returns a one-line summary suitable for command output.
func Summary(r Report) string {
	status := "✅ PASSED"
	if !r.Valid() {
		status = "❌ FAILED"
	}
	return fmt.Sprintf("Validation: %s | FAIR: %.1f%% | Completeness: %.1f%% | Errors: %d | Warnings: %d",
		status,
		r.FAIRScore*100,
		r.CompletenessScore*100,
		len(r.Errors),
		len(r.Warnings))
}

// PrintReport writes the report to the configured logger writer.
// If no logger writer is configured, it produces no output.
func PrintReport(recordID string, r Report) {
	if r.Valid() {
		logf(recordID, "✅ validation passed")
	} else {
		logf(recordID, "❌ validation failed")
	}
	if len(r.Errors) > 0 {
		logf(recordID, "errors (%d):", len(r.Errors))
		for _, e := range r.Errors {
			logf(recordID, "  • %s", e)
		}
	}
	if len(r.Warnings) > 0 {
		logf(recordID, "warnings (%d):", len(r.Warnings))
		for _, w := range r.Warnings {
			logf(recordID, "  • %s", w)
		}
	}
	logf(recordID, "fair score: %.1f%%, completeness: %.1f%% (%d required, %d recommended missing)",
		r.FAIRScore*100,
		r.CompletenessScore*100,
		len(r.MissingRequired),
		len(r.MissingRecommended))
}
