// Package validator is the public entry point for validating EChem FAIR
// metadata files, with optional strict thresholds on top of the core report.
package validator

import (
	"fmt"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
	"github.com/Haghighatbin/echem-fairifier/internal/recordio"
	"github.com/Haghighatbin/echem-fairifier/internal/validation"
)

type ValidationResult struct {
	RecordID  string
	Technique string
	Valid     bool
	Errors    []string
	Warnings  []string
	Info      []string

	FAIRScore          float64
	CompletenessScore  float64
	MissingRequired    []metadata.Key
	MissingRecommended []metadata.Key

	// Report is the unmodified core report; Errors additionally carries
	// strict-mode failures.
	Report validation.Report
}

type ValidationOptions struct {
	SchemaPath           string  // External JSON/YAML schema; empty uses the embedded one
	StrictMode           bool    // Fail on missing required fields and low scores
	MinFAIRScore         float64 // Minimum acceptable FAIR score (0.0-1.0), strict mode only
	MinCompletenessScore float64 // Minimum acceptable completeness score (0.0-1.0), strict mode only
}

// Validate checks the mapping form of a metadata record.
func Validate(m map[string]any, opts ValidationOptions) ValidationResult {
	v := validation.New(validation.Options{SchemaPath: opts.SchemaPath})
	report := v.Validate(m)

	view := metadata.NewView(m)
	id, _ := view.String(metadata.ID)
	tech, _ := view.String(metadata.TechniqueName)

	result := ValidationResult{
		RecordID:           id,
		Technique:          tech,
		Errors:             append([]string{}, report.Errors...),
		Warnings:           append([]string{}, report.Warnings...),
		Info:               append([]string{}, report.Info...),
		FAIRScore:          report.FAIRScore,
		CompletenessScore:  report.CompletenessScore,
		MissingRequired:    report.MissingRequired,
		MissingRecommended: report.MissingRecommended,
		Report:             report,
	}

	if opts.StrictMode {
		for _, key := range report.MissingRequired {
			result.Errors = append(result.Errors, fmt.Sprintf("required field missing: %s", key))
		}
		if report.FAIRScore < opts.MinFAIRScore {
			result.Errors = append(result.Errors,
				fmt.Sprintf("FAIR score %.2f below minimum %.2f", report.FAIRScore, opts.MinFAIRScore))
		}
		if report.CompletenessScore < opts.MinCompletenessScore {
			result.Errors = append(result.Errors,
				fmt.Sprintf("completeness score %.2f below minimum %.2f", report.CompletenessScore, opts.MinCompletenessScore))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateFile reads a YAML or JSON metadata file and validates it.
// format is "yaml", "json" or "auto".
func ValidateFile(path, format string, opts ValidationOptions) (ValidationResult, error) {
	m, err := recordio.ReadMap(path, format)
	if err != nil {
		return ValidationResult{}, err
	}
	return Validate(m, opts), nil
}
