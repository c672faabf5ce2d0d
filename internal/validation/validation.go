// Package validation checks metadata records against a schema and a set of
// quality heuristics and scores them.
//
// Each pass accepts the bare mapping form of a record and returns its own
// partial Report; Validate concatenates them in the order schema, FAIR,
// completeness, technique. Passes are pure and safe for concurrent use.
package validation

import (
	"fmt"
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Options configures a Validator.
type Options struct {
	// SchemaPath is an optional JSON or YAML schema file. When empty or
	// unusable the embedded minimal schema is used.
	SchemaPath string
}

// Validator holds the schema used by the structural pass.
type Validator struct {
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
	// fallback is recorded as an info line on every report when the
	// configured schema could not be used.
	fallback string
}

var defaultValidator = New(Options{})

// New builds a Validator. It never fails: a schema that cannot be read or
// resolved is replaced by the embedded one and noted in every report.
func New(opts Options) *Validator {
	v := &Validator{}
	if opts.SchemaPath != "" {
		s, err := LoadSchema(opts.SchemaPath)
		var resolved *jsonschema.Resolved
		if err == nil {
			resolved, err = s.Resolve(nil)
		}
		if err == nil {
			v.schema, v.resolved = s, resolved
			logf("", "using schema %s", opts.SchemaPath)
			return v
		}
		logf("", "schema %s unavailable, falling back to embedded schema: %v", opts.SchemaPath, err)
		v.fallback = fmt.Sprintf("Schema %s unavailable; validated against the embedded minimal schema", filepath.Base(opts.SchemaPath))
	}

	v.schema = minimalSchema()
	resolved, err := v.schema.Resolve(nil)
	if err != nil {
		logf("", "embedded schema did not resolve: %v", err)
	}
	v.resolved = resolved
	return v
}

// UsingFallback reports whether a configured schema was replaced by the
// embedded one.
func (v *Validator) UsingFallback() bool { return v.fallback != "" }

// Schema runs the structural pass with the embedded schema.
func Schema(m map[string]any) Report { return defaultValidator.Schema(m) }

// Schema checks presence and type of the fields the schema requires. Missing
// or mistyped fields are errors; anything else is left to the other passes.
func (v *Validator) Schema(m map[string]any) Report {
	var r Report
	if v.fallback != "" {
		r.Info = append(r.Info, v.fallback)
	}

	var errs []string
	checkShape(v.schema, m, "", &errs)
	if len(errs) == 0 && v.resolved != nil {
		inst, err := jsonInstance(m)
		if err == nil {
			err = v.resolved.Validate(inst)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("schema validation error: %v", err))
		}
	}

	if len(errs) > 0 {
		r.Errors = append(r.Errors, errs...)
		return r
	}
	r.Info = append(r.Info, "Metadata structure is valid according to schema")
	return r
}

// Validate runs every pass with the embedded schema.
func Validate(m map[string]any) Report { return defaultValidator.Validate(m) }

// Validate runs the schema, FAIR, completeness and technique passes over m
// and concatenates their output in that order.
func (v *Validator) Validate(m map[string]any) Report {
	var r Report
	r.merge(v.Schema(m))
	r.merge(FAIR(m))
	r.merge(Completeness(m))
	r.merge(Technique(m))

	id, _ := metadata.NewView(m).String(metadata.ID)
	logf(id, "validated: %d errors, %d warnings, fair=%.2f completeness=%.2f",
		len(r.Errors), len(r.Warnings), r.FAIRScore, r.CompletenessScore)
	return r
}

// ValidateRecord validates the mapping form of rec.
func (v *Validator) ValidateRecord(rec *metadata.Record) (Report, error) {
	if rec == nil {
		return v.Validate(nil), nil
	}
	m, err := rec.Map()
	if err != nil {
		return Report{}, fmt.Errorf("mapping record: %w", err)
	}
	return v.Validate(m), nil
}
