package validation

import (
	"bytes"
	"fmt"
	"math"

	"go.yaml.in/yaml/v3"

	"github.com/Haghighatbin/echem-fairifier/internal/columns"
	"github.com/Haghighatbin/echem-fairifier/internal/idformat"
	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

type auditReport struct {
	RecordID           string               `yaml:"record_id,omitempty"`
	Technique          string               `yaml:"technique,omitempty"`
	Valid              bool                 `yaml:"valid"`
	FAIRScore          float64              `yaml:"fair_score"`
	CompletenessScore  float64              `yaml:"completeness_score"`
	Errors             []string             `yaml:"errors"`
	Warnings           []string             `yaml:"warnings"`
	Info               []string             `yaml:"info"`
	MissingRequired    []metadata.Key       `yaml:"missing_required,omitempty"`
	MissingRecommended []metadata.Key       `yaml:"missing_recommended,omitempty"`
	Suggestions        []string             `yaml:"suggestions,omitempty"`
	DataFile           *columns.Diagnostics `yaml:"data_file,omitempty"`
}

// GenerateReport validates m with the embedded schema and renders the result.
func GenerateReport(m map[string]any) (string, error) {
	return defaultValidator.GenerateReport(m)
}

// GenerateReport validates m and renders the report, both scores and the
// improvement suggestions as YAML. The output depends only on m.
func (v *Validator) GenerateReport(m map[string]any) (string, error) {
	return v.render(m, nil)
}

// GenerateReportWithData is GenerateReport with a data_file section holding
// the structural diagnostics of the measurement file.
func (v *Validator) GenerateReportWithData(m map[string]any, data columns.Diagnostics) (string, error) {
	return v.render(m, &data)
}

func (v *Validator) render(m map[string]any, data *columns.Diagnostics) (string, error) {
	r := v.Validate(m)
	view := metadata.NewView(m)
	id, _ := view.String(metadata.ID)
	tech, _ := view.String(metadata.TechniqueName)

	out := auditReport{
		RecordID:           id,
		Technique:          tech,
		Valid:              r.Valid(),
		FAIRScore:          round4(r.FAIRScore),
		CompletenessScore:  round4(r.CompletenessScore),
		Errors:             nonNil(r.Errors),
		Warnings:           nonNil(r.Warnings),
		Info:               nonNil(r.Info),
		MissingRequired:    r.MissingRequired,
		MissingRecommended: r.MissingRecommended,
		Suggestions:        SuggestImprovements(m),
		DataFile:           data,
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return "", fmt.Errorf("encoding validation report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding validation report: %w", err)
	}
	return buf.String(), nil
}

func round4(f float64) float64 { return math.Round(f*1e4) / 1e4 }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// MaxSuggestions caps SuggestImprovements.
const MaxSuggestions = 5

// SuggestImprovements lists concrete next steps that would raise the FAIR
// score of m, most valuable first.
func SuggestImprovements(m map[string]any) []string {
	v := metadata.NewView(m)
	var out []string

	if rid, ok := v.String(metadata.ResearcherID); !ok {
		out = append(out, "Add ORCID ID for better researcher identification")
	} else if !idformat.IsValidResearcherID(rid) {
		out = append(out, fmt.Sprintf("Researcher ID '%s' is not a valid ORCID (0000-0000-0000-000X)", rid))
	}
	if !v.Present(metadata.ContactEmail) {
		out = append(out, "Add contact email for data inquiries")
	}
	if !v.Present(metadata.License) {
		out = append(out, "Specify a data license (e.g., CC-BY-4.0) to clarify usage terms")
	}
	if !v.Present(metadata.TermsUsed) {
		out = append(out, "Use EMMO vocabulary terms for better interoperability")
	}
	if doc, ok := v.String(metadata.DocumentID); !ok {
		out = append(out, "Link to related publications via DOI if available")
	} else if !idformat.IsValidDocumentID(idformat.NormalizeDocumentID(doc)) {
		out = append(out, fmt.Sprintf("Document ID '%s' is not a valid DOI (10.xxxx/suffix)", doc))
	}
	if !v.Present(metadata.DatasetDescription) {
		out = append(out, "Add detailed dataset description")
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
