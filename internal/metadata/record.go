package metadata

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Record is a FAIR metadata record for one electrochemical data file.
//
// A Record is built by a Generator, optionally enriched with vocabulary terms,
// and then only read. Enrichment returns a new Record instead of editing one.
type Record struct {
	ID                string      `yaml:"id" json:"id,omitempty"`
	CreatedAt         string      `yaml:"created_at" json:"created_at,omitempty"`
	SchemaVersion     string      `yaml:"schema_version,omitempty" json:"schema_version,omitempty"`
	Technique         Technique   `yaml:"technique" json:"technique"`
	ExperimentalSetup Setup       `yaml:"experimental_setup" json:"experimental_setup"`
	Dataset           Dataset     `yaml:"dataset" json:"dataset"`
	Attribution       Attribution `yaml:"attribution,omitempty" json:"attribution,omitzero"`
	Compliance        Compliance  `yaml:"compliance" json:"compliance"`

	Enrichment *VocabularyEnrichment `yaml:"vocabulary_enrichment,omitempty" json:"vocabulary_enrichment,omitempty"`
}

type Technique struct {
	Name        string         `yaml:"name" json:"name,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

type Setup struct {
	WorkingElectrode   string `yaml:"working_electrode,omitempty" json:"working_electrode,omitempty"`
	ReferenceElectrode string `yaml:"reference_electrode,omitempty" json:"reference_electrode,omitempty"`
	CounterElectrode   string `yaml:"counter_electrode,omitempty" json:"counter_electrode,omitempty"`
	Electrolyte        string `yaml:"electrolyte,omitempty" json:"electrolyte,omitempty"`
	Temperature        string `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	Atmosphere         string `yaml:"atmosphere,omitempty" json:"atmosphere,omitempty"`
}

// SetupField is one named experimental-setup value.
type SetupField struct {
	Name  string
	Value string
}

// Fields returns the setup values in record order, including empty ones.
func (s Setup) Fields() []SetupField {
	return []SetupField{
		{"working_electrode", s.WorkingElectrode},
		{"reference_electrode", s.ReferenceElectrode},
		{"counter_electrode", s.CounterElectrode},
		{"electrolyte", s.Electrolyte},
		{"temperature", s.Temperature},
		{"atmosphere", s.Atmosphere},
	}
}

type Dataset struct {
	Filename    string `yaml:"filename" json:"filename,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	SizeBytes   int64  `yaml:"size_bytes,omitempty" json:"size_bytes,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Encoding    string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Checksum    string `yaml:"checksum,omitempty" json:"checksum,omitempty"`
}

type Attribution struct {
	Creator       string `yaml:"creator,omitempty" json:"creator,omitempty"`
	Institution   string `yaml:"institution,omitempty" json:"institution,omitempty"`
	ContactEmail  string `yaml:"contact_email,omitempty" json:"contact_email,omitempty"`
	ResearcherID  string `yaml:"researcher_id,omitempty" json:"researcher_id,omitempty"`
	DocumentID    string `yaml:"document_id,omitempty" json:"document_id,omitempty"`
	FundingSource string `yaml:"funding_source,omitempty" json:"funding_source,omitempty"`
}

// Compliance holds declared and generator-defaulted FAIR facts.
type Compliance struct {
	Findable      Findable      `yaml:"findable" json:"findable"`
	Accessible    Accessible    `yaml:"accessible" json:"accessible"`
	Interoperable Interoperable `yaml:"interoperable" json:"interoperable"`
	Reusable      Reusable      `yaml:"reusable" json:"reusable"`
}

type Findable struct {
	UniqueIdentifier string `yaml:"unique_identifier,omitempty" json:"unique_identifier,omitempty"`
	MetadataStandard string `yaml:"metadata_standard,omitempty" json:"metadata_standard,omitempty"`
}

type Accessible struct {
	AccessProtocol string `yaml:"access_protocol,omitempty" json:"access_protocol,omitempty"`
	Format         string `yaml:"format,omitempty" json:"format,omitempty"`
}

type Interoperable struct {
	MetadataVocabulary string `yaml:"metadata_vocabulary,omitempty" json:"metadata_vocabulary,omitempty"`
	DataFormatStandard string `yaml:"data_format_standard,omitempty" json:"data_format_standard,omitempty"`
}

type Reusable struct {
	License           string `yaml:"license,omitempty" json:"license,omitempty"`
	Provenance        string `yaml:"provenance,omitempty" json:"provenance,omitempty"`
	QualityAssessment string `yaml:"quality_assessment,omitempty" json:"quality_assessment,omitempty"`
}

// VocabularyEnrichment records controlled-vocabulary terms matched against
// the record's free-text fields.
type VocabularyEnrichment struct {
	Ontology  string             `yaml:"ontology" json:"ontology"`
	Mapping   map[string]TermRef `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	TermsUsed []TermUse          `yaml:"terms_used,omitempty" json:"terms_used,omitempty"`
}

// Match kinds recorded in TermRef.Match.
const (
	MatchExact     = "exact"
	MatchSuggested = "suggested"
)

type TermRef struct {
	InputValue string `yaml:"input_value" json:"input_value"`
	Label      string `yaml:"label" json:"label"`
	IRI        string `yaml:"iri" json:"iri"`
	Match      string `yaml:"match" json:"match"`
}

type TermUse struct {
	IRI     string `yaml:"iri" json:"iri"`
	Label   string `yaml:"label" json:"label"`
	UsedFor string `yaml:"used_for" json:"used_for"`
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.Technique.Parameters = cloneParameters(r.Technique.Parameters)
	if r.Enrichment != nil {
		e := *r.Enrichment
		if r.Enrichment.Mapping != nil {
			e.Mapping = maps.Clone(r.Enrichment.Mapping)
		}
		if r.Enrichment.TermsUsed != nil {
			e.TermsUsed = append([]TermUse(nil), r.Enrichment.TermsUsed...)
		}
		out.Enrichment = &e
	}
	return &out
}

func cloneParameters(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case []float64:
			out[k] = append([]float64(nil), t...)
		case []string:
			out[k] = append([]string(nil), t...)
		case []any:
			out[k] = append([]any(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}

// Map returns the bare mapping form of r, the same shape a JSON or YAML
// document of the record decodes to. Empty optional fields are absent.
func (r *Record) Map() (map[string]any, error) {
	if r == nil {
		return map[string]any{}, nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding record %s: %w", r.ID, err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", r.ID, err)
	}
	return m, nil
}

// View returns a View over the mapping form of r.
func (r *Record) View() (View, error) {
	m, err := r.Map()
	if err != nil {
		return View{}, err
	}
	return NewView(m), nil
}
