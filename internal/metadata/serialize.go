package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Serialize renders r as YAML with two-space indentation. Sections follow
// the struct field order and mapping keys are sorted, so the output is
// stable for a given record.
func Serialize(r *Record) (string, error) {
	if r == nil {
		return "", errors.New("serializing metadata: record is nil")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("serializing metadata %s: %w", r.ID, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("serializing metadata %s: %w", r.ID, err)
	}
	return buf.String(), nil
}

// Parse decodes a record produced by Serialize. Technique parameters are
// normalized the same way the generator normalizes them, so
// Parse(Serialize(r)) is field-wise equal to r.
func Parse(text string) (*Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("parsing metadata: document is empty")
	}
	var r Record
	if err := yaml.Unmarshal([]byte(text), &r); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	r.Technique.Parameters = NormalizeParameters(r.Technique.Parameters)
	if r.Enrichment != nil {
		if len(r.Enrichment.Mapping) == 0 {
			r.Enrichment.Mapping = nil
		}
		if len(r.Enrichment.TermsUsed) == 0 {
			r.Enrichment.TermsUsed = nil
		}
	}
	logf(r.ID, "parsed record (technique=%s)", displayName(r.Technique.Name))
	return &r, nil
}

// NormalizeParameters returns a copy of params with scalar numbers as float64
// and all-numeric lists as []float64. Text stays text. An empty map becomes nil.
func NormalizeParameters(params map[string]any) map[string]any {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil, bool:
		return v
	case string:
		return t
	case []string:
		return append([]string(nil), t...)
	case []any:
		if fs, ok := numericList(t); ok {
			return fs
		}
		if ss, ok := allStrings(t); ok {
			return ss
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	}
	if f, ok := Number(v); ok {
		return f
	}
	if fs, ok := Numbers(v); ok {
		return fs
	}
	logf("", "keeping parameter value of type %s as is", summarizeValue(v))
	return v
}

// numericList accepts only non-text numbers so that quoted numeric strings
// keep their type across a YAML round trip.
func numericList(vs []any) ([]float64, bool) {
	for _, v := range vs {
		if _, isText := v.(string); isText {
			return nil, false
		}
	}
	return Numbers(vs)
}

func allStrings(vs []any) ([]string, bool) {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
