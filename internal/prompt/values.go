// Package prompt collects experimental details and technique parameters from
// the user, interactively or from flag values.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/Haghighatbin/echem-fairifier/internal/idformat"
	"github.com/Haghighatbin/echem-fairifier/internal/technique"
)

// ParseValue converts user text into a parameter value: a float64 for
// numbers, a []float64 for comma separated numbers, otherwise the trimmed
// text. For registry parameters the declared kind decides.
func ParseValue(p technique.Parameter, s string) (any, error) {
	s = strings.TrimSpace(s)
	switch p.Kind {
	case technique.KindNumber:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", p.Name, s)
		}
		return f, nil
	case technique.KindList:
		fs, err := parseList(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		return fs, nil
	case technique.KindText:
		return s, nil
	}

	if f, err := cast.ToFloat64E(s); err == nil {
		return f, nil
	}
	if strings.Contains(s, ",") {
		if fs, err := parseList(s); err == nil {
			return fs, nil
		}
	}
	return s, nil
}

func parseList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := cast.ToFloat64E(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

// ParseParameters converts name→text pairs into technique parameters for
// techniqueID. Names outside the registry are accepted and parsed loosely.
// Blank values are dropped.
func ParseParameters(techniqueID string, raw map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	var errs []error
	for name, text := range raw {
		name = strings.TrimSpace(name)
		if name == "" || strings.TrimSpace(text) == "" {
			continue
		}
		p, ok := technique.ParameterOf(techniqueID, name)
		if !ok {
			p = technique.Parameter{Name: name}
		}
		v, err := ParseValue(p, text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[name] = v
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// ValidateParameter returns a form validator for p: the text must parse and
// numbers must lie within the registry bounds. Blank input is allowed.
func ValidateParameter(p technique.Parameter) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := ParseValue(p, s)
		if err != nil {
			return err
		}
		if f, ok := v.(float64); ok && !p.Contains(f) {
			return fmt.Errorf("must be within %s %s", p.RangeString(), p.Unit)
		}
		return nil
	}
}

// ValidateResearcherID accepts blank input or an ORCID iD.
func ValidateResearcherID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || idformat.IsValidResearcherID(s) {
		return nil
	}
	return errors.New("expected an ORCID iD like 0000-0002-1825-0097")
}

// ValidateDocumentID accepts blank input or a DOI, with or without a
// resolver prefix.
func ValidateDocumentID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || idformat.IsValidDocumentID(idformat.NormalizeDocumentID(s)) {
		return nil
	}
	return errors.New("expected a DOI like 10.1000/xyz123")
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("this field is required")
	}
	return nil
}
