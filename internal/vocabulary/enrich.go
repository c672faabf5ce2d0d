package vocabulary

import (
	"fmt"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Enrich returns a copy of r carrying a vocabulary_enrichment section. The
// technique name is resolved with Match. Each non-empty setup field is
// resolved with Match, falling back to the first Suggest hit. Only exact
// matches are listed in terms_used. r itself is never modified.
//
// Setup fields that match exactly count as controlled vocabulary use, so
// terms_used is not limited to the technique and a record can satisfy the
// vocabulary FAIR check through its setup alone.
func (s *Store) Enrich(r *metadata.Record) *metadata.Record {
	out := r.Clone()
	if out == nil {
		return nil
	}

	e := &metadata.VocabularyEnrichment{Ontology: OntologyIRI}
	mapping := map[string]metadata.TermRef{}

	if t, ok := s.Match(out.Technique.Name); ok {
		mapping["technique"] = ref(out.Technique.Name, t, metadata.MatchExact)
		e.TermsUsed = append(e.TermsUsed, metadata.TermUse{IRI: t.IRI, Label: t.Label, UsedFor: "technique"})
	}

	for _, f := range out.ExperimentalSetup.Fields() {
		if f.Value == "" {
			continue
		}
		if t, ok := s.Match(f.Value); ok {
			mapping[f.Name] = ref(f.Value, t, metadata.MatchExact)
			e.TermsUsed = append(e.TermsUsed, metadata.TermUse{IRI: t.IRI, Label: t.Label, UsedFor: f.Name})
			continue
		}
		if sug := s.Suggest(f.Value, ""); len(sug) > 0 {
			mapping[f.Name] = ref(f.Value, sug[0], metadata.MatchSuggested)
		}
	}

	if len(mapping) > 0 {
		e.Mapping = mapping
	}
	out.Enrichment = e
	logf(out.ID, "enriched with %d mapped fields, %d terms used", len(mapping), len(e.TermsUsed))
	return out
}

func ref(input string, t Term, kind string) metadata.TermRef {
	return metadata.TermRef{InputValue: input, Label: t.Label, IRI: t.IRI, Match: kind}
}

// TermReport summarises how well a record uses the controlled vocabulary.
type TermReport struct {
	Valid       []string
	Suggestions []string
	Warnings    []string
}

// CheckTerms reports vocabulary compliance for the technique name and the
// three electrode fields of r.
func (s *Store) CheckTerms(r *metadata.Record) TermReport {
	var rep TermReport
	if r == nil {
		rep.Warnings = append(rep.Warnings, noMatchesWarning)
		return rep
	}

	if name := r.Technique.Name; name != "" {
		if t, ok := s.Match(name); ok {
			rep.Valid = append(rep.Valid, fmt.Sprintf("Technique '%s' matches EMMO term: %s", name, t.Label))
		} else if sug := s.Suggest(name, Techniques); len(sug) > 0 {
			rep.Suggestions = append(rep.Suggestions, fmt.Sprintf("Consider using EMMO-compliant term for '%s': %s", name, sug[0].Label))
		}
	}

	setup := r.ExperimentalSetup
	electrodes := []metadata.SetupField{
		{Name: "working_electrode", Value: setup.WorkingElectrode},
		{Name: "reference_electrode", Value: setup.ReferenceElectrode},
		{Name: "counter_electrode", Value: setup.CounterElectrode},
	}
	for _, f := range electrodes {
		if f.Value == "" {
			continue
		}
		if sug := s.Suggest(f.Value, Electrodes); len(sug) > 0 {
			rep.Suggestions = append(rep.Suggestions, fmt.Sprintf("EMMO term available for %s: %s", f.Name, sug[0].Label))
		}
	}

	if len(rep.Valid) == 0 && len(rep.Suggestions) == 0 {
		rep.Warnings = append(rep.Warnings, noMatchesWarning)
	}
	return rep
}

const noMatchesWarning = "No EMMO vocabulary matches found. Consider using controlled terms for better interoperability."
