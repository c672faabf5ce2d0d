// Package vocabulary matches free-text experimental descriptions against an
// embedded table of controlled electrochemistry terms.
//
// A Store is built once by the caller and then only read; it is safe for
// concurrent use. Results follow the table's insertion order, not relevance.
package vocabulary

import (
	"slices"
	"strings"
)

// Term is a controlled vocabulary entry.
type Term struct {
	Key        string
	IRI        string
	Label      string
	Definition string
	Synonyms   []string
	Categories []Category
}

// In reports whether the term belongs to c.
func (t Term) In(c Category) bool { return slices.Contains(t.Categories, c) }

// MaxSuggestions caps the length of Suggest results.
const MaxSuggestions = 5

// Store is an indexed, read-only set of terms.
type Store struct {
	terms     []Term
	byKey     map[string]int
	bySynonym map[string]int
}

// NewStore returns a store seeded with the embedded term table.
func NewStore() *Store {
	return NewStoreFrom(embedded)
}

// NewStoreFrom builds a store over terms. The first term wins when two share
// a key or a synonym.
func NewStoreFrom(terms []Term) *Store {
	s := &Store{
		terms:     make([]Term, len(terms)),
		byKey:     make(map[string]int, len(terms)),
		bySynonym: make(map[string]int),
	}
	for i, t := range terms {
		t.Synonyms = slices.Clone(t.Synonyms)
		t.Categories = slices.Clone(t.Categories)
		s.terms[i] = t

		if _, dup := s.byKey[normalize(t.Key)]; !dup {
			s.byKey[normalize(t.Key)] = i
		}
		for _, syn := range t.Synonyms {
			n := normalize(syn)
			if _, dup := s.bySynonym[n]; !dup {
				s.bySynonym[n] = i
			}
		}
	}
	return s
}

// Len returns the number of terms.
func (s *Store) Len() int { return len(s.terms) }

// Terms returns all terms in insertion order.
func (s *Store) Terms() []Term { return slices.Clone(s.terms) }

// normalize lowercases, trims and joins whitespace runs with underscores so
// that "Cyclic  Voltammetry", "cyclic_voltammetry" and " cyclic voltammetry"
// compare equal.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// Match resolves name to a term by key, then synonym, then the fixed
// abbreviation table. First match wins; there is no partial matching.
func (s *Store) Match(name string) (Term, bool) {
	n := normalize(name)
	if n == "" {
		return Term{}, false
	}
	if i, ok := s.byKey[n]; ok {
		return s.terms[i], true
	}
	if i, ok := s.bySynonym[n]; ok {
		return s.terms[i], true
	}
	if key, ok := abbreviations[n]; ok {
		if i, ok := s.byKey[key]; ok {
			return s.terms[i], true
		}
	}
	return Term{}, false
}

// Category returns the terms of c in insertion order. Unknown categories
// yield nil.
func (s *Store) Category(c Category) []Term {
	var out []Term
	for _, t := range s.terms {
		if t.In(c) {
			out = append(out, t)
		}
	}
	return out
}

// Suggest returns up to MaxSuggestions terms whose label, synonyms or
// definition contain text (case-insensitive), checked in that order per term.
// A non-empty category restricts the search. Blank text yields nil.
func (s *Store) Suggest(text string, category Category) []Term {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return nil
	}
	var out []Term
	for _, t := range s.terms {
		if category != "" && !t.In(category) {
			continue
		}
		if mentions(t, q) {
			out = append(out, t)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

func mentions(t Term, q string) bool {
	if strings.Contains(strings.ToLower(t.Label), q) {
		return true
	}
	for _, syn := range t.Synonyms {
		if strings.Contains(strings.ToLower(syn), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(t.Definition), q)
}
