// Package idformat checks the textual shape of researcher and document
// identifiers. No lookups or checksum arithmetic are performed.
package idformat

import (
	"regexp"
	"strings"
)

var (
	researcherIDPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)
	documentIDPattern   = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
)

// IsValidResearcherID reports whether s looks like an ORCID iD:
// four hyphen-separated groups of four digits, the final character being a
// digit or the check letter X.
func IsValidResearcherID(s string) bool {
	return researcherIDPattern.MatchString(s)
}

// IsValidDocumentID reports whether s looks like a DOI: "10.", 4 to 9 digits,
// a slash and a non-empty suffix without whitespace.
func IsValidDocumentID(s string) bool {
	return documentIDPattern.MatchString(s)
}

// NormalizeDocumentID strips the common resolver prefixes from a DOI.
func NormalizeDocumentID(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "doi:"} {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return s[len(p):]
		}
	}
	return s
}
