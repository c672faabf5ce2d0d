package idformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidResearcherID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0000-0002-1825-0097", true},
		{"0000-0001-5109-372X", true},
		{"0000-0001-5109-372x", false},
		{"0000-0001-5109-37X2", false},
		{"0000-0002-1825-009", false},
		{"0000 0002 1825 0097", false},
		{" 0000-0002-1825-0097", false},
		{"https://orcid.org/0000-0002-1825-0097", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidResearcherID(tt.in))
		})
	}
}

func TestIsValidDocumentID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"10.1000/xyz123", true},
		{"10.1021/acs.analchem.9b01234", true},
		{"10.123456789/a", true},
		{"10.123/abc", false},
		{"10.1234567890/abc", false},
		{"10.1000/", false},
		{"10.1000/has space", false},
		{"11.1000/xyz", false},
		{"doi:10.1000/xyz", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDocumentID(tt.in))
		})
	}
}

func TestNormalizeDocumentID(t *testing.T) {
	assert.Equal(t, "10.1000/xyz", NormalizeDocumentID("https://doi.org/10.1000/xyz"))
	assert.Equal(t, "10.1000/xyz", NormalizeDocumentID("DOI:10.1000/xyz"))
	assert.Equal(t, "10.1000/xyz", NormalizeDocumentID("  10.1000/xyz "))
	assert.True(t, IsValidDocumentID(NormalizeDocumentID("https://dx.doi.org/10.1000/xyz")))
}
