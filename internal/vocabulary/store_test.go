package vocabulary

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

func labels(ts []Term) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Label)
	}
	return out
}

func TestEmbeddedTable_Invariants(t *testing.T) {
	s := NewStore()
	require.Equal(t, 11, s.Len())

	seen := map[string]bool{}
	for _, term := range s.Terms() {
		assert.False(t, seen[term.Label], "duplicate label %s", term.Label)
		seen[term.Label] = true
		assert.True(t, strings.HasPrefix(term.IRI, OntologyIRI+"#electrochemistry_"), term.IRI)
		assert.NotEmpty(t, term.Definition)
		assert.NotEmpty(t, term.Categories)
	}
}

func TestMatch(t *testing.T) {
	s := NewStore()
	tests := []struct {
		in   string
		want string
	}{
		{"cyclic_voltammetry", "CyclicVoltammetry"},
		{"Cyclic Voltammetry", "CyclicVoltammetry"},
		{"  cyclic   voltammetry ", "CyclicVoltammetry"},
		{"CV", "CyclicVoltammetry"},
		{"cv", "CyclicVoltammetry"},
		{"eis", "ElectrochemicalImpedanceSpectroscopy"},
		{"Impedance Spectroscopy", "ElectrochemicalImpedanceSpectroscopy"},
		{"square_wave voltammetry", "SquareWaveVoltammetry"},
		{"Glassy Carbon", "GlassyCarbon"},
		{"vitreous_carbon", "GlassyCarbon"},
		{"Auxiliary Electrode", "CounterElectrode"},
		{"pt", "Platinum"},
		{"KNO3", "PotassiumNitrate"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			term, ok := s.Match(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, term.Label)
		})
	}

	for _, miss := range []string{"", "   ", "carbon", "voltammetry", "Ag/AgCl", "GlassyCarbon"} {
		_, ok := s.Match(miss)
		assert.False(t, ok, "expected no match for %q", miss)
	}
}

func TestSuggest_CarbonInMaterials(t *testing.T) {
	got := NewStore().Suggest("carbon", Materials)

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), MaxSuggestions)
	assert.Contains(t, labels(got), "GlassyCarbon")
	for _, term := range got {
		assert.True(t, term.In(Materials))
	}
}

func TestSuggest_InsertionOrder(t *testing.T) {
	s := NewStore()
	assert.Equal(t,
		[]string{"WorkingElectrode", "ReferenceElectrode", "CounterElectrode", "Platinum"},
		labels(s.Suggest("Electrode", "")))
	assert.Equal(t,
		[]string{"CyclicVoltammetry", "DifferentialPulseVoltammetry", "SquareWaveVoltammetry"},
		labels(s.Suggest("voltammetry", Techniques)))
}

func TestSuggest_Limits(t *testing.T) {
	s := NewStore()
	assert.Len(t, s.Suggest("a", ""), MaxSuggestions)
	assert.Nil(t, s.Suggest("  ", ""))
	assert.Empty(t, s.Suggest("carbon", "polymers"))
	assert.Empty(t, s.Suggest("platinum", Electrolytes))
}

func TestCategory(t *testing.T) {
	s := NewStore()
	assert.Equal(t, []string{"WorkingElectrode", "ReferenceElectrode", "CounterElectrode"}, labels(s.Category(Electrodes)))
	assert.Equal(t, []string{"PotassiumNitrate"}, labels(s.Category(Electrolytes)))
	assert.Len(t, s.Category(Techniques), 5)
	assert.Nil(t, s.Category("unknown"))
}

func TestNewStoreFrom_FirstWins(t *testing.T) {
	s := NewStoreFrom([]Term{
		{Key: "a", Label: "First", Synonyms: []string{"x"}},
		{Key: "a", Label: "Second", Synonyms: []string{"X"}},
	})
	term, ok := s.Match("A")
	require.True(t, ok)
	assert.Equal(t, "First", term.Label)
	term, ok = s.Match("x")
	require.True(t, ok)
	assert.Equal(t, "First", term.Label)
}

func TestStore_ConcurrentReads(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = s.Match("CV")
				_ = s.Suggest("carbon", Materials)
			}
		}()
	}
	wg.Wait()
}

func sampleRecord() *metadata.Record {
	return &metadata.Record{
		ID:        "rec-1",
		Technique: metadata.Technique{Name: "CV", Parameters: map[string]any{"scan_rate": 0.1}},
		ExperimentalSetup: metadata.Setup{
			WorkingElectrode:   "Glassy Carbon",
			ReferenceElectrode: "Ag/AgCl",
			CounterElectrode:   "auxiliary",
			Electrolyte:        "KNO3",
		},
	}
}

func TestEnrich_PopulatesSectionWithoutMutatingInput(t *testing.T) {
	s := NewStore()
	in := sampleRecord()
	before, err := metadata.Serialize(in)
	require.NoError(t, err)

	out := s.Enrich(in)

	after, err := metadata.Serialize(in)
	require.NoError(t, err)
	assert.Equal(t, before, after, "input record was mutated")
	assert.Nil(t, in.Enrichment)

	require.NotNil(t, out.Enrichment)
	e := out.Enrichment
	assert.Equal(t, OntologyIRI, e.Ontology)

	assert.Equal(t, metadata.TermRef{
		InputValue: "CV",
		Label:      "CyclicVoltammetry",
		IRI:        iriPrefix + "25aae0e9_a17c_4eb6_ac69_dd4264fad3d5",
		Match:      metadata.MatchExact,
	}, e.Mapping["technique"])
	assert.Equal(t, "GlassyCarbon", e.Mapping["working_electrode"].Label)
	assert.Equal(t, metadata.MatchExact, e.Mapping["working_electrode"].Match)
	assert.Equal(t, "CounterElectrode", e.Mapping["counter_electrode"].Label)
	assert.Equal(t, metadata.MatchSuggested, e.Mapping["counter_electrode"].Match)
	assert.Equal(t, "PotassiumNitrate", e.Mapping["electrolyte"].Label)
	assert.NotContains(t, e.Mapping, "reference_electrode")

	var usedFor []string
	for _, u := range e.TermsUsed {
		usedFor = append(usedFor, u.UsedFor)
	}
	assert.Equal(t, []string{"technique", "working_electrode", "electrolyte"}, usedFor)

	out.Technique.Parameters["scan_rate"] = 5.0
	assert.Equal(t, 0.1, in.Technique.Parameters["scan_rate"])
}

func TestEnrich_NoMatches(t *testing.T) {
	out := NewStore().Enrich(&metadata.Record{Technique: metadata.Technique{Name: "LSV"}})
	require.NotNil(t, out.Enrichment)
	assert.Nil(t, out.Enrichment.Mapping)
	assert.Nil(t, out.Enrichment.TermsUsed)
	assert.Nil(t, NewStore().Enrich(nil))
}

func TestEnrich_RoundTripsThroughYAML(t *testing.T) {
	out := NewStore().Enrich(sampleRecord())
	text, err := metadata.Serialize(out)
	require.NoError(t, err)
	back, err := metadata.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, out, back)
}

func TestCheckTerms(t *testing.T) {
	s := NewStore()

	rep := s.CheckTerms(sampleRecord())
	assert.Equal(t, []string{"Technique 'CV' matches EMMO term: CyclicVoltammetry"}, rep.Valid)
	assert.Equal(t, []string{"EMMO term available for counter_electrode: CounterElectrode"}, rep.Suggestions)
	assert.Empty(t, rep.Warnings)

	rep = s.CheckTerms(&metadata.Record{Technique: metadata.Technique{Name: "voltammetry"}})
	assert.Empty(t, rep.Valid)
	assert.Equal(t, []string{"Consider using EMMO-compliant term for 'voltammetry': CyclicVoltammetry"}, rep.Suggestions)

	rep = s.CheckTerms(&metadata.Record{Technique: metadata.Technique{Name: "LSV"}})
	assert.Equal(t, []string{noMatchesWarning}, rep.Warnings)
}

func TestEnrich_SetupExactMatchCountsAsTermUse(t *testing.T) {
	out := NewStore().Enrich(&metadata.Record{
		Technique:         metadata.Technique{Name: "LSV"},
		ExperimentalSetup: metadata.Setup{WorkingElectrode: "Glassy Carbon", CounterElectrode: "auxiliary"},
	})
	require.NotNil(t, out.Enrichment)
	require.Len(t, out.Enrichment.TermsUsed, 1)
	assert.Equal(t, "working_electrode", out.Enrichment.TermsUsed[0].UsedFor)
	assert.Equal(t, "GlassyCarbon", out.Enrichment.TermsUsed[0].Label)
	assert.Equal(t, metadata.MatchSuggested, out.Enrichment.Mapping["counter_electrode"].Match)
}
