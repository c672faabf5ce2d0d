package validation

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Haghighatbin/echem-fairifier/internal/columns"
	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
	"github.com/Haghighatbin/echem-fairifier/internal/vocabulary"
)

func testGenerator() *metadata.Generator {
	opts := metadata.DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	opts.NewID = func() string { return "rec-1" }
	return metadata.NewGenerator(opts)
}

func fullDetails() map[string]string {
	return map[string]string{
		"working_electrode":   "Glassy carbon, 3 mm",
		"reference_electrode": "Ag/AgCl",
		"counter_electrode":   "Platinum wire",
		"electrolyte":         "0.1 M KNO3",
		"temperature":         "Room temperature (20±2°C)",
		"atmosphere":          "Nitrogen",
		"creator":             "A. Researcher",
		"institution":         "Example University",
		"contact_email":       "a@example.org",
		"researcher_id":       "0000-0002-1825-0097",
		"document_id":         "10.1000/xyz123",
		"license":             "CC-BY-4.0",
	}
}

func recordMap(t *testing.T, params map[string]any, details map[string]string) map[string]any {
	t.Helper()
	rec := testGenerator().Generate("CV", params, details, metadata.DatasetInfo{
		Filename:    "cv_run1.csv",
		Description: "Ferricyanide redox couple at 100 mV/s",
	})
	rec = vocabulary.NewStore().Enrich(rec)
	m, err := rec.Map()
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	return m
}

func cvParams() map[string]any {
	return map[string]any{"scan_rate": 0.1, "start_potential": -0.2, "end_potential": 0.6}
}

func TestValidate_FullRecord(t *testing.T) {
	r := Validate(recordMap(t, cvParams(), fullDetails()))

	if !r.Valid() {
		t.Fatalf("expected no errors, got %v", r.Errors)
	}
	if r.FAIRScore != 1 {
		t.Errorf("FAIRScore = %v, want 1 (warnings: %v)", r.FAIRScore, r.Warnings)
	}
	if r.CompletenessScore != 1 {
		t.Errorf("CompletenessScore = %v, want 1", r.CompletenessScore)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
	if r.Info[0] != "Metadata structure is valid according to schema" {
		t.Errorf("first info line = %q", r.Info[0])
	}
	if !slices.Contains(r.Info, "R1: License specified (CC-BY-4.0)") {
		t.Errorf("missing license confirmation in %v", r.Info)
	}
	if !slices.Contains(r.Info, "High completeness score: 100.0%") {
		t.Errorf("missing completeness summary in %v", r.Info)
	}
}

func TestValidate_NegativeScanRate(t *testing.T) {
	params := cvParams()
	params["scan_rate"] = -0.1
	r := Validate(recordMap(t, params, fullDetails()))

	found := false
	for _, e := range r.Errors {
		if strings.Contains(e, "scan rate") && strings.Contains(e, "positive") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a scan rate error, got %v", r.Errors)
	}
}

func TestValidate_MissingElectrolyte(t *testing.T) {
	details := fullDetails()
	delete(details, "electrolyte")
	r := Validate(recordMap(t, cvParams(), details))

	want := "missing required field: experimental_setup.electrolyte"
	if !slices.Contains(r.Errors, want) {
		t.Fatalf("expected %q in %v", want, r.Errors)
	}
	if r.FAIRScore < 0 || r.FAIRScore > 1 {
		t.Errorf("FAIRScore out of range: %v", r.FAIRScore)
	}
	if !slices.Contains(r.MissingRequired, metadata.Electrolyte) {
		t.Errorf("MissingRequired = %v", r.MissingRequired)
	}
}

func TestValidateRecord_GeneratedWithoutDetails(t *testing.T) {
	rec := testGenerator().Generate("CV", map[string]any{"scan_rate": 0.1}, map[string]string{},
		metadata.DatasetInfo{Filename: "cv.csv"})
	r, err := New(Options{}).ValidateRecord(rec)
	if err != nil {
		t.Fatalf("ValidateRecord() error: %v", err)
	}

	for _, field := range []string{"working_electrode", "reference_electrode", "electrolyte"} {
		want := "missing required field: experimental_setup." + field
		if !slices.Contains(r.Errors, want) {
			t.Errorf("expected %q in %v", want, r.Errors)
		}
	}
	if slices.Contains(r.Errors, "missing required field: experimental_setup") {
		t.Errorf("section reported instead of its fields: %v", r.Errors)
	}
	if r.FAIRScore < 0 || r.FAIRScore > 1 {
		t.Errorf("FAIRScore out of range: %v", r.FAIRScore)
	}
}

func TestSchema_EmptyTechniqueSection(t *testing.T) {
	r := Schema(map[string]any{
		"id":        "x",
		"technique": map[string]any{},
		"experimental_setup": map[string]any{
			"working_electrode":   "GC",
			"reference_electrode": "Ag/AgCl",
			"electrolyte":         "KCl",
		},
	})
	if !slices.Equal(r.Errors, []string{"missing required field: technique.name"}) {
		t.Errorf("Errors = %v", r.Errors)
	}
}

func TestValidate_EmptyMapping(t *testing.T) {
	for _, m := range []map[string]any{nil, {}} {
		r := Validate(m)
		if r.FAIRScore != 0 || r.CompletenessScore != 0 {
			t.Errorf("scores = %v/%v, want 0/0", r.FAIRScore, r.CompletenessScore)
		}
		want := []string{
			"missing required field: id",
			"missing required field: technique.name",
			"missing required field: experimental_setup.working_electrode",
			"missing required field: experimental_setup.reference_electrode",
			"missing required field: experimental_setup.electrolyte",
		}
		if !slices.Equal(r.Errors, want) {
			t.Errorf("Errors = %v, want %v", r.Errors, want)
		}
		if len(r.Warnings) != 12 {
			t.Errorf("expected 11 FAIR warnings and 1 completeness warning, got %d", len(r.Warnings))
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	m := recordMap(t, map[string]any{"scan_rate": 20.0}, map[string]string{"working_electrode": "GC"})
	a, err := GenerateReport(m)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	b, err := GenerateReport(m)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if a != b {
		t.Fatalf("reports differ:\n%s\n---\n%s", a, b)
	}
}

func TestSchema_TypeMismatch(t *testing.T) {
	m := map[string]any{
		"id":        42,
		"technique": map[string]any{"name": "CV"},
		"experimental_setup": map[string]any{
			"working_electrode":   "GC",
			"reference_electrode": []any{"Ag", "AgCl"},
			"electrolyte":         "KCl",
		},
	}
	r := Schema(m)
	want := []string{
		"field experimental_setup.reference_electrode must be of type string",
		"field id must be of type string",
	}
	if !slices.Equal(r.Errors, want) {
		t.Fatalf("Errors = %v, want %v", r.Errors, want)
	}

	m["technique"] = "CV"
	r = Schema(m)
	if !slices.Contains(r.Errors, "field technique must be of type object") {
		t.Fatalf("Errors = %v", r.Errors)
	}
}

func TestNew_FallsBackToEmbeddedSchema(t *testing.T) {
	v := New(Options{SchemaPath: filepath.Join(t.TempDir(), "missing.json")})
	if !v.UsingFallback() {
		t.Fatal("expected fallback")
	}
	r := v.Validate(recordMap(t, cvParams(), fullDetails()))
	if !r.Valid() {
		t.Fatalf("fallback must not surface as an error: %v", r.Errors)
	}
	if !strings.Contains(r.Info[0], "missing.json unavailable") {
		t.Errorf("expected fallback note first, got %v", r.Info)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !New(Options{SchemaPath: bad}).UsingFallback() {
		t.Error("expected fallback for unparsable schema")
	}
}

func TestNew_ExternalYAMLSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	doc := `type: object
required: [id, dataset]
properties:
  id:
    type: string
  dataset:
    type: object
    required: [filename]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	v := New(Options{SchemaPath: path})
	if v.UsingFallback() {
		t.Fatal("expected external schema to load")
	}

	r := v.Schema(map[string]any{"id": "x"})
	if !slices.Equal(r.Errors, []string{"missing required field: dataset.filename"}) {
		t.Errorf("Errors = %v", r.Errors)
	}
	r = v.Schema(map[string]any{"id": "x", "dataset": map[string]any{"filename": "a.csv"}})
	if !r.Valid() {
		t.Errorf("unexpected errors: %v", r.Errors)
	}
}

func TestTechnique(t *testing.T) {
	tests := []struct {
		name   string
		tech   string
		params map[string]any
		errs   []string
		warns  []string
	}{
		{"cv ok", "CV", cvParams(), nil, nil},
		{"cv numeric string", "CV", map[string]any{"scan_rate": "0.5"}, nil, nil},
		{"cv high", "CV", map[string]any{"scan_rate": 20.0}, nil, []string{"CV scan rate seems high (>10 V/s) - please verify"}},
		{"cv text", "CV", map[string]any{"scan_rate": "fast"}, []string{"CV scan rate must be positive number"}, nil},
		{"cv zero lower case", "cv", map[string]any{"scan_rate": 0}, []string{"CV scan rate must be positive number"}, nil},
		{"cv nan", "CV", map[string]any{"scan_rate": math.NaN()}, []string{"CV scan rate must be positive number"}, nil},
		{"cv nan text", "CV", map[string]any{"scan_rate": "NaN"}, []string{"CV scan rate must be positive number"}, nil},
		{"cv infinite", "CV", map[string]any{"scan_rate": "Inf"}, []string{"CV scan rate must be positive number"}, nil},
		{"cv narrow", "CV", map[string]any{"start_potential": 0.1, "end_potential": 0.15}, nil, []string{"CV potential window seems narrow (<0.1 V)"}},
		{"eis ascending", "EIS", map[string]any{"frequency_range": []any{0.1, 100000.0}}, nil, []string{"EIS frequency range should be [high, low]"}},
		{"eis ok", "EIS", map[string]any{"frequency_range": []float64{100000, 0.1}, "ac_amplitude": 0.01}, nil, nil},
		{"eis amplitude", "EIS", map[string]any{"ac_amplitude": 0.2}, nil, []string{"EIS AC amplitude >0.1V may cause non-linear response"}},
		{"dpv", "DPV", map[string]any{"pulse_width": 0.005}, nil, []string{"DPV pulse width <10ms may be too short"}},
		{"swv", "SWV", map[string]any{"frequency": 2000}, nil, []string{"SWV frequency >1000Hz may be too high"}},
		{"ca", "CA", map[string]any{"step_times": []float64{1, 0.05, 0.01}}, nil, []string{"CA step times <0.1s may be too short for steady-state"}},
		{"unknown", "LSV", map[string]any{"scan_rate": -1}, nil, nil},
		{"no params", "CV", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{"technique": map[string]any{"name": tt.tech, "parameters": tt.params}}
			r := Technique(m)
			if !slices.Equal(r.Errors, tt.errs) {
				t.Errorf("Errors = %v, want %v", r.Errors, tt.errs)
			}
			if !slices.Equal(r.Warnings, tt.warns) {
				t.Errorf("Warnings = %v, want %v", r.Warnings, tt.warns)
			}
		})
	}
}

func TestChecklist_Shape(t *testing.T) {
	counts := map[string]int{}
	ids := map[string]bool{}
	for _, c := range Checklist() {
		counts[c.Principle]++
		if ids[c.ID] {
			t.Errorf("duplicate check %s", c.ID)
		}
		ids[c.ID] = true
		if c.Pass == "" || c.Fail == "" || c.Test == nil {
			t.Errorf("check %s is incomplete", c.ID)
		}
	}
	want := map[string]int{"F": 4, "A": 2, "I": 2, "R": 3}
	for p, n := range want {
		if counts[p] != n {
			t.Errorf("principle %s has %d checks, want %d", p, counts[p], n)
		}
	}
}

func TestFAIR_OneWarningPerFailedCheck(t *testing.T) {
	m := map[string]any{
		"id":      "x",
		"dataset": map[string]any{"filename": "a.xlsx", "format": "XLSX"},
	}
	r := FAIR(m)
	if len(r.Info) != 1 || r.Info[0] != "F1: Unique identifier present" {
		t.Errorf("Info = %v", r.Info)
	}
	if len(r.Warnings) != 10 {
		t.Errorf("expected 10 warnings, got %d", len(r.Warnings))
	}
	if !slices.Contains(r.Warnings, "A1: Consider using open data formats") {
		t.Errorf("Warnings = %v", r.Warnings)
	}
	if got, want := r.FAIRScore, 1.0/11; got != want {
		t.Errorf("FAIRScore = %v, want %v", got, want)
	}
}

func setPath(m map[string]any, key metadata.Key, value any) {
	segs := key.Segments()
	cur := m
	for _, s := range segs[:len(segs)-1] {
		next, ok := cur[s].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[s] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = value
}

func TestCompleteness_Buckets(t *testing.T) {
	specs := metadata.Registry()
	tests := []struct {
		present int
		want    string
		warn    bool
	}{
		{11, "High completeness score: 100.0%", false},
		{9, "High completeness score: 81.8%", false},
		{7, "Moderate completeness: 63.6% - consider adding more details", true},
		{6, "Low completeness: 54.5% - important information missing", true},
		{0, "Low completeness: 0.0% - important information missing", true},
	}
	for _, tt := range tests {
		m := map[string]any{}
		for _, s := range specs[:tt.present] {
			setPath(m, s.Key, "x")
		}
		r := Completeness(m)
		lines := r.Info
		if tt.warn {
			lines = r.Warnings
		}
		if len(r.Info)+len(r.Warnings) != 1 || lines[0] != tt.want {
			t.Errorf("present=%d: info=%v warnings=%v, want %q", tt.present, r.Info, r.Warnings, tt.want)
		}
		if missing := len(r.MissingRequired) + len(r.MissingRecommended); missing != 11-tt.present {
			t.Errorf("present=%d: %d fields reported missing", tt.present, missing)
		}
	}
}

func TestSuggestImprovements(t *testing.T) {
	got := SuggestImprovements(map[string]any{})
	want := []string{
		"Add ORCID ID for better researcher identification",
		"Add contact email for data inquiries",
		"Specify a data license (e.g., CC-BY-4.0) to clarify usage terms",
		"Use EMMO vocabulary terms for better interoperability",
		"Link to related publications via DOI if available",
	}
	if !slices.Equal(got, want) {
		t.Errorf("SuggestImprovements(empty) = %v", got)
	}

	if got := SuggestImprovements(recordMap(t, cvParams(), fullDetails())); len(got) != 0 {
		t.Errorf("expected no suggestions for a full record, got %v", got)
	}

	details := fullDetails()
	details["researcher_id"] = "1234"
	details["document_id"] = "https://doi.org/10.1000/abc"
	got = SuggestImprovements(recordMap(t, cvParams(), details))
	if !slices.Equal(got, []string{"Researcher ID '1234' is not a valid ORCID (0000-0000-0000-000X)"}) {
		t.Errorf("got %v", got)
	}
}

func TestGenerateReport(t *testing.T) {
	m := recordMap(t, cvParams(), fullDetails())
	out, err := GenerateReport(m)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	for _, want := range []string{"record_id: rec-1", "technique: CV", "valid: true", "fair_score: 1", "errors: []"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	out, err = New(Options{}).GenerateReportWithData(m, columns.Diagnostics{
		Warnings: []string{"Found 2 duplicate rows"},
	})
	if err != nil {
		t.Fatalf("GenerateReportWithData: %v", err)
	}
	if !strings.Contains(out, "data_file:") || !strings.Contains(out, "Found 2 duplicate rows") {
		t.Errorf("data section missing:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		res  Report
		want string
	}{
		{
			name: "passed",
			res:  Report{FAIRScore: 0.5, CompletenessScore: 0.83, Warnings: []string{"one", "two"}},
			want: "Validation: ✅ PASSED | FAIR: 50.0% | Completeness: 83.0% | Errors: 0 | Warnings: 2",
		},
		{
			name: "failed",
			res:  Report{CompletenessScore: 0.42, Errors: []string{"a", "b"}, Warnings: []string{"c"}},
			want: "Validation: ❌ FAILED | FAIR: 0.0% | Completeness: 42.0% | Errors: 2 | Warnings: 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.res); got != tt.want {
				t.Fatalf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
