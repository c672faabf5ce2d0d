package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/columns"
	"github.com/Haghighatbin/echem-fairifier/internal/prompt"
	"github.com/Haghighatbin/echem-fairifier/internal/technique"
)

func TestParseParamFlags(t *testing.T) {
	got, err := parseParamFlags([]string{"scan_rate=0.05", " step_size = 0.002 ", "scan_rate=0.1", "label=a=b"})
	if err != nil {
		t.Fatalf("parseParamFlags: %v", err)
	}
	want := map[string]string{"scan_rate": "0.1", "step_size": "0.002", "label": "a=b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %q, want %q", k, got[k], v)
		}
	}

	for _, bad := range []string{"scan_rate", "=1"} {
		_, err := parseParamFlags([]string{bad})
		if !apperr.IsUser(err) {
			t.Fatalf("%q: expected user error, got %v", bad, err)
		}
	}
}

func TestApplyDetails(t *testing.T) {
	a := prompt.DefaultAnswers()
	applyDetails(&a, map[string]string{
		"working_electrode": "Gold disk",
		"researcher_id":     "0000-0002-1825-0097",
		"funding_source":    "ignored by the form",
	})
	if a.WorkingElectrode != "Gold disk" || a.ResearcherID != "0000-0002-1825-0097" {
		t.Fatalf("answers not prefilled: %+v", a)
	}
	if a.ReferenceElectrode != "Ag/AgCl" {
		t.Fatalf("untouched default changed: %q", a.ReferenceElectrode)
	}
}

func TestDetailFlagsCoverDetailKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range detailFlags {
		if seen[f.key] {
			t.Fatalf("duplicate detail key %s", f.key)
		}
		seen[f.key] = true
		if generateCmd.Flags().Lookup(f.flag) == nil {
			t.Fatalf("flag --%s not registered", f.flag)
		}
	}
	for k := range prompt.DefaultAnswers().Details() {
		if !seen[k] {
			t.Fatalf("form detail %s has no flag", k)
		}
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDescribeDataFile(t *testing.T) {
	path := writeTemp(t, "cv.csv", "Potential (V),Current (A)\n0.1,1e-6\n0.2,2e-6\n0.3,3e-6\n")

	info, diag, err := describeDataFile(path, "CV")
	if err != nil {
		t.Fatalf("describeDataFile: %v", err)
	}
	if info.Filename != "cv.csv" || info.SizeBytes == 0 || info.Checksum == "" {
		t.Fatalf("unexpected dataset info: %+v", info)
	}
	if len(diag.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", diag.Errors)
	}

	if _, _, err := describeDataFile(filepath.Join(t.TempDir(), "missing.csv"), "CV"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestInferenceView(t *testing.T) {
	table := columns.NewTable(
		[]string{"Time (s)", "Potential (V)", "Current (A)"},
		[][]string{{"0", "0.1", "1e-6"}, {"1", "0.2", "2e-6"}},
	)
	v, err := inferenceView(table, "CV")
	if err != nil {
		t.Fatalf("inferenceView: %v", err)
	}
	if v.Status != string(columns.Matched) {
		t.Fatalf("Status = %q", v.Status)
	}
	if v.X != "Potential (V)" || v.Y != "Current (A)" {
		t.Fatalf("axes = %q, %q", v.X, v.Y)
	}
	if len(v.Roles) != 3 || v.Roles[0].Role != "potential" {
		t.Fatalf("roles = %+v", v.Roles)
	}

	if _, err := inferenceView(nil, "CV"); err == nil {
		t.Fatalf("expected error for nil table")
	}
}

func TestTechniqueView(t *testing.T) {
	def, ok := technique.Lookup("cv")
	if !ok {
		t.Fatal("CV not registered")
	}
	v := techniqueView(def)
	if v.ID != "CV" || len(v.Parameters) != len(def.Parameters) {
		t.Fatalf("unexpected view %+v", v)
	}
	for _, p := range v.Parameters {
		if p.Name == "scan_rate" && !strings.HasPrefix(p.Range, "[") {
			t.Fatalf("scan_rate range = %q", p.Range)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := parseCategory(" Materials "); err != nil || c != "materials" {
		t.Fatalf("got %q, %v", c, err)
	}
	if c, err := parseCategory(""); err != nil || c != "" {
		t.Fatalf("got %q, %v", c, err)
	}
	if _, err := parseCategory("polymers"); !apperr.IsUser(err) {
		t.Fatalf("expected user error, got %v", err)
	}
}
