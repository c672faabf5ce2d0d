package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorAppliesANSICodes(t *testing.T) {
	got := Color("hello", FgGreen)
	want := FgGreen + "hello" + Reset
	if got != want {
		t.Fatalf("Color() = %q, want %q", got, want)
	}
}

func TestColorWithEmptyString(t *testing.T) {
	got := Color("", FgRed)
	want := FgRed + "" + Reset
	if got != want {
		t.Fatalf("Color(\"\") = %q, want %q", got, want)
	}
}

func TestColorPlain(t *testing.T) {
	Init(true)
	defer Init(false)
	if got := Color("hello", FgGreen); got != "hello" {
		t.Fatalf("Color() with no color = %q", got)
	}
}

func TestValidationUI_PrintReport(t *testing.T) {
	tests := []struct {
		name    string
		report  ReportView
		quiet   bool
		verbose bool
		want    []string
		absent  []string
	}{
		{
			name: "passing record",
			report: ReportView{
				RecordID:          "rec-1",
				Technique:         "CV",
				Info:              []string{"F1: Unique identifier present"},
				FAIRScore:         1,
				CompletenessScore: 1,
			},
			want:   []string{"Validation Passed", "rec-1", "CV", "100.0%", "(all fields present)"},
			absent: []string{"F1: Unique identifier present", "Errors"},
		},
		{
			name: "failing record",
			report: ReportView{
				Errors:             []string{"missing required field: experimental_setup.electrolyte"},
				Warnings:           []string{"R1: Specify data license for reusability"},
				Suggestions:        []string{"Add contact email for data inquiries"},
				FAIRScore:          0.45,
				CompletenessScore:  0.636,
				MissingRequired:    []string{"experimental_setup.electrolyte"},
				MissingRecommended: []string{"compliance.reusable.license"},
			},
			want: []string{
				"Validation Failed",
				"▼ Errors (1)", "experimental_setup.electrolyte",
				"▼ Warnings (1)", "R1: Specify data license",
				"Suggestions", "Add contact email",
				"45.0%", "63.6%",
				"(1 required, 1 recommended missing)",
			},
		},
		{
			name:    "verbose shows info",
			report:  ReportView{Info: []string{"F1: Unique identifier present"}},
			verbose: true,
			want:    []string{"▼ Info (1)", "F1: Unique identifier present"},
		},
		{
			name:   "quiet mode produces no output",
			report: ReportView{FAIRScore: 0.5},
			quiet:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewValidationUI(&buf, tt.quiet).ShowInfo(tt.verbose).PrintReport(tt.report)
			output := buf.String()

			if tt.quiet {
				if output != "" {
					t.Errorf("Expected no output in quiet mode, got: %q", output)
				}
				return
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string %q.\nGot:\n%s", want, output)
				}
			}
			for _, no := range tt.absent {
				if strings.Contains(output, no) {
					t.Errorf("Output unexpectedly contains %q.\nGot:\n%s", no, output)
				}
			}
		})
	}
}

func TestValidationUI_PrintSimpleReport(t *testing.T) {
	var buf bytes.Buffer
	NewValidationUI(&buf, false).PrintSimpleReport(ReportView{
		Errors:            []string{"a"},
		Warnings:          []string{"b", "c"},
		FAIRScore:         0.5,
		CompletenessScore: 0.75,
	})
	output := buf.String()
	for _, w := range []string{"Validation failed", "FAIR: 50.0%, Completeness: 75.0%", "Errors: 1, Warnings: 2"} {
		if !strings.Contains(output, w) {
			t.Errorf("Output missing expected string %q.\nGot:\n%s", w, output)
		}
	}
}

func TestScoreBar(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		width  int
		filled int
	}{
		{"full", 1.0, 10, 10},
		{"half", 0.5, 10, 5},
		{"empty", 0.0, 10, 0},
		{"partial", 0.75, 20, 15},
		{"overflow", 1.5, 10, 10},
		{"negative", -0.2, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreBar(tt.score, tt.width)
			if n := strings.Count(result, "█") + strings.Count(result, "░"); n != tt.width {
				t.Errorf("bar has %d cells, want %d", n, tt.width)
			}
			if n := strings.Count(result, "█"); n != tt.filled {
				t.Errorf("bar has %d filled cells, want %d", n, tt.filled)
			}
		})
	}
}

func TestScoreStyle_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1, Success.Render("x")},
		{GoodScore, Success.Render("x")},
		{0.79, Warning.Render("x")},
		{FairScore, Warning.Render("x")},
		{0.49, Error.Render("x")},
		{0, Error.Render("x")},
	}
	for _, tt := range tests {
		if got := ScoreStyle(tt.score).Render("x"); got != tt.want {
			t.Errorf("ScoreStyle(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRoleStyleAndCategoryTag(t *testing.T) {
	if RoleStyle("potential").Render("E") == RoleStyle("current").Render("E") {
		t.Error("potential and current share a style")
	}
	if got, want := RoleStyle("pressure").Render("p"), Dim.Render("p"); got != want {
		t.Errorf("unknown role = %q, want dimmed %q", got, want)
	}
	if got, want := CategoryTag("polymers"), Dim.Render("polymers"); got != want {
		t.Errorf("unknown category = %q, want dimmed %q", got, want)
	}
	if !strings.Contains(CategoryTag("materials"), "materials") {
		t.Error("category tag lost its text")
	}
}

func TestPrintTerms(t *testing.T) {
	var buf bytes.Buffer
	PrintTerms(&buf, "Matches", []TermView{{
		Label:      "GlassyCarbon",
		IRI:        "https://example.org/emmo#gc",
		Definition: "Non-graphitizing carbon",
		Categories: []string{"materials", "electrodes"},
	}})
	for _, want := range []string{"Matches", "GlassyCarbon", "materials", "electrodes", "https://example.org/emmo#gc", "Non-graphitizing carbon"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Output missing expected string %q.\nGot:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	PrintTerms(&buf, "Matches", nil)
	if !strings.Contains(buf.String(), "(no matching terms)") {
		t.Errorf("empty list output = %q", buf.String())
	}
}

func TestInferenceUI_PrintReport(t *testing.T) {
	tests := []struct {
		name string
		view InferenceView
		want []string
	}{
		{
			name: "matched",
			view: InferenceView{
				File:      "cv.csv",
				Technique: "CV",
				Columns:   []string{"E (V)", "I (A)"},
				Roles:     []RoleView{{Role: "potential", Column: "E (V)"}, {Role: "current", Column: "I (A)"}},
				Status:    "matched",
				Title:     "Cyclic Voltammogram",
				X:         "E (V)",
				Y:         "I (A)",
				Info:      []string{"Data file contains 2 rows and 2 columns"},
			},
			want: []string{"cv.csv", "potential", "Cyclic Voltammogram: ", "I (A)", "E (V)", "Data file contains 2 rows"},
		},
		{
			name: "row index",
			view: InferenceView{Technique: "CV", Status: "row_index", Title: "Cyclic Voltammogram", Y: "reading"},
			want: []string{"(none matched)", "reading vs row index"},
		},
		{
			name: "ungraphable",
			view: InferenceView{Technique: "CV", Status: "ungraphable", Warnings: []string{"Expected at least 2 numeric columns for electrochemical data"}},
			want: []string{"Ungraphable: no numeric columns", "Expected at least 2 numeric columns"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewInferenceUI(&buf, false).PrintReport(tt.view)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Output missing expected string %q.\nGot:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestPrintTechnique(t *testing.T) {
	var buf bytes.Buffer
	PrintTechnique(&buf, TechniqueView{
		ID:          "CV",
		Description: "Cyclic Voltammetry",
		Parameters:  []ParameterRow{{Name: "scan_rate", Default: "0.1", Unit: "V/s", Range: "[0.001, 10]"}},
	})
	for _, want := range []string{"CV", "Cyclic Voltammetry", "scan_rate", "V/s", "[0.001, 10]"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Output missing expected string %q.\nGot:\n%s", want, buf.String())
		}
	}
}

func TestGenerateUI_QuietAndSummary(t *testing.T) {
	var buf bytes.Buffer
	NewGenerateUI(&buf, true).LogStep("success", "ignored")
	if buf.Len() != 0 {
		t.Fatalf("quiet GenerateUI wrote %q", buf.String())
	}

	g := NewGenerateUI(&buf, false)
	g.LogStep("success", "Metadata generated")
	g.PrintSummary(GenerateSummary{RecordID: "rec-1", Technique: "CV", Output: "out.yaml", Terms: 3})
	for _, want := range []string{"Metadata generated", "Metadata Generated", "rec-1", "out.yaml", "Vocabulary terms"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Output missing expected string %q.\nGot:\n%s", want, buf.String())
		}
	}
}
