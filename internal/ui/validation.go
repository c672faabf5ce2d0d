package ui

import (
	"fmt"
	"io"
	"strings"
)

// ReportView mirrors validation.Report plus the record identity, to avoid an
// import cycle with the packages that log through ui.
type ReportView struct {
	RecordID           string
	Technique          string
	Errors             []string
	Warnings           []string
	Info               []string
	Suggestions        []string
	FAIRScore          float64
	CompletenessScore  float64
	MissingRequired    []string
	MissingRecommended []string
}

// Valid reports whether the view carries no errors.
func (r ReportView) Valid() bool { return len(r.Errors) == 0 }

// ValidationUI renders validation reports.
type ValidationUI struct {
	writer  io.Writer
	quiet   bool
	verbose bool
}

// NewValidationUI creates a new UI handler for validation output.
func NewValidationUI(w io.Writer, quiet bool) *ValidationUI {
	return &ValidationUI{writer: w, quiet: quiet}
}

// ShowInfo also renders the info lines (confirmations).
func (v *ValidationUI) ShowInfo(on bool) *ValidationUI {
	v.verbose = on
	return v
}

// PrintReport renders the boxed validation report.
func (v *ValidationUI) PrintReport(report ReportView) {
	if v.quiet {
		return
	}

	var output strings.Builder
	if report.Valid() {
		output.WriteString(Success.Bold(true).Render("✓ Validation Passed"))
	} else {
		output.WriteString(Error.Bold(true).Render("✗ Validation Failed"))
	}
	output.WriteString("\n\n")
	output.WriteString(v.renderScores(report))

	if len(report.Errors) > 0 {
		output.WriteString("\n\n")
		output.WriteString(v.renderList(Error.Render(fmt.Sprintf("▼ Errors (%d)", len(report.Errors))), FailMark(), report.Errors, false))
	}
	if len(report.Warnings) > 0 {
		output.WriteString("\n\n")
		output.WriteString(v.renderList(Warning.Render(fmt.Sprintf("▼ Warnings (%d)", len(report.Warnings))), WarnMark(), report.Warnings, true))
	}
	if v.verbose && len(report.Info) > 0 {
		output.WriteString("\n\n")
		output.WriteString(v.renderList(Accent.Render(fmt.Sprintf("▼ Info (%d)", len(report.Info))), PassMark(), report.Info, true))
	}
	if len(report.Suggestions) > 0 {
		output.WriteString("\n\n")
		output.WriteString(v.renderList(SectionHeader.Render("Suggestions"), Bullet(), report.Suggestions, false))
	}

	if report.Valid() {
		fmt.Fprintln(v.writer, PassPanel.Render(output.String()))
	} else {
		fmt.Fprintln(v.writer, FailPanel.Render(output.String()))
	}
}

func (v *ValidationUI) renderScores(report ReportView) string {
	var sb strings.Builder

	sb.WriteString(SectionHeader.Render("Metadata Record"))
	sb.WriteString("\n")
	if report.RecordID != "" {
		sb.WriteString(FormatKeyValue("ID", Ident.Render(report.RecordID)))
		sb.WriteString("\n")
	}
	if report.Technique != "" {
		sb.WriteString(FormatKeyValue("Technique", report.Technique))
		sb.WriteString("\n")
	}
	sb.WriteString(FormatKeyValue("FAIR        ", ScoreBar(report.FAIRScore, 40)+" "+v.renderScorePercentage(report.FAIRScore)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Completeness", ScoreBar(report.CompletenessScore, 40)+" "+v.renderScorePercentage(report.CompletenessScore)))
	sb.WriteString("\n")

	if n := len(report.MissingRequired) + len(report.MissingRecommended); n > 0 {
		sb.WriteString(Dim.Render(fmt.Sprintf("(%d required, %d recommended missing)", len(report.MissingRequired), len(report.MissingRecommended))))
	} else {
		sb.WriteString(Dim.Render("(all fields present)"))
	}
	return sb.String()
}

func (v *ValidationUI) renderList(header, mark string, items []string, dim bool) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString("  ")
		sb.WriteString(mark)
		sb.WriteString(" ")
		if dim {
			item = Dim.Render(item)
		}
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (v *ValidationUI) renderScorePercentage(score float64) string {
	return ScoreStyle(score).Render(fmt.Sprintf("%.1f%%", score*100))
}

// PrintSimpleReport prints a minimal text report.
func (v *ValidationUI) PrintSimpleReport(report ReportView) {
	if report.Valid() {
		fmt.Fprintf(v.writer, "%s Validation passed\n", PassMark())
	} else {
		fmt.Fprintf(v.writer, "%s Validation failed\n", FailMark())
	}
	fmt.Fprintf(v.writer, "FAIR: %.1f%%, Completeness: %.1f%%\n", report.FAIRScore*100, report.CompletenessScore*100)
	fmt.Fprintf(v.writer, "Errors: %d, Warnings: %d\n", len(report.Errors), len(report.Warnings))
}
