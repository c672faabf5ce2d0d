package ui

import (
	"fmt"
	"io"
	"strings"
)

// RoleView is one resolved column role.
type RoleView struct {
	Role   string
	Column string
}

// InferenceView mirrors the column inference result for one data file.
type InferenceView struct {
	File      string
	Technique string
	Columns   []string
	Roles     []RoleView

	Status string
	Title  string
	X, Y   string

	Errors   []string
	Warnings []string
	Info     []string
}

// InferenceUI renders column inference results.
type InferenceUI struct {
	writer io.Writer
	quiet  bool
}

// NewInferenceUI creates a new UI handler for the infer command.
func NewInferenceUI(w io.Writer, quiet bool) *InferenceUI {
	return &InferenceUI{writer: w, quiet: quiet}
}

// PrintReport renders roles, the chosen plot and data file diagnostics.
func (u *InferenceUI) PrintReport(v InferenceView) {
	if u.quiet {
		return
	}

	var out strings.Builder
	out.WriteString(Title.Render("Column Inference"))
	out.WriteString("\n\n")
	if v.File != "" {
		out.WriteString(FormatKeyValue("File", Ident.Render(v.File)))
		out.WriteString("\n")
	}
	out.WriteString(FormatKeyValue("Technique", v.Technique))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("Columns", Dim.Render(strings.Join(v.Columns, ", "))))
	out.WriteString("\n\n")

	out.WriteString(SectionHeader.Render("Roles"))
	out.WriteString("\n")
	if len(v.Roles) == 0 {
		out.WriteString("  " + Dim.Render("(none matched)") + "\n")
	}
	for _, r := range v.Roles {
		out.WriteString(fmt.Sprintf("  %s %s %s\n", PassMark(), RoleStyle(r.Role).Render(fmt.Sprintf("%-10s", r.Role)), r.Column))
	}

	out.WriteString("\n")
	out.WriteString(SectionHeader.Render("Plot"))
	out.WriteString("\n")
	out.WriteString(u.renderPlot(v))

	for _, e := range v.Errors {
		out.WriteString("\n" + FormatStatus("error", e))
	}
	for _, w := range v.Warnings {
		out.WriteString("\n" + FormatStatus("warning", Dim.Render(w)))
	}
	for _, i := range v.Info {
		out.WriteString("\n" + FormatStatus("info", i))
	}

	fmt.Fprintln(u.writer, Panel.Render(out.String()))
}

func (u *InferenceUI) renderPlot(v InferenceView) string {
	switch v.Status {
	case "matched":
		return FormatStatus("success", fmt.Sprintf("%s: %s vs %s", v.Title, u.axis(v, v.Y), u.axis(v, v.X)))
	case "fallback":
		return FormatStatus("warning", fmt.Sprintf("%s (generic): %s vs %s", v.Title, v.Y, v.X))
	case "row_index":
		return FormatStatus("warning", fmt.Sprintf("%s (generic): %s vs row index", v.Title, v.Y))
	default:
		return FormatStatus("error", "Ungraphable: no numeric columns")
	}
}

// axis colours a plotted column by the role it was inferred for.
func (u *InferenceUI) axis(v InferenceView, column string) string {
	for _, r := range v.Roles {
		if r.Column == column {
			return RoleStyle(r.Role).Render(column)
		}
	}
	return column
}
