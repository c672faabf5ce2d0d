package ui

import (
	"fmt"
	"io"
	"strings"
)

// ParameterRow is one line of a technique parameter table.
type ParameterRow struct {
	Name        string
	Default     string
	Unit        string
	Range       string
	Description string
}

// TechniqueView describes one technique for display.
type TechniqueView struct {
	ID          string
	Description string
	Parameters  []ParameterRow
}

// PrintTechniques prints a compact list of techniques.
func PrintTechniques(w io.Writer, techs []TechniqueView) {
	fmt.Fprintln(w, Title.Render("Supported techniques"))
	for _, t := range techs {
		fmt.Fprintf(w, "  %s %-4s %s\n", Bullet(), Ident.Render(t.ID), Dim.Render(t.Description))
	}
}

// PrintTechnique prints one technique with its parameter table.
func PrintTechnique(w io.Writer, t TechniqueView) {
	var sb strings.Builder
	sb.WriteString(Ident.Render(t.ID))
	sb.WriteString("  ")
	sb.WriteString(Subtitle.Render(t.Description))
	sb.WriteString("\n\n")
	sb.WriteString(SectionHeader.Render(fmt.Sprintf("%-18s %-14s %-6s %-18s", "Parameter", "Default", "Unit", "Range")))
	for _, p := range t.Parameters {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-18s %-14s %-6s %-18s", p.Name, p.Default, p.Unit, p.Range))
		if p.Description != "" {
			sb.WriteString(" " + Dim.Render(p.Description))
		}
	}
	fmt.Fprintln(w, Panel.Render(sb.String()))
}
