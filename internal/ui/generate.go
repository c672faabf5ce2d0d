package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// GenerateUI renders progress and the summary of the generate command.
type GenerateUI struct {
	writer    io.Writer
	quiet     bool
	startTime time.Time
}

// NewGenerateUI creates a new UI handler for the generate command.
func NewGenerateUI(w io.Writer, quiet bool) *GenerateUI {
	return &GenerateUI{writer: w, quiet: quiet, startTime: time.Now()}
}

// LogStep prints a single step line with a status icon.
func (g *GenerateUI) LogStep(status, message string) {
	if g.quiet {
		return
	}
	if status == "" {
		fmt.Fprintf(g.writer, "%s %s\n", Accent.Render("→"), message)
		return
	}
	fmt.Fprintln(g.writer, FormatStatus(status, message))
}

// GenerateSummary is what PrintSummary reports.
type GenerateSummary struct {
	RecordID  string
	Technique string
	Output    string
	Archive   string
	Terms     int
}

// PrintSummary prints the final summary box.
func (g *GenerateUI) PrintSummary(s GenerateSummary) {
	if g.quiet {
		return
	}

	var sb strings.Builder
	sb.WriteString(Success.Bold(true).Render("Metadata Generated"))
	sb.WriteString("\n\n")
	sb.WriteString(FormatKeyValue("Record ID", Ident.Render(s.RecordID)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Technique", s.Technique))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Vocabulary terms", fmt.Sprintf("%d", s.Terms)))
	if s.Output != "" {
		sb.WriteString("\n")
		sb.WriteString(FormatKeyValue("Written to", s.Output))
	}
	if s.Archive != "" {
		sb.WriteString("\n")
		sb.WriteString(FormatKeyValue("Archived in", s.Archive))
	}
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Duration", time.Since(g.startTime).Round(time.Millisecond).String()))

	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, PassPanel.Render(sb.String()))
}
