package ui

import (
	"fmt"
	"io"
	"strings"
)

// TermView is one controlled vocabulary term for display.
type TermView struct {
	Label      string
	IRI        string
	Definition string
	Categories []string
}

// PrintTerms prints a titled list of terms. An empty list prints a dim note.
func PrintTerms(w io.Writer, title string, terms []TermView) {
	fmt.Fprintln(w, Title.Render(title))
	if len(terms) == 0 {
		fmt.Fprintln(w, "  "+Dim.Render("(no matching terms)"))
		return
	}
	for _, t := range terms {
		fmt.Fprintf(w, "  %s %s", Bullet(), Ident.Render(t.Label))
		if len(t.Categories) > 0 {
			tags := make([]string, len(t.Categories))
			for i, c := range t.Categories {
				tags[i] = CategoryTag(c)
			}
			fmt.Fprintf(w, " %s%s%s", Dim.Render("["), strings.Join(tags, Dim.Render(", ")), Dim.Render("]"))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "    "+Accent.Render(t.IRI))
		if t.Definition != "" {
			fmt.Fprintln(w, "    "+Dim.Render(t.Definition))
		}
	}
}

// ArchiveRow is one archived record for display.
type ArchiveRow struct {
	ID                string
	Technique         string
	Filename          string
	CreatedAt         string
	FAIRScore         float64
	CompletenessScore float64
	Errors            int
	Warnings          int
}

// PrintArchive prints archived records as a table.
func PrintArchive(w io.Writer, rows []ArchiveRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, Dim.Render("Archive is empty"))
		return
	}
	fmt.Fprintln(w, SectionHeader.Render(fmt.Sprintf("%-36s  %-4s  %-20s  %-7s  %-7s  %s", "ID", "TECH", "FILE", "FAIR", "COMPL", "ERR/WARN")))
	for _, r := range rows {
		status := PassMark()
		if r.Errors > 0 {
			status = FailMark()
		}
		fmt.Fprintf(w, "%-36s  %-4s  %-20s  %s  %s  %s %d/%d\n",
			r.ID, r.Technique, truncate(r.Filename, 20),
			ScoreStyle(r.FAIRScore).Render(fmt.Sprintf("%6.1f%%", r.FAIRScore*100)),
			ScoreStyle(r.CompletenessScore).Render(fmt.Sprintf("%6.1f%%", r.CompletenessScore*100)),
			status, r.Errors, r.Warnings)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
