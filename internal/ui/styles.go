package ui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
)

// Palette. Everything rendered by this package takes its colours from here.
var (
	ColorAccent = lipgloss.Color("#14B8A6") // headings, IRIs, banner
	ColorIdent  = lipgloss.Color("#E879F9") // record and technique ids
	ColorGood   = lipgloss.Color("#22C55E")
	ColorFair   = lipgloss.Color("#EAB308")
	ColorPoor   = lipgloss.Color("#EF4444")
	ColorFaint  = lipgloss.Color("#94A3B8")
	ColorRule   = lipgloss.Color("#64748B")
	ColorInk    = lipgloss.Color("#F8FAFC")
)

var (
	Dim           = lipgloss.NewStyle().Foreground(ColorFaint)
	Success       = lipgloss.NewStyle().Foreground(ColorGood)
	Warning       = lipgloss.NewStyle().Foreground(ColorFair)
	Error         = lipgloss.NewStyle().Foreground(ColorPoor)
	Accent        = lipgloss.NewStyle().Foreground(ColorAccent)
	Ident         = lipgloss.NewStyle().Foreground(ColorIdent).Bold(true)
	Title         = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Underline(true)
	Subtitle      = lipgloss.NewStyle().Foreground(ColorFaint).Italic(true)
	SectionHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

func panel(border color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
}

// Panels frame a whole report; the border colour carries the verdict.
var (
	Panel     = panel(ColorRule)
	PassPanel = panel(ColorGood)
	FailPanel = panel(ColorPoor)
)

func PassMark() string { return Success.Render("✓") }
func FailMark() string { return Error.Render("✗") }
func WarnMark() string { return Warning.Render("⚠") }
func InfoMark() string { return Accent.Render("ℹ") }
func Bullet() string   { return Dim.Render("•") }

// FormatKeyValue renders "key: value" with a dimmed key.
func FormatKeyValue(key, value string) string {
	return Dim.Render(key+": ") + value
}

// FormatStatus prefixes message with the mark for status
// (success, error, warning, info; anything else gets a bullet).
func FormatStatus(status, message string) string {
	switch status {
	case "success":
		return PassMark() + " " + message
	case "error":
		return FailMark() + " " + message
	case "warning":
		return WarnMark() + " " + message
	case "info":
		return InfoMark() + " " + message
	}
	return Bullet() + " " + message
}

// Score bands used for FAIR and completeness scores.
const (
	GoodScore = 0.8
	FairScore = 0.5
)

// ScoreStyle colours a score in [0, 1] by band.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= GoodScore:
		return Success
	case score >= FairScore:
		return Warning
	}
	return Error
}

// ScoreBar renders score as a bar of width cells in its band colour.
func ScoreBar(score float64, width int) string {
	score = min(max(score, 0), 1)
	filled := int(score * float64(width))
	return ScoreStyle(score).Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}

// Column roles get fixed colours so a role reads the same in every view.
var roleColors = map[string]color.Color{
	"potential": lipgloss.Color("#60A5FA"),
	"current":   lipgloss.Color("#F97316"),
	"time":      lipgloss.Color("#A3E635"),
	"frequency": lipgloss.Color("#C084FC"),
	"z_real":    lipgloss.Color("#2DD4BF"),
	"z_imag":    lipgloss.Color("#F472B6"),
	"phase":     lipgloss.Color("#FACC15"),
}

// RoleStyle returns the style for a column role. Unknown roles are dimmed.
func RoleStyle(role string) lipgloss.Style {
	if c, ok := roleColors[role]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return Dim
}

var categoryColors = map[string]color.Color{
	"techniques":   ColorIdent,
	"electrodes":   lipgloss.Color("#60A5FA"),
	"materials":    lipgloss.Color("#FB923C"),
	"electrolytes": lipgloss.Color("#2DD4BF"),
}

// CategoryTag renders a vocabulary category as a coloured tag.
func CategoryTag(category string) string {
	c, ok := categoryColors[category]
	if !ok {
		return Dim.Render(category)
	}
	return lipgloss.NewStyle().Foreground(c).Render(category)
}

// FangColorScheme maps the palette onto fang's help and error output.
func FangColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           ColorInk,
		Title:          ColorAccent,
		Description:    ColorFaint,
		Codeblock:      c(lipgloss.Color("#E2E8F0"), lipgloss.Color("#1E293B")),
		Program:        ColorAccent,
		DimmedArgument: ColorRule,
		Comment:        ColorRule,
		Flag:           ColorGood,
		FlagDefault:    ColorFaint,
		Command:        ColorIdent,
		QuotedString:   ColorFair,
		Argument:       ColorInk,
		Help:           ColorFaint,
		Dash:           ColorRule,
		ErrorHeader:    [2]color.Color{ColorInk, ColorPoor},
		ErrorDetails:   ColorPoor,
	}
}

const banner = `
  ___ ___ _  _ ___ __  __   ___ _   ___ ___
 | __/ __| || | __|  \/  | | __/_\ |_ _| _ \
 | _| (__| __ | _|| |\/| | | _/ _ \ | ||   /
 |___\___|_||_|___|_|  |_| |_/_/ \_\___|_|_\
`

// Banner returns the rendered application banner.
func Banner() string { return Accent.Render(banner) }
