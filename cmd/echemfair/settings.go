package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Haghighatbin/echem-fairifier/internal/archive"
	"github.com/Haghighatbin/echem-fairifier/internal/columns"
	"github.com/Haghighatbin/echem-fairifier/internal/config"
	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
	"github.com/Haghighatbin/echem-fairifier/internal/validation"
	"github.com/Haghighatbin/echem-fairifier/internal/vocabulary"
)

// loadSettings resolves the configuration and wires package logging to
// stderr according to the log level.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if !cfg.Quiet() {
		lw := cmd.ErrOrStderr()
		validation.SetLogger(lw)
		archive.SetLogger(lw)
		if cfg.Debug() {
			metadata.SetLogger(lw)
			columns.SetLogger(lw)
			vocabulary.SetLogger(lw)
		}
	}
	return cfg, nil
}

func newValidator(cfg config.Config) *validation.Validator {
	return validation.New(validation.Options{SchemaPath: cfg.SchemaPath})
}

func keysToStrings(keys []metadata.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.String())
	}
	return out
}

func reportView(id, tech string, r validation.Report, suggestions []string) ui.ReportView {
	return ui.ReportView{
		RecordID:           id,
		Technique:          tech,
		Errors:             r.Errors,
		Warnings:           r.Warnings,
		Info:               r.Info,
		Suggestions:        suggestions,
		FAIRScore:          r.FAIRScore,
		CompletenessScore:  r.CompletenessScore,
		MissingRequired:    keysToStrings(r.MissingRequired),
		MissingRecommended: keysToStrings(r.MissingRecommended),
	}
}
