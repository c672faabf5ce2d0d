package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/recordio"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
	"github.com/Haghighatbin/echem-fairifier/internal/validation"
	"github.com/Haghighatbin/echem-fairifier/internal/vocabulary"
	"github.com/Haghighatbin/echem-fairifier/pkg/echemfair/validator"
)

var (
	validateInput        string
	validateFormat       string
	validateReport       string
	validatePlainSummary bool
	validateShowInfo     bool
	validateStrict       bool
	validateMinFAIR      float64
	validateMinComplete  float64
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an existing metadata record",
	Long: "Checks a metadata YAML or JSON file against the schema, the FAIR checklist, " +
		"field completeness and technique plausibility rules.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateInput == "" {
			return apperr.User("--input is required")
		}
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		m, err := recordio.ReadMap(validateInput, validateFormat)
		if err != nil {
			return apperr.Userf("failed to read metadata: %v", err)
		}

		result := validator.Validate(m, validator.ValidationOptions{
			SchemaPath:           cfg.SchemaPath,
			StrictMode:           viper.GetBool("validate.strict"),
			MinFAIRScore:         viper.GetFloat64("validate.min-fair"),
			MinCompletenessScore: viper.GetFloat64("validate.min-completeness"),
		})

		if validateReport != "" {
			audit, err := newValidator(cfg).GenerateReport(m)
			if err != nil {
				return err
			}
			if err := recordio.WriteText(validateReport, audit); err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		switch {
		case validatePlainSummary:
			fmt.Fprintln(w, validation.Summary(result.Report))
		case !cfg.Quiet():
			rv := reportView(result.RecordID, result.Technique, result.Report, validation.SuggestImprovements(m))
			rv.Errors = result.Errors

			// Vocabulary hints are shown but do not affect the result.
			if rec, err := recordio.ReadRecord(validateInput, validateFormat); err == nil {
				terms := vocabulary.NewStore().CheckTerms(rec)
				rv.Info = append(rv.Info, terms.Valid...)
				rv.Suggestions = append(rv.Suggestions, terms.Suggestions...)
			}
			ui.NewValidationUI(w, false).ShowInfo(validateShowInfo).PrintReport(rv)
		}

		if !result.Valid {
			return errors.New("validation failed")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Path to the metadata YAML/JSON file (required)")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "auto", "Input format: yaml|json|auto")
	validateCmd.Flags().StringVar(&validateReport, "report", "", "Write the YAML validation report to this file")
	validateCmd.Flags().BoolVar(&validatePlainSummary, "plain-summary", false, "Print a one-line summary instead of the styled report")
	validateCmd.Flags().BoolVar(&validateShowInfo, "show-info", false, "Also list informational confirmations")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Strict mode: fail on missing required fields and low scores")
	validateCmd.Flags().Float64Var(&validateMinFAIR, "min-fair", 0.0, "Minimum FAIR score in strict mode (0.0-1.0)")
	validateCmd.Flags().Float64Var(&validateMinComplete, "min-completeness", 0.0, "Minimum completeness score in strict mode (0.0-1.0)")

	validateCmd.MarkFlagRequired("input")

	viper.BindPFlag("validate.strict", validateCmd.Flags().Lookup("strict"))
	viper.BindPFlag("validate.min-fair", validateCmd.Flags().Lookup("min-fair"))
	viper.BindPFlag("validate.min-completeness", validateCmd.Flags().Lookup("min-completeness"))
}
