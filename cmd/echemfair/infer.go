package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/columns"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var (
	inferInput     string
	inferTechnique string
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer column roles and plot axes of a measurement file",
	Long:  "Reads a delimited data file, assigns electrochemical roles to its numeric columns and picks the plot axes for the technique.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inferInput == "" {
			return apperr.User("--input is required")
		}
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(inferInput)
		if err != nil {
			return fmt.Errorf("opening data file: %w", err)
		}
		defer f.Close()

		table, err := columns.ReadCSV(f)
		if err != nil {
			return apperr.Userf("%s: %v", inferInput, err)
		}
		view, err := inferenceView(table, inferTechnique)
		if err != nil {
			return err
		}
		view.File = inferInput

		ui.NewInferenceUI(cmd.OutOrStdout(), cfg.Quiet()).PrintReport(view)
		return nil
	},
}

func inferenceView(t *columns.Table, tech string) (ui.InferenceView, error) {
	roles, err := columns.Infer(t)
	if err != nil {
		return ui.InferenceView{}, err
	}
	plot, err := columns.Axes(t, tech)
	if err != nil {
		return ui.InferenceView{}, err
	}
	diag, err := columns.Inspect(t, tech)
	if err != nil {
		return ui.InferenceView{}, err
	}

	v := ui.InferenceView{
		Technique: tech,
		Columns:   t.Names(),
		Status:    string(plot.Status),
		Title:     plot.Title,
		X:         plot.X,
		Y:         plot.Y,
		Errors:    diag.Errors,
		Warnings:  diag.Warnings,
		Info:      diag.Info,
	}
	for _, role := range columns.Roles() {
		if col, ok := roles.Get(role); ok {
			v.Roles = append(v.Roles, ui.RoleView{Role: string(role), Column: col})
		}
	}
	return v, nil
}

func init() {
	inferCmd.Flags().StringVarP(&inferInput, "input", "i", "", "Path to the CSV/TSV data file (required)")
	inferCmd.Flags().StringVarP(&inferTechnique, "technique", "t", "CV", "Technique id used to pick the plot axes")
	inferCmd.MarkFlagRequired("input")
}
