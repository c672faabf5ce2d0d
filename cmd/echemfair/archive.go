package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/archive"
	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var (
	archiveLimit      int
	archiveTechnique  string
	archiveShowReport bool
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse records saved with 'generate --archive'",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived records, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			rows, err := s.List(ctx, archive.ListOptions{Technique: archiveTechnique, Limit: archiveLimit})
			if err != nil {
				return err
			}
			ui.PrintArchive(cmd.OutOrStdout(), archiveRows(rows))
			return nil
		})
	},
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived record as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			e, err := s.Get(ctx, args[0])
			if errors.Is(err, archive.ErrNotFound) {
				return apperr.Userf("no archived record with id %s", args[0])
			}
			if err != nil {
				return err
			}

			text, err := metadata.Serialize(e.Record)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, text)
			if archiveShowReport {
				rep, err := yaml.Marshal(e.Report)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "---")
				fmt.Fprint(w, string(rep))
			}
			return nil
		})
	},
}

var archiveTermCmd = &cobra.Command{
	Use:   "term <label>",
	Short: "List archived records that use a vocabulary term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			ids, err := s.RecordsUsingTerm(ctx, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(w, ui.Dim.Render("No archived record uses "+args[0]))
			}
			for _, id := range ids {
				fmt.Fprintln(w, id)
			}
			return nil
		})
	},
}

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a record from the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			err := s.Delete(ctx, args[0])
			if errors.Is(err, archive.ErrNotFound) {
				return apperr.Userf("no archived record with id %s", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStatus("success", "Deleted "+args[0]))
			return nil
		})
	},
}

func withArchive(cmd *cobra.Command, fn func(context.Context, *archive.Store) error) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := archive.Open(ctx, cfg.ArchivePath)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s)
}

func archiveRows(in []archive.Summary) []ui.ArchiveRow {
	out := make([]ui.ArchiveRow, 0, len(in))
	for _, s := range in {
		out = append(out, ui.ArchiveRow{
			ID:                s.ID,
			Technique:         s.Technique,
			Filename:          s.Filename,
			CreatedAt:         s.CreatedAt,
			FAIRScore:         s.FAIRScore,
			CompletenessScore: s.CompletenessScore,
			Errors:            s.Errors,
			Warnings:          s.Warnings,
		})
	}
	return out
}

func init() {
	archiveListCmd.Flags().IntVarP(&archiveLimit, "limit", "n", archive.DefaultListLimit, "Maximum number of records")
	archiveListCmd.Flags().StringVarP(&archiveTechnique, "technique", "t", "", "Only list records of this technique")
	archiveShowCmd.Flags().BoolVar(&archiveShowReport, "report", false, "Also print the stored validation report")

	archiveCmd.AddCommand(archiveListCmd, archiveShowCmd, archiveTermCmd, archiveDeleteCmd)
}
