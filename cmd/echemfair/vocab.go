package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
	"github.com/Haghighatbin/echem-fairifier/internal/vocabulary"
)

var vocabCategory string

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Look up controlled electrochemistry vocabulary terms",
}

var vocabMatchCmd = &cobra.Command{
	Use:   "match <name>",
	Short: "Resolve a name, synonym or abbreviation to a term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		term, ok := vocabulary.NewStore().Match(name)
		if !ok {
			return apperr.Userf("no vocabulary term matches %q; try 'echemfair vocab suggest %s'", name, name)
		}
		ui.PrintTerms(cmd.OutOrStdout(), fmt.Sprintf("Match for %q", name), termViews([]vocabulary.Term{term}))
		return nil
	},
}

var vocabSuggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "List terms mentioning the text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(vocabCategory)
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		terms := vocabulary.NewStore().Suggest(text, category)
		ui.PrintTerms(cmd.OutOrStdout(), fmt.Sprintf("Suggestions for %q", text), termViews(terms))
		return nil
	},
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the embedded terms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(vocabCategory)
		if err != nil {
			return err
		}
		store := vocabulary.NewStore()
		terms := store.Terms()
		title := "Vocabulary terms"
		if category != "" {
			terms = store.Category(category)
			title = fmt.Sprintf("Vocabulary terms: %s", category)
		}
		ui.PrintTerms(cmd.OutOrStdout(), title, termViews(terms))
		return nil
	},
}

func parseCategory(s string) (vocabulary.Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, c := range vocabulary.Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	names := make([]string, 0, 4)
	for _, c := range vocabulary.Categories() {
		names = append(names, string(c))
	}
	return "", apperr.Userf("unknown category %q (expected %s)", s, strings.Join(names, "|"))
}

func termViews(terms []vocabulary.Term) []ui.TermView {
	out := make([]ui.TermView, 0, len(terms))
	for _, t := range terms {
		v := ui.TermView{Label: t.Label, IRI: t.IRI, Definition: t.Definition}
		for _, c := range t.Categories {
			v.Categories = append(v.Categories, string(c))
		}
		out = append(out, v)
	}
	return out
}

func init() {
	vocabCmd.PersistentFlags().StringVarP(&vocabCategory, "category", "c", "", "Restrict to a category: techniques|electrodes|materials|electrolytes")
	vocabCmd.AddCommand(vocabMatchCmd, vocabSuggestCmd, vocabListCmd)
}
