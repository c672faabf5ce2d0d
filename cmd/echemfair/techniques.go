package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/technique"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var techniquesCmd = &cobra.Command{
	Use:   "techniques [id]",
	Short: "List supported techniques or show one technique's parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 1 {
			def, ok := technique.Lookup(args[0])
			if !ok {
				return apperr.Userf("unknown technique %q (known: %v)", args[0], technique.List())
			}
			ui.PrintTechnique(w, techniqueView(def))
			return nil
		}

		var views []ui.TechniqueView
		for _, id := range technique.List() {
			def, _ := technique.Lookup(id)
			views = append(views, ui.TechniqueView{ID: def.ID, Description: def.Description})
		}
		ui.PrintTechniques(w, views)
		return nil
	},
}

func techniqueView(def technique.Definition) ui.TechniqueView {
	v := ui.TechniqueView{ID: def.ID, Description: def.Description}
	for _, p := range def.Parameters {
		v.Parameters = append(v.Parameters, ui.ParameterRow{
			Name:        p.Name,
			Default:     p.DefaultString(),
			Unit:        p.Unit,
			Range:       p.RangeString(),
			Description: p.Description,
		})
	}
	return v
}
