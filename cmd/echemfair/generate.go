package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/archive"
	"github.com/Haghighatbin/echem-fairifier/internal/columns"
	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
	"github.com/Haghighatbin/echem-fairifier/internal/prompt"
	"github.com/Haghighatbin/echem-fairifier/internal/recordio"
	"github.com/Haghighatbin/echem-fairifier/internal/technique"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
	"github.com/Haghighatbin/echem-fairifier/internal/validation"
	"github.com/Haghighatbin/echem-fairifier/internal/vocabulary"
)

var (
	generateTechnique   string
	generateParams      []string
	generateNoDefaults  bool
	generateData        string
	generateFilename    string
	generateDescription string
	generateOutput      string
	generateFormat      string
	generateReport      string
	generateArchive     bool
	generateNoEnrich    bool
	generateInteractive bool

	generateDetails = map[string]*string{}
)

// detailFlags maps generate flags onto generator detail keys, in help order.
var detailFlags = []struct {
	flag, key, usage string
}{
	{"working-electrode", "working_electrode", "Working electrode (e.g. \"Glassy carbon, 3 mm\")"},
	{"reference-electrode", "reference_electrode", "Reference electrode (e.g. Ag/AgCl)"},
	{"counter-electrode", "counter_electrode", "Counter electrode (e.g. \"Platinum wire\")"},
	{"electrolyte", "electrolyte", "Electrolyte composition"},
	{"temperature", "temperature", "Measurement temperature"},
	{"atmosphere", "atmosphere", "Cell atmosphere (Air, Nitrogen, Argon, ...)"},
	{"creator", "creator", "Person who recorded the data"},
	{"institution", "institution", "Creator's institution"},
	{"contact-email", "contact_email", "Contact e-mail address"},
	{"orcid", "researcher_id", "Creator's ORCID iD"},
	{"doi", "document_id", "DOI of the related publication"},
	{"funding", "funding_source", "Funding source"},
	{"license", "license", "Data license (e.g. CC-BY-4.0)"},
	{"access-protocol", "access_protocol", "How the data can be retrieved"},
}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a FAIR metadata record for an electrochemical measurement",
	Long: "Builds a metadata record from the technique, its parameters and the experimental details, " +
		"enriches it with controlled vocabulary terms and validates it. " +
		"Use --interactive to be asked for the details instead of passing flags.",
	Example: `  echemfair generate -t CV --param scan_rate=0.05 --data cv.csv --creator "A. Researcher" --license CC-BY-4.0
  echemfair generate --interactive --data eis.csv -o eis.yaml --archive`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// YAML goes to stdout unless --output is set; progress then moves to stderr.
	out := viper.GetString("generate.output")
	uiOut := cmd.OutOrStdout()
	if out == "" {
		uiOut = cmd.ErrOrStderr()
	}
	genUI := ui.NewGenerateUI(uiOut, cfg.Quiet())

	tech := strings.TrimSpace(generateTechnique)
	details := flagDetails()
	rawParams, err := parseParamFlags(generateParams)
	if err != nil {
		return err
	}
	description := generateDescription

	if viper.GetBool("generate.interactive") {
		a := prompt.DefaultAnswers()
		if tech != "" {
			a.Technique = tech
		}
		applyDetails(&a, details)
		if description != "" {
			a.DatasetDescription = description
		}
		if err := prompt.RunExperimentForm(&a); err != nil {
			return err
		}
		tech = a.Technique
		for k, v := range a.Details() {
			details[k] = v
		}
		description = a.DatasetDescription
		if err := prompt.RunParameterForm(tech, rawParams); err != nil {
			return err
		}
	}

	if tech == "" {
		return apperr.User("--technique is required (or use --interactive)")
	}
	if !technique.Known(tech) {
		genUI.LogStep("warning", fmt.Sprintf("Unknown technique %q; known techniques are %s", tech, strings.Join(technique.List(), ", ")))
	}

	if !generateNoDefaults {
		for _, p := range technique.Parameters(tech) {
			if _, set := rawParams[p.Name]; !set {
				rawParams[p.Name] = p.DefaultString()
			}
		}
	}
	params, err := prompt.ParseParameters(tech, rawParams)
	if err != nil {
		return apperr.Userf("invalid --param: %v", err)
	}
	for _, note := range technique.OutOfRange(tech, params) {
		genUI.LogStep("warning", "Parameter "+note)
	}

	dataset := metadata.DatasetInfo{Filename: generateFilename, Description: description}
	var diag *columns.Diagnostics
	if generateData != "" {
		info, d, err := describeDataFile(generateData, tech)
		if err != nil {
			return err
		}
		info.Description = description
		if generateFilename != "" {
			info.Filename = generateFilename
		}
		dataset = info
		diag = &d
		genUI.LogStep("success", fmt.Sprintf("Read %s (%d bytes)", generateData, info.SizeBytes))
		for _, e := range d.Errors {
			genUI.LogStep("error", e)
		}
		for _, w := range d.Warnings {
			genUI.LogStep("warning", w)
		}
	}

	rec := metadata.NewGenerator(cfg.GeneratorOptions()).Generate(tech, params, details, dataset)
	genUI.LogStep("success", "Generated record "+rec.ID)

	terms := 0
	if !generateNoEnrich {
		rec = vocabulary.NewStore().Enrich(rec)
		terms = len(rec.Enrichment.TermsUsed)
		genUI.LogStep("success", fmt.Sprintf("Matched %d vocabulary term(s)", terms))
	}

	validator := newValidator(cfg)
	report, err := validator.ValidateRecord(rec)
	if err != nil {
		return err
	}

	if out != "" {
		if err := recordio.WriteRecord(rec, out, generateFormat); err != nil {
			return err
		}
	} else {
		format, err := recordio.ResolveFormat("", generateFormat)
		if err != nil {
			return err
		}
		text, err := recordio.Encode(rec, format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	}

	if generateReport != "" {
		m, err := rec.Map()
		if err != nil {
			return err
		}
		var audit string
		if diag != nil {
			audit, err = validator.GenerateReportWithData(m, *diag)
		} else {
			audit, err = validator.GenerateReport(m)
		}
		if err != nil {
			return err
		}
		if err := recordio.WriteText(generateReport, audit); err != nil {
			return err
		}
		genUI.LogStep("success", "Wrote validation report to "+generateReport)
	}

	archivedIn := ""
	if viper.GetBool("generate.archive") {
		store, err := archive.Open(ctx, cfg.ArchivePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(ctx, rec, report); err != nil {
			return err
		}
		archivedIn = cfg.ArchivePath
	}

	if !cfg.Quiet() {
		m, err := rec.Map()
		if err != nil {
			return err
		}
		ui.NewValidationUI(uiOut, false).PrintReport(
			reportView(rec.ID, rec.Technique.Name, report, validation.SuggestImprovements(m)))
	}

	genUI.PrintSummary(ui.GenerateSummary{
		RecordID:  rec.ID,
		Technique: rec.Technique.Name,
		Output:    out,
		Archive:   archivedIn,
		Terms:     terms,
	})
	return nil
}

// parseParamFlags splits repeated name=value flags. Later flags win.
func parseParamFlags(flags []string) (map[string]string, error) {
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, apperr.Userf("invalid --param %q (expected name=value)", f)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

func flagDetails() map[string]string {
	out := map[string]string{}
	for _, f := range detailFlags {
		if v := strings.TrimSpace(*generateDetails[f.key]); v != "" {
			out[f.key] = v
		}
	}
	return out
}

// applyDetails prefills form answers with values given as flags.
func applyDetails(a *prompt.Answers, d map[string]string) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := d[k]
		switch k {
		case "working_electrode":
			a.WorkingElectrode = v
		case "reference_electrode":
			a.ReferenceElectrode = v
		case "counter_electrode":
			a.CounterElectrode = v
		case "electrolyte":
			a.Electrolyte = v
		case "temperature":
			a.Temperature = v
		case "atmosphere":
			a.Atmosphere = v
		case "creator":
			a.Creator = v
		case "institution":
			a.Institution = v
		case "contact_email":
			a.ContactEmail = v
		case "researcher_id":
			a.ResearcherID = v
		case "document_id":
			a.DocumentID = v
		case "license":
			a.License = v
		}
	}
}

// describeDataFile reads a delimited data file and returns its dataset
// description and structural diagnostics for tech.
func describeDataFile(path, tech string) (metadata.DatasetInfo, columns.Diagnostics, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return metadata.DatasetInfo{}, columns.Diagnostics{}, fmt.Errorf("reading data file: %w", err)
	}
	info := metadata.DatasetInfo{
		Filename:  filepath.Base(path),
		SizeBytes: int64(len(content)),
		Encoding:  "UTF-8",
		Checksum:  metadata.Checksum(content),
	}

	table, err := columns.ReadCSV(bytes.NewReader(content))
	if err != nil {
		return info, columns.Diagnostics{}, apperr.Userf("%s: %v", path, err)
	}
	diag, err := columns.Inspect(table, tech)
	if err != nil {
		return info, columns.Diagnostics{}, err
	}
	return info, diag, nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateTechnique, "technique", "t", "", "Technique id: CV|EIS|DPV|SWV|CA")
	generateCmd.Flags().StringArrayVarP(&generateParams, "param", "p", nil, "Technique parameter as name=value (lists as a,b); repeatable")
	generateCmd.Flags().BoolVar(&generateNoDefaults, "no-defaults", false, "Do not fill unset parameters with technique defaults")
	generateCmd.Flags().StringVarP(&generateData, "data", "d", "", "Measurement data file (CSV/TSV) to describe and inspect")
	generateCmd.Flags().StringVar(&generateFilename, "filename", "", "Dataset filename to record (defaults to the --data base name)")
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "Dataset description")
	for _, f := range detailFlags {
		v := new(string)
		generateDetails[f.key] = v
		generateCmd.Flags().StringVar(v, f.flag, "", f.usage)
	}
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the metadata YAML to this file instead of stdout")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "auto", "Output format: yaml|json|auto (auto uses the --output extension)")
	generateCmd.Flags().StringVar(&generateReport, "report", "", "Write the YAML validation report to this file")
	generateCmd.Flags().BoolVar(&generateArchive, "archive", false, "Save the record and its report to the local archive")
	generateCmd.Flags().BoolVar(&generateNoEnrich, "no-enrich", false, "Skip controlled vocabulary enrichment")
	generateCmd.Flags().BoolVarP(&generateInteractive, "interactive", "I", false, "Ask for the experimental details in a form")

	viper.BindPFlag("generate.output", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("generate.archive", generateCmd.Flags().Lookup("archive"))
	viper.BindPFlag("generate.interactive", generateCmd.Flags().Lookup("interactive"))
}
