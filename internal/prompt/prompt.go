package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Haghighatbin/echem-fairifier/internal/apperr"
	"github.com/Haghighatbin/echem-fairifier/internal/technique"
)

// Answers holds the values collected by the experiment form.
type Answers struct {
	Technique string

	WorkingElectrode   string
	ReferenceElectrode string
	CounterElectrode   string
	Electrolyte        string
	Temperature        string
	Atmosphere         string

	Creator      string
	Institution  string
	ContactEmail string
	ResearcherID string
	DocumentID   string
	License      string

	DatasetDescription string
}

// DefaultAnswers returns the values the form is prefilled with.
func DefaultAnswers() Answers {
	return Answers{
		Technique:          "CV",
		WorkingElectrode:   "Glassy carbon, 3 mm",
		ReferenceElectrode: "Ag/AgCl",
		CounterElectrode:   "Platinum wire",
		Electrolyte:        "3 mM [Fe(CN)6]³⁻/⁴⁻ in 0.1 M KNO₃",
		Temperature:        "Room temperature (20±2°C)",
		Atmosphere:         "Air",
		License:            "CC-BY-4.0",
	}
}

var (
	atmospheres = []string{"Air", "Nitrogen", "Argon", "Other"}
	licenses    = []string{"CC-BY-4.0", "CC0-1.0", "MIT", "Other"}
)

// Details returns the answers as generator detail values keyed by field name.
// Blank answers are omitted.
func (a Answers) Details() map[string]string {
	all := map[string]string{
		"working_electrode":   a.WorkingElectrode,
		"reference_electrode": a.ReferenceElectrode,
		"counter_electrode":   a.CounterElectrode,
		"electrolyte":         a.Electrolyte,
		"temperature":         a.Temperature,
		"atmosphere":          a.Atmosphere,
		"creator":             a.Creator,
		"institution":         a.Institution,
		"contact_email":       a.ContactEmail,
		"researcher_id":       a.ResearcherID,
		"document_id":         a.DocumentID,
		"license":             a.License,
	}
	out := make(map[string]string, len(all))
	for k, v := range all {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out
}

func options(values ...string) []huh.Option[string] {
	out := make([]huh.Option[string], len(values))
	for i, v := range values {
		out[i] = huh.NewOption(v, v)
	}
	return out
}

// RunExperimentForm asks for the technique, experimental setup and
// attribution, starting from the values already in a. An aborted form
// returns apperr.ErrCancelled.
func RunExperimentForm(a *Answers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Experiment Details").
				Description("Describe the measurement.\nPress Enter to keep a suggested value.").
				Next(true).
				NextLabel("Continue"),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Technique").
				Options(options(technique.List()...)...).
				Value(&a.Technique),
		),
		huh.NewGroup(
			huh.NewInput().Title("Working electrode *").Value(&a.WorkingElectrode).Validate(required),
			huh.NewInput().Title("Reference electrode *").Value(&a.ReferenceElectrode).Validate(required),
			huh.NewInput().Title("Counter electrode").Value(&a.CounterElectrode),
			huh.NewInput().Title("Electrolyte *").Value(&a.Electrolyte).Validate(required),
			huh.NewInput().Title("Temperature").Value(&a.Temperature),
			huh.NewSelect[string]().Title("Atmosphere").Options(options(atmospheres...)...).Value(&a.Atmosphere),
		),
		huh.NewGroup(
			huh.NewInput().Title("Creator").Placeholder("Full name").Value(&a.Creator),
			huh.NewInput().Title("Institution").Value(&a.Institution),
			huh.NewInput().Title("Contact email").Value(&a.ContactEmail),
			huh.NewInput().Title("ORCID iD").Placeholder("0000-0000-0000-0000").Value(&a.ResearcherID).Validate(ValidateResearcherID),
			huh.NewInput().Title("Related publication DOI").Placeholder("10.xxxx/...").Value(&a.DocumentID).Validate(ValidateDocumentID),
			huh.NewSelect[string]().Title("License").Options(options(licenses...)...).Value(&a.License),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Dataset description").
				Value(&a.DatasetDescription).
				Lines(4).
				CharLimit(1000),
		),
	)
	return run(form)
}

// RunParameterForm asks for each registry parameter of techniqueID. values
// is read for prefill (falling back to the registry default) and updated in
// place with the answers.
func RunParameterForm(techniqueID string, values map[string]string) error {
	params := technique.Parameters(techniqueID)
	if len(params) == 0 {
		return nil
	}

	store := make([]string, len(params))
	fields := make([]huh.Field, 0, len(params))
	for i, p := range params {
		store[i] = p.DefaultString()
		if v, ok := values[p.Name]; ok {
			store[i] = v
		}
		fields = append(fields, huh.NewInput().
			Title(paramTitle(p)).
			Description(p.Description).
			Value(&store[i]).
			Validate(ValidateParameter(p)))
	}

	if err := run(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		return err
	}
	for i, p := range params {
		values[p.Name] = store[i]
	}
	return nil
}

func paramTitle(p technique.Parameter) string {
	title := p.Name
	if p.Unit != "" {
		title += fmt.Sprintf(" (%s)", p.Unit)
	}
	if r := p.RangeString(); r != "" {
		title += " " + r
	}
	return title
}

func run(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return apperr.ErrCancelled
		}
		return err
	}
	return nil
}
