package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Check is one row of the FAIR checklist. Each check is worth one point.
type Check struct {
	Principle string // F, A, I or R
	ID        string
	Test      func(metadata.View) bool
	Pass      string
	Fail      string
	// Detail, when set, is substituted into Pass with %s.
	Detail metadata.Key
}

func present(keys ...metadata.Key) func(metadata.View) bool {
	return func(v metadata.View) bool {
		for _, k := range keys {
			if !v.Present(k) {
				return false
			}
		}
		return true
	}
}

var openFormats = []string{"CSV", "JSON", "TSV"}

func openFormat(v metadata.View) bool {
	f, ok := v.String(metadata.DatasetFormat)
	return ok && slices.Contains(openFormats, strings.ToUpper(f))
}

var checklist = []Check{
	{"F", "F1", present(metadata.ID), "F1: Unique identifier present", "F1: Missing unique identifier", ""},
	{"F", "F2", present(metadata.Creator), "F2: Creator information provided", "F2: Consider adding creator information", ""},
	{"F", "F3", present(metadata.TechniqueName, metadata.TechniqueDescription), "F3: Rich metadata with technique details", "F3: Add more descriptive metadata", ""},
	{"F", "F4", present(metadata.TermsUsed), "F4: Uses controlled vocabulary (EMMO)", "F4: Consider using EMMO vocabulary for better findability", ""},

	{"A", "A1", openFormat, "A1: Data in open format", "A1: Consider using open data formats", ""},
	{"A", "A2", present(metadata.AccessProtocol), "A2: Access protocol specified", "A2: Specify how data can be accessed", ""},

	{"I", "I1", present(metadata.SchemaVersion), "I1: Uses standard metadata schema", "I1: Declare the metadata schema version", ""},
	{"I", "I2", present(metadata.MetadataVocabulary), "I2: Metadata vocabulary specified", "I2: Specify metadata vocabulary used", ""},

	{"R", "R1", present(metadata.License), "R1: License specified (%s)", "R1: Specify data license for reusability", metadata.License},
	{"R", "R2", present(metadata.Institution), "R2: Institutional provenance provided", "R2: Add institutional information", ""},
	{"R", "R3", present(metadata.DocumentID), "R3: Linked to publication", "R3: Link to related publications if available", ""},
}

// Checklist returns a copy of the FAIR checklist in evaluation order.
func Checklist() []Check {
	return slices.Clone(checklist)
}

// FAIR scores m against the checklist. Passed checks add an info line,
// failed checks a warning; FAIRScore is points earned over checks run.
func FAIR(m map[string]any) Report {
	v := metadata.NewView(m)
	var r Report
	earned := 0
	for _, c := range checklist {
		if !c.Test(v) {
			r.Warnings = append(r.Warnings, c.Fail)
			continue
		}
		earned++
		msg := c.Pass
		if c.Detail != "" {
			detail, _ := v.String(c.Detail)
			msg = fmt.Sprintf(c.Pass, detail)
		}
		r.Info = append(r.Info, msg)
	}
	r.FAIRScore = float64(earned) / float64(len(checklist))
	return r
}
