package metadata

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Haghighatbin/echem-fairifier/internal/technique"
)

// Options configures the values a Generator fills in when the caller does
// not declare them.
type Options struct {
	SchemaVersion      string
	MetadataStandard   string
	MetadataVocabulary string
	AccessProtocol     string
	DataFormatStandard string
	Provenance         string
	QualityAssessment  string
	// License applies when the experimental details declare none. Empty by
	// default: a license is never invented.
	License string

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// DefaultOptions returns the generator defaults.
func DefaultOptions() Options {
	return Options{
		SchemaVersion:      "1.0.0",
		MetadataStandard:   "EChem-FAIR v1.0",
		MetadataVocabulary: "EMMO Electrochemistry Domain",
		AccessProtocol:     "HTTP download",
		DataFormatStandard: "RFC 4180 delimited text",
		Provenance:         "Metadata generated by echemfair from user-declared experimental details",
		QualityAssessment:  "Checked against the EChem-FAIR schema and technique plausibility rules",
	}
}

// DatasetInfo describes the data file a record is about.
type DatasetInfo struct {
	Filename    string
	Format      string
	SizeBytes   int64
	Description string
	Encoding    string
	Checksum    string
}

// Generator builds metadata records.
type Generator struct {
	opts Options
}

// NewGenerator returns a Generator. Zero-valued Now and NewID fall back to
// the wall clock and random UUIDs.
func NewGenerator(opts Options) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Generator{opts: opts}
}

func (g *Generator) stamp(r *Record) {
	r.ID = g.opts.NewID()
	r.CreatedAt = g.opts.Now().UTC().Format(time.RFC3339)
	r.SchemaVersion = g.opts.SchemaVersion
}

// CreateMinimal builds the smallest record: technique name and parameters as
// given, the dataset filename and a fresh id and timestamp. Parameters are
// not checked against the registry.
func (g *Generator) CreateMinimal(techniqueID string, params map[string]any, filename string) *Record {
	r := &Record{}
	g.stamp(r)
	r.Technique = Technique{
		Name:       strings.TrimSpace(techniqueID),
		Parameters: NormalizeParameters(params),
	}
	r.Dataset.Filename = strings.TrimSpace(filename)
	logf(r.ID, "minimal record for %s (%d parameters)", r.Technique.Name, len(r.Technique.Parameters))
	return r
}

// Generate builds a full record. It never fails: missing optional values are
// omitted and missing required ones are left for validation to report.
//
// details carries experimental-setup, attribution and compliance values keyed
// by their field names (working_electrode, creator, license, …). The aliases
// orcid, publication_doi and doi are accepted.
func (g *Generator) Generate(techniqueID string, params map[string]any, details map[string]string, dataset DatasetInfo) *Record {
	d := normalizeDetails(details)
	name := strings.TrimSpace(techniqueID)

	r := &Record{}
	g.stamp(r)

	r.Technique = Technique{Name: name, Parameters: NormalizeParameters(params)}
	if def, ok := technique.Lookup(name); ok {
		r.Technique.Description = def.Description
	}

	r.ExperimentalSetup = Setup{
		WorkingElectrode:   d["working_electrode"],
		ReferenceElectrode: d["reference_electrode"],
		CounterElectrode:   d["counter_electrode"],
		Electrolyte:        d["electrolyte"],
		Temperature:        d["temperature"],
		Atmosphere:         d["atmosphere"],
	}

	r.Dataset = Dataset{
		Filename:    strings.TrimSpace(dataset.Filename),
		Format:      datasetFormat(dataset.Format, dataset.Filename),
		SizeBytes:   dataset.SizeBytes,
		Description: strings.TrimSpace(dataset.Description),
		Encoding:    strings.TrimSpace(dataset.Encoding),
		Checksum:    strings.TrimSpace(dataset.Checksum),
	}

	r.Attribution = Attribution{
		Creator:       d["creator"],
		Institution:   d["institution"],
		ContactEmail:  d["contact_email"],
		ResearcherID:  d["researcher_id"],
		DocumentID:    d["document_id"],
		FundingSource: d["funding_source"],
	}

	r.Compliance = Compliance{
		Findable: Findable{
			UniqueIdentifier: r.ID,
			MetadataStandard: g.opts.MetadataStandard,
		},
		Accessible: Accessible{
			AccessProtocol: firstNonEmpty(d["access_protocol"], g.opts.AccessProtocol),
			Format:         r.Dataset.Format,
		},
		Interoperable: Interoperable{
			MetadataVocabulary: g.opts.MetadataVocabulary,
			DataFormatStandard: g.opts.DataFormatStandard,
		},
		Reusable: Reusable{
			License:           firstNonEmpty(d["license"], g.opts.License),
			Provenance:        g.opts.Provenance,
			QualityAssessment: g.opts.QualityAssessment,
		},
	}

	logf(r.ID, "generated %s record for %q", displayName(name), r.Dataset.Filename)
	return r
}

var detailAliases = map[string]string{
	"orcid":           "researcher_id",
	"publication_doi": "document_id",
	"doi":             "document_id",
}

var knownDetails = map[string]bool{
	"working_electrode": true, "reference_electrode": true, "counter_electrode": true,
	"electrolyte": true, "temperature": true, "atmosphere": true,
	"creator": true, "institution": true, "contact_email": true,
	"researcher_id": true, "document_id": true, "funding_source": true,
	"license": true, "access_protocol": true,
}

func normalizeDetails(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := strings.ToLower(strings.TrimSpace(k))
		if alias, ok := detailAliases[key]; ok {
			key = alias
		}
		if !knownDetails[key] {
			logf("", "ignoring unknown detail %q", k)
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		// The canonical key wins over an alias.
		if _, exists := out[key]; exists && key != strings.ToLower(strings.TrimSpace(k)) {
			continue
		}
		out[key] = v
	}
	return out
}

// Only extensions naming another open format override the CSV default.
var extFormats = map[string]string{
	".tsv":  "TSV",
	".json": "JSON",
}

func datasetFormat(declared, filename string) string {
	if f := strings.TrimSpace(declared); f != "" {
		return strings.ToUpper(f)
	}
	if f, ok := extFormats[strings.ToLower(filepath.Ext(filename))]; ok {
		return f
	}
	return "CSV"
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func displayName(s string) string {
	if s == "" {
		return "(unnamed)"
	}
	return s
}
