package metadata

import "strings"

// Key is a dotted path into the mapping view of a Record
// (for example "experimental_setup.electrolyte").
type Key string

func (k Key) String() string { return string(k) }

// Segments splits the key on dots.
func (k Key) Segments() []string { return strings.Split(string(k), ".") }

// Label is the last path segment with underscores replaced by spaces.
func (k Key) Label() string {
	segs := k.Segments()
	return strings.ReplaceAll(segs[len(segs)-1], "_", " ")
}

const (
	ID            Key = "id"
	CreatedAt     Key = "created_at"
	SchemaVersion Key = "schema_version"

	TechniqueName        Key = "technique.name"
	TechniqueDescription Key = "technique.description"
	TechniqueParameters  Key = "technique.parameters"

	WorkingElectrode   Key = "experimental_setup.working_electrode"
	ReferenceElectrode Key = "experimental_setup.reference_electrode"
	CounterElectrode   Key = "experimental_setup.counter_electrode"
	Electrolyte        Key = "experimental_setup.electrolyte"
	Temperature        Key = "experimental_setup.temperature"
	Atmosphere         Key = "experimental_setup.atmosphere"

	DatasetFilename    Key = "dataset.filename"
	DatasetFormat      Key = "dataset.format"
	DatasetDescription Key = "dataset.description"
	DatasetChecksum    Key = "dataset.checksum"

	Creator       Key = "attribution.creator"
	Institution   Key = "attribution.institution"
	ContactEmail  Key = "attribution.contact_email"
	ResearcherID  Key = "attribution.researcher_id"
	DocumentID    Key = "attribution.document_id"
	FundingSource Key = "attribution.funding_source"

	UniqueIdentifier   Key = "compliance.findable.unique_identifier"
	MetadataStandard   Key = "compliance.findable.metadata_standard"
	AccessProtocol     Key = "compliance.accessible.access_protocol"
	MetadataVocabulary Key = "compliance.interoperable.metadata_vocabulary"
	License            Key = "compliance.reusable.license"

	Enrichment Key = "vocabulary_enrichment"
	TermsUsed  Key = "vocabulary_enrichment.terms_used"
)

// SetupKeys lists the experimental-setup fields in record order.
var SetupKeys = []Key{WorkingElectrode, ReferenceElectrode, CounterElectrode, Electrolyte, Temperature, Atmosphere}
