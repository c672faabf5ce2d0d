package metadata

// FieldSpec is a first-class definition of a checklist field:
// - where it lives in the record
// - how it contributes to completeness
// - how its presence is detected
type FieldSpec struct {
	Key      Key
	Label    string
	Weight   float64
	Required bool

	// Present overrides the default View.Present check when set.
	Present func(View) bool
}

// IsPresent reports whether the field is set in v.
func (s FieldSpec) IsPresent(v View) bool {
	if s.Present != nil {
		return s.Present(v)
	}
	return v.Present(s.Key)
}

var registry = []FieldSpec{
	{Key: TechniqueName, Label: "Technique name", Weight: 1, Required: true},
	{Key: WorkingElectrode, Label: "Working electrode", Weight: 1, Required: true},
	{Key: ReferenceElectrode, Label: "Reference electrode", Weight: 1, Required: true},
	{Key: Electrolyte, Label: "Electrolyte", Weight: 1, Required: true},
	{Key: DatasetFilename, Label: "Dataset filename", Weight: 1, Required: true},

	{Key: Creator, Label: "Creator name", Weight: 1},
	{Key: Institution, Label: "Institution", Weight: 1},
	{Key: Temperature, Label: "Temperature", Weight: 1},
	{Key: TechniqueParameters, Label: "Technique parameters", Weight: 1},
	{Key: License, Label: "License", Weight: 1},
	{Key: DocumentID, Label: "Related publication", Weight: 1},
}

// Registry returns the completeness checklist: required fields first, then
// recommended ones. The returned slice is a copy.
func Registry() []FieldSpec {
	return append([]FieldSpec(nil), registry...)
}
