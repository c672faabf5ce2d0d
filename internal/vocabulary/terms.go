package vocabulary

// OntologyIRI identifies the ontology every embedded term belongs to.
const OntologyIRI = "https://w3id.org/emmo/domain/electrochemistry"

const iriPrefix = OntologyIRI + "#electrochemistry_"

// Category groups terms for suggestion filtering.
type Category string

const (
	Techniques   Category = "techniques"
	Electrodes   Category = "electrodes"
	Materials    Category = "materials"
	Electrolytes Category = "electrolytes"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Techniques, Electrodes, Materials, Electrolytes}
}

// embedded is the offline term table, in insertion order.
var embedded = []Term{
	{
		Key:        "cyclic_voltammetry",
		IRI:        iriPrefix + "25aae0e9_a17c_4eb6_ac69_dd4264fad3d5",
		Label:      "CyclicVoltammetry",
		Definition: "A voltammetry technique where the potential swept linearly between two limits at a constant rate.",
		Synonyms:   []string{"CV", "cyclic voltammetry"},
		Categories: []Category{Techniques},
	},
	{
		Key:        "differential_pulse_voltammetry",
		IRI:        iriPrefix + "f49b84d4_e1f9_424c_bb22_8cea23c0a7d4",
		Label:      "DifferentialPulseVoltammetry",
		Definition: "A voltammetry technique where pulses of potential are applied on top of a linear sweep.",
		Synonyms:   []string{"DPV", "differential pulse voltammetry"},
		Categories: []Category{Techniques},
	},
	{
		Key:        "square_wave_voltammetry",
		IRI:        iriPrefix + "979e24bc_a0d6_4a94_ad99_46739c887dc1",
		Label:      "SquareWaveVoltammetry",
		Definition: "A voltammetry technique where a square wave potential is superimposed on a staircase waveform.",
		Synonyms:   []string{"SWV", "square wave voltammetry"},
		Categories: []Category{Techniques},
	},
	{
		Key:        "electrochemical_impedance_spectroscopy",
		IRI:        iriPrefix + "c7c8cda4_b8a4_4b1a_b0eb_58cbb1516945",
		Label:      "ElectrochemicalImpedanceSpectroscopy",
		Definition: "A technique that applies a small amplitude sinusoidal voltage perturbation to measure impedance.",
		Synonyms:   []string{"EIS", "impedance spectroscopy"},
		Categories: []Category{Techniques},
	},
	{
		Key:        "chronoamperometry",
		IRI:        iriPrefix + "f57e2b9c_bc4c_4245_b154_7ee83e688464",
		Label:      "Chronoamperometry",
		Definition: "A technique where potential steps are applied and current response is measured vs time.",
		Synonyms:   []string{"CA", "chronoamperometry"},
		Categories: []Category{Techniques},
	},
	{
		Key:        "working_electrode",
		IRI:        iriPrefix + "fb0d9eef_92af_4628_8814_e065ca255d59",
		Label:      "WorkingElectrode",
		Definition: "The electrode at which the electrochemical reaction of interest occurs.",
		Synonyms:   []string{"WE", "working electrode"},
		Categories: []Category{Electrodes},
	},
	{
		Key:        "reference_electrode",
		IRI:        iriPrefix + "8e3bd7c7_681b_4f50_8ac5_f3dad6312ff4",
		Label:      "ReferenceElectrode",
		Definition: "An electrode with a stable and well-known electrode potential.",
		Synonyms:   []string{"RE", "reference electrode"},
		Categories: []Category{Electrodes},
	},
	{
		Key:        "counter_electrode",
		IRI:        iriPrefix + "4bd89acc_d5ee_4dae_8bb0_bf9e5de43fbd",
		Label:      "CounterElectrode",
		Definition: "An electrode used to complete the electrical circuit in an electrochemical cell.",
		Synonyms:   []string{"CE", "auxiliary electrode", "counter electrode"},
		Categories: []Category{Electrodes},
	},
	{
		Key:        "glassy_carbon",
		IRI:        iriPrefix + "3f70e5de_fa27_46a4_b201_92d0e6b5ab7a",
		Label:      "GlassyCarbon",
		Definition: "A non-graphitising carbon with a glass-like structure.",
		Synonyms:   []string{"GC", "vitreous carbon"},
		Categories: []Category{Materials},
	},
	{
		Key:        "platinum",
		IRI:        iriPrefix + "1b827d8b_47e4_4f5a_a49e_4ad3fb28d559",
		Label:      "Platinum",
		Definition: "A precious metal electrode material with high chemical stability.",
		Synonyms:   []string{"Pt", "platinum"},
		Categories: []Category{Materials},
	},
	{
		Key:        "potassium_nitrate",
		IRI:        iriPrefix + "5e8b6d8c_3d60_4186_8b47_0c80b154b0a9",
		Label:      "PotassiumNitrate",
		Definition: "An ionic compound with formula KNO3, commonly used as supporting electrolyte.",
		Synonyms:   []string{"KNO3", "potassium nitrate"},
		Categories: []Category{Electrolytes},
	},
}

// abbreviations is consulted after key and synonym lookup.
var abbreviations = map[string]string{
	"cv":  "cyclic_voltammetry",
	"dpv": "differential_pulse_voltammetry",
	"swv": "square_wave_voltammetry",
	"eis": "electrochemical_impedance_spectroscopy",
	"ca":  "chronoamperometry",
}
