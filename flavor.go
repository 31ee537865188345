package ssml

// Flavor selects the SSML dialect of a specific target speech service.
// Validation and serialization are driven by the flavor's capability table.
type Flavor int

const (
	// Generic is vendor-neutral SSML. Its capability table rejects only
	// vendor-namespaced elements; everything standard passes through.
	Generic Flavor = iota
	// MicrosoftAzure targets Azure Cognitive Services speech synthesis.
	// Adds the synthesis and mstts namespaces to the document root.
	MicrosoftAzure
	// GoogleCloud targets Google Cloud Text-to-Speech.
	GoogleCloud
	// AmazonPolly targets Amazon Polly standard voices.
	AmazonPolly
	// PykeSongbird targets the pyke Songbird engine.
	PykeSongbird
)

var flavorNames = map[Flavor]string{
	Generic:        "generic",
	MicrosoftAzure: "azure",
	GoogleCloud:    "google",
	AmazonPolly:    "amazon-polly",
	PykeSongbird:   "pyke-songbird",
}

// Flavors lists every known flavor.
func Flavors() []Flavor {
	return []Flavor{Generic, MicrosoftAzure, GoogleCloud, AmazonPolly, PykeSongbird}
}

func (f Flavor) String() string {
	if n, ok := flavorNames[f]; ok {
		return n
	}
	return "unknown"
}
