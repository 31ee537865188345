// Package ssml builds, validates and serializes Speech Synthesis Markup
// Language documents for multiple speech services.
//
// Documents are plain trees of typed elements. Build one, then serialize it
// for the flavor of the service you are targeting; validation runs first and
// applies the flavor's capability table, rejecting constructs the service
// does not accept and normalizing values it would mishandle.
//
//	doc := ssml.Speak("en-US", "Hello, world!")
//	out, err := doc.SerializeToString(ssml.AmazonPolly)
//	if err != nil {
//		// the tree uses something Polly does not support
//	}
//	// out == `<speak xml:lang="en-US">Hello, world! </speak>`
//
// Validation can also be run on its own, returning a normalized copy that
// serializes without re-checking:
//
//	v, err := ssml.Validate(doc, ssml.MicrosoftAzure)
//	if err != nil { ... }
//	out, _ := v.SerializeToString()
//
// Impossible nestings (a break inside a break, a paragraph inside a
// sentence) are rejected when the tree is built, independent of flavor.
// Everything a specific service additionally restricts is reported by
// Validate with a path to the offending node.
package ssml
