package ssml

import (
	"io"
	"strings"

	"github.com/dgnsrekt/ssml/internal/xmlwriter"
)

// SerializeOptions controls how a document renders.
type SerializeOptions struct {
	// Flavor selects the target dialect.
	Flavor Flavor

	// Pretty emits tab-indented output with one node per line. Compact
	// output (the default) is what services expect on the wire.
	Pretty bool

	// SkipValidation serializes the document as-is. The output may then
	// contain constructs the flavor rejects; callers are expected to
	// validate first.
	SkipValidation bool
}

// Serialize validates the document against opts.Flavor and writes its markup
// to w. Validation failures are wrapped in a *SerializeError. Set
// opts.SkipValidation to render an already-validated (or deliberately
// unchecked) tree.
func (d *Document) Serialize(w io.Writer, opts *SerializeOptions) error {
	if opts == nil {
		opts = &SerializeOptions{}
	}
	target := d
	if !opts.SkipValidation {
		v, err := Validate(d, opts.Flavor)
		if err != nil {
			return &SerializeError{Err: err}
		}
		target = v.doc
	}
	return target.serializeXML(xmlwriter.New(w, opts.Pretty), opts)
}

// SerializeToString validates the document against flavor and returns its
// compact markup.
//
//	doc := ssml.Speak("en-US", "Hello, world!")
//	out, err := doc.SerializeToString(ssml.AmazonPolly)
//	// out == `<speak xml:lang="en-US">Hello, world! </speak>`
func (d *Document) SerializeToString(flavor Flavor) (string, error) {
	var b strings.Builder
	if err := d.Serialize(&b, &SerializeOptions{Flavor: flavor}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeAttrs emits attributes in canonical order, dropping values the
// flavor's capability table marks as omittable defaults.
func writeAttrs(w *xmlwriter.Writer, kind ElementKind, attrs []attr, o *SerializeOptions) error {
	for _, a := range attrs {
		r := capability(o.Flavor, kind, a.name)
		if r.omitDefault != "" && a.value.String() == r.omitDefault {
			continue
		}
		if err := w.Attr(a.name, a.value.String()); err != nil {
			return err
		}
	}
	return nil
}
