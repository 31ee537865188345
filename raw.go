package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Raw writes markup into the document verbatim, with no escaping. It exists
// for vendor constructs this package does not model; use Text for spoken
// content.
type Raw struct {
	markup   string
	name     string
	restrict []Flavor
}

// NewRaw creates a raw markup node.
func NewRaw(markup string) *Raw {
	return &Raw{markup: markup}
}

// WithName attaches a diagnostic name used in error messages.
func (r *Raw) WithName(name string) *Raw {
	r.name = name
	return r
}

// WithRestrictFlavor limits the node to the given flavors. Validation against
// any other flavor fails with an UnsupportedElementError.
func (r *Raw) WithRestrictFlavor(flavors ...Flavor) *Raw {
	r.restrict = flavors
	return r
}

// Name returns the node's diagnostic name, if any.
func (r *Raw) Name() string { return r.name }

// Kind returns KindRaw.
func (r *Raw) Kind() ElementKind { return KindRaw }

// Children returns nil; raw nodes are leaves.
func (r *Raw) Children() []Element { return nil }

func (r *Raw) attrs() []attr { return nil }

func (r *Raw) setAttr(string, Value) {}

func (r *Raw) allowedIn(f Flavor) bool {
	if r.restrict == nil {
		return true
	}
	for _, rf := range r.restrict {
		if rf == f {
			return true
		}
	}
	return false
}

func (r *Raw) clone() Element {
	c := *r
	c.restrict = append([]Flavor(nil), r.restrict...)
	return &c
}

func (r *Raw) serializeXML(w *xmlwriter.Writer, _ *SerializeOptions) error {
	return w.Raw(r.markup)
}
