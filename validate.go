package ssml

import (
	"io"
	"strings"

	"golang.org/x/text/language"
)

// ValidatedDocument is a document that passed validation against one flavor,
// with that flavor's normalizations (clamped ranges) already applied. The
// wrapped tree is a private copy; the original document is untouched.
type ValidatedDocument struct {
	doc    *Document
	flavor Flavor
}

// Document returns the normalized tree.
func (v *ValidatedDocument) Document() *Document { return v.doc }

// Flavor returns the flavor the document was validated against.
func (v *ValidatedDocument) Flavor() Flavor { return v.flavor }

// Serialize writes the document's markup to w without re-validating.
func (v *ValidatedDocument) Serialize(w io.Writer, pretty bool) error {
	return v.doc.Serialize(w, &SerializeOptions{
		Flavor:         v.flavor,
		Pretty:         pretty,
		SkipValidation: true,
	})
}

// SerializeToString returns the document's compact markup without
// re-validating.
func (v *ValidatedDocument) SerializeToString() (string, error) {
	var b strings.Builder
	if err := v.Serialize(&b, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Validate checks doc against the flavor's capability table and returns a
// normalized deep copy. Nodes are visited in document order and the first
// violation wins; clamped values are rewritten rather than reported. doc is
// never modified, so one tree can be validated against several flavors.
func Validate(doc *Document, f Flavor) (*ValidatedDocument, error) {
	c := doc.clone()
	logger.Debug("validating document", "flavor", f)
	if err := validateAttrs(c, KindSpeak, f, nil); err != nil {
		return nil, err
	}
	if err := validateChildren(c.children, KindSpeak, f, nil); err != nil {
		return nil, err
	}
	return &ValidatedDocument{doc: c, flavor: f}, nil
}

func validateChildren(els []Element, parent ElementKind, f Flavor, path Path) error {
	for i, el := range els {
		if err := validateElement(el, parent, f, path.child(i)); err != nil {
			return err
		}
	}
	return nil
}

func validateElement(el Element, parent ElementKind, f Flavor, p Path) error {
	kind := el.Kind()
	switch kind {
	case KindText:
		return nil
	case KindRaw:
		if !el.(*Raw).allowedIn(f) {
			return &UnsupportedElementError{Flavor: f, Kind: kind, Parent: parent, Path: p}
		}
		return nil
	case KindGroup:
		// Transparent: children answer to the group's parent.
		return validateChildren(el.Children(), parent, f, p)
	}
	if !elementAllowed(f, kind, parent) {
		return &UnsupportedElementError{Flavor: f, Kind: kind, Parent: parent, Path: p}
	}
	if err := validateAttrs(el, kind, f, p); err != nil {
		return err
	}
	return validateChildren(el.Children(), kind, f, p)
}

// attrNode is the attribute surface shared by Document and Element.
type attrNode interface {
	attrs() []attr
	setAttr(name string, v Value)
}

func validateAttrs(n attrNode, kind ElementKind, f Flavor, p Path) error {
	for _, a := range n.attrs() {
		r := capability(f, kind, a.name)
		if r.unsupported {
			return &UnsupportedAttributeError{Flavor: f, Kind: kind, Attr: a.name, Path: p}
		}

		if lang, ok := a.value.(Language); ok {
			if err := checkLanguage(string(lang)); err != nil {
				return &AttributeOutOfRangeError{
					Flavor: f,
					Kind:   kind,
					Attr:   a.name,
					Value:  string(lang),
					Domain: "well-formed BCP 47 language tags",
					Path:   p,
				}
			}
		}

		switch r.policy {
		case "clamp":
			sv, ok := a.value.(scalarValue)
			if !ok {
				break
			}
			v, ok := sv.scalar()
			if !ok {
				break
			}
			clamped := v
			if r.min != nil && clamped < *r.min {
				clamped = *r.min
			}
			if r.max != nil && clamped > *r.max {
				clamped = *r.max
			}
			if clamped != v {
				logger.Debug("clamped attribute",
					"flavor", f, "element", kind, "attr", a.name,
					"from", v, "to", clamped, "path", p)
				n.setAttr(a.name, sv.withScalar(clamped))
			}
		case "reject":
			sv, ok := a.value.(scalarValue)
			if !ok {
				break
			}
			v, ok := sv.scalar()
			if !ok {
				break
			}
			if (r.min != nil && v < *r.min) || (r.max != nil && v > *r.max) {
				return &AttributeOutOfRangeError{
					Flavor: f,
					Kind:   kind,
					Attr:   a.name,
					Value:  a.value.String(),
					Domain: r.domain,
					Path:   p,
				}
			}
		case "enum":
			if !r.values[a.value.String()] {
				return &AttributeOutOfRangeError{
					Flavor: f,
					Kind:   kind,
					Attr:   a.name,
					Value:  a.value.String(),
					Domain: r.domain,
					Path:   p,
				}
			}
		}
	}
	return nil
}

// checkLanguage verifies each space-separated tag is well-formed BCP 47.
func checkLanguage(tags string) error {
	for _, t := range strings.Fields(tags) {
		if _, err := language.Parse(t); err != nil {
			return err
		}
	}
	return nil
}
