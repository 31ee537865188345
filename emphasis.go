package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Emphasis stresses the contained text. Content stays below the
// paragraph/sentence level.
type Emphasis struct {
	level    EmphasisLevel
	children []Element
}

// NewEmphasis creates an emphasis section at the given level.
func NewEmphasis(level EmphasisLevel, children ...Element) (*Emphasis, error) {
	if err := checkChildren(KindEmphasis, children); err != nil {
		return nil, err
	}
	return &Emphasis{level: level, children: children}, nil
}

// Level returns the emphasis level.
func (e *Emphasis) Level() EmphasisLevel { return e.level }

// Push appends an element to the section.
func (e *Emphasis) Push(el Element) error {
	if !childAllowed(KindEmphasis, el.Kind()) {
		return &ShapeError{Parent: KindEmphasis, Child: el.Kind()}
	}
	e.children = append(e.children, el)
	return nil
}

// Kind returns KindEmphasis.
func (e *Emphasis) Kind() ElementKind { return KindEmphasis }

// Children returns the section's content.
func (e *Emphasis) Children() []Element { return e.children }

func (e *Emphasis) attrs() []attr {
	return []attr{{"level", e.level}}
}

func (e *Emphasis) setAttr(name string, v Value) {
	if name == "level" {
		e.level = v.(EmphasisLevel)
	}
}

func (e *Emphasis) clone() Element {
	return &Emphasis{level: e.level, children: cloneElements(e.children)}
}

func (e *Emphasis) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("emphasis", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindEmphasis, e.attrs(), o); err != nil {
			return err
		}
		return serializeChildren(w, e.children, o)
	})
}
