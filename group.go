package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Group bundles elements together without emitting any markup of its own.
// Useful for passing several elements around as one value.
type Group struct {
	children []Element
}

// NewGroup creates a transparent grouping of elements.
func NewGroup(children ...Element) (*Group, error) {
	if err := checkChildren(KindGroup, children); err != nil {
		return nil, err
	}
	return &Group{children: children}, nil
}

// Push appends an element to the group.
func (g *Group) Push(el Element) error {
	if !childAllowed(KindGroup, el.Kind()) {
		return &ShapeError{Parent: KindGroup, Child: el.Kind()}
	}
	g.children = append(g.children, el)
	return nil
}

// Kind returns KindGroup.
func (g *Group) Kind() ElementKind { return KindGroup }

// Children returns the grouped elements.
func (g *Group) Children() []Element { return g.children }

func (g *Group) attrs() []attr { return nil }

func (g *Group) setAttr(string, Value) {}

func (g *Group) clone() Element {
	return &Group{children: cloneElements(g.children)}
}

func (g *Group) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return serializeChildren(w, g.children, o)
}
