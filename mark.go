package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Mark places a named marker in the synthesized output stream. Services that
// report timing events reference marks by name. Marks are leaf elements.
//
// Azure spells this element "bookmark" with a "mark" attribute; every other
// flavor uses "mark" with a "name" attribute.
type Mark struct {
	name string
}

// NewMark creates a marker with the given name.
func NewMark(name string) *Mark {
	return &Mark{name: name}
}

// Name returns the marker name.
func (m *Mark) Name() string { return m.name }

// Kind returns KindMark.
func (m *Mark) Kind() ElementKind { return KindMark }

// Children returns nil; marks are leaves.
func (m *Mark) Children() []Element { return nil }

func (m *Mark) attrs() []attr {
	return []attr{{"name", String(m.name)}}
}

func (m *Mark) setAttr(name string, v Value) {
	if name == "name" {
		m.name = string(v.(String))
	}
}

func (m *Mark) clone() Element {
	c := *m
	return &c
}

func (m *Mark) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	if o.Flavor == MicrosoftAzure {
		return w.Element("bookmark", func(w *xmlwriter.Writer) error {
			return w.Attr("mark", m.name)
		})
	}
	return w.Element("mark", func(w *xmlwriter.Writer) error {
		return w.Attr("name", m.name)
	})
}
