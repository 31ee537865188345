package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Text is a non-marked-up run of spoken text. Content is stored unescaped
// and escaped exactly once at serialization time.
type Text struct {
	text string
}

// NewText creates a spoken text node.
func NewText(text string) *Text {
	return &Text{text: text}
}

// Content returns the node's unescaped text.
func (t *Text) Content() string { return t.text }

// Kind returns KindText.
func (t *Text) Kind() ElementKind { return KindText }

// Children returns nil; text nodes are leaves.
func (t *Text) Children() []Element { return nil }

func (t *Text) attrs() []attr { return nil }

func (t *Text) setAttr(string, Value) {}

func (t *Text) clone() Element {
	c := *t
	return &c
}

func (t *Text) serializeXML(w *xmlwriter.Writer, _ *SerializeOptions) error {
	return w.Text(t.text)
}
