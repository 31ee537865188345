package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Paragraph marks a paragraph of spoken text. Paragraphs may contain
// sentences but never other paragraphs.
type Paragraph struct {
	children []Element
}

// NewParagraph creates a paragraph around the given content.
func NewParagraph(children ...Element) (*Paragraph, error) {
	if err := checkChildren(KindParagraph, children); err != nil {
		return nil, err
	}
	return &Paragraph{children: children}, nil
}

// Push appends an element to the paragraph.
func (p *Paragraph) Push(el Element) error {
	if !childAllowed(KindParagraph, el.Kind()) {
		return &ShapeError{Parent: KindParagraph, Child: el.Kind()}
	}
	p.children = append(p.children, el)
	return nil
}

// Kind returns KindParagraph.
func (p *Paragraph) Kind() ElementKind { return KindParagraph }

// Children returns the paragraph's content.
func (p *Paragraph) Children() []Element { return p.children }

func (p *Paragraph) attrs() []attr { return nil }

func (p *Paragraph) setAttr(string, Value) {}

func (p *Paragraph) clone() Element {
	return &Paragraph{children: cloneElements(p.children)}
}

func (p *Paragraph) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("p", func(w *xmlwriter.Writer) error {
		return serializeChildren(w, p.children, o)
	})
}

// Sentence marks a sentence of spoken text. Content stays below the
// paragraph/sentence level.
type Sentence struct {
	children []Element
}

// NewSentence creates a sentence around the given content.
func NewSentence(children ...Element) (*Sentence, error) {
	if err := checkChildren(KindSentence, children); err != nil {
		return nil, err
	}
	return &Sentence{children: children}, nil
}

// Push appends an element to the sentence.
func (s *Sentence) Push(el Element) error {
	if !childAllowed(KindSentence, el.Kind()) {
		return &ShapeError{Parent: KindSentence, Child: el.Kind()}
	}
	s.children = append(s.children, el)
	return nil
}

// Kind returns KindSentence.
func (s *Sentence) Kind() ElementKind { return KindSentence }

// Children returns the sentence's content.
func (s *Sentence) Children() []Element { return s.children }

func (s *Sentence) attrs() []attr { return nil }

func (s *Sentence) setAttr(string, Value) {}

func (s *Sentence) clone() Element {
	return &Sentence{children: cloneElements(s.children)}
}

func (s *Sentence) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("s", func(w *xmlwriter.Writer) error {
		return serializeChildren(w, s.children, o)
	})
}
