package ssml

import (
	"strconv"
	"strings"

	"github.com/dgnsrekt/ssml/internal/xmlwriter"
)

// ElementKind identifies an element type independent of any flavor.
type ElementKind string

const (
	// KindSpeak is the root container of a document.
	KindSpeak ElementKind = "speak"
	// KindText is a plain text node.
	KindText ElementKind = "#text"
	// KindRaw is an unescaped markup passthrough node.
	KindRaw ElementKind = "#raw"
	// KindGroup is a transparent grouping of elements with no markup of its own.
	KindGroup ElementKind = "#group"
	// KindBreak is a pause in speech.
	KindBreak ElementKind = "break"
	// KindEmphasis stresses the contained text.
	KindEmphasis ElementKind = "emphasis"
	// KindProsody controls pitch, rate and volume of the contained text.
	KindProsody ElementKind = "prosody"
	// KindSayAs hints how the contained text should be read.
	KindSayAs ElementKind = "say-as"
	// KindAudio inserts recorded audio.
	KindAudio ElementKind = "audio"
	// KindVoice selects the voice for the contained text.
	KindVoice ElementKind = "voice"
	// KindParagraph marks a paragraph.
	KindParagraph ElementKind = "p"
	// KindSentence marks a sentence.
	KindSentence ElementKind = "s"
	// KindMark places a named marker in the output stream.
	KindMark ElementKind = "mark"
	// KindLang changes the natural language of the contained text.
	KindLang ElementKind = "lang"
	// KindExpress changes the speaking style of the contained text
	// (Azure mstts extension).
	KindExpress ElementKind = "mstts:express-as"
)

// attr is a single (name, typed value) attribute as exposed to the validator
// and serializer. The name is the wire name.
type attr struct {
	name  string
	value Value
}

// Element is a node in an SSML document tree. Implementations are the
// concrete element types in this package; the interface is sealed.
type Element interface {
	// Kind returns the element's kind.
	Kind() ElementKind

	// Children returns the element's child nodes in document order, or nil
	// for leaf elements.
	Children() []Element

	// attrs returns the attributes present on the element, in canonical
	// (definition) order.
	attrs() []attr

	// setAttr replaces the value of a present attribute with a normalized
	// one. Called only with names previously returned by attrs.
	setAttr(name string, v Value)

	// clone returns a deep copy of the element.
	clone() Element

	serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error
}

// Path locates a node in a document: a sequence of child indices starting at
// the root container.
type Path []int

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func (p Path) child(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

func cloneElements(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el.clone()
	}
	return out
}

func serializeChildren(w *xmlwriter.Writer, els []Element, o *SerializeOptions) error {
	for _, el := range els {
		if err := el.serializeXML(w, o); err != nil {
			return err
		}
	}
	return nil
}
