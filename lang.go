package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// LangFailure tells the processor what to do when it cannot speak the
// requested language.
type LangFailure int

const (
	// FailureChangeVoice switches to a voice that can speak the language.
	FailureChangeVoice LangFailure = iota
	// FailureIgnoreText skips the contained text.
	FailureIgnoreText
	// FailureIgnoreLang speaks the text in the surrounding language.
	FailureIgnoreLang
	// FailureProcessorChoice leaves the behavior to the processor.
	FailureProcessorChoice
)

func (f LangFailure) String() string {
	switch f {
	case FailureIgnoreText:
		return "ignoretext"
	case FailureIgnoreLang:
		return "ignorelang"
	case FailureProcessorChoice:
		return "processorchoice"
	default:
		return "changevoice"
	}
}

// Lang changes the natural language of a section of spoken content.
type Lang struct {
	language string
	failure  *LangFailure
	children []Element
}

// NewLang creates a language section, e.g. NewLang("fr-FR", ...).
func NewLang(language string, children ...Element) (*Lang, error) {
	if err := checkChildren(KindLang, children); err != nil {
		return nil, err
	}
	return &Lang{language: language, children: children}, nil
}

// Language returns the section's language tag.
func (l *Lang) Language() string { return l.language }

// WithFailureBehavior sets what the processor does when it cannot speak the
// requested language.
func (l *Lang) WithFailureBehavior(f LangFailure) *Lang {
	l.failure = &f
	return l
}

// Push appends an element to the section.
func (l *Lang) Push(el Element) error {
	if !childAllowed(KindLang, el.Kind()) {
		return &ShapeError{Parent: KindLang, Child: el.Kind()}
	}
	l.children = append(l.children, el)
	return nil
}

// Kind returns KindLang.
func (l *Lang) Kind() ElementKind { return KindLang }

// Children returns the section's content.
func (l *Lang) Children() []Element { return l.children }

func (l *Lang) attrs() []attr {
	a := []attr{{"xml:lang", Language(l.language)}}
	if l.failure != nil {
		a = append(a, attr{"onlangfailure", *l.failure})
	}
	return a
}

func (l *Lang) setAttr(name string, v Value) {
	switch name {
	case "xml:lang":
		l.language = v.String()
	case "onlangfailure":
		f := v.(LangFailure)
		l.failure = &f
	}
}

func (l *Lang) clone() Element {
	c := &Lang{language: l.language, children: cloneElements(l.children)}
	if l.failure != nil {
		f := *l.failure
		c.failure = &f
	}
	return c
}

func (l *Lang) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("lang", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindLang, l.attrs(), o); err != nil {
			return err
		}
		return serializeChildren(w, l.children, o)
	})
}
