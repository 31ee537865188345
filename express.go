package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Style is a named speaking style for Express sections, with an intensity
// degree. The predefined styles carry the default degree of 1; use
// WithDegree to adjust intensity. Not every voice supports every style.
type Style struct {
	// Name is the style identifier as the service expects it.
	Name string
	// Degree is the style intensity. The Azure capability table clamps it
	// to [0.01, 2] during validation.
	Degree float64
}

// WithDegree returns the style with the given intensity degree.
func (s Style) WithDegree(degree float64) Style {
	s.Degree = degree
	return s
}

// Predefined speaking styles.
var (
	StyleAdvertisement   = Style{Name: "advertisement_upbeat", Degree: 1}
	StyleAffectionate    = Style{Name: "affectionate", Degree: 1}
	StyleAngry           = Style{Name: "angry", Degree: 1}
	StyleAssistant       = Style{Name: "assistant", Degree: 1}
	StyleCalm            = Style{Name: "calm", Degree: 1}
	StyleChat            = Style{Name: "chat", Degree: 1}
	StyleCheerful        = Style{Name: "cheerful", Degree: 1}
	StyleCustomerService = Style{Name: "customerservice", Degree: 1}
	StyleDepressed       = Style{Name: "depressed", Degree: 1}
	StyleDisgruntled     = Style{Name: "disgruntled", Degree: 1}
	StyleEmbarrassed     = Style{Name: "embarrassed", Degree: 1}
	StyleEmpathetic      = Style{Name: "empathetic", Degree: 1}
	StyleEnvious         = Style{Name: "envious", Degree: 1}
	StyleExcited         = Style{Name: "excited", Degree: 1}
	StyleFearful         = Style{Name: "fearful", Degree: 1}
	StyleFriendly        = Style{Name: "friendly", Degree: 1}
	StyleGentle          = Style{Name: "gentle", Degree: 1}
	StyleHopeful         = Style{Name: "hopeful", Degree: 1}
	StyleLyrical         = Style{Name: "lyrical", Degree: 1}
	StyleNarration       = Style{Name: "narration-professional", Degree: 1}
	StyleNewscast        = Style{Name: "newscast", Degree: 1}
	StylePoetry          = Style{Name: "poetry-reading", Degree: 1}
	StyleSad             = Style{Name: "sad", Degree: 1}
	StyleSerious         = Style{Name: "serious", Degree: 1}
	StyleShouting        = Style{Name: "shouting", Degree: 1}
	StyleTerrified       = Style{Name: "terrified", Degree: 1}
	StyleUnfriendly      = Style{Name: "unfriendly", Degree: 1}
	StyleWhispering      = Style{Name: "whispering", Degree: 1}
)

// Express changes the speaking style of a section of content. It renders as
// mstts:express-as and only MicrosoftAzure accepts it; Azure additionally
// requires it directly inside a voice section.
type Express struct {
	style    Style
	children []Element
}

// NewExpress creates an express-as section with the given style.
func NewExpress(style Style, children ...Element) (*Express, error) {
	if err := checkChildren(KindExpress, children); err != nil {
		return nil, err
	}
	if style.Degree == 0 {
		style.Degree = 1
	}
	return &Express{style: style, children: children}, nil
}

// Style returns the section's speaking style.
func (e *Express) Style() Style { return e.style }

// Push appends an element to the section.
func (e *Express) Push(el Element) error {
	if !childAllowed(KindExpress, el.Kind()) {
		return &ShapeError{Parent: KindExpress, Child: el.Kind()}
	}
	e.children = append(e.children, el)
	return nil
}

// Kind returns KindExpress.
func (e *Express) Kind() ElementKind { return KindExpress }

// Children returns the section's content.
func (e *Express) Children() []Element { return e.children }

func (e *Express) attrs() []attr {
	return []attr{
		{"style", String(e.style.Name)},
		{"styledegree", Number(e.style.Degree)},
	}
}

func (e *Express) setAttr(name string, v Value) {
	switch name {
	case "style":
		e.style.Name = string(v.(String))
	case "styledegree":
		e.style.Degree = float64(v.(Number))
	}
}

func (e *Express) clone() Element {
	return &Express{style: e.style, children: cloneElements(e.children)}
}

func (e *Express) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("mstts:express-as", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindExpress, e.attrs(), o); err != nil {
			return err
		}
		return serializeChildren(w, e.children, o)
	})
}
