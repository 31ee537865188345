package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Break is a pause in speech, described by a prosodic strength, an explicit
// duration, or neither (processor default). Breaks are leaf elements in every
// flavor.
type Break struct {
	strength *BreakStrength
	time     *TimeDesignation
}

// NewBreak creates a break with processor-default timing.
func NewBreak() *Break {
	return &Break{}
}

// WithStrength sets the break's prosodic strength.
func (b *Break) WithStrength(s BreakStrength) *Break {
	b.strength = &s
	return b
}

// WithTime sets the break's explicit duration.
func (b *Break) WithTime(t TimeDesignation) *Break {
	b.time = &t
	return b
}

// Kind returns KindBreak.
func (b *Break) Kind() ElementKind { return KindBreak }

// Children returns nil; breaks are leaves.
func (b *Break) Children() []Element { return nil }

func (b *Break) attrs() []attr {
	var a []attr
	if b.strength != nil {
		a = append(a, attr{"strength", *b.strength})
	}
	if b.time != nil {
		a = append(a, attr{"time", *b.time})
	}
	return a
}

func (b *Break) setAttr(name string, v Value) {
	switch name {
	case "strength":
		s := v.(BreakStrength)
		b.strength = &s
	case "time":
		t := v.(TimeDesignation)
		b.time = &t
	}
}

func (b *Break) clone() Element {
	c := *b
	if b.strength != nil {
		s := *b.strength
		c.strength = &s
	}
	if b.time != nil {
		t := *b.time
		c.time = &t
	}
	return &c
}

func (b *Break) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("break", func(w *xmlwriter.Writer) error {
		return writeAttrs(w, KindBreak, b.attrs(), o)
	})
}
