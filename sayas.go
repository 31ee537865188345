package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// SayAs hints how a span of text should be read out: spelled, as a number,
// as a date, and so on. It contains text only.
type SayAs struct {
	interpretAs InterpretAs
	format      string
	detail      string
	text        string
}

// NewSayAs creates a say-as span around text.
func NewSayAs(interpretAs InterpretAs, text string) *SayAs {
	return &SayAs{interpretAs: interpretAs, text: text}
}

// WithFormat sets the interpretation format, e.g. "mdy" for dates.
func (s *SayAs) WithFormat(format string) *SayAs {
	s.format = format
	return s
}

// WithDetail sets the interpretation detail level.
func (s *SayAs) WithDetail(detail string) *SayAs {
	s.detail = detail
	return s
}

// Kind returns KindSayAs.
func (s *SayAs) Kind() ElementKind { return KindSayAs }

// Children returns nil; the contained text is exposed via Content.
func (s *SayAs) Children() []Element { return nil }

// Content returns the unescaped contained text.
func (s *SayAs) Content() string { return s.text }

func (s *SayAs) attrs() []attr {
	a := []attr{{"interpret-as", s.interpretAs}}
	if s.format != "" {
		a = append(a, attr{"format", String(s.format)})
	}
	if s.detail != "" {
		a = append(a, attr{"detail", String(s.detail)})
	}
	return a
}

func (s *SayAs) setAttr(name string, v Value) {
	switch name {
	case "interpret-as":
		s.interpretAs = v.(InterpretAs)
	case "format":
		s.format = string(v.(String))
	case "detail":
		s.detail = string(v.(String))
	}
}

func (s *SayAs) clone() Element {
	c := *s
	return &c
}

func (s *SayAs) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("say-as", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindSayAs, s.attrs(), o); err != nil {
			return err
		}
		return w.Text(s.text)
	})
}
