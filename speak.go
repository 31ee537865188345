package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Document is the root speak container of an SSML document. A document owns
// its children; it is built by one goroutine, then handed to validation and
// serialization.
type Document struct {
	lang      string
	startMark string
	endMark   string
	children  []Element
}

// Speak creates a document with plain text children. lang is the language of
// the spoken text, e.g. "en-US"; pass "" to leave it unset (Azure requires
// it).
func Speak(lang string, text ...string) *Document {
	d := &Document{lang: lang}
	for _, t := range text {
		d.children = append(d.children, NewText(t))
	}
	return d
}

// NewDocument creates a document with the given children.
func NewDocument(lang string, children ...Element) (*Document, error) {
	if err := checkChildren(KindSpeak, children); err != nil {
		return nil, err
	}
	return &Document{lang: lang, children: children}, nil
}

// Lang returns the document's language tag, or "" if unset.
func (d *Document) Lang() string { return d.lang }

// SetLang sets the document's language tag.
func (d *Document) SetLang(lang string) { d.lang = lang }

// WithStartMark asks the service to start synthesis at the named mark.
func (d *Document) WithStartMark(mark string) *Document {
	d.startMark = mark
	return d
}

// WithEndMark asks the service to end synthesis at the named mark.
func (d *Document) WithEndMark(mark string) *Document {
	d.endMark = mark
	return d
}

// Push appends an element to the document.
func (d *Document) Push(el Element) error {
	if !childAllowed(KindSpeak, el.Kind()) {
		return &ShapeError{Parent: KindSpeak, Child: el.Kind()}
	}
	d.children = append(d.children, el)
	return nil
}

// Extend appends elements to the document.
func (d *Document) Extend(els ...Element) error {
	if err := checkChildren(KindSpeak, els); err != nil {
		return err
	}
	d.children = append(d.children, els...)
	return nil
}

// Children returns the document's direct children.
func (d *Document) Children() []Element { return d.children }

func (d *Document) attrs() []attr {
	var a []attr
	if d.lang != "" {
		a = append(a, attr{"xml:lang", Language(d.lang)})
	}
	if d.startMark != "" {
		a = append(a, attr{"startmark", String(d.startMark)})
	}
	if d.endMark != "" {
		a = append(a, attr{"endmark", String(d.endMark)})
	}
	return a
}

func (d *Document) setAttr(name string, v Value) {
	switch name {
	case "xml:lang":
		d.lang = v.String()
	case "startmark":
		d.startMark = string(v.(String))
	case "endmark":
		d.endMark = string(v.(String))
	}
}

func (d *Document) clone() *Document {
	c := *d
	c.children = cloneElements(d.children)
	return &c
}

func (d *Document) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("speak", func(w *xmlwriter.Writer) error {
		if o.Flavor == Generic || o.Flavor == MicrosoftAzure {
			if err := w.Attr("version", "1.0"); err != nil {
				return err
			}
			if err := w.Attr("xmlns", "http://www.w3.org/2001/10/synthesis"); err != nil {
				return err
			}
		}
		if d.lang != "" {
			if err := w.Attr("xml:lang", d.lang); err != nil {
				return err
			}
		}
		if o.Flavor == MicrosoftAzure {
			if err := w.Attr("xmlns:mstts", "http://www.w3.org/2001/mstts"); err != nil {
				return err
			}
		}
		if d.startMark != "" {
			if err := w.Attr("startmark", d.startMark); err != nil {
				return err
			}
		}
		if d.endMark != "" {
			if err := w.Attr("endmark", d.endMark); err != nil {
				return err
			}
		}
		return serializeChildren(w, d.children, o)
	})
}
