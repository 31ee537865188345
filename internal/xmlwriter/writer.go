// Package xmlwriter provides a minimal state-machine writer for emitting
// well-formed markup. It handles tag bracketing, self-closing empty elements,
// attribute/child ordering and escaping; it is not a general XML library.
package xmlwriter

import (
	"errors"
	"io"
	"strings"
)

// ErrAttrAfterChildren is returned when an attribute is written after child
// content has already been started for the enclosing element.
var ErrAttrAfterChildren = errors.New("attributes must be written before child content")

type state int

const (
	stateDocumentStart state = iota
	stateElementUnclosed
	stateElementClosed
)

// Writer emits markup to an underlying io.Writer. Elements self-close when no
// child content is written inside them. When pretty mode is enabled, children
// are placed on their own tab-indented lines.
type Writer struct {
	w      io.Writer
	indent int
	pretty bool
	state  state
}

// New returns a Writer emitting to w.
func New(w io.Writer, pretty bool) *Writer {
	return &Writer{w: w, pretty: pretty}
}

// Pretty reports whether the writer is in pretty-printing mode.
func (w *Writer) Pretty() bool { return w.pretty }

func (w *Writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

func (w *Writer) prettyBreak() error {
	if !w.pretty {
		return nil
	}
	if err := w.writeString("\n"); err != nil {
		return err
	}
	return w.writeString(strings.Repeat("\t", w.indent))
}

// Element writes an element named tag. The body callback writes the element's
// attributes followed by its child content. If the body writes no child
// content the element is self-closed.
func (w *Writer) Element(tag string, body func(*Writer) error) error {
	if w.state == stateElementUnclosed {
		if err := w.writeString(">"); err != nil {
			return err
		}
	}
	if w.state != stateDocumentStart {
		if err := w.prettyBreak(); err != nil {
			return err
		}
	}

	if err := w.writeString("<" + tag); err != nil {
		return err
	}

	w.state = stateElementUnclosed
	w.indent++
	if err := body(w); err != nil {
		return err
	}
	w.indent--

	switch w.state {
	case stateElementUnclosed:
		if w.pretty {
			if err := w.writeString(" "); err != nil {
				return err
			}
		}
		if err := w.writeString("/>"); err != nil {
			return err
		}
	case stateElementClosed:
		if err := w.prettyBreak(); err != nil {
			return err
		}
		if err := w.writeString("</" + tag + ">"); err != nil {
			return err
		}
	}
	w.state = stateElementClosed

	return nil
}

// Attr writes a name="value" attribute on the currently open element. The
// value is escaped. Attributes must precede child content.
func (w *Writer) Attr(name, value string) error {
	if w.state == stateElementClosed {
		return ErrAttrAfterChildren
	}
	if err := w.writeString(" " + name + `="`); err != nil {
		return err
	}
	if err := w.writeString(Escape(value)); err != nil {
		return err
	}
	return w.writeString(`"`)
}

// Text escapes contents and writes it as child content. In compact mode a
// single trailing space follows the text, separating it from whatever the
// document emits next.
func (w *Writer) Text(contents string) error {
	if w.state == stateElementUnclosed {
		if err := w.writeString(">"); err != nil {
			return err
		}
	}
	if w.state != stateDocumentStart {
		if err := w.prettyBreak(); err != nil {
			return err
		}
	}

	if err := w.writeString(Escape(contents)); err != nil {
		return err
	}
	if !w.pretty {
		if err := w.writeString(" "); err != nil {
			return err
		}
	}

	w.state = stateElementClosed
	return nil
}

// Raw writes contents as child content verbatim, with no escaping.
func (w *Writer) Raw(contents string) error {
	if w.state == stateElementUnclosed {
		if err := w.writeString(">"); err != nil {
			return err
		}
	}
	if w.state != stateDocumentStart {
		if err := w.prettyBreak(); err != nil {
			return err
		}
	}

	if err := w.writeString(contents); err != nil {
		return err
	}

	w.state = stateElementClosed
	return nil
}

var escaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&apos;",
)

// Escape replaces markup-significant characters in text with their entity
// forms. Input is treated as unescaped; escaping is applied exactly once.
func Escape(text string) string {
	return escaper.Replace(text)
}
