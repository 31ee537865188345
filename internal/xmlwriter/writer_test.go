package xmlwriter

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "ampersand", in: "R&D", want: "R&amp;D"},
		{name: "angle brackets", in: "<tag>", want: "&lt;tag&gt;"},
		{name: "quotes", in: `say "hi" and 'bye'`, want: "say &quot;hi&quot; and &apos;bye&apos;"},
		{name: "already escaped input escapes again", in: "&amp;", want: "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriterCompact(t *testing.T) {
	tests := []struct {
		name  string
		build func(w *Writer) error
		want  string
	}{
		{
			name: "empty element self-closes",
			build: func(w *Writer) error {
				return w.Element("break", func(*Writer) error { return nil })
			},
			want: "<break/>",
		},
		{
			name: "attributes only still self-closes",
			build: func(w *Writer) error {
				return w.Element("break", func(w *Writer) error {
					return w.Attr("time", "+750ms")
				})
			},
			want: `<break time="+750ms"/>`,
		},
		{
			name: "text child gets trailing space",
			build: func(w *Writer) error {
				return w.Element("speak", func(w *Writer) error {
					return w.Text("Hello, world!")
				})
			},
			want: "<speak>Hello, world! </speak>",
		},
		{
			name: "attribute values are escaped",
			build: func(w *Writer) error {
				return w.Element("audio", func(w *Writer) error {
					return w.Attr("src", `a&b"c`)
				})
			},
			want: `<audio src="a&amp;b&quot;c"/>`,
		},
		{
			name: "nested elements",
			build: func(w *Writer) error {
				return w.Element("speak", func(w *Writer) error {
					if err := w.Attr("xml:lang", "en-US"); err != nil {
						return err
					}
					return w.Element("break", func(*Writer) error { return nil })
				})
			},
			want: `<speak xml:lang="en-US"><break/></speak>`,
		},
		{
			name: "raw content is not escaped",
			build: func(w *Writer) error {
				return w.Element("speak", func(w *Writer) error {
					return w.Raw(`<mstts:viseme type="redlips_front" />`)
				})
			},
			want: `<speak><mstts:viseme type="redlips_front" /></speak>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			if err := tt.build(New(&b, false)); err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriterPretty(t *testing.T) {
	var b strings.Builder
	w := New(&b, true)
	err := w.Element("speak", func(w *Writer) error {
		if err := w.Attr("xml:lang", "en-US"); err != nil {
			return err
		}
		if err := w.Text("Hello"); err != nil {
			return err
		}
		return w.Element("break", func(*Writer) error { return nil })
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := "<speak xml:lang=\"en-US\">\n\tHello\n\t<break />\n</speak>"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrAfterChildren(t *testing.T) {
	var b strings.Builder
	err := New(&b, false).Element("speak", func(w *Writer) error {
		if err := w.Text("hi"); err != nil {
			return err
		}
		return w.Attr("xml:lang", "en-US")
	})
	if err != ErrAttrAfterChildren {
		t.Errorf("got %v, want ErrAttrAfterChildren", err)
	}
}
