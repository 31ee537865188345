package ssml

import (
	"errors"
	"strings"
	"testing"
)

func TestSerializeToString(t *testing.T) {
	tests := []struct {
		name   string
		flavor Flavor
		build  func(t *testing.T) *Document
		want   string
	}{
		{
			name:   "polly hello world",
			flavor: AmazonPolly,
			build: func(t *testing.T) *Document {
				return Speak("en-US", "Hello, world!")
			},
			want: `<speak xml:lang="en-US">Hello, world! </speak>`,
		},
		{
			name:   "generic carries version and namespace",
			flavor: Generic,
			build: func(t *testing.T) *Document {
				return Speak("en-US", "Hello, world!")
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="en-US">Hello, world! </speak>`,
		},
		{
			name:   "azure adds mstts namespace",
			flavor: MicrosoftAzure,
			build: func(t *testing.T) *Document {
				return Speak("en-US", "Hello, world!")
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="en-US" xmlns:mstts="http://www.w3.org/2001/mstts">Hello, world! </speak>`,
		},
		{
			name:   "empty document self-closes",
			flavor: AmazonPolly,
			build: func(t *testing.T) *Document {
				return Speak("")
			},
			want: `<speak/>`,
		},
		{
			name:   "text escapes exactly once",
			flavor: AmazonPolly,
			build: func(t *testing.T) *Document {
				return Speak("en-US", `R&D <"it's">`)
			},
			want: `<speak xml:lang="en-US">R&amp;D &lt;&quot;it&apos;s&quot;&gt; </speak>`,
		},
		{
			name:   "break renders time with explicit sign",
			flavor: AmazonPolly,
			build: func(t *testing.T) *Document {
				doc := Speak("en-US")
				if err := doc.Push(NewBreak().WithTime(Milliseconds(750))); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak xml:lang="en-US"><break time="+750ms"/></speak>`,
		},
		{
			name:   "azure omits default break strength",
			flavor: MicrosoftAzure,
			build: func(t *testing.T) *Document {
				doc := Speak("")
				if err := doc.Push(NewBreak().WithStrength(StrengthMedium)); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xmlns:mstts="http://www.w3.org/2001/mstts"><break/></speak>`,
		},
		{
			name:   "generic keeps default break strength",
			flavor: Generic,
			build: func(t *testing.T) *Document {
				doc := Speak("")
				if err := doc.Push(NewBreak().WithStrength(StrengthMedium)); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis"><break strength="medium"/></speak>`,
		},
		{
			name:   "google omits moderate emphasis level",
			flavor: GoogleCloud,
			build: func(t *testing.T) *Document {
				e, err := NewEmphasis(EmphasisModerate, NewText("hi"))
				if err != nil {
					t.Fatal(err)
				}
				doc := Speak("en-US")
				if err := doc.Push(e); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak xml:lang="en-US"><emphasis>hi </emphasis></speak>`,
		},
		{
			name:   "mark spells bookmark on azure",
			flavor: MicrosoftAzure,
			build: func(t *testing.T) *Document {
				doc := Speak("")
				if err := doc.Push(NewMark("here")); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xmlns:mstts="http://www.w3.org/2001/mstts"><bookmark mark="here"/></speak>`,
		},
		{
			name:   "mark everywhere else",
			flavor: GoogleCloud,
			build: func(t *testing.T) *Document {
				doc := Speak("")
				if err := doc.Push(NewMark("here")); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak><mark name="here"/></speak>`,
		},
		{
			name:   "say-as",
			flavor: GoogleCloud,
			build: func(t *testing.T) *Document {
				doc := Speak("en-US")
				if err := doc.Push(NewSayAs(InterpretOrdinal, "1st")); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak xml:lang="en-US"><say-as interpret-as="ordinal">1st </say-as></speak>`,
		},
		{
			name:   "audio with description and fallback",
			flavor: GoogleCloud,
			build: func(t *testing.T) *Document {
				a, err := NewAudio("https://example.com/cat.ogg").
					WithDesc("a cat purring").
					WithAlternate(NewText("purr"))
				if err != nil {
					t.Fatal(err)
				}
				doc := Speak("en-US")
				if err := doc.Push(a); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak xml:lang="en-US"><audio src="https://example.com/cat.ogg"><desc>a cat purring </desc>purr </audio></speak>`,
		},
		{
			name:   "voice config order",
			flavor: Generic,
			build: func(t *testing.T) *Document {
				v, err := NewVoice(VoiceConfig{
					Gender:    GenderFemale,
					Age:       30,
					Names:     []string{"Amy", "Brian"},
					Variant:   "2",
					Languages: []string{"en-US", "en-GB"},
				}, NewText("hi"))
				if err != nil {
					t.Fatal(err)
				}
				doc := Speak("")
				if err := doc.Push(v); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis"><voice gender="female" age="30" name="Amy Brian" variant="2" language="en-US en-GB">hi </voice></speak>`,
		},
		{
			name:   "azure express inside voice",
			flavor: MicrosoftAzure,
			build: func(t *testing.T) *Document {
				doc := Speak("en-US")
				ex := mustExpress(t, StyleCheerful, NewText("hi"))
				if err := doc.Push(mustVoice(t, VoiceNamed("en-US-JennyNeural"), ex)); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="en-US" xmlns:mstts="http://www.w3.org/2001/mstts"><voice name="en-US-JennyNeural"><mstts:express-as style="cheerful" styledegree="1">hi </mstts:express-as></voice></speak>`,
		},
		{
			name:   "group emits no markup of its own",
			flavor: AmazonPolly,
			build: func(t *testing.T) *Document {
				g, err := NewGroup(NewText("one"), NewBreak(), NewText("two"))
				if err != nil {
					t.Fatal(err)
				}
				doc := Speak("en-US")
				if err := doc.Push(g); err != nil {
					t.Fatal(err)
				}
				return doc
			},
			want: `<speak xml:lang="en-US">one <break/>two </speak>`,
		},
		{
			name:   "start and end marks on the root",
			flavor: AmazonPolly,
			build: func(t *testing.T) *Document {
				return Speak("en-US", "hi").WithStartMark("a").WithEndMark("b")
			},
			want: `<speak xml:lang="en-US" startmark="a" endmark="b">hi </speak>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.build(t)
			got, err := doc.SerializeToString(tt.flavor)
			if err != nil {
				t.Fatalf("SerializeToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	p, err := NewProsody(NewText("steady"))
	if err != nil {
		t.Fatal(err)
	}
	p.WithPitch(PitchSemitones(2)).WithRate(RateRatio(0.9)).WithVolume(VolumeLoud)

	doc := Speak("en-US")
	if err := doc.Push(p); err != nil {
		t.Fatal(err)
	}

	first, err := doc.SerializeToString(Generic)
	if err != nil {
		t.Fatalf("SerializeToString: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := doc.SerializeToString(Generic)
		if err != nil {
			t.Fatalf("SerializeToString: %v", err)
		}
		if again != first {
			t.Fatalf("output changed between runs: %q vs %q", first, again)
		}
	}
}

func TestSerializeWrapsValidationErrors(t *testing.T) {
	doc := Speak("en-US")
	if err := doc.Push(NewAudio("https://example.com/a.mp3")); err != nil {
		t.Fatal(err)
	}

	_, err := doc.SerializeToString(AmazonPolly)
	var se *SerializeError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *SerializeError", err)
	}
	var ue *UnsupportedElementError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want wrapped *UnsupportedElementError", err)
	}
}

func TestSerializeSkipValidation(t *testing.T) {
	doc := Speak("en-US")
	if err := doc.Push(NewAudio("https://example.com/a.mp3")); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	err := doc.Serialize(&b, &SerializeOptions{Flavor: AmazonPolly, SkipValidation: true})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(b.String(), "<audio") {
		t.Errorf("output missing audio element: %s", b.String())
	}
}

func TestSerializePretty(t *testing.T) {
	doc := Speak("en-US", "Hello")
	if err := doc.Push(NewBreak().WithTime(Milliseconds(500))); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := doc.Serialize(&b, &SerializeOptions{Flavor: AmazonPolly, Pretty: true}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	want := "<speak xml:lang=\"en-US\">\n\tHello\n\t<break time=\"+500ms\" />\n</speak>"
	if got := b.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestValidatedDocumentSerializesWithoutRechecking(t *testing.T) {
	doc := Speak("en-US")
	if err := doc.Push(NewBreak().WithTime(Milliseconds(9000))); err != nil {
		t.Fatal(err)
	}

	v, err := Validate(doc, MicrosoftAzure)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got, err := v.SerializeToString()
	if err != nil {
		t.Fatalf("SerializeToString: %v", err)
	}
	if !strings.Contains(got, `time="+5000ms"`) {
		t.Errorf("clamped time missing from output: %s", got)
	}
}
