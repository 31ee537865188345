package ssml

import (
	"errors"
	"testing"
)

func TestConstructionRejectsImpossibleNesting(t *testing.T) {
	para, err := NewParagraph(NewText("hi"))
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	sent, err := NewSentence(NewText("hi"))
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	tests := []struct {
		name       string
		build      func() error
		wantParent ElementKind
		wantChild  ElementKind
	}{
		{
			name: "paragraph inside paragraph",
			build: func() error {
				_, err := NewParagraph(para)
				return err
			},
			wantParent: KindParagraph,
			wantChild:  KindParagraph,
		},
		{
			name: "sentence inside sentence",
			build: func() error {
				_, err := NewSentence(sent)
				return err
			},
			wantParent: KindSentence,
			wantChild:  KindSentence,
		},
		{
			name: "paragraph inside emphasis",
			build: func() error {
				_, err := NewEmphasis(EmphasisStrong, para)
				return err
			},
			wantParent: KindEmphasis,
			wantChild:  KindParagraph,
		},
		{
			name: "sentence pushed into emphasis",
			build: func() error {
				e, err := NewEmphasis(EmphasisStrong)
				if err != nil {
					return err
				}
				return e.Push(sent)
			},
			wantParent: KindEmphasis,
			wantChild:  KindSentence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			var se *ShapeError
			if !errors.As(err, &se) {
				t.Fatalf("got %v, want *ShapeError", err)
			}
			if se.Parent != tt.wantParent || se.Child != tt.wantChild {
				t.Errorf("got %s in %s, want %s in %s", se.Child, se.Parent, tt.wantChild, tt.wantParent)
			}
		})
	}
}

func TestConstructionAcceptsLegalNesting(t *testing.T) {
	para, err := NewParagraph(NewText("one"))
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	if _, err := NewProsody(para, NewBreak()); err != nil {
		t.Errorf("prosody around paragraph: %v", err)
	}
	if _, err := NewVoice(VoiceNamed("Amy"), para); err != nil {
		t.Errorf("voice around paragraph: %v", err)
	}
	if _, err := NewParagraph(NewText("a"), NewBreak(), NewMark("m")); err != nil {
		t.Errorf("paragraph with leaves: %v", err)
	}

	doc := Speak("en-US")
	if err := doc.Push(para); err != nil {
		t.Errorf("document push paragraph: %v", err)
	}
	if err := doc.Extend(NewText("tail"), NewBreak()); err != nil {
		t.Errorf("document extend: %v", err)
	}
}
