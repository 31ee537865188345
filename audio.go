package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Audio inserts recorded audio into synthesized speech. The alternate
// content is spoken if the referenced audio cannot be played.
type Audio struct {
	src         string
	desc        string
	clipBegin   *TimeDesignation
	clipEnd     *TimeDesignation
	repeatTimes *float64
	repeatDur   *TimeDesignation
	soundLevel  *Decibels
	speed       *float64
	alternate   []Element
}

// NewAudio creates an audio element referencing the given source URI.
func NewAudio(src string) *Audio {
	return &Audio{src: src}
}

// Src returns the audio source URI.
func (a *Audio) Src() string { return a.src }

// WithDesc sets an accessible description of the audio.
func (a *Audio) WithDesc(desc string) *Audio {
	a.desc = desc
	return a
}

// WithClip limits playback to the span between begin and end.
func (a *Audio) WithClip(begin, end TimeDesignation) *Audio {
	a.clipBegin = &begin
	a.clipEnd = &end
	return a
}

// WithClipBegin starts playback at an offset into the audio.
func (a *Audio) WithClipBegin(begin TimeDesignation) *Audio {
	a.clipBegin = &begin
	return a
}

// WithClipEnd stops playback at an offset into the audio.
func (a *Audio) WithClipEnd(end TimeDesignation) *Audio {
	a.clipEnd = &end
	return a
}

// WithRepeatTimes repeats the audio a number of times. Fractional counts
// play a portion of the final repetition.
func (a *Audio) WithRepeatTimes(times float64) *Audio {
	a.repeatTimes = &times
	return a
}

// WithRepeatDur repeats the audio until the given duration has elapsed.
func (a *Audio) WithRepeatDur(d TimeDesignation) *Audio {
	a.repeatDur = &d
	return a
}

// WithSoundLevel adjusts the playback volume of the audio.
func (a *Audio) WithSoundLevel(db Decibels) *Audio {
	a.soundLevel = &db
	return a
}

// WithSpeed sets the playback speed as a multiplier of normal speed.
func (a *Audio) WithSpeed(speed float64) *Audio {
	a.speed = &speed
	return a
}

// WithAlternate appends fallback content spoken when the audio is
// unavailable.
func (a *Audio) WithAlternate(children ...Element) (*Audio, error) {
	if err := checkChildren(KindAudio, children); err != nil {
		return nil, err
	}
	a.alternate = append(a.alternate, children...)
	return a, nil
}

// Kind returns KindAudio.
func (a *Audio) Kind() ElementKind { return KindAudio }

// Children returns the alternate (fallback) content.
func (a *Audio) Children() []Element { return a.alternate }

func (a *Audio) attrs() []attr {
	out := []attr{{"src", String(a.src)}}
	if a.clipBegin != nil {
		out = append(out, attr{"clipBegin", *a.clipBegin})
	}
	if a.clipEnd != nil {
		out = append(out, attr{"clipEnd", *a.clipEnd})
	}
	if a.repeatDur != nil {
		out = append(out, attr{"repeatDur", *a.repeatDur})
	}
	if a.repeatTimes != nil {
		out = append(out, attr{"times", Number(*a.repeatTimes)})
	}
	if a.soundLevel != nil {
		out = append(out, attr{"soundLevel", *a.soundLevel})
	}
	if a.speed != nil {
		out = append(out, attr{"speed", Ratio(*a.speed)})
	}
	return out
}

func (a *Audio) setAttr(name string, v Value) {
	switch name {
	case "src":
		a.src = string(v.(String))
	case "clipBegin":
		t := v.(TimeDesignation)
		a.clipBegin = &t
	case "clipEnd":
		t := v.(TimeDesignation)
		a.clipEnd = &t
	case "repeatDur":
		t := v.(TimeDesignation)
		a.repeatDur = &t
	case "times":
		f := float64(v.(Number))
		a.repeatTimes = &f
	case "soundLevel":
		db := v.(Decibels)
		a.soundLevel = &db
	case "speed":
		f := float64(v.(Ratio))
		a.speed = &f
	}
}

func (a *Audio) clone() Element {
	c := &Audio{src: a.src, desc: a.desc, alternate: cloneElements(a.alternate)}
	if a.clipBegin != nil {
		t := *a.clipBegin
		c.clipBegin = &t
	}
	if a.clipEnd != nil {
		t := *a.clipEnd
		c.clipEnd = &t
	}
	if a.repeatTimes != nil {
		f := *a.repeatTimes
		c.repeatTimes = &f
	}
	if a.repeatDur != nil {
		t := *a.repeatDur
		c.repeatDur = &t
	}
	if a.soundLevel != nil {
		db := *a.soundLevel
		c.soundLevel = &db
	}
	if a.speed != nil {
		f := *a.speed
		c.speed = &f
	}
	return c
}

func (a *Audio) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("audio", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindAudio, a.attrs(), o); err != nil {
			return err
		}
		if a.desc != "" {
			err := w.Element("desc", func(w *xmlwriter.Writer) error {
				return w.Text(a.desc)
			})
			if err != nil {
				return err
			}
		}
		return serializeChildren(w, a.alternate, o)
	})
}
