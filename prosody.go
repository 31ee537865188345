package ssml

import "github.com/dgnsrekt/ssml/internal/xmlwriter"

// Prosody controls the pitch, speaking rate and volume of the contained
// text. All controls are optional; unset controls leave the processor
// default in effect.
type Prosody struct {
	pitch    *Pitch
	contour  Contour
	rng      *Pitch
	rate     *Rate
	duration *TimeDesignation
	volume   *Volume
	children []Element
}

// NewProsody creates a prosody section around the given content.
func NewProsody(children ...Element) (*Prosody, error) {
	if err := checkChildren(KindProsody, children); err != nil {
		return nil, err
	}
	return &Prosody{children: children}, nil
}

// WithPitch sets the baseline pitch.
func (p *Prosody) WithPitch(pitch Pitch) *Prosody {
	p.pitch = &pitch
	return p
}

// WithContour sets the pitch contour.
func (p *Prosody) WithContour(contour Contour) *Prosody {
	p.contour = contour
	return p
}

// WithRange sets the pitch range.
func (p *Prosody) WithRange(rng Pitch) *Prosody {
	p.rng = &rng
	return p
}

// WithRate sets the speaking rate.
func (p *Prosody) WithRate(rate Rate) *Prosody {
	p.rate = &rate
	return p
}

// WithDuration sets the desired duration of the contained text.
func (p *Prosody) WithDuration(d TimeDesignation) *Prosody {
	p.duration = &d
	return p
}

// WithVolume sets the speaking volume.
func (p *Prosody) WithVolume(v Volume) *Prosody {
	p.volume = &v
	return p
}

// Push appends an element to the section.
func (p *Prosody) Push(el Element) error {
	if !childAllowed(KindProsody, el.Kind()) {
		return &ShapeError{Parent: KindProsody, Child: el.Kind()}
	}
	p.children = append(p.children, el)
	return nil
}

// Kind returns KindProsody.
func (p *Prosody) Kind() ElementKind { return KindProsody }

// Children returns the section's content.
func (p *Prosody) Children() []Element { return p.children }

func (p *Prosody) attrs() []attr {
	var a []attr
	if p.pitch != nil {
		a = append(a, attr{"pitch", *p.pitch})
	}
	if p.contour != nil {
		a = append(a, attr{"contour", p.contour})
	}
	if p.rng != nil {
		a = append(a, attr{"range", *p.rng})
	}
	if p.rate != nil {
		a = append(a, attr{"rate", *p.rate})
	}
	if p.duration != nil {
		a = append(a, attr{"duration", *p.duration})
	}
	if p.volume != nil {
		a = append(a, attr{"volume", *p.volume})
	}
	return a
}

func (p *Prosody) setAttr(name string, v Value) {
	switch name {
	case "pitch":
		pv := v.(Pitch)
		p.pitch = &pv
	case "contour":
		p.contour = v.(Contour)
	case "range":
		pv := v.(Pitch)
		p.rng = &pv
	case "rate":
		rv := v.(Rate)
		p.rate = &rv
	case "duration":
		dv := v.(TimeDesignation)
		p.duration = &dv
	case "volume":
		vv := v.(Volume)
		p.volume = &vv
	}
}

func (p *Prosody) clone() Element {
	c := &Prosody{children: cloneElements(p.children)}
	if p.pitch != nil {
		pv := *p.pitch
		c.pitch = &pv
	}
	if p.contour != nil {
		c.contour = append(Contour(nil), p.contour...)
	}
	if p.rng != nil {
		pv := *p.rng
		c.rng = &pv
	}
	if p.rate != nil {
		rv := *p.rate
		c.rate = &rv
	}
	if p.duration != nil {
		dv := *p.duration
		c.duration = &dv
	}
	if p.volume != nil {
		vv := *p.volume
		c.volume = &vv
	}
	return c
}

func (p *Prosody) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("prosody", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindProsody, p.attrs(), o); err != nil {
			return err
		}
		return serializeChildren(w, p.children, o)
	})
}
