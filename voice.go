package ssml

import (
	"fmt"
	"strings"

	"github.com/dgnsrekt/ssml/internal/xmlwriter"
)

// VoiceEffect is a playback-environment compensation effect applied to a
// voice section (Azure mstts extension).
type VoiceEffect int

const (
	// EffectAutomobile optimizes speech for in-car playback.
	EffectAutomobile VoiceEffect = iota
	// EffectTelecom optimizes speech for narrowband telephony playback.
	EffectTelecom
)

func (e VoiceEffect) String() string {
	if e == EffectTelecom {
		return "eq_telecomhp8k"
	}
	return "eq_car"
}

// Viseme selects the viseme event format a voice section reports (Azure
// mstts extension).
type Viseme int

const (
	// VisemeByID reports visemes as numeric IDs.
	VisemeByID Viseme = iota
	// VisemeFacialExpression reports visemes as blend shapes.
	VisemeFacialExpression
)

func (v Viseme) String() string {
	if v == VisemeFacialExpression {
		return "FacialExpression"
	}
	return "redlips_front"
}

// VoiceConfig describes the requested voice. Zero-valued fields are omitted
// from the output.
type VoiceConfig struct {
	Gender    VoiceGender
	Age       int
	Names     []string
	Variant   string
	Languages []string
}

// VoiceNamed returns a VoiceConfig requesting a single named voice.
func VoiceNamed(name string) VoiceConfig {
	return VoiceConfig{Names: []string{name}}
}

// Voice selects the voice used for a section of spoken content.
type Voice struct {
	config   VoiceConfig
	extra    []attr
	children []Element
}

// NewVoice creates a voice section. Use VoiceNamed for the common
// single-name case.
func NewVoice(config VoiceConfig, children ...Element) (*Voice, error) {
	if err := checkChildren(KindVoice, children); err != nil {
		return nil, err
	}
	return &Voice{config: config, children: children}, nil
}

// Config returns the section's voice configuration.
func (v *Voice) Config() VoiceConfig { return v.config }

// SetConfig replaces the section's voice configuration.
func (v *Voice) SetConfig(config VoiceConfig) {
	v.config = config
}

// WithEffect applies an Azure voice effect to the section.
func (v *Voice) WithEffect(e VoiceEffect) *Voice {
	v.extra = append(v.extra, attr{"effect", String(e.String())})
	return v
}

// WithViseme configures the section to report viseme events in the given
// format. The generated markup is Azure-only.
func (v *Voice) WithViseme(vis Viseme) *Voice {
	node := NewRaw(fmt.Sprintf(`<mstts:viseme type=%q />`, vis)).
		WithName("viseme").
		WithRestrictFlavor(MicrosoftAzure)
	v.children = append([]Element{node}, v.children...)
	return v
}

// Push appends an element to the section.
func (v *Voice) Push(el Element) error {
	if !childAllowed(KindVoice, el.Kind()) {
		return &ShapeError{Parent: KindVoice, Child: el.Kind()}
	}
	v.children = append(v.children, el)
	return nil
}

// Kind returns KindVoice.
func (v *Voice) Kind() ElementKind { return KindVoice }

// Children returns the section's content.
func (v *Voice) Children() []Element { return v.children }

func (v *Voice) attrs() []attr {
	var a []attr
	if v.config.Gender != GenderUnspecified {
		a = append(a, attr{"gender", v.config.Gender})
	}
	if v.config.Age > 0 {
		a = append(a, attr{"age", Number(v.config.Age)})
	}
	if len(v.config.Names) > 0 {
		a = append(a, attr{"name", String(strings.Join(v.config.Names, " "))})
	}
	if v.config.Variant != "" {
		a = append(a, attr{"variant", String(v.config.Variant)})
	}
	if len(v.config.Languages) > 0 {
		a = append(a, attr{"language", Language(strings.Join(v.config.Languages, " "))})
	}
	return append(a, v.extra...)
}

func (v *Voice) setAttr(name string, val Value) {
	switch name {
	case "gender":
		v.config.Gender = val.(VoiceGender)
	case "age":
		v.config.Age = int(val.(Number))
	case "name":
		v.config.Names = strings.Fields(val.String())
	case "variant":
		v.config.Variant = string(val.(String))
	case "language":
		v.config.Languages = strings.Fields(val.String())
	default:
		for i := range v.extra {
			if v.extra[i].name == name {
				v.extra[i].value = val
			}
		}
	}
}

func (v *Voice) clone() Element {
	cfg := v.config
	cfg.Names = append([]string(nil), v.config.Names...)
	cfg.Languages = append([]string(nil), v.config.Languages...)
	return &Voice{
		config:   cfg,
		extra:    append([]attr(nil), v.extra...),
		children: cloneElements(v.children),
	}
}

func (v *Voice) serializeXML(w *xmlwriter.Writer, o *SerializeOptions) error {
	return w.Element("voice", func(w *xmlwriter.Writer) error {
		if err := writeAttrs(w, KindVoice, v.attrs(), o); err != nil {
			return err
		}
		return serializeChildren(w, v.children, o)
	})
}
