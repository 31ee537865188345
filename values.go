package ssml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Value is a typed attribute value. Concrete value types render themselves
// into the exact attribute text the target services expect.
type Value interface {
	fmt.Stringer
}

// scalarValue is implemented by values carrying a single numeric magnitude
// that range rules (clamp/reject) can inspect and rewrite. Values that are
// currently non-numeric (for example a named volume) report ok == false and
// are passed through range rules untouched.
type scalarValue interface {
	Value
	scalar() (v float64, ok bool)
	withScalar(v float64) Value
}

// Time designation parse errors.
var (
	ErrTimeBadUnit  = errors.New("time designation has invalid unit (allowed are ms, s)")
	ErrTimeTooShort = errors.New("string is too short to be a valid time designation")
	ErrTimeNegative = errors.New("time designations cannot be negative")
)

// Decibel parse errors.
var (
	ErrDecibelsBadUnit  = errors.New("decibel value has invalid unit (allowed is dB)")
	ErrDecibelsTooShort = errors.New("string is too short to be a valid decibel value")
)

// formatFloat renders a float the way attribute text expects: no exponent,
// no trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatSigned is formatFloat with an explicit leading sign.
func formatSigned(v float64) string {
	s := formatFloat(v)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// TimeDesignation is a non-negative offset of time, expressed in seconds or
// milliseconds.
type TimeDesignation struct {
	millis float64
}

// Milliseconds creates a TimeDesignation from a number of milliseconds.
func Milliseconds(ms float64) TimeDesignation {
	return TimeDesignation{millis: ms}
}

// Seconds creates a TimeDesignation from a number of seconds.
func Seconds(s float64) TimeDesignation {
	return TimeDesignation{millis: s * 1000}
}

// ParseTimeDesignation parses strings like "750ms", "15s" or "+0.75s".
// Negative offsets and units other than ms/s are rejected.
func ParseTimeDesignation(s string) (TimeDesignation, error) {
	if len(s) < 2 {
		return TimeDesignation{}, fmt.Errorf("%w: %q", ErrTimeTooShort, s)
	}

	var unit float64
	var skip int
	switch {
	case strings.HasSuffix(s, "ms"):
		unit, skip = 1, 2
	case strings.HasSuffix(s, "s") && isDigitOrDot(s[len(s)-2]):
		unit, skip = 1000, 1
	default:
		return TimeDesignation{}, fmt.Errorf("%w: %q", ErrTimeBadUnit, s)
	}

	f, err := strconv.ParseFloat(s[:len(s)-skip], 64)
	if err != nil {
		return TimeDesignation{}, fmt.Errorf("invalid time designation %q: %w", s, err)
	}
	if f < 0 || strings.HasPrefix(s, "-") {
		return TimeDesignation{}, fmt.Errorf("%w: %q", ErrTimeNegative, s)
	}

	return TimeDesignation{millis: f * unit}, nil
}

func isDigitOrDot(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// Milliseconds returns the offset in milliseconds.
func (t TimeDesignation) Milliseconds() float64 { return t.millis }

func (t TimeDesignation) String() string { return formatSigned(t.millis) + "ms" }

func (t TimeDesignation) scalar() (float64, bool) { return t.millis, true }

func (t TimeDesignation) withScalar(v float64) Value { return TimeDesignation{millis: v} }

// Decibels is a signed amplitude offset in decibels. A value of -6dB plays at
// roughly half volume, +6dB at roughly twice.
type Decibels float64

// ParseDecibels parses strings like "+6dB", "-0.6dB" or "2dB".
func ParseDecibels(s string) (Decibels, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrDecibelsTooShort, s)
	}
	if !strings.HasSuffix(s, "dB") {
		return 0, fmt.Errorf("%w: %q", ErrDecibelsBadUnit, s)
	}
	f, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decibel value %q: %w", s, err)
	}
	return Decibels(f), nil
}

func (d Decibels) String() string { return formatSigned(float64(d)) + "dB" }

func (d Decibels) scalar() (float64, bool) { return float64(d), true }

func (d Decibels) withScalar(v float64) Value { return Decibels(v) }

// Ratio is a unitless speed multiplier rendered as a percentage; 1.0 renders
// as "100%".
type Ratio float64

func (r Ratio) String() string { return formatFloat(float64(r)*100) + "%" }

func (r Ratio) scalar() (float64, bool) { return float64(r), true }

func (r Ratio) withScalar(v float64) Value { return Ratio(v) }

// Number is a plain numeric attribute value (repeat counts, style degrees,
// voice ages).
type Number float64

func (n Number) String() string { return formatFloat(float64(n)) }

func (n Number) scalar() (float64, bool) { return float64(n), true }

func (n Number) withScalar(v float64) Value { return Number(v) }

// String is a free-form string attribute value (URIs, voice names, mark
// names, formats).
type String string

func (s String) String() string { return string(s) }

// Language is a BCP-47 language tag such as "en-US". Tags are checked for
// well-formedness during validation.
type Language string

func (l Language) String() string { return string(l) }

type pitchKind int

const (
	pitchNamed pitchKind = iota
	pitchSemitones
	pitchHertz
)

// Pitch describes a baseline pitch: one of the named levels, or a relative
// change in semitones or hertz.
type Pitch struct {
	kind pitchKind
	name string
	v    float64
}

// Named pitch levels.
var (
	PitchLowest  = Pitch{name: "x-low"}
	PitchLow     = Pitch{name: "low"}
	PitchMedium  = Pitch{name: "medium"}
	PitchDefault = Pitch{name: "default"}
	PitchHigh    = Pitch{name: "high"}
	PitchHighest = Pitch{name: "x-high"}
)

// PitchSemitones returns a relative pitch change in semitones.
func PitchSemitones(v float64) Pitch {
	return Pitch{kind: pitchSemitones, v: v}
}

// PitchHertz returns a relative pitch change in hertz.
func PitchHertz(v float64) Pitch {
	return Pitch{kind: pitchHertz, v: v}
}

func (p Pitch) String() string {
	switch p.kind {
	case pitchSemitones:
		return formatSigned(p.v) + "st"
	case pitchHertz:
		return formatSigned(p.v) + "Hz"
	default:
		return p.name
	}
}

type rateKind int

const (
	rateNamed rateKind = iota
	rateRatio
)

// Rate describes a speaking rate: one of the named levels, or a multiplier
// of the normal rate.
type Rate struct {
	kind rateKind
	name string
	v    float64
}

// Named speaking rates.
var (
	RateSlowest = Rate{name: "x-slow"}
	RateSlow    = Rate{name: "slow"}
	RateMedium  = Rate{name: "medium"}
	RateDefault = Rate{name: "default"}
	RateFast    = Rate{name: "fast"}
	RateFastest = Rate{name: "x-fast"}
)

// RateRatio returns a speaking rate as a multiplier of the normal rate.
// Negative multipliers are floored to zero.
func RateRatio(v float64) Rate {
	return Rate{kind: rateRatio, v: max(v, 0)}
}

func (r Rate) String() string {
	if r.kind == rateRatio {
		return Ratio(r.v).String()
	}
	return r.name
}

func (r Rate) scalar() (float64, bool) {
	if r.kind == rateRatio {
		return r.v, true
	}
	return 0, false
}

func (r Rate) withScalar(v float64) Value { return RateRatio(v) }

type volumeKind int

const (
	volumeNamed volumeKind = iota
	volumeDecibels
)

// Volume describes a speaking volume: one of the named levels, or a relative
// offset in decibels.
type Volume struct {
	kind volumeKind
	name string
	db   Decibels
}

// Named speaking volumes.
var (
	VolumeSilent  = Volume{name: "silent"}
	VolumeSoftest = Volume{name: "x-soft"}
	VolumeSoft    = Volume{name: "soft"}
	VolumeMedium  = Volume{name: "medium"}
	VolumeDefault = Volume{name: "default"}
	VolumeLoud    = Volume{name: "loud"}
	VolumeLoudest = Volume{name: "x-loud"}
)

// VolumeDecibels returns a speaking volume as a decibel offset.
func VolumeDecibels(db Decibels) Volume {
	return Volume{kind: volumeDecibels, db: db}
}

func (v Volume) String() string {
	if v.kind == volumeDecibels {
		return v.db.String()
	}
	return v.name
}

func (v Volume) scalar() (float64, bool) {
	if v.kind == volumeDecibels {
		return float64(v.db), true
	}
	return 0, false
}

func (v Volume) withScalar(s float64) Value { return VolumeDecibels(Decibels(s)) }

// ContourPoint is a single (time, pitch) target in a pitch contour. At is a
// fraction of the contained text's duration in [0, 1].
type ContourPoint struct {
	At    float64
	Pitch Pitch
}

// Contour is a sequence of pitch targets describing how pitch changes over
// the spoken text.
type Contour []ContourPoint

func (c Contour) String() string {
	var b strings.Builder
	for i, p := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(Ratio(p.At).String())
		b.WriteByte(',')
		b.WriteString(p.Pitch.String())
		b.WriteByte(')')
	}
	return b.String()
}

// BreakStrength is the prosodic strength of a pause.
type BreakStrength int

const (
	// StrengthNone suppresses any prosodic break.
	StrengthNone BreakStrength = iota
	// StrengthExtraWeak is the weakest audible break.
	StrengthExtraWeak
	// StrengthWeak is a weak break.
	StrengthWeak
	// StrengthMedium is the default break strength.
	StrengthMedium
	// StrengthStrong is a strong break.
	StrengthStrong
	// StrengthExtraStrong is the strongest break.
	StrengthExtraStrong
)

func (s BreakStrength) String() string {
	switch s {
	case StrengthNone:
		return "none"
	case StrengthExtraWeak:
		return "x-weak"
	case StrengthWeak:
		return "weak"
	case StrengthStrong:
		return "strong"
	case StrengthExtraStrong:
		return "x-strong"
	default:
		return "medium"
	}
}

// EmphasisLevel is the degree of stress applied to emphasized text.
type EmphasisLevel int

const (
	// EmphasisModerate is the default emphasis level.
	EmphasisModerate EmphasisLevel = iota
	// EmphasisReduced de-emphasizes the text.
	EmphasisReduced
	// EmphasisNone suppresses emphasis the processor might otherwise apply.
	EmphasisNone
	// EmphasisStrong applies strong emphasis.
	EmphasisStrong
)

func (l EmphasisLevel) String() string {
	switch l {
	case EmphasisReduced:
		return "reduced"
	case EmphasisNone:
		return "none"
	case EmphasisStrong:
		return "strong"
	default:
		return "moderate"
	}
}

// InterpretAs tells the synthesizer how to read a span of text.
type InterpretAs string

// Standard interpret-as hints.
const (
	InterpretCharacters InterpretAs = "characters"
	InterpretSpellOut   InterpretAs = "spell-out"
	InterpretCardinal   InterpretAs = "cardinal"
	InterpretOrdinal    InterpretAs = "ordinal"
	InterpretDigits     InterpretAs = "digits"
	InterpretFraction   InterpretAs = "fraction"
	InterpretUnit       InterpretAs = "unit"
	InterpretDate       InterpretAs = "date"
	InterpretTime       InterpretAs = "time"
	InterpretTelephone  InterpretAs = "telephone"
	InterpretExpletive  InterpretAs = "expletive"
)

func (i InterpretAs) String() string { return string(i) }

// VoiceGender is the preferred gender of a requested voice.
type VoiceGender int

const (
	// GenderUnspecified requests no particular gender.
	GenderUnspecified VoiceGender = iota
	// GenderNeutral requests a gender-neutral voice.
	GenderNeutral
	// GenderFemale requests a female voice.
	GenderFemale
	// GenderMale requests a male voice.
	GenderMale
)

func (g VoiceGender) String() string {
	switch g {
	case GenderNeutral:
		return "neutral"
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	default:
		return ""
	}
}
