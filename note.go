package notesynth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Note is one parsed token.  Octave is absolute; Duration is in seconds.
type Note struct {
	Pitch    PitchClass `yaml:"pitch" json:"pitch"`
	Octave   int        `yaml:"octave" json:"octave"`
	Duration float64    `yaml:"duration" json:"duration"`
}

func (n Note) String() string {
	if n.Pitch == Pause {
		return fmt.Sprintf("rest %gs", n.Duration)
	}
	return fmt.Sprintf("%s%d %gs", strings.ToUpper(n.Pitch.String()), n.Octave, n.Duration)
}

// Token formats n back into notation relative to baseOctave and unit.  A
// multiplier of 1 is omitted.
func (n Note) Token(baseOctave int, unit float64) (string, error) {
	off := n.Octave - baseOctave
	if off < -9 || off > 9 {
		return "", fmt.Errorf("%w: octave %d is out of reach of base %d", ErrBadOctave, n.Octave, baseOctave)
	}
	if !n.Pitch.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownPitch, int(n.Pitch))
	}
	if !(unit > 0) {
		return "", fmt.Errorf("%w: unit %v", ErrBadUnit, unit)
	}
	// Durations are products of unit and a decimal multiplier; drop the
	// division's rounding error so the multiplier prints as written.
	mult := math.Round(n.Duration/unit*1e9) / 1e9
	if !(mult > 0) || math.IsInf(mult, 0) {
		return "", fmt.Errorf("%w: duration %v", ErrBadDuration, n.Duration)
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(off))
	b.WriteString(n.Pitch.String())
	if mult != 1 {
		b.WriteString(strconv.FormatFloat(mult, 'f', -1, 64))
	}
	return b.String(), nil
}

// FormatNotes is the inverse of ParseNotes.
func FormatNotes(notes []Note, baseOctave int, unit float64) (string, error) {
	toks := make([]string, len(notes))
	for i, n := range notes {
		t, err := n.Token(baseOctave, unit)
		if err != nil {
			return "", fmt.Errorf("note %d: %w", i, err)
		}
		toks[i] = t
	}
	return strings.Join(toks, " "), nil
}

// Duration returns the total length of notes in seconds.
func Duration(notes []Note) float64 {
	d := 0.0
	for _, n := range notes {
		d += n.Duration
	}
	return d
}
