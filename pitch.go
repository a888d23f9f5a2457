package notesynth

import (
	"fmt"
	"math"
	"strings"
)

type PitchClass int

const (
	C PitchClass = iota
	Cs
	D
	Ds
	E
	F
	Fs
	G
	Gs
	A
	As
	B
	Pause
)

var pitchNames = [...]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b", "p"}

func (p PitchClass) String() string {
	if p < C || p > Pause {
		return fmt.Sprintf("PitchClass(%d)", int(p))
	}
	return pitchNames[p]
}

func (p PitchClass) Valid() bool { return p >= C && p <= Pause }

func (p PitchClass) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPitch, int(p))
	}
	return []byte(pitchNames[p]), nil
}

func (p *PitchClass) UnmarshalText(b []byte) error {
	q, ok := LookupPitch(string(b))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPitch, b)
	}
	*p = q
	return nil
}

// LookupPitch maps a note name such as "c#" or "p" to its pitch class.
// Letters are case-insensitive.
func LookupPitch(name string) (PitchClass, bool) {
	name = strings.ToLower(name)
	for i, n := range pitchNames {
		if n == name {
			return PitchClass(i), true
		}
	}
	return 0, false
}

// PitchTable assigns each non-rest pitch class a semitone index within the
// octave.  Frequencies are computed relative to the index of A.
type PitchTable [12]int

var (
	StandardPitches = PitchTable{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	// LegacyPitches reproduces the lookup table of the first version of
	// this synthesizer: C through F# sit a semitone high and F# and G share
	// an index.
	LegacyPitches = PitchTable{1, 2, 3, 4, 5, 6, 7, 7, 8, 9, 10, 11}
)

// Semitones returns the distance of p from the reference pitch class A within
// the same octave.  It panics on Pause.
func (t PitchTable) Semitones(p PitchClass) int {
	if p == Pause || !p.Valid() {
		panic(fmt.Sprintf("notesynth: no semitone index for %v", p))
	}
	return t[p] - t[A]
}

func (t PitchTable) MarshalText() ([]byte, error) {
	switch t {
	case StandardPitches:
		return []byte("standard"), nil
	case LegacyPitches:
		return []byte("legacy"), nil
	}
	return nil, fmt.Errorf("notesynth: unnamed pitch table %v", [12]int(t))
}

func (t *PitchTable) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "standard", "":
		*t = StandardPitches
	case "legacy":
		*t = LegacyPitches
	default:
		return fmt.Errorf("%w: pitch table %q", ErrBadParams, b)
	}
	return nil
}

// Frequency returns the equal-tempered frequency of pitch p in the given
// octave, anchored at RefFreq for A4.  A Pause, or a pitch class outside C..B,
// has frequency 0.
func (p Params) Frequency(pitch PitchClass, octave int) float64 {
	if pitch == Pause || !pitch.Valid() {
		return 0
	}
	n := p.Pitches.Semitones(pitch) + 12*(octave-4)
	return p.RefFreq * math.Pow(2, float64(n)/12)
}
