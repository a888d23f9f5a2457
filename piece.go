package notesynth

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultMelodyGain        = 0.1
	DefaultAccompanimentGain = 0.2
)

var (
	ErrBadTempo = errors.New("tempo must be positive")
	ErrBadUnit  = errors.New("unit must be non-negative")
)

// A Piece is a melody and an accompaniment written against a shared base
// octave and note unit.  Tempo divides Unit.
type Piece struct {
	Melody        Voice   `yaml:"melody" json:"melody"`
	Accompaniment Voice   `yaml:"accompaniment" json:"accompaniment"`
	BaseOctave    int     `yaml:"base_octave" json:"base_octave"`
	Unit          float64 `yaml:"unit" json:"unit"`
	Tempo         float64 `yaml:"tempo" json:"tempo"`
}

// NewPiece parses both voices with the default gains.
func NewPiece(melody, accompaniment string, baseOctave int, unit, tempo float64) (Piece, error) {
	if !(tempo > 0) || math.IsInf(tempo, 0) {
		return Piece{}, fmt.Errorf("%w: %v", ErrBadTempo, tempo)
	}
	if !(unit >= 0) || math.IsInf(unit, 0) {
		return Piece{}, fmt.Errorf("%w: %v", ErrBadUnit, unit)
	}
	p := Piece{BaseOctave: baseOctave, Unit: unit, Tempo: tempo}
	var err error
	if p.Melody.Notes, err = ParseNotes(melody, baseOctave, p.NoteUnit()); err != nil {
		return Piece{}, fmt.Errorf("melody: %w", err)
	}
	if p.Accompaniment.Notes, err = ParseNotes(accompaniment, baseOctave, p.NoteUnit()); err != nil {
		return Piece{}, fmt.Errorf("accompaniment: %w", err)
	}
	p.Melody.Gain = DefaultMelodyGain
	p.Accompaniment.Gain = DefaultAccompanimentGain
	return p, nil
}

// NoteUnit is the length in seconds of a multiplier-1 note.
func (p Piece) NoteUnit() float64 { return p.Unit / p.Tempo }

// Duration is the length of the longer voice in seconds.
func (p Piece) Duration() float64 {
	return math.Max(Duration(p.Melody.Notes), Duration(p.Accompaniment.Notes))
}

// Mix renders both voices and mixes them by their gains.
func (r *Renderer) Mix(p Piece) Audio {
	return Mix(
		Track{r.Voice(p.Melody.Notes), p.Melody.Gain},
		Track{r.Voice(p.Accompaniment.Notes), p.Accompaniment.Gain},
	)
}

// Render produces the final sample buffer and its sample rate.
func (r *Renderer) Render(p Piece) ([]float32, int) {
	return r.Mix(p).Float32(), int(r.Params.SampleRate)
}
