package notesynth

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewPiece(t *testing.T) {
	p, err := NewPiece("2e 2d# 1a2", "0p2 0f", 2, 1.0, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if p.NoteUnit() != 0.25 {
		t.Errorf("note unit = %v, want 0.25", p.NoteUnit())
	}
	if len(p.Melody.Notes) != 3 || len(p.Accompaniment.Notes) != 2 {
		t.Fatalf("got %d and %d notes", len(p.Melody.Notes), len(p.Accompaniment.Notes))
	}
	if p.Melody.Notes[2] != (Note{A, 3, 0.5}) {
		t.Errorf("melody[2] = %v", p.Melody.Notes[2])
	}
	if p.Melody.Gain != DefaultMelodyGain || p.Accompaniment.Gain != DefaultAccompanimentGain {
		t.Errorf("gains = %v, %v", p.Melody.Gain, p.Accompaniment.Gain)
	}
	if p.Duration() != 1.0 {
		t.Errorf("duration = %v, want 1", p.Duration())
	}
}

func TestNewPieceErrors(t *testing.T) {
	if _, err := NewPiece("2e", "", 4, 1, 0); !errors.Is(err, ErrBadTempo) {
		t.Errorf("zero tempo: %v", err)
	}
	if _, err := NewPiece("2e", "", 4, 1, math.Inf(1)); !errors.Is(err, ErrBadTempo) {
		t.Errorf("infinite tempo: %v", err)
	}
	if _, err := NewPiece("2e", "", 4, -1, 1); !errors.Is(err, ErrBadUnit) {
		t.Errorf("negative unit: %v", err)
	}

	_, err := NewPiece("2e 2q", "", 4, 1, 1)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Index != 1 || !strings.HasPrefix(err.Error(), "melody:") {
		t.Errorf("bad melody: %v", err)
	}
	_, err = NewPiece("2e", "0p 1e#", 4, 1, 1)
	if !errors.As(err, &pe) || pe.Index != 1 || !strings.HasPrefix(err.Error(), "accompaniment:") {
		t.Errorf("bad accompaniment: %v", err)
	}
}

func TestNewPieceZeroUnit(t *testing.T) {
	p, err := NewPiece("2e 2d#", "0a", 4, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRenderer(t)
	samples, rate := r.Render(p)
	if len(samples) != 0 || rate != 44100 {
		t.Errorf("got %d samples at %d", len(samples), rate)
	}
}

func TestRender(t *testing.T) {
	r := newTestRenderer(t)
	p, err := NewPiece("2e 2d# 2e", "0p 0a4", 2, 1.0, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	samples, rate := r.Render(p)
	if rate != 44100 {
		t.Errorf("rate = %d", rate)
	}
	if want := 5 * 4410; len(samples) != want {
		t.Fatalf("length %d, want %d", len(samples), want)
	}

	melody := r.Voice(p.Melody.Notes)
	acc := r.Voice(p.Accompaniment.Notes)
	for i := range samples {
		want := 0.2 * acc[i]
		if i < len(melody) {
			want += 0.1 * melody[i]
		}
		if math.Abs(float64(samples[i])-want) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, samples[i], want)
		}
	}
	for i := 0; i < 4410; i++ {
		if want := float32(0.1 * melody[i]); samples[i] != want {
			t.Fatalf("sample %d = %v, want melody only %v", i, samples[i], want)
		}
	}
}
