package notesynth

import (
	"math"
	"testing"
)

func TestFrequency(t *testing.T) {
	p := DefaultParams()
	if f := p.Frequency(A, 4); f != 440 {
		t.Errorf("A4 = %v, want 440", f)
	}
	if f := p.Frequency(A, 5); f != 880 {
		t.Errorf("A5 = %v, want 880", f)
	}
	if f := p.Frequency(A, 3); f != 220 {
		t.Errorf("A3 = %v, want 220", f)
	}
	for oct := -2; oct < 10; oct++ {
		if f := p.Frequency(Pause, oct); f != 0 {
			t.Errorf("Pause octave %d = %v, want 0", oct, f)
		}
	}
	for pitch, want := range map[PitchClass]float64{
		C:  261.6256,
		Cs: 277.1826,
		E:  329.6276,
		G:  391.9954,
		B:  493.8833,
	} {
		if f := p.Frequency(pitch, 4); math.Abs(f-want) > 1e-3 {
			t.Errorf("%v4 = %.4f, want %.4f", pitch, f, want)
		}
	}
}

func TestFrequencyRefFreq(t *testing.T) {
	p := DefaultParams()
	p.RefFreq = 432
	if f := p.Frequency(A, 4); f != 432 {
		t.Errorf("A4 = %v, want 432", f)
	}
}

func TestLegacyPitches(t *testing.T) {
	p := DefaultParams()
	p.Pitches = LegacyPitches
	if p.Frequency(Fs, 4) != p.Frequency(G, 4) {
		t.Error("legacy F# and G should share a frequency")
	}
	std := DefaultParams()
	if p.Frequency(C, 4) != std.Frequency(Cs, 4) {
		t.Errorf("legacy C4 = %v, want standard C#4 %v", p.Frequency(C, 4), std.Frequency(Cs, 4))
	}
	for _, pitch := range []PitchClass{G, Gs, A, As, B} {
		if p.Frequency(pitch, 4) != std.Frequency(pitch, 4) {
			t.Errorf("legacy %v4 differs from standard", pitch)
		}
	}
}

func TestLookupPitch(t *testing.T) {
	for name, want := range map[string]PitchClass{
		"c":  C,
		"C":  C,
		"c#": Cs,
		"D#": Ds,
		"f#": Fs,
		"a#": As,
		"b":  B,
		"p":  Pause,
		"P":  Pause,
	} {
		got, ok := LookupPitch(name)
		if !ok || got != want {
			t.Errorf("LookupPitch(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}
	for _, name := range []string{"", "h", "e#", "b#", "p#", "cb", "c##"} {
		if _, ok := LookupPitch(name); ok {
			t.Errorf("LookupPitch(%q) succeeded", name)
		}
	}
}

func TestPitchClassText(t *testing.T) {
	for p := C; p <= Pause; p++ {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var q PitchClass
		if err := q.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if q != p {
			t.Errorf("%v round-tripped to %v", p, q)
		}
	}
	if _, err := PitchClass(13).MarshalText(); err == nil {
		t.Error("expected error for invalid pitch class")
	}
}

func TestPitchTableText(t *testing.T) {
	var pt PitchTable
	if err := pt.UnmarshalText([]byte("legacy")); err != nil || pt != LegacyPitches {
		t.Errorf("legacy: %v %v", pt, err)
	}
	if err := pt.UnmarshalText([]byte("Standard")); err != nil || pt != StandardPitches {
		t.Errorf("standard: %v %v", pt, err)
	}
	if err := pt.UnmarshalText([]byte("just")); err == nil {
		t.Error("expected error for unknown table")
	}
	if _, err := (PitchTable{1}).MarshalText(); err == nil {
		t.Error("expected error for unnamed table")
	}
}
