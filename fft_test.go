package notesynth

import (
	"math"
	"testing"
)

func TestPeakFreq(t *testing.T) {
	r := newTestRenderer(t)
	for _, tt := range []struct {
		pitch  PitchClass
		octave int
	}{
		{A, 4}, {A, 5}, {E, 6}, {C, 4}, {G, 3},
	} {
		want := r.Params.Frequency(tt.pitch, tt.octave)
		a := r.Note(Note{tt.pitch, tt.octave, 1})
		got, err := PeakFreq(a, r.Params.SampleRate)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-want) > 2 {
			t.Errorf("%v%d: peak at %.2f Hz, want %.2f", tt.pitch, tt.octave, got, want)
		}
	}
}

func TestPeakFreqSilence(t *testing.T) {
	got, err := PeakFreq(make(Audio, 4096), 44100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("silence peak = %v, want 0", got)
	}
}

func TestSpectrumShort(t *testing.T) {
	if _, err := NewSpectrum(Audio{1}, 44100); err == nil {
		t.Error("expected error for one sample")
	}
	s, err := NewSpectrum(make(Audio, 1000), 44100)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size != 512 || len(s.Mag) != 257 {
		t.Errorf("size %d with %d bins", s.Size, len(s.Mag))
	}
}
