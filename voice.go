package notesynth

import (
	"fmt"
	"log/slog"
)

// A Voice is one independently timed line of a piece.
type Voice struct {
	Notes []Note  `yaml:"notes" json:"notes"`
	Gain  float64 `yaml:"gain" json:"gain"`
}

// Renderer turns notes into audio.  It holds only configuration and may be
// used from several goroutines at once.
type Renderer struct {
	Params Params
	Osc    HarmonicOsc
	Env    Envelope

	// Logger, if set, receives a debug record per rendered voice.
	Logger *slog.Logger
}

func NewRenderer(p Params) (*Renderer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Envelope = append([]float64(nil), p.Envelope...)
	r := &Renderer{}
	Init(r, p)
	return r, nil
}

// Note synthesizes a single note and applies the envelope.  An invalid pitch
// class renders as a rest.
func (r *Renderer) Note(n Note) Audio {
	return r.Env.Modulate(r.Osc.Sing(r.Params.Frequency(n.Pitch, n.Octave), n.Duration))
}

// Voice renders notes one after another with no overlap.  Rests keep their
// length as silence.
func (r *Renderer) Voice(notes []Note) Audio {
	parts := make([]Audio, len(notes))
	for i, note := range notes {
		parts[i] = r.Note(note)
	}
	a := Concat(parts...)
	if r.Logger != nil {
		r.Logger.Debug("rendered voice", "notes", len(notes), "samples", len(a), "peak", a.Peak())
	}
	return a
}

// Tone renders a single enveloped tone at freq.
func (r *Renderer) Tone(freq, dur float64) Audio {
	return r.Env.Modulate(r.Osc.Sing(freq, dur))
}

type Track struct {
	Audio Audio
	Gain  float64
}

// Mix sums the tracks, each scaled by its gain.  The result is as long as the
// longest track; shorter ones are treated as zero-padded.
func Mix(tracks ...Track) Audio {
	n := 0
	for _, t := range tracks {
		n = max(n, len(t.Audio))
	}
	out := make(Audio, n)
	for _, t := range tracks {
		out.AddX(t.Audio, t.Gain)
	}
	return out
}

func (v Voice) String() string {
	return fmt.Sprintf("%d notes, %gs, gain %g", len(v.Notes), Duration(v.Notes), v.Gain)
}
