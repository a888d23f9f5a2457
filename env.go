package notesynth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

var (
	// ViolinEnvelope rises quickly, falls back and sustains: a rough bowed
	// shape.
	ViolinEnvelope = []float64{0.5, 0.7, 0.9, 1.0, 0.4, 0.5, 0.5, 0.5, 0.4, 0.4}

	// PianoEnvelope decays linearly from the strike.
	PianoEnvelope = []float64{1.0, 0.8, 0.6, 0.4, 0.2}
)

// Envelopes maps preset names to their control points.
var Envelopes = map[string][]float64{
	"violin": ViolinEnvelope,
	"piano":  PianoEnvelope,
}

// An Envelope shapes the amplitude of a whole note.  Its control points are
// spread evenly from the first sample to one past the last and interpolated
// with a not-a-knot cubic spline.
type Envelope struct {
	Points []float64
}

func (e *Envelope) InitAudio(p Params) { e.Points = p.Envelope }

// Curve returns the interpolated gain curve for a buffer of n samples.  With
// fewer than four points the curve is piecewise linear; one point is a
// constant gain.
func (e Envelope) Curve(n int) (interp.Predictor, error) {
	switch len(e.Points) {
	case 0:
		return constant(1), nil
	case 1:
		return constant(e.Points[0]), nil
	}
	xs := linspace(0, float64(n), len(e.Points))
	var f interface {
		interp.Predictor
		Fit(xs, ys []float64) error
	}
	if len(e.Points) < 4 {
		f = new(interp.PiecewiseLinear)
	} else {
		f = new(interp.NotAKnotCubic)
	}
	if err := f.Fit(xs, e.Points); err != nil {
		return nil, fmt.Errorf("fit envelope: %w", err)
	}
	return f, nil
}

// Modulate scales a in place by the absolute value of the envelope curve
// and returns it.
func (e Envelope) Modulate(a Audio) Audio {
	if len(a) == 0 {
		return a
	}
	c, err := e.Curve(len(a))
	if err != nil {
		panic("notesynth: " + err.Error())
	}
	for i := range a {
		a[i] *= math.Abs(c.Predict(float64(i)))
	}
	return a
}

type constant float64

func (c constant) Predict(float64) float64 { return float64(c) }

func linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return xs
}
