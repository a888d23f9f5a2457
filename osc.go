package notesynth

import "math"

// Samples returns the number of samples covering dur seconds at rate.
func Samples(dur, rate float64) int {
	n := math.Round(dur * rate)
	if !(n > 0) {
		return 0
	}
	return int(n)
}

// Harmonics sums the first n harmonics of freq, the k-th weighted 1/k, over
// dur seconds.  A zero frequency yields silence of the same length.
func Harmonics(freq, dur float64, n int, rate float64) Audio {
	a := make(Audio, Samples(dur, rate))
	if freq == 0 {
		return a
	}
	w := 2 * math.Pi * freq / rate
	for t := range a {
		x := 0.0
		for k := 1; k <= n; k++ {
			x += math.Sin(w*float64(k)*float64(t)) / float64(k)
		}
		a[t] = x
	}
	return a
}

// HarmonicOsc renders notes with the harmonic count and sample rate of its
// Params.
type HarmonicOsc struct {
	Params Params
}

func (o *HarmonicOsc) InitAudio(p Params) { o.Params = p }

func (o *HarmonicOsc) Sing(freq, dur float64) Audio {
	return Harmonics(freq, dur, o.Params.Harmonics, o.Params.SampleRate)
}
