package notesynth

import "math"

// Audio is a mono waveform.  Its sample rate is implied by the Params it was
// rendered with.
type Audio []float64

// AddX adds f*x into z.  x may be shorter than z; samples past its end are
// treated as zero.
func (z Audio) AddX(x Audio, f float64) Audio {
	for i := range x {
		z[i] += f * x[i]
	}
	return z
}

func (z Audio) Float32() []float32 {
	out := make([]float32, len(z))
	for i, x := range z {
		out[i] = float32(x)
	}
	return out
}

// Peak returns the largest absolute sample value.
func (z Audio) Peak() float64 {
	peak := 0.0
	for _, x := range z {
		peak = math.Max(peak, math.Abs(x))
	}
	return peak
}

// RMS returns the root mean square amplitude of the whole buffer.
func (z Audio) RMS() float64 {
	if len(z) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range z {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(z)))
}

// Concat returns the buffers joined end to end.
func Concat(a ...Audio) Audio {
	n := 0
	for _, x := range a {
		n += len(x)
	}
	out := make(Audio, 0, n)
	for _, x := range a {
		out = append(out, x...)
	}
	return out
}
