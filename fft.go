package notesynth

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

const maxFFTSize = 1 << 16

// A Spectrum is the magnitude spectrum of a Hann-windowed frame.
type Spectrum struct {
	Mag        []float64 // bins 0 through size/2
	SampleRate float64
	Size       int
}

// NewSpectrum analyses the first power-of-two-sized frame of a, up to 65536
// samples.
func NewSpectrum(a Audio, sampleRate float64) (*Spectrum, error) {
	size := 1
	for size*2 <= len(a) && size*2 <= maxFFTSize {
		size *= 2
	}
	if size < 2 {
		return nil, errors.New("spectrum: signal too short")
	}
	f, err := fft.New(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	buf := make([]complex128, size)
	for i := range buf {
		env := (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
		buf[i] = complex(a[i]*env, 0)
	}
	buf = f.Transform(buf)
	s := &Spectrum{Mag: make([]float64, size/2+1), SampleRate: sampleRate, Size: size}
	for i := range s.Mag {
		s.Mag[i] = cmplx.Abs(buf[i])
	}
	return s, nil
}

func (s *Spectrum) BinFreq(i int) float64 {
	return float64(i) * s.SampleRate / float64(s.Size)
}

// Peak returns the frequency of the strongest bin above DC.  It returns 0
// for a silent frame.
func (s *Spectrum) Peak() float64 {
	best, bestMag := 0, 0.0
	for i := 1; i < len(s.Mag); i++ {
		if s.Mag[i] > bestMag {
			best, bestMag = i, s.Mag[i]
		}
	}
	return s.BinFreq(best)
}

// PeakFreq is a shorthand for the spectral peak of a.
func PeakFreq(a Audio, sampleRate float64) (float64, error) {
	s, err := NewSpectrum(a, sampleRate)
	if err != nil {
		return 0, err
	}
	return s.Peak(), nil
}
