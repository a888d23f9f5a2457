// Package wavsink writes rendered buffers to 16-bit mono WAV files.
package wavsink

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// Sink writes each played buffer to Path, replacing any existing file.
type Sink struct {
	Path string
}

func New(path string) *Sink { return &Sink{Path: path} }

func (s *Sink) Play(ctx context.Context, samples []float32, sampleRate int) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("wavsink: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wavsink: %w", cerr)
		}
	}()
	return Encode(f, samples, sampleRate)
}

// Encode writes samples as a WAV stream.  Samples are clipped to [-1, 1].
func Encode(w io.WriteSeeker, samples []float32, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Data:           make([]int, len(samples)),
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: 1},
		SourceBitDepth: bitDepth,
	}
	const full = 1<<(bitDepth-1) - 1
	for i, x := range samples {
		buf.Data[i] = int(math.Round(math.Max(-1, math.Min(1, float64(x))) * full))
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavsink: write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavsink: close: %w", err)
	}
	return nil
}
