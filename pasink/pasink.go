// Package pasink plays rendered buffers on the default PortAudio output
// device.  Each call to Play initializes PortAudio, opens a blocking mono
// float32 stream, writes the whole buffer and tears everything down again.
package pasink

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const DefaultFramesPerBuffer = 1024

type Sink struct {
	FramesPerBuffer int
}

func New() *Sink { return &Sink{FramesPerBuffer: DefaultFramesPerBuffer} }

func (s *Sink) Play(ctx context.Context, samples []float32, sampleRate int) (err error) {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio: initialize: %w", err)
	}
	defer func() {
		if terr := portaudio.Terminate(); terr != nil && err == nil {
			err = fmt.Errorf("portaudio: terminate: %w", terr)
		}
	}()

	n := s.FramesPerBuffer
	if n <= 0 {
		n = DefaultFramesPerBuffer
	}
	out := make([]float32, n)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), len(out), &out)
	if err != nil {
		return fmt.Errorf("portaudio: open stream: %w", err)
	}
	defer stream.Close()
	if err := stream.Start(); err != nil {
		return fmt.Errorf("portaudio: start stream: %w", err)
	}
	defer stream.Stop()

	for _, chunk := range Chunks(samples, n) {
		if err := ctx.Err(); err != nil {
			return err
		}
		clear(out[copy(out, chunk):])
		if err := stream.Write(); err != nil && !errors.Is(err, portaudio.OutputUnderflowed) {
			return fmt.Errorf("portaudio: write: %w", err)
		}
	}
	return nil
}

// Chunks splits samples into consecutive slices of at most n samples.
func Chunks(samples []float32, n int) [][]float32 {
	var chunks [][]float32
	for len(samples) > n {
		chunks = append(chunks, samples[:n])
		samples = samples[n:]
	}
	if len(samples) > 0 {
		chunks = append(chunks, samples)
	}
	return chunks
}
