// Package otosink plays rendered buffers through oto, a pure Go audio
// output library.
//
// oto allows a single context per process and fixes its sample rate when the
// context is created, so a Sink keeps its context for reuse and refuses
// buffers at any other rate.
package otosink

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const pollInterval = 10 * time.Millisecond

type Sink struct {
	mu   sync.Mutex
	otx  *oto.Context
	rate int
}

func New() *Sink { return &Sink{} }

func (s *Sink) context(rate int) (*oto.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.otx != nil {
		if s.rate != rate {
			return nil, fmt.Errorf("otosink: context already running at %d Hz, got %d Hz", s.rate, rate)
		}
		return s.otx, nil
	}
	otx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("otosink: %w", err)
	}
	<-ready
	s.otx, s.rate = otx, rate
	return otx, nil
}

func (s *Sink) Play(ctx context.Context, samples []float32, sampleRate int) error {
	otx, err := s.context(sampleRate)
	if err != nil {
		return err
	}
	p := otx.NewPlayer(bytes.NewReader(Encode(samples)))
	defer p.Close()

	p.Play()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-tick.C:
		}
	}
	if err := p.Err(); err != nil {
		return fmt.Errorf("otosink: %w", err)
	}
	return nil
}

// Encode returns samples as little-endian float32 bytes.
func Encode(samples []float32) []byte {
	b := make([]byte, 4*len(samples))
	for i, x := range samples {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(x))
	}
	return b
}
