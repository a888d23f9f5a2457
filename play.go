package notesynth

import (
	"context"
	"fmt"
)

// A Sink plays or stores a finished buffer.  Implementations acquire their
// device or file inside Play and release it before returning, whether or not
// the write succeeded.
type Sink interface {
	Play(ctx context.Context, samples []float32, sampleRate int) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, samples []float32, sampleRate int) error

func (f SinkFunc) Play(ctx context.Context, samples []float32, sampleRate int) error {
	return f(ctx, samples, sampleRate)
}

// Play renders p completely and hands the result to s.
func Play(ctx context.Context, s Sink, r *Renderer, p Piece) error {
	samples, rate := r.Render(p)
	if r.Logger != nil {
		r.Logger.Info("playing piece", "samples", len(samples), "rate", rate, "seconds", p.Duration())
	}
	if err := s.Play(ctx, samples, rate); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// PlayControl is returned by PlayAsync.  Done is closed once the sink
// returns; Err is valid after that.
type PlayControl struct {
	Done   <-chan struct{}
	cancel context.CancelFunc
	err    *error
}

// PlayAsync plays p in the background.
func PlayAsync(ctx context.Context, s Sink, r *Renderer, p Piece) PlayControl {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c := PlayControl{Done: done, cancel: cancel, err: new(error)}
	go func() {
		defer close(done)
		defer cancel()
		*c.err = Play(ctx, s, r, p)
	}()
	return c
}

func (c PlayControl) Stop() { c.cancel() }

func (c PlayControl) Err() error {
	<-c.Done
	return *c.err
}
