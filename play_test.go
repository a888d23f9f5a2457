package notesynth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPlay(t *testing.T) {
	r := newTestRenderer(t)
	p, err := NewPiece("2e 2d#", "0a", 4, 0.01, 1)
	if err != nil {
		t.Fatal(err)
	}
	var got []float32
	var gotRate int
	sink := SinkFunc(func(ctx context.Context, samples []float32, rate int) error {
		got, gotRate = samples, rate
		return nil
	})
	if err := Play(context.Background(), sink, r, p); err != nil {
		t.Fatal(err)
	}
	want, _ := r.Render(p)
	if gotRate != 44100 || len(got) != len(want) {
		t.Fatalf("sink got %d samples at %d, want %d at 44100", len(got), gotRate, len(want))
	}
}

func TestPlayError(t *testing.T) {
	r := newTestRenderer(t)
	errDevice := errors.New("no device")
	sink := SinkFunc(func(context.Context, []float32, int) error { return errDevice })
	if err := Play(context.Background(), sink, r, Piece{Tempo: 1}); !errors.Is(err, errDevice) {
		t.Fatalf("got %v, want %v", err, errDevice)
	}
}

func TestPlayAsyncStop(t *testing.T) {
	r := newTestRenderer(t)
	started := make(chan struct{})
	sink := SinkFunc(func(ctx context.Context, _ []float32, _ int) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	c := PlayAsync(context.Background(), sink, r, Piece{Tempo: 1})
	<-started
	c.Stop()
	select {
	case <-c.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("playback did not stop")
	}
	if err := c.Err(); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
