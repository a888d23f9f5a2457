package wavsink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []float32{0, 0.5, -0.5, 1, -1, 2, -2}
	if err := New(path).Play(context.Background(), samples, 44100); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		t.Fatal("invalid wav file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if d.SampleRate != 44100 || d.NumChans != 1 || d.BitDepth != 16 {
		t.Errorf("format %d Hz, %d channels, %d bits", d.SampleRate, d.NumChans, d.BitDepth)
	}
	want := []int{0, 16384, -16384, 32767, -32767, 32767, -32767}
	if len(buf.Data) != len(want) {
		t.Fatalf("got %d samples, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestSinkCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(path).Play(ctx, []float32{0}, 44100); err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("canceled play created a file")
	}
}
