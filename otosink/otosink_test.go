package otosink

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestEncode(t *testing.T) {
	samples := []float32{0, 1, -0.5, 0.25}
	b := Encode(samples)
	if len(b) != 16 {
		t.Fatalf("got %d bytes, want 16", len(b))
	}
	for i, want := range samples {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
		if got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
	if len(Encode(nil)) != 0 {
		t.Error("nil samples should encode to nothing")
	}
}
