package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/hako/durafmt"

	"github.com/gordonklaus/notesynth"
	"github.com/gordonklaus/notesynth/otosink"
	"github.com/gordonklaus/notesynth/pasink"
	"github.com/gordonklaus/notesynth/wavsink"
)

// newSink returns the sink for the --sink and --output flags.  A non-empty
// output path always selects the WAV sink.
func newSink(name, output string) (notesynth.Sink, error) {
	if output != "" {
		return wavsink.New(output), nil
	}
	switch name {
	case "portaudio", "pa", "":
		return pasink.New(), nil
	case "oto":
		return otosink.New(), nil
	}
	return nil, fmt.Errorf("unknown sink %q (want portaudio or oto)", name)
}

// interruptContext is canceled on Ctrl-C.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// logged wraps a sink with a summary of what it was handed.
func logged(s notesynth.Sink, what string) notesynth.Sink {
	return notesynth.SinkFunc(func(ctx context.Context, samples []float32, rate int) error {
		a := make(notesynth.Audio, len(samples))
		for i, x := range samples {
			a[i] = float64(x)
		}
		d := time.Duration(float64(len(samples)) / float64(rate) * float64(time.Second))
		logger.Info(what,
			"length", durafmt.Parse(d.Round(time.Millisecond)).LimitFirstN(2).String(),
			"samples", humanize.Comma(int64(len(samples))),
			"size", humanize.Bytes(uint64(4*len(samples))),
			"peak", fmt.Sprintf("%.3f", a.Peak()),
			"rms", fmt.Sprintf("%.3f", a.RMS()),
		)
		return s.Play(ctx, samples, rate)
	})
}

// output writes v as YAML or JSON.
func output(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unsupported output format: %s", format)
}
