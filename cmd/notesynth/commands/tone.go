package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/notesynth"
)

var (
	toneDuration float64
	toneSink     string
	toneOutput   string
	toneRaw      bool
)

var toneCmd = &cobra.Command{
	Use:   "tone <pitch|freq>",
	Short: "Play a single tone",
	Long: `Play a single tone, given either as a pitch name with an octave
(a4, c#5) or as a frequency in Hz.  The tone is shaped by the envelope
unless --raw is given.

Examples:
  notesynth tone a4
  notesynth tone 261.63 --duration 2
  notesynth tone c#5 -o tone.wav
  notesynth tone a4 --raw --harmonics 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}
		freq, err := parseFreq(r.Params, args[0])
		if err != nil {
			return err
		}
		a := toneAudio(r, freq)
		if peak, err := notesynth.PeakFreq(a, r.Params.SampleRate); err == nil {
			logger.Debug("tone spectrum", "freq", freq, "peak", peak)
		}
		s, err := newSink(toneSink, toneOutput)
		if err != nil {
			return err
		}
		ctx, cancel := interruptContext()
		defer cancel()
		return logged(s, "tone").Play(ctx, a.Float32(), int(r.Params.SampleRate))
	},
}

// toneAudio renders the tone, without the envelope when --raw is set.
func toneAudio(r *notesynth.Renderer, freq float64) notesynth.Audio {
	if toneRaw {
		return r.Osc.Sing(freq, toneDuration)
	}
	return r.Tone(freq, toneDuration)
}

// parseFreq accepts "a4", "C#3" or a plain frequency.
func parseFreq(p notesynth.Params, s string) (float64, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if !(f >= 0) {
			return 0, fmt.Errorf("negative frequency %v", f)
		}
		return f, nil
	}
	i := strings.IndexAny(s, "-0123456789")
	if i > 0 {
		pitch, ok := notesynth.LookupPitch(s[:i])
		octave, err := strconv.Atoi(s[i:])
		if ok && err == nil {
			return p.Frequency(pitch, octave), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is neither a pitch like a4 nor a frequency", notesynth.ErrUnknownPitch, s)
}

func init() {
	toneCmd.Flags().Float64Var(&toneDuration, "duration", 1.0, "tone length in seconds")
	toneCmd.Flags().StringVar(&toneSink, "sink", "portaudio", "audio output: portaudio or oto")
	toneCmd.Flags().BoolVar(&toneRaw, "raw", false, "skip the envelope")
	toneCmd.Flags().StringVarP(&toneOutput, "output", "o", "", "write a WAV file instead of playing")
}
