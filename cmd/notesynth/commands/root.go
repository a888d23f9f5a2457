package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/notesynth"
)

var (
	// Global flags
	paramsFile   string
	verbose      bool
	legacyTuning bool
	envelopeName string
	harmonics    int

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

var rootCmd = &cobra.Command{
	Use:   "notesynth",
	Short: "Render note notation to audio",
	Long: `notesynth renders two-voice pieces written in a compact note notation.

Each token is <octave offset><pitch>[#][multiplier]:
  2e      E, two octaves above the base octave, one unit long
  1a2     A, one octave up, two units long
  2d#     D sharp
  0p3     a rest three units long

Examples:
  notesynth songs
  notesynth play fur_elise
  notesynth render -o elise.wav fur_elise
  notesynth parse --melody "2e 2d# 2e" --octave 4
  notesynth tone a4`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&paramsFile, "params", "", "YAML file with synthesis parameters")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&legacyTuning, "legacy-tuning", false, "use the legacy pitch table (F# and G share a pitch)")
	rootCmd.PersistentFlags().StringVar(&envelopeName, "envelope", "", "envelope preset: violin or piano")
	rootCmd.PersistentFlags().IntVar(&harmonics, "harmonics", 0, "number of harmonics per note (default 8)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(toneCmd)
	rootCmd.AddCommand(songsCmd)
}

// loadParams layers the params file and the global flags over the defaults.
func loadParams() (notesynth.Params, error) {
	p := notesynth.DefaultParams()
	if paramsFile != "" {
		f, err := os.Open(paramsFile)
		if err != nil {
			return p, fmt.Errorf("failed to open params file: %w", err)
		}
		defer f.Close()
		if p, err = notesynth.LoadParams(f); err != nil {
			return p, fmt.Errorf("failed to load %s: %w", paramsFile, err)
		}
	}
	if legacyTuning {
		p.Pitches = notesynth.LegacyPitches
	}
	if envelopeName != "" {
		env, ok := notesynth.Envelopes[envelopeName]
		if !ok {
			return p, fmt.Errorf("unknown envelope %q", envelopeName)
		}
		p.Envelope = env
	}
	if harmonics != 0 {
		p.Harmonics = harmonics
	}
	return p, p.Validate()
}

func newRenderer() (*notesynth.Renderer, error) {
	p, err := loadParams()
	if err != nil {
		return nil, err
	}
	r, err := notesynth.NewRenderer(p)
	if err != nil {
		return nil, err
	}
	r.Logger = logger
	return r, nil
}
