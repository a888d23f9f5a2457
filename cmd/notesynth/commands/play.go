package commands

import (
	"github.com/spf13/cobra"

	"github.com/gordonklaus/notesynth"
)

var (
	playPiece pieceFlags
	playSink  string
)

var playCmd = &cobra.Command{
	Use:   "play [song]",
	Short: "Render a piece and play it",
	Long: `Render a piece completely, then play it on an audio device.

Examples:
  notesynth play fur_elise
  notesynth play --sink oto twinkle_star
  notesynth play --melody "0c 0e 0g 1c2" --unit 0.25`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := playPiece.piece(cmd, args)
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		s, err := newSink(playSink, "")
		if err != nil {
			return err
		}
		ctx, cancel := interruptContext()
		defer cancel()
		return notesynth.Play(ctx, logged(s, "playing"), r, p)
	},
}

func init() {
	playPiece.register(playCmd)
	playCmd.Flags().StringVar(&playSink, "sink", "portaudio", "audio output: portaudio or oto")
}
