package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/notesynth"
)

var (
	renderPiece  pieceFlags
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render [song]",
	Short: "Render a piece to a WAV file",
	Example: `  notesynth render -o elise.wav fur_elise
  notesynth render -o scale.wav --melody "0c 0d 0e 0f 0g 0a 0b 1c2" --unit 0.3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderOutput == "" {
			return fmt.Errorf("output file is required, use -o flag")
		}
		p, err := renderPiece.piece(cmd, args)
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		s, err := newSink("", renderOutput)
		if err != nil {
			return err
		}
		ctx, cancel := interruptContext()
		defer cancel()
		if err := notesynth.Play(ctx, logged(s, "writing "+renderOutput), r, p); err != nil {
			return err
		}
		logger.Info("wrote", "file", renderOutput)
		return nil
	},
}

func init() {
	renderPiece.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output WAV file")
}
