package commands

import (
	"github.com/spf13/cobra"
)

var (
	parsePiece  pieceFlags
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse [song]",
	Short: "Print the parsed notes of a piece",
	Example: `  notesynth parse fur_elise
  notesynth parse --melody "2e 2d# 1a2" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePiece.piece(cmd, args)
		if err != nil {
			return err
		}
		return output(cmd.OutOrStdout(), p, parseFormat)
	},
}

func init() {
	parsePiece.register(parseCmd)
	parseCmd.Flags().StringVar(&parseFormat, "format", "yaml", "output format: yaml or json")
}
