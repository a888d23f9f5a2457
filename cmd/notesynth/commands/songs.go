package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gordonklaus/notesynth/songs"
)

var (
	idStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "List the built-in songs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, s := range songs.All {
			p, err := s.Piece()
			if err != nil {
				return err
			}
			info := fmt.Sprintf("%.1fs, %d + %d notes", p.Duration(), len(p.Melody.Notes), len(p.Accompaniment.Notes))
			fmt.Fprintf(w, "%s  %s  %s\n", idStyle.Width(14).Render(s.ID), s.Name, infoStyle.Render(info))
		}
		return nil
	},
}
