package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/notesynth"
	"github.com/gordonklaus/notesynth/songs"
)

// pieceFlags selects a built-in song or describes a piece inline.
type pieceFlags struct {
	melody            string
	accompaniment     string
	octave            int
	unit              float64
	tempo             float64
	melodyGain        float64
	accompanimentGain float64
}

func (f *pieceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.melody, "melody", "", "melody notation")
	fs.StringVar(&f.accompaniment, "accompaniment", "", "accompaniment notation")
	fs.IntVar(&f.octave, "octave", 4, "base octave")
	fs.Float64Var(&f.unit, "unit", 1.0, "length of the shortest note in seconds")
	fs.Float64Var(&f.tempo, "tempo", 1.0, "tempo scalar dividing the unit")
	fs.Float64Var(&f.melodyGain, "melody-gain", notesynth.DefaultMelodyGain, "melody gain")
	fs.Float64Var(&f.accompanimentGain, "accompaniment-gain", notesynth.DefaultAccompanimentGain, "accompaniment gain")
}

// piece builds the piece named by args[0] or given by the notation flags.
// Explicitly set flags override a song's own settings.
func (f *pieceFlags) piece(cmd *cobra.Command, args []string) (notesynth.Piece, error) {
	fs := cmd.Flags()
	var (
		p   notesynth.Piece
		err error
	)
	switch {
	case len(args) > 0:
		s := songs.ByID(args[0])
		if s == nil {
			return p, fmt.Errorf("unknown song %q, run: notesynth songs", args[0])
		}
		song := *s
		if fs.Changed("melody") {
			song.Melody = f.melody
		}
		if fs.Changed("accompaniment") {
			song.Accompaniment = f.accompaniment
		}
		if fs.Changed("octave") {
			song.BaseOctave = f.octave
		}
		if fs.Changed("unit") {
			song.Unit = f.unit
		}
		if fs.Changed("tempo") {
			song.Tempo = f.tempo
		}
		p, err = song.Piece()
	case f.melody != "" || f.accompaniment != "":
		p, err = notesynth.NewPiece(f.melody, f.accompaniment, f.octave, f.unit, f.tempo)
	default:
		return p, fmt.Errorf("name a song or pass --melody/--accompaniment")
	}
	if err != nil {
		return p, err
	}
	p.Melody.Gain = f.melodyGain
	p.Accompaniment.Gain = f.accompanimentGain
	return p, nil
}
