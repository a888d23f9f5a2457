// Command notesynth renders pieces written in a compact note notation and
// plays them or writes them to WAV files.
//
// Usage:
//
//	notesynth [flags] <command> [args]
//
// Commands:
//
//	play    - render a piece and play it on an audio device
//	render  - render a piece to a WAV file
//	parse   - print the parsed notes of a piece as YAML or JSON
//	tone    - play or write a single tone
//	songs   - list the built-in songs
//
// Notation: each token is <octave offset><pitch>[#][multiplier], e.g. "2e",
// "1a2", "2d#", "0p3".
package main

import (
	"log/slog"
	"os"

	"github.com/denizsincar29/goerror"

	"github.com/gordonklaus/notesynth/cmd/notesynth/commands"
)

func main() {
	e := goerror.NewError(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	e.Must(commands.Execute(), "notesynth failed")
}
