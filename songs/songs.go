// Package songs holds pieces written in notesynth notation.
package songs

import (
	"fmt"

	"github.com/gordonklaus/notesynth"
)

type Song struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Melody        string  `yaml:"melody" json:"melody"`
	Accompaniment string  `yaml:"accompaniment" json:"accompaniment"`
	BaseOctave    int     `yaml:"base_octave" json:"base_octave"`
	Unit          float64 `yaml:"unit" json:"unit"`
	Tempo         float64 `yaml:"tempo" json:"tempo"`
}

// Piece parses the song.
func (s Song) Piece() (notesynth.Piece, error) {
	p, err := notesynth.NewPiece(s.Melody, s.Accompaniment, s.BaseOctave, s.Unit, s.Tempo)
	if err != nil {
		return notesynth.Piece{}, fmt.Errorf("song %s: %w", s.ID, err)
	}
	return p, nil
}

var FurElise = Song{
	ID:   "fur_elise",
	Name: "Für Elise",
	Melody: "2e 2d# 2e 2d# 2e 1b 2d 2c 1a2 0p 1c 1e 1a 1b2 0p 1e 1g# 1b 2c2 0p 1e " +
		"2e 2d# 2e 2d# 2e 1b 2d 2c 1a2 0p 1c 1e 1a 1b2 0p 1e 2c 1b 1a2 " +
		"0p 1b 2c 2d 2e3 1g 2f 2e 2d3 1f 2e 2d 2c3 1e 2d 2c 1b3 1b3",
	Accompaniment: "0p2 0p6 0f 1c 1f 0p3 0c 1c 1e 0p3 0f 1c 1f 0p3 0p48",
	BaseOctave:    2,
	Unit:          1.0,
	Tempo:         4.0,
}

var TwinkleStar = Song{
	ID:            "twinkle_star",
	Name:          "Twinkle, Twinkle, Little Star",
	Melody:        "0c 0c 0g 0g 0a 0a 0g2 0f 0f 0e 0e 0d 0d 0c2",
	Accompaniment: "-1c2 -1e2 -1f2 -1c2 -1f2 -1c2 -1g2 -1c2",
	BaseOctave:    4,
	Unit:          0.5,
	Tempo:         1.0,
}

var OdeToJoy = Song{
	ID:            "ode_to_joy",
	Name:          "Ode to Joy",
	Melody:        "0e 0e 0f 0g 0g 0f 0e 0d 0c 0c 0d 0e 0e1.5 0d0.5 0d2",
	Accompaniment: "-1c4 -1g4 -1c4 -1g2 -1g2",
	BaseOctave:    4,
	Unit:          1.0,
	Tempo:         2.0,
}

var All = []Song{FurElise, TwinkleStar, OdeToJoy}

// ByID returns the song with the given ID, or nil.
func ByID(id string) *Song {
	for i := range All {
		if All[i].ID == id {
			return &All[i]
		}
	}
	return nil
}

func IDs() []string {
	ids := make([]string, len(All))
	for i, s := range All {
		ids[i] = s.ID
	}
	return ids
}
