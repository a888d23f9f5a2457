package notesynth

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownPitch = errors.New("unknown pitch")
	ErrBadOctave    = errors.New("malformed octave")
	ErrBadDuration  = errors.New("malformed duration")
)

// ParseError reports a token that could not be parsed.  Err is one of
// ErrUnknownPitch, ErrBadOctave or ErrBadDuration.
type ParseError struct {
	Index  int // token index within the notation
	Token  string
	Offset int // byte offset within Token
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notesynth: token %d %q at %d: %v", e.Index, e.Token, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseNotes parses whitespace-separated tokens of the form
//
//	<octave offset><pitch>[#][multiplier]
//
// e.g. "2e", "1a2", "2d#", "-1c#1.5", "0p3".  Each note lasts multiplier*unit
// seconds and sits baseOctave+offset.  The p pitch is a rest.
func ParseNotes(notation string, baseOctave int, unit float64) ([]Note, error) {
	fields := strings.Fields(notation)
	notes := make([]Note, 0, len(fields))
	for i, tok := range fields {
		t, err := ParseToken(tok)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Index = i
			}
			return nil, err
		}
		notes = append(notes, Note{
			Pitch:    t.Pitch,
			Octave:   baseOctave + t.Offset,
			Duration: unit * t.Multiplier,
		})
	}
	return notes, nil
}

// A Token is a single note of notation before it is placed in a piece.
type Token struct {
	Offset     int
	Pitch      PitchClass
	Multiplier float64
}

type lexState int

const (
	readOctave lexState = iota
	readPitch
	readSharp
	readDuration
	lexDone
)

func ParseToken(tok string) (Token, error) {
	t := Token{Multiplier: 1}
	fail := func(i int, err error) (Token, error) {
		return Token{}, &ParseError{Token: tok, Offset: i, Err: err}
	}

	var letter byte
	i := 0
	for state := readOctave; state != lexDone; {
		switch state {
		case readOctave:
			sign := 1
			if i < len(tok) && (tok[i] == '-' || tok[i] == '+') {
				if tok[i] == '-' {
					sign = -1
				}
				i++
			}
			if i >= len(tok) || !isDigit(tok[i]) {
				return fail(i, ErrBadOctave)
			}
			t.Offset = sign * int(tok[i]-'0')
			i++
			state = readPitch
		case readPitch:
			if i >= len(tok) {
				return fail(i, ErrUnknownPitch)
			}
			letter = tok[i]
			i++
			state = readSharp
		case readSharp:
			name := string(letter)
			if i < len(tok) && tok[i] == '#' {
				name += "#"
				i++
			}
			p, ok := LookupPitch(name)
			if !ok {
				return fail(i-len(name), ErrUnknownPitch)
			}
			t.Pitch = p
			state = readDuration
		case readDuration:
			if i < len(tok) {
				m, ok := parseMultiplier(tok[i:])
				if !ok {
					return fail(i, ErrBadDuration)
				}
				t.Multiplier = m
			}
			state = lexDone
		}
	}
	return t, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// parseMultiplier accepts digits with at most one decimal point and a
// strictly positive value.
func parseMultiplier(s string) (float64, bool) {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
			digits++
		case s[i] == '.':
			dots++
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	m, err := strconv.ParseFloat(s, 64)
	if err != nil || !(m > 0) || math.IsInf(m, 0) {
		return 0, false
	}
	return m, true
}
