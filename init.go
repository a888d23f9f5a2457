package notesynth

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/goccy/go-yaml"
)

// ErrBadParams is wrapped by every Params validation failure.
var ErrBadParams = errors.New("invalid synthesis parameters")

type Initer interface {
	InitAudio(Params)
}

// Params is the immutable configuration shared by every stage of a render.
// Copies are cheap; a Renderer keeps its own.
type Params struct {
	SampleRate float64    `yaml:"sample_rate" json:"sample_rate"`
	RefFreq    float64    `yaml:"ref_freq" json:"ref_freq"`
	Harmonics  int        `yaml:"harmonics" json:"harmonics"`
	Envelope   []float64  `yaml:"envelope" json:"envelope"`
	Pitches    PitchTable `yaml:"pitches" json:"pitches"`
}

const (
	DefaultSampleRate = 44100
	DefaultRefFreq    = 440.0
	DefaultHarmonics  = 8
)

func DefaultParams() Params {
	return Params{
		SampleRate: DefaultSampleRate,
		RefFreq:    DefaultRefFreq,
		Harmonics:  DefaultHarmonics,
		Envelope:   append([]float64(nil), ViolinEnvelope...),
		Pitches:    StandardPitches,
	}
}

func (p *Params) InitAudio(q Params) { *p = q }

func (p Params) Validate() error {
	switch {
	case !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0):
		return fmt.Errorf("%w: sample rate %v", ErrBadParams, p.SampleRate)
	case !(p.RefFreq > 0) || math.IsInf(p.RefFreq, 0):
		return fmt.Errorf("%w: reference frequency %v", ErrBadParams, p.RefFreq)
	case p.Harmonics < 1:
		return fmt.Errorf("%w: harmonic count %d", ErrBadParams, p.Harmonics)
	case p.Pitches == PitchTable{}:
		return fmt.Errorf("%w: empty pitch table", ErrBadParams)
	}
	for i, x := range p.Envelope {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: envelope point %d is %v", ErrBadParams, i, x)
		}
	}
	return nil
}

// LoadParams reads YAML overrides on top of DefaultParams.  An empty document
// yields the defaults.
func LoadParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Init calls InitAudio on x if it is an Initer.  Otherwise it looks through
// pointers, interfaces, struct fields, slices and arrays for Initers.  A
// value whose pointer type is an Initer but which cannot be addressed is a
// programming error and panics.
func Init(x any, p Params) {
	initValue(reflect.ValueOf(x), p)
}

var initerType = reflect.TypeOf((*Initer)(nil)).Elem()

func initValue(v reflect.Value, p Params) {
	if !v.IsValid() || !v.CanInterface() {
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		if x, ok := v.Interface().(Initer); ok {
			x.InitAudio(p)
			return
		}
		initValue(v.Elem(), p)
		return
	}

	if v.Type().Implements(initerType) {
		v.Interface().(Initer).InitAudio(p)
		return
	}
	if reflect.PointerTo(v.Type()).Implements(initerType) {
		if !v.CanAddr() {
			panic(fmt.Sprintf("notesynth.Init: %s is not addressable; pass a *%s", v.Type(), v.Type()))
		}
		v.Addr().Interface().(Initer).InitAudio(p)
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			initValue(v.Field(i), p)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			initValue(v.Index(i), p)
		}
	}
}
