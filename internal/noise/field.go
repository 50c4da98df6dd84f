// Package noise builds the seeded scalar fields sampled per world cell.
package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Kind selects the noise algorithm backing a wave.
type Kind string

const (
	// KindSimplex is normalized OpenSimplex noise in [0, 1].
	KindSimplex Kind = "simplex"
	// KindPerlin is classic Perlin noise, roughly in [-1, 1].
	KindPerlin Kind = "perlin"
)

// Perlin parameters shared by every perlin wave.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// Source is a seeded 2D noise function.
type Source interface {
	Eval2(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 { return s.p.Noise2D(x, y) }

// NewSource returns the noise function of the given kind for seed.
func NewSource(kind Kind, seed int64) (Source, error) {
	switch kind {
	case KindSimplex, "":
		return opensimplex.NewNormalized(seed), nil
	case KindPerlin:
		return perlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}, nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Wave is the declarative description of one noise layer.
type Wave struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Kind      Kind    `json:"kind,omitempty"`
}

// Field is a Wave bound to a seeded source.
type Field struct {
	wave   Wave
	seed   int64
	source Source
}

// NewField binds w to a source seeded with seed.
func NewField(w Wave, seed int64) (*Field, error) {
	src, err := NewSource(w.Kind, seed)
	if err != nil {
		return nil, err
	}
	return &Field{wave: w, seed: seed, source: src}, nil
}

// Wave returns the layer description.
func (f *Field) Wave() Wave { return f.wave }

// Seed returns the seed the source was built with.
func (f *Field) Seed() int64 { return f.seed }

// Value samples the field at (x, y). The same field always returns the same
// value for the same coordinates.
func (f *Field) Value(x, y float64) float64 {
	return f.source.Eval2(x*f.wave.Frequency, y*f.wave.Frequency)
}
