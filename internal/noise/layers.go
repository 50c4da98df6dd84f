package noise

import (
	"fmt"

	"meadowland/pkg/core"
)

// Axis names one environmental scalar.
type Axis string

const (
	AxisHeight   Axis = "height"
	AxisMoisture Axis = "moisture"
	AxisHeat     Axis = "heat"
)

// Axes lists the axes in sampling order.
var Axes = []Axis{AxisHeight, AxisMoisture, AxisHeat}

// Sample is the triple of scalars taken at one cell.
type Sample struct {
	Height   float64
	Moisture float64
	Heat     float64
}

// Layers holds the three independent composites of one generation run.
type Layers struct {
	Height   *Composite
	Moisture *Composite
	Heat     *Composite
}

// NewLayers seeds a composite per axis from rng. Axes are seeded in the order
// of Axes so the same rng state always produces the same layers.
func NewLayers(waves map[Axis][]Wave, rng *core.RNG) (*Layers, error) {
	built := make(map[Axis]*Composite, len(Axes))
	for _, axis := range Axes {
		c, err := NewComposite(waves[axis], rng)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", axis, err)
		}
		built[axis] = c
	}
	return &Layers{
		Height:   built[AxisHeight],
		Moisture: built[AxisMoisture],
		Heat:     built[AxisHeat],
	}, nil
}

// Sample evaluates all three composites at (x, y).
func (l *Layers) Sample(x, y float64) Sample {
	return Sample{
		Height:   l.Height.Value(x, y),
		Moisture: l.Moisture.Value(x, y),
		Heat:     l.Heat.Value(x, y),
	}
}

// Seeds returns the seeds drawn for each axis, in wave order.
func (l *Layers) Seeds() map[Axis][]int64 {
	out := make(map[Axis][]int64, len(Axes))
	for axis, c := range map[Axis]*Composite{AxisHeight: l.Height, AxisMoisture: l.Moisture, AxisHeat: l.Heat} {
		seeds := make([]int64, 0, len(c.fields))
		for _, f := range c.fields {
			seeds = append(seeds, f.seed)
		}
		out[axis] = seeds
	}
	return out
}
