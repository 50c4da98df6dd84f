package noise

import (
	"fmt"

	"meadowland/pkg/core"
)

// Composite blends several fields sampled at the same coordinate into a
// weighted average. The result is not remapped, so its range follows the
// sources and amplitudes it was built from.
type Composite struct {
	fields []*Field
	total  float64
}

// NewComposite draws one seed per wave from rng and binds each wave to it.
func NewComposite(waves []Wave, rng *core.RNG) (*Composite, error) {
	fields := make([]*Field, 0, len(waves))
	for i, w := range waves {
		f, err := NewField(w, rng.Int64())
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		fields = append(fields, f)
	}
	return CompositeOf(fields...), nil
}

// CompositeOf wraps already-seeded fields.
func CompositeOf(fields ...*Field) *Composite {
	c := &Composite{fields: fields}
	for _, f := range fields {
		c.total += f.wave.Amplitude
	}
	return c
}

// Fields exposes the layers in declaration order.
func (c *Composite) Fields() []*Field { return c.fields }

// Value returns sum(amplitude*value)/sum(amplitude) at (x, y). A composite
// without amplitude yields 0.
func (c *Composite) Value(x, y float64) float64 {
	if c.total == 0 {
		return 0
	}
	var sum float64
	for _, f := range c.fields {
		sum += f.wave.Amplitude * f.Value(x, y)
	}
	return sum / c.total
}
