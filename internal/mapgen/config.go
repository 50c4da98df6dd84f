package mapgen

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"meadowland/internal/core"
	"meadowland/internal/noise"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid map generation config")

// Config controls the world dimensions and the noise layers of a run.
type Config struct {
	Width  int
	Height int

	// Seed feeds the task RNG. Zero draws a fresh seed per run.
	Seed int64

	// Workers is the number of goroutines sampling rows in parallel.
	Workers int

	// CellSize is the edge length of one tile in world pixels.
	CellSize int

	// FallbackBiome names the biome used for cells no biome admits. Empty
	// rejects the whole generation instead.
	FallbackBiome string

	Waves map[noise.Axis][]noise.Wave
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         300,
		Height:        300,
		Workers:       1,
		CellSize:      32,
		FallbackBiome: "Deep Water",
		Waves:         DefaultWaves(),
	}
}

// DefaultWaves returns the per-axis wave sets. Height carries a detail wave,
// moisture a single broad wave and heat a slow secondary wave.
func DefaultWaves() map[noise.Axis][]noise.Wave {
	return map[noise.Axis][]noise.Wave{
		noise.AxisHeight: {
			{Frequency: 0.05, Amplitude: 1},
			{Frequency: 0.1, Amplitude: 0.5},
		},
		noise.AxisMoisture: {
			{Frequency: 0.03, Amplitude: 1},
		},
		noise.AxisHeat: {
			{Frequency: 0.04, Amplitude: 1},
			{Frequency: 0.02, Amplitude: 0.5},
		},
	}
}

// Size returns the world dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Clone returns a copy that shares no wave slices with c.
func (c Config) Clone() Config {
	out := c
	out.Waves = make(map[noise.Axis][]noise.Wave, len(c.Waves))
	for axis, waves := range c.Waves {
		out.Waves[axis] = append([]noise.Wave(nil), waves...)
	}
	return out
}

// Validate checks dimensions and wave sets.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: world size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return ValidateWaves(c.Waves)
}

// ValidateWaves requires at least one wave per axis with a positive amplitude
// and a finite frequency.
func ValidateWaves(waves map[noise.Axis][]noise.Wave) error {
	for _, axis := range noise.Axes {
		set := waves[axis]
		if len(set) == 0 {
			return fmt.Errorf("%w: axis %s has no waves", ErrInvalidConfig, axis)
		}
		for i, w := range set {
			if !(w.Amplitude > 0) || math.IsInf(w.Amplitude, 0) {
				return fmt.Errorf("%w: %s wave %d amplitude %v", ErrInvalidConfig, axis, i, w.Amplitude)
			}
			if math.IsNaN(w.Frequency) || math.IsInf(w.Frequency, 0) {
				return fmt.Errorf("%w: %s wave %d frequency %v", ErrInvalidConfig, axis, i, w.Frequency)
			}
			switch w.Kind {
			case "", noise.KindSimplex, noise.KindPerlin:
			default:
				return fmt.Errorf("%w: %s wave %d kind %q", ErrInvalidConfig, axis, i, w.Kind)
			}
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Wave keys take the form "<axis>.<index>.<field>", e.g. "heat.1.frequency";
// an index one past the end appends a wave.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["fallback"]; ok {
		c.FallbackBiome = strings.TrimSpace(v)
	}
	for _, key := range slices.Sorted(maps.Keys(cfg)) {
		c.applyWave(key, cfg[key])
	}
	return c
}

func (c *Config) applyWave(key, value string) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return
	}
	axis := noise.Axis(parts[0])
	set, known := c.Waves[axis]
	if !known {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx > len(set) {
		return
	}
	if idx == len(set) {
		set = append(set, noise.Wave{Frequency: 0.05, Amplitude: 1})
	}
	w := set[idx]
	switch parts[2] {
	case "frequency":
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			w.Frequency = parsed
		}
	case "amplitude":
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			w.Amplitude = parsed
		}
	case "kind":
		w.Kind = noise.Kind(strings.ToLower(strings.TrimSpace(value)))
	default:
		return
	}
	set[idx] = w
	c.Waves[axis] = set
}

// Parameters reports the values that shape a run.
func (c Config) Parameters() core.ParameterSnapshot {
	seed := "random"
	if c.Seed != 0 {
		seed = strconv.FormatInt(c.Seed, 10)
	}
	fallback := c.FallbackBiome
	if fallback == "" {
		fallback = "reject"
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: seed},
				intParam("workers", "Workers", c.Workers),
				intParam("cell_size", "Cell size", c.CellSize),
				{Key: "fallback", Label: "Unmatched cells", Type: core.ParamTypeString, Value: fallback},
			},
		},
	}
	for _, axis := range noise.Axes {
		group := core.ParameterGroup{Name: strings.Title(string(axis))}
		for i, w := range c.Waves[axis] {
			prefix := fmt.Sprintf("%s.%d.", axis, i)
			group.Params = append(group.Params,
				floatParam(prefix+"frequency", fmt.Sprintf("Wave %d frequency", i), w.Frequency),
				floatParam(prefix+"amplitude", fmt.Sprintf("Wave %d amplitude", i), w.Amplitude),
			)
		}
		groups = append(groups, group)
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
