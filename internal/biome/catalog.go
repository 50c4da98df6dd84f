// Package biome holds the declarative biome catalog and the nearest-match
// classifier that assigns sampled cells to it.
package biome

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

var (
	// ErrEmptyCatalog is returned when a catalog holds no biomes.
	ErrEmptyCatalog = errors.New("biome catalog is empty")
	// ErrInvalidBiome is returned for malformed biome records.
	ErrInvalidBiome = errors.New("invalid biome")
)

// Biome is an axis-aligned admissibility region: a cell qualifies iff each of
// its sampled scalars is at least the corresponding minimum.
type Biome struct {
	Name             string  `json:"name"`
	MovementModifier float64 `json:"movementModifier"`
	MinHeight        float64 `json:"minHeight"`
	MinMoisture      float64 `json:"minMoisture"`
	MinHeat          float64 `json:"minHeat"`
}

// Catalog is an ordered, read-only list of biomes. Order only matters for
// breaking ties between equally scored biomes.
type Catalog struct {
	biomes []Biome
}

type catalogFile struct {
	Biomes []Biome `json:"biomes"`
}

// NewCatalog copies biomes into a validated catalog.
func NewCatalog(biomes []Biome) (*Catalog, error) {
	c := &Catalog{biomes: append([]Biome(nil), biomes...)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load parses a {"biomes": [...]} document.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode biome catalog: %w", err)
	}
	return NewCatalog(f.Biomes)
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open biome catalog: %w", err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate rejects empty catalogs, unnamed or duplicate biomes and
// non-finite thresholds.
func (c *Catalog) Validate() error {
	if c == nil || len(c.biomes) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(c.biomes))
	for i, b := range c.biomes {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return fmt.Errorf("%w: biome %d has no name", ErrInvalidBiome, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate biome %q", ErrInvalidBiome, name)
		}
		seen[name] = struct{}{}
		for _, v := range []float64{b.MovementModifier, b.MinHeight, b.MinMoisture, b.MinHeat} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %q has a non-finite value", ErrInvalidBiome, name)
			}
		}
	}
	return nil
}

// Len returns the number of biomes. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.biomes)
}

// At returns the biome at index i and whether i is a valid index. Callers
// holding a classified index must go through At so the unmatched sentinel is
// never used to index the catalog.
func (c *Catalog) At(i int) (Biome, bool) {
	if i < 0 || i >= c.Len() {
		return Biome{}, false
	}
	return c.biomes[i], true
}

// Index returns the position of the biome named name, or Unmatched.
func (c *Catalog) Index(name string) int {
	for i := 0; i < c.Len(); i++ {
		if c.biomes[i].Name == name {
			return i
		}
	}
	return Unmatched
}

// Biomes returns a copy of the ordered biome list.
func (c *Catalog) Biomes() []Biome {
	if c == nil {
		return nil
	}
	return append([]Biome(nil), c.biomes...)
}

// Clone returns an independent copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	return &Catalog{biomes: c.Biomes()}
}
