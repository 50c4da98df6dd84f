package tiles

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"meadowland/internal/biome"
	"meadowland/internal/mapgen"
	"meadowland/pkg/core"
)

// Reject is the Fallback value that fails materialization on the first
// unmatched cell.
const Reject = biome.Unmatched

var (
	// ErrUnmatchedCell is returned when a cell has no biome and no fallback
	// is configured.
	ErrUnmatchedCell = errors.New("cell has no matching biome")
	// ErrNoTextures is returned when a biome has nothing to draw with.
	ErrNoTextures = errors.New("biome has no usable textures")
)

// Tile is a renderable unit at one grid position.
type Tile struct {
	X, Y    int
	Biome   int
	Texture Texture
	// Position is the tile centre in world pixels.
	Position mgl64.Vec2
}

// Tilemap is the complete set of tiles of a world.
type Tilemap struct {
	Width    int
	Height   int
	CellSize int
	Tiles    []Tile
}

// At returns the tile at grid position (x, y).
func (m *Tilemap) At(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return Tile{}, false
	}
	return m.Tiles[y*m.Width+x], true
}

// Materializer converts classified grids into tilemaps.
type Materializer struct {
	Lookup   Lookup
	RNG      *core.RNG
	CellSize int
	// Fallback is the catalog index substituted for unmatched cells, or
	// Reject.
	Fallback int
}

// FallbackIndex resolves a fallback biome name against a catalog. An empty
// name selects Reject.
func FallbackIndex(c *biome.Catalog, name string) (int, error) {
	if name == "" {
		return Reject, nil
	}
	idx := c.Index(name)
	if idx == biome.Unmatched {
		return Reject, fmt.Errorf("fallback biome %q is not in the catalog", name)
	}
	return idx, nil
}

// Materialize builds one tile per cell of res, row-major. The tilemap is only
// returned once every tile is in place.
func (m *Materializer) Materialize(res *mapgen.Result) (*Tilemap, error) {
	grid := res.Grid
	tm := &Tilemap{
		Width:    grid.W,
		Height:   grid.H,
		CellSize: m.CellSize,
		Tiles:    make([]Tile, 0, grid.Len()),
	}

	weights := make(map[int][]uint32)
	cell := float64(m.CellSize)
	for y := 0; y < grid.H; y++ {
		for x, c := range grid.Row(y) {
			idx := c.Biome
			b, ok := res.Catalog.At(idx)
			if !ok {
				if m.Fallback == Reject {
					return nil, fmt.Errorf("%w at (%d,%d)", ErrUnmatchedCell, x, y)
				}
				idx = m.Fallback
				if b, ok = res.Catalog.At(idx); !ok {
					return nil, fmt.Errorf("%w: fallback index %d out of range", ErrUnmatchedCell, idx)
				}
			}

			textures := m.Lookup.TexturesFor(b)
			w, cached := weights[idx]
			if !cached {
				w = make([]uint32, len(textures))
				for i, t := range textures {
					w[i] = t.Weight
				}
				weights[idx] = w
			}
			pick := m.RNG.WeightedIndex(w)
			if pick < 0 {
				return nil, fmt.Errorf("%w: %q", ErrNoTextures, b.Name)
			}

			tm.Tiles = append(tm.Tiles, Tile{
				X:        x,
				Y:        y,
				Biome:    idx,
				Texture:  textures[pick],
				Position: mgl64.Vec2{(float64(x) + 0.5) * cell, (float64(y) + 0.5) * cell},
			})
		}
	}
	return tm, nil
}
