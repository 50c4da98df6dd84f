package mapgen

import (
	"golang.org/x/sync/errgroup"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/noise"
)

// Cell is one classified grid unit.
type Cell struct {
	Height float64
	// Biome is a catalog index or biome.Unmatched.
	Biome int
}

// Matched reports whether the cell was assigned a biome.
func (c Cell) Matched() bool { return c.Biome != biome.Unmatched }

// Generate samples and classifies every cell of a size.W x size.H world. Rows
// are independent, so with workers > 1 they are split across goroutines; the
// grid is identical for any worker count.
func Generate(size core.Size, catalog *biome.Catalog, layers *noise.Layers, workers int) *core.Grid[Cell] {
	grid := core.NewGrid[Cell](size.W, size.H)
	fill := func(y int) {
		row := grid.Row(y)
		for x := range row {
			s := layers.Sample(float64(x), float64(y))
			row[x] = Cell{Height: s.Height, Biome: biome.Classify(catalog, s)}
		}
	}

	if workers <= 1 {
		for y := 0; y < grid.H; y++ {
			fill(y)
		}
		return grid
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < grid.H; y++ {
		g.Go(func() error {
			fill(y)
			return nil
		})
	}
	_ = g.Wait()
	return grid
}

// Coverage tallies the biome assignment of every cell.
func Coverage(grid *core.Grid[Cell], catalog *biome.Catalog) *biome.Coverage {
	cv := biome.NewCoverage(catalog.Len())
	for _, c := range grid.Cells() {
		cv.Add(c.Biome)
	}
	return cv
}
