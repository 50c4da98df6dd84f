package ui

import (
	"fmt"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/mapgen"
	"meadowland/internal/tiles"
)

// describeTile lists what the overlay shows for the tile under the cursor.
func describeTile(tm *tiles.Tilemap, grid *core.Grid[mapgen.Cell], catalog *biome.Catalog, x, y int) []string {
	if tm == nil {
		return nil
	}
	tile, ok := tm.At(x, y)
	if !ok {
		return nil
	}
	lines := []string{fmt.Sprintf("tile %d,%d", x, y)}
	if b, ok := catalog.At(tile.Biome); ok {
		lines = append(lines,
			b.Name,
			fmt.Sprintf("movement x%.2f", b.MovementModifier))
	}
	lines = append(lines, "texture "+tile.Texture.Name)
	if grid != nil && grid.InBounds(x, y) {
		cell := grid.At(x, y)
		if !cell.Matched() {
			lines = append(lines, "fallback biome")
		}
		lines = append(lines, fmt.Sprintf("height %.3f", cell.Height))
	}
	return lines
}
