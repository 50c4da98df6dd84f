package ui

import (
	"slices"
	"testing"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/mapgen"
	"meadowland/internal/tiles"
)

func TestDescribeTile(t *testing.T) {
	catalog, err := biome.NewCatalog([]biome.Biome{
		{Name: "Deep Water", MovementModifier: 0.1},
		{Name: "Forest", MovementModifier: 0.75},
	})
	if err != nil {
		t.Fatal(err)
	}
	grid := core.NewGrid[mapgen.Cell](2, 1)
	grid.Set(0, 0, mapgen.Cell{Height: 0.5, Biome: 1})
	grid.Set(1, 0, mapgen.Cell{Height: 0.125, Biome: biome.Unmatched})
	tm := &tiles.Tilemap{Width: 2, Height: 1, Tiles: []tiles.Tile{
		{X: 0, Y: 0, Biome: 1, Texture: tiles.Texture{Name: "pine"}},
		{X: 1, Y: 0, Biome: 0, Texture: tiles.Texture{Name: "water"}},
	}}

	got := describeTile(tm, grid, catalog, 0, 0)
	want := []string{"tile 0,0", "Forest", "movement x0.75", "texture pine", "height 0.500"}
	if !slices.Equal(got, want) {
		t.Fatalf("describeTile = %q, want %q", got, want)
	}

	got = describeTile(tm, grid, catalog, 1, 0)
	if !slices.Contains(got, "fallback biome") || !slices.Contains(got, "Deep Water") {
		t.Fatalf("fallback tile description %q", got)
	}

	if got := describeTile(tm, grid, catalog, 5, 0); got != nil {
		t.Fatalf("out of range = %q, want nil", got)
	}
	if got := describeTile(nil, grid, catalog, 0, 0); got != nil {
		t.Fatalf("nil tilemap = %q, want nil", got)
	}
}
