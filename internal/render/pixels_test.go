package render

import (
	"image/color"
	"slices"
	"testing"

	"meadowland/internal/core"
	"meadowland/internal/mapgen"
	"meadowland/internal/tiles"
)

func TestFillTilemapRGBA(t *testing.T) {
	tm := &tiles.Tilemap{
		Width:  2,
		Height: 1,
		Tiles: []tiles.Tile{
			{X: 0, Y: 0, Texture: tiles.Texture{Color: "#102030"}},
			{X: 1, Y: 0, Texture: tiles.Texture{Color: "#ff0080"}},
		},
	}
	buf := make([]byte, 8)
	fillTilemapRGBA(buf, tm)
	want := []byte{0x10, 0x20, 0x30, 0xff, 0xff, 0x00, 0x80, 0xff}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillTilemapRGBAClearsMissingTiles(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	tm := &tiles.Tilemap{
		Width:  2,
		Height: 1,
		Tiles:  []tiles.Tile{{X: 1, Y: 0, Texture: tiles.Texture{Color: "#000000"}}},
	}
	fillTilemapRGBA(buf, tm)
	if !slices.Equal(buf[:4], []byte{0, 0, 0, 0}) {
		t.Fatalf("uncovered pixel = %v, want transparent", buf[:4])
	}
	if buf[7] != 0xff {
		t.Fatalf("covered pixel alpha = %d, want opaque", buf[7])
	}

	fillTilemapRGBA(buf, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("nil tilemap left %v", buf)
	}
}

func TestFillElevationRGBA(t *testing.T) {
	grid := core.NewGrid[mapgen.Cell](3, 1)
	grid.Set(0, 0, mapgen.Cell{Height: 0.2})
	grid.Set(1, 0, mapgen.Cell{Height: 0.4})
	grid.Set(2, 0, mapgen.Cell{Height: 0.6})
	buf := make([]byte, 12)
	fillElevationRGBA(buf, grid)

	low := color.RGBA{R: buf[0], G: buf[1], B: buf[2]}
	high := color.RGBA{R: buf[8], G: buf[9], B: buf[10]}
	if low != (color.RGBA{R: 40, G: 60, B: 120}) {
		t.Fatalf("lowest cell = %v, want the bottom of the ramp", low)
	}
	if high != (color.RGBA{R: 240, G: 235, B: 215}) {
		t.Fatalf("highest cell = %v, want the top of the ramp", high)
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] == 0 {
			t.Fatalf("pixel %d is transparent", i/4)
		}
	}
}

func TestElevationColorClamps(t *testing.T) {
	if elevationColor(-1) != elevationColor(0) || elevationColor(2) != elevationColor(1) {
		t.Fatal("out-of-range heights should clamp to the ramp ends")
	}
}
