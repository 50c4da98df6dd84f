// Package render turns tilemaps into pixels.
package render

import "meadowland/internal/tiles"

// fillTilemapRGBA writes one RGBA pixel per tile into buf, using the tile's
// texture color. Pixels without a tile are cleared to transparent black.
func fillTilemapRGBA(buf []byte, tm *tiles.Tilemap) {
	clear(buf)
	if tm == nil {
		return
	}
	for _, tile := range tm.Tiles {
		base := (tile.Y*tm.Width + tile.X) * 4
		if base < 0 || base+3 >= len(buf) {
			continue
		}
		col := tile.Texture.RGBA()
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
