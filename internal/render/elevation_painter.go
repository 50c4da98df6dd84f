//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"meadowland/internal/core"
	"meadowland/internal/mapgen"
)

// ElevationPainter draws the height field as a translucent layer.
type ElevationPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	last *core.Grid[mapgen.Cell]
}

// NewElevationPainter allocates a painter for a w*h grid.
func NewElevationPainter(w, h int) *ElevationPainter {
	return &ElevationPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Draw uploads grid when it changed and draws it scaled onto dst.
func (ep *ElevationPainter) Draw(dst *ebiten.Image, grid *core.Grid[mapgen.Cell], scale int) {
	if grid == nil || grid.W != ep.w || grid.H != ep.h {
		return
	}
	if grid != ep.last {
		fillElevationRGBA(ep.buf, grid)
		ep.img.WritePixels(ep.buf)
		ep.last = grid
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(ep.img, op)
}
