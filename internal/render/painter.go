//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"meadowland/internal/tiles"
)

// TilemapPainter keeps one RGBA image holding a pixel per tile.
type TilemapPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	last *tiles.Tilemap
}

// NewTilemapPainter allocates a painter for a w*h tilemap.
func NewTilemapPainter(w, h int) *TilemapPainter {
	tp := &TilemapPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	tp.img = ebiten.NewImage(w, h)
	return tp
}

// Draw uploads tm when it changed and draws it scaled onto dst. Tilemaps of a
// different size are ignored.
func (tp *TilemapPainter) Draw(dst *ebiten.Image, tm *tiles.Tilemap, scale int) {
	if tm == nil || tm.Width != tp.w || tm.Height != tp.h {
		return
	}
	if tm != tp.last {
		fillTilemapRGBA(tp.buf, tm)
		tp.img.WritePixels(tp.buf)
		tp.last = tm
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TilemapPainter) Size() (int, int) { return tp.w, tp.h }
