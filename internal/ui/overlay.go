//go:build ebiten

package ui

import (
	"image/color"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/mapgen"
	"meadowland/internal/render"
	"meadowland/internal/tiles"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional visuals on top of the finished world.
type Overlay struct {
	scale     int
	showElev  bool
	showInfo  bool
	elevation *render.ElevationPainter
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay for a world of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{
		scale:     scale,
		showInfo:  true,
		elevation: render.NewElevationPainter(size.W, size.H),
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 shows elevation, 2 the tile info box.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showInfo = !o.showInfo
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, tm *tiles.Tilemap, grid *core.Grid[mapgen.Cell], catalog *biome.Catalog) {
	if o.showElev {
		o.elevation.Draw(screen, grid, o.scale)
	}
	if !o.showInfo {
		return
	}
	cx, cy := ebiten.CursorPosition()
	lines := describeTile(tm, grid, catalog, cx/o.scale, cy/o.scale)
	if len(lines) == 0 {
		return
	}

	const (
		padding    = 6
		lineHeight = 14
	)
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	x, y := cx+12, cy+12
	boxW, boxH := width+padding*2, len(lines)*lineHeight+padding
	bounds := screen.Bounds()
	if x+boxW > bounds.Dx() {
		x = cx - 12 - boxW
	}
	if y+boxH > bounds.Dy() {
		y = cy - 12 - boxH
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, face, x+padding, y+padding+10+i*lineHeight, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}
