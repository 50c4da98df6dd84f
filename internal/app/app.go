//go:build ebiten

package app

import (
	"meadowland/internal/core"
	"meadowland/internal/render"
	"meadowland/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.TilemapPainter
	panel   *ui.LoadingPanel
	overlay *ui.Overlay
	scale   int
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.Config().Size()
	return &Game{
		session: session,
		painter: render.NewTilemapPainter(size.W, size.H),
		panel:   ui.NewLoadingPanel(),
		overlay: ui.NewOverlay(size, scale),
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.session.Phase() == core.PhaseMain {
		g.overlay.Update()
	}
	return g.session.Tick()
}

// Draw renders the loading panel until the tilemap is installed.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.Phase() != core.PhaseMain {
		g.panel.Draw(screen, g.session.Phase(), g.session.Elapsed(), g.session.Parameters())
		return
	}
	g.painter.Draw(screen, g.session.Tilemap(), g.scale)
	g.overlay.Draw(screen, g.session.Tilemap(), g.session.Grid(), g.session.Catalog())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Config().Size()
	return s.W * g.scale, s.H * g.scale
}
