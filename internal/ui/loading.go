//go:build ebiten

// Package ui draws the on-screen panels shown around the world view.
package ui

import (
	"fmt"
	"image/color"
	"time"

	"meadowland/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 16
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// LoadingPanel shows progress while assets load and the map generates.
type LoadingPanel struct {
	dots int
	tick int
}

// NewLoadingPanel constructs an empty panel.
func NewLoadingPanel() *LoadingPanel { return &LoadingPanel{} }

// Draw fills screen with the panel for the given phase.
func (p *LoadingPanel) Draw(screen *ebiten.Image, phase core.Phase, elapsed time.Duration, params core.ParameterSnapshot) {
	if p == nil {
		return
	}
	p.tick++
	if p.tick%20 == 0 {
		p.dots = (p.dots + 1) % 4
	}

	screen.Fill(panelBackground)
	face := basicfont.Face7x13
	y := panelPadding + lineHeight

	title := "Loading assets"
	if phase == core.PhaseMapGeneration {
		title = "Generating map"
	}
	for i := 0; i < p.dots; i++ {
		title += "."
	}
	text.Draw(screen, title, face, panelPadding, y, titleColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("elapsed %s", elapsed.Round(100*time.Millisecond)), face, panelPadding, y, valueColor)
	y += lineHeight * 2

	height := screen.Bounds().Dy()
	for _, group := range params.Groups {
		if y > height {
			return
		}
		text.Draw(screen, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(screen, fmt.Sprintf("%s: %s", param.Label, param.Value), face, panelPadding*2, y, valueColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}
}
