//go:build !ebiten

package ui

import (
	"time"

	"meadowland/internal/core"
)

// LoadingPanel is a no-op placeholder for headless builds.
type LoadingPanel struct{}

// NewLoadingPanel returns nil in the headless build.
func NewLoadingPanel() *LoadingPanel { return nil }

// Draw is a no-op in the headless build.
func (p *LoadingPanel) Draw(any, core.Phase, time.Duration, core.ParameterSnapshot) {}
