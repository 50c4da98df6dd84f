package render

import (
	"image/color"
	"math"

	"meadowland/internal/core"
	"meadowland/internal/mapgen"
)

// fillElevationRGBA shades the height of every cell, normalized to the range
// found in the grid. Steeper cells are drawn more opaque.
func fillElevationRGBA(buf []byte, grid *core.Grid[mapgen.Cell]) {
	clear(buf)
	if grid == nil || grid.Len() == 0 || len(buf) < 4*grid.Len() {
		return
	}
	cells := grid.Cells()
	minVal, maxVal := cells[0].Height, cells[0].Height
	for _, c := range cells {
		minVal = math.Min(minVal, c.Height)
		maxVal = math.Max(maxVal, c.Height)
	}
	rangeVal := maxVal - minVal
	if rangeVal == 0 {
		rangeVal = 1
	}

	w, h := grid.W, grid.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := grid.Index(x, y)
			v := cells[idx].Height
			col := elevationColor(clamp01((v - minVal) / rangeVal))

			maxDiff := 0.0
			if x > 0 {
				maxDiff = math.Max(maxDiff, math.Abs(v-cells[idx-1].Height))
			}
			if x+1 < w {
				maxDiff = math.Max(maxDiff, math.Abs(v-cells[idx+1].Height))
			}
			if y > 0 {
				maxDiff = math.Max(maxDiff, math.Abs(v-cells[idx-w].Height))
			}
			if y+1 < h {
				maxDiff = math.Max(maxDiff, math.Abs(v-cells[idx+w].Height))
			}
			slope := clamp01(maxDiff / rangeVal * 8)
			alpha := float64(col.A) * (0.55 + 0.45*slope)

			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = uint8(math.Round(alpha))
		}
	}
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			var local float64
			if span := curr.t - prev.t; span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
