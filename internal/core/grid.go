package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[g.Index(x, y)] = v }

// Row exposes the backing slice for row y.
func (g *Grid[T]) Row(y int) []T {
	start := y * g.W
	return g.data[start : start+g.W]
}
