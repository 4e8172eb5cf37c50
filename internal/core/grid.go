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

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.W + col }

// At returns a pointer to the cell at (row, col).
func (g *Grid[T]) At(row, col int) *T { return &g.data[row*g.W+col] }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// OnBorder reports whether (row, col) lies on the outermost ring.
func (g *Grid[T]) OnBorder(row, col int) bool {
	return row == 0 || col == 0 || row == g.H-1 || col == g.W-1
}
