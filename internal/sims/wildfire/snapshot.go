package wildfire

// Snapshot is a read-only copy of the grid taken between steps.
type Snapshot struct {
	States     [N][N]State
	Changed    [N][N]bool
	Generation int
	Active     bool
	Counts     Counts
	Wind       Direction
}

// Snapshot copies the current grid. Later steps do not affect the copy.
func (g *FireGrid) Snapshot() Snapshot {
	s := Snapshot{
		Generation: g.generation,
		Active:     g.active,
		Counts:     g.Counts(),
		Wind:       g.cfg.Wind,
	}
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			c := g.grid.At(row, col)
			s.States[row][col] = c.State
			s.Changed[row][col] = c.Changed
		}
	}
	return s
}

// Dim returns the side length of the snapshot grid.
func (s Snapshot) Dim() int { return N }

// At returns the state at (row, col), or Empty outside the grid.
func (s Snapshot) At(row, col int) State {
	if row < 0 || row >= N || col < 0 || col >= N {
		return Empty
	}
	return s.States[row][col]
}
