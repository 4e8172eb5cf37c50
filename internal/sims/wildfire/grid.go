package wildfire

import "wildfire-ca/internal/core"

// State is the condition of a single forest cell.
type State uint8

const (
	Empty State = iota
	Tree
	Burning
	Burnt
)

var stateNames = [...]string{
	Empty:   "empty",
	Tree:    "tree",
	Burning: "burning",
	Burnt:   "burnt",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Cell is one grid position.
type Cell struct {
	State State
	// Changed is set when the cell caught fire or burnt out during the
	// current step. A cell that caught fire this step does not spread
	// until the next one.
	Changed bool
}

// Counts tallies cells per state.
type Counts struct {
	Empty   int
	Tree    int
	Burning int
	Burnt   int
}

// FireGrid runs the forest fire automaton on a fixed N×N grid.
type FireGrid struct {
	cfg   Config
	notes []string

	grid    *core.Grid[Cell]
	display []uint8
	rng     Source

	active     bool
	generation int
	ignited    int
}

// New builds a grid from cfg. Out-of-range settings are normalized, never
// rejected; Notes reports what was changed. A nil rng is replaced by a
// core.RNG seeded from cfg.Seed, or from the clock when the seed is zero;
// the seed picked that way is kept in Config().Seed.
func New(cfg Config, rng Source) *FireGrid {
	norm, notes := cfg.Normalize()
	if rng == nil {
		if norm.Seed == 0 {
			norm.Seed = core.TimeSeed()
		}
		rng = core.NewRNG(norm.Seed)
	}
	g := &FireGrid{
		cfg:     norm,
		notes:   notes,
		grid:    core.NewGrid[Cell](N, N),
		display: make([]uint8, N*N),
		rng:     rng,
	}
	g.build()
	return g
}

// Name returns the simulation identifier.
func (g *FireGrid) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (g *FireGrid) Size() core.Size { return core.Size{W: N, H: N} }

// Cells exposes the per-cell states as raw bytes in row-major order.
func (g *FireGrid) Cells() []uint8 { return g.display }

// Config returns the normalized configuration in effect.
func (g *FireGrid) Config() Config { return g.cfg }

// Notes lists the normalizations New applied to the requested config.
func (g *FireGrid) Notes() []string { return g.notes }

// Active reports whether the last step ignited anything. It stays false once
// it has become false.
func (g *FireGrid) Active() bool { return g.active }

// Generation counts the steps taken since the grid was built.
func (g *FireGrid) Generation() int { return g.generation }

// Ignited reports how many cells caught fire during the last step.
func (g *FireGrid) Ignited() int { return g.ignited }

// At returns the state of the cell at (row, col). Coordinates outside the
// grid read as Empty.
func (g *FireGrid) At(row, col int) State {
	if !g.grid.InBounds(row, col) {
		return Empty
	}
	return g.grid.At(row, col).State
}

// Changed reports whether the cell at (row, col) caught fire or burnt out
// during the last step.
func (g *FireGrid) Changed(row, col int) bool {
	if !g.grid.InBounds(row, col) {
		return false
	}
	return g.grid.At(row, col).Changed
}

// Reset rebuilds the initial forest with a fresh core.RNG seeded from seed.
// A zero seed reuses the configured seed, and falls back to the clock when
// that is zero too. The RNG always replaces the Source given to New, so a
// reset run is reproducible from Config().Seed alone.
func (g *FireGrid) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = g.cfg.Seed
	}
	if effective == 0 {
		effective = core.TimeSeed()
	}
	g.cfg.Seed = effective
	g.rng = core.NewRNG(effective)
	g.build()
}

func (g *FireGrid) build() {
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			c := g.grid.At(row, col)
			c.Changed = false
			if g.grid.OnBorder(row, col) {
				c.State = Empty
				continue
			}
			c.State = Tree
		}
	}
	row, col := OriginCell(g.cfg.Origin)
	g.grid.At(row, col).State = Burning
	g.active = true
	g.generation = 0
	g.ignited = 0
	g.rebuildDisplay()
}

// Step advances the fire by one tick. Every cell that was burning when the
// step began tries each Tree neighbour once and then burns out. Once a step
// ignites nothing the grid becomes inactive and further calls do nothing.
func (g *FireGrid) Step() {
	if !g.active {
		return
	}
	cells := g.grid.Cells()
	for i := range cells {
		cells[i].Changed = false
	}

	ignited := 0
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			src := g.grid.At(row, col)
			if src.State != Burning || src.Changed {
				continue
			}
			for _, dir := range Compass {
				dr, dc := Offset(dir)
				nr, nc := row+dr, col+dc
				if !g.grid.InBounds(nr, nc) {
					continue
				}
				n := g.grid.At(nr, nc)
				if n.State != Tree {
					continue
				}
				if Ignites(roll(g.rng), WindBias(g.cfg.Wind, dir), g.cfg.CatchChance) {
					n.State = Burning
					n.Changed = true
					ignited++
				}
			}
			src.State = Burnt
			src.Changed = true
		}
	}

	g.generation++
	g.ignited = ignited
	if ignited == 0 {
		g.active = false
	}
	g.rebuildDisplay()
}

// Counts tallies the current grid by state.
func (g *FireGrid) Counts() Counts {
	var c Counts
	for _, cell := range g.grid.Cells() {
		switch cell.State {
		case Empty:
			c.Empty++
		case Tree:
			c.Tree++
		case Burning:
			c.Burning++
		case Burnt:
			c.Burnt++
		}
	}
	return c
}

func (g *FireGrid) rebuildDisplay() {
	for i, cell := range g.grid.Cells() {
		g.display[i] = uint8(cell.State)
	}
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg), nil)
	})
}
