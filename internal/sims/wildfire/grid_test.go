package wildfire

import (
	"testing"

	"wildfire-ca/internal/core"
)

// constSource always returns v, so every draw is v+1.
type constSource struct{ v int }

func (c constSource) IntN(n int) int {
	if c.v >= n {
		return n - 1
	}
	return c.v
}

// scriptSource replays vals in order and then repeats the last one.
type scriptSource struct {
	vals  []int
	calls int
}

func (s *scriptSource) IntN(n int) int {
	i := s.calls
	s.calls++
	if i >= len(s.vals) {
		i = len(s.vals) - 1
	}
	return s.vals[i]
}

func countState(g *FireGrid, want State) int {
	total := 0
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			if g.At(row, col) == want {
				total++
			}
		}
	}
	return total
}

func TestNewBuildsForestWithSingleSeed(t *testing.T) {
	origins := map[Direction][2]int{
		Centre: {10, 10},
		North:  {1, 10},
		East:   {10, 19},
		South:  {19, 10},
		West:   {10, 1},
	}
	for origin, want := range origins {
		cfg := DefaultConfig()
		cfg.Origin = origin
		g := New(cfg, constSource{})

		if !g.Active() {
			t.Fatalf("%s: new grid must be active", origin)
		}
		if got := countState(g, Burning); got != 1 {
			t.Fatalf("%s: expected exactly one burning cell, got %d", origin, got)
		}
		if g.At(want[0], want[1]) != Burning {
			t.Fatalf("%s: expected seed at (%d,%d)", origin, want[0], want[1])
		}
		if got := countState(g, Tree); got != (N-2)*(N-2)-1 {
			t.Fatalf("%s: expected %d trees, got %d", origin, (N-2)*(N-2)-1, got)
		}
		if got := countState(g, Empty); got != 4*(N-1) {
			t.Fatalf("%s: expected %d empty border cells, got %d", origin, 4*(N-1), got)
		}
	}
}

func TestUnknownOriginFallsBackToCentre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Origin = Direction(9)
	cfg.Wind = Direction(7)
	g := New(cfg, constSource{})
	if g.At(N/2, N/2) != Burning {
		t.Fatal("expected centre seed for unknown origin")
	}
	if g.Config().Wind != Centre {
		t.Fatalf("expected unknown wind to normalize to centre, got %s", g.Config().Wind)
	}
	if len(g.Notes()) != 2 {
		t.Fatalf("expected two normalization notes, got %v", g.Notes())
	}
}

func TestCatchChanceOutOfRangeDefaults(t *testing.T) {
	for _, chance := range []int{-5, 150} {
		cfg := DefaultConfig()
		cfg.CatchChance = chance
		g := New(cfg, constSource{})
		if got := g.Config().CatchChance; got != DefaultCatchChance {
			t.Fatalf("catch chance %d normalized to %d, want %d", chance, got, DefaultCatchChance)
		}
		if len(g.Notes()) != 1 {
			t.Fatalf("expected a note for catch chance %d, got %v", chance, g.Notes())
		}
	}
	cfg := DefaultConfig()
	cfg.CatchChance = 100
	if g := New(cfg, constSource{}); g.Config().CatchChance != 100 || len(g.Notes()) != 0 {
		t.Fatal("in-range catch chance must be kept without notes")
	}
}

func TestFullBurnTerminatesAtInteriorRadius(t *testing.T) {
	cfg := Config{CatchChance: 100, Origin: Centre, Wind: Centre}
	g := New(cfg, constSource{v: 0})

	// The farthest interior cells sit 18 steps from the centre; one more
	// step burns them out without igniting anything.
	radius := (N/2 - 1) * 2
	for step := 1; step <= radius; step++ {
		g.Step()
		if !g.Active() {
			t.Fatalf("grid went inactive early at step %d", step)
		}
	}
	g.Step()
	if g.Active() {
		t.Fatal("expected grid to be inactive after the final burn-out step")
	}
	if g.Generation() != radius+1 {
		t.Fatalf("generation = %d, want %d", g.Generation(), radius+1)
	}
	if got := countState(g, Burnt); got != (N-2)*(N-2) {
		t.Fatalf("expected every interior cell burnt, got %d", got)
	}
	if countState(g, Tree) != 0 || countState(g, Burning) != 0 {
		t.Fatal("expected no trees or burning cells left")
	}
}

func TestZeroCatchChanceStopsImmediately(t *testing.T) {
	cfg := Config{CatchChance: 0, Origin: Centre, Wind: Centre}
	g := New(cfg, core.NewRNG(5))
	g.Step()
	if g.Active() {
		t.Fatal("expected inactive grid after a step with zero catch chance")
	}
	if got := countState(g, Burnt); got != 1 {
		t.Fatalf("expected only the seed burnt, got %d", got)
	}
	if g.At(N/2, N/2) != Burnt {
		t.Fatal("expected the seed cell to be burnt")
	}
	if got := countState(g, Tree); got != (N-2)*(N-2)-1 {
		t.Fatalf("expected all other trees untouched, got %d", got)
	}
}

func TestInactiveGridStaysInactive(t *testing.T) {
	g := New(Config{CatchChance: 0}, constSource{})
	g.Step()
	before := g.Snapshot()
	for i := 0; i < 3; i++ {
		g.Step()
		if g.Active() {
			t.Fatal("inactive grid became active again")
		}
	}
	after := g.Snapshot()
	if before.States != after.States || before.Generation != after.Generation {
		t.Fatal("steps on an inactive grid must not change it")
	}
}

func TestCellsIgnitedThisStepDoNotSpread(t *testing.T) {
	g := New(Config{CatchChance: 100}, constSource{v: 0})
	g.Step()

	if got := countState(g, Burning); got != 4 {
		t.Fatalf("expected the four neighbours of the seed burning, got %d", got)
	}
	c := N / 2
	for _, dir := range Compass {
		dr, dc := Offset(dir)
		if g.At(c+dr, c+dc) != Burning {
			t.Fatalf("expected %s neighbour burning", dir)
		}
		if !g.Changed(c+dr, c+dc) {
			t.Fatalf("expected %s neighbour flagged as changed", dir)
		}
	}
	if g.At(c, c) != Burnt || !g.Changed(c, c) {
		t.Fatal("expected seed burnt and flagged")
	}
	if g.Ignited() != 4 {
		t.Fatalf("Ignited() = %d, want 4", g.Ignited())
	}

	g.Step()
	if g.Changed(c, c) {
		t.Fatal("changed flags must be cleared at the start of the next step")
	}
	if got := countState(g, Burning); got != 8 {
		t.Fatalf("expected the diamond of radius two burning, got %d", got)
	}
}

func TestNeighbourDrawOrder(t *testing.T) {
	// Draws are consumed North, East, South, West. Only the first draw is
	// low enough to ignite.
	src := &scriptSource{vals: []int{0, 99, 99, 99}}
	g := New(Config{CatchChance: 50}, src)
	g.Step()

	c := N / 2
	if g.At(c-1, c) != Burning {
		t.Fatal("expected the north neighbour to catch from the first draw")
	}
	if countState(g, Burning) != 1 {
		t.Fatalf("expected exactly one burning cell, got %d", countState(g, Burning))
	}
	if src.calls != 4 {
		t.Fatalf("expected four draws, got %d", src.calls)
	}
}

func TestNorthWindFavoursNorthNeighbour(t *testing.T) {
	// Draw 65: 65-20 ignites northwards, 65+10 and 65+20 do not.
	g := New(Config{CatchChance: 50, Wind: North}, constSource{v: 64})
	g.Step()

	c := N / 2
	if g.At(c-1, c) != Burning {
		t.Fatal("expected downwind north neighbour to ignite")
	}
	for _, pos := range [][2]int{{c + 1, c}, {c, c + 1}, {c, c - 1}} {
		if g.At(pos[0], pos[1]) != Tree {
			t.Fatalf("expected (%d,%d) to stay a tree", pos[0], pos[1])
		}
	}
}

func TestBorderStaysEmptyAndTransitionsMoveForward(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, wind := range []Direction{Centre, North, East, South, West} {
			cfg := Config{CatchChance: 70, Origin: Direction(seed % 5), Wind: wind}
			g := New(cfg, core.NewRNG(seed))
			prev := g.Snapshot()
			for steps := 0; g.Active(); steps++ {
				if steps > N*N {
					t.Fatalf("seed %d wind %s: run did not terminate", seed, wind)
				}
				g.Step()
				next := g.Snapshot()
				for row := 0; row < N; row++ {
					for col := 0; col < N; col++ {
						from, to := prev.At(row, col), next.At(row, col)
						if (row == 0 || col == 0 || row == N-1 || col == N-1) && to != Empty {
							t.Fatalf("border cell (%d,%d) became %s", row, col, to)
						}
						if !validTransition(from, to) {
							t.Fatalf("invalid transition %s -> %s at (%d,%d)", from, to, row, col)
						}
					}
				}
				prev = next
			}
		}
	}
}

func validTransition(from, to State) bool {
	if from == to {
		return true
	}
	return (from == Tree && to == Burning) || (from == Burning && to == Burnt)
}

func TestResetDeterministic(t *testing.T) {
	g := New(Config{CatchChance: 60, Wind: East}, nil)

	g.Reset(777)
	for g.Active() {
		g.Step()
	}
	first := g.Snapshot()

	g.Reset(777)
	if g.Generation() != 0 || !g.Active() || g.At(N/2, N/2) != Burning {
		t.Fatal("Reset must rebuild the initial forest")
	}
	for g.Active() {
		g.Step()
	}
	second := g.Snapshot()

	if first.States != second.States || first.Generation != second.Generation {
		t.Fatal("runs with the same seed must match")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New(Config{CatchChance: 100}, constSource{})
	snap := g.Snapshot()
	g.Step()
	if snap.At(N/2, N/2) != Burning {
		t.Fatal("snapshot changed after a step")
	}
	if snap.Dim() != N || snap.At(-1, 3) != Empty {
		t.Fatal("snapshot bounds mismatch")
	}
	if snap.Counts.Burning != 1 || snap.Counts.Tree != (N-2)*(N-2)-1 {
		t.Fatalf("unexpected counts %+v", snap.Counts)
	}
}

func TestCellsMirrorStates(t *testing.T) {
	g := New(Config{CatchChance: 100}, constSource{})
	g.Step()
	cells := g.Cells()
	if len(cells) != N*N {
		t.Fatalf("expected %d cells, got %d", N*N, len(cells))
	}
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			if State(cells[row*N+col]) != g.At(row, col) {
				t.Fatalf("display byte mismatch at (%d,%d)", row, col)
			}
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Lookup("wildfire")
	if !ok {
		t.Fatal("wildfire factory not registered")
	}
	sim := factory(map[string]string{"catch_chance": "0", "seed": "3"})
	if sim.Name() != "wildfire" || sim.Size() != (core.Size{W: N, H: N}) {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}
	sim.Step()
	finite, ok := sim.(core.Finite)
	if !ok || finite.Active() {
		t.Fatal("expected a finite sim that stops with zero catch chance")
	}
}

func TestResetRecordsEffectiveSeed(t *testing.T) {
	g := New(Config{CatchChance: 60, Seed: 8}, constSource{})
	g.Reset(12345)
	if got := g.Config().Seed; got != 12345 {
		t.Fatalf("Config().Seed = %d after reset, want 12345", got)
	}
	for _, group := range g.Parameters().Groups {
		for _, p := range group.Params {
			if p.Key == "seed" && p.Value != "12345" {
				t.Fatalf("seed parameter = %s, want 12345", p.Value)
			}
		}
	}

	// The reset run comes from the seed, not from the source given to New.
	fresh := New(Config{CatchChance: 60, Seed: 12345}, nil)
	for g.Active() || fresh.Active() {
		g.Step()
		fresh.Step()
	}
	if g.Snapshot().States != fresh.Snapshot().States {
		t.Fatal("reset run must match a grid built from the same seed")
	}

	g.Reset(0)
	if g.Config().Seed != 12345 {
		t.Fatal("a zero seed must reuse the recorded seed")
	}
}

func TestNewRecordsClockSeed(t *testing.T) {
	if g := New(DefaultConfig(), nil); g.Config().Seed == 0 {
		t.Fatal("expected the clock seed to be recorded")
	}
	if g := New(DefaultConfig(), constSource{}); g.Config().Seed != 0 {
		t.Fatal("an injected source must leave the seed alone")
	}
}
