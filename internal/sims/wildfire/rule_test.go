package wildfire

import "testing"

func TestWindBiasNoWindIsDirectionIndependent(t *testing.T) {
	for _, dir := range Compass {
		if got := WindBias(Centre, dir); got != 0 {
			t.Fatalf("WindBias(centre, %s) = %d, want 0", dir, got)
		}
		if got := Threshold(37, Centre, dir); got != 37 {
			t.Fatalf("Threshold without wind towards %s = %d, want 37", dir, got)
		}
	}
}

func TestWindBiasAsymmetry(t *testing.T) {
	for _, wind := range Compass {
		for _, dir := range Compass {
			got := WindBias(wind, dir)
			var want int
			switch dir {
			case wind:
				want = -20
			case wind.Opposite():
				want = 20
			default:
				want = 10
			}
			if got != want {
				t.Fatalf("WindBias(%s, %s) = %d, want %d", wind, dir, got, want)
			}
		}
	}
}

func TestNorthWindThresholds(t *testing.T) {
	if got := Threshold(50, North, North); got != 70 {
		t.Fatalf("downwind threshold = %d, want 70", got)
	}
	if got := Threshold(50, North, South); got != 30 {
		t.Fatalf("upwind threshold = %d, want 30", got)
	}
	for _, dir := range []Direction{East, West} {
		if got := Threshold(50, North, dir); got != 40 {
			t.Fatalf("crosswind threshold towards %s = %d, want 40", dir, got)
		}
	}
}

func TestWindBiasUnknownValues(t *testing.T) {
	if WindBias(Direction(12), North) != 0 || WindBias(North, Direction(12)) != 0 {
		t.Fatal("unknown directions must not bias the draw")
	}
}

func TestIgnitesIsUnclamped(t *testing.T) {
	if !Ignites(1, -20, 0) {
		t.Fatal("a negative biased draw must ignite even at zero catch chance")
	}
	if Ignites(100, 20, 100) {
		t.Fatal("a biased draw above 100 must not ignite even at full catch chance")
	}
	if !Ignites(50, 0, 50) || Ignites(51, 0, 50) {
		t.Fatal("comparison must be inclusive")
	}
}

func TestRollRange(t *testing.T) {
	if got := roll(constSource{v: 0}); got != 1 {
		t.Fatalf("lowest roll = %d, want 1", got)
	}
	if got := roll(constSource{v: 1000}); got != 100 {
		t.Fatalf("highest roll = %d, want 100", got)
	}
}

func TestOffsetsAndOpposites(t *testing.T) {
	for _, dir := range Compass {
		dr, dc := Offset(dir)
		or, oc := Offset(dir.Opposite())
		if dr+or != 0 || dc+oc != 0 {
			t.Fatalf("%s and its opposite do not cancel", dir)
		}
		if dr*dr+dc*dc != 1 {
			t.Fatalf("%s is not an orthogonal unit step", dir)
		}
	}
	if dr, dc := Offset(North); dr != -1 || dc != 0 {
		t.Fatal("north must decrease the row")
	}
	if Centre.Opposite() != Centre {
		t.Fatal("centre is its own opposite")
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"0":      Centre,
		"none":   Centre,
		"Centre": Centre,
		"1":      North,
		"n":      North,
		" EAST ": East,
		"3":      South,
		"w":      West,
	}
	for in, want := range cases {
		got, ok := ParseDirection(in)
		if !ok || got != want {
			t.Fatalf("ParseDirection(%q) = %s, %v; want %s", in, got, ok, want)
		}
	}
	for _, bad := range []string{"", "5", "-1", "up"} {
		if got, ok := ParseDirection(bad); ok || got != Centre {
			t.Fatalf("ParseDirection(%q) = %s, %v; want centre, false", bad, got, ok)
		}
	}
}
