package wildfire

// Bias magnitudes applied to the 1-100 draw before comparing it to the catch
// chance. Negative values make ignition easier.
const (
	biasDownwind  = -20
	biasUpwind    = 20
	biasCrosswind = 10
	drawSides     = 100
)

// windBias is indexed by [wind][neighbour].
var windBias = [5][5]int{
	Centre: {},
	North: {
		North: biasDownwind,
		East:  biasCrosswind,
		South: biasUpwind,
		West:  biasCrosswind,
	},
	East: {
		North: biasCrosswind,
		East:  biasDownwind,
		South: biasCrosswind,
		West:  biasUpwind,
	},
	South: {
		North: biasUpwind,
		East:  biasCrosswind,
		South: biasDownwind,
		West:  biasCrosswind,
	},
	West: {
		North: biasCrosswind,
		East:  biasUpwind,
		South: biasCrosswind,
		West:  biasDownwind,
	},
}

// WindBias returns the adjustment added to a draw when fire tries to spread
// from a burning cell towards its neighbour in direction dir. Wind names the
// direction fire is pushed towards. Centre wind, or an unknown value for
// either argument, yields 0.
func WindBias(wind, dir Direction) int {
	if !wind.Valid() || !dir.Valid() {
		return 0
	}
	return windBias[wind][dir]
}

// Ignites reports whether a biased draw catches. The biased value is not
// clamped, so a bias can force or forbid ignition at the extremes.
func Ignites(draw, bias, catchChance int) bool {
	return draw+bias <= catchChance
}

// Threshold is the largest raw draw that still ignites a neighbour in
// direction dir.
func Threshold(catchChance int, wind, dir Direction) int {
	return catchChance - WindBias(wind, dir)
}

// Source supplies uniform random integers in [0, n).
type Source interface {
	IntN(n int) int
}

// roll draws a uniform integer in [1, 100].
func roll(rng Source) int {
	return rng.IntN(drawSides) + 1
}
