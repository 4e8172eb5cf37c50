package wildfire

import (
	"fmt"
	"strconv"
)

// N is the side length of the square forest grid, border ring included.
const N = 21

// DefaultCatchChance replaces catch chances outside [0, 100].
const DefaultCatchChance = 50

// Config holds the construction parameters of a fire simulation. The values
// are fixed once a FireGrid has been built.
type Config struct {
	CatchChance int
	Origin      Direction
	Wind        Direction

	// Seed feeds the RNG when the grid builds its own. Zero asks for a
	// time-based seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CatchChance: DefaultCatchChance,
		Origin:      Centre,
		Wind:        Centre,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse leave the default in place; range problems are
// left for Normalize.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["catch_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.CatchChance = parsed
		}
	}
	if v, ok := cfg["origin"]; ok {
		if parsed, ok := ParseDirection(v); ok {
			c.Origin = parsed
		}
	}
	if v, ok := cfg["wind"]; ok {
		if parsed, ok := ParseDirection(v); ok {
			c.Wind = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Normalize maps out-of-range values onto their defaults and describes every
// substitution it made. It never fails.
func (c Config) Normalize() (Config, []string) {
	var notes []string
	if c.CatchChance < 0 || c.CatchChance > 100 {
		notes = append(notes, fmt.Sprintf("catch chance %d outside 0-100, using %d", c.CatchChance, DefaultCatchChance))
		c.CatchChance = DefaultCatchChance
	}
	if !c.Origin.Valid() {
		notes = append(notes, fmt.Sprintf("unknown ignition origin %d, using %s", c.Origin, Centre))
		c.Origin = Centre
	}
	if !c.Wind.Valid() {
		notes = append(notes, fmt.Sprintf("unknown wind direction %d, using %s", c.Wind, Centre))
		c.Wind = Centre
	}
	return c, notes
}

// originCells holds the (row, col) of the seed cell for each origin.
var originCells = [...][2]int{
	Centre: {N / 2, N / 2},
	North:  {1, N / 2},
	East:   {N / 2, N - 2},
	South:  {N - 2, N / 2},
	West:   {N / 2, 1},
}

// OriginCell returns the (row, col) that starts burning for origin d.
// Unknown origins fall back to the centre.
func OriginCell(d Direction) (int, int) {
	if !d.Valid() {
		d = Centre
	}
	c := originCells[d]
	return c[0], c[1]
}
