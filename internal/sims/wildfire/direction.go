package wildfire

import (
	"strconv"
	"strings"
)

// Direction names a compass position used for both the ignition origin and
// the wind. Centre means "grid centre" for an origin and "no wind" for wind.
type Direction uint8

const (
	Centre Direction = iota
	North
	East
	South
	West
)

// Compass lists the four neighbour directions in the order a burning cell
// tries them. The order fixes random-number consumption for a given seed.
var Compass = [4]Direction{North, East, South, West}

var directionNames = [...]string{
	Centre: "centre",
	North:  "north",
	East:   "east",
	South:  "south",
	West:   "west",
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Valid reports whether d is one of the five named directions.
func (d Direction) Valid() bool { return d <= West }

// Opposite returns the direction pointing the other way. Centre is its own
// opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Centre
	}
}

// offsets maps a neighbour direction to its (row, col) delta.
var offsets = [...][2]int{
	Centre: {0, 0},
	North:  {-1, 0},
	East:   {0, 1},
	South:  {1, 0},
	West:   {0, -1},
}

// Offset returns the (row, col) delta of d. Unknown directions yield (0, 0).
func Offset(d Direction) (int, int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// ParseDirection accepts a direction name, its first letter, "none" for
// Centre, or the numeric codes 0-4 used by the prompts.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Centre, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > int(West) {
			return Centre, false
		}
		return Direction(n), true
	}
	switch s {
	case "c", "center", "none", "no wind":
		return Centre, true
	case "n":
		return North, true
	case "e":
		return East, true
	case "s":
		return South, true
	case "w":
		return West, true
	}
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return Centre, false
}
