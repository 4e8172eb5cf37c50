package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim  string
	TPS  int
	Seed int64

	CatchChance int
	Origin      string
	Wind        string

	TUI  bool
	Auto bool

	set map[string]bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "wildfire", TPS: 4, CatchChance: 50, Origin: "centre", Wind: "centre"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.TPS, "tps", c.TPS, "steps per second in the terminal viewer")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.CatchChance, "catch", c.CatchChance, "chance in percent that a tree catches fire (0-100)")
	fs.StringVar(&c.Origin, "origin", c.Origin, "ignition origin: centre, north, east, south, west or 0-4")
	fs.StringVar(&c.Wind, "wind", c.Wind, "wind direction: none, north, east, south, west or 0-4")
	fs.BoolVar(&c.TUI, "tui", c.TUI, "run the full-screen terminal viewer")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "do not pause between steps in prompt mode")
}

// MarkSet records which flags were given explicitly. Call it after Parse.
func (c *Config) MarkSet(fs *flag.FlagSet) {
	c.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { c.set[f.Name] = true })
}

// IsSet reports whether the named flag was given on the command line.
func (c *Config) IsSet(name string) bool { return c.set[name] }

// SimParams converts the simulation settings into the factory map form.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"catch_chance": strconv.Itoa(c.CatchChance),
		"origin":       c.Origin,
		"wind":         c.Wind,
		"seed":         strconv.FormatInt(c.Seed, 10),
	}
}
