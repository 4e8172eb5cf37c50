package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"wildfire-ca/internal/sims/wildfire"
	"wildfire-ca/internal/sweep"
)

func main() {
	runs := flag.Int("runs", 200, "simulations per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first run; run i uses seed+i")
	originName := flag.String("origin", "centre", "ignition origin")
	flag.Parse()

	origin, ok := wildfire.ParseDirection(*originName)
	if !ok {
		log.Printf("unknown origin %q, using %s", *originName, wildfire.Centre)
	}

	chances := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	winds := []wildfire.Direction{wildfire.Centre, wildfire.North, wildfire.East, wildfire.South, wildfire.West}
	sets := sweep.Grid(chances, winds, origin)

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d runs each)\n", len(sets), *workers, *runs)
	start := time.Now()
	results := sweep.Run(sets, *runs, *workers, *seed)

	fmt.Printf("\n%-6s %-7s %10s %10s %8s %6s\n", "catch", "wind", "meanBurnt", "meanSteps", "maxBurnt", "full")
	for _, res := range results {
		fmt.Printf("%-6d %-7s %10.1f %10.1f %8d %6d\n",
			res.Params.CatchChance, res.Params.Wind, res.MeanBurnt, res.MeanSteps, res.MaxBurnt, res.FullBurns)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}
