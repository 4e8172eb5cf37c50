// Package sweep runs batches of independent fire simulations and aggregates
// burn statistics per parameter set.
package sweep

import (
	"fmt"
	"sort"
	"sync"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

// ParamSet is one point of the sweep grid.
type ParamSet struct {
	CatchChance int
	Origin      wildfire.Direction
	Wind        wildfire.Direction
}

func (p ParamSet) String() string {
	return fmt.Sprintf("catch=%d origin=%s wind=%s", p.CatchChance, p.Origin, p.Wind)
}

// Result aggregates the runs of one ParamSet.
type Result struct {
	Params     ParamSet
	Runs       int
	MeanBurnt  float64
	MeanSteps  float64
	MaxBurnt   int
	FullBurns  int
	TotalTrees int
}

// Grid builds every combination of the given catch chances and winds for a
// single origin.
func Grid(chances []int, winds []wildfire.Direction, origin wildfire.Direction) []ParamSet {
	sets := make([]ParamSet, 0, len(chances)*len(winds))
	for _, chance := range chances {
		for _, wind := range winds {
			sets = append(sets, ParamSet{CatchChance: chance, Origin: origin, Wind: wind})
		}
	}
	return sets
}

// RunScenario plays runs simulations of params, seeding run i with seed+i.
func RunScenario(params ParamSet, runs int, seed int64) Result {
	res := Result{Params: params, Runs: runs, TotalTrees: (wildfire.N - 2) * (wildfire.N - 2)}
	if runs <= 0 {
		return res
	}
	var burnt, steps int
	for i := 0; i < runs; i++ {
		cfg := wildfire.Config{CatchChance: params.CatchChance, Origin: params.Origin, Wind: params.Wind}
		g := wildfire.New(cfg, core.NewRNG(seed+int64(i)))
		for g.Active() {
			g.Step()
		}
		counts := g.Counts()
		burnt += counts.Burnt
		steps += g.Generation()
		if counts.Burnt > res.MaxBurnt {
			res.MaxBurnt = counts.Burnt
		}
		if counts.Burnt == res.TotalTrees {
			res.FullBurns++
		}
	}
	res.MeanBurnt = float64(burnt) / float64(runs)
	res.MeanSteps = float64(steps) / float64(runs)
	return res
}

// Run spreads the parameter sets over workers goroutines. Each simulation is
// owned by the worker that runs it. Results come back sorted by catch chance
// and then wind.
func Run(sets []ParamSet, runs, workers int, seed int64) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan ParamSet)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- RunScenario(params, runs, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Params.CatchChance != all[j].Params.CatchChance {
			return all[i].Params.CatchChance < all[j].Params.CatchChance
		}
		return all[i].Params.Wind < all[j].Params.Wind
	})
	return all
}
