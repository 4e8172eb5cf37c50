package app

import (
	"fmt"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

// FireSim is what the drivers need from a simulation: the core contract, a
// termination predicate and grid snapshots for rendering.
type FireSim interface {
	core.Sim
	core.Finite
	Snapshot() wildfire.Snapshot
}

// Build runs factory with params and checks the result can be driven here.
func Build(factory core.Factory, params map[string]string) (FireSim, error) {
	sim := factory(params)
	if sim == nil {
		return nil, fmt.Errorf("factory returned no simulation")
	}
	fs, ok := sim.(FireSim)
	if !ok {
		return nil, fmt.Errorf("simulation %q does not expose fire grid snapshots", sim.Name())
	}
	return fs, nil
}

type noteSource interface {
	Notes() []string
}

// Notes returns the normalization notes a sim recorded at construction.
func Notes(sim core.Sim) []string {
	if n, ok := sim.(noteSource); ok {
		return n.Notes()
	}
	return nil
}
