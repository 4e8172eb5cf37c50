package wildfire

import (
	"strconv"

	"wildfire-ca/internal/core"
)

// Parameters describes the configuration and live counters for HUDs.
func (g *FireGrid) Parameters() core.ParameterSnapshot {
	counts := g.Counts()
	groups := []core.ParameterGroup{
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("catch_chance", "Catch chance", g.cfg.CatchChance),
				enumParam("origin", "Ignition origin", g.cfg.Origin),
				enumParam("wind", "Wind", g.cfg.Wind),
				int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Step", g.generation),
				intParam("ignited", "Ignited last step", g.ignited),
				intParam("trees", "Trees", counts.Tree),
				intParam("burning", "Burning", counts.Burning),
				intParam("burnt", "Burnt", counts.Burnt),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func enumParam(key, label string, value Direction) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeEnum,
		Value: value.String(),
	}
}
