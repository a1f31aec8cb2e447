package heatfield

import "citypulse/internal/core"

// Parameters reports the generator settings and fixed tuning constants.
func (g *Generator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("size", "Grid size", g.cfg.Size),
				core.IntParam("hotspots", "Hotspots", g.cfg.Hotspots),
				core.Int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name:    "Gradient",
			Summary: "max(0, 100 - d*20) +/- 15",
			Params: []core.Parameter{
				core.FloatParam("base_peak", "Base peak", basePeak),
				core.FloatParam("base_falloff", "Base falloff", baseFalloff),
				core.FloatParam("jitter", "Jitter", jitterOffset),
			},
		},
		{
			Name:    "Hotspot",
			Summary: "max(0, 80 - d*30) in a 5x5 box",
			Params: []core.Parameter{
				core.FloatParam("hotspot_peak", "Hotspot peak", hotspotPeak),
				core.FloatParam("hotspot_falloff", "Hotspot falloff", hotspotFalloff),
				core.IntParam("hotspot_radius", "Box radius", hotspotRadius),
			},
		},
	}}
}
