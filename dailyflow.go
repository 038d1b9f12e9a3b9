/*
Copyright © 2024 the soilwat authors.
This file is part of soilwat.

soilwat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

soilwat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with soilwat.  If not, see <http://www.gnu.org/licenses/>.
*/

package soilwat

import "math"

// SnowState is the day-to-day carried snow state: current snowpack and
// the smoothed snow-surface temperature used by the melt kernel.
type SnowState struct {
	Snowpack     float64 // cm water equivalent
	SmoothedTemp float64 // deg C
}

// DailyForcing is what the orchestrator hands the flow controller for
// one simulated day: today's weather plus the radiation/PET already
// computed for it.
type DailyForcing struct {
	DOY           int
	Tmax, Tmin, Tavg float64
	PPT           float64
	TiltedGlobalMJ float64 // H_gt, MJ/m2
	PET           float64 // cm/day
}

// DailyFlowResult carries every quantity spec.md §4.5 names as an
// output of one day's flow kernel.
type DailyFlowResult struct {
	Rain, Snowfall   float64
	Snowmelt, SnowLoss float64
	Runoff, Runon    float64
	DeepDrainage     float64
	BareSoilEvap     float64
	Transpiration    [NumVeg]float64
	HydRedist        []float64 // per layer, signed

	SoilTempProfile []float64

	// Per-layer bookkeeping kept only so AuditDay can check the §8
	// per-layer and infiltration water-balance equations; not pushed to
	// the output aggregator.
	SWCBefore    []float64 // SWCToday at entry to RunDailyFlow
	SWCAfter     []float64 // SWCToday after step 7
	PercIn       []float64
	PercOut      []float64
	EsoilLayers  []float64
	TranspLayers []float64 // summed across vegetation types
}

// RunDailyFlow advances site and snow by one day given forcing,
// mutating each layer's SWCToday and snow's state, and returns the
// fluxes the audit and output aggregator need. Passes run in the order
// documented in spec.md §4.5.
func RunDailyFlow(ctx *RunContext, site *Site, veg *VegComposition, snow *SnowState, forcing DailyForcing) DailyFlowResult {
	var result DailyFlowResult
	if ctx.StopRun {
		return result
	}

	nLayers := len(site.Layers)

	result.SWCBefore = make([]float64, nLayers)
	for i, l := range site.Layers {
		result.SWCBefore[i] = l.SWCToday
	}

	// Step 1: snow partition.
	useSnow := site.Snow.UseSnow
	if useSnow && forcing.Tavg <= site.Snow.TminAccu {
		result.Snowfall = forcing.PPT
		result.Rain = 0
		snow.Snowpack += result.Snowfall
	} else {
		result.Rain = forcing.PPT
	}

	// Step 2: snow melt.
	if snow.Snowpack > 0 {
		phase := 2 * math.Pi * (float64(forcing.DOY) - 1) / 365.0
		rmelt := site.Snow.RmeltMin + (site.Snow.RmeltMax-site.Snow.RmeltMin)*0.5*(1+math.Sin(phase-math.Pi/2))
		snow.SmoothedTemp = (1-site.Snow.Lambda)*snow.SmoothedTemp + site.Snow.Lambda*forcing.Tavg
		if snow.SmoothedTemp > site.Snow.TmaxCrit {
			melt := rmelt * ((snow.SmoothedTemp+forcing.Tmax)/2 - site.Snow.TmaxCrit)
			if melt < 0 {
				melt = 0
			}
			result.Snowmelt = math.Min(snow.Snowpack, melt)
			snow.Snowpack -= result.Snowmelt
		}
	}

	// Step 3: snow sublimation. cov_soil is hardcoded to 0.5 per
	// SW_SoilWater.c (the original never exposes it as a configurable
	// parameter), unlike the melt formula's cov, which the original
	// hardcodes to 1 and so drops out as a no-op.
	if snow.Snowpack > 0 {
		const covSoil = 0.5
		result.SnowLoss = math.Min(snow.Snowpack, covSoil*forcing.PET)
		snow.Snowpack -= result.SnowLoss
	}

	// Step 4: infiltration -> percolation, layer by layer.
	percIn := make([]float64, nLayers)
	percOut := make([]float64, nLayers)
	water := result.Rain + result.Snowmelt
	for i, l := range site.Layers {
		if l.Width == 0 {
			// deep-drainage sink: whatever arrives is lost.
			result.DeepDrainage += water
			water = 0
			continue
		}
		percIn[i] = water
		room := l.SWCSat - l.SWCToday
		avail := water * (1 - l.Impermeable)
		into := math.Min(avail, math.Max(0, room))
		l.SWCToday += into
		excess := water - into
		percOut[i] = excess
		water = excess
	}
	if water > 0 && !site.HasDeepDrainage {
		result.Runoff += water
	}
	result.PercIn = percIn
	result.PercOut = percOut

	// Step 5: ET.
	esoilLayers := make([]float64, nLayers)
	result.BareSoilEvap = bareSoilEvaporation(site, veg.BareCover, forcing.PET, esoilLayers)
	result.EsoilLayers = esoilLayers

	transpLayers := make([]float64, nLayers)
	for v := Veg(0); v < NumVeg; v++ {
		if veg.Veg[v].Cover <= 0 {
			continue
		}
		result.Transpiration[v] = transpire(site, v, veg.Veg[v], forcing.PET, transpLayers)
	}
	result.TranspLayers = transpLayers

	// Step 6: hydraulic redistribution.
	result.HydRedist = hydraulicRedistribution(site, veg)

	// Step 7: soil temperature profile.
	result.SoilTempProfile = updateSoilTemperature(ctx, site, forcing.Tavg)

	result.SWCAfter = make([]float64, nLayers)
	for i, l := range site.Layers {
		result.SWCAfter[i] = l.SWCToday
	}

	return result
}

// bareSoilEvaporation draws evaporation from the evaporation layers
// only, weighted by each layer's normalized coefficient and by the
// bare-ground cover fraction (mirroring transpire's scaling by
// vt.Cover), and limited by available water above swc_min. perLayer, if
// non-nil, accumulates the draw at each layer's index for the
// water-balance audit.
func bareSoilEvaporation(site *Site, bareCover, pet float64, perLayer []float64) float64 {
	total := 0.0
	for i := 0; i < site.NumEvapLayers; i++ {
		l := site.Layers[i]
		demand := pet * bareCover * l.EvapCoeff
		avail := math.Max(0, l.SWCToday-l.SWCMin)
		e := math.Min(demand, avail)
		l.SWCToday -= e
		total += e
		if perLayer != nil {
			perLayer[i] += e
		}
	}
	return total
}

// transpire draws transpiration for one vegetation type from its
// transpiration layers, scaled by root coefficient and by availability
// relative to the critical SWP threshold. perLayer, if non-nil,
// accumulates the draw (summed across vegetation types) at each
// layer's index for the water-balance audit.
func transpire(site *Site, v Veg, vt VegType, pet float64, perLayer []float64) float64 {
	total := 0.0
	n := site.NumTranspLayers[v]
	for i := 0; i < n; i++ {
		l := site.Layers[i]
		demand := pet * vt.Cover * l.TranspCoeff[v]
		avail := math.Max(0, l.SWCToday-l.SWCAtCrit[v])
		t := math.Min(demand, avail)
		l.SWCToday -= t
		total += t
		if perLayer != nil {
			perLayer[i] += t
		}
	}
	return total
}

// hydraulicRedistribution moves water between layers with opposite SWP
// gradients, weighted by each vegetation's logistic root-conductance
// function of SWP, per spec.md §4.5 step 6.
func hydraulicRedistribution(site *Site, veg *VegComposition) []float64 {
	n := len(site.Layers)
	delta := make([]float64, n)

	psi := make([]float64, n)
	for i, l := range site.Layers {
		if l.Width == 0 {
			continue
		}
		p, err := l.SWPBar(l.SWCToday)
		if err == nil {
			psi[i] = p
		}
	}

	for v := Veg(0); v < NumVeg; v++ {
		vt := veg.Veg[v]
		if vt.Cover <= 0 || vt.MaxCondRoot <= 0 {
			continue
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if site.Layers[i].Width == 0 || site.Layers[j].Width == 0 {
					continue
				}
				if math.Abs(psi[i]-psi[j]) < DDelta {
					continue
				}
				condI := vt.MaxCondRoot / (1 + math.Exp((psi[i]-vt.Psi50)/vt.ShapeParam))
				condJ := vt.MaxCondRoot / (1 + math.Exp((psi[j]-vt.Psi50)/vt.ShapeParam))
				cond := math.Min(condI, condJ)
				flow := cond * (psi[j] - psi[i]) * vt.Cover
				delta[i] += flow
				delta[j] -= flow
			}
		}
	}

	for i, l := range site.Layers {
		l.SWCToday += delta[i]
	}
	return delta
}

// updateSoilTemperature steps the profile in increments of stDeltaX
// down to stMaxDepth, relaxing each node toward the smoothed surface
// forcing. n_RGR was already validated not to exceed MaxSTRGR during
// site initialization.
func updateSoilTemperature(ctx *RunContext, site *Site, surfaceT float64) []float64 {
	if !site.SoilTemp.UseSoilTemp {
		return nil
	}
	nNodes := site.SoilTemp.nRGR()
	if nNodes < 0 {
		return nil
	}
	profile := make([]float64, nNodes+1)
	profile[0] = surfaceT
	for i := 1; i <= nNodes; i++ {
		depth := float64(i) * site.SoilTemp.DeltaX
		damping := math.Exp(-depth / math.Max(1, site.SoilTemp.MaxDepth))
		profile[i] = site.SoilTemp.TsoilConst + (surfaceT-site.SoilTemp.TsoilConst)*damping
	}
	return profile
}

// EndOfDay rotates each layer's SWC "today" into "yesterday", per
// spec.md §4.5 step 8. The orchestrator calls this after pushing the
// day's results into the output aggregator.
func EndOfDay(site *Site) {
	for _, l := range site.Layers {
		l.SWCYesterday = l.SWCToday
	}
}

// AuditDay runs the water-balance checks of spec.md §4.5/§8 behind
// counters 0-8 against one day's flow result and increments the
// corresponding counters in ctx.AuditCounters on violation; counter 9
// (observed-only weather) is incremented by Run.SimulateDay instead. Checks never set ctx.StopRun. This
// model carries no canopy-interception or litter-pool state (not part
// of spec.md's data model), so the Eponded/Elitter/intercepted terms
// the spec's balance equations name are structurally zero here.
func AuditDay(ctx *RunContext, site *Site, forcing DailyForcing, r DailyFlowResult) {
	sumT := 0.0
	for v := Veg(0); v < NumVeg; v++ {
		sumT += r.Transpiration[v]
	}
	aet := r.BareSoilEvap + sumT

	// Counter 0: AET <= PET.
	if aet > forcing.PET+1e-9 {
		ctx.AuditCounters[AuditAETlePET]++
	}

	// Counter 1: AET = sum(E) + sum(T).
	if math.Abs(aet-(r.BareSoilEvap+sumT)) > 1e-9 {
		ctx.AuditCounters[AuditAETeqESplusT]++
	}

	// Counter 2: Etot = Esoil + Eponded + Eveg + Elitter + Esnow.
	etot := r.BareSoilEvap + sumT + r.SnowLoss
	decomposed := r.BareSoilEvap + 0 /*Eponded*/ + sumT + 0 /*Elitter*/ + r.SnowLoss
	if math.Abs(etot-decomposed) > 1e-9 {
		ctx.AuditCounters[AuditEtotBalance]++
	}

	// Counter 3: inf = rain+snowmelt+runon - (runoff+intercepted+dSurfaceWater+Eponded).
	// In this model all precipitation and snowmelt attempts infiltration
	// before any loss is assessed (there is no separate surface-runoff
	// rejection step), so the water actually handed to the first layer
	// (PercIn[0]) is exactly rain+snowmelt+runon; "runoff" here is what
	// the profile could not absorb after passing through every layer,
	// assessed downstream of infiltration rather than upstream of it.
	inf := r.Rain + r.Snowmelt + r.Runon
	if len(r.PercIn) > 0 && math.Abs(inf-r.PercIn[0]) > 1e-9 {
		ctx.AuditCounters[AuditInfiltrationBalance]++
	}

	// Counter 4: sum(T) + Esoil = inf - (deepDrainage + sum(dSWC)), where
	// the outflow side of inf also nets out the unabsorbed excess
	// (r.Runoff) since that water never entered any layer.
	dSWCTotal := 0.0
	for i := range site.Layers {
		dSWCTotal += r.SWCAfter[i] - r.SWCBefore[i]
	}
	infNet := inf - r.Runoff
	if math.Abs((sumT+r.BareSoilEvap)-(infNet-(r.DeepDrainage+dSWCTotal))) > 1e-6 {
		ctx.AuditCounters[AuditTranspirationBalance]++
	}

	// Counter 5 / 6: snowpack/snowmelt/snowloss and deep-drainage sign.
	if r.Snowmelt < 0 || r.SnowLoss < 0 {
		ctx.AuditCounters[AuditSnowpackBalance]++
	}
	if r.DeepDrainage < 0 {
		ctx.AuditCounters[AuditDeepDrainageBalance]++
	}

	// Counter 7: per-layer dswc = perc_in + hydred - perc_out - T - Esoil.
	for i, l := range site.Layers {
		if l.Width == 0 {
			continue
		}
		dswc := r.SWCAfter[i] - r.SWCBefore[i]
		var hydred float64
		if r.HydRedist != nil {
			hydred = r.HydRedist[i]
		}
		var tLayer, eLayer float64
		if r.TranspLayers != nil {
			tLayer = r.TranspLayers[i]
		}
		if r.EsoilLayers != nil {
			eLayer = r.EsoilLayers[i]
		}
		expected := r.PercIn[i] + hydred - r.PercOut[i] - tLayer - eLayer
		if math.Abs(dswc-expected) > 1e-9 {
			ctx.AuditCounters[AuditLayerWaterBalance]++
		}

		// Counter 8: swc_min <= swc <= swc_sat.
		if l.SWCToday < l.SWCMin-1e-9 || l.SWCToday > l.SWCSat+1e-9 {
			ctx.AuditCounters[AuditSWCBounds]++
		}
	}
}
