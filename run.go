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

import (
	"github.com/DrylandEcology/soilwat/markov"
	"github.com/DrylandEcology/soilwat/output"
	"github.com/DrylandEcology/soilwat/radiation"
	"github.com/DrylandEcology/soilwat/weather"
)

// Run is the top-level aggregate the system design calls for in place
// of the source's module-level globals (spec.md §9 "Replacing global
// singletons"): it owns the site, vegetation, weather record,
// radiation memo, RNG-backed weather generator, output accumulators,
// and error context for one simulated point. Nothing crosses the API
// boundary implicitly; every entry point takes a *Run (or the
// *RunContext it holds in Ctx) explicitly.
type Run struct {
	Ctx *RunContext

	Site *Site
	Veg  *VegComposition

	Weather       weather.Record
	ImputeMethod  weather.ImputeMethod
	MaxLOCFMissing int
	Scales        [12]weather.MonthlyScale
	Selection     weather.Selection
	Generator     *markov.Generator

	Memo *radiation.Memo

	Snow SnowState

	Day   *output.Aggregator
	Week  *output.Aggregator
	Month *output.Aggregator
	Year  *output.Aggregator

	doy      int
	yearIdx  int
	year     int
}

// NewRun constructs a Run from a ready Site and VegComposition, with
// fresh output aggregators at every period and a radiation memo keyed
// to the site's (latitude, slope, aspect). ctx must already have
// logging configured (NewRunContext).
func NewRun(ctx *RunContext, site *Site, veg *VegComposition) *Run {
	return &Run{
		Ctx:   ctx,
		Site:  site,
		Veg:   veg,
		Memo:  radiation.NewMemo(site.LatitudeRad, site.SlopeRad, site.AspectRad),
		Day:   output.NewAggregator(output.Daily),
		Week:  output.NewAggregator(output.Weekly),
		Month: output.NewAggregator(output.Monthly),
		Year:  output.NewAggregator(output.Yearly),
	}
}

// PrepareYear runs the per-year weather pipeline (spec.md §4.3): it
// applies the imputation policy r.ImputeMethod selects (pass-through,
// LOCF, or the Markov generator, which fails the run when no Generator
// is configured). Scaling and the audit always run last,
// matching the ordering spec.md §5 requires ("scaling, imputation, and
// weather-generator draws are applied strictly in file-read order").
func (r *Run) PrepareYear(yearIdx int) {
	if r.Ctx.StopRun {
		return
	}
	if yearIdx < 0 || yearIdx >= len(r.Weather.Years) {
		r.Ctx.Fail(Errorf(InvalidInput, "year index %d out of range [0,%d)", yearIdx, len(r.Weather.Years)))
		return
	}
	yr := &r.Weather.Years[yearIdx]

	switch r.ImputeMethod {
	case weather.PassThrough:
		// no-op
	case weather.LOCF:
		if err := weather.LOCFImpute(yr, r.MaxLOCFMissing); err != nil {
			r.Ctx.Fail(err)
			return
		}
	case weather.MarkovGenerated:
		r.generateMissingWeather(yr)
	}

	weather.ScaleYear(yr, r.Scales)
	if err := weather.CheckAllWeather(&weather.Record{Years: []weather.Year{*yr}}); err != nil {
		r.Ctx.Fail(err)
	}
}

// generateMissingWeather fills missing Tmax/Tmin/PPT for one year from
// the Markov generator, per spec.md §4.3's "policy 2". This lives on
// Run rather than in the weather package because it must call
// soilwat/markov, which in turn depends on soilwat (see DESIGN.md);
// putting it in weather would create an import cycle.
func (r *Run) generateMissingWeather(yr *weather.Year) {
	if r.Generator == nil {
		r.Ctx.Fail(Errorf(InvalidInput, "weather-generator imputation selected but no Generator configured"))
		return
	}
	for i := range yr.Days {
		d := &yr.Days[i]
		week := (d.DOY - 1) / 7
		if week > 53 {
			week = 53
		}
		wet := !weather.IsMissing(d.PPT, 1e-4) && d.PPT > 0

		needsPPT := weather.IsMissing(d.PPT, 1e-4)
		var genPPT float64
		if needsPPT {
			genPPT, wet = r.Generator.PPT(d.DOY)
		}

		if weather.IsMissing(d.Tmax, 1e-4) || weather.IsMissing(d.Tmin, 1e-4) {
			tmax, tmin, err := r.Generator.TemperaturePair(week, wet)
			if err != nil {
				r.Ctx.Fail(err)
				return
			}
			if weather.IsMissing(d.Tmax, 1e-4) {
				d.Tmax = tmax
			}
			if weather.IsMissing(d.Tmin, 1e-4) {
				d.Tmin = tmin
			}
		}
		if needsPPT {
			d.PPT = genPPT
		}
		d.DeriveTavg()
	}
}

// NewYear resets per-year orchestration state: the simulated DOY
// cursor, and (if resetSWC is set) every layer's SWC back to its
// initial value, per spec.md §2 "Orchestrator calls new_year".
func (r *Run) NewYear(calendarYear int, yearIdx int, resetSWC bool) {
	r.year = calendarYear
	r.yearIdx = yearIdx
	r.doy = 0
	if resetSWC {
		for _, l := range r.Site.Layers {
			l.SWCToday = l.SWCInit
			l.SWCYesterday = l.SWCInit
		}
		r.Snow = SnowState{}
	}
}

// SimulateDay advances the simulation by one day, following the
// ordering of spec.md §2 "Data flow per simulation year": deliver
// today's forcing, partition rain/snow implicitly inside RunDailyFlow,
// compute tilted-surface irradiation, compute PET, run the daily flow
// kernel, audit, and push into every output aggregator.
func (r *Run) SimulateDay(doy int) DailyFlowResult {
	var result DailyFlowResult
	if r.Ctx.StopRun {
		return result
	}
	if r.yearIdx < 0 || r.yearIdx >= len(r.Weather.Years) {
		r.Ctx.Fail(Errorf(InvalidInput, "no weather loaded for year index %d", r.yearIdx))
		return result
	}
	yr := r.Weather.Years[r.yearIdx]
	if doy < 1 || doy > len(yr.Days) {
		r.Ctx.Fail(Errorf(InvalidInput, "doy %d out of range for year %d", doy, r.year))
		return result
	}
	day := yr.Days[doy-1]

	// Counter 9: observed-only weather (ImputeMethod == PassThrough) may
	// still carry missing fields day to day; each day on which at least
	// one default is substituted for them increments this counter once,
	// rather than being treated as fatal, per spec.md §8 scenario 6 ("counter 9 which may be zero or
	// small positive when observed-only weather is used").
	usedDefault := false

	cloud := weather.Missing
	if !weather.IsMissing(day.Cloud, 1e-4) {
		cloud = day.Cloud / 100
	} else if r.ImputeMethod == weather.PassThrough {
		usedDefault = true
	}
	observed := weather.Missing
	if !weather.IsMissing(day.ShortwaveMJ, 1e-4) {
		observed = day.ShortwaveMJ
	} else if r.ImputeMethod == weather.PassThrough {
		usedDefault = true
	}
	ea := 0.0
	if !weather.IsMissing(day.ActualVP, 1e-4) {
		ea = day.ActualVP
	} else if r.ImputeMethod == weather.PassThrough {
		usedDefault = true
	}

	albedo := r.weightedAlbedo()
	trans, err := radiation.Transpose(r.Memo, doy, toSunMissing(cloud), toSunMissing(observed), ea, r.Site.ElevationM, albedo)
	if err != nil {
		r.Ctx.Fail(err)
		return result
	}

	rhPct := 50.0
	if !weather.IsMissing(day.RH, 1e-4) {
		rhPct = day.RH
	} else if r.ImputeMethod == weather.PassThrough {
		usedDefault = true
	}
	windMS := 0.0
	if !weather.IsMissing(day.WindSpeed, 1e-4) {
		windMS = day.WindSpeed
	} else if r.ImputeMethod == weather.PassThrough {
		usedDefault = true
	}
	cloudFrac := 0.0
	if cloud != weather.Missing {
		cloudFrac = cloud
	}
	pet := radiation.Penman(trans.Hgt, day.Tavg, r.Site.ElevationM, albedo, rhPct, windMS, cloudFrac)

	if usedDefault {
		r.Ctx.AuditCounters[AuditObservedWeatherOnly]++
	}

	forcing := DailyForcing{
		DOY:            doy,
		Tmax:           day.Tmax,
		Tmin:           day.Tmin,
		Tavg:           day.Tavg,
		PPT:            day.PPT,
		TiltedGlobalMJ: trans.Hgt,
		PET:            pet.PET,
	}

	result = RunDailyFlow(r.Ctx, r.Site, r.Veg, &r.Snow, forcing)
	AuditDay(r.Ctx, r.Site, forcing, result)

	r.pushOutputs(doy, forcing, result)
	EndOfDay(r.Site)
	r.doy = doy
	return result
}

// weightedAlbedo returns the cover-weighted albedo across vegetation
// and bare ground, used as the single scalar albedo the radiation
// transposition step expects.
func (r *Run) weightedAlbedo() float64 {
	a := 0.0
	for v := Veg(0); v < NumVeg; v++ {
		a += r.Veg.Veg[v].Cover * r.Veg.Veg[v].Albedo
	}
	return a
}

func toSunMissing(x float64) float64 {
	if x == weather.Missing {
		return radiation.SunMissing
	}
	return x
}

// pushOutputs feeds one day's scalar and per-layer values into every
// configured aggregator.
func (r *Run) pushOutputs(doy int, forcing DailyForcing, res DailyFlowResult) {
	scalars := map[string]float64{
		"PPT":          forcing.PPT,
		"Rain":         res.Rain,
		"Snowfall":     res.Snowfall,
		"Snowmelt":     res.Snowmelt,
		"SnowLoss":     res.SnowLoss,
		"Runoff":       res.Runoff,
		"Runon":        res.Runon,
		"DeepDrainage": res.DeepDrainage,
		"PET":          forcing.PET,
		"BareSoilEvap": res.BareSoilEvap,
		"Tavg":         forcing.Tavg,
	}
	for v := Veg(0); v < NumVeg; v++ {
		scalars["Transp_"+v.String()] = res.Transpiration[v]
	}

	layers := map[string][]float64{}
	swc := make([]float64, len(r.Site.Layers))
	for i, l := range r.Site.Layers {
		swc[i] = l.SWCToday
	}
	layers["SWC"] = swc
	if res.HydRedist != nil {
		layers["HydRedist"] = res.HydRedist
	}

	for _, agg := range []*output.Aggregator{r.Day, r.Week, r.Month, r.Year} {
		if agg != nil {
			agg.PushDay(r.year, doy, scalars, layers)
		}
	}
}
