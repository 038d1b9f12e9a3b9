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
	"math"
	"testing"

	"github.com/DrylandEcology/soilwat/swrc"
	"github.com/DrylandEcology/soilwat/weather"
)

// testSiteConfig returns a minimal two-layer Campbell/Cosby site used
// across this file's tests.
func testSiteConfig() ([]LayerInput, SiteConfig) {
	inputs := []LayerInput{
		{
			Width: 20, BulkDensity: 1.4, MatricDensity: SWMissing, Gravel: 0, Sand: 0.4, Clay: 0.2,
			EvapCoeff: 0.6, TranspCoeff: [NumVeg]float64{0.25, 0.25, 0.25, 0.25},
		},
		{
			Width: 30, BulkDensity: 1.4, MatricDensity: SWMissing, Gravel: 0, Sand: 0.3, Clay: 0.3,
			EvapCoeff: 0.4, TranspCoeff: [NumVeg]float64{0.25, 0.25, 0.25, 0.25},
		},
	}
	cfg := SiteConfig{
		Family:     swrc.Campbell1974,
		PTF:        swrc.Cosby1984AndCampbell,
		SWCMinVal:  -1, // estimate theta_min
		SWCInitVal: -1, // swc_fc
		SWCWetVal:  -1,
		CriticalSWPBar:    [NumVeg]float64{30, 25, 20, 15},
		RegionLowerDepths: [NumVeg][]float64{{50}, {50}, {50}, {50}},
		Snow:     DefaultSnowParams(),
		SoilTemp: DefaultSoilTempParams(),
		LatitudeDeg: 43, ElevationM: 270, AspectDeg: SWMissing,
	}
	return inputs, cfg
}

func TestInitSiteInvariants(t *testing.T) {
	inputs, cfg := testSiteConfig()
	ctx := NewRunContext()
	site := InitSite(ctx, inputs, cfg)
	if ctx.StopRun {
		t.Fatalf("InitSite failed: %s", ctx.ErrorMessage)
	}
	if len(site.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(site.Layers))
	}
	for i, l := range site.Layers {
		if !(l.SWCMin < l.SWCHalfWP+DDelta && l.SWCHalfWP <= l.SWCWP+DDelta && l.SWCWP <= l.SWCFC+DDelta && l.SWCFC <= l.SWCSat+DDelta) {
			t.Errorf("layer %d pore-water ordering violated: min=%g halfwp=%g wp=%g fc=%g sat=%g",
				i, l.SWCMin, l.SWCHalfWP, l.SWCWP, l.SWCFC, l.SWCSat)
		}
		if l.SWCToday <= l.SWCMin || l.SWCToday > l.SWCSat+DDelta {
			t.Errorf("layer %d initial SWC %g outside (swc_min, swc_sat]", i, l.SWCToday)
		}
	}

	sum := 0.0
	for i := 0; i < site.NumEvapLayers; i++ {
		sum += site.Layers[i].EvapCoeff
	}
	if math.Abs(sum-1) > DDelta {
		t.Errorf("evaporation coefficients sum to %g, want 1", sum)
	}
	for v := Veg(0); v < NumVeg; v++ {
		sum := 0.0
		for i := 0; i < site.NumTranspLayers[v]; i++ {
			sum += site.Layers[i].TranspCoeff[v]
		}
		if math.Abs(sum-1) > DDelta {
			t.Errorf("%s transpiration coefficients sum to %g, want 1", v, sum)
		}
	}
}

func TestInitSiteRejectsIncompatiblePTF(t *testing.T) {
	inputs, cfg := testSiteConfig()
	cfg.Family = swrc.VanGenuchten1980
	ctx := NewRunContext()
	InitSite(ctx, inputs, cfg)
	if !ctx.StopRun {
		t.Fatal("expected InitSite to fail for VanGenuchten1980 + Cosby1984AndCampbell")
	}
}

func testVegComposition() VegComposition {
	vc := VegComposition{}
	vc.Veg[VegGrasses].Cover = 0.5
	vc.Veg[VegShrubs].Cover = 0.3
	vc.BareCover = 0.2
	for v := Veg(0); v < NumVeg; v++ {
		vc.Veg[v].Albedo = 0.2
		vc.Veg[v].MaxCondRoot = 0
	}
	return vc
}

func TestVegCompositionNormalize(t *testing.T) {
	vc := VegComposition{}
	vc.Veg[VegGrasses].Cover = 0.6
	vc.Veg[VegShrubs].Cover = 0.6 // deliberately oversums
	ctx := NewRunContext()
	vc.Normalize(ctx)

	sum := vc.BareCover
	for v := Veg(0); v < NumVeg; v++ {
		sum += vc.Veg[v].Cover
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("normalized cover sums to %g, want 1", sum)
	}
	if warnings, _ := ctx.Warnings(); len(warnings) == 0 {
		t.Error("expected a warning for cover summing away from 1")
	}
}

func TestRankedVegDescending(t *testing.T) {
	order := RankedVeg([NumVeg]float64{10, 40, 40, 5})
	if order[0] != VegShrubs && order[0] != VegForbs {
		t.Errorf("expected the highest critical SWP (tie) first, got %v", order)
	}
	if order[0] != VegShrubs {
		t.Errorf("ties must break by ascending index, want shrubs first, got %v", order[0])
	}
	if order[3] != VegGrasses {
		t.Errorf("lowest critical SWP should be last, got %v", order)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7, 1)
	b := NewRNG(7, 1)
	for i := 0; i < 10; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d diverged: %g != %g", i, x, y)
		}
	}

	c := NewRNG(1, 1)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() == c.Float64() {
			continue
		}
		same = false
	}
	_ = same // distinct seeds need not differ on every draw; construction alone is the contract under test.
}

// buildTestRun wires a Run around the two-layer site and a constant
// three-day weather record with 40% cloud cover, exercising the full per-day
// pipeline spec.md §2 describes.
func buildTestRun(t *testing.T) *Run {
	t.Helper()
	inputs, cfg := testSiteConfig()
	ctx := NewRunContext()
	site := InitSite(ctx, inputs, cfg)
	if ctx.StopRun {
		t.Fatalf("InitSite failed: %s", ctx.ErrorMessage)
	}
	veg := testVegComposition()
	veg.Normalize(ctx)

	run := NewRun(ctx, site, &veg)
	run.ImputeMethod = weather.PassThrough
	run.Selection = weather.Selection{}

	days := make([]weather.Day, 3)
	for i := range days {
		days[i] = weather.Day{
			DOY: i + 1, Tmax: 22, Tmin: 8, PPT: 0.5,
			Cloud: 40, WindSpeed: 2, RH: 55, ShortwaveMJ: weather.Missing, ActualVP: weather.Missing,
		}
		days[i].DeriveTavg()
	}
	run.Weather = weather.Record{Years: []weather.Year{{Year: 2020, Days: days}}}
	return run
}

func TestSimulateDayProducesBoundedState(t *testing.T) {
	run := buildTestRun(t)
	run.PrepareYear(0)
	if run.Ctx.StopRun {
		t.Fatalf("PrepareYear failed: %s", run.Ctx.ErrorMessage)
	}
	run.NewYear(2020, 0, false)

	for doy := 1; doy <= 3; doy++ {
		run.SimulateDay(doy)
		if run.Ctx.StopRun {
			t.Fatalf("SimulateDay(%d) failed: %s", doy, run.Ctx.ErrorMessage)
		}
	}

	for i, l := range run.Site.Layers {
		if l.SWCToday < l.SWCMin-1e-6 || l.SWCToday > l.SWCSat+1e-6 {
			t.Errorf("layer %d SWC %g outside [swc_min, swc_sat] = [%g, %g]", i, l.SWCToday, l.SWCMin, l.SWCSat)
		}
	}

	for name, counter := range map[AuditCheck]string{
		AuditAETlePET:            "AET<=PET",
		AuditAETeqESplusT:        "AET=E+T",
		AuditEtotBalance:         "Etot balance",
		AuditInfiltrationBalance: "infiltration balance",
		AuditTranspirationBalance: "transpiration balance",
		AuditLayerWaterBalance:   "layer water balance",
		AuditSWCBounds:           "SWC bounds",
	} {
		if got := run.Ctx.AuditCounters[name]; got != 0 {
			t.Errorf("%s: audit counter nonzero after 3 days: %d", counter, got)
		}
	}
}

func TestSimulateDayRejectsOutOfRangeDOY(t *testing.T) {
	run := buildTestRun(t)
	run.PrepareYear(0)
	run.NewYear(2020, 0, false)
	run.SimulateDay(0)
	if !run.Ctx.StopRun {
		t.Fatal("expected SimulateDay(0) to fail (DOY must be >= 1)")
	}
}
