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

	"github.com/DrylandEcology/soilwat/ptf"
	"github.com/DrylandEcology/soilwat/swrc"
)

// MaxSTRGR bounds the number of soil-temperature regression nodes; a
// profile whose stMaxDepth/stDeltaX combination would reach or exceed
// it is rejected and reset to defaults, per spec.md §4.5 step 7.
const MaxSTRGR = 45

// SnowParams holds the snow accumulation, melt, and sublimation
// parameters for a site (spec.md §6 "Site").
type SnowParams struct {
	UseSnow  bool    // spec.md §6 Weather setup "snow_flag"; false routes all PPT to rain
	TminAccu float64 // deg C: PPT below this temp accumulates as snow
	TmaxCrit float64 // deg C: smoothed snow temp above this triggers melt
	Lambda   float64 // smoothing weight on snow temperature
	RmeltMin float64 // cm/day/deg C, minimum melt rate
	RmeltMax float64 // cm/day/deg C, maximum melt rate
}

// DefaultSnowParams returns the commonly used SOILWAT defaults.
func DefaultSnowParams() SnowParams {
	return SnowParams{UseSnow: true, TminAccu: -2, TmaxCrit: 1, Lambda: 0.94, RmeltMin: 0.4, RmeltMax: 1.9}
}

// SoilTempParams holds the soil temperature profile parameters.
type SoilTempParams struct {
	BmLimiter  float64
	T1Param    [3]float64
	CsParam    [2]float64
	ShParam    float64
	TsoilConst float64
	DeltaX     float64 // cm
	MaxDepth   float64 // cm
	UseSoilTemp bool
}

// DefaultSoilTempParams returns the fallback profile (deltaX=15,
// maxDepth=180) used when a configured profile violates MaxSTRGR.
func DefaultSoilTempParams() SoilTempParams {
	return SoilTempParams{DeltaX: 15, MaxDepth: 180}
}

// nRGR returns the number of soil-temperature regression nodes implied
// by p, per spec.md §4.5 step 7: stMaxDepth/stDeltaX - 1.
func (p SoilTempParams) nRGR() int {
	if p.DeltaX <= 0 {
		return math.MaxInt32
	}
	return int(p.MaxDepth/p.DeltaX) - 1
}

// TranspRegionBounds gives, for one vegetation type, the layer index
// (0-based) of the first layer in each transpiration region, in
// increasing order. Up to MaxTranspRegions entries.
type TranspRegionBounds []int

// Site is the full description of one simulated point: its soil layers,
// derived evaporation/transpiration layer counts, snow and soil
// temperature parameters, and location.
type Site struct {
	Layers []*Layer

	NumEvapLayers   int
	NumTranspLayers [NumVeg]int
	TranspRegions   [NumVeg]TranspRegionBounds

	HasDeepDrainage bool
	DeepDrainIndex  int // index into Layers, -1 if absent

	Snow     SnowParams
	SoilTemp SoilTempParams

	LatitudeRad  float64
	LongitudeDeg float64
	ElevationM   float64
	SlopeRad     float64
	AspectRad    float64 // Missing() sentinel => treated as flat
}

// LayerInput is the raw per-layer soil table row the external reader
// produces (spec.md §6 "Layers").
type LayerInput struct {
	Width         float64
	BulkDensity   float64 // Missing() if matric density is supplied instead
	MatricDensity float64 // Missing() if bulk density is supplied instead
	Gravel        float64
	Sand          float64
	Clay          float64
	Impermeable   float64
	EvapCoeff     float64
	TranspCoeff   [NumVeg]float64
	SoilTempInit  float64
	SWRC          *swrc.Params // nil => estimate via PTF
}

// SiteConfig carries the inputs InitSite needs beyond the per-layer
// table: the PTF selection, the SWRC family, critical-SWP per
// vegetation, and the user's choice of swc_min/swc_init/swc_wet.
type SiteConfig struct {
	Family swrc.Family
	PTF    swrc.PTF

	// SWCMinVal follows the same convention as SWCInitVal/SWCWetVal:
	// >=1 means a fixed SWP in bar; <0 means "estimate via theta_min";
	// otherwise a fixed VWC.
	SWCMinVal  float64
	SWCInitVal float64
	SWCWetVal  float64
	LegacyMode bool // max(theta_min, Rawls-Brakensiek residual) when true

	CriticalSWPBar [NumVeg]float64
	RegionLowerDepths [NumVeg][]float64 // cm, ascending

	DeepDrainage bool

	Snow     SnowParams
	SoilTemp SoilTempParams

	LatitudeDeg  float64
	LongitudeDeg float64
	ElevationM   float64
	SlopeDeg     float64
	AspectDeg    float64 // Missing() => flat
}

// InitSite runs the full site-initialization procedure of spec.md §4.6
// against raw layer inputs and a SiteConfig, producing a ready-to-
// simulate Site. Failures set ctx.StopRun; non-fatal deviations are
// recorded as warnings.
func InitSite(ctx *RunContext, inputs []LayerInput, cfg SiteConfig) *Site {
	if ctx.StopRun {
		return nil
	}
	if !swrc.Compatible(cfg.Family, cfg.PTF) {
		ctx.Fail(swrc.CompatibilityError(cfg.Family, cfg.PTF))
		return nil
	}

	site := &Site{
		DeepDrainIndex: -1,
		Snow:           cfg.Snow,
		LatitudeRad:    cfg.LatitudeDeg * math.Pi / 180,
		LongitudeDeg:   cfg.LongitudeDeg,
		ElevationM:     cfg.ElevationM,
		SlopeRad:       cfg.SlopeDeg * math.Pi / 180,
	}
	if Missing(cfg.AspectDeg) {
		site.AspectRad = SWMissing
	} else {
		site.AspectRad = cfg.AspectDeg * math.Pi / 180
	}

	site.SoilTemp = cfg.SoilTemp
	if site.SoilTemp.DeltaX <= 0 {
		site.SoilTemp.DeltaX = DefaultSoilTempParams().DeltaX
		site.SoilTemp.MaxDepth = DefaultSoilTempParams().MaxDepth
	}
	if site.SoilTemp.nRGR() >= MaxSTRGR {
		ctx.Warn(nil, "soil temperature profile (deltaX=%g, maxDepth=%g) exceeds %d regression nodes; reset to defaults",
			site.SoilTemp.DeltaX, site.SoilTemp.MaxDepth, MaxSTRGR)
		site.SoilTemp = DefaultSoilTempParams()
	}

	// Step 1-3: validate, derive density, estimate or validate SWRC.
	site.Layers = make([]*Layer, 0, len(inputs))
	for i, in := range inputs {
		layer, err := buildLayer(cfg, in)
		if err != nil {
			ctx.Fail(Errorf(InvalidInput, "layer %d: %v", i, err))
			return nil
		}
		if err := layer.validate(); err != nil {
			ctx.Fail(err)
			return nil
		}
		site.Layers = append(site.Layers, layer)
	}

	// Step 4: pore-water thresholds.
	for i, layer := range site.Layers {
		if err := computeThresholds(layer, cfg); err != nil {
			ctx.Fail(Errorf(InvalidInput, "layer %d: %v", i, err))
			return nil
		}
	}
	lowerCriticalSWP(ctx, site, cfg)

	// Step 5: normalize coefficients.
	normalizeEvapCoeffs(ctx, site)
	normalizeTranspCoeffs(ctx, site)

	// Step 6: deep drainage sink layer.
	if cfg.DeepDrainage {
		appendDeepDrainLayer(site)
	}

	// Step 7: transpiration regions.
	for v := Veg(0); v < NumVeg; v++ {
		site.TranspRegions[v] = deriveTranspRegions(site, v, cfg.RegionLowerDepths[v])
	}

	// Evaporation/transpiration layer counts: prefix with positive
	// coefficient, terminated at the first zero.
	site.NumEvapLayers = countPositivePrefix(site.Layers, func(l *Layer) float64 { return l.EvapCoeff })
	for v := Veg(0); v < NumVeg; v++ {
		site.NumTranspLayers[v] = countPositivePrefix(site.Layers, func(l *Layer) float64 { return l.TranspCoeff[v] })
	}

	return site
}

func countPositivePrefix(layers []*Layer, coeff func(*Layer) float64) int {
	n := 0
	for _, l := range layers {
		if coeff(l) <= 0 {
			break
		}
		n++
	}
	return n
}

func buildLayer(cfg SiteConfig, in LayerInput) (*Layer, error) {
	l := &Layer{
		Width:        in.Width,
		Gravel:       in.Gravel,
		Sand:         in.Sand,
		Clay:         in.Clay,
		Impermeable:  in.Impermeable,
		EvapCoeff:    in.EvapCoeff,
		TranspCoeff:  in.TranspCoeff,
		SoilTempInit: in.SoilTempInit,
	}

	// Step 2: derive missing bulk/matric density from the other.
	switch {
	case Missing(in.BulkDensity) && Missing(in.MatricDensity):
		return nil, Errorf(InvalidInput, "layer needs at least one of bulk or matric density")
	case Missing(in.BulkDensity):
		l.MatricDensity = in.MatricDensity
		l.BulkDensity = l.MatricDensity*(1-l.Gravel) + 2.65*l.Gravel
	case Missing(in.MatricDensity):
		l.BulkDensity = in.BulkDensity
		if l.Gravel < 1 {
			l.MatricDensity = (l.BulkDensity - 2.65*l.Gravel) / (1 - l.Gravel)
		}
	default:
		l.BulkDensity = in.BulkDensity
		l.MatricDensity = in.MatricDensity
	}

	// Step 3: SWRC parameters, given or PTF-estimated.
	if in.SWRC != nil {
		l.SWRC = *in.SWRC
	} else {
		switch cfg.PTF {
		case swrc.Cosby1984AndCampbell:
			p, err := ptf.Cosby1984ForCampbell(l.Sand, l.Clay)
			if err != nil {
				return nil, err
			}
			l.SWRC = p
		default:
			return nil, Errorf(InvalidInput, "no SWRC parameters given and PTF %s cannot estimate them", cfg.PTF)
		}
	}
	if l.SWRC.Family != cfg.Family {
		return nil, Errorf(Incompatibility, "layer SWRC family %s does not match site family %s", l.SWRC.Family, cfg.Family)
	}
	if err := swrc.Check(l.SWRC); err != nil {
		return nil, err
	}
	return l, nil
}

// computeThresholds populates a layer's cached pore-water thresholds
// from its SWRC parameters, per spec.md §4.6 step 4.
func computeThresholds(l *Layer, cfg SiteConfig) error {
	l.SWCSat = (1 - l.Gravel) * l.Width * l.SWRC.ThetaS()

	thetaMin, err := thetaMinTheoretical(l, cfg)
	if err != nil {
		return err
	}
	swcMinTheoretical := (1 - l.Gravel) * l.Width * thetaMin

	var err2 error
	switch {
	case cfg.SWCMinVal >= 1:
		l.SWCMin, err2 = l.SWCcm(cfg.SWCMinVal)
	case cfg.SWCMinVal < 0:
		l.SWCMin = swcMinTheoretical
	default:
		l.SWCMin = cfg.SWCMinVal * (1 - l.Gravel) * l.Width
	}
	if err2 != nil {
		return err2
	}
	if l.SWCMin <= swcMinTheoretical {
		l.SWCMin = swcMinTheoretical + DDelta
	}

	fc, err := l.SWCcm(0.333)
	if err != nil {
		return err
	}
	l.SWCFC = fc

	wp, err := l.SWCcm(15)
	if err != nil {
		return err
	}
	l.SWCWP = wp

	atHundred, err := l.SWCcm(100)
	if err != nil {
		return err
	}
	l.SWCHalfWP = math.Max(0.5*l.SWCWP, atHundred)

	switch {
	case cfg.SWCInitVal >= 1:
		l.SWCInit, err = l.SWCcm(cfg.SWCInitVal)
	case cfg.SWCInitVal < 0:
		l.SWCInit = l.SWCFC
	default:
		l.SWCInit = cfg.SWCInitVal * (1 - l.Gravel) * l.Width
	}
	if err != nil {
		return err
	}

	switch {
	case cfg.SWCWetVal >= 1:
		l.SWCWet, err = l.SWCcm(cfg.SWCWetVal)
	case cfg.SWCWetVal < 0:
		l.SWCWet = l.SWCFC
	default:
		l.SWCWet = cfg.SWCWetVal * (1 - l.Gravel) * l.Width
	}
	if err != nil {
		return err
	}

	l.SWCToday = l.SWCInit
	l.SWCYesterday = l.SWCInit

	for v := Veg(0); v < NumVeg; v++ {
		swcAtCrit, err := l.SWCcm(cfg.CriticalSWPBar[v])
		if err != nil {
			return err
		}
		l.SWCAtCrit[v] = swcAtCrit
	}
	return nil
}

// thetaMinTheoretical computes the family-specific theoretical floor on
// theta, optionally taking the max against the Rawls-Brakensiek 1985
// residual estimate in legacy mode, grounded on SW_Site.c's
// lower_limit_of_theta_min/ui_theta_min pair.
func thetaMinTheoretical(l *Layer, cfg SiteConfig) (float64, error) {
	theta, err := swrc.InverseSWCcm(300, 1, 0, l.SWRC) // psi=300 bar, unit width & no gravel => theta directly
	if err != nil {
		return 0, err
	}
	theta = math.Max(theta, l.SWRC.ThetaR())

	if cfg.LegacyMode {
		porosity := l.SWRC.ThetaS()
		rb, err := ptf.RawlsBrakensiek1985ResidualTheta(l.Sand, l.Clay, porosity)
		if err == nil {
			theta = math.Max(theta, rb)
		}
	}
	return theta, nil
}

// lowerCriticalSWP implements spec.md §4.6 step 4's second half: if
// swc_at_SWPcrit falls below swc_min for any (layer, veg), lower that
// veg's critical SWP to SWP(swc_min), emit a warning, and recompute
// that veg's swc_at_SWPcrit in every layer at the lowered value. The
// lowered critical SWPs are not stored on the Site, and no ranking of
// them is computed here; RankedVeg ranks whatever values its caller
// passes.
func lowerCriticalSWP(ctx *RunContext, site *Site, cfg SiteConfig) {
	lowered := cfg.CriticalSWPBar
	for v := Veg(0); v < NumVeg; v++ {
		for _, l := range site.Layers {
			if l.SWCAtCrit[v] < l.SWCMin {
				swp, err := l.SWPBar(l.SWCMin)
				if err != nil {
					continue
				}
				if swp < lowered[v] {
					lowered[v] = swp
					ctx.Warn(nil, "critical SWP for %s lowered to %.4g bar (swc_at_SWPcrit below swc_min)", v, swp)
				}
			}
		}
	}
	for v := Veg(0); v < NumVeg; v++ {
		if lowered[v] == cfg.CriticalSWPBar[v] {
			continue
		}
		for _, l := range site.Layers {
			swcAtCrit, err := l.SWCcm(lowered[v])
			if err == nil {
				l.SWCAtCrit[v] = swcAtCrit
			}
		}
	}
}

// RankedVeg returns the four vegetation types in descending order of
// critical SWP, ties broken by index, per spec.md §4.7 "Critical-SWP
// ranking". critSWP is indexed by Veg.
func RankedVeg(critSWP [NumVeg]float64) [NumVeg]Veg {
	order := [NumVeg]Veg{0, 1, 2, 3}
	for i := 1; i < int(NumVeg); i++ {
		for j := i; j > 0 && critSWP[order[j-1]] < critSWP[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	return order
}

func normalizeEvapCoeffs(ctx *RunContext, site *Site) {
	sum := 0.0
	for i := 0; i < site.layersUntilZero(func(l *Layer) float64 { return l.EvapCoeff }); i++ {
		sum += site.Layers[i].EvapCoeff
	}
	if sum <= 0 {
		return
	}
	if math.Abs(sum-1) > DDelta {
		ctx.Warn(nil, "bare-soil evaporation coefficients summed to %.6g, renormalized to 1", sum)
	}
	for i := 0; i < site.layersUntilZero(func(l *Layer) float64 { return l.EvapCoeff }); i++ {
		site.Layers[i].EvapCoeff /= sum
	}
}

func normalizeTranspCoeffs(ctx *RunContext, site *Site) {
	for v := Veg(0); v < NumVeg; v++ {
		n := site.layersUntilZero(func(l *Layer) float64 { return l.TranspCoeff[v] })
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += site.Layers[i].TranspCoeff[v]
		}
		if sum <= 0 {
			continue
		}
		if math.Abs(sum-1) > DDelta {
			ctx.Warn(nil, "%s transpiration coefficients summed to %.6g, renormalized to 1", v, sum)
		}
		for i := 0; i < n; i++ {
			site.Layers[i].TranspCoeff[v] /= sum
		}
	}
}

func (site *Site) layersUntilZero(coeff func(*Layer) float64) int {
	return countPositivePrefix(site.Layers, coeff)
}

// appendDeepDrainLayer appends a zero-width sink layer to the tail of
// the layer sequence and records its index, per spec.md §4.6 step 6.
func appendDeepDrainLayer(site *Site) {
	sink := &Layer{Width: 0, Gravel: 0, SWRC: site.Layers[len(site.Layers)-1].SWRC}
	site.Layers = append(site.Layers, sink)
	site.DeepDrainIndex = len(site.Layers) - 1
	site.HasDeepDrainage = true
}

// deriveTranspRegions scans cumulative layer depths against
// lowerDepths (ascending, up to MaxTranspRegions entries) and assigns
// every layer in range to a region, collapsing duplicate boundaries
// and recording each region's first-layer index. Per spec.md §4.6
// step 7.
func deriveTranspRegions(site *Site, v Veg, lowerDepths []float64) TranspRegionBounds {
	if len(lowerDepths) == 0 {
		return nil
	}
	bounds := make(TranspRegionBounds, 0, MaxTranspRegions)

	depth := 0.0
	regionIdx := 0
	boundIdx := 0
	for i, l := range site.Layers {
		if l.Width == 0 {
			continue // deep-drainage sink layer has no transpiration region
		}
		depth += l.Width
		for boundIdx < len(lowerDepths) && depth > lowerDepths[boundIdx]+DDelta {
			boundIdx++
			regionIdx++
		}
		if len(bounds) == regionIdx {
			bounds = append(bounds, i)
		}
		if regionIdx >= MaxTranspRegions {
			break
		}
		site.Layers[i].TranspRegion[v] = regionIdx
	}

	// Collapse any regions that ended up with identical lower bounds
	// (can happen when two boundaries fall within the same layer).
	collapsed := bounds[:0:0]
	for i, b := range bounds {
		if i == 0 || b != bounds[i-1] {
			collapsed = append(collapsed, b)
		}
	}
	return collapsed
}
