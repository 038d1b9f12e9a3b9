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

	"gonum.org/v1/gonum/floats"
)

// VegType holds the monthly and structural parameters for one of the
// four vegetation types tracked by the engine (spec.md §3 "Vegetation
// composition").
type VegType struct {
	Cover  float64
	Albedo float64

	MonthlyBiomass  [12]float64
	MonthlyLitter   [12]float64
	MonthlyPctLive  [12]float64
	MonthlyLAIConv  [12]float64

	CanopyTangent  [4]float64 // xinflec, yinflec, range, slope
	ShadeParams    [3]float64

	MaxCondRoot float64 // hydraulic redistribution: max root conductance
	Psi50       float64 // hydraulic redistribution: potential at 50% conductance
	ShapeParam  float64 // hydraulic redistribution: logistic shape

	CriticalSWPBar float64

	CO2BiomassCoeff [2]float64
	CO2WUECoeff     [2]float64
}

// VegComposition is the per-site vegetation state: the four vegetation
// types plus bare ground, with the cover-sums-to-one invariant.
type VegComposition struct {
	Veg       [NumVeg]VegType
	BareCover float64
}

// Normalize rescales Veg[*].Cover and BareCover to sum to 1, within
// DDelta tolerance, warning if the input disagreed by more than that.
// Grounded on spec.md §3's cover invariant and on the rescale-to-sum
// discipline shared with the Paruelo-Lauenroth estimator (vegetation
// package).
func (vc *VegComposition) Normalize(ctx *RunContext) {
	covers := make([]float64, 0, NumVeg+1)
	for v := Veg(0); v < NumVeg; v++ {
		covers = append(covers, vc.Veg[v].Cover)
	}
	covers = append(covers, vc.BareCover)

	sum := floats.Sum(covers)
	if sum <= 0 {
		vc.BareCover = 1
		for v := Veg(0); v < NumVeg; v++ {
			vc.Veg[v].Cover = 0
		}
		return
	}
	if math.Abs(sum-1) > DDelta {
		ctx.Warn(nil, "vegetation cover summed to %.6g, renormalized to 1", sum)
	}
	floats.Scale(1/sum, covers)
	for v := Veg(0); v < NumVeg; v++ {
		vc.Veg[v].Cover = covers[v]
	}
	vc.BareCover = covers[NumVeg]
}

// CO2Multiplier computes the CO2-effect scaling factor a vegetation
// type's biomass or water-use-efficiency should receive at the given
// atmospheric CO2 concentration relative to a baseline, per the
// "Supplemented features" section of the CO2-effects scenario support
// the original engine carries alongside its core water balance. The
// coefficients follow a saturating Michaelis-Menten-style response:
// multiplier = 1 + coeff[0]*(ppm-ppmBase)/(coeff[1]+(ppm-ppmBase)).
func (vt VegType) CO2Multiplier(coeff [2]float64, ppm, ppmBase float64) float64 {
	delta := ppm - ppmBase
	if coeff[1]+delta == 0 {
		return 1
	}
	return 1 + coeff[0]*delta/(coeff[1]+delta)
}
