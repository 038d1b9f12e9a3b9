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

// Package ptf implements pedotransfer functions: texture-to-parameter
// estimators feeding the soil water retention curve families in
// package swrc.
package ptf

import (
	"fmt"
	"math"

	"github.com/DrylandEcology/soilwat/swrc"
)

// Cosby1984ForCampbell derives Campbell 1974 SWRC parameters from sand
// and clay mass fractions, per Cosby et al. 1984. Gravel and bulk
// density do not enter these formulas and are not parameters.
func Cosby1984ForCampbell(sand, clay float64) (swrc.Params, error) {
	if sand <= 0 || sand >= 1 || clay <= 0 || clay >= 1 || sand+clay >= 1 {
		return swrc.Params{}, fmt.Errorf("ptf: sand (%g) and clay (%g) must be in (0,1) and sum to < 1", sand, clay)
	}

	psiS := math.Pow(10, -1.58*sand-0.63*clay+2.17)
	thetaS := -0.142*sand - 0.037*clay + 0.505
	b := -0.3*sand + 15.7*clay + 3.10
	ks := 2.54 * 24 * math.Pow(10, 1.26*sand-6.4*clay-0.60)

	p := swrc.Params{Family: swrc.Campbell1974, P: [6]float64{psiS, thetaS, b, ks}}
	if err := swrc.Check(p); err != nil {
		return swrc.Params{}, fmt.Errorf("ptf: Cosby1984 produced invalid Campbell parameters: %w", err)
	}
	return p, nil
}

// RawlsBrakensiek1985ResidualTheta estimates residual water content from
// sand, clay, and porosity, used as the "legacy" floor on swc_min per
// spec.md §4.1.
func RawlsBrakensiek1985ResidualTheta(sand, clay, porosity float64) (float64, error) {
	if sand <= 0 || sand >= 1 || clay <= 0 || clay >= 1 {
		return 0, fmt.Errorf("ptf: sand (%g) and clay (%g) must be in (0,1)", sand, clay)
	}
	sandPct, clayPct := sand*100, clay*100

	thetaR := -0.0182482 + 0.00087269*sandPct - 0.0002920*clayPct +
		0.0003080*porosity*100 - 0.0000281*clayPct*clayPct -
		0.0000589*porosity*100*porosity*100 + 0.0000001948*clayPct*clayPct*porosity*100 +
		0.0000114*clayPct*porosity*100

	if thetaR < 0 {
		thetaR = 0
	}
	return thetaR, nil
}

// Saxton2006SaturatedTheta estimates saturated water content from sand
// and clay mass fractions, used in place of the SWRC parameter vector's
// theta_s when the Campbell family's Saxton2006 compatibility flag is
// set.
func Saxton2006SaturatedTheta(sand, clay float64) (float64, error) {
	if sand <= 0 || sand >= 1 || clay <= 0 || clay >= 1 {
		return 0, fmt.Errorf("ptf: sand (%g) and clay (%g) must be in (0,1)", sand, clay)
	}
	sandPct, clayPct := sand*100, clay*100

	thetaS33t := 0.299 - 0.00251*sandPct + 0.00152*clayPct +
		0.0002904*clayPct*clayPct - 0.00015*sandPct*sandPct
	thetaS33 := thetaS33t + 1.283*thetaS33t*thetaS33t - 0.374*thetaS33t - 0.015

	thetaSt := 0.032 + 0.00346*clayPct - 0.00188*sandPct -
		0.0002904*clayPct*clayPct
	thetaS := 1 - (1-thetaS33) - thetaSt

	return math.Max(0, math.Min(1, thetaS)), nil
}
