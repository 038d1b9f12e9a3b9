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

package swrc

import "math"

// campbellForward returns psi in bar for matric theta under Campbell
// 1974. Returning 0 when theta exceeds theta_s hides a legacy
// discontinuity that appears when PTF-derived theta_s differs slightly
// from the stored swrcp[1]; this branch is preserved deliberately, not a
// bug, per the source's documented behavior.
func campbellForward(theta float64, p Params) (float64, error) {
	psiS, thetaS, b := p.P[0], p.P[1], p.P[2]
	if theta > thetaS {
		return 0, nil
	}
	psiCM := psiS / math.Pow(theta/thetaS, b)
	return psiCM * campbellCmToBar, nil
}

// campbellInverse returns matric theta for psi in bar under Campbell 1974.
func campbellInverse(psiBar float64, p Params) (float64, error) {
	psiS, thetaS, b := p.P[0], p.P[1], p.P[2]
	psiCM := psiBar / campbellCmToBar
	if psiCM < psiS {
		return thetaS, nil
	}
	return thetaS * math.Pow(psiS/psiCM, 1/b), nil
}
