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

import (
	"fmt"
	"math"
)

// vanGenuchtenForward returns psi in bar for matric theta in
// (theta_r, theta_s], per van Genuchten 1980.
func vanGenuchtenForward(theta float64, p Params) (float64, error) {
	thetaR, thetaS, alpha, n := p.P[0], p.P[1], p.P[2], p.P[3]
	if theta == thetaS {
		return 0, nil
	}
	if theta <= thetaR || theta > thetaS {
		return 0, fmt.Errorf("swrc: van Genuchten theta %g outside domain (%g,%g]", theta, thetaR, thetaS)
	}
	se := (thetaS - thetaR) / (theta - thetaR)
	psiCM := math.Pow(math.Pow(se, 1/(1-1/n))-1, 1/n) / alpha
	return psiCM * cmToBar, nil
}

// vanGenuchtenInverse returns matric theta for psi in bar, per van
// Genuchten 1980.
func vanGenuchtenInverse(psiBar float64, p Params) (float64, error) {
	thetaR, thetaS, alpha, n := p.P[0], p.P[1], p.P[2], p.P[3]
	psiCM := psiBar / cmToBar
	if psiCM <= 0 {
		return thetaS, nil
	}
	m := 1 - 1/n
	se := math.Pow(1+math.Pow(alpha*psiCM, n), -m)
	return thetaR + (thetaS-thetaR)*se, nil
}
