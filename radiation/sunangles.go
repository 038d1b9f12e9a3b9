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

// Package radiation implements solar geometry on tilted surfaces, the
// per-DOY memoization table the engine requires, extraterrestrial and
// all-sky irradiation, and Penman PET.
package radiation

import (
	"fmt"
	"math"
)

// SunMissing marks an hour-angle entry as "no second sunshine period
// today" in the 7-tuple Angles returns.
const SunMissing = 999.0

// Angles is the 7-tuple sun-hour-angle result for one DOY at fixed
// latitude/slope/aspect, per spec.md §3 "Memoized radiation state".
type Angles struct {
	Indicator int // 0: sun never sets, -2: sun never rises, 1: normal, 2: two-period

	OmegaS float64 // horizontal sunset hour angle, rad

	TiltedSunrise      float64
	TiltedSunsetFirst   float64 // SunMissing if no two-period day
	TiltedSunriseSecond float64 // SunMissing if no two-period day
	TiltedSunset        float64

	IntCosThetaHoriz, IntCosThetaTilt float64
	IntSinBetaHoriz, IntSinBetaTilt   float64
}

// Declination returns the solar declination (rad) for DOY (1..366),
// per Allen et al. 2006 eq. 24.
func Declination(doy int) float64 {
	return 0.409 * math.Sin(2*math.Pi*float64(doy)/365.0-1.39)
}

// SunHourAngles computes the full sun-hour-angle tuple for doy at the
// given latitude, slope, and aspect (radians). aspect == SunMissing
// means a horizontal surface.
func SunHourAngles(doy int, latRad, slopeRad, aspectRad float64) (Angles, error) {
	if doy < 1 || doy > 366 {
		return Angles{}, fmt.Errorf("radiation: doy %d out of range [1,366]", doy)
	}
	delta := Declination(doy)

	g := math.Sin(delta) * math.Sin(latRad)
	h := math.Cos(delta) * math.Cos(latRad)

	a := Angles{}

	x := clamp(-math.Tan(latRad)*math.Tan(delta), -1, 1)
	switch {
	case math.Tan(latRad)*math.Tan(delta) >= 1:
		a.Indicator = 0
		a.OmegaS = math.Pi
	case math.Tan(latRad)*math.Tan(delta) <= -1:
		a.Indicator = -2
		a.OmegaS = 0
	default:
		a.Indicator = 1
		a.OmegaS = math.Acos(x)
	}

	a.IntSinBetaHoriz = 2 * (g*a.OmegaS + h*math.Sin(a.OmegaS))
	a.IntCosThetaHoriz = 2 * (g*a.OmegaS + h*math.Sin(a.OmegaS))

	if slopeRad <= 0 || aspectRad == SunMissing {
		a.TiltedSunrise = -a.OmegaS
		a.TiltedSunset = a.OmegaS
		a.TiltedSunsetFirst = SunMissing
		a.TiltedSunriseSecond = SunMissing
		a.IntCosThetaTilt = a.IntCosThetaHoriz
		a.IntSinBetaTilt = a.IntSinBetaHoriz
		return a, nil
	}

	aa := math.Sin(delta)*math.Sin(latRad)*math.Cos(slopeRad) -
		math.Sin(delta)*math.Cos(latRad)*math.Sin(slopeRad)*math.Cos(aspectRad)
	bb := math.Cos(delta)*math.Cos(latRad)*math.Cos(slopeRad) +
		math.Cos(delta)*math.Sin(latRad)*math.Sin(slopeRad)*math.Cos(aspectRad)
	cc := math.Cos(delta) * math.Sin(slopeRad) * math.Sin(aspectRad)

	// Allen et al. 2006 Steps B/C: candidate sunrise/sunset hour
	// angles on the tilted surface from the quadratic in tan(omega/2).
	omegaSunsetTilt, twoPeriod, ok := tiltedSunset(aa, bb, cc, a.OmegaS)
	if !ok {
		a.TiltedSunrise = -a.OmegaS
		a.TiltedSunset = a.OmegaS
		a.TiltedSunsetFirst = SunMissing
		a.TiltedSunriseSecond = SunMissing
	} else if twoPeriod {
		a.Indicator = 2
		w1, w2 := omegaSunsetTilt, -omegaSunsetTilt
		a.TiltedSunrise = -a.OmegaS
		a.TiltedSunsetFirst = w2
		a.TiltedSunriseSecond = w1
		a.TiltedSunset = a.OmegaS
	} else {
		a.TiltedSunrise = math.Max(-a.OmegaS, -omegaSunsetTilt)
		a.TiltedSunset = math.Min(a.OmegaS, omegaSunsetTilt)
		a.TiltedSunsetFirst = SunMissing
		a.TiltedSunriseSecond = SunMissing
	}

	a.IntCosThetaTilt, a.IntSinBetaTilt = integrateTilted(a, aa, bb, cc, g, h)

	return a, nil
}

// tiltedSunset solves Allen eq. 11's quadratic for the tilted-surface
// hour angle magnitude and reports whether the day exhibits a
// two-period sunshine pattern (Allen eq. 7/50).
func tiltedSunset(aa, bb, cc, omegaS float64) (omega float64, twoPeriod bool, ok bool) {
	denom := aa*aa + bb*bb
	if denom <= 0 {
		return 0, false, false
	}
	disc := bb*bb - aa*aa + cc*cc
	if disc < 0 {
		return 0, false, false
	}
	num := bb*cc + math.Sqrt(disc)*math.Copysign(1, bb)
	ratio := clamp(num/denom, -1, 1)
	omega = math.Acos(ratio)
	if math.IsNaN(omega) {
		return 0, false, false
	}

	// Two-period test: evaluate the Allen eq. 50 cos(theta) integrand,
	// aa + bb*cos(w) + cc*sin(w), directly at solar noon and at both
	// ends of the horizontal sunshine window. The day is genuinely
	// two-period only when the surface is shaded at solar noon (w=0)
	// but lit at both omegaS and -omegaS -- the literal lit/dark/lit
	// signature -- rather than inferring it from the sign of aa and bb
	// alone, which also fires for a day whose lit window is merely
	// shifted off noon instead of split around it.
	cosTheta := func(w float64) float64 { return aa + bb*math.Cos(w) + cc*math.Sin(w) }
	twoPeriod = cosTheta(0) < 0 && cosTheta(omegaS) > 0 && cosTheta(-omegaS) > 0
	return omega, twoPeriod, true
}

// integrateTilted evaluates the closed-form f1..f5 integrals (Allen et
// al. 2006) of cos(theta) and sin(beta) over the sunshine interval(s)
// already determined on the Angles value.
func integrateTilted(a Angles, aa, bb, cc, g, h float64) (intCos, intSin float64) {
	periods := [][2]float64{{a.TiltedSunrise, a.TiltedSunset}}
	if a.Indicator == 2 {
		periods = [][2]float64{{a.TiltedSunrise, a.TiltedSunsetFirst}, {a.TiltedSunriseSecond, a.TiltedSunset}}
	}
	for _, p := range periods {
		w1, w2 := p[0], p[1]
		intCos += f1(aa, w1, w2) + f2(bb, w1, w2) + f3(cc, w1, w2)
		intSin += g*(w2-w1) + h*(math.Sin(w2)-math.Sin(w1))
	}
	return intCos, intSin
}

func f1(aa, w1, w2 float64) float64 { return aa * (w2 - w1) }
func f2(bb, w1, w2 float64) float64 { return bb * (math.Sin(w2) - math.Sin(w1)) }
func f3(cc, w1, w2 float64) float64 { return -cc * (math.Cos(w2) - math.Cos(w1)) }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
