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

package radiation

import "math"

// SolarConstant is G_sc, MJ/m2/day, per Allen et al. 2006.
const SolarConstant = 118.1088

// inverseRelativeDistanceSq returns d^-2, the squared inverse relative
// Earth-Sun distance, per Spencer 1971.
func inverseRelativeDistanceSq(doy int) float64 {
	angle := 2 * math.Pi * float64(doy) / 365.0
	return 1.000110 + 0.034221*math.Cos(angle) + 0.001280*math.Sin(angle) +
		0.000719*math.Cos(2*angle) + 0.000077*math.Sin(2*angle)
}

// extraterrestrial returns G_o [MJ/m2] for a surface whose integrated
// cos(theta) over the sunshine interval is intCosTheta. intCosTheta is
// integrated over hour angle in radians, so the daily solar constant is
// spread over the 2*pi radians of one day.
func extraterrestrial(doy int, intCosTheta float64) float64 {
	return SolarConstant / (2 * math.Pi) * inverseRelativeDistanceSq(doy) * intCosTheta
}

// AtmosphericPressureKPa returns atmospheric pressure at elevationM
// meters, per Allen et al. 2006 eq. 7.
func AtmosphericPressureKPa(elevationM float64) float64 {
	return 101.3 * math.Pow((293-0.0065*elevationM)/293, 5.26)
}

// Transposition holds the all-sky and tilted-surface irradiation
// results of spec.md §4.2's step-5/6 transposition.
type Transposition struct {
	Hgt float64 // tilted global irradiation, MJ/m2
	Hoh float64 // horizontal extraterrestrial irradiation, MJ/m2
	Hot float64 // tilted extraterrestrial irradiation, MJ/m2
	Hgh float64 // horizontal global irradiation, MJ/m2
}

// Transpose computes the all-sky and tilted-surface irradiation tuple
// for one day given its memoized angles, cloud cover (fraction
// [0,1], SunMissing if unavailable), observed global radiation
// (SunMissing if unavailable), actual vapor pressure (kPa), elevation,
// and surface albedo.
func Transpose(m *Memo, doy int, cloudFrac, observedGlobalMJ, eaKPa, elevationM, albedo float64) (Transposition, error) {
	a, err := m.Get(doy)
	if err != nil {
		return Transposition{}, err
	}
	hoh, err := m.ExtraterrestrialHoriz(doy)
	if err != nil {
		return Transposition{}, err
	}
	hot, err := m.ExtraterrestrialTilt(doy)
	if err != nil {
		return Transposition{}, err
	}

	p := AtmosphericPressureKPa(elevationM)
	w := 2.1 + 0.14*eaKPa*p

	var kc float64
	switch {
	case cloudFrac != SunMissing:
		kc = 1 - 0.75*math.Pow(cloudFrac, 3.4) // Angstrom 1924-style attenuation
	case observedGlobalMJ != SunMissing && hoh > 0:
		clearSkyH := clearSkyFraction(p, w, a.IntSinBetaHoriz) * hoh
		if clearSkyH > 0 {
			kc = clamp(observedGlobalMJ/clearSkyH, 0, 1)
		} else {
			kc = 1
		}
	default:
		kc = 1
	}

	kbTilt := 0.0
	if a.IntSinBetaTilt > 1e-9 {
		kbTilt = clearSkyFraction(p, w, a.IntSinBetaTilt)
	}
	kbHoriz := 0.0
	if a.IntSinBetaHoriz > 1e-9 {
		kbHoriz = clearSkyFraction(p, w, a.IntSinBetaHoriz)
	}
	kd := diffuseIndex(kbHoriz)

	hgh := (kbHoriz + kd) * kc * hoh
	result := Transposition{Hoh: hoh, Hot: hot, Hgh: hgh}

	fi := 1 - kbHoriz
	var fb float64
	if kbHoriz+kd > 0 {
		fb = kbHoriz / (kbHoriz + kd)
	}
	betaHalfSin3 := cube(math.Sin(a.IntSinBetaTilt / 2))
	fia := fi*(1-kbHoriz)*(1+math.Sqrt(math.Max(0, kbHoriz/(kbHoriz+kd+1e-12)))*betaHalfSin3) + fb*kbHoriz

	direct := kbTilt * kc * hot
	diffuse := fia * kd * kc * hoh
	reflected := albedo * (1 - fi) * hgh

	result.Hgt = direct + diffuse + reflected
	return result, nil
}

// clearSkyFraction is the Majumdar-style clear-sky direct-beam index
// K_b, turbidity fixed at 1, clamped to [0,1].
func clearSkyFraction(p, w, intSinBeta float64) float64 {
	if intSinBeta <= 0 {
		return 0
	}
	kb := 0.98 * math.Exp(-0.00146*p/intSinBeta-0.075*math.Pow(w/intSinBeta, 0.4))
	return clamp(kb, 0, 1)
}

// diffuseIndex is the piecewise-linear diffuse index K_d in K_b, per
// Boes / ASCE-EWRI.
func diffuseIndex(kb float64) float64 {
	switch {
	case kb >= 0.15:
		return 0.35 - 0.36*kb
	case kb >= 0.065:
		return 0.18 + 0.82*kb
	default:
		return 0.10 + 2.08*kb
	}
}

func cube(x float64) float64 { return x * x * x }
