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

// SaturationVaporPressureKPa returns e_s(T) in kPa via the Huang 2018
// piecewise formulation: one branch over water (tC >= 0) and one over
// ice (tC < 0). Huang's expressions yield Pa and are divided by 1000.
func SaturationVaporPressureKPa(tC float64) float64 {
	if tC >= 0 {
		return math.Exp(34.494-4924.99/(tC+237.1)) / math.Pow(tC+105, 1.57) / 1000
	}
	return math.Exp(43.494-6545.8/(tC+278)) / math.Pow(tC+868, 2) / 1000
}

// SVPSlopeKPaPerC returns the slope of the saturation vapor pressure
// curve at tC, by central finite difference with a step of 0.01 C
// (Huang's closed-form derivative is algebraically awkward to keep
// branch-consistent); the result is an approximation of that derivative.
func SVPSlopeKPaPerC(tC float64) float64 {
	const h = 0.01
	return (SaturationVaporPressureKPa(tC+h) - SaturationVaporPressureKPa(tC-h)) / (2 * h)
}

// PETResult is the PET kernel's (cm/day) output plus its intermediate
// radiative terms, useful for testing.
type PETResult struct {
	PET float64
	Rn  float64
}

// Penman computes Penman PET for one day, given the tilted global
// irradiation hg [MJ/m2], average temperature [C], elevation [m],
// albedo, relative humidity [0,100], wind speed [m/s], and cloud cover
// fraction [0,1] (clr = 1-cloud is the clear-sky weight used in the
// net-radiation term).
func Penman(hg, tAvgC, elevationM, albedo, rhPct, windMS, cloudFrac float64) PETResult {
	es := SaturationVaporPressureKPa(tAvgC)
	delta := SVPSlopeKPaPerC(tAvgC)
	ed := es * rhPct / 100

	p := AtmosphericPressureKPa(elevationM)
	lambda := 2.501 - 0.002361*tAvgC
	gamma := 0.0016286 * p / lambda

	windMilesPerDay := windMS * 86400 / 1609.344
	ea := 0.35 * (es - ed) * (1 + 0.0098*windMilesPerDay)

	rc := hg // shortwave already converted to MJ/m2 by the transposition step
	clr := 1 - cloudFrac
	tKelvin := tAvgC + 273.16
	rbb := 4.903e-9 * math.Pow(tKelvin, 4) // Stefan-Boltzmann longwave term, MJ/m2/day

	rn := (1-albedo)*rc - rbb*(0.56-0.092*math.Sqrt(math.Max(0, ed)))*(0.10+0.90*clr)

	// Convert delta, gamma (kPa/C) and Ea (mm/day-equivalent) consistently
	// with Rn in MJ/m2/day via the standard Penman combination, then
	// convert the combined flux from mm/day to cm/day.
	petMM := (delta*rn + gamma*ea) / (delta + gamma)
	pet := math.Max(0.01, 0.1*petMM)
	return PETResult{PET: pet, Rn: rn}
}
