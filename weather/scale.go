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

package weather

// MonthlyScale holds the additive/multiplicative scale parameters for
// one calendar month, per spec.md §4.3 "Scaling".
type MonthlyScale struct {
	TempAdd       float64
	PPTMult       float64
	CloudAdd      float64
	WindMult      float64
	RHAdd         float64
	ActualVPMult  float64
	ShortwaveMult float64
}

// doyToMonth0 returns the 0-based month index for a DOY in a year with
// nDays days, using a fixed-length-month approximation consistent with
// the 12-value monthly inputs elsewhere in the engine.
func doyToMonth0(doy, nDays int) int {
	monthLen := float64(nDays) / 12.0
	m := int(float64(doy-1) / monthLen)
	if m > 11 {
		m = 11
	}
	return m
}

// ScaleYear applies the twelve monthly scale parameters to every day of
// year in place. Missing values are left untouched. Bounded fields are
// clamped to their physical ranges. Tavg is recomputed afterward.
func ScaleYear(year *Year, scales [12]MonthlyScale) {
	nDays := len(year.Days)
	for i := range year.Days {
		d := &year.Days[i]
		s := scales[doyToMonth0(d.DOY, nDays)]

		if !IsMissing(d.Tmax, 1e-4) {
			d.Tmax += s.TempAdd
		}
		if !IsMissing(d.Tmin, 1e-4) {
			d.Tmin += s.TempAdd
		}
		if !IsMissing(d.PPT, 1e-4) {
			d.PPT *= s.PPTMult
			if d.PPT < 0 {
				d.PPT = 0
			}
		}
		if !IsMissing(d.Cloud, 1e-4) {
			d.Cloud = clampRange(d.Cloud+s.CloudAdd, 0, 100)
		}
		if !IsMissing(d.WindSpeed, 1e-4) {
			d.WindSpeed = maxZero(d.WindSpeed * s.WindMult)
		}
		if !IsMissing(d.RH, 1e-4) {
			d.RH = clampRange(d.RH+s.RHAdd, 0, 100)
		}
		if !IsMissing(d.ActualVP, 1e-4) {
			d.ActualVP = maxZero(d.ActualVP * s.ActualVPMult)
		}
		if !IsMissing(d.ShortwaveMJ, 1e-4) {
			d.ShortwaveMJ = maxZero(d.ShortwaveMJ * s.ShortwaveMult)
		}

		d.DeriveTavg()
	}
}

func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func maxZero(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
