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

import "fmt"

// ImputeMethod selects the missing-weather policy, per spec.md §4.3.
type ImputeMethod int

const (
	PassThrough ImputeMethod = iota
	LOCF
	MarkovGenerated
)

// LOCFImpute applies last-observation-carried-forward to every
// continuous field and sets missing PPT to 0, failing if more than
// maxMissing days in the year needed imputation.
func LOCFImpute(year *Year, maxMissing int) error {
	last := NewMissingDay(0)
	missing := 0
	for i := range year.Days {
		d := &year.Days[i]
		dayMissing := false

		if IsMissing(d.Tmax, 1e-4) && !IsMissing(last.Tmax, 1e-4) {
			d.Tmax = last.Tmax
			dayMissing = true
		}
		if IsMissing(d.Tmin, 1e-4) && !IsMissing(last.Tmin, 1e-4) {
			d.Tmin = last.Tmin
			dayMissing = true
		}
		if IsMissing(d.PPT, 1e-4) {
			d.PPT = 0
			dayMissing = true
		}
		if IsMissing(d.Cloud, 1e-4) && !IsMissing(last.Cloud, 1e-4) {
			d.Cloud = last.Cloud
			dayMissing = true
		}
		if IsMissing(d.WindSpeed, 1e-4) && !IsMissing(last.WindSpeed, 1e-4) {
			d.WindSpeed = last.WindSpeed
			dayMissing = true
		}
		if IsMissing(d.RH, 1e-4) && !IsMissing(last.RH, 1e-4) {
			d.RH = last.RH
			dayMissing = true
		}
		if IsMissing(d.ActualVP, 1e-4) && !IsMissing(last.ActualVP, 1e-4) {
			d.ActualVP = last.ActualVP
			dayMissing = true
		}
		if IsMissing(d.ShortwaveMJ, 1e-4) && !IsMissing(last.ShortwaveMJ, 1e-4) {
			d.ShortwaveMJ = last.ShortwaveMJ
			dayMissing = true
		}

		d.DeriveTavg()
		if dayMissing {
			missing++
		}
		last = *d
	}
	if missing > maxMissing {
		return fmt.Errorf("weather: %d days required LOCF imputation in year %d, exceeds max %d", missing, year.Year, maxMissing)
	}
	return nil
}
