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

// CheckAllWeather audits every day of the record per spec.md §4.3
// "Audit", returning the first violation found with the offending
// (year, DOY, field) identified.
func CheckAllWeather(rec *Record) error {
	for _, y := range rec.Years {
		for _, d := range y.Days {
			if err := checkDay(y.Year, d); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkDay(year int, d Day) error {
	if !IsMissing(d.Tmin, 1e-4) && !IsMissing(d.Tmax, 1e-4) && d.Tmin > d.Tmax {
		return violatedf(year, d.DOY, "Tmin", "Tmin (%g) > Tmax (%g)", d.Tmin, d.Tmax)
	}
	if !IsMissing(d.Tmin, 1e-4) && (d.Tmin < -100 || d.Tmin > 100) {
		return violatedf(year, d.DOY, "Tmin", "out of range [-100,100]: %g", d.Tmin)
	}
	if !IsMissing(d.Tmax, 1e-4) && (d.Tmax < -100 || d.Tmax > 100) {
		return violatedf(year, d.DOY, "Tmax", "out of range [-100,100]: %g", d.Tmax)
	}
	if !IsMissing(d.PPT, 1e-4) && d.PPT < 0 {
		return violatedf(year, d.DOY, "PPT", "negative: %g", d.PPT)
	}
	if !IsMissing(d.RH, 1e-4) && (d.RH < 0 || d.RH > 100) {
		return violatedf(year, d.DOY, "RH", "out of range [0,100]: %g", d.RH)
	}
	if !IsMissing(d.Cloud, 1e-4) && (d.Cloud < 0 || d.Cloud > 100) {
		return violatedf(year, d.DOY, "cloud", "out of range [0,100]: %g", d.Cloud)
	}
	if !IsMissing(d.WindSpeed, 1e-4) && d.WindSpeed < 0 {
		return violatedf(year, d.DOY, "wind", "negative: %g", d.WindSpeed)
	}
	if !IsMissing(d.ShortwaveMJ, 1e-4) && d.ShortwaveMJ < 0 {
		return violatedf(year, d.DOY, "shortwave", "negative: %g", d.ShortwaveMJ)
	}
	if !IsMissing(d.ActualVP, 1e-4) && d.ActualVP < 0 {
		return violatedf(year, d.DOY, "actual VP", "negative: %g", d.ActualVP)
	}
	return nil
}

func violatedf(year, doy int, field, format string, args ...interface{}) error {
	return fmt.Errorf("weather: year %d doy %d field %s: %s", year, doy, field, fmt.Sprintf(format, args...))
}
