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

// Package weather reads, imputes, scales, and audits daily weather
// records.
package weather

import (
	"fmt"
	"math"
)

// Missing is the sentinel used for absent daily observations.
const Missing = 999.0

// IsMissing reports whether x is the Missing sentinel within tol.
func IsMissing(x, tol float64) bool { return math.Abs(x-Missing) < tol }

// Field identifies one optional daily input column, per spec.md §4.3
// "per-day input vector".
type Field int

const (
	FieldTmax Field = iota
	FieldTmin
	FieldPPT
	FieldCloud
	FieldWindSpeed
	FieldWindEast
	FieldWindNorth
	FieldRH
	FieldRHmax
	FieldRHmin
	FieldSpecificHumidity
	FieldDewpoint
	FieldActualVP
	FieldShortwave
	NumFields
)

// Day is one calendar day's weather vector. Tavg is always derived,
// never read directly.
type Day struct {
	DOY int

	Tmax, Tmin, Tavg float64
	PPT              float64
	Cloud            float64
	WindSpeed        float64
	RH               float64
	ActualVP         float64
	ShortwaveMJ      float64
}

// NewMissingDay returns a Day with every field set to Missing except
// DOY.
func NewMissingDay(doy int) Day {
	return Day{
		DOY: doy, Tmax: Missing, Tmin: Missing, Tavg: Missing,
		PPT: Missing, Cloud: Missing, WindSpeed: Missing,
		RH: Missing, ActualVP: Missing, ShortwaveMJ: Missing,
	}
}

// DeriveTavg sets Tavg = (Tmax+Tmin)/2 unless either is missing.
func (d *Day) DeriveTavg() {
	if IsMissing(d.Tmax, 1e-4) || IsMissing(d.Tmin, 1e-4) {
		d.Tavg = Missing
		return
	}
	d.Tavg = (d.Tmax + d.Tmin) / 2
}

// Year is one calendar year's weather record: 365 or 366 Day entries
// indexed by DOY-1.
type Year struct {
	Year  int
	Days  []Day
}

// Record is the full weather record across the simulated window.
type Record struct {
	Years []Year
}

// Selection is the bit-flag set of daily input columns a reader
// expects, plus the validation spec.md §4.3 requires: Tmax/Tmin
// jointly required, PPT required, RHmax/RHmin jointly required,
// wind-east/wind-north jointly required.
type Selection struct {
	Flags [NumFields]bool
}

// Validate enforces the joint-requirement rules of spec.md §4.3.
func (s Selection) Validate() error {
	if !s.Flags[FieldPPT] {
		return errMissingRequired("PPT")
	}
	if s.Flags[FieldTmax] != s.Flags[FieldTmin] {
		return errJointRequirement("Tmax", "Tmin")
	}
	if !s.Flags[FieldTmax] {
		return errMissingRequired("Tmax/Tmin")
	}
	if s.Flags[FieldRHmax] != s.Flags[FieldRHmin] {
		return errJointRequirement("RHmax", "RHmin")
	}
	if s.Flags[FieldWindEast] != s.Flags[FieldWindNorth] {
		return errJointRequirement("wind-east", "wind-north")
	}
	return nil
}

func errMissingRequired(name string) error {
	return fmt.Errorf("weather: %s is required but not selected", name)
}

func errJointRequirement(a, b string) error {
	return fmt.Errorf("weather: %s and %s must be selected together", a, b)
}
