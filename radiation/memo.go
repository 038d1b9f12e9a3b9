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

// Memo caches per-DOY sun-hour-angle and extraterrestrial-irradiation
// results for a fixed (latitude, slope, aspect). Correctness depends on
// the caller resetting it whenever that triple changes, per spec.md §3
// "Memoized radiation state".
type Memo struct {
	LatRad, SlopeRad, AspectRad float64

	computed [367]bool
	angles   [367]Angles
	goHoriz  [367]float64
	goTilt   [367]float64
}

// NewMemo constructs a Memo for the given fixed geometry, with every
// DOY entry marked "not yet computed".
func NewMemo(latRad, slopeRad, aspectRad float64) *Memo {
	return &Memo{LatRad: latRad, SlopeRad: slopeRad, AspectRad: aspectRad}
}

// Reset invalidates every cached entry and adopts a new geometry. Call
// this before simulating a new (latitude, slope, aspect) configuration.
func (m *Memo) Reset(latRad, slopeRad, aspectRad float64) {
	m.LatRad, m.SlopeRad, m.AspectRad = latRad, slopeRad, aspectRad
	for i := range m.computed {
		m.computed[i] = false
	}
}

// Get returns the sun-hour-angle tuple for doy, computing and caching
// it on first access.
func (m *Memo) Get(doy int) (Angles, error) {
	if m.computed[doy] {
		return m.angles[doy], nil
	}
	a, err := SunHourAngles(doy, m.LatRad, m.SlopeRad, m.AspectRad)
	if err != nil {
		return Angles{}, err
	}
	m.angles[doy] = a
	m.goHoriz[doy] = extraterrestrial(doy, a.IntCosThetaHoriz)
	m.goTilt[doy] = extraterrestrial(doy, a.IntCosThetaTilt)
	m.computed[doy] = true
	return a, nil
}

// ExtraterrestrialHoriz returns the memoized horizontal extraterrestrial
// irradiation G_o [MJ/m2] for doy.
func (m *Memo) ExtraterrestrialHoriz(doy int) (float64, error) {
	if _, err := m.Get(doy); err != nil {
		return 0, err
	}
	return m.goHoriz[doy], nil
}

// ExtraterrestrialTilt returns the memoized tilted extraterrestrial
// irradiation G_o [MJ/m2] for doy.
func (m *Memo) ExtraterrestrialTilt(doy int) (float64, error) {
	if _, err := m.Get(doy); err != nil {
		return 0, err
	}
	return m.goTilt[doy], nil
}
