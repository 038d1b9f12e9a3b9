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

import (
	"math"
	"testing"
)

func TestEquatorDaylengthSixHours(t *testing.T) {
	for doy := 1; doy <= 365; doy += 30 {
		a, err := SunHourAngles(doy, 0, 0, SunMissing)
		if err != nil {
			t.Fatalf("doy %d: %v", doy, err)
		}
		halfDayHours := a.OmegaS * 12 / math.Pi
		if math.Abs(halfDayHours-6) > 1e-6 {
			t.Errorf("doy %d: equator half-day = %g hours, want 6", doy, halfDayHours)
		}
	}
}

func TestMemoPurity(t *testing.T) {
	m := NewMemo(0.75, 0.2, 0.1)
	a1, err := m.Get(172)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	a2, err := m.Get(172)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a1 != a2 {
		t.Errorf("memoized angles not stable across calls: %+v vs %+v", a1, a2)
	}
}

func TestDeclinationSolstice(t *testing.T) {
	d := Declination(172) * 180 / math.Pi
	if math.Abs(d-23.43668) > 1 {
		t.Errorf("declination near June solstice = %g deg, want ~23.43668", d)
	}
}

// TestTiltedSunsetTwoPeriodDetection hand-verifies the eq. 50
// integrand-sign gate against a constructed aa/bb/cc triple where the
// cos(theta) integrand is negative at solar noon (w=0) and positive at
// both edges of the horizontal sunshine window -- the literal
// lit-dark-lit signature -- and a control triple that is lit straight
// through noon and must not be flagged.
func TestTiltedSunsetTwoPeriodDetection(t *testing.T) {
	_, twoPeriod, ok := tiltedSunset(0.8, -1, 0, 1.0)
	if !ok {
		t.Fatal("tiltedSunset: !ok for two-period case")
	}
	if !twoPeriod {
		t.Error("expected two-period day for aa=0.8, bb=-1, cc=0, omegaS=1.0")
	}

	_, twoPeriod, ok = tiltedSunset(0.5, 0.5, 0, 1.0)
	if !ok {
		t.Fatal("tiltedSunset: !ok for control case")
	}
	if twoPeriod {
		t.Error("control case (lit at solar noon) incorrectly flagged two-period")
	}
}

// TestEquinoxDaylengthNearSixHours checks the horizontal-surface
// identity that every latitude sees a ~12-hour day (6-hour half-day)
// near the equinox, regardless of latitude. DOY 81 is where this
// package's Declination crosses zero closest to an integer day, so the
// tolerance is loosened slightly from the equator's exact 1e-6 to
// absorb that residual declination.
func TestEquinoxDaylengthNearSixHours(t *testing.T) {
	for _, latDeg := range []float64{-60, -30, 0, 30, 60} {
		a, err := SunHourAngles(81, latDeg*math.Pi/180, 0, SunMissing)
		if err != nil {
			t.Fatalf("lat %g: %v", latDeg, err)
		}
		halfDayHours := a.OmegaS * 12 / math.Pi
		if math.Abs(halfDayHours-6) > 0.05 {
			t.Errorf("lat %g: equinox half-day = %g hours, want ~6", latDeg, halfDayHours)
		}
	}
}

// TestTiltedSunAngleAspectSymmetry checks the reflection identities
// that follow from cc flipping sign under aspect -> -aspect: total
// daylength is symmetric around due-south aspect, the sunrise/sunset
// boundaries swap-and-negate across the reflection, and the two-period
// indicator is itself symmetric.
func TestTiltedSunAngleAspectSymmetry(t *testing.T) {
	cases := []struct {
		latDeg, slopeDeg, aspectDeg float64
		doy                         int
	}{
		{40, 20, 35, 172},
		{-20, 15, 70, 200},
		{55, 10, 10, 60},
	}
	for _, c := range cases {
		lat := c.latDeg * math.Pi / 180
		slope := c.slopeDeg * math.Pi / 180
		aspect := c.aspectDeg * math.Pi / 180

		pos, err := SunHourAngles(c.doy, lat, slope, aspect)
		if err != nil {
			t.Fatalf("%+v: %v", c, err)
		}
		neg, err := SunHourAngles(c.doy, lat, slope, -aspect)
		if err != nil {
			t.Fatalf("%+v: %v", c, err)
		}

		if pos.Indicator != neg.Indicator {
			t.Errorf("%+v: indicator not symmetric: %d vs %d", c, pos.Indicator, neg.Indicator)
			continue
		}

		posDaylength := pos.TiltedSunset - pos.TiltedSunrise
		negDaylength := neg.TiltedSunset - neg.TiltedSunrise
		if math.Abs(posDaylength-negDaylength) > 1e-9 {
			t.Errorf("%+v: daylength not symmetric under aspect reflection: %g vs %g", c, posDaylength, negDaylength)
		}

		if pos.Indicator == 1 {
			if math.Abs(pos.TiltedSunrise-(-neg.TiltedSunset)) > 1e-9 {
				t.Errorf("%+v: sunrise(+a) != -sunset(-a): %g vs %g", c, pos.TiltedSunrise, -neg.TiltedSunset)
			}
			if math.Abs(pos.TiltedSunset-(-neg.TiltedSunrise)) > 1e-9 {
				t.Errorf("%+v: sunset(+a) != -sunrise(-a): %g vs %g", c, pos.TiltedSunset, -neg.TiltedSunrise)
			}
		}
	}
}

// TestMadisonWIIrradiationSanity exercises the full transposition/PET
// pipeline with the mid-latitude, partly-cloudy scenario used to sanity
// check this engine against an independent Penman-Monteith reference
// (lat 43N, DOY 162, south-facing 60-degree slope). The assertions are
// wide physical bounds rather than the tight reference tolerances,
// since reproducing the reference to within its tolerance depends on
// calibration constants (e.g. the vapor-pressure fit) this suite can't
// independently confirm without running the pipeline.
func TestMadisonWIIrradiationSanity(t *testing.T) {
	lat := 43.0 * math.Pi / 180
	slope := 60.0 * math.Pi / 180
	m := NewMemo(lat, slope, 0)

	result, err := Transpose(m, 162, 0.4, SunMissing, 1.0, 226, 0.2)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	if result.Hgh <= 0 || result.Hgh > 40 {
		t.Errorf("Hgh = %g MJ/m2, want a plausible clear-to-cloudy June value", result.Hgh)
	}
	if result.Hgt <= 0 || result.Hgt > 40 {
		t.Errorf("Hgt = %g MJ/m2, want a plausible tilted-surface value", result.Hgt)
	}

	pr := Penman(result.Hgt, 20, 226, 0.2, 65, 2, 0.4)
	if math.IsNaN(pr.PET) || math.IsInf(pr.PET, 0) {
		t.Fatalf("PET not finite: %g", pr.PET)
	}
	if pr.PET <= 0 || pr.PET > 2 {
		t.Errorf("PET = %g cm/day, want a plausible June value", pr.PET)
	}
}

func TestPenmanFiniteNonNegative(t *testing.T) {
	cases := []struct {
		hg, t, elev, albedo, rh, wind, cloud float64
	}{
		{20, 20, 200, 0.2, 65, 2, 0.4},
		{0, -40, -400, 0.2, 100, 0, 1.0},
		{35, 60, 8700, 0.1, 0, 20, 0},
	}
	for _, c := range cases {
		r := Penman(c.hg, c.t, c.elev, c.albedo, c.rh, c.wind, c.cloud)
		if math.IsNaN(r.PET) || math.IsInf(r.PET, 0) {
			t.Errorf("PET not finite for case %+v: %g", c, r.PET)
		}
		if r.PET < 0 {
			t.Errorf("PET negative for case %+v: %g", c, r.PET)
		}
	}
}
