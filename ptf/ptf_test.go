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

package ptf

import "testing"

func TestCosby1984ForCampbell(t *testing.T) {
	p, err := Cosby1984ForCampbell(0.4, 0.2)
	if err != nil {
		t.Fatalf("Cosby1984ForCampbell: %v", err)
	}
	if p.Family.NumParams() != 4 {
		t.Fatalf("expected 4 Campbell params, got family layout %d", p.Family.NumParams())
	}
	if p.P[1] <= 0 || p.P[1] > 1 {
		t.Errorf("theta_s out of range: %g", p.P[1])
	}
	if p.P[3] <= 0 {
		t.Errorf("K_s must be positive, got %g", p.P[3])
	}
}

func TestCosby1984RejectsBadTexture(t *testing.T) {
	if _, err := Cosby1984ForCampbell(0.7, 0.4); err == nil {
		t.Error("expected error when sand+clay >= 1")
	}
}

func TestRawlsBrakensiek1985NonNegative(t *testing.T) {
	thetaR, err := RawlsBrakensiek1985ResidualTheta(0.4, 0.2, 0.45)
	if err != nil {
		t.Fatalf("RawlsBrakensiek1985ResidualTheta: %v", err)
	}
	if thetaR < 0 {
		t.Errorf("theta_r must be >= 0, got %g", thetaR)
	}
}

func TestSaxton2006Bounds(t *testing.T) {
	thetaS, err := Saxton2006SaturatedTheta(0.4, 0.2)
	if err != nil {
		t.Fatalf("Saxton2006SaturatedTheta: %v", err)
	}
	if thetaS <= 0 || thetaS > 1 {
		t.Errorf("theta_s out of range: %g", thetaS)
	}
}
