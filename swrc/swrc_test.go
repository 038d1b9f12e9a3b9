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

package swrc

import "testing"

func TestCampbellRoundtrip(t *testing.T) {
	p := Params{Family: Campbell1974, P: [6]float64{15.0, 0.4, 4.5, 10}}
	width, gravel := 20.0, 0.0

	swc, err := InverseSWCcm(1.0, width, gravel, p)
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	psi, err := ForwardSWPbar(swc, width, gravel, p)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if diff := psi - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("roundtrip mismatch: got psi=%g want ~1.0", psi)
	}
}

func TestFXWRoundtrip(t *testing.T) {
	p := Params{Family: FXW, P: [6]float64{0.45, 0.05, 2, 0.5, 10, 0.5}}
	width, gravel := 10.0, 0.0

	wantTheta := 0.25
	swc := wantTheta * width
	psi, err := ForwardSWPbar(swc, width, gravel, p)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}

	gotSWC, err := InverseSWCcm(psi, width, gravel, p)
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	gotTheta := gotSWC / width
	if diff := gotTheta - wantTheta; diff > 1e-8 || diff < -1e-8 {
		t.Errorf("FXW roundtrip mismatch: got theta=%g want %g", gotTheta, wantTheta)
	}
}

func TestCampbellLegacyAboveSaturation(t *testing.T) {
	p := Params{Family: Campbell1974, P: [6]float64{15.0, 0.4, 4.5, 10}}
	psi, err := ForwardSWPbar(0.5*20, 20, 0, p)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if psi != 0 {
		t.Errorf("expected 0 for theta>theta_s, got %g", psi)
	}
}

func TestVanGenuchtenMonotonic(t *testing.T) {
	p := Params{Family: VanGenuchten1980, P: [6]float64{0.05, 0.45, 0.02, 1.5, 10}}
	width, gravel := 10.0, 0.0

	thetas := []float64{0.1, 0.2, 0.3, 0.4}
	var prevPsi float64 = -1
	for _, th := range thetas {
		psi, err := ForwardSWPbar(th*width, width, gravel, p)
		if err != nil {
			t.Fatalf("forward(%g): %v", th, err)
		}
		if prevPsi >= 0 && psi > prevPsi {
			t.Errorf("psi not monotonic non-increasing in theta: theta=%g psi=%g prevPsi=%g", th, psi, prevPsi)
		}
		prevPsi = psi
	}
}

func TestFXWOutOfDomain(t *testing.T) {
	p := Params{Family: FXW, P: [6]float64{0.45, 0.05, 2, 0.5, 10, 0.5}}
	if _, err := ForwardSWPbar(-1, 10, 0, p); err == nil {
		t.Error("expected error for negative theta")
	}
	if _, err := ForwardSWPbar(0.5*10, 10, 0, p); err == nil {
		t.Error("expected error for theta > theta_s")
	}
}
