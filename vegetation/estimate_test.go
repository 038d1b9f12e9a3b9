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

package vegetation

import "testing"

func TestEstimateSumsToOne(t *testing.T) {
	in := Input{MAT: 12, MAP: 40, Hemisphere: North, FillWithBare: true}
	l0, _, _, err := Estimate(in)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	sum := 0.0
	for _, v := range l0 {
		sum += v
	}
	if diff := sum - 1; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("L0 composition sums to %g, want 1", sum)
	}
}

func TestEstimateZeroMAPAllBare(t *testing.T) {
	in := Input{MAT: 10, MAP: 0.0, FillWithBare: true}
	l0, l1, _, err := Estimate(in)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if l0[ClassBareGround] != 1 {
		t.Errorf("expected all-bare composition, got %+v", l0)
	}
	if l1.Bare != 1 {
		t.Errorf("expected L1 bare=1, got %+v", l1)
	}
}

func TestEstimateUnderdeterminedWhenBareFixedAndZero(t *testing.T) {
	in := Input{MAT: 12, MAP: 40}
	in.Fixed.Set[ClassBareGround] = true
	in.Fixed.Value[ClassBareGround] = 0
	in.Fixed.Set[ClassTrees] = true
	in.Fixed.Value[ClassTrees] = 0
	in.Fixed.Set[ClassShrubs] = true
	in.Fixed.Value[ClassShrubs] = 0
	in.Fixed.Set[ClassForbs] = true
	in.Fixed.Value[ClassForbs] = 0
	in.Fixed.Set[ClassSucculents] = true
	in.Fixed.Value[ClassSucculents] = 0
	in.Fixed.Set[ClassC3Grass] = true
	in.Fixed.Value[ClassC3Grass] = 0
	in.Fixed.Set[ClassC4Grass] = true
	in.Fixed.Value[ClassC4Grass] = 0
	in.Fixed.Set[ClassAnnualGrass] = true
	in.Fixed.Value[ClassAnnualGrass] = 0

	_, _, _, err := Estimate(in)
	if err == nil {
		t.Fatal("expected Underdetermined error when all classes fixed to zero")
	}
}

func TestDistributeGrassesFixedSumProportional(t *testing.T) {
	var c L0Composition
	var fixed Fixed
	fixed.GrassSumSet = true
	fixed.GrassSum = 0.2

	distributeGrasses(&c, fixed, 0.3, 0.1)

	if diff := c[ClassC3Grass] - 0.15; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("C3 = %g, want 0.15", c[ClassC3Grass])
	}
	if diff := c[ClassC4Grass] - 0.05; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("C4 = %g, want 0.05", c[ClassC4Grass])
	}
	if diff := c[ClassC3Grass] + c[ClassC4Grass] - fixed.GrassSum; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("C3+C4 = %g, want fixed sum %g", c[ClassC3Grass]+c[ClassC4Grass], fixed.GrassSum)
	}
}

func TestDistributeGrassesFixedSumZeroEstimateSplitsEvenly(t *testing.T) {
	var c L0Composition
	var fixed Fixed
	fixed.GrassSumSet = true
	fixed.GrassSum = 0.4

	distributeGrasses(&c, fixed, 0, 0)

	if diff := c[ClassC3Grass] - 0.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("C3 = %g, want 0.2 (even split of fixed sum)", c[ClassC3Grass])
	}
	if diff := c[ClassC4Grass] - 0.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("C4 = %g, want 0.2 (even split of fixed sum)", c[ClassC4Grass])
	}
}

func TestDistributeGrassesFixedSumWithOneClassFixed(t *testing.T) {
	var c L0Composition
	var fixed Fixed
	fixed.Set[ClassC3Grass] = true
	fixed.Value[ClassC3Grass] = 0.1
	fixed.GrassSumSet = true
	fixed.GrassSum = 0.3

	distributeGrasses(&c, fixed, 0.3, 0.1)

	if c[ClassC3Grass] != 0.1 {
		t.Errorf("C3 = %g, want fixed value 0.1", c[ClassC3Grass])
	}
	if diff := c[ClassC4Grass] - 0.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("C4 = %g, want 0.2 (fixed sum minus fixed C3)", c[ClassC4Grass])
	}
}

func TestCheckEstablishment(t *testing.T) {
	p := EstablishmentParams{MinTempC: 5, MaxTempC: 25, MinSWCFracFC: 0.5, MinConsecutiveDays: 3, WindowStartDOY: 90, WindowEndDOY: 150}
	days := []DayCondition{
		{DOY: 100, Tavg: 10, SWCFracFC: 0.6},
		{DOY: 101, Tavg: 12, SWCFracFC: 0.7},
		{DOY: 102, Tavg: 11, SWCFracFC: 0.55},
	}
	if !CheckEstablishment(p, days) {
		t.Error("expected establishment to succeed")
	}
}
