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

package markov

import "testing"

func newTestGenerator(seedState, seedSeq uint64) *Generator {
	g := NewGenerator(seedState, seedSeq)
	for doy := 1; doy <= 366; doy++ {
		g.DayProbs[doy] = DayProb{WetProb: 0.3, DryProb: 0.1, AvgPPT: 0.5, StdPPT: 0.2}
	}
	for w := range g.Weeks {
		g.Weeks[w] = WeekParams{
			MuMax: 20, MuMin: 8, VarMax: 9, VarMin: 4, Cov: 2,
			CorrWetMax: -2, CorrDryMax: 1, CorrWetMin: -1, CorrDryMin: 0.5,
		}
	}
	return g
}

func TestReproducibility(t *testing.T) {
	g1 := newTestGenerator(7, 1)
	g2 := newTestGenerator(7, 1)

	for day := 1; day <= 18; day++ {
		ppt1, wet1 := g1.PPT(day)
		ppt2, wet2 := g2.PPT(day)
		if ppt1 != ppt2 || wet1 != wet2 {
			t.Fatalf("day %d: PPT draws diverged: (%g,%v) vs (%g,%v)", day, ppt1, wet1, ppt2, wet2)
		}
		tmax1, tmin1, err1 := g1.TemperaturePair(0, wet1)
		tmax2, tmin2, err2 := g2.TemperaturePair(0, wet2)
		if err1 != nil || err2 != nil {
			t.Fatalf("day %d: %v / %v", day, err1, err2)
		}
		if tmax1 != tmax2 || tmin1 != tmin2 {
			t.Fatalf("day %d: temperature draws diverged", day)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1 := newTestGenerator(7, 1)
	g2 := newTestGenerator(1, 1)

	differed := false
	for day := 1; day <= 18; day++ {
		ppt1, _ := g1.PPT(day)
		ppt2, _ := g2.PPT(day)
		if ppt1 != ppt2 {
			differed = true
		}
	}
	if !differed {
		t.Fatal("expected seeds (7,1) and (1,1) to diverge on at least one day")
	}
}

func TestBadCovarianceRejected(t *testing.T) {
	g := newTestGenerator(1, 1)
	g.Weeks[0] = WeekParams{MuMax: 10, MuMin: 5, VarMax: 1, VarMin: 1, Cov: 10}
	if _, _, err := g.TemperaturePair(0, true); err == nil {
		t.Fatal("expected BadCovariance error")
	}
}
