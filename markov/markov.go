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

// Package markov implements the first-order Markov daily weather
// generator: precipitation occurrence/amount per DOY, and a bivariate-
// normal temperature pair per week with wet/dry correction.
package markov

import (
	"fmt"
	"math"

	"github.com/DrylandEcology/soilwat"
)

// DayProb is one DOY's precipitation-occurrence and amount parameters,
// per spec.md §4.4 "Inputs".
type DayProb struct {
	WetProb, DryProb float64
	AvgPPT, StdPPT   float64
}

// WeekParams is one week's bivariate-normal temperature parameters plus
// the four wet/dry correction terms.
type WeekParams struct {
	MuMax, MuMin     float64
	VarMax, VarMin   float64
	Cov              float64
	CorrWetMax, CorrDryMax float64
	CorrWetMin, CorrDryMin float64
}

// Validate rejects out-of-range probabilities, non-finite values, and
// negative standard deviations, per spec.md §4.4.
func (p DayProb) Validate() error {
	if p.WetProb < 0 || p.WetProb > 1 || p.DryProb < 0 || p.DryProb > 1 {
		return fmt.Errorf("markov: wet/dry probability out of [0,1]: wet=%g dry=%g", p.WetProb, p.DryProb)
	}
	if p.StdPPT < 0 {
		return fmt.Errorf("markov: negative PPT stddev: %g", p.StdPPT)
	}
	for _, x := range [...]float64{p.WetProb, p.DryProb, p.AvgPPT, p.StdPPT} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("markov: non-finite day parameter: wet=%g dry=%g avg=%g std=%g", p.WetProb, p.DryProb, p.AvgPPT, p.StdPPT)
		}
	}
	return nil
}

// Validate rejects negative variances and non-finite parameters.
func (w WeekParams) Validate() error {
	if w.VarMax < 0 || w.VarMin < 0 {
		return fmt.Errorf("markov: negative variance: max=%g min=%g", w.VarMax, w.VarMin)
	}
	for _, x := range [...]float64{w.MuMax, w.MuMin, w.VarMax, w.VarMin, w.Cov, w.CorrWetMax, w.CorrDryMax, w.CorrWetMin, w.CorrDryMin} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("markov: non-finite week parameter: %g", x)
		}
	}
	return nil
}

// Generator drives the first-order Markov weather generator from a
// dedicated RNG stream, independent from any other stochastic process
// in the run (spec.md §4.4 "RNG discipline").
type Generator struct {
	RNG       *soilwat.RNG
	DayProbs  [367]DayProb
	Weeks     [54]WeekParams

	yesterdayWet bool
}

// NewGenerator constructs a Generator seeded deterministically.
func NewGenerator(seedState, seedSeq uint64) *Generator {
	return &Generator{RNG: soilwat.NewRNG(seedState, seedSeq)}
}

// PPT draws today's precipitation occurrence and amount for doy, per
// spec.md §4.4 "Per-DOY precipitation probability".
func (g *Generator) PPT(doy int) (ppt float64, wet bool) {
	prob := g.DayProbs[doy]
	p := prob.DryProb
	if g.yesterdayWet {
		p = prob.WetProb
	}
	u := g.RNG.Float64()
	if u <= p {
		z1, _ := g.RNG.NormalPair()
		x := prob.AvgPPT + prob.StdPPT*z1
		ppt = math.Max(0, x)
		wet = true
	} else {
		ppt = 0
		wet = false
	}
	g.yesterdayWet = wet
	return ppt, wet
}

// TemperaturePair draws today's (Tmax, Tmin) via the weekly bivariate
// normal, then applies the wet/dry correction, per spec.md §4.4.
func (g *Generator) TemperaturePair(week int, wetToday bool) (tmax, tmin float64, err error) {
	w := g.Weeks[week]
	if w.VarMax <= 0 {
		return 0, 0, fmt.Errorf("markov: week %d has non-positive sigma_max^2 %g", week, w.VarMax)
	}
	radicand := w.VarMin - (w.Cov*w.Cov)/w.VarMax
	if radicand < 0 {
		return 0, 0, &soilwat.SoilwatError{Kind: soilwat.BadCovariance,
			Message: fmt.Sprintf("markov: week %d covariance yields negative radicand %g", week, radicand)}
	}

	z1, z2 := g.RNG.NormalPair()
	sigmaMax := math.Sqrt(w.VarMax)
	tmax = w.MuMax + sigmaMax*z1
	tmin = w.MuMin + (w.Cov/sigmaMax)*z1 + math.Sqrt(radicand)*z2
	if tmin > tmax {
		tmin = tmax
	}

	if wetToday {
		tmax += w.CorrWetMax
		tmin = math.Min(tmax, tmin+w.CorrWetMin)
	} else {
		tmax += w.CorrDryMax
		tmin = math.Min(tmax, tmin+w.CorrDryMin)
	}
	return tmax, tmin, nil
}
