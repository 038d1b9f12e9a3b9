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

// Package vegetation estimates potential natural vegetation composition
// from climate, per the Paruelo-Lauenroth equations (spec.md §4.7), and
// implements the seedling-establishment supplement.
package vegetation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

func pow(x, y float64) float64    { return math.Pow(x, y) }
func expSafe(x float64) float64 { return math.Exp(x) }

// Hemisphere mirrors climate.Hemisphere to keep this package free of a
// dependency on the climate package.
type Hemisphere int

const (
	North Hemisphere = iota
	South
)

// Class indexes the eight L0 vegetation classes the estimator reports.
type Class int

const (
	ClassTrees Class = iota
	ClassShrubs
	ClassC4Grass
	ClassC3Grass
	ClassForbs
	ClassSucculents
	ClassAnnualGrass
	ClassBareGround
	NumClasses
)

// Fixed holds user-supplied fixed values for any subset of classes;
// NaN-free callers use Set to mark which entries are fixed.
type Fixed struct {
	Value [NumClasses]float64
	Set   [NumClasses]bool

	// GrassSum, when Set, fixes C3+C4 grass cover to a combined total
	// without pinning either individually -- distinct from fixing
	// ClassC3Grass/ClassC4Grass outright. Ignored if both grass classes
	// are individually fixed; if exactly one is, the other receives
	// GrassSum minus the fixed value, floored at 0.
	GrassSum    float64
	GrassSumSet bool
}

// C4Trio is the optional trio of covariates gating C4 grass presence.
type C4Trio struct {
	JulyTmin           float64
	DegreeDaysAbove65F float64
	FrostFreeDays      float64
	Provided           bool
}

// Input bundles the climate and user inputs the estimator consumes.
type Input struct {
	MAT, MAP float64 // deg C, cm/yr

	MonthlyT [12]float64
	MonthlyP [12]float64

	C4 C4Trio

	Fixed Fixed

	Hemisphere    Hemisphere
	FillWithBare  bool
}

// L0Composition is the eight-class cover vector (fractions summing to 1).
type L0Composition [NumClasses]float64

// L1Composition aggregates L0 into 5 classes: trees, shrubs,
// forbs+succulents, grasses-sum, bare.
type L1Composition struct {
	Trees, Shrubs, ForbsSucculents, Grasses, Bare float64
}

// Estimate computes the L0 (and derived L1) composition for in, per
// spec.md §4.7. Warnings (out-of-range MAT/MAP) are returned alongside
// the composition rather than failing the estimate; Underdetermined is
// the only fatal outcome.
func Estimate(in Input) (L0Composition, L1Composition, []string, error) {
	var c L0Composition
	var warnings []string

	// Trees, annual grass, and bare ground are never estimated.
	if in.Fixed.Set[ClassTrees] {
		c[ClassTrees] = in.Fixed.Value[ClassTrees]
	}
	if in.Fixed.Set[ClassAnnualGrass] {
		c[ClassAnnualGrass] = in.Fixed.Value[ClassAnnualGrass]
	}

	if in.MAP <= 0.1 {
		// MAP <= 1 mm/yr: all vegetation to 0, bare ground to 1.
		var zero L0Composition
		zero[ClassBareGround] = 1
		return zero, toL1(zero), warnings, nil
	}

	if in.MAT < 1 || in.MAT > 21.2 {
		warnings = append(warnings, fmt.Sprintf("MAT %g outside supported range [1,21.2] C", in.MAT))
	}
	if in.MAP < 11.7 || in.MAP > 101.1 {
		warnings = append(warnings, fmt.Sprintf("MAP %g outside supported range [11.7,101.1] cm", in.MAP))
	}

	shrub := clamp(0.99 - 1.0/(1+0.0003*pow(in.MAP, 1.47)))
	c4 := clamp(-0.9837 + 0.000594*in.MAP)
	var c3 float64
	if shrub >= 0.2 {
		c3 = clamp(1.14 - 0.976*expSafe(-0.0000326*in.MAP*in.MAP))
	} else {
		c3 = clamp(0.1683 + 0.0003813*in.MAP - 0.00000645*in.MAP*in.MAP)
	}
	forb := clamp(0.1 + 0.0006*in.MAT*in.MAT - 0.0000001*in.MAP*in.MAP)
	succulent := clamp(0.0503 - 0.0001*in.MAP + 0.0000004*in.MAP*in.MAP)

	if in.C4.Provided && in.C4.JulyTmin <= 0 && in.C4.DegreeDaysAbove65F <= 0 && in.C4.FrostFreeDays <= 0 {
		c4 = 0
	}

	if !in.Fixed.Set[ClassShrubs] {
		c[ClassShrubs] = shrub
	} else {
		c[ClassShrubs] = in.Fixed.Value[ClassShrubs]
	}
	if !in.Fixed.Set[ClassForbs] {
		c[ClassForbs] = forb
	} else {
		c[ClassForbs] = in.Fixed.Value[ClassForbs]
	}
	if !in.Fixed.Set[ClassSucculents] {
		c[ClassSucculents] = succulent
	} else {
		c[ClassSucculents] = in.Fixed.Value[ClassSucculents]
	}

	distributeGrasses(&c, in.Fixed, c3, c4)

	if err := rescale(&c, in.Fixed, in.FillWithBare); err != nil {
		return c, toL1(c), warnings, err
	}

	return c, toL1(c), warnings, nil
}

// distributeGrasses assigns C3/C4 grass shares. Individual fixed values
// take priority; otherwise, if the caller fixed the combined grass sum
// (spec.md §4.7 "when grasses are fixed to a sum"), the not-fixed grass
// type(s) are rescaled to make C3+C4 equal that sum, proportionally to
// their climate-only estimates -- or split evenly if both climate-only
// estimates are zero, which is the estimGrassSum=0 -> 1 guard of
// spec.md §9 (SW_VegProd.c's fixSumGrasses): a zero denominator must
// not collapse the rescale to zero, so it is replaced by an equal
// split of the fixed sum instead.
func distributeGrasses(c *L0Composition, fixed Fixed, c3, c4 float64) {
	fixedC3, fixedC4 := fixed.Set[ClassC3Grass], fixed.Set[ClassC4Grass]
	switch {
	case fixedC3 && fixedC4:
		c[ClassC3Grass] = fixed.Value[ClassC3Grass]
		c[ClassC4Grass] = fixed.Value[ClassC4Grass]
	case fixedC3:
		c[ClassC3Grass] = fixed.Value[ClassC3Grass]
		if fixed.GrassSumSet {
			c[ClassC4Grass] = math.Max(0, fixed.GrassSum-c[ClassC3Grass])
		} else {
			c[ClassC4Grass] = c4
		}
	case fixedC4:
		c[ClassC4Grass] = fixed.Value[ClassC4Grass]
		if fixed.GrassSumSet {
			c[ClassC3Grass] = math.Max(0, fixed.GrassSum-c[ClassC4Grass])
		} else {
			c[ClassC3Grass] = c3
		}
	case fixed.GrassSumSet:
		estimGrassSum := c3 + c4
		if estimGrassSum == 0 {
			c[ClassC3Grass] = fixed.GrassSum / 2
			c[ClassC4Grass] = fixed.GrassSum / 2
		} else {
			scale := fixed.GrassSum / estimGrassSum
			c[ClassC3Grass] = c3 * scale
			c[ClassC4Grass] = c4 * scale
		}
	default:
		c[ClassC3Grass] = c3
		c[ClassC4Grass] = c4
	}
}

// rescale renormalizes cover to sum to 1 while preserving fixed inputs.
// If the free classes sum to zero, fillWithBare is set and bare ground
// is not fixed, bare ground absorbs the remainder; otherwise
// Underdetermined is reported.
func rescale(c *L0Composition, fixed Fixed, fillWithBare bool) error {
	var fixedSum, freeSum float64
	free := make([]int, 0, NumClasses)
	for i := Class(0); i < NumClasses; i++ {
		if fixed.Set[i] {
			fixedSum += c[i]
		} else {
			freeSum += c[i]
			free = append(free, int(i))
		}
	}

	remainder := 1 - fixedSum
	if freeSum <= 0 {
		if fillWithBare && !fixed.Set[ClassBareGround] {
			c[ClassBareGround] = remainder
			return nil
		}
		return fmt.Errorf("vegetation: estimator returned all zeros and bare ground cannot absorb the remainder (Underdetermined)")
	}

	values := make([]float64, len(free))
	for i, idx := range free {
		values[i] = c[idx]
	}
	floats.Scale(remainder/freeSum, values)
	for i, idx := range free {
		c[idx] = values[i]
	}
	return nil
}

func toL1(c L0Composition) L1Composition {
	return L1Composition{
		Trees:           c[ClassTrees],
		Shrubs:          c[ClassShrubs],
		ForbsSucculents: c[ClassForbs] + c[ClassSucculents],
		Grasses:         c[ClassC3Grass] + c[ClassC4Grass] + c[ClassAnnualGrass],
		Bare:            c[ClassBareGround],
	}
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
