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

// Package climate summarizes a multi-year daily weather record into
// annual and long-term climate statistics, per spec.md §4.8.
package climate

import (
	"github.com/GaryBoone/GoStats/stats"
)

// YearSummary is one year's climate summary, per spec.md §3 "Climate
// summary".
type YearSummary struct {
	Year int

	MAT float64 // mean annual temperature, deg C
	MAP float64 // mean annual precipitation, cm

	MonthlyMeanT, MonthlyMaxT, MonthlyMinT [12]float64
	MonthlyP                               [12]float64

	SeventhMonthPPT float64 // July PPT (N hemisphere) or January (S)
	SeventhMonthTmin float64

	DriestQuarterMeanT float64

	// FebruaryEquivalentTmin is the mean (not min) daily Tmin over the
	// "2nd month" of the hemisphere-aligned year: February in the N
	// hemisphere, August in the S (the month following the July-June
	// shifted year's start), per SW_Weather.c's minTemp2ndMon_C.
	FebruaryEquivalentTmin float64

	DegreeDaysAbove65F float64
	LongestFrostFreeRun int
}

// Hemisphere selects which calendar alignment the "7th month" and
// driest-quarter windows use.
type Hemisphere int

const (
	North Hemisphere = iota
	South
)

// DailyInput is the minimal daily weather the summarizer needs: Tmax,
// Tmin, PPT [cm].
type DailyInput struct {
	Tmax, Tmin, PPT float64
}

// Summarize computes one YearSummary from a year's 365/366 daily
// values, using hemisphere to select the "7th month" and driest-quarter
// windows (spec.md §4.8).
func Summarize(year int, days []DailyInput, hemi Hemisphere) YearSummary {
	s := YearSummary{Year: year}

	nDays := len(days)
	monthLen := float64(nDays) / 12.0

	var monthlyTSum, monthlyCount [12]float64
	var monthlyTminSum [12]float64
	var matSum, mapSum float64
	frostRun, bestRun := 0, 0
	dd65 := 0.0

	for i, d := range days {
		month := int(float64(i) / monthLen)
		if month > 11 {
			month = 11
		}
		tavg := (d.Tmax + d.Tmin) / 2
		monthlyTSum[month] += tavg
		monthlyCount[month]++
		if d.Tmax > s.MonthlyMaxT[month] || monthlyCount[month] == 1 {
			s.MonthlyMaxT[month] = d.Tmax
		}
		if d.Tmin < s.MonthlyMinT[month] || monthlyCount[month] == 1 {
			s.MonthlyMinT[month] = d.Tmin
		}
		monthlyTminSum[month] += d.Tmin
		s.MonthlyP[month] += d.PPT

		matSum += tavg
		mapSum += d.PPT

		tF := tavg*9/5 + 32
		if tF > 65 {
			dd65 += tF - 65
		}

		if d.Tmin > 0 {
			frostRun++
			if frostRun > bestRun {
				bestRun = frostRun
			}
		} else {
			frostRun = 0
		}
	}

	for m := 0; m < 12; m++ {
		if monthlyCount[m] > 0 {
			s.MonthlyMeanT[m] = monthlyTSum[m] / monthlyCount[m]
		}
	}
	s.MAT = matSum / float64(nDays)
	s.MAP = mapSum
	s.DegreeDaysAbove65F = dd65
	s.LongestFrostFreeRun = bestRun

	seventhMonth := 6 // July, 0-based
	if hemi == South {
		seventhMonth = 0 // January
	}
	s.SeventhMonthPPT = s.MonthlyP[seventhMonth]
	s.SeventhMonthTmin = s.MonthlyMinT[seventhMonth]

	secondMonth := 1 // February, 0-based
	if hemi == South {
		secondMonth = 7 // August
	}
	if monthlyCount[secondMonth] > 0 {
		s.FebruaryEquivalentTmin = monthlyTminSum[secondMonth] / monthlyCount[secondMonth]
	}

	s.DriestQuarterMeanT = driestQuarterMeanT(s.MonthlyP, s.MonthlyMeanT, hemi)

	return s
}

// driestQuarterMeanT finds the 3-consecutive-month window (rolling
// over the 12 months, shifted to a July-June year in the S hemisphere)
// with the least precipitation and returns its mean temperature.
func driestQuarterMeanT(monthlyP, monthlyMeanT [12]float64, hemi Hemisphere) float64 {
	offset := 0
	if hemi == South {
		offset = 6
	}
	bestSum := -1.0
	bestT := 0.0
	for start := 0; start < 12; start++ {
		sum := 0.0
		tsum := 0.0
		for k := 0; k < 3; k++ {
			m := (start + offset + k) % 12
			sum += monthlyP[m]
			tsum += monthlyMeanT[m]
		}
		if bestSum < 0 || sum < bestSum {
			bestSum = sum
			bestT = tsum / 3
		}
	}
	return bestT
}

// LongTerm is the long-term average climate across all years, plus the
// standard deviations of the C4-trio and cheatgrass-trio variables.
type LongTerm struct {
	MAT, MAP float64

	C4TrioMean   [3]float64 // July Tmin, degree-days>65F, frost-free days
	C4TrioStdDev [3]float64

	CheatgrassTrioMean   [3]float64 // 7th-month PPT, driest-quarter mean T, February-equivalent Tmin
	CheatgrassTrioStdDev [3]float64
}

// Average reduces a slice of YearSummary to long-term climate,
// computing standard deviations for the C4 and cheatgrass trios via
// GaryBoone/GoStats.
func Average(years []YearSummary) LongTerm {
	var lt LongTerm
	n := len(years)
	if n == 0 {
		return lt
	}

	var matSum, mapSum float64
	julyTmin := make([]float64, n)
	dd65 := make([]float64, n)
	frostFree := make([]float64, n)
	seventhPPT := make([]float64, n)
	driestQ := make([]float64, n)
	febTmin := make([]float64, n)

	for i, y := range years {
		matSum += y.MAT
		mapSum += y.MAP
		julyTmin[i] = y.SeventhMonthTmin
		dd65[i] = y.DegreeDaysAbove65F
		frostFree[i] = float64(y.LongestFrostFreeRun)
		seventhPPT[i] = y.SeventhMonthPPT
		driestQ[i] = y.DriestQuarterMeanT
		febTmin[i] = y.FebruaryEquivalentTmin
	}

	lt.MAT = matSum / float64(n)
	lt.MAP = mapSum / float64(n)

	lt.C4TrioMean = [3]float64{mean(julyTmin), mean(dd65), mean(frostFree)}
	lt.C4TrioStdDev = [3]float64{stddev(julyTmin), stddev(dd65), stddev(frostFree)}

	// Cheatgrass trio per spec.md §3: 7th-month PPT, driest-quarter mean
	// T, and February-equivalent Tmin (SW_Weather.c's PPT7thMon_mm,
	// meanTempDriestQtr_C, minTemp2ndMon_C).
	lt.CheatgrassTrioMean = [3]float64{mean(seventhPPT), mean(driestQ), mean(febTmin)}
	lt.CheatgrassTrioStdDev = [3]float64{stddev(seventhPPT), stddev(driestQ), stddev(febTmin)}

	return lt
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stats.StatsMean(xs)
}

func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stats.StatsSampleStandardDeviation(xs)
}
