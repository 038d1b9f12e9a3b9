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

package climate

import "testing"

func constantYear(n int, tmax, tmin, ppt float64) []DailyInput {
	days := make([]DailyInput, n)
	for i := range days {
		days[i] = DailyInput{Tmax: tmax, Tmin: tmin, PPT: ppt}
	}
	return days
}

func TestSummarizeMAT(t *testing.T) {
	s := Summarize(2020, constantYear(365, 20, 10, 0.1), North)
	if diff := s.MAT - 15; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MAT = %g, want 15", s.MAT)
	}
	if diff := s.MAP - 36.5; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("MAP = %g, want 36.5", s.MAP)
	}
}

func TestFebruaryEquivalentTminIsMonthMean(t *testing.T) {
	s := Summarize(2020, constantYear(365, 20, -5, 0.1), North)
	if diff := s.FebruaryEquivalentTmin - (-5); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("FebruaryEquivalentTmin = %g, want -5", s.FebruaryEquivalentTmin)
	}
	sSouth := Summarize(2020, constantYear(365, 20, -5, 0.1), South)
	if diff := sSouth.FebruaryEquivalentTmin - (-5); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("southern FebruaryEquivalentTmin = %g, want -5", sSouth.FebruaryEquivalentTmin)
	}
}

func TestAverageReducesYears(t *testing.T) {
	years := []YearSummary{
		Summarize(2019, constantYear(365, 20, 10, 0.1), North),
		Summarize(2020, constantYear(365, 22, 12, 0.1), North),
	}
	lt := Average(years)
	if diff := lt.MAT - 16; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("long-term MAT = %g, want 16", lt.MAT)
	}
}
