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

package weather

import (
	"strings"
	"testing"
)

func selWithTandPPT() Selection {
	var s Selection
	s.Flags[FieldTmax] = true
	s.Flags[FieldTmin] = true
	s.Flags[FieldPPT] = true
	return s
}

func TestReadYearBasic(t *testing.T) {
	input := "1 10.0 -2.0 0.0\n2 12.0 0.0 5.0\n"
	y, err := ReadYear(strings.NewReader(input), "test.txt", 2021, selWithTandPPT())
	if err != nil {
		t.Fatalf("ReadYear: %v", err)
	}
	if y.Days[0].Tmax != 10.0 || y.Days[0].Tmin != -2.0 {
		t.Errorf("day 1 mismatch: %+v", y.Days[0])
	}
	if y.Days[0].Tavg != 4.0 {
		t.Errorf("Tavg not derived: got %g want 4.0", y.Days[0].Tavg)
	}
}

func TestReadYearMalformed(t *testing.T) {
	input := "1 10.0 -2.0\n" // missing PPT column
	_, err := ReadYear(strings.NewReader(input), "test.txt", 2021, selWithTandPPT())
	if err == nil {
		t.Fatal("expected malformed input error")
	}
}

func TestLOCFImputeFillsGaps(t *testing.T) {
	y := Year{Year: 2021, Days: make([]Day, 3)}
	y.Days[0] = Day{DOY: 1, Tmax: 10, Tmin: 0, PPT: 0}
	y.Days[0].DeriveTavg()
	y.Days[1] = NewMissingDay(2)
	y.Days[2] = NewMissingDay(3)

	if err := LOCFImpute(&y, 5); err != nil {
		t.Fatalf("LOCFImpute: %v", err)
	}
	if y.Days[1].Tmax != 10 || y.Days[1].PPT != 0 {
		t.Errorf("LOCF did not carry forward: %+v", y.Days[1])
	}
}

func TestLOCFImputeExceedsMax(t *testing.T) {
	y := Year{Year: 2021, Days: make([]Day, 3)}
	for i := range y.Days {
		y.Days[i] = NewMissingDay(i + 1)
	}
	if err := LOCFImpute(&y, 1); err == nil {
		t.Fatal("expected error when missing days exceed max")
	}
}

func TestCheckAllWeatherCatchesTminGtTmax(t *testing.T) {
	rec := Record{Years: []Year{{Year: 2021, Days: []Day{{DOY: 1, Tmax: 5, Tmin: 10, PPT: 0}}}}}
	if err := CheckAllWeather(&rec); err == nil {
		t.Fatal("expected violation for Tmin > Tmax")
	}
}
