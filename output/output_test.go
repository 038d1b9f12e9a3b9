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

package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestAggregatorMonthlyFlush(t *testing.T) {
	a := NewAggregator(Monthly)
	for doy := 1; doy <= 65; doy++ {
		a.PushDay(2021, doy, map[string]float64{"PPT": 1}, map[string][]float64{"SWC": {1, 2}})
	}
	rows, lrows := a.Finish()
	if len(rows) < 2 {
		t.Fatalf("expected at least 2 monthly rows, got %d", len(rows))
	}
	if len(lrows) != len(rows) {
		t.Fatalf("regular and layer row counts differ: %d vs %d", len(rows), len(lrows))
	}
}

func TestWriteRegularCSV(t *testing.T) {
	rows := []Row{{Year: 2021, Month: 0, Values: map[string]float64{"PPT": 3.5}}}
	var buf bytes.Buffer
	if err := WriteRegular(&buf, Monthly, rows); err != nil {
		t.Fatalf("WriteRegular: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "PPT") || !strings.Contains(out, "3.5") {
		t.Errorf("CSV missing expected content: %s", out)
	}
}

func TestWriteSoilLayerCSV(t *testing.T) {
	rows := []LayerRow{{Year: 2021, Month: 0, LayerValues: map[string][]float64{"SWC": {1, 2, 3}}}}
	var buf bytes.Buffer
	if err := WriteSoilLayer(&buf, Monthly, rows); err != nil {
		t.Fatalf("WriteSoilLayer: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "SWC_Lyr1") || !strings.Contains(out, "SWC_Lyr3") {
		t.Errorf("CSV missing per-layer headers: %s", out)
	}
}
