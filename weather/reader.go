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
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadYear reads one year's whitespace-separated weather file from r,
// selecting columns per sel in the order FieldTmax..FieldShortwave
// (skipping unselected fields), with doy first on every line. Malformed
// lines report the file name and 1-based line number.
func ReadYear(r io.Reader, file string, year int, sel Selection) (Year, error) {
	if err := sel.Validate(); err != nil {
		return Year{}, err
	}

	order := selectedOrder(sel)
	nDays := 365
	if isLeap(year) {
		nDays = 366
	}
	days := make([]Day, nDays)
	for i := range days {
		days[i] = NewMissingDay(i + 1)
	}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 1+len(order) {
			return Year{}, malformed(file, lineno, "expected %d columns, got %d", 1+len(order), len(fields))
		}
		doy, err := strconv.Atoi(fields[0])
		if err != nil {
			return Year{}, malformed(file, lineno, "invalid DOY %q", fields[0])
		}
		if doy < 1 || doy > 366 {
			return Year{}, malformed(file, lineno, "DOY %d out of range [1,366]", doy)
		}
		if doy > nDays {
			return Year{}, malformed(file, lineno, "DOY %d exceeds %d days in year %d", doy, nDays, year)
		}

		d := NewMissingDay(doy)
		var windEast, windNorth, rhMax, rhMin float64
		windEast, windNorth = Missing, Missing
		rhMax, rhMin = Missing, Missing
		var haveWindComponents, haveRHMinMax bool

		for i, f := range order {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return Year{}, malformed(file, lineno, "invalid value %q for field %d", fields[i+1], f)
			}
			switch f {
			case FieldTmax:
				d.Tmax = v
			case FieldTmin:
				d.Tmin = v
			case FieldPPT:
				d.PPT = v
			case FieldCloud:
				d.Cloud = v
			case FieldWindSpeed:
				d.WindSpeed = v
			case FieldWindEast:
				windEast = v
				haveWindComponents = true
			case FieldWindNorth:
				windNorth = v
				haveWindComponents = true
			case FieldRH:
				d.RH = v
			case FieldRHmax:
				rhMax = v
				haveRHMinMax = true
			case FieldRHmin:
				rhMin = v
				haveRHMinMax = true
			case FieldActualVP:
				d.ActualVP = v
			case FieldShortwave:
				d.ShortwaveMJ = v
			}
		}

		d.DeriveTavg()
		if haveWindComponents && !IsMissing(windEast, 1e-4) && !IsMissing(windNorth, 1e-4) {
			d.WindSpeed = math.Hypot(windEast, windNorth)
		}
		if haveRHMinMax && !IsMissing(rhMax, 1e-4) && !IsMissing(rhMin, 1e-4) {
			d.RH = (rhMax + rhMin) / 2
		}

		days[doy-1] = d
	}
	if err := scanner.Err(); err != nil {
		return Year{}, fmt.Errorf("weather: reading %s: %w", file, err)
	}
	return Year{Year: year, Days: days}, nil
}

func selectedOrder(sel Selection) []Field {
	order := make([]Field, 0, NumFields)
	for f := Field(0); f < NumFields; f++ {
		if sel.Flags[f] {
			order = append(order, f)
		}
	}
	return order
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func malformed(file string, line int, format string, args ...interface{}) error {
	return fmt.Errorf("weather: %s:%d: %s", file, line, fmt.Sprintf(format, args...))
}
