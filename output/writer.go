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
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// timePrefixHeaders returns the time-prefix column names for period,
// per spec.md §6: Year plus Day/Week/Month depending on period.
func timePrefixHeaders(period Period) []string {
	switch period {
	case Daily:
		return []string{"Year", "Day"}
	case Weekly:
		return []string{"Year", "Week"}
	case Monthly:
		return []string{"Year", "Month"}
	default:
		return []string{"Year"}
	}
}

func timePrefixValues(period Period, r Row) []string {
	switch period {
	case Daily:
		return []string{fmt.Sprint(r.Year), fmt.Sprint(r.Day)}
	case Weekly:
		return []string{fmt.Sprint(r.Year), fmt.Sprint(r.Week)}
	case Monthly:
		return []string{fmt.Sprint(r.Year), fmt.Sprint(r.Month)}
	default:
		return []string{fmt.Sprint(r.Year)}
	}
}

// WriteRegular writes the "regular" per-period output file: one column
// per scalar variable, sorted by name for a stable header.
func WriteRegular(w io.Writer, period Period, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	var names []string
	if len(rows) > 0 {
		for k := range rows[0].Values {
			names = append(names, k)
		}
		sort.Strings(names)
	}

	header := append(timePrefixHeaders(period), names...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("output: writing header: %w", err)
	}

	for _, r := range rows {
		rec := timePrefixValues(period, r)
		for _, n := range names {
			rec = append(rec, fmt.Sprintf("%g", r.Values[n]))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("output: writing row: %w", err)
		}
	}
	return cw.Error()
}

// WriteSoilLayer writes the "soil-layer" per-period output file: one
// column per (variable, layer-suffix) pair.
func WriteSoilLayer(w io.Writer, period Period, rows []LayerRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	var names []string
	nLayers := 0
	if len(rows) > 0 {
		for k, v := range rows[0].LayerValues {
			names = append(names, k)
			if len(v) > nLayers {
				nLayers = len(v)
			}
		}
		sort.Strings(names)
	}

	header := timePrefixHeaders(period)
	for _, n := range names {
		for l := 1; l <= nLayers; l++ {
			header = append(header, fmt.Sprintf("%s_Lyr%d", n, l))
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("output: writing header: %w", err)
	}

	for _, r := range rows {
		rec := timePrefixValues(period, Row{Year: r.Year, Day: r.Day, Week: r.Week, Month: r.Month})
		for _, n := range names {
			vals := r.LayerValues[n]
			for l := 0; l < nLayers; l++ {
				v := 0.0
				if l < len(vals) {
					v = vals[l]
				}
				rec = append(rec, fmt.Sprintf("%g", v))
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("output: writing row: %w", err)
		}
	}
	return cw.Error()
}

// MeanSD pairs a mean and standard deviation value, produced when
// aggregating across replicate runs.
type MeanSD struct {
	Mean, SD float64
}

// WriteRegularAggregated writes twin _Mean/_SD columns for each
// variable, per spec.md §6 "Aggregated runs".
func WriteRegularAggregated(w io.Writer, period Period, rows []map[string]MeanSD, times []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	var names []string
	if len(rows) > 0 {
		for k := range rows[0] {
			names = append(names, k)
		}
		sort.Strings(names)
	}

	header := timePrefixHeaders(period)
	for _, n := range names {
		header = append(header, n+"_Mean", n+"_SD")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("output: writing header: %w", err)
	}

	for i, r := range rows {
		rec := timePrefixValues(period, times[i])
		for _, n := range names {
			rec = append(rec, fmt.Sprintf("%g", r[n].Mean), fmt.Sprintf("%g", r[n].SD))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("output: writing row: %w", err)
		}
	}
	return cw.Error()
}
