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

// Package output aggregates daily simulation results to day/week/month/
// year periods and writes them as CSV, per spec.md §6 "Persistent
// outputs".
package output

// Period identifies an aggregation period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

// Row is one period's regular output row: time prefix plus named
// scalar variables.
type Row struct {
	Year  int
	Day   int // 0 if not applicable to this period
	Week  int
	Month int

	Values map[string]float64
}

// LayerRow is one period's soil-layer output row: time prefix plus one
// value per layer per variable.
type LayerRow struct {
	Year  int
	Day   int
	Week  int
	Month int

	LayerValues map[string][]float64
}

// Aggregator accumulates daily pushes into day/week/month/year rows.
// This type only handles the within-run period reduction; it keeps no
// across-replicate mean or standard-deviation bookkeeping.
type Aggregator struct {
	Period Period

	rows      []Row
	layerRows []LayerRow

	currentYear, currentWeek, currentMonth int
	accum                                  map[string]float64
	layerAccum                             map[string][]float64
	count                                  int
}

// NewAggregator constructs an Aggregator for the given period.
func NewAggregator(period Period) *Aggregator {
	return &Aggregator{
		Period:      period,
		accum:       map[string]float64{},
		layerAccum:  map[string][]float64{},
	}
}

// PushDay adds one day's scalar and per-layer values into the
// aggregator, flushing a completed period row as the period boundary is
// crossed.
func (a *Aggregator) PushDay(year, doy int, scalars map[string]float64, layers map[string][]float64) {
	week := (doy - 1) / 7
	month := monthOf(doy)

	boundaryCrossed := a.count > 0 && (year != a.currentYear ||
		(a.Period == Weekly && week != a.currentWeek) ||
		(a.Period == Monthly && month != a.currentMonth))
	if boundaryCrossed {
		a.flush()
	}
	if a.count == 0 {
		a.currentYear, a.currentWeek, a.currentMonth = year, week, month
	}

	for k, v := range scalars {
		a.accum[k] += v
	}
	for k, v := range layers {
		if a.layerAccum[k] == nil {
			a.layerAccum[k] = make([]float64, len(v))
		}
		for i, x := range v {
			a.layerAccum[k][i] += x
		}
	}
	a.count++

	if a.Period == Daily {
		a.flushWithDOY(doy)
	}
}

func (a *Aggregator) flush() {
	a.flushWithDOY(0)
}

func (a *Aggregator) flushWithDOY(doy int) {
	if a.count == 0 {
		return
	}
	row := Row{Year: a.currentYear, Week: a.currentWeek, Month: a.currentMonth, Day: doy, Values: map[string]float64{}}
	for k, v := range a.accum {
		row.Values[k] = v
	}
	a.rows = append(a.rows, row)

	lrow := LayerRow{Year: a.currentYear, Week: a.currentWeek, Month: a.currentMonth, Day: doy, LayerValues: map[string][]float64{}}
	for k, v := range a.layerAccum {
		cp := make([]float64, len(v))
		copy(cp, v)
		lrow.LayerValues[k] = cp
	}
	a.layerRows = append(a.layerRows, lrow)

	a.accum = map[string]float64{}
	a.layerAccum = map[string][]float64{}
	a.count = 0
}

// Finish flushes any partially accumulated period and returns the
// completed rows.
func (a *Aggregator) Finish() ([]Row, []LayerRow) {
	if a.Period != Daily {
		a.flush()
	}
	return a.rows, a.layerRows
}

func monthOf(doy int) int {
	m := (doy - 1) / 31
	if m > 11 {
		m = 11
	}
	return m
}
