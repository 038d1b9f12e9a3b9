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

package soilwat

import "math"

// SWMissing is the sentinel used for "no observation" in daily weather and
// radiation-memo fields.
const SWMissing = 999.

// DDelta is the tolerance used for floating-point equality checks on SWC,
// probabilities, and other bounded quantities throughout the engine.
const DDelta = 1e-4

// MaxTranspRegions bounds the number of transpiration regions a site may
// define.
const MaxTranspRegions = 4

// Missing reports whether x is the SWMissing sentinel, within DDelta.
func Missing(x float64) bool {
	return math.Abs(x-SWMissing) < DDelta
}
