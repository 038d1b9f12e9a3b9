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

import "math/rand/v2"

// RNG wraps a PCG generator seeded with an explicit (state, sequence) pair,
// per spec.md §3 "RNG state": two 64-bit words fully determine the stream,
// and distinct generator roles (weather generator vs. other stochastic
// processes) never share a stream. See original_source/src/rands.c for the
// C implementation this mirrors (pcg_basic's two-word seed API).
type RNG struct {
	seedState, seedSeq uint64
	src                *rand.Rand
}

// NewRNG constructs an RNG deterministically from (seedState, seedSeq).
func NewRNG(seedState, seedSeq uint64) *RNG {
	return &RNG{
		seedState: seedState,
		seedSeq:   seedSeq,
		src:       rand.New(rand.NewPCG(seedState, seedSeq)),
	}
}

// Reseed resets the generator to the start of the deterministic stream
// defined by (seedState, seedSeq), discarding any draws already made.
func (g *RNG) Reseed(seedState, seedSeq uint64) {
	g.seedState, g.seedSeq = seedState, seedSeq
	g.src = rand.New(rand.NewPCG(seedState, seedSeq))
}

// Seed returns the state and sequence this generator was (re)seeded with.
func (g *RNG) Seed() (state, seq uint64) { return g.seedState, g.seedSeq }

// Float64 draws u ~ Uniform[0,1).
func (g *RNG) Float64() float64 { return g.src.Float64() }

// NormalPair draws two independent standard normal deviates from the
// generator's deterministic PCG stream.
func (g *RNG) NormalPair() (z1, z2 float64) {
	return g.src.NormFloat64(), g.src.NormFloat64()
}
