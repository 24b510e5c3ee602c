// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"context"
	"fmt"
	"math"

	"github.com/xtal-go/xtal/compat"
	"github.com/xtal-go/xtal/element"
	"github.com/xtal-go/xtal/geom"
	"github.com/xtal-go/xtal/lattice"
	"github.com/xtal-go/xtal/merge"
	"github.com/xtal-go/xtal/symmetry"
	"github.com/xtal-go/xtal/wyckoff"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Generate implements the three-level retry-loop driver: outer lattice
// sampling, middle structure attempts with snapshot/reset semantics, and
// an inner per-species Wyckoff-placement loop. table is the
// already-resolved Wyckoff table for g (the symmetry database is an
// external collaborator — callers fetch it via symmetry.Source before
// calling Generate). src is the sole source of randomness; it is never
// read from a package global, so independent calls may run concurrently
// against disjoint sources.
func Generate(ctx context.Context, src rand.Source, g symmetry.Group, table symmetry.Table, species []element.Species, numIons []int, factor float64, p Params) (*Crystal, error) {
	if len(species) != len(numIons) {
		return nil, fmt.Errorf("xtal: species (%d) and numIons (%d) length mismatch", len(species), len(numIons))
	}

	// state INIT -> LATTICE (after compatibility pass).
	verdict, err := compat.Check(table, numIons)
	if err != nil {
		return nil, err
	}
	if verdict == compat.Infeasible {
		return nil, ErrInfeasible
	}
	if verdict == compat.FeasibleRigid {
		p = p.rigidBudget()
	}

	volume := estimateVolume(src, species, numIons, factor)
	lp := p.latticeParams()

	for cycle1 := 0; cycle1 < p.MaxAttempts1; cycle1++ {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		// state LATTICE: sample and realize a candidate cell.
		params6, err := sampleLattice(src, g, volume, p, lp)
		if err != nil {
			return nil, ErrLatticeUnsampleable // sampler exhausted: LATTICE -> EXHAUSTED
		}
		M, err := geom.Para2Matrix(params6, geom.Lower)
		if err != nil {
			continue // domain error aborts only this lattice attempt
		}
		if math.Abs(volume-mat.Det(M)) > 1.0 {
			continue
		}
		L := &geom.Lattice{Params: params6, Matrix: M}

		// state LATTICE -> FILL: attempt structures within this cell.
		acc := &accumulator{}
		accepted := false

		for cycle2 := 0; cycle2 < p.MaxAttempts2; cycle2++ {
			snapshot := acc.clone()
			allPlaced := true

			for si, sp := range species {
				target := numIons[si]
				tol := math.Max(0.5*sp.CovalentRadius, p.TolM)
				placed := 0

				// state FILL <-> MERGE: place one species' atoms.
				for cycle3 := 0; cycle3 < p.MaxAttempts3 && placed < target; cycle3++ {
					wp, ok := chooseWyckoff(src, table.WyckoffsOrganized, target-placed)
					if !ok {
						continue
					}
					point := r3.Vec{X: geom.Uniform(src, 0, 1), Y: geom.Uniform(src, 0, 1), Z: geom.Uniform(src, 0, 1)}
					point = wyckoff.AdjustGenerator(point, g.Dim, g.Number, g.PBC)
					orbit := wyckoff.Expand(wp, point)

					mr, err := merge.Merge(orbit, L, table, tol, g.PBC)
					if err != nil {
						continue // MERGE -> FILL (failed): local retry
					}
					if !checkDistance(acc, mr.Points, tol, L, g.PBC) {
						continue
					}
					acc.add(mr.Points, sp.Symbol, sp.Z, tol)
					placed += len(mr.Points)
				}

				if placed != target {
					allPlaced = false
					break // need to repeat from the first species
				}
			}

			if allPlaced {
				accepted = true // FILL -> ACCEPTED
				break
			}
			acc = snapshot // reset within the same lattice
		}

		if accepted {
			frac, finalM := addVacuum(L.Matrix, acc.frac, g.PBC, p.VacuumThickness)
			return &Crystal{
				Lattice: &geom.Lattice{Params: geom.Matrix2Para(finalM), Matrix: finalM},
				Frac:    frac,
				Species: acc.species,
				Z:       acc.z,
				Valid:   true,
			}, nil
		}
	}

	return nil, ErrPlacementExhausted
}

func sampleLattice(src rand.Source, g symmetry.Group, volume float64, p Params, lp lattice.Params) ([6]float64, error) {
	switch g.Dim {
	case symmetry.Dim2D:
		return lattice.Generate2D(src, g.Number, volume, p.Thickness, lp)
	case symmetry.Dim1D:
		return lattice.Generate1D(src, g.Number, volume, p.Area, lp)
	default:
		return lattice.Generate3D(src, g.Number, volume, lp)
	}
}

// chooseWyckoff picks a Wyckoff position able to host up to remaining
// more atoms. With probability 1/2 it scans organized (largest
// multiplicity first) and returns the first group whose multiplicity
// fits remaining, picking uniformly among same-multiplicity variants;
// otherwise it pools every fitting WP across all multiplicities and
// picks uniformly from the pool. The two strategies bias differently
// toward filling with fewer, larger orbits versus a broader mix.
func chooseWyckoff(src rand.Source, organized [][]symmetry.WyckoffPosition, remaining int) (symmetry.WyckoffPosition, bool) {
	if geom.Uniform(src, 0, 1) > 0.5 {
		for _, group := range organized {
			if len(group) == 0 {
				continue
			}
			if group[0].Multiplicity() <= remaining {
				return group[randIndex(src, len(group))], true
			}
		}
		return symmetry.WyckoffPosition{}, false
	}

	var pool []symmetry.WyckoffPosition
	for _, group := range organized {
		if len(group) == 0 {
			continue
		}
		if group[0].Multiplicity() <= remaining {
			pool = append(pool, group...)
		}
	}
	if len(pool) == 0 {
		return symmetry.WyckoffPosition{}, false
	}
	return pool[randIndex(src, len(pool))], true
}

func randIndex(src rand.Source, n int) int {
	i := int(geom.Uniform(src, 0, float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}
