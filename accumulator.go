// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"github.com/xtal-go/xtal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// accumulator holds the atoms placed so far within one structure
// attempt. clone supports snapshot/reset: a failed species rolls the
// whole attempt back to its state before the first species started
// placing, so the next attempt starts again from the first species.
type accumulator struct {
	frac    []r3.Vec
	tol     []float64
	species []string
	z       []int
}

func (a *accumulator) clone() *accumulator {
	return &accumulator{
		frac:    append([]r3.Vec(nil), a.frac...),
		tol:     append([]float64(nil), a.tol...),
		species: append([]string(nil), a.species...),
		z:       append([]int(nil), a.z...),
	}
}

func (a *accumulator) add(points []r3.Vec, symbol string, z int, tol float64) {
	for _, p := range points {
		a.frac = append(a.frac, p)
		a.tol = append(a.tol, tol)
		a.species = append(a.species, symbol)
		a.z = append(a.z, z)
	}
}

// checkDistance reports whether every point in newPoints clears its
// combined tolerance against every already-accepted point in acc. Only
// the cross terms between the two sets are checked: points within either
// set were already validated when they were accepted.
func checkDistance(acc *accumulator, newPoints []r3.Vec, newTol float64, L *geom.Lattice, pbc [3]bool) bool {
	for _, np := range newPoints {
		for i, ep := range acc.frac {
			diff := r3.Vec{X: np.X - ep.X, Y: np.Y - ep.Y, Z: np.Z - ep.Z}
			if geom.Distance(diff, L, pbc) < acc.tol[i]+newTol {
				return false
			}
		}
	}
	return true
}
