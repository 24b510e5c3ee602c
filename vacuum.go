// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// addVacuum extends each non-periodic axis by vacuum Å along its own
// direction, embedding a 2D or 1D crystal in a 3D container; fractional
// coordinates are re-expressed in the padded basis. 3D (fully periodic)
// crystals pass through unchanged.
func addVacuum(M *mat.Dense, frac []r3.Vec, pbc [3]bool, vacuum float64) ([][3]float64, *mat.Dense) {
	if pbc[0] && pbc[1] && pbc[2] {
		out := make([][3]float64, len(frac))
		for i, p := range frac {
			out[i] = [3]float64{p.X, p.Y, p.Z}
		}
		return out, M
	}

	rows := [3]r3.Vec{
		{X: M.At(0, 0), Y: M.At(0, 1), Z: M.At(0, 2)},
		{X: M.At(1, 0), Y: M.At(1, 1), Z: M.At(1, 2)},
		{X: M.At(2, 0), Y: M.At(2, 1), Z: M.At(2, 2)},
	}

	abs := make([]r3.Vec, len(frac))
	for i, p := range frac {
		abs[i] = r3.Vec{
			X: p.X*rows[0].X + p.Y*rows[1].X + p.Z*rows[2].X,
			Y: p.X*rows[0].Y + p.Y*rows[1].Y + p.Z*rows[2].Y,
			Z: p.X*rows[0].Z + p.Y*rows[1].Z + p.Z*rows[2].Z,
		}
	}

	for axis := 0; axis < 3; axis++ {
		if pbc[axis] {
			continue
		}
		row := rows[axis]
		n := math.Sqrt(row.X*row.X + row.Y*row.Y + row.Z*row.Z)
		scale := 1 + vacuum/n
		rows[axis] = r3.Vec{X: row.X * scale, Y: row.Y * scale, Z: row.Z * scale}
	}

	newM := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		newM.Set(i, 0, rows[i].X)
		newM.Set(i, 1, rows[i].Y)
		newM.Set(i, 2, rows[i].Z)
	}

	var inv mat.Dense
	if err := inv.Inverse(newM); err != nil {
		inv = *mat.NewDense(3, 3, nil)
	}

	out := make([][3]float64, len(abs))
	for i, a := range abs {
		var v mat.VecDense
		v.MulVec(&inv, mat.NewVecDense(3, []float64{a.X, a.Y, a.Z}))
		out[i] = [3]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
	}
	return out, newM
}
