// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian samples a normal distribution centered at (lo+hi)/2 with
// standard deviation (hi-lo)/(2*sigma), rejecting draws outside (lo, hi).
// Terminates with probability 1.
func Gaussian(src rand.Source, lo, hi, sigma float64) float64 {
	center := (lo + hi) / 2
	delta := (hi - lo) / 2
	n := distuv.Normal{Mu: center, Sigma: delta / sigma, Src: src}
	for {
		x := n.Rand()
		if x > lo && x < hi {
			return x
		}
	}
}

// RandomVector returns three independent uniforms in (0, 1], used as
// ratio seeds for lattice edge lengths.
func RandomVector(src rand.Source) r3.Vec {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	v := r3.Vec{}
	for {
		v.X = u.Rand()
		if v.X > 0 {
			break
		}
	}
	for {
		v.Y = u.Rand()
		if v.Y > 0 {
			break
		}
	}
	for {
		v.Z = u.Rand()
		if v.Z > 0 {
			break
		}
	}
	return v
}

// Uniform returns a single draw from Uniform(lo, hi).
func Uniform(src rand.Source, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: src}.Rand()
}

// RandomShearMatrix returns the identity plus small uniform off-diagonal
// entries in (-width, width), used to seed triclinic lattices.
func RandomShearMatrix(src rand.Source, width float64) *mat.Dense {
	u := distuv.Uniform{Min: -width, Max: width, Src: src}
	m := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		m.Set(i, i, 1)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				m.Set(i, j, u.Rand())
			}
		}
	}
	return m
}
