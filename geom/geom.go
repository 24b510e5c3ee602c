// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the geometry primitives the core is built on:
// lattice-parameter/matrix conversion, minimum-image distance under
// periodic boundary conditions, and the bounded-rejection random
// samplers used to seed lattices.
package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDomain is returned by Para2Matrix when the supplied parameters do
// not realize a valid cell (the radicand for the third lattice vector's
// height would be negative).
var ErrDomain = errors.New("geom: lattice parameters do not realize a valid cell")

// TriangularForm selects which triangular realization Para2Matrix
// produces.
type TriangularForm int

const (
	Lower TriangularForm = iota
	Upper
)

// Lattice holds the two equivalent views of a unit cell: the parametric
// 6-tuple (a, b, c, α, β, γ) and the 3×3 matrix whose rows are the
// lattice vectors. The two are kept consistent by construction; callers
// should not mutate Matrix independently of Params.
type Lattice struct {
	Params [6]float64 // a, b, c (Å), alpha, beta, gamma (radians)
	Matrix *mat.Dense // 3x3, rows are lattice vectors a, b, c
}

// NewLattice builds a Lattice from a parameter 6-tuple using the
// lower-triangular realization.
func NewLattice(p [6]float64) (*Lattice, error) {
	m, err := Para2Matrix(p, Lower)
	if err != nil {
		return nil, err
	}
	return &Lattice{Params: p, Matrix: m}, nil
}

// Volume returns the unit cell volume, det(Matrix).
func (l *Lattice) Volume() float64 {
	return mat.Det(l.Matrix)
}

// Para2Matrix realizes a lattice-parameter 6-tuple (a, b, c, alpha, beta,
// gamma; angles in radians) as a 3x3 matrix whose determinant equals the
// cell volume. form selects whether a is aligned along x (Lower,
// producing a lower-triangular matrix) or c is aligned along z (Upper).
func Para2Matrix(p [6]float64, form TriangularForm) (*mat.Dense, error) {
	a, b, c := p[0], p[1], p[2]
	alpha, beta, gamma := p[3], p[4], p[5]
	cosAlpha, cosBeta, cosGamma := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
	sinAlpha, sinGamma := math.Sin(alpha), math.Sin(gamma)

	m := mat.NewDense(3, 3, nil)
	switch form {
	case Lower:
		c1 := c * cosBeta
		c2 := (c * (cosAlpha - cosBeta*cosGamma)) / sinGamma
		radicand := c*c - c1*c1 - c2*c2
		if radicand < 0 {
			return nil, ErrDomain
		}
		m.Set(0, 0, a)
		m.Set(1, 0, b*cosGamma)
		m.Set(1, 1, b*sinGamma)
		m.Set(2, 0, c1)
		m.Set(2, 1, c2)
		m.Set(2, 2, math.Sqrt(radicand))
	case Upper:
		a3 := a * cosBeta
		a2 := (a * (cosGamma - cosBeta*cosAlpha)) / sinAlpha
		radicand := a*a - a3*a3 - a2*a2
		if radicand < 0 {
			return nil, ErrDomain
		}
		m.Set(2, 2, c)
		m.Set(1, 2, b*cosAlpha)
		m.Set(1, 1, b*sinAlpha)
		m.Set(0, 2, a3)
		m.Set(0, 1, a2)
		m.Set(0, 0, math.Sqrt(radicand))
	}
	return m, nil
}

// Matrix2Para is the inverse of Para2Matrix: given a 3x3 matrix whose
// rows are lattice vectors, returns the (a, b, c, alpha, beta, gamma)
// 6-tuple (angles in radians). It recovers the parameters from vector
// norms and angles directly, so it is exact regardless of which
// triangular form produced the matrix.
func Matrix2Para(m *mat.Dense) [6]float64 {
	rowA := r3.Vec{X: m.At(0, 0), Y: m.At(0, 1), Z: m.At(0, 2)}
	rowB := r3.Vec{X: m.At(1, 0), Y: m.At(1, 1), Z: m.At(1, 2)}
	rowC := r3.Vec{X: m.At(2, 0), Y: m.At(2, 1), Z: m.At(2, 2)}

	a := norm(rowA)
	b := norm(rowB)
	c := norm(rowC)
	return [6]float64{
		a, b, c,
		angleBetween(rowB, rowC),
		angleBetween(rowA, rowC),
		angleBetween(rowA, rowB),
	}
}

func norm(v r3.Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func dot(u, v r3.Vec) float64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

func angleBetween(u, v r3.Vec) float64 {
	cosTheta := dot(u, v) / (norm(u) * norm(v))
	// guard floating round-off pushing |cosTheta| fractionally over 1.
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta)
}

// frac2cart converts a fractional coordinate to Cartesian space under L.
func frac2cart(v r3.Vec, L *Lattice) r3.Vec {
	rowA := r3.Vec{X: L.Matrix.At(0, 0), Y: L.Matrix.At(0, 1), Z: L.Matrix.At(0, 2)}
	rowB := r3.Vec{X: L.Matrix.At(1, 0), Y: L.Matrix.At(1, 1), Z: L.Matrix.At(1, 2)}
	rowC := r3.Vec{X: L.Matrix.At(2, 0), Y: L.Matrix.At(2, 1), Z: L.Matrix.At(2, 2)}
	return r3.Vec{
		X: v.X*rowA.X + v.Y*rowB.X + v.Z*rowC.X,
		Y: v.X*rowA.Y + v.Y*rowB.Y + v.Z*rowC.Y,
		Z: v.X*rowA.Z + v.Y*rowB.Z + v.Z*rowC.Z,
	}
}

// Distance computes the minimum-image length of the fractional
// displacement v under lattice L, scanning the images along axes marked
// periodic in pbc (non-periodic axes are not replicated).
func Distance(v r3.Vec, L *Lattice, pbc [3]bool) float64 {
	best := math.Inf(1)
	shifts := [3][]float64{{0}, {0}, {0}}
	for axis, periodic := range pbc {
		if periodic {
			shifts[axis] = []float64{-1, 0, 1}
		}
	}
	for _, dx := range shifts[0] {
		for _, dy := range shifts[1] {
			for _, dz := range shifts[2] {
				shifted := r3.Vec{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
				d := norm(frac2cart(shifted, L))
				if d < best {
					best = d
				}
			}
		}
	}
	return best
}

// DistanceMatrix returns the pairwise minimum-image distances between
// fractional point sets a and b under lattice L.
func DistanceMatrix(a, b []r3.Vec, L *Lattice, pbc [3]bool) *mat.Dense {
	d := mat.NewDense(len(a), len(b), nil)
	for i, pi := range a {
		for j, pj := range b {
			diff := r3.Vec{X: pj.X - pi.X, Y: pj.Y - pi.Y, Z: pj.Z - pi.Z}
			d.Set(i, j, Distance(diff, L, pbc))
		}
	}
	return d
}
