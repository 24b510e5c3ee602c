// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice implements a crystal-system-aware lattice sampler:
// given a group number, crystal system, and target volume, it samples a
// 6-tuple (a, b, c, alpha, beta, gamma) satisfying the system's shape
// constraints.
package lattice

import (
	"errors"
	"math"

	"github.com/xtal-go/xtal/geom"
	"golang.org/x/exp/rand"
)

// ErrUnsampleable is returned when the sampler exhausts its attempt
// budget without finding an acceptable parameter tuple.
var ErrUnsampleable = errors.New("lattice: exhausted attempts without a valid cell")

// ErrUnsupported names group/axis combinations this sampler cannot
// realize: a trigonal/hexagonal layer or Rod group whose non-periodic
// axis isn't the conventional one this package assumes. No sampler in
// this package returns it, since Generate2D and Generate1D always use
// the conventional axis.
var ErrUnsupported = errors.New("lattice: unsupported crystal-system/axis combination")

// Params bounds the acceptance predicate shared by all three samplers.
type Params struct {
	MinVec      float64 // minimum edge length, Å
	MinAngle    float64 // minimum angle, radians
	MaxRatio    float64 // maximum pairwise edge-length ratio
	MaxAttempts int     // sampler retry budget
}

// DefaultParams returns the package's default acceptance bounds.
func DefaultParams() Params {
	return Params{
		MinVec:      1.0,
		MinAngle:    math.Pi / 6,
		MaxRatio:    10,
		MaxAttempts: 100,
	}
}

func accept(a, b, c, alpha, beta, gamma float64, p Params) bool {
	maxAngle := math.Pi - p.MinAngle
	maxVec := (a * b * c) / (p.MinVec * p.MinVec)
	smallVec := math.Min(a*math.Cos(math.Max(beta, gamma)),
		math.Min(b*math.Cos(math.Max(alpha, gamma)), c*math.Cos(math.Max(alpha, beta))))
	return a > p.MinVec && b > p.MinVec && c > p.MinVec &&
		a < maxVec && b < maxVec && c < maxVec &&
		smallVec < p.MinVec &&
		alpha > p.MinAngle && beta > p.MinAngle && gamma > p.MinAngle &&
		alpha < maxAngle && beta < maxAngle && gamma < maxAngle &&
		a/b < p.MaxRatio && a/c < p.MaxRatio && b/c < p.MaxRatio &&
		b/a < p.MaxRatio && c/a < p.MaxRatio && c/b < p.MaxRatio
}

func cbrt(x float64) float64 { return math.Cbrt(x) }

// Generate3D samples a lattice for a 3D space group, sg in 1..230.
func Generate3D(src rand.Source, sg int, volume float64, p Params) ([6]float64, error) {
	maxAngle := math.Pi - p.MinAngle
	for n := 0; n < p.MaxAttempts; n++ {
		var a, b, c, alpha, beta, gamma float64
		switch {
		case sg <= 2: // triclinic
			mat := geom.RandomShearMatrix(src, 0.2)
			para := geom.Matrix2Para(mat)
			alpha, beta, gamma = para[3], para[4], para[5]
			x := math.Sqrt(1 - sq(math.Cos(alpha)) - sq(math.Cos(beta)) - sq(math.Cos(gamma)) +
				2*math.Cos(alpha)*math.Cos(beta)*math.Cos(gamma))
			vec := geom.RandomVector(src)
			abc := volume / x
			xyz := vec.X * vec.Y * vec.Z
			a = vec.X * cbrt(abc) / cbrt(xyz)
			b = vec.Y * cbrt(abc) / cbrt(xyz)
			c = vec.Z * cbrt(abc) / cbrt(xyz)
		case sg <= 15: // monoclinic
			alpha, gamma = math.Pi/2, math.Pi/2
			beta = geom.Gaussian(src, p.MinAngle, maxAngle, 3)
			x := math.Sin(beta)
			vec := geom.RandomVector(src)
			xyz := vec.X * vec.Y * vec.Z
			abc := volume / x
			a = vec.X * cbrt(abc) / cbrt(xyz)
			b = vec.Y * cbrt(abc) / cbrt(xyz)
			c = vec.Z * cbrt(abc) / cbrt(xyz)
		case sg <= 74: // orthorhombic
			alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/2
			vec := geom.RandomVector(src)
			xyz := vec.X * vec.Y * vec.Z
			abc := volume
			a = vec.X * cbrt(abc) / cbrt(xyz)
			b = vec.Y * cbrt(abc) / cbrt(xyz)
			c = vec.Z * cbrt(abc) / cbrt(xyz)
		case sg <= 142: // tetragonal
			alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/2
			vec := geom.RandomVector(src)
			c = vec.Z / (vec.X * vec.Y) * cbrt(volume)
			a = math.Sqrt(volume / c)
			b = a
		case sg <= 194: // trigonal/hexagonal
			alpha, beta, gamma = math.Pi/2, math.Pi/2, 2*math.Pi/3
			x := math.Sqrt(3.) / 2.
			vec := geom.RandomVector(src)
			c = vec.Z / (vec.X * vec.Y) * cbrt(volume/x)
			a = math.Sqrt((volume / x) / c)
			b = a
		default: // cubic
			alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/2
			s := math.Cbrt(volume)
			a, b, c = s, s, s
		}
		if accept(a, b, c, alpha, beta, gamma, p) {
			return [6]float64{a, b, c, alpha, beta, gamma}, nil
		}
	}
	return [6]float64{}, ErrUnsampleable
}

func sq(x float64) float64 { return x * x }
