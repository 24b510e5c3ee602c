// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"math"

	"github.com/xtal-go/xtal/geom"
	"golang.org/x/exp/rand"
)

// Generate2D samples a lattice for a 2D layer group. The non-periodic
// axis is, by convention, axis 3 ("c"); thickness pins its length (or,
// if thickness <= 0, a thickness is derived from the target volume).
func Generate2D(src rand.Source, num int, volume, thickness float64, p Params) ([6]float64, error) {
	maxAngle := math.Pi - p.MinAngle
	var uniqueAxis byte
	switch {
	case num >= 3 && num <= 7:
		uniqueAxis = 'c'
	case num >= 8 && num <= 18:
		uniqueAxis = 'a'
	}

	for n := 0; n < p.MaxAttempts; n++ {
		var a, b, c float64
		alpha, beta, gamma := math.Pi/2, math.Pi/2, math.Pi/2

		t := thickness
		if t <= 0 {
			v := geom.RandomVector(src)
			t = math.Cbrt(volume) * (v.X / (v.X * v.Y * v.Z))
		}
		c = t

		switch {
		case num <= 2: // triclinic
			mat := geom.RandomShearMatrix(src, 0.2)
			para := geom.Matrix2Para(mat)
			alpha, beta, gamma = para[3], para[4], para[5]
			x := math.Sqrt(1 - sq(math.Cos(alpha)) - sq(math.Cos(beta)) - sq(math.Cos(gamma)) +
				2*math.Cos(alpha)*math.Cos(beta)*math.Cos(gamma))
			ab := volume / (c * x)
			ratio := para[0] / para[1]
			a = math.Sqrt(ab * ratio)
			b = math.Sqrt(ab / ratio)
		case num <= 18: // monoclinic
			vec := geom.RandomVector(src)
			a, b = vec.X, vec.Y
			var x float64
			switch uniqueAxis {
			case 'a':
				alpha = geom.Gaussian(src, p.MinAngle, maxAngle, 3)
				x = math.Sin(alpha)
			case 'c':
				gamma = geom.Gaussian(src, p.MinAngle, maxAngle, 3)
				x = math.Sin(gamma)
			default:
				x = 1
			}
			ab := volume / (c * x)
			ratio := a / b
			a = math.Sqrt(ab * ratio)
			b = math.Sqrt(ab / ratio)
		case num <= 48: // orthorhombic
			vec := geom.RandomVector(src)
			ratio := math.Abs(vec.X / vec.Y)
			b = math.Sqrt(volume / (c * ratio))
			a = b * ratio
		case num <= 64: // tetragonal
			a = math.Sqrt(volume / c)
			b = a
		case num <= 80: // trigonal/hexagonal
			gamma = 2 * math.Pi / 3
			x := math.Sqrt(3.) / 2.
			a = math.Sqrt((volume / x) / c)
			b = a
		}

		if accept(a, b, c, alpha, beta, gamma, p) {
			return [6]float64{a, b, c, alpha, beta, gamma}, nil
		}
	}
	return [6]float64{}, ErrUnsampleable
}
