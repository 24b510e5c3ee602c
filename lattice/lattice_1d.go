// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"math"

	"github.com/xtal-go/xtal/geom"
	"golang.org/x/exp/rand"
)

// Generate1D samples a lattice for a 1D Rod group. The periodic axis is,
// by convention, axis 3 ("c"); area pins the cross-sectional area of the
// other two axes (thickness1 = volume/area); if area <= 0 a thickness is
// derived from the target volume.
//
// In the monoclinic unique-axis-a branch (Rod groups 3..7) the sampled
// angle is drawn but never written back into alpha, so alpha stays at
// its pi/2 default and the sin(alpha) scale factor is always 1,
// unconditionally — unlike the unique-axis-c branch, where gamma really
// is updated from its draw.
func Generate1D(src rand.Source, num int, volume, area float64, p Params) ([6]float64, error) {
	maxAngle := math.Pi - p.MinAngle
	var uniqueAxis byte
	switch {
	case num >= 3 && num <= 7:
		uniqueAxis = 'a'
	case num >= 8 && num <= 12:
		uniqueAxis = 'c'
	}

	for n := 0; n < p.MaxAttempts; n++ {
		var a, b, c float64
		alpha, beta, gamma := math.Pi/2, math.Pi/2, math.Pi/2

		t := area
		if t <= 0 {
			v := geom.RandomVector(src)
			t = math.Cbrt(volume) * (v.X / (v.X * v.Y * v.Z))
		} else {
			t = volume / area
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
		case num <= 12: // monoclinic
			vec := geom.RandomVector(src)
			a, b = vec.X, vec.Y
			var x float64
			switch uniqueAxis {
			case 'a':
				// alpha is never updated here, so x = sin(pi/2) = 1
				// unconditionally; the draw still consumes randomness
				// from src so later calls stay aligned to the same seed.
				_ = geom.Gaussian(src, p.MinAngle, maxAngle, 3)
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
		case num <= 22: // orthorhombic
			vec := geom.RandomVector(src)
			ratio := math.Abs(vec.X / vec.Y)
			b = math.Sqrt(volume / (c * ratio))
			a = b * ratio
		case num <= 41: // tetragonal
			a = math.Sqrt(volume / c)
			b = a
		case num <= 75: // trigonal/hexagonal
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
