// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPara2MatrixVolume(t *testing.T) {
	cases := []struct {
		name string
		p    [6]float64
	}{
		{"cubic", [6]float64{4, 4, 4, math.Pi / 2, math.Pi / 2, math.Pi / 2}},
		{"orthorhombic", [6]float64{3, 4, 5, math.Pi / 2, math.Pi / 2, math.Pi / 2}},
		{"monoclinic", [6]float64{3, 4, 5, math.Pi / 2, 1.9, math.Pi / 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Para2Matrix(c.p, Lower)
			if err != nil {
				t.Fatalf("Para2Matrix: %v", err)
			}
			a, b, cc := c.p[0], c.p[1], c.p[2]
			alpha, beta, gamma := c.p[3], c.p[4], c.p[5]
			x := math.Sqrt(1 - math.Cos(alpha)*math.Cos(alpha) - math.Cos(beta)*math.Cos(beta) -
				math.Cos(gamma)*math.Cos(gamma) + 2*math.Cos(alpha)*math.Cos(beta)*math.Cos(gamma))
			want := a * b * cc * x
			got := mat.Det(m)
			if !floats.EqualWithinAbsOrRel(got, want, 1e-6, 1e-6) {
				t.Errorf("volume mismatch: got %v want %v", got, want)
			}
		})
	}
}

func TestMatrix2ParaRoundTrip(t *testing.T) {
	p := [6]float64{3.5, 4.1, 5.9, 1.3, 1.4, 1.6}
	m, err := Para2Matrix(p, Lower)
	if err != nil {
		t.Fatalf("Para2Matrix: %v", err)
	}
	got := Matrix2Para(m)
	for i := range p {
		if !floats.EqualWithinAbsOrRel(got[i], p[i], 1e-8, 1e-8) {
			t.Errorf("round trip mismatch at index %d: got %v want %v", i, got[i], p[i])
		}
	}
}

func TestPara2MatrixDomainError(t *testing.T) {
	// Degenerate angles that cannot realize a lower-triangular cell.
	p := [6]float64{1, 1, 1, 0.01, 0.01, math.Pi - 0.01}
	if _, err := Para2Matrix(p, Lower); err != ErrDomain {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestDistancePeriodicWrap(t *testing.T) {
	p := [6]float64{5, 5, 5, math.Pi / 2, math.Pi / 2, math.Pi / 2}
	L, err := NewLattice(p)
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	// 0.9 and 0.0 are 0.5 Å apart through the periodic image, not 4.5 Å.
	v := r3.Vec{X: 0.9, Y: 0, Z: 0}
	d := Distance(v, L, [3]bool{true, true, true})
	if !floats.EqualWithinAbs(d, 0.5, 1e-9) {
		t.Errorf("got %v, want 0.5", d)
	}
}

func TestDistanceNonPeriodicAxisNotWrapped(t *testing.T) {
	p := [6]float64{5, 5, 5, math.Pi / 2, math.Pi / 2, math.Pi / 2}
	L, err := NewLattice(p)
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	v := r3.Vec{X: 0, Y: 0, Z: 0.9}
	d := Distance(v, L, [3]bool{true, true, false})
	if !floats.EqualWithinAbs(d, 4.5, 1e-9) {
		t.Errorf("got %v, want 4.5 (axis 3 must not wrap)", d)
	}
}

func TestGaussianStaysInBounds(t *testing.T) {
	src := rand.NewSource(1)
	for i := 0; i < 1000; i++ {
		x := Gaussian(src, 0.5, 2.5, 3)
		if x <= 0.5 || x >= 2.5 {
			t.Fatalf("Gaussian escaped bounds: %v", x)
		}
	}
}

func TestRandomVectorPositive(t *testing.T) {
	src := rand.NewSource(2)
	for i := 0; i < 1000; i++ {
		v := RandomVector(src)
		if v.X <= 0 || v.Y <= 0 || v.Z <= 0 || v.X > 1 || v.Y > 1 || v.Z > 1 {
			t.Fatalf("RandomVector out of (0,1]: %+v", v)
		}
	}
}

