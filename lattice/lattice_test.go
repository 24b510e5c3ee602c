// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestGenerate3DAcceptsEverySystem(t *testing.T) {
	p := DefaultParams()
	p.MinVec = 1
	cases := []struct {
		name string
		sg   int
	}{
		{"triclinic", 1},
		{"monoclinic", 5},
		{"orthorhombic", 30},
		{"tetragonal", 100},
		{"trigonal", 160},
		{"cubic", 225},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := rand.NewSource(42)
			got, err := Generate3D(src, c.sg, 200, p)
			if err != nil {
				t.Fatalf("Generate3D(%d): %v", c.sg, err)
			}
			for i := 0; i < 3; i++ {
				if got[i] <= 0 {
					t.Errorf("edge %d non-positive: %v", i, got[i])
				}
			}
			for i := 3; i < 6; i++ {
				if got[i] <= 0 || got[i] >= math.Pi {
					t.Errorf("angle %d out of (0,pi): %v", i, got[i])
				}
			}
		})
	}
}

func TestGenerate3DCubicIsRegular(t *testing.T) {
	p := DefaultParams()
	src := rand.NewSource(7)
	got, err := Generate3D(src, 225, 64, p)
	if err != nil {
		t.Fatalf("Generate3D: %v", err)
	}
	if got[0] != got[1] || got[1] != got[2] {
		t.Errorf("cubic edges not equal: %v", got)
	}
	want := math.Pi / 2
	for _, ang := range got[3:] {
		if ang != want {
			t.Errorf("cubic angle got %v want %v", ang, want)
		}
	}
}

func TestGenerate2DHonorsThickness(t *testing.T) {
	p := DefaultParams()
	p.MinVec = 0.5
	src := rand.NewSource(3)
	got, err := Generate2D(src, 1, 100, 5.0, p)
	if err != nil {
		t.Fatalf("Generate2D: %v", err)
	}
	if got[2] != 5.0 {
		t.Errorf("thickness not honored: got c=%v want 5.0", got[2])
	}
}

func TestGenerate1DPeriodicAxisFromArea(t *testing.T) {
	p := DefaultParams()
	p.MinVec = 0.5
	src := rand.NewSource(4)
	area := 20.0
	volume := 100.0
	got, err := Generate1D(src, 1, volume, area, p)
	if err != nil {
		t.Fatalf("Generate1D: %v", err)
	}
	want := volume / area
	if got[2] != want {
		t.Errorf("periodic axis length got %v want %v", got[2], want)
	}
}

// TestGenerate1DMonoclinicAlphaBugPreserved verifies that, for
// unique-axis-a Rod groups, alpha is never updated from its pi/2
// default.
func TestGenerate1DMonoclinicAlphaBugPreserved(t *testing.T) {
	p := DefaultParams()
	p.MinVec = 0.1
	src := rand.NewSource(9)
	got, err := Generate1D(src, 5, 50, 0, p)
	if err != nil {
		t.Fatalf("Generate1D: %v", err)
	}
	if got[3] != math.Pi/2 {
		t.Errorf("alpha should remain pi/2 under the preserved bug, got %v", got[3])
	}
}

func TestGenerateUnsampleable(t *testing.T) {
	p := DefaultParams()
	p.MaxAttempts = 3
	p.MinVec = 1000 // impossible to satisfy at this volume
	src := rand.NewSource(1)
	_, err := Generate3D(src, 225, 1, p)
	if err != ErrUnsampleable {
		t.Errorf("got %v, want ErrUnsampleable", err)
	}
}
