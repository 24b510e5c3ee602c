// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"context"
	"math"
	"testing"

	"github.com/xtal-go/xtal/element"
	"github.com/xtal-go/xtal/symmetry"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

func identityOp() symmetry.Op {
	return symmetry.Op{Rot: r3.NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), Trans: r3.Vec{}}
}

func originOp() symmetry.Op {
	return symmetry.Op{Rot: r3.NewMat(nil), Trans: r3.Vec{}}
}

func fixedOp(t r3.Vec) symmetry.Op {
	return symmetry.Op{Rot: r3.NewMat(nil), Trans: t}
}

// generalPositionTable is a single-atom-per-cell group 1 analog: one
// Wyckoff position of multiplicity 1 carrying full positional freedom,
// fixed only by the identity.
func generalPositionTable() symmetry.Table {
	wp := symmetry.WyckoffPosition{Ops: []symmetry.Op{identityOp()}}
	return symmetry.Table{
		Wyckoffs:          []symmetry.WyckoffPosition{wp},
		WyckoffsOrganized: [][]symmetry.WyckoffPosition{{wp}},
		SiteSymmetry:      [][]symmetry.Op{{identityOp()}},
		CellSize:          1,
	}
}

// rockSaltTable has two distinct mult-4 fixed-point positions (no
// freedom), loosely grounded on the sg=225 rock-salt arrangement (NaCl):
// the FCC translation set at the origin, and the same set offset to the
// octahedral hole.
func rockSaltTable() symmetry.Table {
	fcc := []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 0.5, Z: 0}, {X: 0.5, Y: 0, Z: 0.5}, {X: 0, Y: 0.5, Z: 0.5}}
	var aOps, bOps []symmetry.Op
	for _, t := range fcc {
		aOps = append(aOps, fixedOp(t))
		bOps = append(bOps, fixedOp(r3.Vec{X: t.X + 0.5, Y: t.Y + 0.5, Z: t.Z + 0.5}))
	}
	a := symmetry.WyckoffPosition{Ops: aOps}
	b := symmetry.WyckoffPosition{Ops: bOps}
	return symmetry.Table{
		Wyckoffs:          []symmetry.WyckoffPosition{a, b},
		WyckoffsOrganized: [][]symmetry.WyckoffPosition{{a, b}},
		SiteSymmetry:      [][]symmetry.Op{{identityOp()}, {identityOp()}},
		CellSize:          1,
	}
}

func hydrogen() element.Species {
	return element.Species{Symbol: "H", CovalentRadius: 0.31, VanDerWaals: 1.2, Z: 1}
}

func sodium() element.Species {
	return element.Species{Symbol: "Na", CovalentRadius: 1.66, VanDerWaals: 2.27, Z: 11}
}

func chlorine() element.Species {
	return element.Species{Symbol: "Cl", CovalentRadius: 1.02, VanDerWaals: 1.75, Z: 17}
}

func TestGenerateSingleAtomGeneralPosition(t *testing.T) {
	g := symmetry.Group{Number: 1, Dim: symmetry.Dim3D, PBC: [3]bool{true, true, true}}
	table := generalPositionTable()
	src := rand.NewSource(1)

	c, err := Generate(context.Background(), src, g, table, []element.Species{hydrogen()}, []int{1}, 200.0, DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !c.Valid {
		t.Fatal("expected a valid crystal")
	}
	if len(c.Frac) != 1 || c.Species[0] != "H" || c.Z[0] != 1 {
		t.Errorf("unexpected output: %+v", c)
	}
}

func TestGenerateInfeasibleReturnsError(t *testing.T) {
	g := symmetry.Group{Number: 225, Dim: symmetry.Dim3D, PBC: [3]bool{true, true, true}}
	table := rockSaltTable() // smallest multiplicity is 4

	_, err := Generate(context.Background(), rand.NewSource(1), g, table, []element.Species{chlorine()}, []int{3}, 1.0, DefaultParams())
	if err != ErrInfeasible {
		t.Errorf("got %v, want ErrInfeasible", err)
	}
}

func TestGenerateTwoSpeciesOnDistinctFixedPositions(t *testing.T) {
	g := symmetry.Group{Number: 225, Dim: symmetry.Dim3D, PBC: [3]bool{true, true, true}}
	table := rockSaltTable()
	species := []element.Species{sodium(), chlorine()}
	numIons := []int{4, 4}

	c, err := Generate(context.Background(), rand.NewSource(225), g, table, species, numIons, 1.0, DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(c.Frac) != 8 {
		t.Fatalf("expected 8 placed atoms, got %d", len(c.Frac))
	}
	var nNa, nCl int
	for _, s := range c.Species {
		switch s {
		case "Na":
			nNa++
		case "Cl":
			nCl++
		}
	}
	if nNa != 4 || nCl != 4 {
		t.Errorf("species counts = Na:%d Cl:%d, want 4 and 4", nNa, nCl)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	g := symmetry.Group{Number: 1, Dim: symmetry.Dim3D, PBC: [3]bool{true, true, true}}
	table := generalPositionTable()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, rand.NewSource(1), g, table, []element.Species{hydrogen()}, []int{1}, 1.0, DefaultParams())
	if err != ErrCancelled {
		t.Errorf("got %v, want ErrCancelled", err)
	}
}

func TestGenerate2DAddsVacuumAlongNonPeriodicAxis(t *testing.T) {
	g := symmetry.Group{Number: 50, Dim: symmetry.Dim2D, PBC: [3]bool{true, true, false}}
	table := generalPositionTable()
	p := DefaultParams()
	p.Thickness = 5
	p.VacuumThickness = 10
	p.MinVec = 0.5

	c, err := Generate(context.Background(), rand.NewSource(50), g, table, []element.Species{hydrogen()}, []int{1}, 50.0, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got, want := c.Lattice.Params[2], 15.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("padded c-axis length = %v, want %v", got, want)
	}
}

func TestGenerate1DAddsVacuumAlongNonPeriodicAxes(t *testing.T) {
	g := symmetry.Group{Number: 30, Dim: symmetry.Dim1D, PBC: [3]bool{false, false, true}}
	table := generalPositionTable()
	p := DefaultParams()
	p.Area = 4
	p.VacuumThickness = 10
	p.MinVec = 0.1

	c, err := Generate(context.Background(), rand.NewSource(30), g, table, []element.Species{hydrogen()}, []int{1}, 10.0, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := math.Sqrt(p.Area) + p.VacuumThickness
	if got := c.Lattice.Params[0]; math.Abs(got-want) > 1e-6 {
		t.Errorf("padded a-axis length = %v, want %v", got, want)
	}
	if got := c.Lattice.Params[1]; math.Abs(got-want) > 1e-6 {
		t.Errorf("padded b-axis length = %v, want %v", got, want)
	}
}
