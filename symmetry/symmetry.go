// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symmetry declares the interface the core uses to look up
// Wyckoff-position tables for a space, layer, or Rod group. Like package
// element, it is an opaque external collaborator: this module never
// ships group-number-to-Wyckoff-table data, only the shapes the core
// expects that data in.
package symmetry

import "gonum.org/v1/gonum/spatial/r3"

// Dimension tags which family a group number refers to.
type Dimension int

const (
	Dim3D Dimension = iota // space group, 1..230
	Dim2D                  // layer group, 1..80
	Dim1D                  // Rod group, 1..75
)

// Group identifies a symmetry group and the periodic axes it acts on.
type Group struct {
	Number int
	Dim    Dimension

	// PBC marks which of the three axes are periodic. 3D groups have all
	// three; 2D groups leave one (conventionally the third) open; 1D
	// groups leave two open.
	PBC [3]bool
}

// Op is a single affine symmetry operation: a 3×3 rotation (which may be
// improper, i.e. include inversions or mirrors) plus a translation,
// acting on fractional coordinates as Rot·p + Trans.
//
// Operations are kept as explicit (rotation, translation) data, not as an
// opaque transform, because the core needs to inspect the rotation part
// directly (HasFreedom, site-symmetry matching).
type Op struct {
	Rot   *r3.Mat
	Trans r3.Vec
}

// Operate applies the operation to a fractional-coordinate point.
func (o Op) Operate(p r3.Vec) r3.Vec {
	return o.Rot.MulVec(p).Add(o.Trans)
}

// IsZeroRotation reports whether o's rotation part is the zero matrix,
// meaning every point maps to the same fixed translation regardless of p.
func (o Op) IsZeroRotation() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if o.Rot.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// WyckoffPosition is an ordered list of affine operations acting on
// fractional coordinates. Multiplicity is len(Ops).
type WyckoffPosition struct {
	Ops []Op
}

// Multiplicity returns the number of operations (and hence orbit points)
// in w.
func (w WyckoffPosition) Multiplicity() int { return len(w.Ops) }

// HasFreedom reports whether w's representative operation carries
// positional freedom, i.e. its first operation's rotation is not the
// zero matrix.
func (w WyckoffPosition) HasFreedom() bool {
	if len(w.Ops) == 0 {
		return false
	}
	return !w.Ops[0].IsZeroRotation()
}

// Table is everything the core needs about one group's Wyckoff positions.
type Table struct {
	// Wyckoffs lists every Wyckoff position in canonical order, largest
	// multiplicity last.
	Wyckoffs []WyckoffPosition

	// WyckoffsOrganized groups Wyckoffs by multiplicity, largest-first;
	// each inner slice holds the WPs sharing one multiplicity.
	WyckoffsOrganized [][]WyckoffPosition

	// SiteSymmetry is parallel to Wyckoffs: the fixing subgroup of each
	// WP's representative point.
	SiteSymmetry [][]Op

	// CellSize is the conventional-to-primitive atom count multiplier:
	// 1 for P, 2 for A/B/C/I, 3 for R, 4 for F.
	CellSize int
}

// Source answers Wyckoff-table lookups for a given group.
type Source interface {
	Table(g Group) (Table, error)
}
