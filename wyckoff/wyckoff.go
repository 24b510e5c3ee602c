// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wyckoff implements orbit expansion and Wyckoff-position
// identification: expanding a free parameter point into the full orbit
// under a Wyckoff position's operations, canonicalizing orbit points
// into the unit box, and matching a point set back to the Wyckoff
// position (and generator) that produced it.
package wyckoff

import (
	"math"

	"github.com/xtal-go/xtal/symmetry"
	"gonum.org/v1/gonum/spatial/r3"
)

// matchTol is the fractional-coordinate tolerance used when testing
// whether two points coincide modulo lattice translation.
const matchTol = 1e-3

// Expand applies every operation of wp to p, producing the full orbit.
func Expand(wp symmetry.WyckoffPosition, p r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(wp.Ops))
	for i, op := range wp.Ops {
		out[i] = op.Operate(p)
	}
	return out
}

func mod1(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x += 1
	}
	return x
}

// Canonicalize reduces points on periodic axes into [0, 1); non-periodic
// axes are left untouched.
func Canonicalize(points []r3.Vec, pbc [3]bool) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		q := p
		if pbc[0] {
			q.X = mod1(q.X)
		}
		if pbc[1] {
			q.Y = mod1(q.Y)
		}
		if pbc[2] {
			q.Z = mod1(q.Z)
		}
		out[i] = q
	}
	return out
}

// AdjustGenerator applies the dimension-specific recentering of the free
// generator point before orbit expansion. For 2D crystals, axes not in
// pbc are shifted by -1/2 so the generator starts near the cell center
// on the non-periodic (thickness) axis. For 1D crystals the same -1/2
// shift applies for Rod groups below 46; at and above 46 the
// non-periodic axes are instead scaled by 1/sqrt(3), matching the
// narrower non-periodic footprint of the hexagonal-family Rod groups.
func AdjustGenerator(p r3.Vec, dim symmetry.Dimension, groupNumber int, pbc [3]bool) r3.Vec {
	q := p
	switch dim {
	case symmetry.Dim2D:
		if !pbc[0] {
			q.X -= 0.5
		}
		if !pbc[1] {
			q.Y -= 0.5
		}
		if !pbc[2] {
			q.Z -= 0.5
		}
	case symmetry.Dim1D:
		scale := -0.5 // additive shift
		additive := groupNumber < 46
		if !pbc[0] {
			if additive {
				q.X += scale
			} else {
				q.X *= 1 / math.Sqrt(3)
			}
		}
		if !pbc[1] {
			if additive {
				q.Y += scale
			} else {
				q.Y *= 1 / math.Sqrt(3)
			}
		}
		if !pbc[2] {
			if additive {
				q.Z += scale
			} else {
				q.Z *= 1 / math.Sqrt(3)
			}
		}
	}
	return q
}

func periodicEqual(a, b r3.Vec, pbc [3]bool) bool {
	d := r3.Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
	if pbc[0] {
		d.X = mod1(d.X + 0.5) - 0.5
	}
	if pbc[1] {
		d.Y = mod1(d.Y + 0.5) - 0.5
	}
	if pbc[2] {
		d.Z = mod1(d.Z + 0.5) - 0.5
	}
	return math.Abs(d.X) < matchTol && math.Abs(d.Y) < matchTol && math.Abs(d.Z) < matchTol
}

// pointSetsMatch reports whether a and b contain the same points (up to
// periodic translation and reordering).
func pointSetsMatch(a, b []r3.Vec, pbc [3]bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for j, pb := range b {
			if used[j] {
				continue
			}
			if periodicEqual(pa, pb, pbc) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// fixedUnderSiteSymmetry reports whether p is invariant, modulo lattice
// translation, under every operation in ops.
func fixedUnderSiteSymmetry(p r3.Vec, ops []symmetry.Op, pbc [3]bool) bool {
	for _, op := range ops {
		if !periodicEqual(op.Operate(p), p, pbc) {
			return false
		}
	}
	return true
}

// CheckPosition locates the Wyckoff position in table whose orbit of some
// generator point matches points (in any order, modulo lattice
// translation). Ties are broken by table order. ok is false if no
// Wyckoff position matches.
func CheckPosition(points []r3.Vec, table symmetry.Table, pbc [3]bool) (index int, generator r3.Vec, ok bool) {
	for i, wp := range table.Wyckoffs {
		if wp.Multiplicity() != len(points) {
			continue
		}
		for _, candidate := range points {
			orbit := Canonicalize(Expand(wp, candidate), pbc)
			if !pointSetsMatch(orbit, points, pbc) {
				continue
			}
			if i < len(table.SiteSymmetry) && !fixedUnderSiteSymmetry(candidate, table.SiteSymmetry[i], pbc) {
				continue
			}
			return i, candidate, true
		}
	}
	return 0, r3.Vec{}, false
}
