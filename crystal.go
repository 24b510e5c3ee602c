// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import "github.com/xtal-go/xtal/geom"

// Crystal is a generated structure: a lattice, the fractional
// coordinates of every atom, and their species.
type Crystal struct {
	Lattice *geom.Lattice
	Frac    [][3]float64
	Species []string
	Z       []int
	Valid   bool
}
