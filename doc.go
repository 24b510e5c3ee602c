// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xtal generates random atomic crystal structures constrained by
// crystallographic symmetry. Given a space, layer, or Rod group, a list
// of species and target ion counts, and a volume factor, Generate
// samples a lattice and places atoms on the group's Wyckoff positions
// until every species' count is satisfied or the retry budget is
// exhausted.
//
// The symmetry database and periodic-table data are external
// collaborators: see the symmetry and element packages for the
// interfaces this package consumes rather than ships.
package xtal
