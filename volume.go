// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"math"

	"github.com/xtal-go/xtal/element"
	"github.com/xtal-go/xtal/geom"
	"golang.org/x/exp/rand"
)

// estimateVolume sums, per species, the volume of numIon spheres of a
// randomly chosen radius between its covalent and van der Waals radii,
// then scales the total by factor to leave packing room.
func estimateVolume(src rand.Source, species []element.Species, numIons []int, factor float64) float64 {
	var volume float64
	for i, sp := range species {
		r := geom.Uniform(src, sp.CovalentRadius, sp.VanDerWaals)
		volume += float64(numIons[i]) * 4.0 / 3.0 * math.Pi * r * r * r
	}
	return factor * volume
}
