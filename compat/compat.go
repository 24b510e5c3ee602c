// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compat implements a feasibility pre-check: before any lattice
// or structure is sampled, verify that the requested ion counts can be
// built at all from a group's Wyckoff positions, and whether doing so
// requires at least one position with positional freedom.
package compat

import (
	"errors"

	"github.com/xtal-go/xtal/symmetry"
)

// Result is the three-valued compatibility verdict.
type Result int

const (
	// Infeasible means no combination of Wyckoff positions can host the
	// requested ion counts.
	Infeasible Result = iota

	// FeasibleRigid means a combination exists, but every Wyckoff
	// position used is a fixed point (no positional freedom): the
	// driver should spend far fewer attempts per cycle, since the
	// placement has nothing left to search over.
	FeasibleRigid

	// FeasibleWithFreedom means a combination exists that retains at
	// least one Wyckoff position with positional freedom to sample.
	FeasibleWithFreedom
)

// ErrNoWyckoffPositions is returned when table has no organized Wyckoff
// positions to check against.
var ErrNoWyckoffPositions = errors.New("compat: table has no Wyckoff positions")

type slot struct {
	wp      symmetry.WyckoffPosition
	removed bool
}

// Check verifies that every entry of numIons is divisible by the
// smallest multiplicity available in table, then greedily consumes
// Wyckoff positions (largest multiplicity group first, as ordered by
// table.WyckoffsOrganized) until each count is exhausted, removing fixed
// positions once they are spent so no position is reused across species.
//
// A position has freedom when its rotation is not the all-zero matrix
// (symmetry.Op.IsZeroRotation): the all-zero rotation is the signature
// of a fixed point, since every input point maps to the same
// translation regardless of its value.
func Check(table symmetry.Table, numIons []int) (Result, error) {
	if len(table.WyckoffsOrganized) == 0 {
		return Infeasible, ErrNoWyckoffPositions
	}

	smallestGroup := table.WyckoffsOrganized[len(table.WyckoffsOrganized)-1]
	smallestWP := smallestGroup[len(smallestGroup)-1]
	nSite := smallestWP.Multiplicity()
	if nSite == 0 {
		return Infeasible, ErrNoWyckoffPositions
	}

	var slots []slot
	for _, group := range table.WyckoffsOrganized {
		for _, wp := range group {
			slots = append(slots, slot{wp: wp})
		}
	}

	hasFreedom := false
	for _, numIon := range numIons {
		if numIon%nSite != 0 {
			return Infeasible, nil
		}
		if smallestWP.HasFreedom() {
			hasFreedom = true
			continue
		}

		remaining := numIon
		for i := range slots {
			mult := slots[i].wp.Multiplicity()
			for remaining >= mult && !slots[i].removed {
				remaining -= mult
				if slots[i].wp.HasFreedom() {
					hasFreedom = true
				} else {
					slots[i].removed = true
				}
			}
		}
		if remaining != 0 {
			return Infeasible, nil
		}
	}

	if hasFreedom {
		return FeasibleWithFreedom, nil
	}
	return FeasibleRigid, nil
}
