// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"math"

	"github.com/xtal-go/xtal/lattice"
)

// Params collects every tunable of the driver as exported struct fields
// with documented defaults, rather than flags or environment variables.
type Params struct {
	// MaxAttempts1/2/3 bound the outer lattice, middle structure, and
	// inner per-species retry loops.
	MaxAttempts1 int
	MaxAttempts2 int
	MaxAttempts3 int

	// TolM is the default atom-separation tolerance, Å, used when a
	// species' own covalent-radius-derived tolerance would be smaller.
	TolM float64

	// MinVec, MaxRatio, MinAngle parametrize the lattice sampler's
	// acceptance predicate; forwarded to lattice.Params.
	MinVec   float64
	MaxRatio float64
	MinAngle float64

	// VacuumThickness pads non-periodic axes of 2D/1D outputs, Å.
	VacuumThickness float64

	// Thickness pins the non-periodic axis length for 2D groups; Area
	// pins the cross-sectional area for 1D groups. <= 0 derives either
	// from the target volume instead of a fixed value.
	Thickness float64
	Area      float64
}

// DefaultParams returns the package's default tunables.
func DefaultParams() Params {
	return Params{
		MaxAttempts1:    40,
		MaxAttempts2:    10,
		MaxAttempts3:    10,
		TolM:            0.3,
		MinVec:          1.0,
		MaxRatio:        10,
		MinAngle:        math.Pi / 6,
		VacuumThickness: 10,
	}
}

func (p Params) latticeParams() lattice.Params {
	return lattice.Params{
		MinVec:      p.MinVec,
		MinAngle:    p.MinAngle,
		MaxRatio:    p.MaxRatio,
		MaxAttempts: 100,
	}
}

// rigidBudget collapses retry budgets once the compatibility predicate
// reports a rigid (no-freedom) assignment: every atom lands on a fixed
// point with no continuous parameter to vary, so the output is
// essentially unique and a handful of attempts is enough to hit it.
func (p Params) rigidBudget() Params {
	q := p
	q.MaxAttempts1, q.MaxAttempts2, q.MaxAttempts3 = 5, 5, 5
	return q
}
