// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"errors"
	"fmt"
)

// Sentinel errors of Generate. Lower-level failures (a single Wyckoff
// choice, a single merge, a single distance check) and domain errors of a
// sampled lattice are recovered locally by the next retry and never reach
// the caller; infeasible inputs, budget exhaustion and cancellation are
// user-visible.
var (
	// ErrInfeasible means the compatibility predicate rejected the
	// requested species counts outright: no combination of Wyckoff
	// positions can ever host them.
	ErrInfeasible = errors.New("xtal: species counts incompatible with group's Wyckoff positions")

	// ErrLatticeUnsampleable means the lattice sampler itself exhausted
	// its attempt budget (propagated from lattice.ErrUnsampleable).
	ErrLatticeUnsampleable = errors.New("xtal: lattice sampler exhausted its attempt budget")

	// ErrPlacementExhausted means every lattice attempt ran out without
	// any structure attempt placing all species.
	ErrPlacementExhausted = errors.New("xtal: placement exhausted outer lattice budget")

	// ErrDomain describes a sampled lattice that fails the |det(M)-V|
	// sanity check or a realizability check in geom.Para2Matrix.
	// Generate does not return it: such a lattice aborts only the
	// current lattice attempt, and the outer loop moves on to the next.
	ErrDomain = errors.New("xtal: lattice parameters do not realize a valid cell")

	// ErrCancelled means the caller's context was done before
	// generation completed.
	ErrCancelled = errors.New("xtal: generation cancelled")
)

// AttemptError reports how many attempts of a given kind were spent
// before a budget-exhaustion error was returned.
type AttemptError struct {
	Kind     string
	Attempts int
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("xtal: %s exhausted after %d attempts", e.Kind, e.Attempts)
}
