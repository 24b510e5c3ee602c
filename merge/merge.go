// Copyright ©2026 The Xtal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merge implements the orbit collision resolver:
// connected-components clustering of orbit points that sit closer than a
// tolerance under periodic boundary conditions, periodic centroiding of
// each cluster, and re-identification of the merged points as a
// (possibly higher-symmetry) Wyckoff position.
package merge

import (
	"errors"
	"math"

	"github.com/xtal-go/xtal/geom"
	"github.com/xtal-go/xtal/symmetry"
	"github.com/xtal-go/xtal/wyckoff"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNoMatch is returned when a (merged) orbit does not correspond to any
// Wyckoff position in the group's table.
var ErrNoMatch = errors.New("merge: orbit does not live on any Wyckoff position")

// ErrUnmergeable is returned when a merge round makes no progress, or
// leaves fewer points than the group's smallest Wyckoff multiplicity.
var ErrUnmergeable = errors.New("merge: orbit cannot be merged onto any Wyckoff position")

// Result is the outcome of successfully merging (or accepting as-is) an
// orbit.
type Result struct {
	Points    []r3.Vec
	WPIndex   int
	Generator r3.Vec
}

// smallestMultiplicity returns the smallest Wyckoff multiplicity in the
// group's table.
func smallestMultiplicity(table symmetry.Table) int {
	m := math.MaxInt32
	for _, wp := range table.Wyckoffs {
		if wp.Multiplicity() < m {
			m = wp.Multiplicity()
		}
	}
	return m
}

// Merge takes orbit points under lattice L and, while the minimum
// pairwise distance is at most tol, repeatedly clusters the pairs within
// 1e-3 of that minimum, replacing each cluster with its periodic
// centroid, until the
// remaining points sit on some Wyckoff position of table or no further
// reduction is possible.
func Merge(points []r3.Vec, L *geom.Lattice, table symmetry.Table, tol float64, pbc [3]bool) (Result, error) {
	cur := points
	for {
		dMin, pairs := shortDistPairs(cur, L, tol, pbc)
		if len(pairs) == 0 {
			idx, gen, ok := wyckoff.CheckPosition(cur, table, pbc)
			if !ok {
				return Result{}, ErrNoMatch
			}
			return Result{Points: cur, WPIndex: idx, Generator: gen}, nil
		}

		g := buildGraph(len(cur), pairs, dMin)
		groups := topo.ConnectedComponents(g)
		merged := make([]r3.Vec, len(groups))
		for i, group := range groups {
			idxs := make([]int, len(group))
			for j, n := range group {
				idxs[j] = int(n.ID())
			}
			merged[i] = periodicCentroid(cur, idxs, L, pbc)
		}

		// A merge that makes no progress, or that overshoots below the
		// smallest multiplicity any Wyckoff position in the table could
		// have, can never resolve to a valid position — fail now rather
		// than recurse pointlessly.
		if len(merged) >= len(cur) || len(merged) < smallestMultiplicity(table) {
			return Result{}, ErrUnmergeable
		}
		cur = merged
	}
}

type pair struct {
	i, j int
	d    float64
}

// shortDistPairs returns the smallest off-diagonal pairwise distance and
// every pair within dMin+1e-3 of it. If the smallest distance already
// exceeds tol, no pairs are returned (the orbit is already valid).
func shortDistPairs(points []r3.Vec, L *geom.Lattice, tol float64, pbc [3]bool) (float64, []pair) {
	n := len(points)
	if n <= 1 {
		return math.Inf(1), nil
	}
	dMin := math.Inf(1)
	all := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			diff := r3.Vec{X: points[j].X - points[i].X, Y: points[j].Y - points[i].Y, Z: points[j].Z - points[i].Z}
			d := geom.Distance(diff, L, pbc)
			all = append(all, pair{i, j, d})
			if d < dMin {
				dMin = d
			}
		}
	}
	if dMin > tol {
		return dMin, nil
	}
	out := make([]pair, 0, len(all))
	for _, p := range all {
		if p.d <= dMin+1e-3 {
			out = append(out, p)
		}
	}
	return dMin, out
}

func buildGraph(n int, pairs []pair, dMin float64) graph.Undirected {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, p := range pairs {
		g.SetEdge(simple.Edge{F: simple.Node(p.i), T: simple.Node(p.j)})
	}
	return g
}

// periodicCentroid computes the periodic centroid of the points named by
// idxs within all: each point after the first is translated by whichever
// lattice image brings it Cartesian-closest to the centroid of the
// already-processed prefix, avoiding the wrap-around distortion a naive
// fractional-space mean would introduce near a periodic boundary.
func periodicCentroid(all []r3.Vec, idxs []int, L *geom.Lattice, pbc [3]bool) r3.Vec {
	shifted := make([]r3.Vec, len(idxs))
	shifted[0] = all[idxs[0]]
	sum := shifted[0]
	for k := 1; k < len(idxs); k++ {
		p := all[idxs[k]]
		running := r3.Vec{X: sum.X / float64(k), Y: sum.Y / float64(k), Z: sum.Z / float64(k)}
		best := p
		bestDist := math.Inf(1)
		for _, dx := range axisShifts(pbc[0]) {
			for _, dy := range axisShifts(pbc[1]) {
				for _, dz := range axisShifts(pbc[2]) {
					cand := r3.Vec{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
					diff := r3.Vec{X: cand.X - running.X, Y: cand.Y - running.Y, Z: cand.Z - running.Z}
					d := geom.Distance(diff, L, [3]bool{false, false, false}) // already shifted; compare raw Cartesian length
					if d < bestDist {
						bestDist = d
						best = cand
					}
				}
			}
		}
		shifted[k] = best
		sum = r3.Vec{X: sum.X + best.X, Y: sum.Y + best.Y, Z: sum.Z + best.Z}
	}
	n := float64(len(idxs))
	return r3.Vec{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}

func axisShifts(periodic bool) []float64 {
	if periodic {
		return []float64{-1, 0, 1}
	}
	return []float64{0}
}
