// SPDX-License-Identifier: MIT
// Package: lvfvs/fvs
//
// reduce.go — graph reduction to a branchy multigraph.
//
// Rules, applied to a fixed point on a multigraph working copy:
//   1. Sink deletion: drop vertices of degree < 2 until none remains.
//   2. Two-cycle: v whose only neighbour is u (a doubled edge v=u).
//      Isolated pair ⇒ force the cheaper (tie ⇒ v) and drop both.
//      Otherwise w(u) ≤ w(v) ⇒ force u (every cycle through v also uses u).
//   3. Chain contraction: v of degree 2 with two distinct neighbours, one of
//      which (iNeighbor, n1 preferred) is such a vertex too; x is iNeighbor's
//      other neighbour. v and iNeighbor lie on exactly the same cycles, so one
//      of them is shortcut away:
//        w(iNeighbor) < w(v) and w(iNeighbor) < w(x) ⇒ drop v, join n1–n2;
//        otherwise ⇒ drop iNeighbor, join v–x.
//      Joining already adjacent vertices raises multiplicity, keeping the cycle.
//
// Every rewrite removes a vertex, so the loop terminates. Vertices are
// scanned in Vertices() order and the scan restarts after each rewrite.

package fvs

import (
	"fmt"

	"github.com/katalvlaran/lvfvs/core"
)

const methodReduce = "Reduce"

// Reduce returns the branchy reduction of g and the vertices it forces.
// For every g: w(Forced) + opt(Graph) == opt(g). An acyclic g reduces to the
// empty graph with nothing forced. g is not mutated.
//
// Errors: ErrNilGraph, ErrInvalidWeight.
func Reduce(g *core.Graph, w core.Weights) (Reduction, error) {
	if g == nil {
		return Reduction{}, fmt.Errorf("%s: %w", methodReduce, ErrNilGraph)
	}
	if err := w.Validate(g); err != nil {
		return Reduction{}, fmt.Errorf("%s: %w: %w", methodReduce, ErrInvalidWeight, err)
	}

	work := g.Clone(core.WithMultiEdges())
	forced := reduceInPlace(work, w)

	return Reduction{Graph: work, Forced: forced}, nil
}

// DeleteSinks returns a copy of g with degree < 2 vertices removed repeatedly
// until every remaining vertex has degree ≥ 2. The result is a fixed point:
// DeleteSinks(DeleteSinks(g)) equals DeleteSinks(g). A nil g yields nil.
func DeleteSinks(g *core.Graph) *core.Graph {
	if g == nil {
		return nil
	}
	work := g.Clone()
	pruneSinks(work)

	return work
}

// reduceInPlace rewrites g to its branchy form and returns the forced IDs.
// g must allow multi-edges and w must already be validated.
func reduceInPlace(g *core.Graph, w core.Weights) []string {
	var forced []string
	for {
		pruneSinks(g)
		id, ok := rewriteOnce(g, w)
		if !ok {
			return forced
		}
		if id != "" {
			forced = append(forced, id)
		}
	}
}

// pruneSinks removes degree < 2 vertices until none remains.
func pruneSinks(g *core.Graph) {
	for changed := true; changed; {
		changed = false
		for id, deg := range g.Degrees() {
			if deg < 2 {
				// id comes from the snapshot, so it is present.
				_ = g.RemoveVertex(id)
				changed = true
			}
		}
	}
}

// rewriteOnce applies the first applicable two-cycle or chain rule in
// Vertices() order. It reports whether g changed and which vertex, if any,
// was forced into the solution.
func rewriteOnce(g *core.Graph, w core.Weights) (string, bool) {
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		switch len(nbrs) {
		case 1:
			if id, ok := resolveTwoCycle(g, w, v, nbrs[0]); ok {
				return id, true
			}
		case 2:
			if contractChain(g, w, v, nbrs[0], nbrs[1]) {
				return "", true
			}
		}
	}

	return "", false
}

// resolveTwoCycle handles v whose only neighbour is u.
func resolveTwoCycle(g *core.Graph, w core.Weights, v, u string) (string, bool) {
	uNbrs, _ := g.Neighbors(u)
	if len(uNbrs) == 1 {
		pick := v
		if w[u] < w[v] {
			pick = u
		}
		_ = g.RemoveVertex(v)
		_ = g.RemoveVertex(u)

		return pick, true
	}
	if w[u] <= w[v] {
		_ = g.RemoveVertex(u)

		return u, true
	}

	return "", false
}

// contractChain shortcuts one vertex of the chain n?–v–iNeighbor–x.
func contractChain(g *core.Graph, w core.Weights, v, n1, n2 string) bool {
	if !isChainVertex(g, v) {
		return false
	}
	iNeighbor, x := "", ""
	for _, cand := range []string{n1, n2} {
		if other, ok := chainOther(g, cand, v); ok {
			iNeighbor, x = cand, other
			break
		}
	}
	if iNeighbor == "" {
		return false
	}

	if w[iNeighbor] < w[v] && w[iNeighbor] < w[x] {
		_ = g.RemoveVertex(v)
		// Multigraph working copies accept the edge even when n1–n2 exists.
		_ = g.AddEdge(n1, n2)
	} else {
		_ = g.RemoveVertex(iNeighbor)
		_ = g.AddEdge(v, x)
	}

	return true
}

// isChainVertex reports degree 2 with two distinct neighbours.
func isChainVertex(g *core.Graph, v string) bool {
	deg, err := g.Degree(v)
	if err != nil || deg != 2 {
		return false
	}
	nbrs, _ := g.Neighbors(v)

	return len(nbrs) == 2
}

// chainOther returns the neighbour of chain vertex c that is not from.
func chainOther(g *core.Graph, c, from string) (string, bool) {
	if !isChainVertex(g, c) {
		return "", false
	}
	nbrs, _ := g.Neighbors(c)
	if nbrs[0] == from {
		return nbrs[1], true
	}

	return nbrs[0], true
}
