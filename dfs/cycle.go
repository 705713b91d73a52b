// Package dfs implements cycle detection for undirected core.Graphs, including
// multigraphs where a pair of parallel edges is itself a cycle.
//
// HasCycle answers the feasibility question asked by every FVS verifier;
// FindCycle additionally returns a closed witness [v0, v1, ..., v0].
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvfvs/core"
)

// HasCycle reports whether g contains at least one cycle.
// A nil graph is treated as cycle-free.
func HasCycle(g *core.Graph) bool {
	_, found, err := FindCycle(g)

	// Neighbor lookups only fail for vertices removed concurrently; report the
	// conservative answer in that case.
	return found || err != nil
}

// FindCycle searches g for one cycle and returns it as a closed vertex
// sequence [v0, v1, ..., vk, v0]. Vertices are explored in sorted order, so the
// witness is deterministic for a fixed graph.
//
// Returns (nil, false, nil) for acyclic or nil graphs.
// If a neighbor-fetch error occurs, returns (nil, false, error).
func FindCycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		cycle, err := visit(g, v, "", state, &path)
		if err != nil {
			return nil, false, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// visit performs recursive DFS from id. The edge back to parent is skipped
// exactly once, so a parallel id–parent edge is reported as a two-cycle.
//
// Returns the first closed cycle found, or nil once the subtree is exhausted.
func visit(
	g *core.Graph,
	id, parent string,
	state map[string]int,
	path *[]string,
) ([]string, error) {
	state[id] = Gray
	*path = append(*path, id)

	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	for _, nbr := range nbrs {
		if nbr == parent && g.Multiplicity(id, nbr) < 2 {
			continue
		}
		switch state[nbr] {
		case White:
			cycle, err := visit(g, nbr, id, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			// Back-edge to an ancestor closes the cycle ancestor..id.
			idx := IndexOf(*path, nbr)
			cycle := append([]string(nil), (*path)[idx:]...)

			return append(cycle, nbr), nil
		}
		// Black neighbors belong to finished subtrees; undirected DFS never
		// reaches them through a non-tree edge without first seeing it from the
		// other side.
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil, nil
}
