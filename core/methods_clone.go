// File: methods_clone.go
// Role: Cloning and induced subgraphs.
// Concurrency:
//   - Read lock on the source for snapshotting; the source is never mutated.

package core

// Clone returns a deep copy of the graph. Extra options are applied to the
// clone after the source configuration, so Clone(WithMultiEdges()) yields a
// multigraph copy of a simple graph.
//
// Complexity: O(V + E).
func (g *Graph) Clone(opts ...GraphOption) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(opts...)
	clone.allowMulti = clone.allowMulti || g.allowMulti
	for id, bucket := range g.adjacency {
		nb := make(map[string]int, len(bucket))
		for nbr, count := range bucket {
			nb[nbr] = count
		}
		clone.adjacency[id] = nb
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Without returns a copy of the graph with the given vertices removed.
// IDs absent from the graph are ignored.
//
// Complexity: O(V + E).
func (g *Graph) Without(ids []string) *Graph {
	clone := g.Clone()
	for _, id := range ids {
		// ErrVertexNotFound is the documented "ignore" case.
		_ = clone.RemoveVertex(id)
	}

	return clone
}
