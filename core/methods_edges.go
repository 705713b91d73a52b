// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Edges are undirected; u–v and v–u address the same edge.
//   - Self-loops are always rejected (ErrLoopNotAllowed).
//   - A second u–v edge requires WithMultiEdges; it then increments the multiplicity.
package core

import "sort"

// AddEdge inserts an undirected edge u–v, creating missing endpoints.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrLoopNotAllowed: if u == v.
//   - ErrMultiEdgeNotAllowed: if u–v exists and the graph is simple.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adjacency[u][v] > 0 && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}
	ensureVertex(g, u)
	ensureVertex(g, v)
	g.adjacency[u][v]++
	g.adjacency[v][u]++
	g.edgeCount++

	return nil
}

// RemoveEdge removes one u–v edge. On a multigraph only a single parallel
// edge is removed; the endpoints stay adjacent while multiplicity remains.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[v]; !ok {
		return ErrVertexNotFound
	}
	if g.adjacency[u][v] == 0 {
		return ErrEdgeNotFound
	}

	g.adjacency[u][v]--
	g.adjacency[v][u]--
	if g.adjacency[u][v] == 0 {
		delete(g.adjacency[u], v)
		delete(g.adjacency[v], u)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether at least one u–v edge exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u][v] > 0
}

// Multiplicity returns the number of parallel u–v edges (0 if none).
// Complexity: O(1).
func (g *Graph) Multiplicity(u, v string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u][v]
}

// EdgeCount returns |E| counting multiplicity.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every adjacent pair once, with From < To, sorted by (From, To).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v, count := range bucket {
			if u < v {
				out = append(out, Edge{From: u, To: v, Multiplicity: count})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
