// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Neighbors() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Every method takes g.mu (read lock for queries, write lock for mutation).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}

	// Drop the mirrored entries first, then the vertex bucket itself.
	for nbr, count := range bucket {
		delete(g.adjacency[nbr], id)
		g.edgeCount -= count
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Neighbors returns the distinct neighbors of id sorted ascending.
// Parallel edges contribute one entry.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := make([]string, 0, len(bucket))
	for nbr := range bucket {
		nbrs = append(nbrs, nbr)
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// Degree returns the number of edges incident to id, counting multiplicity.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return bucketDegree(bucket), nil
}

// Degrees returns the degree of every vertex, keyed by ID, in one locked pass.
// Complexity: O(V + E).
func (g *Graph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.adjacency))
	for id, bucket := range g.adjacency {
		out[id] = bucketDegree(bucket)
	}

	return out
}

// ensureVertex creates an empty adjacency bucket for id. Caller holds g.mu.
func ensureVertex(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]int)
	}
}

// bucketDegree sums the multiplicities stored in one adjacency bucket.
func bucketDegree(bucket map[string]int) int {
	deg := 0
	for _, count := range bucket {
		deg += count
	}

	return deg
}
