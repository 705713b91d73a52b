// Package core provides the thread-safe, undirected in-memory Graph consumed by
// the reduction, sampling and exact-search algorithms of lvfvs.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; self-loops are always rejected.
//   - Simple by default; WithMultiEdges lets a vertex pair carry several
//     parallel edges (used to represent two-cycles produced by path contraction).
//   - Constant-time edge operations via a multiplicity map:
//     adjacency[u][v] = number of u–v edges (mirrored in adjacency[v][u]).
//   - Deterministic iteration: Vertices(), Neighbors(), Edges() are sorted.
//
// Vertex weights live in a separate Weights map so that algorithms can clone
// the topology freely while the (immutable) weight vector is shared.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error            // O(1); creates missing endpoints
//	RemoveEdge(u, v string) error         // O(1); removes one parallel edge
//	HasEdge(u, v string) bool             // O(1)
//	Multiplicity(u, v string) int         // O(1)
//
//	// Query
//	Vertices() []string                   // O(V log V)
//	Neighbors(id string) ([]string, error)// O(d log d), distinct neighbors
//	Degree(id string) (int, error)        // O(d), counts multiplicity
//	Degrees() map[string]int              // O(V+E)
//	Edges() []Edge                        // O(E log E)
//	VertexCount(), EdgeCount() int        // O(1)
//
//	// Copies
//	Clone(opts ...GraphOption) *Graph     // O(V+E)
//	Without(ids []string) *Graph          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrMissingWeight, ErrNegativeWeight, ErrNonPositiveWeight – Weights validation
package core
