// SPDX-License-Identifier: MIT
// Package core defines the undirected Graph used by every lvfvs algorithm,
// together with the Weights vector that assigns a cost to each vertex.
//
// All Graph methods are guarded by a single sync.RWMutex, so a graph may be
// queried from many goroutines while one goroutine mutates it.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop requested (never supported).
//	ErrMultiEdgeNotAllowed - parallel edge requested without WithMultiEdges.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two distinct vertices.
//
// From < To lexicographically for every Edge returned by Graph.Edges.
// Multiplicity is the number of parallel edges between the endpoints
// (always 1 unless the graph was built with WithMultiEdges).
type Edge struct {
	From         string
	To           string
	Multiplicity int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
// Degree counts every parallel edge; Neighbors lists each neighbor once.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected, loop-free graph with optional edge multiplicity.
//
// adjacency[u][v] holds the number of parallel u–v edges and is mirrored in
// adjacency[v][u]. A vertex with no edges keeps an empty (non-nil) bucket.
// edgeCount is the total number of edges including multiplicity.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool

	adjacency map[string]map[string]int
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is simple (no parallel edges).
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
