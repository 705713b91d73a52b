// Package dfs defines the visitation states shared by its traversals.
package dfs

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current recursion path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)
