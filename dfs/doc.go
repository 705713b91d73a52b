// Package dfs implements depth-first cycle detection on a core.Graph.
//
// What:
//
//   - HasCycle: reports whether an undirected (multi)graph contains a cycle.
//   - FindCycle: returns one closed cycle witness [v0, ..., v0] using vertex
//     coloring (White, Gray, Black) and back-edge detection.
//
// Why:
//   - Decide whether a candidate vertex set is a feedback vertex set
//     (remove it, then ask HasCycle).
//   - Short-circuit exact search on graphs that are already forests.
//
// Multigraph policy:
//
//   - A pair of parallel edges u=v is a cycle [u, v, u].
//   - The tree edge back to the DFS parent is skipped exactly once.
//
// Complexity:
//
//   - Time O(V + E), memory O(V).
package dfs
