package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvfvs/core"
	"github.com/katalvlaran/lvfvs/dfs"
)

// BenchmarkHasCycle_Chain10000 measures a full traversal of a 10,000-vertex path,
// the worst case for HasCycle (no early exit).
func BenchmarkHasCycle_Chain10000(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 10000; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if dfs.HasCycle(g) {
			b.Fatal("path must be acyclic")
		}
	}
}
