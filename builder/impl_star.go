// SPDX-License-Identifier: MIT
// Package: lvfvs/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub has the fixed ID "Center"; leaves use cfg.idFn(0..n-2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfvs/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the identifier of the hub vertex in Star and Wheel.
	CenterVertexID = "Center"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		if err := addSpokes(g, cfg, methodStar, n-1); err != nil {
			return err
		}

		return nil
	}
}

// addSpokes connects the hub to cfg.idFn(0..leaves-1) in index order.
func addSpokes(g *core.Graph, cfg builderConfig, method string, leaves int) error {
	for i := 0; i < leaves; i++ {
		rim := cfg.idFn(i)
		if err := g.AddEdge(CenterVertexID, rim); err != nil {
			return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, CenterVertexID, rim, err)
		}
	}

	return nil
}
