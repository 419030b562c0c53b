// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// impl_tree.go: BinaryTree(depth) and RandomTree(n).
//
// Contract:
//   • BinaryTree: depth ≥ 1, 2^depth − 1 vertices in heap order; parent i has
//     children 2i+1 and 2i+2. depth 1 is a single root, emitted as a self-loop.
//   • RandomTree: n ≥ 2, requires cfg.rng. Vertex i (i ≥ 1) attaches to a
//     uniformly chosen earlier vertex, which yields a recursive random tree.
//
// Determinism: RandomTree consumes exactly n-1 draws from cfg.rng.

package builder

import "fmt"

const (
	methodBinaryTree   = "BinaryTree"
	methodRandomTree   = "RandomTree"
	minTreeDepth       = 1
	maxTreeDepth       = 24 // 16M vertices
	minRandomTreeNodes = 2
)

// BinaryTree returns a Constructor that builds the complete binary tree of the given depth.
func BinaryTree(depth int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodBinaryTree, "depth", depth, minTreeDepth); err != nil {
			return err
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}
		n := (1 << depth) - 1
		s.reserve(n)
		if n == 1 {
			s.single(cfg, 0)
			return nil
		}
		for child := 1; child < n; child++ {
			s.edge(cfg, (child-1)/2, child)
		}

		return nil
	}
}

// RandomTree returns a Constructor that builds a random labeled tree on n vertices.
func RandomTree(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodRandomTree, "n", n, minRandomTreeNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		s.reserve(n)
		for i := 1; i < n; i++ {
			s.edge(cfg, cfg.rng.Intn(i), i)
		}

		return nil
	}
}
