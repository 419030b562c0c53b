// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// impl_path.go: Path(n) and Star(n): the two linear-time trees.
//
// Contract:
//   • Path: n ≥ 2, edges i–(i+1) for i=0..n-2.
//   • Star: n ≥ 2, center is local index 0, edges 0–i for i=1..n-1.
//   • Both are trees: n vertices, n-1 edges.

package builder

const (
	methodPath   = "Path"
	methodStar   = "Star"
	minPathNodes = 2
	minStarNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		s.reserve(n)
		for i := 0; i < n-1; i++ {
			s.edge(cfg, i, i+1)
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		s.reserve(n)
		for i := 1; i < n; i++ {
			s.edge(cfg, 0, i)
		}

		return nil
	}
}
