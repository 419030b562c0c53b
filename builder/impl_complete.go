// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// impl_complete.go: implementation of Complete(n).
//
// Contract:
//   • 1 ≤ n ≤ maxCompleteNodes. K_1 is emitted as a self-loop on its single vertex.
//   • Edges i–j for all i < j, in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
	maxCompleteNodes = 4096 // ~8.4M edges
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if n > maxCompleteNodes {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodComplete, n, maxCompleteNodes, ErrConstructFailed)
		}
		s.reserve(n)
		if n == 1 {
			s.single(cfg, 0)
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(cfg, i, j)
			}
		}

		return nil
	}
}
