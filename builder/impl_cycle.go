// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// impl_cycle.go: implementation of Cycle(n) and Wheel(n).
//
// Contract:
//   • Cycle: n ≥ 3, ring edges i–(i+1)%n in ascending i.
//   • Wheel: n ≥ 4, Wₙ = Cₙ₋₁ + hub. Rim is local 0..n-2, hub is local n-1;
//     spokes are emitted after the rim, in ascending rim index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	methodWheel   = "Wheel"
	minCycleNodes = 3
	minWheelNodes = 4 // outer ring has n-1 ≥ 3 vertices
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		s.reserve(n)
		ring(s, cfg, n)

		return nil
	}
}

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		s.reserve(n)
		rim := n - 1
		ring(s, cfg, rim)
		for i := 0; i < rim; i++ {
			s.edge(cfg, rim, i)
		}

		return nil
	}
}

// ring emits the closed ring over local indices 0..n-1 of the current block.
func ring(s *edgeSink, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		s.edge(cfg, i, (i+1)%n)
	}
}
