// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// impl_grid.go: implementation of Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, rows*cols ≤ maxGridCells. Local index of cell (r,c) is r*cols + c (row-major).
//   • For every cell: right neighbor first, then down neighbor.
//   • 1×1 is emitted as a self-loop; 1×C and R×1 are paths; R,C ≥ 2 contains 4-cycles.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim   = 1
	maxGridCells = 1 << 24 // 16M vertices
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		if rows > maxGridCells/cols {
			return fmt.Errorf("%s: %dx%d > max=%d cells: %w", methodGrid, rows, cols, maxGridCells, ErrConstructFailed)
		}
		s.reserve(rows * cols)
		if rows == 1 && cols == 1 {
			s.single(cfg, 0)
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					s.edge(cfg, cell, cell+1)
				}
				if r+1 < rows {
					s.edge(cfg, cell, cell+cols)
				}
			}
		}

		return nil
	}
}
