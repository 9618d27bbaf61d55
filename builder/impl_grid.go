// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex ids are row-major: id(r,c) = r*cols + c.
//   • Edges emitted row-major per cell: right neighbour first, then down.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • O(rows·cols) edges; O(1) extra space.

package builder

import "fmt"

const methodGrid = "Grid"

// Grid returns a Constructor that emits the rows×cols 4-neighbourhood
// grid graph. Hamilton cycles exist whenever rows·cols is even and both
// sides are at least 2; the constructor itself enforces only shape.
func Grid(rows, cols int) Constructor {
	return func(g EdgeAdder) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d board: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := g.AddEdge(id, id+1); err != nil {
						return fmt.Errorf("%s: AddEdge(%d–%d): %w", methodGrid, id, id+1, err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(id, id+cols); err != nil {
						return fmt.Errorf("%s: AddEdge(%d–%d): %w", methodGrid, id, id+cols, err)
					}
				}
			}
		}

		return nil
	}
}
