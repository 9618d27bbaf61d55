// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_knight.go — implementation of Knight(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex ids are row-major: id(r,c) = r*cols + c.
//   • Moves are probed in a fixed clockwise order per cell; each edge is
//     emitted once, from its lower-id endpoint.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • O(rows·cols) cells × 8 moves; O(1) extra space.

package builder

import "fmt"

const methodKnight = "Knight"

// knightMoves lists all knight moves as (row, col) offsets, ordered
// clockwise starting at roughly 1:15 o'clock.
var knightMoves = [8][2]int{
	{-2, 1}, {-1, 2}, {1, 2}, {2, 1},
	{2, -1}, {1, -2}, {-1, -2}, {-2, -1},
}

// Knight returns a Constructor that emits the knight-move graph of a
// rows×cols board: vertices are cells, edges join cells one knight move
// apart. A Hamilton cycle of this graph is a closed knight's tour — the
// solver's original use case. Closed tours need both sides ≥ 5 and an
// even cell count, but the constructor enforces only board shape.
func Knight(rows, cols int) Constructor {
	return func(g EdgeAdder) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d board: %w", methodKnight, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				for _, m := range knightMoves {
					nr, nc := r+m[0], c+m[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					to := nr*cols + nc
					// Each undirected edge is seen from both cells; emit it
					// from the lower id only.
					if to < id {
						continue
					}
					if err := g.AddEdge(id, to); err != nil {
						return fmt.Errorf("%s: AddEdge(%d–%d): %w", methodKnight, id, to, err)
					}
				}
			}
		}

		return nil
	}
}
