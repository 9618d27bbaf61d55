// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_cycle.go — implementation of Cycle(n) and Complete(n).
//
// Contract:
//   • Cycle: n ≥ 3 (else ErrTooFewVertices); edges i—(i+1)%n for i=0..n-1.
//   • Complete: n ≥ 1; edges i—j for all 0 ≤ i < j < n, ascending (i, j).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Cycle: O(n) edges. Complete: O(n²) edges. O(1) extra space each.

package builder

import "fmt"

const (
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	minCycleNodes  = 3
	minGraphNodes  = 1
)

// Cycle returns a Constructor that emits the n-vertex simple cycle C_n:
// the ring 0–1–…–(n−1)–0. Its only Hamilton cycle is the ring itself,
// which makes it the canonical smoke-test input for the solver.
func Cycle(n int) Constructor {
	return func(g EdgeAdder) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(i, (i+1)%n); err != nil {
				return fmt.Errorf("%s: AddEdge(%d–%d): %w", methodCycle, i, (i+1)%n, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that emits the complete simple graph
// K_n. Every vertex permutation is a Hamilton cycle here, so K_n is the
// natural fixture for distribution and permutation properties.
func Complete(n int) Constructor {
	return func(g EdgeAdder) error {
		if n < minGraphNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minGraphNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d–%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
