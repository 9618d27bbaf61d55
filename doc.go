// Package hamtour generates random Hamilton cycles and paths, suitable
// for producing puzzle solutions such as knight's tours.
//
// 🚀 What is hamtour?
//
//	A small, focused library built around one algorithm:
//		• hamilton/ — a randomized Hamilton cycle/path solver driven by a
//		  hysteresis ("neuron") relaxation over the graph's edges, with
//		  convergence detection, an adaptive iteration cap, and strict
//		  single-cycle validation of every converged configuration
//		• builder/  — deterministic edge-list constructors (cycle, complete,
//		  grid, knight-move board) for assembling solver inputs
//
// ✨ Why choose hamtour?
//
//   - Unbiased by construction – no privileged starting point within the
//     cycle, and a final coin-flip reversal to cancel directional bias
//   - Deterministic when you want it – explicit seeds, no time-based RNG
//   - Pure Go – no cgo, the only dependency is testify (tests only)
//   - Honest about limits – Hamilton-cycle existence is NP-complete; the
//     solver targets graphs where cycles are plentiful and lets callers
//     impose attempt budgets where termination must be guaranteed
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle; the solver returns [0 1 2 3] or [0 3 2 1], each with
//	probability 1/2.
//
// Dive into the hamilton package docs for the algorithm description and
// into builder for the available topologies.
//
//	go get github.com/katalvlaran/hamtour
package hamtour
