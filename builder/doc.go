// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// Package builder provides deterministic edge-list constructors for the
// hamilton solver: classic topologies (cycle, complete graph, grid) and
// the knight-move graph of a rectangular board.
//
// Each constructor is a Constructor closure that emits undirected edges
// into any EdgeAdder — *hamilton.Solver satisfies EdgeAdder directly —
// over integer vertex ids laid out row-major where a board is involved.
// Emission order is stable and documented per constructor, so the same
// inputs always produce the same edge list (and, with a fixed seed, the
// same solver output).
//
// Contract (strict):
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Build(g, cons...) applies constructors in order and wraps the first
//     failure with context; no partial cleanup is attempted.
//   - Callers branch on semantics with errors.Is against the sentinels
//     (ErrTooFewVertices, ErrNilAdder, ErrConstructFailed).
package builder
