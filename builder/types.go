// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// types.go — the Constructor contract and sentinel errors.
package builder

import (
	"errors"
	"fmt"
)

// EdgeAdder receives the undirected edges a Constructor emits.
// *hamilton.Solver satisfies it; tests use counting stubs.
type EdgeAdder interface {
	AddEdge(v1, v2 int) error
}

// Constructor applies one deterministic topology to g. Constructors MUST
// validate parameters early, return sentinel errors (no panics), and emit
// edges in a stable, documented order.
type Constructor func(g EdgeAdder) error

// Sentinel errors for the builder package. Callers MUST use errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
	// minimum for the requested constructor.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrNilAdder indicates a nil EdgeAdder passed to Build.
	ErrNilAdder = errors.New("builder: edge adder is nil")

	// ErrConstructFailed indicates Build was given a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Build applies all constructors to g in order. The first error is
// wrapped with "Build: %w" and returned immediately.
func Build(g EdgeAdder, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: %w", ErrNilAdder)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}
