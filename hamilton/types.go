// Package hamilton defines configuration options, sentinel errors and the
// randomness contract for the Hamilton cycle/path solver.
package hamilton

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for solver construction and execution.
var (
	// ErrTooFewVertices indicates a vertex count below 1.
	ErrTooFewVertices = errors.New("hamilton: vertex count must be at least 1")

	// ErrStartOutOfRange indicates a start vertex outside [0, nvertices).
	ErrStartOutOfRange = errors.New("hamilton: start vertex out of range")

	// ErrVertexRange indicates an edge endpoint outside [0, nvertices).
	ErrVertexRange = errors.New("hamilton: edge endpoint out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide. A self-loop can
	// never participate in a Hamilton cycle and is treated as a caller error.
	ErrSelfLoop = errors.New("hamilton: self-loops are not supported")

	// ErrFrozen is returned by AddEdge once the edge list has been frozen by
	// the first Run call.
	ErrFrozen = errors.New("hamilton: edge list is frozen after first Run")

	// ErrNoConvergence is returned by Run when WithMaxAttempts is set and the
	// budget is exhausted before a single Hamilton cycle is found. Without an
	// attempt budget Run retries indefinitely and never returns this error.
	ErrNoConvergence = errors.New("hamilton: attempt budget exhausted without finding a cycle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hamilton: invalid option supplied")
)

// Rand is the randomness source consumed by Run: one bit per edge per
// attempt for the initial trial subset, and one final bit for the
// direction coin-flip. *math/rand.Rand satisfies Rand directly; NewRand
// provides a seeded one. A nil Rand resolves to a deterministic default
// stream (seed-zero policy, see NewRand).
type Rand interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0,
	// matching math/rand semantics; the solver only ever passes n == 2.
	Intn(n int) int
}

// Activation thresholds for the per-edge "neuron". An edge switches on
// when its cumulative level rises above OnThreshold scaled by levelScale,
// and off when the level falls below OffThreshold. The gap between the
// two is the hysteresis that suppresses oscillation.
//
// The classical description of the algorithm uses thresholds 3 and 0; the
// 12/0 defaults converge noticeably more often on knight's-tour boards in
// the 5–10 range. Both are tunable via WithThresholds.
const (
	// DefaultOnThreshold is the default activation threshold (pre-scaling).
	DefaultOnThreshold = 12

	// DefaultOffThreshold is the default deactivation threshold.
	DefaultOffThreshold = 0

	// levelScale multiplies OnThreshold before comparison with edge levels.
	levelScale = 4

	// DefaultIterLimit is the initial per-attempt iteration cap. Attempts
	// that fail to converge within the current cap trigger the adaptive
	// widening rule (see Run).
	DefaultIterLimit = 100
)

// Option configures Run behavior via functional arguments. An invalid
// value (e.g. a zero iteration cap) is recorded internally and surfaced
// as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a Run invocation.
type Options struct {
	// Ctx allows cancellation between attempts. Defaults to context.Background().
	Ctx context.Context

	// OnThreshold is the activation threshold (scaled internally by 4).
	OnThreshold int

	// OffThreshold is the deactivation threshold.
	OffThreshold int

	// IterLimit is the initial per-attempt iteration cap; the adaptive rule
	// in Run may raise it, never lower it.
	IterLimit int

	// MaxAttempts, if > 0, bounds the total number of attempts; exhausting
	// it yields ErrNoConvergence. 0 means retry forever, the base behavior.
	MaxAttempts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
//   - context.Background()
//   - thresholds 12 / 0
//   - initial iteration cap 100
//   - no attempt budget (retry forever).
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnThreshold:  DefaultOnThreshold,
		OffThreshold: DefaultOffThreshold,
		IterLimit:    DefaultIterLimit,
		MaxAttempts:  0,
		err:          nil,
	}
}

// WithContext sets a custom context, checked once per attempt.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithThresholds overrides the neuron activation/deactivation thresholds.
// The scaled activation level (on·4) must not sit below the deactivation
// level, or the hysteresis band would invert.
func WithThresholds(on, off int) Option {
	return func(o *Options) {
		if on*levelScale < off {
			o.err = fmt.Errorf("%w: thresholds on=%d, off=%d invert the hysteresis band",
				ErrOptionViolation, on, off)
			return
		}
		o.OnThreshold = on
		o.OffThreshold = off
	}
}

// WithInitialIterLimit sets the starting per-attempt iteration cap.
//
//	n >= 1: use n
//	n <  1: invalid option → ErrOptionViolation
func WithInitialIterLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: IterLimit must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.IterLimit = n
	}
}

// WithMaxAttempts bounds the number of attempts Run may spend.
//
//	n > 0:  give up with ErrNoConvergence after n attempts
//	n == 0: explicit "no budget" (retry forever)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}
