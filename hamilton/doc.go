// Package hamilton finds a Hamilton cycle (or path) of an undirected
// graph, randomized well enough that the result can serve as a hidden
// puzzle solution — the motivating example being a knight's tour of a
// chessboard.
//
// What:
//
//   - Solver: collects an integer edge list, then searches for a single
//     cycle through all vertices using the heuristic relaxation of
//
//     Y. Takefuji, K. C. Lee. "Neural network computing for knight's
//     tour problems." Neurocomputing, 4(5):249–254, 1992.
//
//     The working state is a trial subset of the graph's edges. Each edge
//     carries a cumulative "level"; every iteration adds, per edge, how far
//     its two endpoints' trial degrees are from the target degree 2, and a
//     pair of hysteresis thresholds then switches the edge on or off. The
//     gap between the thresholds is what damps flip-flopping: a freshly
//     switched edge gets a few iterations of grace in which some other edge
//     in the same region can yield first.
//
//   - Convergence: an iteration in which every edge's adjustment is exactly
//     zero is stable. A stable subset covers every vertex with degree-2
//     cycles, but not necessarily a single one, so each converged attempt
//     is validated by walking the cycle through the start vertex; anything
//     short of a full-length cycle is discarded and the search restarts
//     from a fresh random subset.
//
//   - Adaptive cap: attempts that fail to converge within the current
//     iteration cap raise the cap by half once failures outpace successes
//     two to one, so no per-graph constant needs hand-tuning.
//
//   - Path mode: a Hamilton path is found as a Hamilton cycle of an
//     augmented graph with one synthetic vertex joined to every real
//     vertex; the synthetic vertex is stripped from the output.
//
// Why:
//   - Generate puzzle solutions with no systematic positional bias: the
//     relaxation privileges no point within the cycle, and a final
//     coin-flip reversal removes directional bias from edge input order.
//
// Key Types & Constants:
//
//   - Solver: NewCycle / NewPath, AddEdge, Run
//   - Rand: uniform-integer randomness source (satisfied by *math/rand.Rand)
//   - Option: WithThresholds, WithInitialIterLimit, WithMaxAttempts, WithContext
//   - DefaultOnThreshold (12), DefaultOffThreshold (0), DefaultIterLimit (100)
//
// Errors:
//
//   - ErrTooFewVertices    vertex count below 1
//   - ErrStartOutOfRange   start vertex outside [0, n)
//   - ErrVertexRange       edge endpoint outside [0, n)
//   - ErrSelfLoop          self-loops are not meaningful here
//   - ErrFrozen            AddEdge after the first Run
//   - ErrNoConvergence     attempt budget exhausted (only with WithMaxAttempts)
//   - ErrOptionViolation   invalid option value
//   - context errors       when a WithContext context is cancelled
//
// Termination:
//
// Deciding whether a Hamilton cycle exists at all is NP-complete and not
// attempted. On graphs with no cycle (or vanishingly rare ones) Run simply
// never returns; callers that need a bound must set WithMaxAttempts or
// WithContext and treat the resulting error as "no solution found".
//
// Limits: simple graphs only. Parallel edges between the same vertex pair
// are unsupported — the neighbour bookkeeping counts edges sharing exactly
// one endpoint, which parallel edges violate.
//
// Complexity:
//
//   - prepare (once):  Time O(E·maxdeg), Memory O(E·maxdeg)
//   - one iteration:   Time O(Σ per-edge neighbours) = O(E·maxdeg)
//   - validation:      Time O(E + V)
//   - Run overall:     probabilistic; unbounded in the worst case
package hamilton
