package hamilton

// edge holds the per-edge solver state: the immutable endpoints, the
// mutable neuron state, and a window into the shared neighbour arena.
type edge struct {
	ends [2]int // endpoint vertex ids, set at creation

	level  int  // cumulative adjustment value for this "neuron"
	active bool // whether the edge is in the trial subset right now

	// The edges neighbouring this one (sharing exactly one vertex) live at
	// Solver.neighbours[nbOff : nbOff+nbLen]; a single flat arena avoids
	// one allocation per edge.
	nbOff int
	nbLen int
}

// Solver searches for a random Hamilton cycle or path of the graph built
// up through AddEdge. It is not safe for concurrent use; state is reused
// attempt-to-attempt by a single Run at a time.
type Solver struct {
	nvertices int // internal vertex count (includes the synthetic path vertex)
	start     int // vertex the output walk begins at
	isPath    bool

	edges      []edge
	neighbours []int32 // shared neighbour-index arena, built once by prepare

	frozen bool // set by prepare; AddEdge is rejected afterwards

	// per-attempt thresholds, resolved from Options by Run
	onLevel  int
	offLevel int

	// per-vertex scratch, allocated once and reused across attempts
	vdegree []int
	vedges  [][2]int32 // the up-to-two incident active edges per vertex

	output []int // walk in progress; copied out on success
}

// NewCycle returns a Solver that searches for a Hamilton cycle over
// nvertices vertices (ids 0..nvertices-1), with the output walk starting
// at start. Edges are supplied afterwards via AddEdge.
func NewCycle(nvertices, start int) (*Solver, error) {
	if nvertices < 1 {
		return nil, ErrTooFewVertices
	}
	if start < 0 || start >= nvertices {
		return nil, ErrStartOutOfRange
	}

	return &Solver{
		nvertices: nvertices,
		start:     start,
		isPath:    false,
		onLevel:   DefaultOnThreshold * levelScale,
		offLevel:  DefaultOffThreshold,
		vdegree:   make([]int, nvertices),
		vedges:    make([][2]int32, nvertices),
		output:    make([]int, nvertices),
	}, nil
}

// NewPath returns a Solver that searches for a Hamilton path over
// nvertices vertices. Internally the graph is augmented with one
// synthetic vertex (id nvertices) joined to every real vertex: a Hamilton
// cycle of the augmented graph, opened at the synthetic vertex, is a
// Hamilton path of the original. The synthetic vertex never appears in
// the output, and the synthetic edges exist only to open the cycle.
func NewPath(nvertices int) (*Solver, error) {
	s, err := NewCycle(nvertices+1, nvertices)
	if err != nil {
		return nil, err
	}
	for v := 0; v < nvertices; v++ {
		if err = s.AddEdge(v, nvertices); err != nil {
			return nil, err
		}
	}
	s.isPath = true
	s.output = make([]int, nvertices)

	return s, nil
}

// AddEdge records the undirected edge (v1, v2). It must be called before
// the first Run; afterwards the edge list is frozen and ErrFrozen is
// returned. Self-loops are rejected with ErrSelfLoop, out-of-range
// endpoints with ErrVertexRange.
//
// Parallel edges are not rejected but are unsupported: the neighbour
// relation ("shares exactly one endpoint") miscounts them, so results on
// multigraphs are undefined.
func (s *Solver) AddEdge(v1, v2 int) error {
	if s.frozen {
		return ErrFrozen
	}
	if v1 < 0 || v1 >= s.nvertices || v2 < 0 || v2 >= s.nvertices {
		return ErrVertexRange
	}
	if v1 == v2 {
		return ErrSelfLoop
	}
	s.edges = append(s.edges, edge{ends: [2]int{v1, v2}})

	return nil
}

// VertexCount reports the number of vertices the output walk covers:
// the constructor's nvertices in both cycle and path mode.
func (s *Solver) VertexCount() int {
	if s.isPath {
		return s.nvertices - 1
	}

	return s.nvertices
}

// EdgeCount reports the number of edges added so far, including the
// synthetic edges of path mode.
func (s *Solver) EdgeCount() int {
	return len(s.edges)
}

// Run searches until a Hamilton cycle (or path) is found and returns the
// vertex walk, of length VertexCount, beginning at the start vertex. The
// first call freezes the edge list and builds the neighbour lists; later
// calls reuse them and may return a different walk.
//
// Each attempt re-randomizes the trial edge subset from rng, relaxes it
// until stable or until the current iteration cap is exhausted, and
// validates any stable configuration as one single full-length cycle.
// Converging to a cover of several disjoint cycles is not an error, just
// bad luck; the attempt is discarded and the search restarts. Failing to
// converge at all bumps a failure counter, and once convergence failures
// outpace successes two to one the cap grows by half — failures observed
// at the old cap say nothing about the new one, so the failure counter
// resets on each raise (the success counter deliberately does not; the
// heuristic is rough and kept as documented).
//
// On success the walk is reversed with probability 1/2, keeping the start
// vertex pinned, so the direction of edge insertion leaves no bias.
//
// Run blocks until success unless WithMaxAttempts or WithContext bounds
// it; on a graph with no Hamilton cycle an unbounded Run never returns.
func (s *Solver) Run(rng Rand, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	s.prepare()
	s.onLevel = o.OnThreshold * levelScale
	s.offLevel = o.OffThreshold

	budget := attemptBudget{limit: o.IterLimit}
	for attempt := 0; ; attempt++ {
		if o.MaxAttempts > 0 && attempt >= o.MaxAttempts {
			return nil, ErrNoConvergence
		}
		// cancellation check (once per attempt)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if s.tryConverge(budget.limit, rng) == 0 {
			budget.failure()
			continue
		}
		budget.success()

		if !s.checkResult() {
			// Converged to a disjoint-cycle cover; re-randomize and retry.
			// The iteration cap is untouched: convergence itself worked.
			continue
		}

		if rng.Intn(2) == 1 {
			s.reverseOutput()
		}
		out := make([]int, len(s.output))
		copy(out, s.output)

		return out, nil
	}
}

// attemptBudget tracks convergence statistics at the current iteration
// cap and widens the cap when failures outpace successes two to one.
type attemptBudget struct {
	limit int // current per-attempt iteration cap
	nok   int // converged attempts, across all cap values
	nfail int // non-converged attempts at the current cap
}

// success records a converged attempt.
func (b *attemptBudget) success() { b.nok++ }

// failure records a non-converged attempt and raises the cap by half once
// failures at this cap have outpaced successes two to one. The failure
// count resets on a raise; the success count never does.
func (b *attemptBudget) failure() {
	b.nfail++
	if b.nok < b.nfail/2 {
		b.limit = b.limit * 3 / 2
		b.nfail = 0
	}
}
