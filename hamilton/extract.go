package hamilton

// checkResult decides whether the converged trial subset is one single
// Hamilton cycle, writing the vertex walk into s.output when it is.
//
// Convergence only guarantees that every edge's endpoint trial degrees
// sum to 4 — not that every vertex has degree 2. A Y-shaped graph (three
// leaves on one centre) with all edges active satisfies the sum condition
// while containing no cycle at all, so the per-vertex degrees are checked
// first. Even then the subset may be several disjoint cycles, so the walk
// from the start vertex must take exactly nvertices steps to close.
func (s *Solver) checkResult() bool {
	// Per-vertex degree within the subset, recording the two incident
	// active edges for the walk below.
	deg := s.vdegree
	for v := range deg {
		deg[v] = 0
	}
	for i := range s.edges {
		e := &s.edges[i]
		if !e.active {
			continue
		}
		for _, v := range e.ends {
			if deg[v] >= 2 {
				return false // vertex has too-high degree
			}
			s.vedges[v][deg[v]] = int32(i)
			deg[v]++
		}
	}
	for v := 0; v < s.nvertices; v++ {
		if deg[v] != 2 {
			return false // vertex has wrong degree
		}
	}

	// Trace one cycle of the cover, always leaving a vertex by the other
	// incident active edge than the one we arrived on. In path mode the
	// walk starts at the synthetic vertex, which is traversed but not
	// written.
	vertex := s.start
	ei := s.vedges[vertex][0]
	out := 0
	for i := 0; i < s.nvertices; i++ {
		if i != 0 && vertex == s.start {
			return false // cycle closed early: the cover was several cycles
		}
		if !(s.isPath && i == 0) {
			s.output[out] = vertex
			out++
		}
		e := &s.edges[ei]
		vertex = e.ends[0] + e.ends[1] - vertex
		if s.vedges[vertex][0] == ei {
			ei = s.vedges[vertex][1]
		} else {
			ei = s.vedges[vertex][0]
		}
	}

	// The degree checks make a non-returning walk impossible, but the
	// walk is cheap to verify and a failure here would mean a logic bug
	// or a malformed graph.
	return vertex == s.start
}

// reverseOutput flips the walk direction in place. In cycle mode the
// start vertex stays pinned at position 0 and the rest reverses; in path
// mode the whole path reverses (its fixed point, the synthetic vertex,
// is not part of the output).
func (s *Solver) reverseOutput() {
	i, j := 1, len(s.output)-1
	if s.isPath {
		i = 0
	}
	for j > i {
		s.output[i], s.output[j] = s.output[j], s.output[i]
		i++
		j--
	}
}
