package hamilton

// pairTarget is the wanted sum of the two endpoint trial degrees of any
// edge: degree 2 at each end.
const pairTarget = 4

// iterate performs one synchronous relaxation step over all edges and
// reports whether the configuration is stable (every adjustment was
// exactly zero, i.e. every edge's endpoint trial degrees sum to 4).
//
// The step is two passes. The first computes every edge's adjustment from
// the previous iteration's activations only — as if in parallel, no
// read-after-write — and accumulates it into the edge level. The second
// applies the hysteresis thresholds to the fresh levels: above onLevel an
// edge switches on, below offLevel it switches off, and in between it
// keeps its prior state.
func (s *Solver) iterate() bool {
	stable := true
	for i := range s.edges {
		e := &s.edges[i]

		// (2 - trialdeg(end0)) + (2 - trialdeg(end1)): start from 4; every
		// active neighbour meets exactly one of e's endpoints and subtracts
		// one; e itself meets both and subtracts two.
		delta := pairTarget
		for _, n := range s.neighbours[e.nbOff : e.nbOff+e.nbLen] {
			if s.edges[n].active {
				delta--
			}
		}
		if e.active {
			delta -= 2
		}

		if delta != 0 {
			stable = false
		}
		e.level += delta
	}

	for i := range s.edges {
		e := &s.edges[i]
		if e.level > s.onLevel {
			e.active = true
		} else if e.level < s.offLevel {
			e.active = false
		}
	}

	return stable
}

// tryConverge resets every edge to level 0 and a random activation bit,
// then iterates up to limit times. It returns the number of iterations a
// successful attempt needed (at least 1, leaving 0 free to mean failure).
// A failed attempt needs no rollback: the caller resets state again.
func (s *Solver) tryConverge(limit int, rng Rand) int {
	for i := range s.edges {
		s.edges[i].level = 0
		s.edges[i].active = rng.Intn(2) == 1
	}

	for iter := 0; iter < limit; iter++ {
		if s.iterate() {
			return iter + 1
		}
	}

	return 0
}
