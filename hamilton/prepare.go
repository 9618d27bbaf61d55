package hamilton

// prepare freezes the edge list and computes each edge's neighbour list —
// the edges sharing exactly one endpoint with it — exactly once. The
// lists live in one flat index arena; each edge keeps an offset and a
// count into it. Idempotent: every call after the first is a no-op.
//
// Complexity: O(E + Σ deg(v)²) ≈ O(E·maxdeg) time, O(E·maxdeg) space.
func (s *Solver) prepare() {
	if s.frozen {
		return
	}
	s.frozen = true

	// Count the degree of each vertex in the full graph.
	deg := s.vdegree
	for v := range deg {
		deg[v] = 0
	}
	for i := range s.edges {
		deg[s.edges[i].ends[0]]++
		deg[s.edges[i].ends[1]]++
	}

	// Each edge's neighbour list holds deg(end0)+deg(end1)-2 entries: the
	// sum counts the edge itself at both ends. Lay the lists out
	// back-to-back in the arena.
	total := 0
	for i := range s.edges {
		e := &s.edges[i]
		e.nbLen = deg[e.ends[0]] + deg[e.ends[1]] - 2
		e.nbOff = total
		total += e.nbLen
	}
	s.neighbours = make([]int32, total)

	// Bucket the edges incident to each vertex, again as one flat arena
	// with per-vertex offsets. Only needed within this function.
	vstart := make([]int, s.nvertices+1)
	for v := 0; v < s.nvertices; v++ {
		vstart[v+1] = vstart[v] + deg[v]
	}
	vlist := make([]int32, vstart[s.nvertices])
	vfill := make([]int, s.nvertices)
	for i := range s.edges {
		for _, v := range s.edges[i].ends {
			vlist[vstart[v]+vfill[v]] = int32(i)
			vfill[v]++
		}
	}

	// Connect every pair of edges meeting at the same vertex as mutual
	// neighbours.
	fill := make([]int, len(s.edges))
	for v := 0; v < s.nvertices; v++ {
		bucket := vlist[vstart[v]:vstart[v+1]]
		for j := 0; j+1 < len(bucket); j++ {
			ej := bucket[j]
			for k := j + 1; k < len(bucket); k++ {
				ek := bucket[k]
				s.neighbours[s.edges[ej].nbOff+fill[ej]] = ek
				fill[ej]++
				s.neighbours[s.edges[ek].nbOff+fill[ek]] = ej
				fill[ek]++
			}
		}
	}
}
