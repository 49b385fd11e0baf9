package core

// CycleSet stores cycles as contiguous runs of edge indexes in one
// append-only slab plus a parallel sizes array. Cycles are neither
// normalized nor deduplicated: a rotation appearing twice yields a redundant
// but harmless cover constraint downstream. The flat layout keeps the
// constraint build cache-friendly and avoids nested containers.
type CycleSet struct {
	edges []int
	sizes []int
}

// Append records one cycle given as a slice of edge indexes.
func (s *CycleSet) Append(cycle []int) {
	s.edges = append(s.edges, cycle...)
	s.sizes = append(s.sizes, len(cycle))
}

// Len reports the number of stored cycles.
func (s *CycleSet) Len() int { return len(s.sizes) }

// Cycle returns a view of the i-th cycle's edge indexes. The slice aliases
// the slab; callers must not retain it across Append calls.
func (s *CycleSet) Cycle(i int) []int {
	var start int
	var k int
	for k = 0; k < i; k++ {
		start += s.sizes[k]
	}

	return s.edges[start : start+s.sizes[i]]
}

// Each calls fn for every cycle in insertion order. A single linear pass
// over the slab, so preferable to repeated Cycle(i) calls.
func (s *CycleSet) Each(fn func(i int, edges []int)) {
	var start, i, n int
	for i, n = range s.sizes {
		fn(i, s.edges[start:start+n])
		start += n
	}
}

// EachFrom behaves like Each but starts at cycle index from; used to visit
// only the cycles appended since a previous high-water mark.
func (s *CycleSet) EachFrom(from int, fn func(i int, edges []int)) {
	var start, i int
	for i = 0; i < from; i++ {
		start += s.sizes[i]
	}
	var n int
	for i = from; i < len(s.sizes); i++ {
		n = s.sizes[i]
		fn(i, s.edges[start:start+n])
		start += n
	}
}
