package core

import "sort"

// Reverse returns the reverse adjacency: rOffsets has length N+1 and
// rEdge[rOffsets[u]:rOffsets[u+1]] lists the forward edge indexes whose head
// is u, sorted by (weight ascending, tail ascending). Built once on first
// use and cached; the in-edge ordering is what level-removal along incoming
// edges keys on, so it cannot be recovered from the forward CSR by any
// transposition trick.
//
// Complexity: O(E log E) on first call, O(1) after.
func (g *Graph) Reverse() (offsets []int, edges []int) {
	// 1) Serve the cached copy when present.
	if g.rOffsets != nil {
		return g.rOffsets, g.rEdge
	}

	// 2) Count in-degrees.
	offsets = make([]int, g.N+1)
	var e int
	for e = 0; e < len(g.Head); e++ {
		offsets[g.Head[e]+1]++
	}
	var v int
	for v = 0; v < g.N; v++ {
		offsets[v+1] += offsets[v]
	}

	// 3) Bucket edges by head.
	edges = make([]int, len(g.Head))
	cursor := make([]int, g.N)
	var u int
	for e = 0; e < len(g.Head); e++ {
		u = g.Head[e]
		edges[offsets[u]+cursor[u]] = e
		cursor[u]++
	}

	// 4) Sort each in-list by (weight asc, tail asc).
	for v = 0; v < g.N; v++ {
		in := edges[offsets[v]:offsets[v+1]]
		sort.SliceStable(in, func(a, b int) bool {
			if g.Weight[in[a]] != g.Weight[in[b]] {
				return g.Weight[in[a]] < g.Weight[in[b]]
			}

			return g.Tail[in[a]] < g.Tail[in[b]]
		})
	}

	g.rOffsets, g.rEdge = offsets, edges

	return offsets, edges
}

// InEdges returns the half-open range of vertex v's in-edge list within the
// reverse adjacency (building it if needed).
func (g *Graph) InEdges(v int) (offsets []int, edges []int, lo, hi int) {
	offsets, edges = g.Reverse()

	return offsets, edges, offsets[v], offsets[v+1]
}
