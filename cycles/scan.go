package cycles

import "github.com/katalvlaran/revpref/core"

// ScanTwoCycles appends every length-2 cycle v⇄u (v < u, both in scope)
// containing at least one strict edge. These are the cheap seed constraints
// the solvers hand to the integer program before any depth-first work.
// Returns the number of cycles appended.
//
// Complexity: O(E·d_max) with d_max the maximum out-degree (one out-list
// scan per edge).
func ScanTwoCycles(g *core.Graph, inScope func(v int) bool, set *core.CycleSet) int {
	count := 0
	var v, u, e, back int
	for v = 0; v < g.N; v++ {
		if !inScope(v) {
			continue
		}
		lo, hi := g.OutEdges(v)
		for e = lo; e < hi; e++ {
			u = g.Head[e]
			if u <= v || !inScope(u) {
				continue // each unordered pair once
			}
			back = findEdge(g, u, v)
			if back < 0 {
				continue
			}
			if !g.Strict(e) && !g.Strict(back) {
				continue // a weak 2-cycle constrains nothing
			}
			set.Append([]int{e, back})
			count++
		}
	}

	return count
}

// StrictSelfLoops returns the edge indexes of strict self-loops (these only
// arise in the goods-symmetric extension). Each is a trivial 1-cycle priced
// outside the component dispatch.
func StrictSelfLoops(g *core.Graph) []int {
	var loops []int
	var e int
	for e = 0; e < g.NumEdges(); e++ {
		if g.Tail[e] == g.Head[e] && g.Strict(e) {
			loops = append(loops, e)
		}
	}

	return loops
}

// findEdge locates the edge v→u, or -1 when absent.
func findEdge(g *core.Graph, v, u int) int {
	lo, hi := g.OutEdges(v)
	var e int
	for e = lo; e < hi; e++ {
		if g.Head[e] == u {
			return e
		}
	}

	return -1
}
