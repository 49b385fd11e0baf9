package cycles

import (
	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/scc"
)

// HasStrictCycle reports whether the graph contains a cycle with at least
// one strict edge — the witness of a GARP violation. Every edge inside a
// strongly connected component lies on some cycle of that component, so the
// test reduces to: is there a strict edge whose endpoints share a nontrivial
// component, or a strict self-loop?
//
// Complexity: O(V + E).
func HasStrictCycle(g *core.Graph) bool {
	part := scc.Components(g)
	var e int
	for e = 0; e < g.NumEdges(); e++ {
		if !g.Strict(e) {
			continue
		}
		if g.Tail[e] == g.Head[e] {
			return true // strict self-loop: a trivial 1-cycle
		}
		if part.Comp[g.Tail[e]] != 0 && part.Comp[g.Tail[e]] == part.Comp[g.Head[e]] {
			return true
		}
	}

	return false
}

// Acyclic reports whether the residual subgraph — edges with res(e) > eps,
// vertices within scope — has no cycle. A plain three-color existence check.
func Acyclic(g *core.Graph, inScope func(v int) bool, res func(e int) float64, eps float64) bool {
	found := false
	en := &engine{
		g:       g,
		inScope: inScope,
		usable:  func(e int) bool { return res(e) > eps },
		onCycle: func(edges []int) int {
			found = true

			// Masking the closing edge lets the walk terminate promptly
			// without revisiting the same cycle.
			return edges[len(edges)-1]
		},
	}
	en.run()

	return !found
}
