package cycles

import "github.com/katalvlaran/revpref/core"

// Afriat computes the maximum over cycles (within scope) of the minimum edge
// weight, by the estimate-raising search: edges with weight ≤ estimate are
// skipped, and every discovered cycle sets the estimate to its own minimum
// weight and drops that minimum edge out of the residual subgraph, so the
// search unwinds and continues without restarting. Passes repeat until one
// finds no cycle. A pass
// that finds nothing under the final estimate certifies optimality: every
// remaining cycle (if any) has minimum weight ≤ estimate.
//
// The returned value is exact and in [0, 1]; 0 when the scope has no cycle
// with a positive minimum (weak cycles never raise the estimate).
func Afriat(g *core.Graph, inScope func(v int) bool) float64 {
	estimate := 0.0
	for {
		raised := afriatPass(g, inScope, &estimate)
		if !raised {
			return estimate
		}
	}
}

// afriatPass runs one fresh search under the current estimate, resetting it
// on every cycle found. Reports whether any cycle was found. Removal and
// re-run (rather than a single pass) is what makes the result exact: cycles
// bypassed through already-black vertices are caught by the next pass.
func afriatPass(g *core.Graph, inScope func(v int) bool, estimate *float64) bool {
	raised := false
	en := &engine{
		g:       g,
		inScope: inScope,
		usable:  func(e int) bool { return g.Weight[e] > *estimate },
		onCycle: func(edges []int) int {
			// Adopt the cycle's minimum weight and drop the minimum edge.
			// Path edges were admitted under the estimate in force when
			// they were traversed, so this minimum can lie below the
			// current estimate; the next pass re-filters every edge.
			drop := cheapest(edges, func(e int) float64 { return g.Weight[e] })
			*estimate = g.Weight[drop]
			raised = true

			return drop
		},
	}
	en.run()

	return raised
}
