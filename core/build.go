package core

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// NewGraph validates (P, Q) and builds the revealed-preference graph.
// An edge v→u (u ≠ v) exists iff p_v·x_v − p_v·x_u ≥ 0; its weight is that
// saving divided by p_v·x_v, clamped into [0, 1]. Out-edges of each vertex
// are sorted by (weight ascending, head ascending) so that downstream
// level-removal semantics reduce to suffix scans and all tie-breaks are
// pinned.
//
// Complexity: O(G·T²) time, O(T²) memory.
func NewGraph(prices, quantities mat.Matrix, opts ...Option) (*Graph, error) {
	// 1) Validate inputs and precompute expenditures.
	income, err := Incomes(prices, quantities)
	if err != nil {
		return nil, err
	}

	// 2) Apply options.
	bo := defaultBuildOptions()
	var fn Option
	for _, fn = range opts {
		fn(&bo)
	}

	// 3) Emit edges: the affordability test is on the raw saving, the weight
	//    on the normalized one.
	periods := len(income)
	g := &Graph{
		N:      periods,
		Eps:    bo.eps,
		Income: income,
	}
	var v, u int
	var saving float64
	heads := make([]int, 0, periods)
	weights := make([]float64, 0, periods)
	g.Offsets = make([]int, periods+1)
	for v = 0; v < periods; v++ {
		heads = heads[:0]
		weights = weights[:0]
		for u = 0; u < periods; u++ {
			if u == v {
				continue // self-preference is masked out of the base graph
			}
			saving = income[v] - expenditure(prices, quantities, v, u)
			if saving < 0 {
				continue // u was not affordable at v's budget
			}
			heads = append(heads, u)
			weights = append(weights, clampUnit(saving/income[v]))
		}
		appendSortedOut(g, v, heads, weights)
	}

	return g, nil
}

// appendSortedOut appends vertex v's out-edges in (weight asc, head asc)
// order and closes its offset. Sorting is per-vertex, so the global edge
// order is the concatenation of sorted out-lists.
func appendSortedOut(g *Graph, v int, heads []int, weights []float64) {
	n := len(heads)
	order := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if weights[order[a]] != weights[order[b]] {
			return weights[order[a]] < weights[order[b]]
		}

		return heads[order[a]] < heads[order[b]]
	})
	for _, i = range order {
		g.Head = append(g.Head, heads[i])
		g.Tail = append(g.Tail, v)
		g.Weight = append(g.Weight, weights[i])
	}
	g.Offsets[v+1] = len(g.Head)
}

// clampUnit pins rounding noise back into [0, 1].
func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
