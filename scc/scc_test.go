package scc_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/scc"
)

// edge is a (tail, head, weight) triple for hand-built test graphs.
type edge struct {
	tail, head int
	weight     float64
}

// makeGraph assembles a CSR graph directly, honoring the (weight asc,
// head asc) per-vertex ordering the builder guarantees.
func makeGraph(n int, edges []edge) *core.Graph {
	sort.SliceStable(edges, func(a, b int) bool {
		if edges[a].tail != edges[b].tail {
			return edges[a].tail < edges[b].tail
		}
		if edges[a].weight != edges[b].weight {
			return edges[a].weight < edges[b].weight
		}

		return edges[a].head < edges[b].head
	})
	g := &core.Graph{
		N:       n,
		Offsets: make([]int, n+1),
		Eps:     core.DefaultEpsilon,
		Income:  make([]float64, n),
	}
	var v int
	for v = 0; v < n; v++ {
		g.Income[v] = 1
	}
	for _, e := range edges {
		g.Head = append(g.Head, e.head)
		g.Tail = append(g.Tail, e.tail)
		g.Weight = append(g.Weight, e.weight)
	}
	cursor := 0
	for v = 0; v < n; v++ {
		g.Offsets[v] = cursor
		for cursor < len(edges) && edges[cursor].tail == v {
			cursor++
		}
	}
	g.Offsets[n] = len(edges)

	return g
}

// TestComponents_TwoCyclesAndIsolated: two disjoint 2-cycles become two
// nontrivial components; the stranded vertex stays labelled 0.
func TestComponents_TwoCyclesAndIsolated(t *testing.T) {
	g := makeGraph(5, []edge{
		{0, 1, 0.5}, {1, 0, 0.5},
		{2, 3, 0.3}, {3, 2, 0.3},
		{4, 0, 0.1}, // feeds a component but joins none
	})
	part := scc.Components(g)
	assert.Equal(t, 2, part.Count)
	assert.Equal(t, part.Comp[0], part.Comp[1])
	assert.Equal(t, part.Comp[2], part.Comp[3])
	assert.NotEqual(t, part.Comp[0], part.Comp[2])
	assert.NotZero(t, part.Comp[0])
	assert.NotZero(t, part.Comp[2])
	assert.Zero(t, part.Comp[4])
}

// TestComponents_SelfLoopStaysTrivial: a self-loop is a trivial 1-cycle,
// priced elsewhere — it must not promote its vertex to a nontrivial label.
func TestComponents_SelfLoopStaysTrivial(t *testing.T) {
	g := makeGraph(2, []edge{
		{0, 0, 0.4},
		{0, 1, 0.2},
	})
	part := scc.Components(g)
	assert.Zero(t, part.Count)
	assert.Equal(t, []int{0, 0}, part.Comp)
}

// TestComponents_NestedChain: a 3-cycle with a tail hanging off it.
func TestComponents_NestedChain(t *testing.T) {
	g := makeGraph(4, []edge{
		{0, 1, 0.1}, {1, 2, 0.2}, {2, 0, 0.3},
		{2, 3, 0.9},
	})
	part := scc.Components(g)
	assert.Equal(t, 1, part.Count)
	assert.Equal(t, 1, part.Comp[0])
	assert.Equal(t, 1, part.Comp[1])
	assert.Equal(t, 1, part.Comp[2])
	assert.Zero(t, part.Comp[3])
}

// TestMinVertex_PicksSmallestRoot: among several components, the one whose
// minimum vertex is smallest wins, and that vertex is placed last.
func TestMinVertex_PicksSmallestRoot(t *testing.T) {
	g := makeGraph(6, []edge{
		{1, 4, 0.5}, {4, 1, 0.5}, // min vertex 1
		{2, 3, 0.3}, {3, 2, 0.3}, // min vertex 2
	})
	comp := scc.MinVertex(g, 0, nil)
	require.Len(t, comp, 2)
	assert.Equal(t, 1, comp[len(comp)-1])

	// Restricting to vertices ≥ 2 hands the other component over.
	comp = scc.MinVertex(g, 2, nil)
	require.Len(t, comp, 2)
	assert.Equal(t, 2, comp[len(comp)-1])

	// Beyond every cycle: nothing left.
	assert.Nil(t, scc.MinVertex(g, 4, nil))
}

// TestMinVertex_EdgeMaskSplitsComponent: masking one closing edge dissolves
// the cycle it closed.
func TestMinVertex_EdgeMaskSplitsComponent(t *testing.T) {
	g := makeGraph(3, []edge{
		{0, 1, 0.2}, {1, 2, 0.2}, {2, 0, 0.2},
	})
	require.NotNil(t, scc.MinVertex(g, 0, nil))

	// Find and mask the 2→0 edge.
	var drop int
	var e int
	for e = 0; e < g.NumEdges(); e++ {
		if g.Tail[e] == 2 && g.Head[e] == 0 {
			drop = e
		}
	}
	masked := scc.MinVertex(g, 0, func(e int) bool { return e == drop })
	assert.Nil(t, masked)
}
