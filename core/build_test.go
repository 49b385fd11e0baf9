package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/revpref/core"
)

// TestValidate_ShapeMismatch rejects P and Q of different dimensions.
func TestValidate_ShapeMismatch(t *testing.T) {
	p := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	q := mat.NewDense(2, 3, []float64{1, 1, 1, 1, 1, 1})
	err := core.Validate(p, q)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

// TestValidate_SignDefects rejects non-positive prices, negative quantities,
// zero expenditures, and non-finite entries — each with its own sentinel.
func TestValidate_SignDefects(t *testing.T) {
	q := mat.NewDense(1, 2, []float64{1, 1})

	err := core.Validate(mat.NewDense(1, 2, []float64{0, 1}), q)
	assert.ErrorIs(t, err, core.ErrNonPositivePrice)

	err = core.Validate(mat.NewDense(1, 2, []float64{1, 1}), mat.NewDense(1, 2, []float64{-1, 1}))
	assert.ErrorIs(t, err, core.ErrNegativeQuantity)

	err = core.Validate(mat.NewDense(1, 2, []float64{1, 1}), mat.NewDense(1, 2, []float64{0, 1}))
	assert.ErrorIs(t, err, core.ErrZeroIncome)

	err = core.Validate(mat.NewDense(1, 2, []float64{math.NaN(), 1}), q)
	assert.ErrorIs(t, err, core.ErrNonFinite)
}

// TestNewGraph_SinglePeriod builds the trivial empty graph: one observation
// can never reveal a preference over another.
func TestNewGraph_SinglePeriod(t *testing.T) {
	p := mat.NewDense(2, 1, []float64{1, 2})
	q := mat.NewDense(2, 1, []float64{3, 1})
	g, err := core.NewGraph(p, q)
	require.NoError(t, err)
	assert.Equal(t, 1, g.N)
	assert.Zero(t, g.NumEdges())
	assert.Equal(t, []float64{5}, g.Income)
}

// strictTwoCycle is the classic WARP violation: each period's bundle was
// affordable when the other was chosen. Both cross edges carry weight 1/2.
func strictTwoCycle(t *testing.T) *core.Graph {
	t.Helper()
	p := mat.NewDense(2, 2, []float64{
		2, 1, // good 0 prices over the two periods
		1, 2, // good 1 prices
	})
	q := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	g, err := core.NewGraph(p, q)
	require.NoError(t, err)

	return g
}

// TestNewGraph_StrictTwoCycle checks edge emission and the weight formula.
func TestNewGraph_StrictTwoCycle(t *testing.T) {
	g := strictTwoCycle(t)
	require.Equal(t, 2, g.NumEdges())

	// 0→1: income 2, the other bundle costs 1 → weight (2−1)/2.
	assert.Equal(t, 0, g.Tail[0])
	assert.Equal(t, 1, g.Head[0])
	assert.InDelta(t, 0.5, g.Weight[0], 1e-12)

	// 1→0 mirrors it.
	assert.Equal(t, 1, g.Tail[1])
	assert.Equal(t, 0, g.Head[1])
	assert.InDelta(t, 0.5, g.Weight[1], 1e-12)
}

// TestNewGraph_CSRInvariants asserts the storage contract on a dense case:
// offsets non-decreasing and exhaustive, weights in [0,1], out-edges sorted
// by (weight, head), no self-loops.
func TestNewGraph_CSRInvariants(t *testing.T) {
	p := mat.NewDense(2, 4, []float64{
		1, 2, 1, 3,
		2, 1, 1, 1,
	})
	q := mat.NewDense(2, 4, []float64{
		2, 1, 2, 1,
		1, 2, 2, 3,
	})
	g, err := core.NewGraph(p, q)
	require.NoError(t, err)

	assert.Zero(t, g.Offsets[0])
	assert.Equal(t, g.NumEdges(), g.Offsets[g.N])
	var v, e int
	for v = 0; v < g.N; v++ {
		lo, hi := g.OutEdges(v)
		assert.LessOrEqual(t, lo, hi)
		for e = lo; e < hi; e++ {
			assert.Equal(t, v, g.Tail[e])
			assert.NotEqual(t, v, g.Head[e], "self-loop in base graph")
			assert.GreaterOrEqual(t, g.Weight[e], 0.0)
			assert.LessOrEqual(t, g.Weight[e], 1.0)
			if e > lo {
				ordered := g.Weight[e-1] < g.Weight[e] ||
					(g.Weight[e-1] == g.Weight[e] && g.Head[e-1] < g.Head[e])
				assert.True(t, ordered, "out-edges of %d not (weight, head) sorted", v)
			}
		}
	}
}

// TestNewGraph_ScaleInvariance: rescaling each period's prices rescales its
// income but not a single edge weight.
func TestNewGraph_ScaleInvariance(t *testing.T) {
	p := mat.NewDense(2, 3, []float64{1, 2, 1, 2, 1, 1})
	q := mat.NewDense(2, 3, []float64{1, 2, 2, 2, 1, 2})
	g1, err := core.NewGraph(p, q)
	require.NoError(t, err)

	scaled := mat.NewDense(2, 3, nil)
	lambda := []float64{3, 0.25, 7}
	var gi, ti int
	for gi = 0; gi < 2; gi++ {
		for ti = 0; ti < 3; ti++ {
			scaled.Set(gi, ti, p.At(gi, ti)*lambda[ti])
		}
	}
	g2, err := core.NewGraph(scaled, q)
	require.NoError(t, err)

	require.Equal(t, g1.NumEdges(), g2.NumEdges())
	var e int
	for e = 0; e < g1.NumEdges(); e++ {
		assert.Equal(t, g1.Head[e], g2.Head[e])
		assert.InDelta(t, g1.Weight[e], g2.Weight[e], 1e-12)
	}
}

// TestReverse_SortedByWeightThenTail checks the reverse-adjacency contract.
func TestReverse_SortedByWeightThenTail(t *testing.T) {
	p := mat.NewDense(2, 4, []float64{1, 2, 1, 3, 2, 1, 1, 1})
	q := mat.NewDense(2, 4, []float64{2, 1, 2, 1, 1, 2, 2, 3})
	g, err := core.NewGraph(p, q)
	require.NoError(t, err)

	offsets, edges := g.Reverse()
	assert.Equal(t, g.NumEdges(), offsets[g.N])
	seen := 0
	var v, k int
	for v = 0; v < g.N; v++ {
		for k = offsets[v]; k < offsets[v+1]; k++ {
			assert.Equal(t, v, g.Head[edges[k]])
			if k > offsets[v] {
				prev, cur := edges[k-1], edges[k]
				ordered := g.Weight[prev] < g.Weight[cur] ||
					(g.Weight[prev] == g.Weight[cur] && g.Tail[prev] < g.Tail[cur])
				assert.True(t, ordered, "in-edges of %d not (weight, tail) sorted", v)
			}
			seen++
		}
	}
	assert.Equal(t, g.NumEdges(), seen)
}

// TestBitmask_SetClearHas exercises the bit operations at word boundaries.
func TestBitmask_SetClearHas(t *testing.T) {
	m := core.NewBitmask(130)
	for _, i := range []int{0, 63, 64, 129} {
		assert.False(t, m.Has(i))
		m.Set(i)
		assert.True(t, m.Has(i))
	}
	assert.True(t, m.Any())
	m.Clear(64)
	assert.False(t, m.Has(64))
	m.Reset()
	assert.False(t, m.Any())
}

// TestCycleSet_SlabLayout verifies append/len/view bookkeeping.
func TestCycleSet_SlabLayout(t *testing.T) {
	var s core.CycleSet
	s.Append([]int{3, 1, 2})
	s.Append([]int{7, 8})
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []int{3, 1, 2}, s.Cycle(0))
	assert.Equal(t, []int{7, 8}, s.Cycle(1))

	var got [][]int
	s.EachFrom(1, func(_ int, edges []int) {
		got = append(got, append([]int(nil), edges...))
	})
	assert.Equal(t, [][]int{{7, 8}}, got)
}
