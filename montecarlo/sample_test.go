package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/revpref/core"
)

// TestSampleBundles_OnBudgetPlane: every sampled column spends exactly its
// period's income, with non-negative quantities.
func TestSampleBundles_OnBudgetPlane(t *testing.T) {
	p := mat.NewDense(3, 4, []float64{
		1, 2, 1, 3,
		2, 1, 1, 1,
		1, 1, 2, 2,
	})
	q := mat.NewDense(3, 4, []float64{
		1, 1, 2, 1,
		1, 2, 1, 1,
		2, 1, 1, 3,
	})
	income, err := core.Incomes(p, q)
	require.NoError(t, err)

	sampled := sampleBundles(p, income, streamSource(42, 0))
	var ti, g int
	var spent float64
	for ti = 0; ti < 4; ti++ {
		spent = 0
		for g = 0; g < 3; g++ {
			assert.GreaterOrEqual(t, sampled.At(g, ti), 0.0)
			spent += p.At(g, ti) * sampled.At(g, ti)
		}
		assert.InDelta(t, income[ti], spent, 1e-9, "period %d off its budget plane", ti)
	}
}

// TestDeriveSeed_SpreadsStreams: adjacent stream ids must not collide.
func TestDeriveSeed_SpreadsStreams(t *testing.T) {
	seen := make(map[uint64]bool)
	var i uint64
	for i = 0; i < 1000; i++ {
		s := deriveSeed(defaultSeed, i)
		assert.False(t, seen[s], "stream %d collided", i)
		seen[s] = true
	}
}
