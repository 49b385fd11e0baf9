package montecarlo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/revpref/montecarlo"
)

// observed is a T=3, G=2 dataset with a genuine strict violation between the
// first two periods.
func observed() (*mat.Dense, *mat.Dense) {
	p := mat.NewDense(2, 3, []float64{2, 1, 1, 1, 2, 1})
	q := mat.NewDense(2, 3, []float64{1, 0, 1, 0, 1, 2})

	return p, q
}

// TestPercentileScore_Bounds: probabilities live in [0,1] and strict never
// exceeds weak, index by index.
func TestPercentileScore_Bounds(t *testing.T) {
	p, q := observed()
	score, err := montecarlo.PercentileScore(p, q, []float64{1}, 64,
		montecarlo.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, score.Weak, 6)
	require.Len(t, score.Strict, 6)
	assert.Zero(t, score.Failed)
	var k int
	for k = range score.Weak {
		assert.GreaterOrEqual(t, score.Weak[k], 0.0)
		assert.LessOrEqual(t, score.Weak[k], 1.0)
		assert.LessOrEqual(t, score.Strict[k], score.Weak[k]+1e-12, "index %d", k)
	}
	assert.GreaterOrEqual(t, score.PGARP, 0.0)
	assert.LessOrEqual(t, score.PGARP, 1.0)
}

// TestPercentileScore_Deterministic: a fixed seed gives identical scores no
// matter how many workers carry the draws.
func TestPercentileScore_Deterministic(t *testing.T) {
	p, q := observed()
	one, err := montecarlo.PercentileScore(p, q, []float64{1}, 32,
		montecarlo.WithSeed(99), montecarlo.WithWorkers(1))
	require.NoError(t, err)
	many, err := montecarlo.PercentileScore(p, q, []float64{1}, 32,
		montecarlo.WithSeed(99), montecarlo.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, one.Weak, many.Weak)
	assert.Equal(t, one.Strict, many.Strict)
	assert.Equal(t, one.PGARP, many.PGARP)
}

// TestPercentileScore_SeedMatters: different seeds draw different samples.
func TestPercentileScore_SeedMatters(t *testing.T) {
	p, q := observed()
	a, err := montecarlo.PercentileScore(p, q, []float64{1}, 48, montecarlo.WithSeed(1))
	require.NoError(t, err)
	b, err := montecarlo.PercentileScore(p, q, []float64{1}, 48, montecarlo.WithSeed(2))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestPercentileScore_RationalizableObserved: with observed indices at zero,
// every draw is weakly at least as irrational; Weak must be all ones.
func TestPercentileScore_RationalizableObserved(t *testing.T) {
	p := mat.NewDense(2, 3, []float64{1, 1, 1, 1, 1, 1})
	q := mat.NewDense(2, 3, []float64{1, 2, 3, 1, 2, 3})
	score, err := montecarlo.PercentileScore(p, q, []float64{1}, 32)
	require.NoError(t, err)
	var k int
	for k = range score.Weak {
		assert.InDelta(t, 1.0, score.Weak[k], 1e-12, "index %d", k)
	}
}

// TestPercentileScore_BadCount rejects non-positive N.
func TestPercentileScore_BadCount(t *testing.T) {
	p, q := observed()
	_, err := montecarlo.PercentileScore(p, q, nil, 0)
	assert.ErrorIs(t, err, montecarlo.ErrBadSampleCount)
}

// TestPercentileScore_Cancelled aborts with the context's error.
func TestPercentileScore_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, q := observed()
	_, err := montecarlo.PercentileScore(p, q, nil, 8, montecarlo.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
