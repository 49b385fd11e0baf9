package montecarlo

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/cycles"
	"github.com/katalvlaran/revpref/measures"
)

// ErrBadSampleCount indicates a non-positive number of requested draws.
var ErrBadSampleCount = errors.New("montecarlo: sample count must be positive")

// cmpEps absorbs solver round-off when comparing continuous index values.
const cmpEps = 1e-9

// Score is the percentile result of an observation set against uniform
// random choice on its own budget lines.
type Score struct {
	// Weak[k] is the share of draws whose k-th index was ≥ the observed one
	// ("weakly less rational than random").
	Weak []float64

	// Strict[k] is the share of draws whose k-th index was strictly greater.
	Strict []float64

	// PGARP is the share of draws that satisfy GARP themselves.
	PGARP float64

	// Failed counts draws that errored; they shrink the denominator.
	Failed int
}

// Option configures the driver.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
	seed    uint64
	eps     float64
}

// WithContext sets the cancellation context; checked before each draw.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers bounds the number of concurrent draws. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSeed fixes the base RNG seed. Zero keeps the deterministic default.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithEpsilon overrides the strict/weak threshold at graph build time.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.eps = eps
		}
	}
}

// draw is one worker's output.
type draw struct {
	values   []float64
	rational bool
	err      error
}

// PercentileScore scores (P, Q) against n uniform-budget-line draws. The
// observed index vector is computed once; every draw replaces Q with a
// sampled bundle matrix, re-runs the full battery, and is tallied against
// the observed values.
func PercentileScore(prices, quantities mat.Matrix, alphas []float64, n int, opts ...Option) (Score, error) {
	// 1) Options.
	o := options{ctx: context.Background(), workers: runtime.GOMAXPROCS(0)}
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if n < 1 {
		return Score{}, ErrBadSampleCount
	}

	// 2) Observed values (validates inputs as a side effect).
	observedGraph, err := core.NewGraph(prices, quantities, core.WithEpsilon(o.eps))
	if err != nil {
		return Score{}, err
	}
	observed, err := measures.SolveGraph(o.ctx, observedGraph, alphas)
	if err != nil {
		return Score{}, err
	}
	income := observedGraph.Income
	periods := float64(observedGraph.N)

	// 3) Fan the draws over a bounded group. Stream seeds are fixed up
	//    front, so scheduling cannot change any draw's outcome.
	results := make([]draw, n)
	grp, ctx := errgroup.WithContext(o.ctx)
	grp.SetLimit(o.workers)
	var i int
	for i = 0; i < n; i++ {
		i := i
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = runDraw(ctx, prices, income, alphas, o, uint64(i))

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return Score{}, err
	}

	// 4) Tally.
	score := Score{
		Weak:   make([]float64, len(observed)),
		Strict: make([]float64, len(observed)),
	}
	ok := 0
	garp := 0
	var k int
	var d draw
	for _, d = range results {
		if d.err != nil {
			score.Failed++

			continue
		}
		ok++
		if d.rational {
			garp++
		}
		for k = range observed {
			if weaklyAbove(k, d.values[k], observed[k], periods) {
				score.Weak[k]++
			}
			if strictlyAbove(k, d.values[k], observed[k], periods) {
				score.Strict[k]++
			}
		}
	}
	if ok == 0 {
		return score, nil
	}
	denom := float64(ok)
	for k = range observed {
		score.Weak[k] /= denom
		score.Strict[k] /= denom
	}
	score.PGARP = float64(garp) / denom

	return score, nil
}

// runDraw samples one bundle matrix and scores it. Side-effect free: its
// only inputs are the immutable prices/incomes and its private RNG stream.
func runDraw(ctx context.Context, prices mat.Matrix, income []float64, alphas []float64, o options, stream uint64) draw {
	sampled := sampleBundles(prices, income, streamSource(o.seed, stream))
	g, err := core.NewGraph(prices, sampled, core.WithEpsilon(o.eps))
	if err != nil {
		return draw{err: err}
	}
	values, err := measures.SolveGraph(ctx, g, alphas)
	if err != nil {
		return draw{err: err}
	}

	return draw{values: values, rational: !cycles.HasStrictCycle(g)}
}

// weaklyAbove compares a draw's index against the observed one, rounding
// the ordinal indices (HM, Swaps) back to integer removal counts first.
func weaklyAbove(k int, got, want, periods float64) bool {
	if ordinal(k) {
		return math.Round(got*periods) >= math.Round(want*periods)
	}

	return got >= want-cmpEps
}

// strictlyAbove is the strict counterpart of weaklyAbove.
func strictlyAbove(k int, got, want, periods float64) bool {
	if ordinal(k) {
		return math.Round(got*periods) > math.Round(want*periods)
	}

	return got > want+cmpEps
}

// ordinal reports whether index position k holds an integer-count index.
func ordinal(k int) bool { return k == measures.IdxHM || k == measures.IdxSwaps }
