package moneypump

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/cycles"
)

// Stats aggregates the Money-Pump Index over all elementary cycles with at
// least one strict edge.
type Stats struct {
	// AvgMPI is the mean over cycles of (total saving / total expenditure).
	AvgMPI float64

	// NormalizedMPI is the mean over cycles of the per-step saving share.
	NormalizedMPI float64

	// Cycles is the number of contributing cycles.
	Cycles int
}

// Option configures the enumeration.
type Option func(*options)

type options struct {
	ctx context.Context
	eps float64
}

// WithContext sets the cancellation context (checked between enumeration
// roots). Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEpsilon overrides the strict/weak threshold at graph build time.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.eps = eps
		}
	}
}

// Index enumerates every elementary cycle of the revealed-preference graph
// of (P, Q) and returns the Money-Pump statistics. On a rationalizable
// dataset (no strict cycle) all fields are zero.
func Index(prices, quantities mat.Matrix, opts ...Option) (Stats, error) {
	// 1) Options and graph build.
	o := options{ctx: context.Background()}
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	g, err := core.NewGraph(prices, quantities, core.WithEpsilon(o.eps))
	if err != nil {
		return Stats{}, err
	}

	// 2) Enumerate; accumulate the two contributions per strict cycle.
	//    The raw saving of edge e is its weight times its tail's
	//    expenditure: p_v·(x_v − x_u) = w(v→u) · p_v·x_v.
	var sumAvg, sumNorm float64
	count := 0
	err = cycles.Johnson(o.ctx, g, nil, func(edges []int, strict bool) cycles.Action {
		if !strict {
			return cycles.Continue // a weak cycle pumps no money
		}
		var saving, spent, share float64
		var e int
		for _, e = range edges {
			saving += g.Weight[e] * g.Income[g.Tail[e]]
			spent += g.Income[g.Tail[e]]
			share += g.Weight[e]
		}
		sumAvg += saving / spent
		sumNorm += share / float64(len(edges))
		count++

		return cycles.Continue
	})
	if err != nil {
		return Stats{}, err
	}

	// 3) Means over the cycle count.
	if count == 0 {
		return Stats{}, nil
	}

	return Stats{
		AvgMPI:        sumAvg / float64(count),
		NormalizedMPI: sumNorm / float64(count),
		Cycles:        count,
	}, nil
}
