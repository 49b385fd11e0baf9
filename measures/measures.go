package measures

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/cycles"
	"github.com/katalvlaran/revpref/scc"
)

// RationalityMeasures computes the full index vector for the observations
// (P, Q): [Afriat, HM, Swaps, then (Varian_j, InvVarian_j, NMCI_j) for each
// α_j]. P and Q are G×T, column t holding period t's prices and bundle.
func RationalityMeasures(prices, quantities mat.Matrix, alphas []float64, opts ...Option) ([]float64, error) {
	o := applyOptions(opts)
	g, err := core.NewGraph(prices, quantities, core.WithEpsilon(o.Eps))
	if err != nil {
		return nil, err
	}

	return solve(&o, g, alphas)
}

// RationalityMeasuresSymmetric computes the same vector under a utility
// symmetric in the goods, i.e. over the permutation-maximum graph.
func RationalityMeasuresSymmetric(prices, quantities mat.Matrix, alphas []float64, opts ...Option) ([]float64, error) {
	o := applyOptions(opts)
	g, err := core.NewSymmetricGraph(prices, quantities, core.WithEpsilon(o.Eps))
	if err != nil {
		return nil, err
	}

	return solve(&o, g, alphas)
}

// DataRationalizable reports whether (P, Q) satisfies GARP: no
// revealed-preference cycle contains a strict edge. Weak cycles alone are
// consistent with maximization and do not fail the test.
func DataRationalizable(prices, quantities mat.Matrix, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	g, err := core.NewGraph(prices, quantities, core.WithEpsilon(o.Eps))
	if err != nil {
		return false, err
	}

	return !cycles.HasStrictCycle(g), nil
}

// SolveGraph computes the index vector over a pre-built graph. This is the
// inner call of the Monte-Carlo driver: no re-validation, no rebuild.
func SolveGraph(ctx context.Context, g *core.Graph, alphas []float64) ([]float64, error) {
	o := DefaultOptions()
	if ctx != nil {
		o.Ctx = ctx
	}

	return solve(&o, g, alphas)
}

// applyOptions folds the option setters over the defaults.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// hybridAgg accumulates the α = 0 pieces across components and self-loops:
// the support size and the sum of level logs.
type hybridAgg struct {
	support int
	logSum  float64
}

// value is (|S| + geometric mean of the levels) / T, or 0 on empty support.
func (h hybridAgg) value(periods float64) float64 {
	if h.support == 0 {
		return 0
	}

	return (float64(h.support) + math.Exp(h.logSum/float64(h.support))) / periods
}

// solve dispatches the six indices over the nontrivial components and the
// trivial self-loop scan, then assembles the normalized vector.
func solve(o *Options, g *core.Graph, alphas []float64) ([]float64, error) {
	// 1) Validate the α vector eagerly.
	var j int
	var a float64
	for j, a = range alphas {
		if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, fmt.Errorf("measures: alpha[%d]=%g: %w", j, a, ErrNegativeAlpha)
		}
	}

	// 2) Component dispatch structures.
	part := scc.Components(g)
	members := make([][]int, part.Count+1)
	var v int
	for v = 0; v < g.N; v++ {
		if part.Comp[v] != 0 {
			members[part.Comp[v]] = append(members[part.Comp[v]], v)
		}
	}
	loops := cycles.StrictSelfLoops(g)
	periods := float64(g.N)
	out := make([]float64, 3+PerAlpha*len(alphas))

	// 3) Afriat: exact search plus the self-loop floor.
	afriat := cycles.Afriat(g, func(v int) bool { return part.Comp[v] != 0 })
	var e int
	for _, e = range loops {
		if g.Weight[e] > afriat {
			afriat = g.Weight[e]
		}
	}
	out[IdxAfriat] = afriat

	// 4) Trivial 1-cycles: fixed costs per index.
	hm := float64(len(loops))
	swaps := float64(len(loops))
	varTotal := make([]float64, len(alphas))
	invTotal := make([]float64, len(alphas))
	nmciTotal := make([]float64, len(alphas))
	varZero := make([]hybridAgg, len(alphas))
	invZero := make([]hybridAgg, len(alphas))
	var w float64
	for j, a = range alphas {
		for _, e = range loops {
			w = g.Weight[e]
			if a == 0 {
				varZero[j].support++
				varZero[j].logSum += math.Log(w)
				invZero[j].support++
				invZero[j].logSum += math.Log(w)

				continue
			}
			w = math.Pow(w, a)
			varTotal[j] += w
			invTotal[j] += w
			nmciTotal[j] += w
		}
	}

	// 5) Per-component solves. The continuous indices run first so the
	//    ordinal ones inherit their cycle pool as warm seeds.
	var id int
	var val, lg float64
	var sup int
	var err error
	for id = 1; id <= part.Count; id++ {
		cs := newCompSolver(o, g, members[id])
		for j, a = range alphas {
			if a == 0 {
				// NMCI degenerates to Swaps (accounted in step 6); the two
				// level indices take the hybrid two-stage path.
				if sup, lg, err = cs.varianZero(false); err != nil {
					return nil, err
				}
				varZero[j].support += sup
				varZero[j].logSum += lg
				if sup, lg, err = cs.varianZero(true); err != nil {
					return nil, err
				}
				invZero[j].support += sup
				invZero[j].logSum += lg

				continue
			}
			if val, err = cs.nmci(a); err != nil {
				return nil, err
			}
			nmciTotal[j] += val
			if val, err = cs.varian(a, false); err != nil {
				return nil, err
			}
			varTotal[j] += val
			if val, err = cs.varian(a, true); err != nil {
				return nil, err
			}
			invTotal[j] += val
		}
		if val, err = cs.houtmanMaks(); err != nil {
			return nil, err
		}
		hm += val
		if val, err = cs.swaps(); err != nil {
			return nil, err
		}
		swaps += val
	}

	// 6) Normalize and assemble.
	out[IdxHM] = hm / periods
	out[IdxSwaps] = swaps / periods
	var base int
	for j, a = range alphas {
		base = IdxSwaps + 1 + PerAlpha*j
		if a == 0 {
			out[base] = varZero[j].value(periods)
			out[base+1] = invZero[j].value(periods)
			out[base+2] = out[IdxSwaps]

			continue
		}
		out[base] = varTotal[j] / periods
		out[base+1] = invTotal[j] / periods
		out[base+2] = nmciTotal[j] / periods
	}

	return out, nil
}
