package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewSymmetricGraph builds the revealed-preference graph under a utility
// symmetric in the goods: the saving against bundle u is maximized over all
// G! relabelings π of u's goods,
//
//	E[v,u] = p_v·x_v − min_π p_v·π(x_u),
//
// so a preference is revealed whenever ANY relabeling of u was affordable.
// Relabeling bundles or prices is equivalent; bundles are permuted here.
// Self-comparisons are kept: a strict self-loop means the period's own
// relabeled bundle was strictly cheaper than the chosen one (a symmetry
// violation on a single observation). Weak self-loops (the identity
// relabeling is always free) are suppressed.
//
// Complexity: O(G!·G·T²) time; G is capped at MaxSymmetricGoods.
func NewSymmetricGraph(prices, quantities mat.Matrix, opts ...Option) (*Graph, error) {
	// 1) Validate inputs and precompute expenditures.
	income, err := Incomes(prices, quantities)
	if err != nil {
		return nil, err
	}
	goods, periods := prices.Dims()
	if goods > MaxSymmetricGoods {
		return nil, fmt.Errorf("core: G=%d exceeds %d: %w", goods, MaxSymmetricGoods, ErrTooManyGoods)
	}

	// 2) Apply options.
	bo := defaultBuildOptions()
	var fn Option
	for _, fn = range opts {
		fn(&bo)
	}

	// 3) Enumerate the G! relabelings once.
	perms := permutations(goods)

	// 4) Emit edges against the cheapest relabeling of each bundle.
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
			saving = income[v] - minPermutedExpenditure(prices, quantities, v, u, perms)
			if saving < 0 {
				continue
			}
			if u == v && saving <= 0 {
				continue // identity relabeling: a weak self-loop carries no information
			}
			heads = append(heads, u)
			weights = append(weights, clampUnit(saving/income[v]))
		}
		appendSortedOut(g, v, heads, weights)
	}

	return g, nil
}

// minPermutedExpenditure returns min_π p_v·π(x_u) over the supplied relabelings.
func minPermutedExpenditure(prices, quantities mat.Matrix, v, u int, perms [][]int) float64 {
	goods, _ := prices.Dims()
	var best, sum float64
	var first = true
	var g int
	var perm []int
	for _, perm = range perms {
		sum = 0
		for g = 0; g < goods; g++ {
			sum += prices.At(g, v) * quantities.At(perm[g], u)
		}
		if first || sum < best {
			best = sum
			first = false
		}
	}

	return best
}

// permutations enumerates all orderings of 0..n-1 via Heap's algorithm.
// The identity permutation is always present (it is emitted first).
func permutations(n int) [][]int {
	work := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		work[i] = i
	}
	var out [][]int
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, append([]int(nil), work...))

			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	generate(n)

	return out
}
