// Package bip solves the binary integer programs behind the cycle-cover
// index solvers:
//
//	min  c·x    s.t.  every row is hit (Σ_{i∈row} x_i ≥ 1),  x ∈ {0,1}ⁿ,
//	             optionally  Σ x_i ≤ MaxCard.
//
// Rows are sparse: each lists the columns whose selection satisfies it. In
// the index solvers a row encodes "at least one element of this cycle must
// be removed" and a column is one removable element (an edge, a vertex, or a
// per-period removal level).
//
// The solver is a deterministic depth-first Branch-and-Bound:
//  1. Branch on the first unsatisfied row; try its columns in ascending
//     (cost, index) order. Every minimal cover is reachable this way, and a
//     cardinality-capped program only admits minimal covers.
//  2. Prune with an admissible bound: spent cost, plus the cheapest way to
//     hit the hardest unsatisfied row, plus the best case of any
//     negative-cost columns still addable.
//  3. A greedy cover seeds the incumbent before the search starts
//     (uncapped programs only; under MaxCard the search starts without one).
//  4. Cancellation is polled sparsely (every 1024 node events).
//
// Negative costs are accepted — the geometric-mean stage of the α = 0 solve
// uses log-weights — and at a feasible leaf any still-affordable
// negative-cost columns are swept in, so optima never strand free gains.
//
// Complexity: worst case exponential in columns; the instances here are
// small (rows are cycles, columns their removable elements) and pruning is
// effective. Memory O(rows + columns).
//
// Errors:
//
//   - ErrInfeasible       if some row has no columns at all, or no cover fits
//     under MaxCard.
//   - ErrBadShape         if a row indexes a column out of range, or costs
//     and columns disagree in length.
//   - context's error     if the caller cancels mid-search.
package bip
