// Package revpref quantifies how far observed consumer choices deviate from
// utility-maximizing behavior.
//
// 🚀 What is revpref?
//
//	A numerical engine for revealed-preference analysis that takes, for each
//	of T periods, a positive price vector and a non-negative purchased bundle
//	over G goods, and computes a battery of rationality indices:
//
//	  • Afriat's efficiency index
//	  • Houtman–Maks and Swaps (ordinal removal counts)
//	  • Varian-α, Inverse-Varian-α and the Normalized-Minimum-Cost-α family
//	  • the same indices under a goods-symmetric utility assumption
//	  • Money-Pump statistics and Monte-Carlo percentile scores
//
// ✨ Why choose revpref?
//
//   - Exact                — Afriat comes from an exact search; every other
//     index is the optimum of a cycle-cover integer program over the
//     weighted revealed-preference graph
//   - Deterministic        — stable orderings and seeded RNG streams make
//     every run reproducible, including the parallel Monte-Carlo driver
//   - Cancellable          — all long-running solves honor context.Context
//   - Pure Go              — no cgo, no external solver processes
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/       — observation validation, the CSR revealed-preference graph,
//	              the goods-permutation (symmetric) extension, cycle slabs
//	scc/        — Tarjan strongly-connected components (full and min-vertex)
//	cycles/     — critical-cycle DFS, Afriat's search, Johnson enumeration
//	bip/        — the binary integer-program oracle (cycle-cover form)
//	measures/   — the six index solvers and the public entry points
//	moneypump/  — Money-Pump Index statistics over elementary cycles
//	montecarlo/ — uniform budget-plane sampling and percentile scoring
//
// Quick sketch: with prices p_v and bundles x_v, an edge v→u exists whenever
// bundle u was affordable when v was chosen, weighted by the relative saving
//
//	w(v→u) = p_v·(x_v − x_u) / p_v·x_v ∈ [0, 1].
//
// Acyclicity of the strict part of this graph is exactly rationalizability
// (GARP); every index measures the cheapest way to restore it.
//
//	go get github.com/katalvlaran/revpref
package revpref
