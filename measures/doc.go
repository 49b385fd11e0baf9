// Package measures computes the rationality indices of an observation set:
// Afriat, Houtman–Maks, Swaps, and the Varian-α / Inverse-Varian-α /
// Normalized-Minimum-Cost-α families, plainly or under a goods-symmetric
// utility.
//
// Every index except Afriat is the optimum of a cycle-cover binary integer
// program over the revealed-preference graph, and all of them share one
// outer loop, run per nontrivial strongly connected component:
//
//	seed cheap length-2 cycles
//	repeat
//	    extend the constraint matrix with the newly found cycles
//	    solve the integer program (bip)
//	    expand the solution into removals, per the index's semantics
//	    hunt for cycles the removals miss (critical DFS under residual
//	    costs; Johnson fallback for the ordinal indices when weak edges
//	    are present)
//	until no new cycle
//
// Removal semantics per index:
//   - Houtman–Maks  — whole observations, cost 1 each; value is count/T.
//   - Swaps         — single edges, cost 1 each; value is count/T.
//   - NMCI-α        — single edges, cost w^α; value is total/T. At α = 0
//     the program degenerates to unit costs and the value equals Swaps.
//   - Varian-α      — per-period levels on out-edges: choosing level w(i)
//     for period t removes every out-edge of t with weight ≤ w(i);
//     cost w(i)^α; value is total/T. At α = 0 a two-stage solve minimizes
//     support size, then the geometric mean of the levels.
//   - InvVarian-α   — the mirror image along in-edges.
//   - Afriat        — exact, no integer program: the estimate-raising DFS.
//
// Strict self-loops (symmetric mode only) are trivial 1-cycles priced by a
// linear scan outside the component dispatch: 1 for the ordinal indices,
// w^α for the continuous ones, a floor of w for Afriat.
//
// Convergence is guaranteed — every outer iteration adds at least one
// previously unsatisfied constraint — and additionally capped at 5·T
// iterations as a diagnostic (ErrNonConvergence).
//
// Entry points:
//
//   - RationalityMeasures(P, Q, alphas, opts...)          plain indices
//   - RationalityMeasuresSymmetric(P, Q, alphas, opts...) symmetric indices
//   - DataRationalizable(P, Q, opts...)                   the GARP test
//   - SolveGraph(ctx, g, alphas)                          pre-built graphs
//     (what the Monte-Carlo driver calls in its inner loop)
//
// The returned vector is [Afriat, HM, Swaps, then (Varian_j, InvVarian_j,
// NMCI_j) for each α_j], length 3 + 3·|alphas|.
//
// Errors:
//
//   - core validation sentinels     for malformed (P, Q).
//   - ErrNegativeAlpha              if some α is negative or non-finite.
//   - ErrNonConvergence             if the 5·T diagnostic cap trips.
//   - bip.ErrInfeasible             surfaced fatal from the oracle.
//   - context.Canceled / DeadlineExceeded when the caller cancels.
package measures
