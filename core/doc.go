// Package core builds and stores the weighted revealed-preference graph that
// every index solver consumes.
//
// Given prices P ∈ ℝ_{>0}^{G×T} and bundles Q ∈ ℝ_{≥0}^{G×T} (column t is
// period t), an edge v→u exists iff bundle u was affordable when v was
// chosen, i.e. p_v·x_v ≥ p_v·x_u, with weight
//
//	w(v→u) = p_v·(x_v − x_u) / p_v·x_v ∈ [0, 1].
//
// Weight 0 is a weak revealed preference (u sits exactly on v's budget
// line); weight > 0 is a strict one. Self-loops are excluded from the base
// graph; they appear only in the goods-symmetric extension, where a period's
// own relabeled bundle can be strictly cheaper than the chosen one.
//
// Key features:
//   - NewGraph(P, Q, opts...): validated CSR build; out-edges of each vertex
//     are contiguous and sorted by (weight ascending, head ascending)
//   - NewSymmetricGraph(P, Q, opts...): permutation-maximum weights over the
//     G! relabelings of bundles (G ≤ MaxSymmetricGoods)
//   - Reverse(): build-once reverse adjacency with in-edges sorted by
//     (weight ascending, tail ascending)
//   - Bitmask: bitset over edge or vertex indexes for subgraph restriction,
//     so the CSR stays immutable through an entire solve
//   - CycleSet: append-only flat slab of cycles (edge indices + sizes)
//
// Storage (CSR): Offsets[0..T], Head[0..E), Weight[0..E). Edges of vertex v
// occupy Head[Offsets[v]:Offsets[v+1]]. The graph is built once per (P, Q)
// and immutable thereafter; all per-solve state lives with the caller.
//
// Complexity:
//
//   - Time:   O(G·T²) for the base build, O(G!·G·T²) for the symmetric one.
//   - Memory: O(T²) worst-case edges.
//
// Errors:
//
//   - ErrDimensionMismatch    if P and Q shapes differ or G < 1 or T < 1.
//   - ErrNonPositivePrice     if some price is ≤ 0.
//   - ErrNegativeQuantity     if some quantity is < 0.
//   - ErrZeroIncome           if some period's expenditure p_t·x_t is ≤ 0.
//   - ErrNonFinite            if any input entry is NaN or ±Inf.
//   - ErrTooManyGoods         if symmetric mode is asked for G > MaxSymmetricGoods.
package core
