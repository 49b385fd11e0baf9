// Package scc computes strongly connected components of the
// revealed-preference graph with Tarjan's algorithm (1972).
//
// Two variants share one iterative walker (explicit stack, no recursion, so
// deep observation sets cannot overflow the goroutine stack):
//
//   - Components(g): full partition of the vertex set. Components of size ≥ 2
//     are "nontrivial" and numbered 1..K; single-vertex components are
//     labelled 0 and skipped by every consumer. Self-loops never bind a
//     vertex into a nontrivial component — trivial 1-cycles are priced by a
//     linear scan elsewhere, not by the per-component solvers.
//
//   - MinVertex(g, start, skipEdge): the one nontrivial component with the
//     smallest minimum vertex in the subgraph induced on vertices ≥ start,
//     minus the edges skipEdge rejects; that smallest vertex is placed last
//     in the returned slice (the enumeration root for Johnson's algorithm),
//     or nil when no nontrivial component remains.
//
// Complexity:
//
//   - Time:   O(V + E) per call.
//   - Memory: O(V) for index/lowlink/stack arrays.
package scc
