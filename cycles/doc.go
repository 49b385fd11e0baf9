// Package cycles finds and enumerates cycles of the revealed-preference
// graph. It is the seeding source for the cycle-cover integer programs: the
// index solvers call in here to grow their constraint sets on demand.
//
// Key features:
//   - HasStrictCycle: rationalizability gate — is there a cycle containing a
//     strict edge? (weak cycles alone never witness irrationality)
//   - Critical: depth-first search under a residual cost; every discovered
//     cycle is recorded, its cheapest residual edge removed from further
//     traversal, and the search unwinds to that edge's tail instead of
//     restarting
//   - Afriat: the estimate-raising variant of the same search; the final
//     estimate is exactly the maximum over cycles of the minimum edge weight
//   - ScanTwoCycles: linear seeding pass for length-2 cycles
//   - Johnson: elementary-cycle enumeration (Johnson 1975) over min-vertex
//     components, with an optional break-on-discovery mode that removes the
//     last strict edge of each strict cycle
//
// All searches take the CSR graph as immutable input and restrict it through
// vertex-scope and edge predicates; nothing here mutates the graph.
//
// Complexity:
//
//   - HasStrictCycle:                 O(V + E).
//   - ScanTwoCycles:                  O(E·d_max), d_max the maximum out-degree.
//   - Critical, Afriat:               O(V + E) per pass; a pass is re-run
//     after removals, bounded by the number of removable edges.
//   - Johnson:                        O((V + E)·(C + 1)) for C cycles —
//     exponential in V in the worst case.
//
// Errors: the searches are total; only Johnson returns an error, and only
// the caller's context cancellation (checked between root vertices).
package cycles
