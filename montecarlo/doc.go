// Package montecarlo scores an observation set against random behavior:
// how often would a consumer choosing uniformly on the same budget lines
// look at least as irrational as the observed one?
//
// For each of N draws, every period's bundle is replaced by a uniform point
// of its budget plane B(p_t, w_t) = {x ≥ 0 : p_t·x = w_t}: G i.i.d. Exp(1)
// variates are normalized into income shares and divided by prices. Each
// draw is re-scored with the full index battery and tallied:
//
//	Weak[k]   = share of draws with index_k ≥ the observed value
//	Strict[k] = share of draws with index_k > the observed value
//	PGARP     = share of draws that are themselves rationalizable
//
// Ordinal indices (HM, Swaps) are rounded back to integer removal counts
// before comparison, so ties are exact.
//
// Draw RNG streams are derived up front (SplitMix64 over the base seed), so
// results are identical for a fixed seed no matter how many workers run or
// how the scheduler interleaves them. Draws are independent and run on a
// bounded errgroup; one failed draw shrinks the denominator and is counted,
// never aborting the run — only the caller's cancellation does.
//
// Errors:
//
//   - core validation sentinels    for malformed (P, Q).
//   - ErrBadSampleCount            if N < 1.
//   - the context's error          if cancelled; partial tallies are dropped.
package montecarlo
