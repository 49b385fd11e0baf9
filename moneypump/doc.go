// Package moneypump computes Money-Pump Index statistics of an observation
// set: how much money an arbitrageur could extract by trading around the
// revealed-preference cycles.
//
// Every elementary cycle (t₁,…,tₙ) containing at least one strict edge
// contributes
//
//	average:     Σᵢ p_{tᵢ}·(x_{tᵢ}−x_{tᵢ₊₁})  /  Σᵢ p_{tᵢ}·x_{tᵢ}
//	normalized:  (1/n) Σᵢ p_{tᵢ}·(x_{tᵢ}−x_{tᵢ₊₁}) / (p_{tᵢ}·x_{tᵢ})
//
// and the reported statistics are the means of those contributions over the
// cycle count (zeros when no cycle exists). Cycles are enumerated once each,
// rooted at their smallest vertex — one representative per rotation class.
//
// Enumeration is Johnson's algorithm without removal and is therefore
// exponential in the number of observations in the worst case; that is the
// advertised price of an exhaustive pump census.
//
// Errors: input validation sentinels from core, or the caller's context
// cancellation.
package moneypump
