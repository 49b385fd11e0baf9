// Package measures — options, sentinel errors, and the result layout.
package measures

import (
	"context"
	"errors"
)

var (
	// ErrNegativeAlpha indicates a negative or non-finite α in the request.
	ErrNegativeAlpha = errors.New("measures: alpha must be a finite non-negative real")

	// ErrNonConvergence indicates the outer loop exceeded its 5·T iteration
	// cap. Diagnostic only: it cannot trip with a correct oracle.
	ErrNonConvergence = errors.New("measures: cycle-cover loop failed to converge")
)

// iterCapFactor bounds outer iterations at iterCapFactor·T per solve.
const iterCapFactor = 5

// Index positions within the result vector.
const (
	// IdxAfriat, IdxHM and IdxSwaps locate the three α-free indices.
	IdxAfriat = 0
	IdxHM     = 1
	IdxSwaps  = 2

	// PerAlpha is the stride of the (Varian, InvVarian, NMCI) triple that
	// follows for each requested α: triple j starts at IdxSwaps+1+PerAlpha·j.
	PerAlpha = 3
)

// Option configures a solve. Use with the entry points.
type Option func(*Options)

// Options holds configurable parameters for the index solvers.
// Zero value is not meaningful; DefaultOptions is applied first.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked between outer iterations and inside the integer program.
	Ctx context.Context

	// Eps separates strict from weak preferences when the entry point
	// builds the graph itself. Ignored by SolveGraph (the graph carries
	// its own threshold).
	Eps float64
}

// DefaultOptions returns the standard configuration: background context and
// the core package's strictness threshold.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Eps: 0}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon overrides the strict/weak threshold used at graph build time.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Eps = eps
		}
	}
}
