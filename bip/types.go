// Package bip — problem/solution types and sentinel errors.
package bip

import "errors"

var (
	// ErrInfeasible indicates that no selection satisfies every row: some
	// row has no columns, or no cover fits under MaxCard.
	ErrInfeasible = errors.New("bip: infeasible cover problem")

	// ErrBadShape indicates a malformed problem (column index out of range).
	ErrBadShape = errors.New("bip: malformed problem shape")
)

// solveEps is the minimal strictly-better improvement between incumbents.
const solveEps = 1e-12

// cancelCheckMask throttles context polling to every 1024 node events.
const cancelCheckMask = 1023

// Problem is one cycle-cover binary integer program.
type Problem struct {
	// Cost[i] is the objective coefficient of column i. Costs may be
	// negative (the geometric-mean stage of the α=0 solve passes
	// log-weights); see MaxCard.
	Cost []float64

	// Rows lists, per constraint, the columns whose selection satisfies it.
	// Duplicate rows and duplicate columns within a row are permitted and
	// harmless.
	Rows [][]int

	// MaxCard, when positive, bounds the number of selected columns.
	// Zero means unbounded.
	MaxCard int
}

// Solution reports an optimal selection.
type Solution struct {
	// Chosen lists the selected column indexes in ascending order.
	Chosen []int

	// Objective is the optimal cost c·x.
	Objective float64
}
