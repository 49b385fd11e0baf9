package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks the observation matrices for shape and sign defects.
// Stage 1: shapes (equal, G ≥ 1, T ≥ 1).
// Stage 2: entries (prices > 0, quantities ≥ 0, everything finite).
// Stage 3: expenditures (p_t·x_t > 0 for every period).
// Complexity: O(G·T).
func Validate(prices, quantities mat.Matrix) error {
	// Stage 1: shape agreement.
	goods, periods := prices.Dims()
	qGoods, qPeriods := quantities.Dims()
	if goods != qGoods || periods != qPeriods {
		return fmt.Errorf("core: P is %d×%d, Q is %d×%d: %w",
			goods, periods, qGoods, qPeriods, ErrDimensionMismatch)
	}
	if goods < 1 || periods < 1 {
		return fmt.Errorf("core: need at least one good and one period: %w", ErrDimensionMismatch)
	}

	// Stage 2: entry-wise constraints.
	var g, t int
	var p, q float64
	for g = 0; g < goods; g++ {
		for t = 0; t < periods; t++ {
			p = prices.At(g, t)
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return fmt.Errorf("core: price[%d,%d]=%g: %w", g, t, p, ErrNonFinite)
			}
			if p <= 0 {
				return fmt.Errorf("core: price[%d,%d]=%g: %w", g, t, p, ErrNonPositivePrice)
			}
			q = quantities.At(g, t)
			if math.IsNaN(q) || math.IsInf(q, 0) {
				return fmt.Errorf("core: quantity[%d,%d]=%g: %w", g, t, q, ErrNonFinite)
			}
			if q < 0 {
				return fmt.Errorf("core: quantity[%d,%d]=%g: %w", g, t, q, ErrNegativeQuantity)
			}
		}
	}

	// Stage 3: strictly positive expenditures.
	for t = 0; t < periods; t++ {
		if expenditure(prices, quantities, t, t) <= 0 {
			return fmt.Errorf("core: period %d: %w", t, ErrZeroIncome)
		}
	}

	return nil
}

// Incomes returns the per-period expenditures w_t = p_t·x_t after validation.
func Incomes(prices, quantities mat.Matrix) ([]float64, error) {
	if err := Validate(prices, quantities); err != nil {
		return nil, err
	}

	_, periods := prices.Dims()
	income := make([]float64, periods)
	var t int
	for t = 0; t < periods; t++ {
		income[t] = expenditure(prices, quantities, t, t)
	}

	return income, nil
}

// expenditure computes p_v·x_u, the cost of period u's bundle at period v's prices.
func expenditure(prices, quantities mat.Matrix, v, u int) float64 {
	goods, _ := prices.Dims()
	var sum float64
	var g int
	for g = 0; g < goods; g++ {
		sum += prices.At(g, v) * quantities.At(g, u)
	}

	return sum
}
