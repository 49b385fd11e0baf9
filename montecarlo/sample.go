package montecarlo

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// sampleBundles draws one full G×T bundle matrix: column t is uniform on the
// budget plane {x ≥ 0 : p_t·x = income[t]}. Uniformity on the simplex comes
// from normalizing G i.i.d. Exp(1) (= Γ(1,1)) variates into income shares,
// then converting shares to quantities at the period's prices.
func sampleBundles(prices mat.Matrix, income []float64, src rand.Source) *mat.Dense {
	goods, periods := prices.Dims()
	exp := distuv.Exponential{Rate: 1, Src: src}
	out := mat.NewDense(goods, periods, nil)
	shares := make([]float64, goods)
	var t, g int
	var total float64
	for t = 0; t < periods; t++ {
		for g = 0; g < goods; g++ {
			shares[g] = exp.Rand()
		}
		total = floats.Sum(shares)
		for g = 0; g < goods; g++ {
			out.Set(g, t, shares[g]/total*income[t]/prices.At(g, t))
		}
	}

	return out
}
