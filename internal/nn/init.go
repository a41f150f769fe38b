package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Randn creates a rows×cols matrix with values drawn from the standard normal distribution.
//
// Values are drawn from N(0, 1) using src, so a fixed source gives fixed weights.
//
// Parameters:
//   - rows, cols: Matrix shape
//   - src: Random source
//
// Returns a dense matrix with random normal values.
func Randn(rows, cols int, src rand.Source) *mat.Dense {
	return mat.NewDense(rows, cols, normals(rows*cols, src))
}

// RandnVec creates a vector of length n with values drawn from N(0, 1).
func RandnVec(n int, src rand.Source) *mat.VecDense {
	return mat.NewVecDense(n, normals(n, src))
}

func normals(n int, src rand.Source) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	data := make([]float64, n)
	for i := range data {
		data[i] = dist.Rand()
	}
	return data
}
