package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid applies the logistic function element-wise.
//
// Applies: σ(z) = 1 / (1 + exp(-z))
//
// Large |z| saturates to exactly 0 or 1; no clamping is done.
//
// Example:
//
//	z := mat.NewVecDense(3, []float64{-1, 0, 1})
//	a := nn.Sigmoid(z) // [0.2689..., 0.5, 0.7310...]
func Sigmoid(z mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(z.Len(), nil)
	for i := 0; i < z.Len(); i++ {
		out.SetVec(i, sigmoid(z.AtVec(i)))
	}
	return out
}

// SigmoidPrime returns the derivative of the logistic function evaluated element-wise.
//
// Applies: σ'(z) = σ(z) ⊙ (1 - σ(z))
func SigmoidPrime(z mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(z.Len(), nil)
	for i := 0; i < z.Len(); i++ {
		s := sigmoid(z.AtVec(i))
		out.SetVec(i, s*(1-s))
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
