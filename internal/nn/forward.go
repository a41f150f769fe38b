package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FeedForward computes the network output for a single input vector.
//
// For every layer: a = σ(W·a + b), starting with a = input.
//
// Parameters:
//   - input: Input activations, length sizes[0]
//
// Returns the output activations (length sizes[L-1]) or ErrDimensionMismatch.
// The network is not modified and input is not retained.
func (n *Network) FeedForward(input []float64) ([]float64, error) {
	if len(n.sizes) == 0 {
		return nil, fmt.Errorf("%w: network is not initialized", ErrInvalidTopology)
	}
	if len(input) != n.sizes[0] {
		return nil, dimensionError("input", len(input), n.sizes[0])
	}

	var a mat.Vector = mat.NewVecDense(len(input), append([]float64(nil), input...))
	for l := range n.weights {
		a = Sigmoid(n.affine(l, a))
	}
	return a.(*mat.VecDense).RawVector().Data, nil
}

// affine returns z = W[l]·a + b[l].
func (n *Network) affine(l int, a mat.Vector) *mat.VecDense {
	z := mat.NewVecDense(n.sizes[l+1], nil)
	z.MulVec(n.weights[l], a)
	z.AddVec(z, n.biases[l])
	return z
}
