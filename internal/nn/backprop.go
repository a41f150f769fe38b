package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Backprop computes the gradient of the quadratic cost C = ½‖a - target‖² for one example.
//
// Algorithm:
//  1. Forward pass, keeping every weighted input z(l) and activation a(l), a(0) = input.
//  2. Output error: δ = (a(L) - target) ⊙ σ'(z(L-1)).
//  3. For l = L-1 down to 0: ∂C/∂b(l) = δ, ∂C/∂w(l) = δ ⊗ a(l)ᵀ, then
//     δ = (w(l)ᵀ·δ) ⊙ σ'(z(l-1)) for the layer below.
//
// Returns gradients shaped like the network, or ErrDimensionMismatch.
// The network is not modified.
func (n *Network) Backprop(input, target []float64) (*Gradients, error) {
	if len(n.sizes) == 0 {
		return nil, fmt.Errorf("%w: network is not initialized", ErrInvalidTopology)
	}
	g := n.NewGradients()
	if err := n.BackpropInto(input, target, g); err != nil {
		return nil, err
	}
	return g, nil
}

// BackpropInto is Backprop that adds the example's gradients into dst instead of
// returning a new set. dst must be shaped like the network.
//
// Calls on the same network may run concurrently as long as each uses its own dst.
func (n *Network) BackpropInto(input, target []float64, dst *Gradients) error {
	if err := n.CheckExample(Example{Input: input, Target: target}); err != nil {
		return err
	}
	if err := n.checkGradients(dst); err != nil {
		return err
	}

	layers := len(n.weights)
	activations := make([]*mat.VecDense, layers+1)
	zs := make([]*mat.VecDense, layers)

	activations[0] = mat.NewVecDense(len(input), append([]float64(nil), input...))
	for l := 0; l < layers; l++ {
		zs[l] = n.affine(l, activations[l])
		activations[l+1] = Sigmoid(zs[l])
	}

	y := mat.NewVecDense(len(target), append([]float64(nil), target...))
	delta := mat.NewVecDense(n.sizes[layers], nil)
	delta.SubVec(activations[layers], y)
	delta.MulElemVec(delta, SigmoidPrime(zs[layers-1]))

	var outer mat.Dense
	for l := layers - 1; l >= 0; l-- {
		if l < layers-1 {
			below := mat.NewVecDense(n.sizes[l+1], nil)
			below.MulVec(n.weights[l+1].T(), delta)
			below.MulElemVec(below, SigmoidPrime(zs[l]))
			delta = below
		}

		dst.Biases[l].AddVec(dst.Biases[l], delta)

		outer.Reset()
		outer.Outer(1, delta, activations[l])
		dst.Weights[l].Add(dst.Weights[l], &outer)
	}
	return nil
}
