// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the fully connected sigmoid network and its gradient computation.
//
// # Overview
//
// This package contains:
//   - Network: weights, biases, forward pass and backpropagation
//   - Activations: Sigmoid and its derivative SigmoidPrime
//   - Gradients: per-layer ∂C/∂w and ∂C/∂b, used as mini-batch accumulator
//   - Metrics: Cost, MeanSquaredError, Accuracy
//   - Initialization: Randn (standard normal)
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    net, err := nn.New([]int{2, 3, 1}, rand.NewPCG(1, 2))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass
//	    out, err := net.FeedForward([]float64{0, 1})
//
//	    // Gradient of ½‖out - target‖² for one example
//	    grads, err := net.Backprop([]float64{0, 1}, []float64{1})
//	}
//
// # Topology
//
// sizes[0] is the input width and sizes[len(sizes)-1] the output width. Layer l holds a
// sizes[l+1]×sizes[l] weight matrix and a bias of length sizes[l+1]:
//
//	net.Weight(0) // *mat.Dense, 3×2
//	net.Bias(0)   // *mat.VecDense, length 3
package nn
