// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// Network is a fully connected feed-forward network with sigmoid activations.
type Network = nn.Network

// Example is one labeled input/target pair.
type Example = nn.Example

// Gradients holds per-layer gradients of the quadratic cost.
type Gradients = nn.Gradients

// Common errors.
var (
	ErrInvalidTopology   = nn.ErrInvalidTopology
	ErrDimensionMismatch = nn.ErrDimensionMismatch
)

// New creates a network with N(0, 1) weights and biases.
//
// Example:
//
//	net, err := nn.New([]int{784, 30, 10}, rand.NewPCG(1, 2))
func New(sizes []int, src rand.Source) (*Network, error) {
	return nn.New(sizes, src)
}

// NewFromParameters builds a network from raw biases and row-major weights.
func NewFromParameters(sizes []int, biases, weights [][]float64) (*Network, error) {
	return nn.NewFromParameters(sizes, biases, weights)
}

// Activations

// Sigmoid applies 1 / (1 + exp(-z)) element-wise.
func Sigmoid(z mat.Vector) *mat.VecDense {
	return nn.Sigmoid(z)
}

// SigmoidPrime applies σ(z)(1 - σ(z)) element-wise.
func SigmoidPrime(z mat.Vector) *mat.VecDense {
	return nn.SigmoidPrime(z)
}

// Metrics

// Cost returns ½‖output - target‖² for one example.
func Cost(net *Network, ex Example) (float64, error) {
	return nn.Cost(net, ex)
}

// MeanSquaredError returns the mean of (output - target)² over all examples and outputs.
func MeanSquaredError(net *Network, data []Example) (float64, error) {
	return nn.MeanSquaredError(net, data)
}

// Accuracy returns the fraction of examples classified correctly by argmax.
func Accuracy(net *Network, data []Example) (float64, error) {
	return nn.Accuracy(net, data)
}

// CountCorrect returns how many examples are classified correctly by argmax.
func CountCorrect(net *Network, data []Example) (int, error) {
	return nn.CountCorrect(net, data)
}

// Initialization

// Randn creates a rows×cols matrix of N(0, 1) values drawn from src.
func Randn(rows, cols int, src rand.Source) *mat.Dense {
	return nn.Randn(rows, cols, src)
}
