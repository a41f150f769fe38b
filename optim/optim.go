// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/parallel"
)

// SGD (Stochastic Gradient Descent)

// SGD represents the mini-batch SGD trainer.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD trainer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD trainer for net.
//
// Example:
//
//	sgd := optim.NewSGD(net, optim.SGDConfig{
//	    Evaluator: optim.AccuracyEvaluator{},
//	    Parallel:  optim.DefaultParallelConfig(),
//	})
func NewSGD(net *nn.Network, config SGDConfig) *SGD {
	return optim.NewSGD(net, config)
}

// ParallelConfig controls per-example gradient fan-out inside a mini-batch.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses one worker per physical core.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Mini-batches

// ShuffleMode selects the shuffle algorithm used before partitioning.
type ShuffleMode = optim.ShuffleMode

// Shuffle modes.
const (
	ShuffleUnbiased = optim.ShuffleUnbiased
	ShuffleLegacy   = optim.ShuffleLegacy
)

// ParseShuffleMode parses "unbiased" or "legacy".
func ParseShuffleMode(s string) (ShuffleMode, error) {
	return optim.ParseShuffleMode(s)
}

// Partition shuffles data in place and splits it into full mini-batches.
func Partition(data []nn.Example, batchSize int, rng *rand.Rand, mode ShuffleMode) ([][]nn.Example, error) {
	return optim.Partition(data, batchSize, rng, mode)
}

// Evaluation

// Evaluator reports on the network at epoch boundaries.
type Evaluator = optim.Evaluator

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc = optim.EvaluatorFunc

// AccuracyEvaluator logs argmax classification accuracy.
type AccuracyEvaluator = optim.AccuracyEvaluator

// LossEvaluator logs mean squared error.
type LossEvaluator = optim.LossEvaluator

// Common errors.
var (
	ErrInvalidBatchSize      = optim.ErrInvalidBatchSize
	ErrInvalidHyperparameter = optim.ErrInvalidHyperparameter
)
