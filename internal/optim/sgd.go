package optim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
)

// SGD trains a network with mini-batch stochastic gradient descent.
//
// Update rule, applied once per mini-batch of m examples:
//
//	w = w - (lr / m) * Σ ∂C/∂w
//	b = b - (lr / m) * Σ ∂C/∂b
//
// where each ∂C is computed by backpropagation of one example. There is no momentum,
// no regularization and no stopping criterion: Train always runs every requested epoch.
//
// Example:
//
//	sgd := optim.NewSGD(net, optim.SGDConfig{
//	    Evaluator: optim.AccuracyEvaluator{},
//	    Rand:      rand.New(rand.NewPCG(42, 42)),
//	})
//	err := sgd.Train(trainData, 30, 10, 3.0, testData)
type SGD struct {
	net       *nn.Network
	evaluator Evaluator
	shuffle   ShuffleMode
	rng       *rand.Rand
	parallel  parallel.Config
	epoch     int
}

// SGDConfig holds configuration for the SGD trainer.
type SGDConfig struct {
	Evaluator Evaluator       // Called at epoch boundaries (default: none)
	Shuffle   ShuffleMode     // Mini-batch shuffle algorithm (default: ShuffleUnbiased)
	Rand      *rand.Rand      // Shuffle randomness (default: seeded from the wall clock)
	Parallel  parallel.Config // Per-example fan-out inside a batch (default: sequential)
}

// NewSGD creates a trainer for net.
//
// The trainer keeps a reference to net and mutates it during Train.
func NewSGD(net *nn.Network, config SGDConfig) *SGD {
	// Set defaults
	if config.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		config.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return &SGD{
		net:       net,
		evaluator: config.Evaluator,
		shuffle:   config.Shuffle,
		rng:       config.Rand,
		parallel:  config.Parallel,
	}
}

// Network returns the network being trained.
func (s *SGD) Network() *nn.Network {
	return s.net
}

// SetNetwork points the trainer at another network. The epoch counter is kept.
func (s *SGD) SetNetwork(net *nn.Network) {
	s.net = net
}

// SetEvaluator replaces the epoch-boundary evaluator. nil disables evaluation.
func (s *SGD) SetEvaluator(e Evaluator) {
	s.evaluator = e
}

// Epoch returns the current epoch: 0 before training and during the baseline evaluation,
// e while epoch e runs and after it completes.
func (s *SGD) Epoch() int {
	return s.epoch
}

// Train runs mini-batch SGD over trainingData.
//
// Steps:
//  1. Reset the epoch counter to 0; if testData is non-empty, evaluate once (baseline).
//  2. For each epoch e in 1..epochs: set the counter to e, shuffle trainingData in place
//     and partition it (see Partition), and for each mini-batch sum the per-example
//     gradients and apply the averaged update. Then evaluate if testData is non-empty.
//
// trainingData is reordered in place. Every example is checked against the network
// shape before any parameter changes.
//
// Parameters:
//   - trainingData: Labeled examples to learn from
//   - epochs: Number of passes, >= 0
//   - batchSize: Examples per mini-batch, > 0
//   - learningRate: Step size, > 0
//   - testData: Examples handed to the evaluator; may be empty
//
// Returns ErrInvalidHyperparameter, nn.ErrDimensionMismatch, or the first error hit
// during an update. After a mid-training error the network holds the result of the last
// completed mini-batch.
func (s *SGD) Train(trainingData []nn.Example, epochs, batchSize int, learningRate float64, testData []nn.Example) error {
	if err := validateHyperparameters(epochs, batchSize, learningRate); err != nil {
		return err
	}
	for i, ex := range trainingData {
		if err := s.net.CheckExample(ex); err != nil {
			return fmt.Errorf("training example %d: %w", i, err)
		}
	}

	s.epoch = 0
	evaluate := len(testData) > 0 && s.evaluator != nil
	if evaluate {
		s.evaluator.Evaluate(s.net, s.epoch, testData)
	}

	// One accumulator per worker chunk; every batch has exactly batchSize examples.
	accumulators := make([]*nn.Gradients, parallel.Chunks(batchSize, s.parallel))
	for i := range accumulators {
		accumulators[i] = s.net.NewGradients()
	}

	for e := 1; e <= epochs; e++ {
		s.epoch = e

		batches, err := Partition(trainingData, batchSize, s.rng, s.shuffle)
		if err != nil {
			return err
		}
		for b, batch := range batches {
			if err := s.step(batch, learningRate, accumulators); err != nil {
				return fmt.Errorf("epoch %d, batch %d: %w", e, b, err)
			}
		}

		if evaluate {
			s.evaluator.Evaluate(s.net, s.epoch, testData)
		}
	}
	return nil
}

// step computes the summed gradient of batch and applies the averaged update.
func (s *SGD) step(batch []nn.Example, learningRate float64, accumulators []*nn.Gradients) error {
	chunks := parallel.Chunks(len(batch), s.parallel)
	errs := make([]error, chunks)

	parallel.Range(len(batch), s.parallel, func(c, start, end int) {
		acc := accumulators[c]
		acc.Zero()
		for _, ex := range batch[start:end] {
			if err := s.net.BackpropInto(ex.Input, ex.Target, acc); err != nil {
				errs[c] = err
				return
			}
		}
	})
	if err := errors.Join(errs...); err != nil {
		return err
	}

	sum := accumulators[0]
	for _, acc := range accumulators[1:chunks] {
		if err := sum.Add(acc); err != nil {
			return err
		}
	}
	return s.net.Update(sum, learningRate/float64(len(batch)))
}
