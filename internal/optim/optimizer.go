// Package optim implements mini-batch stochastic gradient descent for nn.Network.
//
// This package provides:
//   - Partition: shuffles training examples and cuts them into fixed-size mini-batches
//   - SGD: the epoch / mini-batch / per-example-gradient training loop
//   - Evaluator: the capability called at epoch boundaries to report progress
//
// Example usage:
//
//	net, _ := nn.New([]int{2, 2, 1}, rand.NewPCG(1, 2))
//	sgd := optim.NewSGD(net, optim.SGDConfig{
//	    Evaluator: optim.LossEvaluator{},
//	})
//
//	if err := sgd.Train(trainData, 1000, 1, 3.0, testData); err != nil {
//	    log.Fatal(err)
//	}
package optim

import (
	"errors"
	"fmt"
	"math"
)

// Common errors.
var (
	ErrInvalidBatchSize      = errors.New("mini-batch size must be positive")
	ErrInvalidHyperparameter = errors.New("invalid training hyper-parameter")
)

// validateHyperparameters checks the arguments of SGD.Train.
func validateHyperparameters(epochs, batchSize int, learningRate float64) error {
	if epochs < 0 {
		return fmt.Errorf("%w: epochs = %d, must be >= 0", ErrInvalidHyperparameter, epochs)
	}
	if batchSize <= 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidHyperparameter, ErrInvalidBatchSize, batchSize)
	}
	if learningRate <= 0 || math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		return fmt.Errorf("%w: learning rate = %g, must be a positive finite number", ErrInvalidHyperparameter, learningRate)
	}
	return nil
}
