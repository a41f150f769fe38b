// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model is the public training API: build or load a sigmoid MLP, train it with
// mini-batch SGD, run predictions, and save it to disk.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/model"
//	    "github.com/born-ml/mlp/optim"
//	)
//
//	func main() {
//	    m, err := model.New([]int{784, 30, 10}, optim.AccuracyEvaluator{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // 30 epochs, mini-batches of 10, learning rate 3.0
//	    if err := m.Train(train, 30, 10, 3.0, test); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := m.Save("mnist.bin"); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package model

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/serialization"
)

// Model couples a network with its SGD trainer and persistence settings.
//
// A Model is not safe for concurrent use.
type Model struct {
	net     *nn.Network
	trainer *optim.SGD
	src     rand.Source
	format  serialization.Format
}

// Common errors, re-exported for errors.Is checks.
var (
	ErrInvalidTopology       = nn.ErrInvalidTopology
	ErrDimensionMismatch     = nn.ErrDimensionMismatch
	ErrInvalidHyperparameter = optim.ErrInvalidHyperparameter
	ErrIO                    = serialization.ErrIO
	ErrCorruptFile           = serialization.ErrCorruptFile
	ErrUnsupportedVersion    = serialization.ErrUnsupportedVersion
)

// New creates a model with randomly initialized parameters for the given topology.
//
// Parameters:
//   - sizes: Layer widths, input first (e.g. [784, 30, 10])
//   - eval: Called at epoch boundaries during Train; nil disables evaluation
//   - opts: Seed, shuffle, parallelism and file format options
//
// Returns ErrInvalidTopology for fewer than two layers or a non-positive width.
func New(sizes []int, eval optim.Evaluator, opts ...Option) (*Model, error) {
	cfg := newConfig(opts)
	src := cfg.initSource()

	net, err := nn.New(sizes, src)
	if err != nil {
		return nil, err
	}
	return newModel(net, eval, src, cfg), nil
}

// Open creates a model from a file written by Save.
//
// Returns ErrIO or ErrCorruptFile if the file cannot be used.
func Open(path string, eval optim.Evaluator, opts ...Option) (*Model, error) {
	cfg := newConfig(opts)

	net, err := serialization.Load(path)
	if err != nil {
		return nil, err
	}
	return newModel(net, eval, cfg.initSource(), cfg), nil
}

func newModel(net *nn.Network, eval optim.Evaluator, src rand.Source, cfg config) *Model {
	return &Model{
		net: net,
		trainer: optim.NewSGD(net, optim.SGDConfig{
			Evaluator: eval,
			Shuffle:   cfg.shuffle,
			Rand:      cfg.shuffleRand(),
			Parallel:  cfg.parallel,
		}),
		src:    src,
		format: cfg.format,
	}
}

// Predict returns the network output for input.
func (m *Model) Predict(input []float64) ([]float64, error) {
	return m.net.FeedForward(input)
}

// Train runs mini-batch SGD; see optim.SGD.Train for the exact procedure.
//
// trainingData is shuffled in place.
func (m *Model) Train(trainingData []nn.Example, epochs, batchSize int, learningRate float64, testData []nn.Example) error {
	return m.trainer.Train(trainingData, epochs, batchSize, learningRate, testData)
}

// Save writes the parameters to path in the model's file format.
func (m *Model) Save(path string) error {
	return serialization.Save(path, m.net, serialization.Options{Format: m.format})
}

// Load replaces topology and parameters with the contents of path.
//
// On error the model is left exactly as it was. The epoch counter is not touched.
func (m *Model) Load(path string) error {
	net, err := serialization.Load(path)
	if err != nil {
		return err
	}
	m.net = net
	m.trainer.SetNetwork(net)
	return nil
}

// CurrentEpoch returns the trainer's epoch counter (0 before any training).
func (m *Model) CurrentEpoch() int {
	return m.trainer.Epoch()
}

// Reinitialize discards every parameter and draws a fresh random set for sizes.
//
// On error the model is unchanged.
func (m *Model) Reinitialize(sizes []int) error {
	return m.net.Initialize(sizes, m.src)
}

// Sizes returns the layer widths.
func (m *Model) Sizes() []int {
	return m.net.Sizes()
}

// Network returns the underlying network. Callers must not modify it during Train.
func (m *Model) Network() *nn.Network {
	return m.net
}
