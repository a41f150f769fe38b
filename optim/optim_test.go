// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/mlp/nn"
	"github.com/born-ml/mlp/optim"
)

// TestPublicAPI trains a tiny network through the re-exported API.
func TestPublicAPI(t *testing.T) {
	net, err := nn.New([]int{1, 2, 1}, rand.NewPCG(2, 2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	calls := 0
	sgd := optim.NewSGD(net, optim.SGDConfig{
		Evaluator: optim.EvaluatorFunc(func(*nn.Network, int, []nn.Example) { calls++ }),
		Rand:      rand.New(rand.NewPCG(3, 3)),
		Parallel:  optim.DefaultParallelConfig(),
	})

	data := []nn.Example{
		{Input: []float64{0}, Target: []float64{1}},
		{Input: []float64{1}, Target: []float64{0}},
	}
	if err := sgd.Train(data, 3, 1, 0.5, data); err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if calls != 4 {
		t.Errorf("expected 4 evaluator calls, got %d", calls)
	}
	if sgd.Epoch() != 3 {
		t.Errorf("expected epoch 3, got %d", sgd.Epoch())
	}
}

// TestPartition verifies the re-exported batching helper.
func TestPartition(t *testing.T) {
	data := make([]nn.Example, 10)
	rng := rand.New(rand.NewPCG(1, 1))

	batches, err := optim.Partition(data, 3, rng, optim.ShuffleLegacy)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	if len(batches) != 3 {
		t.Errorf("expected 3 batches, got %d", len(batches))
	}

	if _, err := optim.Partition(data, 0, rng, optim.ShuffleUnbiased); !errors.Is(err, optim.ErrInvalidBatchSize) {
		t.Errorf("expected ErrInvalidBatchSize, got %v", err)
	}
}
