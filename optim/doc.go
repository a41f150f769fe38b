// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides mini-batch stochastic gradient descent for nn.Network.
//
// # Overview
//
// This package contains:
//   - SGD: epochs → shuffled mini-batches → summed per-example gradients → averaged update
//   - Partition: the shuffle-and-split mini-batch scheduler
//   - Evaluator: progress reporting at epoch boundaries
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/nn"
//	    "github.com/born-ml/mlp/optim"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{2, 2, 1}, rand.NewPCG(1, 2))
//
//	    sgd := optim.NewSGD(net, optim.SGDConfig{
//	        Evaluator: optim.LossEvaluator{},
//	    })
//
//	    // 1000 epochs, batch size 1, learning rate 3.0
//	    if err := sgd.Train(xor, 1000, 1, 3.0, xor); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Evaluators
//
// Any type with an Evaluate(net, epoch, testData) method works; functions can be
// adapted with EvaluatorFunc:
//
//	eval := optim.EvaluatorFunc(func(net *nn.Network, epoch int, test []nn.Example) {
//	    acc, _ := nn.Accuracy(net, test)
//	    fmt.Printf("epoch %d: %.2f%%\n", epoch, 100*acc)
//	})
package optim
