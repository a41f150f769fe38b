package optim

import (
	"log"
	"os"

	"github.com/born-ml/mlp/internal/nn"
)

// Evaluator reports on the network between epochs.
//
// SGD.Train calls Evaluate once before the first epoch (epoch 0) and once after every
// completed epoch, but only when the test set is non-empty. Calls happen synchronously on
// the training goroutine. Implementations may read the network but must not modify it,
// and have no way to abort training.
type Evaluator interface {
	Evaluate(net *nn.Network, epoch int, testData []nn.Example)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(net *nn.Network, epoch int, testData []nn.Example)

// Evaluate calls f(net, epoch, testData).
func (f EvaluatorFunc) Evaluate(net *nn.Network, epoch int, testData []nn.Example) {
	f(net, epoch, testData)
}

// AccuracyEvaluator logs how many test examples the network classifies correctly,
// comparing the argmax of the output with the argmax of the one-hot target.
//
// Output looks like: "Epoch 3: 9412 / 10000".
type AccuracyEvaluator struct {
	Logger *log.Logger // nil logs to stderr
}

// Evaluate implements Evaluator.
func (e AccuracyEvaluator) Evaluate(net *nn.Network, epoch int, testData []nn.Example) {
	logger := loggerOrDefault(e.Logger)
	correct, err := nn.CountCorrect(net, testData)
	if err != nil {
		logger.Printf("Epoch %d: evaluation failed: %v", epoch, err)
		return
	}
	logger.Printf("Epoch %d: %d / %d", epoch, correct, len(testData))
}

// LossEvaluator logs the mean squared error of the network on the test set.
type LossEvaluator struct {
	Logger *log.Logger // nil logs to stderr
}

// Evaluate implements Evaluator.
func (e LossEvaluator) Evaluate(net *nn.Network, epoch int, testData []nn.Example) {
	logger := loggerOrDefault(e.Logger)
	mse, err := nn.MeanSquaredError(net, testData)
	if err != nil {
		logger.Printf("Epoch %d: evaluation failed: %v", epoch, err)
		return
	}
	logger.Printf("Epoch %d: mse %.6f", epoch, mse)
}

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}
