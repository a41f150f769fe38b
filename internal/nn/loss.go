package nn

import (
	"gonum.org/v1/gonum/floats"
)

// Cost returns the quadratic cost ½‖FeedForward(ex.Input) - ex.Target‖² of one example.
//
// This is the cost whose gradient Backprop computes.
func Cost(net *Network, ex Example) (float64, error) {
	if err := net.CheckExample(ex); err != nil {
		return 0, err
	}
	out, err := net.FeedForward(ex.Input)
	if err != nil {
		return 0, err
	}
	floats.Sub(out, ex.Target)
	return 0.5 * floats.Dot(out, out), nil
}

// MeanSquaredError returns the mean of (output - target)² over every output unit of
// every example. Returns 0 for an empty set.
func MeanSquaredError(net *Network, data []Example) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var sum float64
	for _, ex := range data {
		c, err := Cost(net, ex)
		if err != nil {
			return 0, err
		}
		sum += 2 * c
	}
	return sum / float64(len(data)*net.OutputSize()), nil
}

// Accuracy returns the fraction of examples whose strongest output unit matches the
// strongest target unit (one-hot classification). Returns 0 for an empty set.
func Accuracy(net *Network, data []Example) (float64, error) {
	correct, err := CountCorrect(net, data)
	if err != nil || len(data) == 0 {
		return 0, err
	}
	return float64(correct) / float64(len(data)), nil
}

// CountCorrect returns how many examples are classified correctly by argmax.
func CountCorrect(net *Network, data []Example) (int, error) {
	correct := 0
	for _, ex := range data {
		if err := net.CheckExample(ex); err != nil {
			return 0, err
		}
		out, err := net.FeedForward(ex.Input)
		if err != nil {
			return 0, err
		}
		if floats.MaxIdx(out) == floats.MaxIdx(ex.Target) {
			correct++
		}
	}
	return correct, nil
}
