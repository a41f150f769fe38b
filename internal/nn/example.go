package nn

import "fmt"

// Example is one labeled training or test pair.
type Example struct {
	Input  []float64 // length sizes[0]
	Target []float64 // length sizes[L-1]
}

// CheckExample reports ErrDimensionMismatch if ex does not fit the network.
func (n *Network) CheckExample(ex Example) error {
	if len(n.sizes) == 0 {
		return fmt.Errorf("%w: network is not initialized", ErrInvalidTopology)
	}
	if len(ex.Input) != n.InputSize() {
		return dimensionError("input", len(ex.Input), n.InputSize())
	}
	if len(ex.Target) != n.OutputSize() {
		return dimensionError("target", len(ex.Target), n.OutputSize())
	}
	return nil
}
