package serialization

import (
	"fmt"
	"math"
)

// Validation limits that stop a corrupt header from triggering huge allocations.
const (
	MaxLayers     = 1 << 16 // Maximum number of layers (len(sizes))
	MaxLayerWidth = 1 << 24 // Maximum units in a single layer
	MaxParameters = 1 << 27 // Maximum weights + biases (1 GiB of float64)
)

// ValidateLayerCount checks the declared number of layers.
func ValidateLayerCount(layers int32) error {
	if layers < 2 {
		return &ValidationError{
			Type:    "layer_count",
			Details: fmt.Sprintf("got %d, need at least 2", layers),
		}
	}
	if layers > MaxLayers {
		return &ValidationError{
			Type:    "layer_count",
			Details: fmt.Sprintf("got %d, max %d", layers, MaxLayers),
		}
	}
	return nil
}

// ValidateSizes checks every declared layer width and the total parameter count.
func ValidateSizes(sizes []int32) error {
	for i, s := range sizes {
		if s <= 0 {
			return &ValidationError{
				Type:    "layer_size",
				Field:   fmt.Sprintf("sizes[%d]", i),
				Details: fmt.Sprintf("got %d, must be positive", s),
			}
		}
		if s > MaxLayerWidth {
			return &ValidationError{
				Type:    "layer_size",
				Field:   fmt.Sprintf("sizes[%d]", i),
				Details: fmt.Sprintf("got %d, max %d", s, MaxLayerWidth),
			}
		}
	}

	var total int64
	for l := 0; l+1 < len(sizes); l++ {
		total += int64(sizes[l+1]) * (int64(sizes[l]) + 1)
		if total > MaxParameters {
			return &ValidationError{
				Type:    "parameter_count",
				Details: fmt.Sprintf("more than %d parameters declared", MaxParameters),
			}
		}
	}
	return nil
}

// validateWritable applies the reader's header checks to a network about to be written,
// so that every file Write produces can be read back.
func validateWritable(sizes []int) error {
	if len(sizes) > MaxLayers {
		return ValidateLayerCount(MaxLayers + 1)
	}
	sizes32 := make([]int32, len(sizes))
	for i, s := range sizes {
		if s > math.MaxInt32 {
			return &ValidationError{
				Type:    "layer_size",
				Field:   fmt.Sprintf("sizes[%d]", i),
				Details: fmt.Sprintf("%d does not fit int32", s),
			}
		}
		sizes32[i] = int32(s)
	}
	if err := ValidateLayerCount(int32(len(sizes))); err != nil {
		return err
	}
	return ValidateSizes(sizes32)
}
