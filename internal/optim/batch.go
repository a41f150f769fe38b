package optim

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/born-ml/mlp/internal/nn"
)

// ShuffleMode selects how Partition permutes the training data.
type ShuffleMode int

const (
	// ShuffleUnbiased is the textbook Fisher-Yates shuffle: every permutation is equally likely.
	ShuffleUnbiased ShuffleMode = iota
	// ShuffleLegacy swaps each index i in [0, n-2] with a uniform index in [0, n-1].
	// This is not a uniform permutation; it is kept for behavioral parity with older runs.
	ShuffleLegacy
)

// String returns the flag spelling of the mode.
func (m ShuffleMode) String() string {
	switch m {
	case ShuffleUnbiased:
		return "unbiased"
	case ShuffleLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("ShuffleMode(%d)", int(m))
	}
}

// ParseShuffleMode parses "unbiased" or "legacy" (case-insensitive).
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unbiased", "":
		return ShuffleUnbiased, nil
	case "legacy":
		return ShuffleLegacy, nil
	default:
		return 0, fmt.Errorf("unknown shuffle mode %q (want unbiased or legacy)", s)
	}
}

// Shuffle permutes data in place using rng.
func Shuffle(data []nn.Example, rng *rand.Rand, mode ShuffleMode) {
	n := len(data)
	switch mode {
	case ShuffleLegacy:
		for i := 0; i < n-1; i++ {
			j := rng.IntN(n)
			data[i], data[j] = data[j], data[i]
		}
	default:
		rng.Shuffle(n, func(i, j int) {
			data[i], data[j] = data[j], data[i]
		})
	}
}

// Partition shuffles data in place and splits it into mini-batches.
//
// The result holds floor(len(data)/batchSize) consecutive batches of exactly batchSize
// examples each, in shuffled order. The trailing len(data) % batchSize examples are not
// part of any batch this time; a fresh shuffle next epoch gives them another chance.
// Returns no batches when batchSize > len(data).
//
// Batches are sub-slices of data, not copies. rng must not be nil.
//
// Parameters:
//   - data: Training examples; reordered in place
//   - batchSize: Examples per batch, must be positive
//   - rng: Random source for the shuffle
//   - mode: Shuffle algorithm
//
// Returns ErrInvalidBatchSize if batchSize <= 0.
func Partition(data []nn.Example, batchSize int, rng *rand.Rand, mode ShuffleMode) ([][]nn.Example, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}

	Shuffle(data, rng, mode)

	count := len(data) / batchSize
	batches := make([][]nn.Example, count)
	for b := range batches {
		start := b * batchSize
		batches[b] = data[start : start+batchSize : start+batchSize]
	}
	return batches, nil
}
