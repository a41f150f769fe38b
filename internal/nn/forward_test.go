package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/nn"
)

func TestFeedForward_HandComputed(t *testing.T) {
	// z = 1*2 + (-1)*1 + 0 = 1
	net, err := nn.NewFromParameters([]int{2, 1}, [][]float64{{0}}, [][]float64{{1, -1}})
	require.NoError(t, err)

	out, err := net.FeedForward([]float64{2, 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.7310585786300049, out[0], 1e-15)
}

func TestFeedForward_TwoLayers(t *testing.T) {
	net, err := nn.NewFromParameters(
		[]int{1, 2, 1},
		[][]float64{{0, 0}, {-1}},
		[][]float64{{1, -1}, {2, 2}},
	)
	require.NoError(t, err)

	out, err := net.FeedForward([]float64{0})
	require.NoError(t, err)

	// Hidden layer is [0.5, 0.5]; output z = 2*0.5 + 2*0.5 - 1 = 1.
	assert.InDelta(t, 0.7310585786300049, out[0], 1e-15)
}

func TestFeedForward_OutputShapeAndRange(t *testing.T) {
	net := newNet(t, 784, 30, 10)

	input := make([]float64, 784)
	for i := range input {
		input[i] = float64(i%17) / 16
	}

	out, err := net.FeedForward(input)
	require.NoError(t, err)
	require.Len(t, out, 10)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestFeedForward_Deterministic(t *testing.T) {
	net := newNet(t, 3, 5, 4, 2)
	input := []float64{0.1, -0.7, 2.5}

	first, err := net.FeedForward(input)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := net.FeedForward(input)
		require.NoError(t, err)
		for j := range first {
			assert.Equal(t, math.Float64bits(first[j]), math.Float64bits(again[j]))
		}
	}
}

func TestFeedForward_DoesNotModify(t *testing.T) {
	net := newNet(t, 3, 4, 2)
	before := net.Clone()
	input := []float64{1, 2, 3}

	out, err := net.FeedForward(input)
	require.NoError(t, err)
	out[0] = 42

	assert.True(t, net.Equal(before))
	assert.Equal(t, []float64{1, 2, 3}, input)
}

func TestFeedForward_DimensionMismatch(t *testing.T) {
	net := newNet(t, 3, 4, 2)

	_, err := net.FeedForward([]float64{1, 2})
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)

	_, err = net.FeedForward(nil)
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}

func TestFeedForward_Uninitialized(t *testing.T) {
	var net nn.Network
	_, err := net.FeedForward([]float64{1})
	assert.ErrorIs(t, err, nn.ErrInvalidTopology)
}
