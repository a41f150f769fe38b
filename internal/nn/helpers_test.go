package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/nn"
)

// newNet builds a network with a fixed seed so failures are reproducible.
func newNet(t *testing.T, sizes ...int) *nn.Network {
	t.Helper()
	net, err := nn.New(sizes, rand.NewPCG(7, 11))
	require.NoError(t, err)
	return net
}

// flatten returns all biases followed by all weights (row-major), layer by layer.
func flatten(net *nn.Network) []float64 {
	var out []float64
	for l := 0; l < net.LayerCount(); l++ {
		b := net.Bias(l)
		for j := 0; j < b.Len(); j++ {
			out = append(out, b.AtVec(j))
		}
	}
	for l := 0; l < net.LayerCount(); l++ {
		rows, _ := net.Weight(l).Dims()
		for j := 0; j < rows; j++ {
			out = append(out, net.Weight(l).RawRowView(j)...)
		}
	}
	return out
}

// flattenGradients lays out g exactly like flatten lays out parameters.
func flattenGradients(g *nn.Gradients) []float64 {
	var out []float64
	for _, b := range g.Biases {
		for j := 0; j < b.Len(); j++ {
			out = append(out, b.AtVec(j))
		}
	}
	for _, w := range g.Weights {
		rows, cols := w.Dims()
		for j := 0; j < rows; j++ {
			for k := 0; k < cols; k++ {
				out = append(out, w.At(j, k))
			}
		}
	}
	return out
}

// unflatten is the inverse of flatten for the given topology.
func unflatten(t testing.TB, sizes []int, x []float64) *nn.Network {
	layers := len(sizes) - 1
	biases := make([][]float64, layers)
	weights := make([][]float64, layers)
	pos := 0
	for l := 0; l < layers; l++ {
		biases[l] = x[pos : pos+sizes[l+1]]
		pos += sizes[l+1]
	}
	for l := 0; l < layers; l++ {
		n := sizes[l+1] * sizes[l]
		weights[l] = x[pos : pos+n]
		pos += n
	}
	net, err := nn.NewFromParameters(sizes, biases, weights)
	require.NoError(t, err)
	return net
}
