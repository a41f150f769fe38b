package nn

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Network is a fully connected feed-forward network with a sigmoid on every weighted layer.
//
// For a topology sizes = [s0, s1, ..., s(L-1)] the network holds L-1 weighted layers.
// Layer l maps s(l) inputs to s(l+1) outputs:
//   - weight[l] has shape [s(l+1), s(l)]; entry (j, k) connects input k to output j
//   - bias[l] has length s(l+1)
//
// Weights and biases are gonum dense types backed by contiguous row-major storage.
//
// A Network is not safe for concurrent mutation. Concurrent reads (FeedForward, Backprop)
// are fine while nothing calls Update, Initialize or writes through Weight/Bias.
//
// Example:
//
//	net, err := nn.New([]int{784, 30, 10}, rand.NewPCG(1, 2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := net.FeedForward(pixels) // len(out) == 10
type Network struct {
	sizes   []int
	weights []*mat.Dense
	biases  []*mat.VecDense
}

// New creates a network for the given topology with N(0, 1) weights and biases.
//
// Parameters:
//   - sizes: Layer widths, input first; at least two positive entries
//   - src: Random source for the initial parameters
//
// Returns ErrInvalidTopology if sizes is too short or holds a non-positive width.
func New(sizes []int, src rand.Source) (*Network, error) {
	n := &Network{}
	if err := n.Initialize(sizes, src); err != nil {
		return nil, err
	}
	return n, nil
}

// Initialize replaces every parameter of the network with a freshly drawn set for sizes.
//
// Previously held parameters are discarded, not extended. For each layer the bias is drawn
// before the weight matrix. On error the network is left unchanged.
func (n *Network) Initialize(sizes []int, src rand.Source) error {
	if err := validateTopology(sizes); err != nil {
		return err
	}

	layers := len(sizes) - 1
	weights := make([]*mat.Dense, layers)
	biases := make([]*mat.VecDense, layers)
	for l := 0; l < layers; l++ {
		biases[l] = RandnVec(sizes[l+1], src)
		weights[l] = Randn(sizes[l+1], sizes[l], src)
	}

	n.sizes = append([]int(nil), sizes...)
	n.weights = weights
	n.biases = biases
	return nil
}

// NewFromParameters builds a network from raw parameter values.
//
// biases[l] must hold sizes[l+1] values and weights[l] must hold sizes[l+1]*sizes[l]
// values in row-major order. The slices are copied.
func NewFromParameters(sizes []int, biases, weights [][]float64) (*Network, error) {
	if err := validateTopology(sizes); err != nil {
		return nil, err
	}
	layers := len(sizes) - 1
	if len(biases) != layers {
		return nil, dimensionError("bias list", len(biases), layers)
	}
	if len(weights) != layers {
		return nil, dimensionError("weight list", len(weights), layers)
	}

	n := &Network{
		sizes:   append([]int(nil), sizes...),
		weights: make([]*mat.Dense, layers),
		biases:  make([]*mat.VecDense, layers),
	}
	for l := 0; l < layers; l++ {
		rows, cols := sizes[l+1], sizes[l]
		if len(biases[l]) != rows {
			return nil, dimensionError(fmt.Sprintf("bias[%d]", l), len(biases[l]), rows)
		}
		if len(weights[l]) != rows*cols {
			return nil, dimensionError(fmt.Sprintf("weight[%d]", l), len(weights[l]), rows*cols)
		}
		n.biases[l] = mat.NewVecDense(rows, append([]float64(nil), biases[l]...))
		n.weights[l] = mat.NewDense(rows, cols, append([]float64(nil), weights[l]...))
	}
	return n, nil
}

func validateTopology(sizes []int) error {
	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidTopology, len(sizes))
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: layer %d has size %d", ErrInvalidTopology, i, s)
		}
	}
	return nil
}

// Sizes returns a copy of the layer widths.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// LayerCount returns the number of weighted layers (len(sizes) - 1).
func (n *Network) LayerCount() int {
	return len(n.weights)
}

// InputSize returns sizes[0].
func (n *Network) InputSize() int {
	if len(n.sizes) == 0 {
		return 0
	}
	return n.sizes[0]
}

// OutputSize returns sizes[L-1].
func (n *Network) OutputSize() int {
	if len(n.sizes) == 0 {
		return 0
	}
	return n.sizes[len(n.sizes)-1]
}

// Weight returns the weight matrix of layer l.
//
// The matrix is shared with the network; writes through it change the network.
func (n *Network) Weight(l int) *mat.Dense {
	return n.weights[l]
}

// Bias returns the bias vector of layer l.
//
// The vector is shared with the network; writes through it change the network.
func (n *Network) Bias(l int) *mat.VecDense {
	return n.biases[l]
}

// NumParameters returns the total number of weights and biases.
func (n *Network) NumParameters() int {
	total := 0
	for l := range n.weights {
		total += n.sizes[l+1]*n.sizes[l] + n.sizes[l+1]
	}
	return total
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	c := &Network{
		sizes:   append([]int(nil), n.sizes...),
		weights: make([]*mat.Dense, len(n.weights)),
		biases:  make([]*mat.VecDense, len(n.biases)),
	}
	for l := range n.weights {
		c.weights[l] = mat.DenseCopyOf(n.weights[l])
		c.biases[l] = mat.VecDenseCopyOf(n.biases[l])
	}
	return c
}

// Equal reports whether both networks have the same topology and bit-identical parameters.
func (n *Network) Equal(other *Network) bool {
	if other == nil || len(n.sizes) != len(other.sizes) {
		return false
	}
	for i := range n.sizes {
		if n.sizes[i] != other.sizes[i] {
			return false
		}
	}
	for l := range n.weights {
		rows, cols := n.weights[l].Dims()
		for j := 0; j < rows; j++ {
			if math.Float64bits(n.biases[l].AtVec(j)) != math.Float64bits(other.biases[l].AtVec(j)) {
				return false
			}
			for k := 0; k < cols; k++ {
				if math.Float64bits(n.weights[l].At(j, k)) != math.Float64bits(other.weights[l].At(j, k)) {
					return false
				}
			}
		}
	}
	return true
}

// NewGradients returns a zero-filled gradient accumulator shaped like the network.
func (n *Network) NewGradients() *Gradients {
	g := &Gradients{
		Biases:  make([]*mat.VecDense, len(n.biases)),
		Weights: make([]*mat.Dense, len(n.weights)),
	}
	for l := range n.weights {
		g.Biases[l] = mat.NewVecDense(n.sizes[l+1], nil)
		g.Weights[l] = mat.NewDense(n.sizes[l+1], n.sizes[l], nil)
	}
	return g
}

// Update applies one gradient descent step: param -= rate * grad, for every layer.
//
// Returns ErrDimensionMismatch if g is not shaped like the network; nothing is changed then.
func (n *Network) Update(g *Gradients, rate float64) error {
	if err := n.checkGradients(g); err != nil {
		return err
	}
	for l := range n.weights {
		addScaledDense(n.weights[l], -rate, g.Weights[l])
		n.biases[l].AddScaledVec(n.biases[l], -rate, g.Biases[l])
	}
	return nil
}

func (n *Network) checkGradients(g *Gradients) error {
	if g == nil {
		return fmt.Errorf("%w: nil gradients", ErrDimensionMismatch)
	}
	if len(g.Weights) != len(n.weights) {
		return dimensionError("gradient weight list", len(g.Weights), len(n.weights))
	}
	if len(g.Biases) != len(n.biases) {
		return dimensionError("gradient bias list", len(g.Biases), len(n.biases))
	}
	for l := range n.weights {
		rows, cols := g.Weights[l].Dims()
		if rows != n.sizes[l+1] || cols != n.sizes[l] {
			return fmt.Errorf("%w: gradient weight[%d] is %dx%d, want %dx%d",
				ErrDimensionMismatch, l, rows, cols, n.sizes[l+1], n.sizes[l])
		}
		if g.Biases[l].Len() != n.sizes[l+1] {
			return dimensionError(fmt.Sprintf("gradient bias[%d]", l), g.Biases[l].Len(), n.sizes[l+1])
		}
	}
	return nil
}
