package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Gradients holds ∂C/∂b and ∂C/∂w for every weighted layer.
//
// Shapes mirror the network: Biases[l] has length sizes[l+1], Weights[l] is
// sizes[l+1]×sizes[l]. Used both for a single example and as a mini-batch sum.
type Gradients struct {
	Biases  []*mat.VecDense
	Weights []*mat.Dense
}

// Zero resets every entry to 0 while keeping the allocated storage.
func (g *Gradients) Zero() {
	for l := range g.Weights {
		g.Weights[l].Zero()
		g.Biases[l].Zero()
	}
}

// Add accumulates other into g element-wise.
func (g *Gradients) Add(other *Gradients) error {
	if len(other.Weights) != len(g.Weights) || len(other.Biases) != len(g.Biases) {
		return dimensionError("gradient layer list", len(other.Weights), len(g.Weights))
	}
	for l := range g.Weights {
		r1, c1 := g.Weights[l].Dims()
		r2, c2 := other.Weights[l].Dims()
		if r1 != r2 || c1 != c2 || g.Biases[l].Len() != other.Biases[l].Len() {
			return fmt.Errorf("%w: gradient layer %d shapes differ", ErrDimensionMismatch, l)
		}
		addScaledDense(g.Weights[l], 1, other.Weights[l])
		g.Biases[l].AddVec(g.Biases[l], other.Biases[l])
	}
	return nil
}

// addScaledDense computes dst += alpha*src. Shapes must already match.
func addScaledDense(dst *mat.Dense, alpha float64, src *mat.Dense) {
	d, s := dst.RawMatrix(), src.RawMatrix()
	if d.Stride == d.Cols && s.Stride == s.Cols {
		n := d.Rows * d.Cols
		floats.AddScaled(d.Data[:n], alpha, s.Data[:n])
		return
	}
	var scaled mat.Dense
	scaled.Scale(alpha, src)
	dst.Add(dst, &scaled)
}
