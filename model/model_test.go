// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/model"
	"github.com/born-ml/mlp/nn"
	"github.com/born-ml/mlp/optim"
)

func xorData() []nn.Example {
	return []nn.Example{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}

type countingEvaluator struct{ calls int }

func (c *countingEvaluator) Evaluate(*nn.Network, int, []nn.Example) { c.calls++ }

func TestNew(t *testing.T) {
	m, err := model.New([]int{784, 30, 10}, nil, model.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []int{784, 30, 10}, m.Sizes())
	assert.Equal(t, 0, m.CurrentEpoch())

	out, err := m.Predict(make([]float64, 784))
	require.NoError(t, err)
	assert.Len(t, out, 10)
}

func TestNew_InvalidTopology(t *testing.T) {
	for _, sizes := range [][]int{nil, {5}, {3, 0, 1}, {-1, 2}} {
		m, err := model.New(sizes, nil)
		assert.ErrorIs(t, err, model.ErrInvalidTopology, "sizes %v", sizes)
		assert.Nil(t, m)
	}
}

func TestWithSeed_Reproducible(t *testing.T) {
	a, err := model.New([]int{2, 3, 1}, nil, model.WithSeed(99))
	require.NoError(t, err)
	b, err := model.New([]int{2, 3, 1}, nil, model.WithSeed(99))
	require.NoError(t, err)
	assert.True(t, a.Network().Equal(b.Network()))

	require.NoError(t, a.Train(xorData(), 10, 2, 1.0, nil))
	require.NoError(t, b.Train(xorData(), 10, 2, 1.0, nil))
	assert.True(t, a.Network().Equal(b.Network()))
}

func TestPredict_DimensionMismatch(t *testing.T) {
	m, err := model.New([]int{2, 1}, nil, model.WithSeed(1))
	require.NoError(t, err)

	_, err = m.Predict([]float64{1, 2, 3})
	assert.ErrorIs(t, err, model.ErrDimensionMismatch)
}

func TestTrain_EpochCounterAndEvaluator(t *testing.T) {
	eval := &countingEvaluator{}
	m, err := model.New([]int{2, 2, 1}, eval, model.WithSeed(5))
	require.NoError(t, err)

	require.NoError(t, m.Train(xorData(), 5, 2, 3.0, xorData()))
	assert.Equal(t, 5, m.CurrentEpoch())
	assert.Equal(t, 6, eval.calls)
}

func TestTrain_InvalidHyperparameters(t *testing.T) {
	m, err := model.New([]int{2, 2, 1}, nil, model.WithSeed(5))
	require.NoError(t, err)

	assert.ErrorIs(t, m.Train(xorData(), 1, 0, 3.0, nil), model.ErrInvalidHyperparameter)
	assert.ErrorIs(t, m.Train(xorData(), 1, 1, 0, nil), model.ErrInvalidHyperparameter)
}

func TestSaveOpen_RoundTrip(t *testing.T) {
	for _, f := range []model.Format{model.FormatRaw, model.FormatChecked} {
		path := filepath.Join(t.TempDir(), "model.bin")

		m, err := model.New([]int{3, 5, 2}, nil, model.WithSeed(8), model.WithFormat(f))
		require.NoError(t, err)
		require.NoError(t, m.Train(xorDataWide(), 2, 1, 1.0, nil))
		require.NoError(t, m.Save(path))

		eval := &countingEvaluator{}
		loaded, err := model.Open(path, eval)
		require.NoError(t, err)
		assert.Equal(t, m.Sizes(), loaded.Sizes())
		assert.True(t, m.Network().Equal(loaded.Network()))
		assert.Equal(t, 0, loaded.CurrentEpoch())

		input := []float64{0.1, 0.2, 0.3}
		want, err := m.Predict(input)
		require.NoError(t, err)
		got, err := loaded.Predict(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// The loaded model trains with the injected evaluator.
		require.NoError(t, loaded.Train(xorDataWide(), 1, 1, 1.0, xorDataWide()))
		assert.Equal(t, 2, eval.calls)
	}
}

// xorDataWide is XOR embedded in three inputs with two one-hot outputs.
func xorDataWide() []nn.Example {
	data := xorData()
	out := make([]nn.Example, len(data))
	for i, ex := range data {
		out[i] = nn.Example{
			Input:  []float64{ex.Input[0], ex.Input[1], 1},
			Target: []float64{ex.Target[0], 1 - ex.Target[0]},
		}
	}
	return out
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := model.Open(filepath.Join(dir, "missing.bin"), nil)
	assert.ErrorIs(t, err, model.ErrIO)

	short := filepath.Join(dir, "short.bin")
	require.NoError(t, os.WriteFile(short, []byte{2, 0}, 0o600))
	_, err = model.Open(short, nil)
	assert.ErrorIs(t, err, model.ErrCorruptFile)
}

func TestLoad_ReplacesTopology(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	src, err := model.New([]int{4, 3}, nil, model.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, src.Save(path))

	m, err := model.New([]int{2, 2, 1}, nil, model.WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, m.Train(xorData(), 3, 1, 1.0, nil))

	require.NoError(t, m.Load(path))
	assert.Equal(t, []int{4, 3}, m.Sizes())
	assert.True(t, src.Network().Equal(m.Network()))
	assert.Equal(t, 3, m.CurrentEpoch())

	// Training continues on the loaded network.
	data := []nn.Example{{Input: []float64{1, 0, 0, 1}, Target: []float64{1, 0, 1}}}
	require.NoError(t, m.Train(data, 2, 1, 1.0, nil))
	assert.False(t, src.Network().Equal(m.Network()))
}

func TestLoad_FailureLeavesModelUnchanged(t *testing.T) {
	dir := t.TempDir()
	m, err := model.New([]int{2, 3, 1}, nil, model.WithSeed(3))
	require.NoError(t, err)
	before := m.Network().Clone()

	err = m.Load(filepath.Join(dir, "missing.bin"))
	require.ErrorIs(t, err, model.ErrIO)
	assert.True(t, m.Network().Equal(before))

	// A valid header followed by too few parameters.
	good := filepath.Join(dir, "good.bin")
	require.NoError(t, m.Save(good))
	raw, err := os.ReadFile(good)
	require.NoError(t, err)
	truncated := filepath.Join(dir, "truncated.bin")
	require.NoError(t, os.WriteFile(truncated, raw[:len(raw)-3], 0o600))

	err = m.Load(truncated)
	require.ErrorIs(t, err, model.ErrCorruptFile)
	assert.True(t, m.Network().Equal(before))
	assert.Equal(t, []int{2, 3, 1}, m.Sizes())
}

func TestSave_IOError(t *testing.T) {
	m, err := model.New([]int{2, 1}, nil, model.WithSeed(1))
	require.NoError(t, err)

	err = m.Save(filepath.Join(t.TempDir(), "missing-dir", "model.bin"))
	assert.ErrorIs(t, err, model.ErrIO)
}

func TestReinitialize(t *testing.T) {
	m, err := model.New([]int{2, 2, 1}, nil, model.WithSeed(4))
	require.NoError(t, err)
	require.NoError(t, m.Train(xorData(), 2, 1, 1.0, nil))
	before := m.Network().Clone()

	require.NoError(t, m.Reinitialize([]int{3, 4, 4, 2}))
	assert.Equal(t, []int{3, 4, 4, 2}, m.Sizes())
	assert.Equal(t, 2, m.CurrentEpoch())

	out, err := m.Predict([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// Same topology gives fresh values, not the old ones.
	require.NoError(t, m.Reinitialize([]int{2, 2, 1}))
	assert.False(t, m.Network().Equal(before))

	snapshot := m.Network().Clone()
	assert.ErrorIs(t, m.Reinitialize([]int{2}), model.ErrInvalidTopology)
	assert.True(t, m.Network().Equal(snapshot))
}

func TestWithShuffleAndParallel(t *testing.T) {
	m, err := model.New([]int{2, 2, 1}, nil,
		model.WithSeed(6),
		model.WithShuffle(optim.ShuffleLegacy),
		model.WithParallel(optim.ParallelConfig{Enabled: true, NumWorkers: 2, MinChunkSize: 1}),
	)
	require.NoError(t, err)

	require.NoError(t, m.Train(xorData(), 10, 4, 2.0, nil))
	assert.Equal(t, 10, m.CurrentEpoch())
}
