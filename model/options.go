// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

import (
	"math/rand/v2"
	"time"

	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/serialization"
)

// Format selects the file layout written by Save.
type Format = serialization.Format

// File layouts.
const (
	FormatRaw     = serialization.FormatRaw
	FormatChecked = serialization.FormatChecked
)

// Option configures New and Open.
type Option func(*config)

type config struct {
	seed     uint64
	shuffle  optim.ShuffleMode
	parallel parallel.Config
	format   serialization.Format
}

func newConfig(opts []Option) config {
	cfg := config{seed: uint64(time.Now().UnixNano())}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// initSource returns the stream used for parameter initialization.
func (c config) initSource() rand.Source {
	return rand.NewPCG(c.seed, 1)
}

// shuffleRand returns the stream used for mini-batch shuffling.
func (c config) shuffleRand() *rand.Rand {
	return rand.New(rand.NewPCG(c.seed, 2))
}

// WithSeed makes initialization and shuffling reproducible.
// Without it both are seeded from the wall clock.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithShuffle selects the mini-batch shuffle algorithm (default: optim.ShuffleUnbiased).
func WithShuffle(mode optim.ShuffleMode) Option {
	return func(c *config) {
		c.shuffle = mode
	}
}

// WithParallel computes the per-example gradients of a mini-batch on several goroutines.
func WithParallel(cfg parallel.Config) Option {
	return func(c *config) {
		c.parallel = cfg
	}
}

// WithFormat selects the file layout written by Save (default: FormatRaw).
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}
