// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customises constructor behaviour via builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the off-diagonal value generator used by the random
// constructors. Returned values should be finite and non-zero; their
// magnitude feeds the dominant diagonal. Panics on nil.
func WithValueFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithDiagonalMargin sets the amount added to each generated diagonal on
// top of the absolute off-diagonal row sum. 0 gives weak dominance (the
// plain Laplacian), larger values strengthen it. Panics on negative, NaN
// or Inf margins.
func WithDiagonalMargin(m float64) BuilderOption {
	if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		panic("builder: WithDiagonalMargin(m<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.margin = m
	}
}
