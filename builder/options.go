// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDOffset is shorthand for WithIDScheme(OffsetIDFn(k)).
func WithIDOffset(k int) BuilderOption {
	return WithIDScheme(OffsetIDFn(k))
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
