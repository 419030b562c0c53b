// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn (index as ID)
//   • rng  = nil         (pure unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig starts from the defaults and applies opts in order
// (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
