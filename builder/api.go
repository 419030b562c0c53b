// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcycle/core"
)

// Constructor emits the edges of one topology into the sink using the
// resolved builderConfig. Constructors validate parameters before reserving
// indices and return wrapped sentinel errors; they never panic.
type Constructor func(s *edgeSink, cfg builderConfig) error

// Build resolves bopts and applies all constructors in order, returning the
// concatenated edge list. Each constructor gets its own block of indices, so
// Build(nil, Path(3), Cycle(3)) yields the path 0-1-2 and the triangle 3-4-5.
//
// Errors:
//   - nil constructor → ErrConstructFailed.
//   - constructor errors are wrapped with "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	s := &edgeSink{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s.edges, nil
}

// MustBuild is like Build but panics on error. Intended for tests and
// hard-coded fixtures.
func MustBuild(bopts []BuilderOption, cons ...Constructor) []core.Edge {
	edges, err := Build(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return edges
}
