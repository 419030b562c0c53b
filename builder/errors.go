// SPDX-License-Identifier: MIT
// Package: lvlcycle/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, depth)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (RandomTree)
// was applied without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil Constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind is returned by ByName for an unsupported topology name.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
