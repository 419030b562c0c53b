// Package builder provides deterministic edge-list generators for the classic
// topologies used as cycle-detection fixtures: trees (Path, Star, BinaryTree,
// RandomTree) and cyclic graphs (Cycle, Wheel, Complete, Grid).
//
// The package offers the following key components:
//
//   - Build(opts, cons...): resolves options into a builderConfig and applies
//     every Constructor in order, returning one []core.Edge.
//   - Constructors: each one reserves a fresh block of vertex indices, so
//     composing constructors yields a disjoint union (a forest of fixtures).
//   - Vertex-ID schemes (IDFn): DefaultIDFn (index as ID), OffsetIDFn (shifted).
//   - Options: WithIDOffset, WithIDScheme, WithSeed, WithRand.
//   - ByName: resolves a kind name ("path", "cycle", ...) to a Constructor for
//     command-line use.
//
// Guarantees:
//
//   - Determinism: same options, same seed and same constructor order produce
//     an identical edge list.
//   - Single-vertex fixtures (Complete(1), Grid(1,1), BinaryTree(1)) are emitted
//     as a self-loop so the vertex is registered by core.NewUndirectedGraph.
//   - Constructors never panic; they return wrapped sentinel errors. Option
//     constructors panic on meaningless input (nil RNG, nil ID scheme).
//
// Acyclicity by construction:
//
//	Path, Star, BinaryTree, RandomTree     → trees (no cycle)
//	Cycle, Wheel, Complete(n≥3), Grid(r,c≥2) → contain a cycle
package builder
