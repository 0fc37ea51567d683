// Package builder produces deterministic sequencing fixtures: pairs of
// sequencer.Graph and sequencer.Groups assembled from small topology
// constructors.
//
// The package offers the following key components:
//
//   - Build:        one entry point; resolves options, applies constructors in order.
//   - Constructors: Chain, Cycle, FanIn, RandomDAG, Banded.
//   - Options:      WithSeed, WithRand, WithIDScheme and ID scheme shortcuts.
//   - ID schemes:   DefaultIDFn ("0","1",…), ExcelColumnIDFn ("A",…,"Z","AA",…),
//     SymbolNumberIDFn(prefix) ("v0","v1",…).
//
// Guarantees:
//
//   - Item indices run across the whole fixture, so constructors compose
//     without ID clashes under any injective ID scheme.
//   - Same options, seed, and constructor order ⇒ identical fixtures.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
//   - Every fixture passes sequencer.Validate.
package builder
