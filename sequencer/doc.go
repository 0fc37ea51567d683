// Package sequencer computes a deterministic execution order for items
// connected by a dependency graph, constrained by caller-supplied priority
// bands (groups), on graphs that are not guaranteed to be acyclic.
//
// What:
//
//   - Sequence: partitions items into ordered chunks. Within the limits set by
//     groups, every outstanding dependency of an item lands in an earlier
//     chunk. A dependency in a strictly later group never blocks.
//   - Stall handling: when no item can be freed, the remaining dependency map
//     is searched for cycles (depth-first, with a visited-edge cache shared by
//     every stall of the call), and the item with the fewest outstanding
//     dependencies is forced out. Any forced item makes the result unsafe.
//   - Validate: checks that graph keys and group items agree before any work.
//   - Violations: lists the dependency edges a result does not honor.
//
// Why:
//   - Order package builds, migrations, or plugin loads where a pure
//     topological sort is wanted but some items must run in fixed bands.
//   - Keep going on cyclic input and report the cycles instead of failing.
//
// Key Types:
//
//   - Graph:  item → ordered dependencies
//   - Groups: ordered disjoint bands; an item's rank is its band index
//   - Result: Safe flag, Chunks, Cycles
//   - Option: functional options (WithLogger, WithSimpleCycles)
//
// Complexity:
//
//   - Sequence: Time O(N·(N+E)) worst case (at most N iterations, each
//     scanning the queue and its edges), Memory O(N+E)
//   - cycle search: each (item, dependency) edge is expanded at most once per
//     call across all stalls
//
// Errors:
//
//   - ErrInvalidInput       any precondition failure (umbrella sentinel)
//   - ErrAmbiguousGroup     item listed more than once across groups
//   - ErrItemMismatch       graph keys and group items differ (*MismatchError)
//   - ErrUnknownDependency  dependency names an item that is not a graph key
//
// Cyclic input is never an error: it is reported in-band through
// Result.Safe and Result.Cycles.
//
// Concurrency:
//
//	Sequence keeps all working state local to the call and never mutates its
//	inputs, so independent calls may run concurrently.
package sequencer
