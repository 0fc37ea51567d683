// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the fixture, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseq/sequencer"
)

// Constructor applies a deterministic mutation to a fixture using the
// resolved builderConfig. Constructors validate parameters before touching
// the fixture and return sentinel errors instead of panicking.
type Constructor func(f *Fixture, cfg builderConfig) error

// Fixture is a graph/groups pair ready for sequencer.Sequence.
//
// New items land in the last group (a first group is created on demand);
// Banded re-partitions everything added so far.
type Fixture struct {
	Graph  sequencer.Graph
	Groups sequencer.Groups

	items []string // insertion order
}

// Items returns the fixture's items in insertion order.
func (f *Fixture) Items() []string {
	out := make([]string, len(f.items))
	copy(out, f.items)

	return out
}

// Len returns the number of items.
func (f *Fixture) Len() int { return len(f.items) }

// addItem registers id with no dependencies and places it in the last group.
func (f *Fixture) addItem(id string) error {
	if _, exists := f.Graph[id]; exists {
		return fmt.Errorf("item %q: %w", id, ErrDuplicateItem)
	}
	f.Graph[id] = []string{}
	if len(f.Groups) == 0 {
		f.Groups = append(f.Groups, []string{})
	}
	last := len(f.Groups) - 1
	f.Groups[last] = append(f.Groups[last], id)
	f.items = append(f.items, id)

	return nil
}

// addDep appends dep to item's dependency list. Both must already exist.
func (f *Fixture) addDep(item, dep string) {
	f.Graph[item] = append(f.Graph[item], dep)
}

// addItems allocates n new items using the running index and returns their IDs.
func (f *Fixture) addItems(method string, n int, cfg builderConfig) ([]string, error) {
	ids := make([]string, n)
	base := len(f.items)
	for i := 0; i < n; i++ {
		id := cfg.idFn(base + i)
		if err := f.addItem(id); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// Build creates an empty fixture, resolves the builder configuration from
// opts, and applies all constructors in order. Any constructor error is
// wrapped with "Build: %w" and returned immediately; the partial fixture is
// discarded.
func Build(opts []Option, cons ...Constructor) (*Fixture, error) {
	f := &Fixture{
		Graph:  make(sequencer.Graph),
		Groups: make(sequencer.Groups, 0),
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}
