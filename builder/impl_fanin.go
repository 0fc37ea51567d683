// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_fanin.go — FanIn(n): many dependents on one hub.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewItems).
//   • The first item is the hub and has no deps; the other n-1 items each
//     depend on the hub.

package builder

import "fmt"

const (
	methodFanIn   = "FanIn"
	minFanInItems = 2
)

// FanIn returns a Constructor that adds a hub and n-1 items depending on it.
func FanIn(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minFanInItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFanIn, n, minFanInItems, ErrTooFewItems)
		}
		ids, err := f.addItems(methodFanIn, n, cfg)
		if err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			f.addDep(leaf, hub)
		}

		return nil
	}
}
