// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_cycle.go — Cycle(n): a dependency ring.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewItems); n == 1 is a self dependency.
//   • Item k depends on item (k+1) mod n, so the ring reads
//     0 → 1 → … → n-1 → 0 along dependency edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleItems = 1
)

// Cycle returns a Constructor that adds an n-item dependency ring.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCycleItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleItems, ErrTooFewItems)
		}
		ids, err := f.addItems(methodCycle, n, cfg)
		if err != nil {
			return err
		}
		for k := 0; k < n; k++ {
			f.addDep(ids[k], ids[(k+1)%n])
		}

		return nil
	}
}
