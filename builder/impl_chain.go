// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_chain.go — Chain(n): a linear dependency chain.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewItems).
//   • Item k depends on item k-1 (k = 1..n-1); the first item has no deps.
//   • Sequencing a chain alone yields n singleton chunks in index order.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	minChainItems = 1
)

// Chain returns a Constructor that adds n items where each depends on the
// previous one.
func Chain(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minChainItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainItems, ErrTooFewItems)
		}
		ids, err := f.addItems(methodChain, n, cfg)
		if err != nil {
			return err
		}
		for k := 1; k < n; k++ {
			f.addDep(ids[k], ids[k-1])
		}

		return nil
	}
}
