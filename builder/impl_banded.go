// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_banded.go — Banded(k): re-partition the fixture into k groups.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewItems).
//   • Items are split in insertion order into k contiguous bands; the first
//     len%k bands hold one extra item. When k exceeds the item count the
//     trailing bands are empty.
//   • Items added by later constructors join the last band.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseq/sequencer"
)

const (
	methodBanded = "Banded"
	minBands     = 1
)

// Banded returns a Constructor that replaces the fixture's groups with k
// contiguous bands over its items.
func Banded(k int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if k < minBands {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBanded, k, minBands, ErrTooFewItems)
		}
		n := len(f.items)
		size, extra := n/k, n%k

		groups := make(sequencer.Groups, k)
		pos := 0
		for b := 0; b < k; b++ {
			width := size
			if b < extra {
				width++
			}
			band := make([]string, width)
			copy(band, f.items[pos:pos+width])
			groups[b] = band
			pos += width
		}
		f.Groups = groups

		return nil
	}
}
