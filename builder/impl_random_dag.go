// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_random_dag.go — RandomDAG(n, p): a random acyclic dependency graph.
//
// Model:
//   • For every ordered pair (i, j) with j < i, item i depends on item j
//     independently with probability p. Edges only point to lower indices,
//     so the result is acyclic.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewItems).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   • Trial order is i asc, then j asc; fixed seed ⇒ identical fixture.

package builder

import "fmt"

const (
	methodRandomDAG   = "RandomDAG"
	minRandomDAGItems = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDAG returns a Constructor that samples an acyclic dependency graph
// over n new items with edge probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRandomDAGItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDAG, n, minRandomDAGItems, ErrTooFewItems)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
		}

		ids, err := f.addItems(methodRandomDAG, n, cfg)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			for j := 0; j < i; j++ {
				if include(p, cfg) {
					f.addDep(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}

// include draws one Bernoulli(p) trial; p of 0 or 1 never touches the RNG.
func include(p float64, cfg builderConfig) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
