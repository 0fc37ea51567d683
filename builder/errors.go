// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w, prefixed by the constructor name.

package builder

import "errors"

// ErrTooFewItems indicates that a size parameter is below the constructor's
// minimum (e.g. FanIn(1), Banded(0)).
var ErrTooFewItems = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateItem indicates that the ID scheme produced an ID already in the
// fixture.
var ErrDuplicateItem = errors.New("builder: duplicate item id")

// ErrConstructFailed indicates that construction could not proceed at all
// (e.g. a nil constructor was passed to Build).
var ErrConstructFailed = errors.New("builder: construction failed")
