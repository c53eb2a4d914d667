// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegree indicates a degree bound outside [0,n).
var ErrInvalidDegree = errors.New("builder: degree out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil constructor or a DiagonalShift applied to an empty assembly.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSpec indicates an unparsable generator spec string.
var ErrBadSpec = errors.New("builder: invalid generator spec")
