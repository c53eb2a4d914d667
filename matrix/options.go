// SPDX-License-Identifier: MIT

// Package matrix: functional options for the constructors.
// Option constructors panic on nonsensical values (programmer error);
// constructors themselves only return sentinel errors.
package matrix

import "math"

// Defaults (single source of truth).
const (
	// DefaultDuplicatePolicy sums repeated entries.
	DefaultDuplicatePolicy = DuplicateSum

	// DefaultDropTolerance drops entries with |v| <= tol after duplicate
	// resolution. 0 means "drop exact zeros only".
	DefaultDropTolerance = 0.0
)

const (
	panicDropToleranceInvalid = "matrix: WithDropTolerance: tol must be finite, non-negative"
	panicDuplicatePolicy      = "matrix: WithDuplicatePolicy: unknown policy"
)

// Option mutates the constructor configuration.
type Option func(*options)

type options struct {
	duplicates DuplicatePolicy
	dropTol    float64
	keepZeros  bool
}

func defaultOptions() options {
	return options{
		duplicates: DefaultDuplicatePolicy,
		dropTol:    DefaultDropTolerance,
	}
}

// gatherOptions applies opts in order; later options win.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDuplicatePolicy selects how repeated (row, col) entries are handled.
// Panics on an unknown policy value.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p != DuplicateSum && p != DuplicateReject {
		panic(panicDuplicatePolicy)
	}
	return func(o *options) {
		o.duplicates = p
	}
}

// WithDropTolerance drops stored entries whose magnitude is <= tol once
// duplicates have been resolved. Diagonal entries are subject to the same
// rule, so an aggressive tolerance can produce ErrMissingDiagonal later.
// Panics if tol is negative, NaN or Inf.
func WithDropTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicDropToleranceInvalid)
	}
	return func(o *options) {
		o.dropTol = tol
	}
}

// WithKeepZeros keeps explicitly stored zeros in the pattern. The solver's
// dependency graph is built from the stored pattern, so kept zeros still
// separate their endpoints into different colors.
func WithKeepZeros() Option {
	return func(o *options) {
		o.keepZeros = true
	}
}
