// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and kernels return these sentinels (optionally wrapped
// with method context via %w); tests match them with errors.Is.

package matrix

import "errors"

var (
	// ErrMalformedMatrix is the umbrella sentinel for any structural defect
	// detected while constructing a Sparse. It is always returned together
	// with a finer sentinel (ErrNonSquare, ErrOutOfRange, ErrNaNInf,
	// ErrDuplicateEntry, ErrBadShape), both reachable through errors.Is.
	ErrMalformedMatrix = errors.New("matrix: malformed matrix")

	// ErrBadShape indicates a non-positive dimension or ragged dense input.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0,N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value in the input.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDuplicateEntry is reported when the same (row, col) appears more
	// than once and the DuplicateReject policy is active.
	ErrDuplicateEntry = errors.New("matrix: duplicate entry")

	// ErrMissingDiagonal indicates A[i][i] == 0 (absent or summed to zero).
	// Gauss-Seidel divides by the diagonal, so the update cannot be evaluated.
	ErrMissingDiagonal = errors.New("matrix: missing diagonal entry")

	// ErrDimensionMismatch indicates a vector whose length differs from N.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Sparse (or nil gonum matrix) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
