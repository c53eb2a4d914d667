// SPDX-License-Identifier: MIT
// Package: matrix
//
// methods.go - read-only queries on Sparse.
//
// Hot-path accessors (Row, RowEntries, DiagUnchecked) take the row index on
// trust and panic on an out-of-range index like a slice would; they are
// what the sweep kernel calls per unknown. Checked accessors (At, Diag)
// return ErrOutOfRange instead.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// N returns the dimension of the square matrix.
func (s *Sparse) N() int { return s.n }

// Dims returns (N, N), mirroring gonum's mat.Matrix.
func (s *Sparse) Dims() (int, int) { return s.n, s.n }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.vals) }

// Row returns the half-open extent [start, end) of row i inside the column
// and value arrays.
func (s *Sparse) Row(i int) (start, end int) {
	return s.rowPtr[i], s.rowPtr[i+1]
}

// RowEntries returns the column indices and values stored in row i.
// The returned slices alias internal storage and must not be modified.
func (s *Sparse) RowEntries(i int) (cols []int, vals []float64) {
	start, end := s.rowPtr[i], s.rowPtr[i+1]
	return s.colIdx[start:end:end], s.vals[start:end:end]
}

// At returns A[i][j] (0 for entries outside the pattern).
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	cols, vals := s.RowEntries(i)
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return vals[k], nil
	}

	return 0, nil
}

// Diag returns A[i][i]. A zero or absent diagonal yields ErrMissingDiagonal.
func (s *Sparse) Diag(i int) (float64, error) {
	if i < 0 || i >= s.n {
		return 0, fmt.Errorf("Diag(%d): %w", i, ErrOutOfRange)
	}
	if s.diag[i] == 0 {
		return 0, fmt.Errorf("Diag(%d): %w", i, ErrMissingDiagonal)
	}

	return s.diag[i], nil
}

// DiagUnchecked returns A[i][i] without validation (0 when absent).
func (s *Sparse) DiagUnchecked(i int) float64 { return s.diag[i] }

// ValidateDiagonal reports the first row whose diagonal is zero or absent.
func (s *Sparse) ValidateDiagonal() error {
	for i, d := range s.diag {
		if d == 0 {
			return fmt.Errorf("ValidateDiagonal: row %d: %w", i, ErrMissingDiagonal)
		}
	}

	return nil
}

// DiagonallyDominant reports whether |A[i][i]| >= Σ_{j≠i} |A[i][j]| for
// every row. Weak dominance with an irreducible pattern is the classical
// sufficient condition for Gauss-Seidel convergence; the solver only uses
// it for diagnostics.
func (s *Sparse) DiagonallyDominant() bool {
	for i := 0; i < s.n; i++ {
		cols, vals := s.RowEntries(i)
		off := 0.0
		for k, j := range cols {
			if j != i {
				off += math.Abs(vals[k])
			}
		}
		if math.Abs(s.diag[i]) < off {
			return false
		}
	}

	return true
}

// MaxRowLength returns the largest number of stored entries in any row.
func (s *Sparse) MaxRowLength() int {
	m := 0
	for i := 0; i < s.n; i++ {
		if l := s.rowPtr[i+1] - s.rowPtr[i]; l > m {
			m = l
		}
	}

	return m
}
