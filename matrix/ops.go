// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MulVec computes dst = A·x. dst and x must not alias.
func (s *Sparse) MulVec(dst, x []float64) error {
	if s == nil {
		return fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	if err := ValidateVecLen(x, s.n); err != nil {
		return fmt.Errorf("MulVec: x: %w", err)
	}
	if err := ValidateVecLen(dst, s.n); err != nil {
		return fmt.Errorf("MulVec: dst: %w", err)
	}

	for i := 0; i < s.n; i++ {
		tot := 0.0
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			tot += s.vals[p] * x[s.colIdx[p]]
		}
		dst[i] = tot
	}

	return nil
}

// Residual computes dst = b − A·x. A nil b is treated as the zero vector.
func (s *Sparse) Residual(dst, b, x []float64) error {
	if s == nil {
		return fmt.Errorf("Residual: %w", ErrNilMatrix)
	}
	if err := ValidateRHS(b, s.n); err != nil {
		return fmt.Errorf("Residual: b: %w", err)
	}
	if err := s.MulVec(dst, x); err != nil {
		return fmt.Errorf("Residual: %w", err)
	}

	floats.Scale(-1, dst)
	if b != nil {
		floats.Add(dst, b)
	}

	return nil
}

// ResidualNorm returns ‖b − A·x‖₂, allocating a scratch vector.
// Use ResidualNormTo in loops to reuse the buffer.
func (s *Sparse) ResidualNorm(b, x []float64) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("ResidualNorm: %w", ErrNilMatrix)
	}
	return s.ResidualNormTo(make([]float64, s.n), b, x)
}

// ResidualNormTo is ResidualNorm with a caller-owned scratch buffer of length N.
func (s *Sparse) ResidualNormTo(scratch, b, x []float64) (float64, error) {
	if err := s.Residual(scratch, b, x); err != nil {
		return 0, err
	}

	return floats.Norm(scratch, 2), nil
}
