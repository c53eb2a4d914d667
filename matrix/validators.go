// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ValidateVecLen ensures x has exactly n elements.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: len=%d want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateRHS accepts a nil b (zero right-hand side) or one of length n.
func ValidateRHS(b []float64, n int) error {
	if b == nil {
		return nil
	}

	return ValidateVecLen(b, n)
}
