// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcgs/matrix"
)

// RHSFor returns b = A·x, so that x is the exact solution of A·x = b.
func RHSFor(a *matrix.Sparse, x []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("RHSFor: %w", matrix.ErrNilMatrix)
	}
	b := make([]float64, a.N())
	if err := a.MulVec(b, x); err != nil {
		return nil, fmt.Errorf("RHSFor: %w", err)
	}

	return b, nil
}

// Ones returns a length-n vector of ones.
func Ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
