// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/mcgs/matrix"
)

// SequentialSweep is single-threaded Gauss-Seidel over order (nil means
// 0..N-1). order must be a permutation of [0,N).
func SequentialSweep(a *matrix.Sparse, b, x []float64, omega float64, order []int) error {
	if a == nil {
		return fmt.Errorf("SequentialSweep: %w", matrix.ErrNilMatrix)
	}
	if err := ValidateRelaxation(omega); err != nil {
		return fmt.Errorf("SequentialSweep: %w", err)
	}
	if err := matrix.ValidateVecLen(x, a.N()); err != nil {
		return fmt.Errorf("SequentialSweep: x: %w", err)
	}
	if err := matrix.ValidateRHS(b, a.N()); err != nil {
		return fmt.Errorf("SequentialSweep: b: %w", err)
	}
	if err := a.ValidateDiagonal(); err != nil {
		return fmt.Errorf("SequentialSweep: %w", err)
	}
	if order == nil {
		order = make([]int, a.N())
		for i := range order {
			order[i] = i
		}
	}
	if err := checkPermutation(order, a.N()); err != nil {
		return fmt.Errorf("SequentialSweep: %w", err)
	}

	for _, i := range order {
		update(a, b, 1/a.DiagUnchecked(i), x, i, omega)
	}

	return nil
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("order has %d entries, want %d: %w", len(order), n, ErrPartitionMismatch)
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("order entry %d is not a permutation element: %w", i, ErrPartitionMismatch)
		}
		seen[i] = true
	}
	return nil
}
