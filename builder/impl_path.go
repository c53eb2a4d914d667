// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - 1-D Laplacian (path graph P_n).
//
// Contract:
//   - n ≥ 1 (n=1 is a single diagonal entry).
//   - Off-diagonals are defaultOffValue; diagonal = row |sum| + margin.
//   - Complexity: O(n) triples.

package builder

import "fmt"

const minPathNodes = 1

// Laplacian1D returns a Constructor for the n×n tridiagonal path system.
func Laplacian1D(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Laplacian1D: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		a.grow(n)
		rowAbs := make([]float64, n)
		for i := 0; i+1 < n; i++ {
			a.addSym(i, i+1, defaultOffValue, rowAbs)
		}
		a.addDiag(rowAbs, cfg.margin)

		return nil
	}
}
