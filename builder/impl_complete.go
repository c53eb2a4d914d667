// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - dense coupling (complete graph K_n).

package builder

import "fmt"

// Complete returns a Constructor coupling every pair of the n unknowns.
// Every node needs its own color, so the coloring is trivially n colors.
func Complete(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		a.grow(n)
		rowAbs := make([]float64, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a.addSym(i, j, defaultOffValue, rowAbs)
			}
		}
		a.addDiag(rowAbs, cfg.margin)

		return nil
	}
}
