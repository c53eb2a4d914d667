// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - 2-D five-point Laplacian on a rows×cols grid.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1.
//   - Node id = r*cols + c (row-major), 4-neighbourhood.
//   - Complexity: O(rows*cols) triples.

package builder

import "fmt"

const minGridDim = 1

// Laplacian2D returns a Constructor for the five-point stencil system.
// The grid graph is bipartite and has maximum degree 4.
func Laplacian2D(rows, cols int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Laplacian2D: rows=%d, cols=%d < %d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}
		n := rows * cols
		a.grow(n)
		rowAbs := make([]float64, n)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					a.addSym(id, id+1, defaultOffValue, rowAbs)
				}
				if r+1 < rows {
					a.addSym(id, id+cols, defaultOffValue, rowAbs)
				}
			}
		}
		a.addDiag(rowAbs, cfg.margin)

		return nil
	}
}
