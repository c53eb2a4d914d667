// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) pattern with random weights.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - rng is required when 0<p<1 (ErrNeedRandSource).
//   - Pairs i<j are visited in lexicographic order, one Bernoulli(p) draw
//     each, followed by one valueFn draw on success.
//   - Complexity: O(n²) draws.

package builder

import (
	"fmt"
	"math"
)

const minRandomNodes = 1

// RandomSparse returns a Constructor for a symmetric random pattern where
// each off-diagonal pair is present with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrNeedRandSource)
		}

		a.grow(n)
		rowAbs := make([]float64, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
					continue
				case p == 1:
				case cfg.rng.Float64() >= p:
					continue
				}
				a.addSym(i, j, cfg.valueFn(cfg.rng), rowAbs)
			}
		}
		a.addDiag(rowAbs, cfg.margin)

		return nil
	}
}
