// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bounded_degree.go - random pattern whose node degrees never exceed d.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n; rng required when d > 0.
//   - Each node contributes d stubs; stubs are shuffled and paired, pairs
//     forming self-loops or duplicates are skipped. Degrees are therefore
//     ≤ d (usually close to d).
//   - Complexity: O(n*d) plus a shuffle.

package builder

import "fmt"

// RandomBoundedDegree returns a Constructor for a symmetric system whose
// dependency graph has maximum degree at most d.
func RandomBoundedDegree(n, d int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomBoundedDegree: n=%d < %d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("RandomBoundedDegree: d=%d with n=%d: %w", d, n, ErrInvalidDegree)
		}
		a.grow(n)
		rowAbs := make([]float64, n)
		if d == 0 {
			a.addDiag(rowAbs, cfg.margin)
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomBoundedDegree: %w", ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]struct{}, len(stubs)/2)
		for k := 0; k+1 < len(stubs); k += 2 {
			u, v := stubs[k], stubs[k+1]
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			a.addSym(u, v, cfg.valueFn(cfg.rng), rowAbs)
		}
		a.addDiag(rowAbs, cfg.margin)

		return nil
	}
}
