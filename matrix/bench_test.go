// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mcgs/matrix"
)

// laplacian2D assembles the 5-point Laplacian on a k×k grid.
func laplacian2D(k int) []matrix.Triplet {
	var ts []matrix.Triplet
	id := func(r, c int) int { return r*k + c }
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			i := id(r, c)
			ts = append(ts, matrix.Triplet{Row: i, Col: i, Val: 4})
			if c+1 < k {
				ts = append(ts, matrix.Triplet{Row: i, Col: id(r, c+1), Val: -1}, matrix.Triplet{Row: id(r, c+1), Col: i, Val: -1})
			}
			if r+1 < k {
				ts = append(ts, matrix.Triplet{Row: i, Col: id(r+1, c), Val: -1}, matrix.Triplet{Row: id(r+1, c), Col: i, Val: -1})
			}
		}
	}
	return ts
}

func BenchmarkFromTriplets_Grid128(b *testing.B) {
	ts := laplacian2D(128)
	n := 128 * 128
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.FromTriplets(n, n, ts)
	}
}

func BenchmarkMulVec_Grid128(b *testing.B) {
	n := 128 * 128
	a, err := matrix.FromTriplets(n, n, laplacian2D(128))
	if err != nil {
		b.Fatal(err)
	}
	x := make([]float64, n)
	dst := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.MulVec(dst, x)
	}
}
