// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const methodFromMat = "FromMat"

// FromMat copies the nonzero entries of any gonum matrix into a Sparse.
// It is the bridge for callers that already hold their system as a
// mat.Dense / mat.SymDense, and the way tests feed reference systems in.
func FromMat(m mat.Matrix, opts ...Option) (*Sparse, error) {
	if m == nil {
		return nil, malformed(methodFromMat, ErrNilMatrix, "nil mat.Matrix")
	}
	r, c := m.Dims()
	if r != c {
		return nil, malformed(methodFromMat, ErrNonSquare, "rows=%d cols=%d", r, c)
	}

	var entries []Triplet
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				entries = append(entries, Triplet{Row: i, Col: j, Val: v})
			}
		}
	}

	return FromTriplets(r, c, entries, opts...)
}

// ToDense expands s into a freshly allocated gonum dense matrix.
// Intended for small systems (reference solves, printing); O(N²) memory.
func (s *Sparse) ToDense() *mat.Dense {
	d := mat.NewDense(s.n, s.n, nil)
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			d.Set(i, s.colIdx[p], s.vals[p])
		}
	}

	return d
}

// Triplets returns the stored entries in row-major order.
func (s *Sparse) Triplets() []Triplet {
	out := make([]Triplet, 0, len(s.vals))
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			out = append(out, Triplet{Row: i, Col: s.colIdx[p], Val: s.vals[p]})
		}
	}

	return out
}
