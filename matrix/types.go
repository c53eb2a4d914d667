// SPDX-License-Identifier: MIT

package matrix

// Triplet is one (row, col, value) entry of a matrix in coordinate form.
// Triplets may arrive in any order; duplicates are resolved by the
// DuplicatePolicy in effect.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// DuplicatePolicy controls how FromTriplets treats repeated (row, col) keys.
type DuplicatePolicy int

const (
	// DuplicateSum adds the values of repeated entries (finite-element style
	// assembly). This is the default.
	DuplicateSum DuplicatePolicy = iota

	// DuplicateReject turns a repeated entry into ErrMalformedMatrix.
	DuplicateReject
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateSum:
		return "sum"
	case DuplicateReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Sparse is an immutable square matrix in compressed sparse row layout.
//
// Invariants (established by the constructors, never changed afterwards):
//   - len(rowPtr) == n+1, rowPtr[0] == 0, rowPtr non-decreasing;
//   - len(colIdx) == len(vals) == rowPtr[n];
//   - colIdx within each row is strictly ascending and inside [0,n);
//   - diag[i] == A[i][i] (0 when the entry is not stored).
//
// A *Sparse may be shared freely between goroutines.
type Sparse struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []float64
	diag   []float64
}
