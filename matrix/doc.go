// SPDX-License-Identifier: MIT

// Package matrix provides the immutable compressed-sparse-row (CSR) matrix
// consumed by the multicolor Gauss-Seidel solver.
//
// What:
//
//   - Sparse: a square N×N matrix stored as row pointers (len N+1), column
//     indices and values (len nnz). Columns are sorted ascending inside each
//     row; the diagonal is tracked in a separate dense slice so that the
//     Gauss-Seidel update can read A[i][i] in O(1).
//   - Constructors: FromTriplets (unordered (row, col, value) triples,
//     duplicates summed by default), FromDense ([][]float64) and FromMat
//     (any gonum mat.Matrix).
//   - Kernels: MulVec, Residual (b − A·x) and ResidualNorm (‖b − A·x‖₂).
//
// Why:
//
//   - CSR is the natural layout for row-oriented sweeps: one contiguous
//     scan per unknown, no pointer chasing, no hashing.
//   - Immutability lets the solver share A across goroutines without locks.
//
// Errors:
//
//   - ErrMalformedMatrix   non-square, out-of-range index, NaN/Inf value,
//     rejected duplicate (wraps ErrNonSquare / ErrOutOfRange / ErrNaNInf /
//     ErrDuplicateEntry so callers can match either level)
//   - ErrMissingDiagonal   A[i][i] == 0 where the update step needs it
//   - ErrDimensionMismatch vector length != N
//
// Complexity:
//
//   - FromTriplets: O(nnz log(nnz/N)) time, O(nnz) memory
//   - MulVec / Residual: O(nnz)
//   - Diag: O(1); At: O(log(row length))
package matrix
