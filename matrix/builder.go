// SPDX-License-Identifier: MIT
// Package: matrix
//
// builder.go - CSR assembly from coordinate triples and dense rows.
//
// Contract:
//   - rows == cols (else ErrNonSquare), rows ≥ 1 (else ErrBadShape).
//   - Every triple has 0 ≤ row,col < n (else ErrOutOfRange) and a finite
//     value (else ErrNaNInf).
//   - Repeated keys are summed (DuplicateSum) or rejected (DuplicateReject).
//   - All structural failures are additionally wrapped in ErrMalformedMatrix.
//
// Determinism:
//   - The result depends only on the multiset of triples: rows are bucketed
//     by a counting pass and each row is sorted by column, so input order
//     never leaks into the layout. Summation order of duplicates follows
//     input order, which can change the last bit of a summed value.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	methodFromTriplets = "FromTriplets"
	methodFromDense    = "FromDense"
)

// malformed wraps a fine-grained sentinel together with ErrMalformedMatrix.
func malformed(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), ErrMalformedMatrix, err)
}

// FromTriplets assembles a rows×cols Sparse from unordered coordinate entries.
// The input slice is not modified.
func FromTriplets(rows, cols int, entries []Triplet, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)

	// 1) Shape.
	if rows <= 0 || cols <= 0 {
		return nil, malformed(methodFromTriplets, ErrBadShape, "rows=%d cols=%d", rows, cols)
	}
	if rows != cols {
		return nil, malformed(methodFromTriplets, ErrNonSquare, "rows=%d cols=%d", rows, cols)
	}
	n := rows

	// 2) Validate entries and count per row.
	counts := make([]int, n+1)
	for k, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return nil, malformed(methodFromTriplets, ErrOutOfRange,
				"entry %d (%d,%d) outside %dx%d", k, e.Row, e.Col, n, n)
		}
		if math.IsNaN(e.Val) || math.IsInf(e.Val, 0) {
			return nil, malformed(methodFromTriplets, ErrNaNInf, "entry %d (%d,%d)", k, e.Row, e.Col)
		}
		counts[e.Row+1]++
	}

	// 3) Bucket by row (counting sort, stable w.r.t. input order).
	for i := 0; i < n; i++ {
		counts[i+1] += counts[i]
	}
	colIdx := make([]int, len(entries))
	vals := make([]float64, len(entries))
	next := make([]int, n)
	copy(next, counts[:n])
	for _, e := range entries {
		p := next[e.Row]
		colIdx[p] = e.Col
		vals[p] = e.Val
		next[e.Row]++
	}

	// 4) Per row: sort by column, merge duplicates, drop zeros, compact.
	rowPtr := make([]int, n+1)
	diag := make([]float64, n)
	w := 0
	for i := 0; i < n; i++ {
		start, end := counts[i], counts[i+1]
		sort.Stable(byCol{cols: colIdx[start:end], vals: vals[start:end]})

		for p := start; p < end; {
			c, v := colIdx[p], vals[p]
			q := p + 1
			for ; q < end && colIdx[q] == c; q++ {
				if o.duplicates == DuplicateReject {
					return nil, malformed(methodFromTriplets, ErrDuplicateEntry, "(%d,%d)", i, c)
				}
				v += vals[q]
			}
			p = q

			if !o.keepZeros && math.Abs(v) <= o.dropTol {
				continue
			}
			colIdx[w] = c
			vals[w] = v
			w++
			if c == i {
				diag[i] = v
			}
		}
		rowPtr[i+1] = w
	}

	return &Sparse{
		n:      n,
		rowPtr: rowPtr,
		colIdx: colIdx[:w:w],
		vals:   vals[:w:w],
		diag:   diag,
	}, nil
}

// FromDense builds a Sparse from row-major dense rows. Every row must have
// exactly len(rows) columns; zero entries are not stored.
func FromDense(rows [][]float64, opts ...Option) (*Sparse, error) {
	n := len(rows)
	if n == 0 {
		return nil, malformed(methodFromDense, ErrBadShape, "no rows")
	}

	var entries []Triplet
	for i, row := range rows {
		if len(row) != n {
			return nil, malformed(methodFromDense, ErrNonSquare, "row %d has %d columns, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v != 0 {
				entries = append(entries, Triplet{Row: i, Col: j, Val: v})
			}
		}
	}

	return FromTriplets(n, n, entries, opts...)
}

// byCol sorts a row segment by column index, carrying values along.
type byCol struct {
	cols []int
	vals []float64
}

func (b byCol) Len() int           { return len(b.cols) }
func (b byCol) Less(i, j int) bool { return b.cols[i] < b.cols[j] }
func (b byCol) Swap(i, j int) {
	b.cols[i], b.cols[j] = b.cols[j], b.cols[i]
	b.vals[i], b.vals[j] = b.vals[j], b.vals[i]
}
