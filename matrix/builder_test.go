// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for CSR assembly.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/mcgs/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromTriplets_Layout checks row bucketing, column ordering and the
// separately tracked diagonal for shuffled input.
func TestFromTriplets_Layout(t *testing.T) {
	t.Parallel()

	entries := []matrix.Triplet{
		{Row: 2, Col: 2, Val: 4},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 2, Val: 1},
		{Row: 0, Col: 0, Val: 4},
		{Row: 1, Col: 0, Val: 1},
		{Row: 2, Col: 1, Val: 1},
		{Row: 1, Col: 1, Val: 4},
	}
	a, err := matrix.FromTriplets(3, 3, entries)
	require.NoError(t, err)
	require.Equal(t, 3, a.N())
	require.Equal(t, 7, a.NNZ())

	cols, vals := a.RowEntries(1)
	require.Equal(t, []int{0, 1, 2}, cols)
	require.Equal(t, []float64{1, 4, 1}, vals)

	start, end := a.Row(0)
	require.Equal(t, 0, start)
	require.Equal(t, 2, end)

	for i := 0; i < 3; i++ {
		d, err := a.Diag(i)
		require.NoError(t, err)
		require.Equal(t, 4.0, d)
	}
}

// TestFromTriplets_Duplicates covers summation, cancellation to zero and the
// reject policy.
func TestFromTriplets_Duplicates(t *testing.T) {
	t.Parallel()

	entries := []matrix.Triplet{
		{Row: 0, Col: 0, Val: 1.5},
		{Row: 0, Col: 0, Val: 2.5},
		{Row: 1, Col: 1, Val: 1},
		{Row: 0, Col: 1, Val: 3},
		{Row: 0, Col: 1, Val: -3},
	}

	a, err := matrix.FromTriplets(2, 2, entries)
	require.NoError(t, err)
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	// (0,1) cancels to exactly zero and is dropped from the pattern.
	require.Equal(t, 2, a.NNZ())

	kept, err := matrix.FromTriplets(2, 2, entries, matrix.WithKeepZeros())
	require.NoError(t, err)
	require.Equal(t, 3, kept.NNZ())

	_, err = matrix.FromTriplets(2, 2, entries, matrix.WithDuplicatePolicy(matrix.DuplicateReject))
	require.ErrorIs(t, err, matrix.ErrMalformedMatrix)
	require.ErrorIs(t, err, matrix.ErrDuplicateEntry)
}

// TestFromTriplets_Malformed checks that every structural defect surfaces
// as ErrMalformedMatrix plus its specific sentinel.
func TestFromTriplets_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		entries    []matrix.Triplet
		want       error
	}{
		{"non-square", 2, 3, nil, matrix.ErrNonSquare},
		{"zero size", 0, 0, nil, matrix.ErrBadShape},
		{"row out of range", 2, 2, []matrix.Triplet{{Row: 2, Col: 0, Val: 1}}, matrix.ErrOutOfRange},
		{"negative col", 2, 2, []matrix.Triplet{{Row: 0, Col: -1, Val: 1}}, matrix.ErrOutOfRange},
		{"NaN", 2, 2, []matrix.Triplet{{Row: 0, Col: 0, Val: math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", 2, 2, []matrix.Triplet{{Row: 1, Col: 1, Val: math.Inf(-1)}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.FromTriplets(tc.rows, tc.cols, tc.entries)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, matrix.ErrMalformedMatrix), "want ErrMalformedMatrix, got %v", err)
			require.Truef(t, errors.Is(err, tc.want), "want %v, got %v", tc.want, err)
		})
	}
}

// TestFromTriplets_DropTolerance drops tiny entries after summation.
func TestFromTriplets_DropTolerance(t *testing.T) {
	t.Parallel()

	entries := []matrix.Triplet{
		{Row: 0, Col: 0, Val: 2},
		{Row: 0, Col: 1, Val: 1e-9},
		{Row: 1, Col: 1, Val: 2},
	}
	a, err := matrix.FromTriplets(2, 2, entries, matrix.WithDropTolerance(1e-6))
	require.NoError(t, err)
	require.Equal(t, 2, a.NNZ())

	require.Panics(t, func() { matrix.WithDropTolerance(-1) })
	require.Panics(t, func() { matrix.WithDuplicatePolicy(matrix.DuplicatePolicy(42)) })
}

// TestFromDense covers ragged input and the dense round trip through gonum.
func TestFromDense(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrMalformedMatrix)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	rows := [][]float64{
		{4, 1, 0},
		{1, 4, 1},
		{0, 1, 4},
	}
	a, err := matrix.FromDense(rows)
	require.NoError(t, err)
	require.Equal(t, 7, a.NNZ())

	d := a.ToDense()
	for i := range rows {
		for j := range rows[i] {
			require.Equal(t, rows[i][j], d.At(i, j))
		}
	}

	back, err := matrix.FromMat(d)
	require.NoError(t, err)
	require.Equal(t, a.Triplets(), back.Triplets())
}
