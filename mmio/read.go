// SPDX-License-Identifier: MIT
// Package: mmio
//
// read.go - Matrix Market readers.

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcgs/matrix"
)

// ReadTriplets parses a coordinate matrix into 0-based triples. Symmetric
// and skew-symmetric files are expanded to the full pattern.
func ReadTriplets(r io.Reader) (*Header, []matrix.Triplet, error) {
	h, lr, err := readHeader(bufio.NewScanner(r))
	if err != nil {
		return nil, nil, fmt.Errorf("ReadTriplets: %w", err)
	}
	if h.Format != Coordinate {
		return nil, nil, fmt.Errorf("ReadTriplets: format %q: %w", h.Format, ErrUnsupported)
	}
	entries, err := readCoordinate(h, lr)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadTriplets: %w", err)
	}

	return h, entries, nil
}

// readCoordinate reads h.Entries data lines.
func readCoordinate(h *Header, lr *lineReader) ([]matrix.Triplet, error) {
	entries := make([]matrix.Triplet, 0, min(h.Entries, maxPrealloc))
	want := 3
	if h.Field == Pattern {
		want = 2
	}
	for k := 0; k < h.Entries; k++ {
		line, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%d of %d entries: %w", k, h.Entries, ErrTruncated)
		}
		f := strings.Fields(line)
		if len(f) != want {
			return nil, fmt.Errorf("line %d: %q: %w", lr.line, line, ErrBadEntry)
		}
		ij, err := parseInts(f[:2], 2)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", lr.line, ErrBadEntry, err)
		}
		v := 1.0
		if h.Field != Pattern {
			if v, err = strconv.ParseFloat(f[2], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lr.line, ErrBadEntry, err)
			}
		}
		i, j := ij[0]-1, ij[1]-1
		entries = append(entries, matrix.Triplet{Row: i, Col: j, Val: v})

		if i == j {
			continue
		}
		switch h.Symmetry {
		case Symmetric:
			entries = append(entries, matrix.Triplet{Row: j, Col: i, Val: v})
		case SkewSymmetric:
			entries = append(entries, matrix.Triplet{Row: j, Col: i, Val: -v})
		}
	}

	return entries, nil
}

// ReadMatrix parses a square coordinate matrix into a Sparse. Structural
// problems (non-square, out-of-range indices) surface as
// matrix.ErrMalformedMatrix.
func ReadMatrix(r io.Reader, opts ...matrix.Option) (*matrix.Sparse, error) {
	h, entries, err := ReadTriplets(r)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	a, err := matrix.FromTriplets(h.Rows, h.Cols, entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	return a, nil
}

// ReadVector parses a column vector from array format (rows × 1) or a
// single-column coordinate file (missing entries are 0).
func ReadVector(r io.Reader) ([]float64, error) {
	h, lr, err := readHeader(bufio.NewScanner(r))
	if err != nil {
		return nil, fmt.Errorf("ReadVector: %w", err)
	}
	if h.Cols != 1 {
		return nil, fmt.Errorf("ReadVector: %dx%d is not a column vector: %w", h.Rows, h.Cols, ErrUnsupported)
	}

	if h.Format == Coordinate {
		entries, err := readCoordinate(h, lr)
		if err != nil {
			return nil, fmt.Errorf("ReadVector: %w", err)
		}
		v := make([]float64, h.Rows)
		for _, e := range entries {
			if e.Row < 0 || e.Row >= h.Rows || e.Col != 0 {
				return nil, fmt.Errorf("ReadVector: entry (%d,%d): %w", e.Row+1, e.Col+1, ErrBadEntry)
			}
			v[e.Row] += e.Val
		}
		return v, nil
	}

	v := make([]float64, 0, min(h.Rows, maxPrealloc))
	for len(v) < h.Rows {
		line, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return nil, fmt.Errorf("ReadVector: %w", err)
			}
			return nil, fmt.Errorf("ReadVector: %d of %d values: %w", len(v), h.Rows, ErrTruncated)
		}
		for _, f := range strings.Fields(line) {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadVector: line %d: %w: %w", lr.line, ErrBadEntry, err)
			}
			v = append(v, x)
		}
	}
	if len(v) != h.Rows {
		return nil, fmt.Errorf("ReadVector: %d values, want %d: %w", len(v), h.Rows, ErrBadEntry)
	}

	return v, nil
}
