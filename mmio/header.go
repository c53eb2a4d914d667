// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const banner = "%%MatrixMarket"

const (
	// maxDim bounds the row and column counts of a size line.
	maxDim = math.MaxInt32
	// maxPrealloc caps slices sized from a header; larger inputs grow by
	// append as lines actually arrive.
	maxPrealloc = 1 << 16
)

// Format is the storage layout of a file.
type Format string

// Field is the value type of a file.
type Field string

// Symmetry is the structural symmetry of a file.
type Symmetry string

const (
	Coordinate Format = "coordinate"
	Array      Format = "array"

	Real    Field = "real"
	Integer Field = "integer"
	Pattern Field = "pattern"
	Complex Field = "complex"

	General       Symmetry = "general"
	Symmetric     Symmetry = "symmetric"
	SkewSymmetric Symmetry = "skew-symmetric"
	Hermitian     Symmetry = "hermitian"
)

// Header is the parsed banner plus size line.
type Header struct {
	Format   Format
	Field    Field
	Symmetry Symmetry
	Rows     int
	Cols     int
	Entries  int // stored entries (coordinate) or Rows*Cols (array)
}

// lineReader yields non-empty, non-comment lines with their line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		s := strings.TrimSpace(lr.sc.Text())
		if s == "" || strings.HasPrefix(s, "%") {
			continue
		}
		return s, true
	}
	return "", false
}

func readHeader(sc *bufio.Scanner) (*Header, *lineReader, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, fmt.Errorf("readHeader: %w", err)
		}
		return nil, nil, fmt.Errorf("readHeader: empty input: %w", ErrBadHeader)
	}
	fields := strings.Fields(strings.ToLower(sc.Text()))
	if len(fields) != 5 || fields[0] != strings.ToLower(banner) {
		return nil, nil, fmt.Errorf("readHeader: banner %q: %w", sc.Text(), ErrBadHeader)
	}
	if fields[1] != "matrix" {
		return nil, nil, fmt.Errorf("readHeader: object %q: %w", fields[1], ErrUnsupported)
	}
	h := &Header{Format: Format(fields[2]), Field: Field(fields[3]), Symmetry: Symmetry(fields[4])}

	switch h.Format {
	case Coordinate, Array:
	default:
		return nil, nil, fmt.Errorf("readHeader: format %q: %w", h.Format, ErrUnsupported)
	}
	switch h.Field {
	case Real, Integer:
	case Pattern:
		if h.Format == Array {
			return nil, nil, fmt.Errorf("readHeader: pattern array: %w", ErrUnsupported)
		}
	default:
		return nil, nil, fmt.Errorf("readHeader: field %q: %w", h.Field, ErrUnsupported)
	}
	switch h.Symmetry {
	case General, Symmetric, SkewSymmetric:
	default:
		return nil, nil, fmt.Errorf("readHeader: symmetry %q: %w", h.Symmetry, ErrUnsupported)
	}

	lr := &lineReader{sc: sc, line: 1}
	size, ok := lr.next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, nil, fmt.Errorf("readHeader: %w", err)
		}
		return nil, nil, fmt.Errorf("readHeader: missing size line: %w", ErrBadHeader)
	}
	want := 3
	if h.Format == Array {
		want = 2
	}
	dims, err := parseInts(strings.Fields(size), want)
	if err != nil {
		return nil, nil, fmt.Errorf("readHeader: line %d: size %q: %w: %w", lr.line, size, ErrBadHeader, err)
	}
	h.Rows, h.Cols = dims[0], dims[1]
	if h.Rows < 0 || h.Cols < 0 {
		return nil, nil, fmt.Errorf("readHeader: negative size %q: %w", size, ErrBadHeader)
	}
	if h.Rows > maxDim || h.Cols > maxDim {
		return nil, nil, fmt.Errorf("readHeader: size %q exceeds %d: %w", size, maxDim, ErrBadHeader)
	}
	if h.Format == Array {
		if h.Cols != 0 && h.Rows > math.MaxInt/h.Cols {
			return nil, nil, fmt.Errorf("readHeader: size %q overflows: %w", size, ErrBadHeader)
		}
		h.Entries = h.Rows * h.Cols
	} else {
		h.Entries = dims[2]
	}
	if h.Entries < 0 {
		return nil, nil, fmt.Errorf("readHeader: negative size %q: %w", size, ErrBadHeader)
	}
	if h.Symmetry != General && h.Rows != h.Cols {
		return nil, nil, fmt.Errorf("readHeader: %s %dx%d: %w", h.Symmetry, h.Rows, h.Cols, ErrBadHeader)
	}

	return h, lr, nil
}

func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("want %d integers, got %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
