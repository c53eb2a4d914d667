// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point and the shared assembly.
//
// Design contract:
//   - One orchestrator: BuildMatrix(mopts, bopts, cons...). Resolves cfg,
//     runs cons in order against one Assembly, then assembles the matrix.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     matrices.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcgs/matrix"
)

// Constructor emits triples for one topology into the Assembly.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(a *Assembly, cfg builderConfig) error

// Assembly accumulates triples; its dimension is the largest node count any
// constructor asked for.
type Assembly struct {
	n       int
	entries []matrix.Triplet
}

// N returns the current dimension.
func (a *Assembly) N() int { return a.n }

func (a *Assembly) grow(n int) {
	if n > a.n {
		a.n = n
	}
}

func (a *Assembly) add(i, j int, v float64) {
	a.entries = append(a.entries, matrix.Triplet{Row: i, Col: j, Val: v})
}

// addSym emits the symmetric pair (i,j),(j,i) and accumulates |v| into the
// row sums used for the dominant diagonal.
func (a *Assembly) addSym(i, j int, v float64, rowAbs []float64) {
	a.add(i, j, v)
	a.add(j, i, v)
	rowAbs[i] += math.Abs(v)
	rowAbs[j] += math.Abs(v)
}

// addDiag emits rowAbs[i]+margin on each diagonal of [0, len(rowAbs)).
func (a *Assembly) addDiag(rowAbs []float64, margin float64) {
	for i, s := range rowAbs {
		a.add(i, i, s+margin)
	}
}

// BuildMatrix resolves bopts, applies all constructors in order and
// assembles the result with mopts. Constructor errors are wrapped with
// "BuildMatrix: %w".
func BuildMatrix(mopts []matrix.Option, bopts []BuilderOption, cons ...Constructor) (*matrix.Sparse, error) {
	cfg := newBuilderConfig(bopts...)
	asm := &Assembly{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(asm, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}
	if asm.n == 0 {
		return nil, fmt.Errorf("BuildMatrix: no constructor produced nodes: %w", ErrTooFewVertices)
	}

	a, err := matrix.FromTriplets(asm.n, asm.n, asm.entries, mopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	return a, nil
}

// Build is BuildMatrix with default matrix options.
func Build(bopts []BuilderOption, cons ...Constructor) (*matrix.Sparse, error) {
	return BuildMatrix(nil, bopts, cons...)
}
