// SPDX-License-Identifier: MIT

// Package builder generates deterministic sparse linear systems for tests,
// examples and the command-line tool.
//
// Constructors describe a topology (path, grid, random pattern, bounded
// degree, complete graph) and emit matrix triples into a shared Assembly;
// BuildMatrix applies them in order and assembles one matrix.Sparse
// (duplicates are summed, so constructors compose).
//
// Every generated off-diagonal value is negative and every diagonal is the
// absolute off-diagonal row sum plus a configurable margin, so the systems
// are symmetric and (weakly, or strictly with margin > 0) diagonally
// dominant: Gauss-Seidel converges on them for ω ∈ (0,1].
//
// Determinism: identical constructor order, parameters and seed produce
// bit-identical matrices.
package builder
