// SPDX-License-Identifier: MIT

// Package depgraph derives the Gauss-Seidel dependency graph of a sparse
// matrix.
//
// Nodes are the unknowns 0..N-1. Nodes i and j (i ≠ j) are adjacent iff
// A[i][j] or A[j][i] is stored in the matrix pattern: updating x[i] reads
// x[j] and vice versa, so the two must never be updated concurrently. The
// graph is symmetrised, loop-free and free of parallel edges.
//
// The adjacency is kept in its own CSR arrays (neighbour lists sorted
// ascending) because every coloring strategy and the validator scan it
// repeatedly; the matrix itself is not symmetric in general.
//
// Complexity:
//
//   - FromMatrix: O(nnz log d) time, O(nnz) memory (d = max degree)
//   - Neighbors / Degree: O(1)
//   - Edges: O(|E|)
package depgraph
