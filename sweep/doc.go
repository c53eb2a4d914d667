// SPDX-License-Identifier: MIT

// Package sweep performs color-ordered Gauss-Seidel sweeps.
//
// An Executor binds a matrix, an optional right-hand side and a validated
// coloring.Partition. One Sweep visits colors 0..K-1 strictly in order;
// the unknowns of one color are mutually independent and are updated
// concurrently in static chunks, with a barrier before the next color:
//
//	for c := 0; c < K; c++ {
//	    parallel over i in color c:
//	        xNew := (b[i] - Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//	        x[i] += ω·(xNew - x[i])
//	    barrier
//	}
//
// x is the only mutable state; writes within a color are disjoint. A, b
// and the partition are only read, so one Executor can serve many x
// vectors sequentially. A single Executor must not run two sweeps at once
// on the same x.
//
// SequentialSweep is the single-threaded reference over an explicit node
// order; with the same order both produce bit-identical results.
package sweep
