// SPDX-License-Identifier: MIT

// Package solver drives multicolor Gauss-Seidel to a terminal state.
//
// A Session owns one solve: it derives the dependency graph of A, colors
// it once (timed), prepares a sweep.Executor and then iterates
//
//	Running --sweep--> Running
//	Running --residual <= tolerance--> Converged
//	Running --budget exhausted--> MaxIterationsReached
//	Running --NaN/Inf or residual blow-up--> Diverged
//
// Diverged and MaxIterationsReached are reported states, not errors. On
// Diverged the session keeps the last x that passed the divergence check.
// Errors are reserved for bad input (malformed matrix, missing diagonal,
// invalid configuration), coloring failure and cancellation.
//
// No-b mode: a nil right-hand side solves A·x = 0 and must be requested
// explicitly with Config.ZeroRHS. It is intended to be run with
// under-relaxation (ω < 1); the session starts from a vector of ones so the
// iteration has something to act on.
//
// Cancellation is checked between sweeps only; a sweep always completes.
package solver
