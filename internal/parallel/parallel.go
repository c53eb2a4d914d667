// SPDX-License-Identifier: MIT

// Package parallel is the data-parallel layer shared by the coloring and
// sweep packages: a static chunked parallel-for whose return is a full
// barrier (every chunk has finished and its writes are visible).
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest chunk worth a goroutine. Ranges at or
// below it run inline on the caller's goroutine.
const DefaultMinChunk = 256

// Workers resolves a worker count: n <= 0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Chunks splits [0,n) into at most workers contiguous half-open ranges of
// at least minChunk elements (the last may be shorter).
func Chunks(n, workers, minChunk int) [][2]int {
	if n <= 0 {
		return nil
	}
	workers = Workers(workers)
	if minChunk < 1 {
		minChunk = 1
	}

	size := (n + workers - 1) / workers
	if size < minChunk {
		size = minChunk
	}
	out := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}

	return out
}

// Run executes fn over the given ranges concurrently and waits for all of
// them. A single range runs inline. ctx is only consulted before launching;
// fn itself is never interrupted.
func Run(ctx context.Context, ranges [][2]int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch len(ranges) {
	case 0:
		return nil
	case 1:
		fn(ranges[0][0], ranges[0][1])
		return nil
	}

	var g errgroup.Group
	for _, r := range ranges {
		lo, hi := r[0], r[1]
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// Blocks splits [0,n) into contiguous ranges of exactly size elements
// (the last may be shorter). Unlike Chunks the split does not depend on the
// worker count.
func Blocks(n, size int) [][2]int {
	if n <= 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}
	out := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}

	return out
}

// RunLimit is Run with at most workers ranges in flight (0 means
// GOMAXPROCS). With one worker or one range everything runs inline.
func RunLimit(ctx context.Context, ranges [][2]int, workers int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	workers = Workers(workers)
	if workers == 1 || len(ranges) <= 1 {
		for _, r := range ranges {
			fn(r[0], r[1])
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range ranges {
		lo, hi := r[0], r[1]
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// For is Run over Chunks(n, workers, minChunk).
func For(ctx context.Context, n, workers, minChunk int, fn func(lo, hi int)) error {
	return Run(ctx, Chunks(n, workers, minChunk), fn)
}
