// SPDX-License-Identifier: MIT

package sweep

import "github.com/katalvlaran/mcgs/internal/parallel"

// Option customises an Executor.
type Option func(*options)

type options struct {
	workers int
	grain   int
}

func gatherOptions(opts ...Option) options {
	o := options{grain: parallel.DefaultMinChunk}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWorkers bounds the goroutines per color; 0 means GOMAXPROCS.
// Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("sweep: WithWorkers(n<0)")
	}
	return func(o *options) { o.workers = n }
}

// WithGrain sets the minimum number of unknowns per goroutine; colors
// smaller than the grain are updated inline. Panics if n < 1.
func WithGrain(n int) Option {
	if n < 1 {
		panic("sweep: WithGrain(n<1)")
	}
	return func(o *options) { o.grain = n }
}
