// SPDX-License-Identifier: MIT

package solver

import "log/slog"

// Option customises a Session.
type Option func(*options)

type options struct {
	logger *slog.Logger
	x0     []float64
	grain  int
}

func gatherOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger routes session events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithInitialGuess starts from a copy of x0 instead of the default (zeros,
// or ones in no-b mode). Its length is checked by NewSession.
func WithInitialGuess(x0 []float64) Option {
	cp := append([]float64(nil), x0...)
	return func(o *options) { o.x0 = cp }
}

// WithGrain forwards sweep.WithGrain. Panics if n < 1.
func WithGrain(n int) Option {
	if n < 1 {
		panic("solver: WithGrain(n<1)")
	}
	return func(o *options) { o.grain = n }
}
