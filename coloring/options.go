// SPDX-License-Identifier: MIT

// Package coloring: strategy selection and functional options.
// Option constructors panic on nonsensical values (programmer error).
package coloring

import (
	"fmt"
	"strings"
)

// Strategy selects the coloring algorithm used by Color.
type Strategy int

const (
	// StrategyRandomizedSequential is first-fit greedy over a seeded
	// permutation (CPU baseline).
	StrategyRandomizedSequential Strategy = iota

	// StrategyConflictRecolor is speculative parallel assignment with
	// conflict detection and bounded repair rounds.
	StrategyConflictRecolor

	// StrategyLibrary delegates to the library oracle (gonum Welsh-Powell).
	StrategyLibrary
)

var strategyNames = map[Strategy]string{
	StrategyRandomizedSequential: "randomizedSequential",
	StrategyConflictRecolor:      "conflictDetectRecolor",
	StrategyLibrary:              "library",
}

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name (case-insensitive) to a Strategy.
// Accepted: randomizedSequential, conflictDetectRecolor, library.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// Defaults.
const (
	DefaultStrategy  = StrategyRandomizedSequential
	DefaultSeed      = int64(1)
	DefaultWorkers   = 0 // GOMAXPROCS
	DefaultMaxRounds = 256
	DefaultMinChunk  = 512
)

// Option customises Color and ConflictRecolor.
type Option func(*options)

type options struct {
	strategy  Strategy
	seed      int64
	workers   int
	maxRounds int
	minChunk  int
}

func gatherOptions(opts ...Option) options {
	o := options{
		strategy:  DefaultStrategy,
		seed:      DefaultSeed,
		workers:   DefaultWorkers,
		maxRounds: DefaultMaxRounds,
		minChunk:  DefaultMinChunk,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStrategy selects the algorithm. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if _, ok := strategyNames[s]; !ok {
		panic("coloring: WithStrategy: unknown strategy")
	}
	return func(o *options) { o.strategy = s }
}

// WithSeed fixes the random permutation / node ranking.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers bounds the goroutines used by ConflictRecolor.
// 0 means GOMAXPROCS; negative values panic.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("coloring: WithWorkers(n<0)")
	}
	return func(o *options) { o.workers = n }
}

// WithMaxRounds bounds the conflict repair rounds of ConflictRecolor.
// Panics if r < 1.
func WithMaxRounds(r int) Option {
	if r < 1 {
		panic("coloring: WithMaxRounds(r<1)")
	}
	return func(o *options) { o.maxRounds = r }
}

// WithMinChunk sets the block size of ConflictRecolor: the number of
// pending nodes one goroutine colors sequentially per round. Larger blocks
// mean fewer conflicts and rounds, smaller blocks more parallelism.
// Panics if n < 1.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic("coloring: WithMinChunk(n<1)")
	}
	return func(o *options) { o.minChunk = n }
}
