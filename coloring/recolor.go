// SPDX-License-Identifier: MIT
// Package: coloring
//
// recolor.go - speculative coloring with conflict detection (Strategy B).
//
// The pending (still uncommitted) nodes are cut into fixed-size blocks of
// WithMinChunk nodes; blocks are colored concurrently, each block
// sequentially. Each round:
//  1. Speculate (parallel over blocks): a pending node takes the smallest
//     color not used by a COMMITTED neighbour nor by a neighbour colored
//     earlier in its own block. Reads committed[] and pos[]; reads and
//     writes tentative[] only for nodes of its own block.
//  2. Barrier.
//  3. Scan (parallel): a pending node loses if a pending neighbour holds the
//     same tentative color and a higher rank. Reads tentative[], writes
//     lost[v].
//  4. Barrier, then commit every non-loser sequentially.
//
// Conflicts can only arise across blocks, so a clique that fits in one
// block is colored in a single round, and a clique of n nodes needs about
// n/blockSize rounds. Block boundaries depend only on the block size, never
// on the worker count, so the result is a function of (graph, seed, block
// size).
// Progress: the highest-ranked pending node never loses, so each round
// commits at least one node.
// Proper-ness: nodes committed in the same round never share a color on an
// edge (within a block by construction, across blocks one of them would
// have lost); nodes committed later avoided every committed neighbour's
// color.
// Color bound: as for first-fit, ColorCount ≤ MaxDegree+1.

package coloring

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mcgs/depgraph"
	"github.com/katalvlaran/mcgs/internal/parallel"
)

const methodConflictRecolor = "ConflictRecolor"

// ConflictRecolor colors g with bounded speculative repair rounds.
// Honoured options: WithSeed, WithWorkers, WithMaxRounds, WithMinChunk
// (block size).
//
// Complexity:
//   - Time O(R·(N + |E|)) for R rounds; Space O(N) plus O(maxDegree) per block.
//
// Concurrency:
//   - Blocks of one phase run on up to WithWorkers goroutines; phases are
//     separated by full barriers. g is only read.
//   - The context is checked between rounds and phases, never inside one.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrColoringDidNotConverge if nodes still conflict after WithMaxRounds.
//   - ctx.Err() (wrapped) on cancellation.
func ConflictRecolor(ctx context.Context, g *depgraph.Graph, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, wrapNil(methodConflictRecolor)
	}
	o := gatherOptions(opts...)
	n := g.N()

	rank := rand.New(rand.NewSource(o.seed)).Perm(n)
	committed := make([]int, n)
	tentative := make([]int, n)
	lost := make([]bool, n)
	pending := make([]int, n)
	pos := make([]int, n) // index of a pending node in pending
	for i := range committed {
		committed[i] = -1
		pending[i] = i
		pos[i] = i
	}
	width := g.MaxDegree() + 2

	for round := 0; len(pending) > 0; round++ {
		if round >= o.maxRounds {
			return nil, fmt.Errorf("%s: %d nodes still conflicting after %d rounds: %w",
				methodConflictRecolor, len(pending), o.maxRounds, ErrColoringDidNotConverge)
		}

		blocks := parallel.Blocks(len(pending), o.minChunk)

		// Phase 1: first-fit against committed colors and earlier nodes
		// of the same block.
		err := parallel.RunLimit(ctx, blocks, o.workers, func(lo, hi int) {
			forbid := make([]int, width)
			for i := range forbid {
				forbid[i] = -1
			}
			for p := lo; p < hi; p++ {
				v := pending[p]
				for _, u := range g.Neighbors(v) {
					if c := committed[u]; c >= 0 {
						forbid[c] = v
					} else if q := pos[u]; q >= lo && q < p {
						forbid[tentative[u]] = v
					}
				}
				c := 0
				for forbid[c] == v {
					c++
				}
				tentative[v] = c
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodConflictRecolor, round, err)
		}

		// Phase 2: conflict scan among pending neighbours.
		err = parallel.RunLimit(ctx, blocks, o.workers, func(lo, hi int) {
			for _, v := range pending[lo:hi] {
				lost[v] = false
				for _, u := range g.Neighbors(v) {
					if committed[u] < 0 && tentative[u] == tentative[v] && rank[u] > rank[v] {
						lost[v] = true
						break
					}
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodConflictRecolor, round, err)
		}

		// Commit winners; losers stay pending in their current order.
		next := pending[:0]
		for _, v := range pending {
			if lost[v] {
				pos[v] = len(next)
				next = append(next, v)
				continue
			}
			committed[v] = tentative[v]
			pos[v] = -1
		}
		pending = next
	}

	return finish(methodConflictRecolor, g, committed)
}
