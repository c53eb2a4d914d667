// SPDX-License-Identifier: MIT

package coloring

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mcgs/depgraph"
)

// Color colors g with the configured strategy (default
// StrategyRandomizedSequential). The returned Partition has been validated
// against g.
//
// Complexity:
//   - RandomizedSequential: O(N + |E|).
//   - ConflictRecolor: O(R·(N + |E|)) for R rounds.
//   - Library: that of gonum's Welsh-Powell on an exported copy of g.
//
// Concurrency:
//   - Only ConflictRecolor runs goroutines; g is never modified and all
//     coloring state lives in the call.
//
// Errors:
//   - ErrNilGraph, ErrUnknownStrategy.
//   - ErrColoringDidNotConverge from ConflictRecolor.
//   - ErrInvalidColoring if a result fails validation.
func Color(ctx context.Context, g *depgraph.Graph, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, fmt.Errorf("Color: %w", ErrNilGraph)
	}
	o := gatherOptions(opts...)

	switch o.strategy {
	case StrategyRandomizedSequential:
		return RandomizedSequential(g, o.seed)
	case StrategyConflictRecolor:
		return ConflictRecolor(ctx, g, opts...)
	case StrategyLibrary:
		return Oracle(g)
	default:
		return nil, fmt.Errorf("Color: %v: %w", o.strategy, ErrUnknownStrategy)
	}
}

// finish turns raw labels into a validated Partition.
func finish(method string, g *depgraph.Graph, labels []int) (*Partition, error) {
	p, err := FromLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := Validate(g, p); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return p, nil
}
