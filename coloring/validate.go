// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	"github.com/katalvlaran/mcgs/depgraph"
)

// Validate checks that p is a proper coloring of g: one color per node and
// no edge whose endpoints share a color. It reports the first violating
// edge in ascending (i, j) order.
//
// Complexity: O(N + |E|).
func Validate(g *depgraph.Graph, p *Partition) error {
	if g == nil {
		return fmt.Errorf("Validate: %w", ErrNilGraph)
	}
	if p == nil {
		return fmt.Errorf("Validate: nil partition: %w", ErrInvalidColoring)
	}
	if p.Len() != g.N() {
		return fmt.Errorf("Validate: partition covers %d nodes, graph has %d: %w",
			p.Len(), g.N(), ErrInvalidColoring)
	}

	var err error
	g.Edges(func(i, j int) bool {
		if c := p.ColorOf(i); c == p.ColorOf(j) {
			err = fmt.Errorf("Validate: nodes %d and %d share color %d: %w", i, j, c, ErrInvalidColoring)
			return false
		}
		return true
	})

	return err
}
