// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	"github.com/katalvlaran/mcgs/depgraph"
	gcoloring "gonum.org/v1/gonum/graph/coloring"
)

const methodOracle = "Oracle"

// Oracle is the colorGraph(adjacency) capability backed by an external
// library routine (currently gonum's Welsh-Powell). Callers must rely only
// on the contract: a proper coloring with a small color count. The result
// is validated like every other strategy's.
func Oracle(g *depgraph.Graph) (*Partition, error) {
	if g == nil {
		return nil, wrapNil(methodOracle)
	}

	_, colors, err := gcoloring.WelshPowell(g.ToGonum(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodOracle, ErrInvalidColoring, err)
	}
	if len(colors) != g.N() {
		return nil, fmt.Errorf("%s: library colored %d of %d nodes: %w",
			methodOracle, len(colors), g.N(), ErrInvalidColoring)
	}

	labels := make([]int, g.N())
	for id, c := range colors {
		if id < 0 || int(id) >= g.N() {
			return nil, fmt.Errorf("%s: unknown node id %d: %w", methodOracle, id, ErrInvalidColoring)
		}
		labels[id] = c
	}

	return finish(methodOracle, g, labels)
}

func wrapNil(method string) error {
	return fmt.Errorf("%s: %w", method, ErrNilGraph)
}
