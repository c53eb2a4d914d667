// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"
	"sort"
)

// Partition is an immutable node → color assignment with derived
// per-color member lists. It is produced once per matrix pattern and
// shared read-only by every sweep.
type Partition struct {
	colors []int
	sets   [][]int
}

// FromLabels builds a Partition from arbitrary non-negative labels. Labels
// are compacted to [0,K) preserving their relative order, so a labelling
// that is already dense is kept as is. Members of each color are listed in
// ascending node order.
//
// FromLabels does not check adjacency; use Validate for that.
func FromLabels(labels []int) (*Partition, error) {
	distinct := make(map[int]int)
	for i, l := range labels {
		if l < 0 {
			return nil, fmt.Errorf("FromLabels: node %d has label %d: %w", i, l, ErrInvalidColoring)
		}
		distinct[l] = 0
	}

	keys := make([]int, 0, len(distinct))
	for l := range distinct {
		keys = append(keys, l)
	}
	sort.Ints(keys)
	for c, l := range keys {
		distinct[l] = c
	}

	p := &Partition{
		colors: make([]int, len(labels)),
		sets:   make([][]int, len(keys)),
	}
	sizes := make([]int, len(keys))
	for i, l := range labels {
		c := distinct[l]
		p.colors[i] = c
		sizes[c]++
	}
	for c := range p.sets {
		p.sets[c] = make([]int, 0, sizes[c])
	}
	for i, c := range p.colors {
		p.sets[c] = append(p.sets[c], i)
	}

	return p, nil
}

// Len returns the number of colored nodes.
func (p *Partition) Len() int { return len(p.colors) }

// ColorCount returns K, the number of colors.
func (p *Partition) ColorCount() int { return len(p.sets) }

// ColorOf returns the color of node i.
func (p *Partition) ColorOf(i int) int { return p.colors[i] }

// NodesOfColor returns the members of color c in ascending order.
// The slice aliases internal storage and must not be modified.
func (p *Partition) NodesOfColor(c int) []int {
	s := p.sets[c]
	return s[:len(s):len(s)]
}

// Colors returns a copy of the node → color array.
func (p *Partition) Colors() []int {
	out := make([]int, len(p.colors))
	copy(out, p.colors)
	return out
}

// Sizes returns the number of nodes in each color.
func (p *Partition) Sizes() []int {
	out := make([]int, len(p.sets))
	for c, s := range p.sets {
		out[c] = len(s)
	}
	return out
}
