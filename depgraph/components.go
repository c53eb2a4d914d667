// SPDX-License-Identifier: MIT
// Package: depgraph
//
// components.go - connected components by breadth-first search.
//
// Contract:
//   - Components are numbered in order of their smallest node, so the
//     labelling is deterministic.
//   - Each node is enqueued exactly once; the queue is a flat slice.
//
// Complexity: O(N + |E|) time, O(N) space.

package depgraph

// Components labels every node with the index of its connected component
// and returns the labels together with the component count. Isolated nodes
// form their own components.
func (g *Graph) Components() (labels []int, count int) {
	labels = make([]int, g.n)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, g.n)

	for root := 0; root < g.n; root++ {
		if labels[root] >= 0 {
			continue
		}
		labels[root] = count
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			for _, u := range g.Neighbors(queue[head]) {
				if labels[u] < 0 {
					labels[u] = count
					queue = append(queue, u)
				}
			}
		}
		count++
	}

	return labels, count
}
