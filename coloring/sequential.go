// SPDX-License-Identifier: MIT
// Package: coloring
//
// sequential.go - randomized first-fit greedy coloring (Strategy A).
//
// Contract:
//   - Visits nodes in rand.New(rand.NewSource(seed)).Perm(N) order.
//   - Each node takes the smallest color unused by its already-colored
//     neighbours, hence ColorCount ≤ MaxDegree+1.
//   - All state (color array, forbidden-color marks) is local to one call.
//
// Complexity:
//   - Time O(N + |E|), Space O(N + maxDegree).
//   - Inherently sequential: node k needs the colors of every earlier
//     neighbour in the permutation.

package coloring

import (
	"math/rand"

	"github.com/katalvlaran/mcgs/depgraph"
)

const methodRandomizedSequential = "RandomizedSequential"

// RandomizedSequential colors g by first-fit greedy over a seeded random
// node order.
func RandomizedSequential(g *depgraph.Graph, seed int64) (*Partition, error) {
	if g == nil {
		return nil, wrapNil(methodRandomizedSequential)
	}

	order := rand.New(rand.NewSource(seed)).Perm(g.N())
	colors := greedy(g, order, make([]int, g.N()))

	return finish(methodRandomizedSequential, g, colors)
}

// greedy assigns first-fit colors in the given order into colors (len N)
// and returns it.
func greedy(g *depgraph.Graph, order []int, colors []int) []int {
	for i := range colors {
		colors[i] = -1
	}
	// forbid[c] == v marks color c as taken by a neighbour of v.
	forbid := make([]int, g.MaxDegree()+2)
	for i := range forbid {
		forbid[i] = -1
	}

	for _, v := range order {
		for _, u := range g.Neighbors(v) {
			if c := colors[u]; c >= 0 {
				forbid[c] = v
			}
		}
		c := 0
		for forbid[c] == v {
			c++
		}
		colors[v] = c
	}

	return colors
}
