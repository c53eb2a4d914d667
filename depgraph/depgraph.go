// SPDX-License-Identifier: MIT
// Package: depgraph
//
// depgraph.go - symmetrised adjacency construction.
//
// Contract:
//   - Built from the STORED pattern, explicit zeros included: the sweep
//     iterates stored entries, so any stored (i,j) is a real read dependency.
//   - Diagonal entries never produce edges.
//   - Neighbor lists are sorted ascending and duplicate-free.

package depgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcgs/matrix"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the immutable adjacency structure of the dependency graph.
type Graph struct {
	n      int
	adjPtr []int
	adj    []int
	maxDeg int
}

// FromMatrix builds the dependency graph of a.
func FromMatrix(a *matrix.Sparse) (*Graph, error) {
	if a == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
	}
	n := a.N()

	// 1) Count both directions of every off-diagonal entry.
	counts := make([]int, n+1)
	for i := 0; i < n; i++ {
		cols, _ := a.RowEntries(i)
		for _, j := range cols {
			if j != i {
				counts[i+1]++
				counts[j+1]++
			}
		}
	}
	for i := 0; i < n; i++ {
		counts[i+1] += counts[i]
	}

	// 2) Scatter.
	raw := make([]int, counts[n])
	next := make([]int, n)
	copy(next, counts[:n])
	for i := 0; i < n; i++ {
		cols, _ := a.RowEntries(i)
		for _, j := range cols {
			if j == i {
				continue
			}
			raw[next[i]] = j
			next[i]++
			raw[next[j]] = i
			next[j]++
		}
	}

	// 3) Sort and dedupe each list in place (symmetric entries appear twice).
	g := &Graph{n: n, adjPtr: make([]int, n+1)}
	w := 0
	for i := 0; i < n; i++ {
		seg := raw[counts[i]:counts[i+1]]
		sort.Ints(seg)
		start, prev := w, -1
		for _, j := range seg {
			if j == prev {
				continue
			}
			prev = j
			raw[w] = j
			w++
		}
		g.adjPtr[i+1] = w
		if d := w - start; d > g.maxDeg {
			g.maxDeg = d
		}
	}
	g.adj = raw[:w:w]

	return g, nil
}

// FromAdjacency builds a Graph from explicit undirected edge pairs over n
// nodes. Loops are ignored; repeated pairs collapse. It is the entry point
// for callers that color graphs not derived from a matrix.
func FromAdjacency(n int, edges [][2]int) (*Graph, error) {
	entries := make([]matrix.Triplet, 0, len(edges)+n)
	for i := 0; i < n; i++ {
		entries = append(entries, matrix.Triplet{Row: i, Col: i, Val: 1})
	}
	for _, e := range edges {
		entries = append(entries, matrix.Triplet{Row: e[0], Col: e[1], Val: 1})
	}
	a, err := matrix.FromTriplets(n, n, entries)
	if err != nil {
		return nil, fmt.Errorf("FromAdjacency: %w", err)
	}

	return FromMatrix(a)
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// Neighbors returns the sorted neighbour list of node i.
// The slice aliases internal storage and must not be modified.
func (g *Graph) Neighbors(i int) []int {
	start, end := g.adjPtr[i], g.adjPtr[i+1]
	return g.adj[start:end:end]
}

// Degree returns the number of neighbours of node i.
func (g *Graph) Degree(i int) int { return g.adjPtr[i+1] - g.adjPtr[i] }

// MaxDegree returns the largest node degree (0 for an edgeless graph).
func (g *Graph) MaxDegree() int { return g.maxDeg }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return len(g.adj) / 2 }

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return false
	}
	nb := g.Neighbors(i)
	k := sort.SearchInts(nb, j)
	return k < len(nb) && nb[k] == j
}

// Edges calls fn once per undirected edge (i<j), in ascending (i, j) order,
// until fn returns false.
func (g *Graph) Edges(fn func(i, j int) bool) {
	for i := 0; i < g.n; i++ {
		for _, j := range g.Neighbors(i) {
			if j > i && !fn(i, j) {
				return
			}
		}
	}
}

// ToGonum exports the graph as a gonum undirected graph with node IDs 0..N-1.
// Isolated nodes are included so external algorithms see every unknown.
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.n; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	g.Edges(func(i, j int) bool {
		ug.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
		return true
	})

	return ug
}
