// SPDX-License-Identifier: MIT

// Package coloring partitions the nodes of a dependency graph into
// independent sets ("colors") so that every unknown of one color can be
// relaxed concurrently.
//
// What:
//
//   - Partition: node → color array (values in [0,K)), the color count K and
//     per-color member lists. Color order 0..K-1 is the sweep order.
//   - RandomizedSequential: first-fit greedy over a fixed-seed permutation.
//     Strictly sequential; K ≤ maxDegree+1. It is the CPU baseline and its
//     wall time grows superlinearly on large graphs (poor cache locality of
//     the random visit order). This is accepted, not a defect.
//   - ConflictRecolor: speculative parallel first-fit followed by a
//     parallel conflict scan; the lower-ranked endpoint of every
//     monochromatic edge is recolored in the next round. Bounded by
//     WithMaxRounds (ErrColoringDidNotConverge).
//   - Oracle: black-box library coloring (gonum Welsh-Powell) behind the
//     same contract.
//   - Color: strategy dispatcher; every returned Partition has passed
//     Validate exactly once.
//
// Invariant (checked by Validate, relied upon by the sweep):
//
//	for every edge (i,j): ColorOf(i) != ColorOf(j)
//
// Determinism:
//
//   - For a fixed graph, strategy and seed the partition is identical across
//     runs, for every worker count.
//
// Errors:
//
//   - ErrNilGraph                graph is nil
//   - ErrInvalidColoring         partition violates the invariant or shape
//   - ErrColoringDidNotConverge  ConflictRecolor exceeded its round budget
//   - ErrUnknownStrategy         ParseStrategy received an unknown name
//   - context errors             ConflictRecolor canceled between rounds
package coloring
