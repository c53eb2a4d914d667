// Package mcgs solves sparse linear systems A·x = b with multicolor
// parallel Gauss-Seidel.
//
// What is multicolor Gauss-Seidel?
//
//	Gauss-Seidel updates one unknown at a time using the freshest values of
//	all others, which makes it inherently sequential. Coloring the
//	dependency graph of A (unknowns i, j adjacent when A[i][j] or A[j][i]
//	is stored) splits the unknowns into independent sets: unknowns of one
//	color never read each other, so a whole color is updated in parallel,
//	and colors run one after another with a barrier in between.
//
// Pipeline:
//
//	triples ─► matrix.Sparse ─► depgraph.Graph ─► coloring.Partition
//	                                                    │
//	                       solver.Session ◄─► sweep.Executor (per sweep)
//
// Packages:
//
//	matrix/   - immutable CSR matrix with separate diagonal, SpMV, residuals
//	depgraph/ - symmetrised dependency graph, components, gonum export
//	coloring/ - randomized sequential, speculative conflict-repair and
//	            library (Welsh-Powell) colorings, always validated
//	sweep/    - color-ordered parallel sweep and a sequential reference
//	solver/   - convergence controller: Converged, MaxIterationsReached,
//	            Diverged; relaxation; timing report
//	builder/  - seeded generators of test systems (path, grid, random,
//	            bounded degree, complete)
//	mmio/     - Matrix Market reader and writer
//
// The mcgs command (cmd/mcgs) wires these together with a YAML/HCL config
// file, structured logging and an optional SQLite run history.
//
// Quick example:
//
//	a, _ := builder.Build(nil, builder.Laplacian2D(64, 64))
//	b, _ := builder.RHSFor(a, builder.Ones(a.N()))
//	rep, err := solver.Solve(ctx, a, b, solver.DefaultConfig())
//
//	go install github.com/katalvlaran/mcgs/cmd/mcgs@latest
package mcgs
