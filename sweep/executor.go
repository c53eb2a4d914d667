// SPDX-License-Identifier: MIT
// Package: sweep
//
// executor.go - the color-parallel Gauss-Seidel kernel.
//
// Contract:
//   - NewExecutor validates everything up front: dimensions, the partition
//     size and every diagonal. A missing diagonal is reported here, before
//     any sweep runs.
//   - The chunk schedule of each color is computed once and reused.
//   - Sweep never checks for cancellation; a sweep always completes.
//
// Complexity per sweep: O(nnz) work, K barriers.

package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/internal/parallel"
	"github.com/katalvlaran/mcgs/matrix"
)

const methodNewExecutor = "NewExecutor"

// Executor runs color-ordered sweeps for one system.
type Executor struct {
	a        *matrix.Sparse
	b        []float64
	part     *coloring.Partition
	invDiag  []float64
	schedule [][][2]int // per color: chunk ranges into NodesOfColor(c)
}

// NewExecutor prepares sweeps of a·x = b under part. A nil b means the
// zero right-hand side.
//
// Complexity:
//   - Time O(N + nnz) for validation and the 1/A[i][i] table; Space O(N).
//
// Errors:
//   - matrix.ErrNilMatrix if a is nil.
//   - ErrPartitionMismatch if part is nil or does not cover a's N nodes.
//   - matrix.ErrDimensionMismatch if b is non-nil with len(b) != N.
//   - matrix.ErrMissingDiagonal for the first row with A[i][i] == 0,
//     before any sweep can run.
func NewExecutor(a *matrix.Sparse, b []float64, part *coloring.Partition, opts ...Option) (*Executor, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", methodNewExecutor, matrix.ErrNilMatrix)
	}
	if part == nil || part.Len() != a.N() {
		return nil, fmt.Errorf("%s: %w", methodNewExecutor, ErrPartitionMismatch)
	}
	if err := matrix.ValidateRHS(b, a.N()); err != nil {
		return nil, fmt.Errorf("%s: b: %w", methodNewExecutor, err)
	}
	if err := a.ValidateDiagonal(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewExecutor, err)
	}
	o := gatherOptions(opts...)

	invDiag := make([]float64, a.N())
	for i := range invDiag {
		invDiag[i] = 1 / a.DiagUnchecked(i)
	}
	schedule := make([][][2]int, part.ColorCount())
	for c := range schedule {
		schedule[c] = parallel.Chunks(len(part.NodesOfColor(c)), o.workers, o.grain)
	}

	return &Executor{a: a, b: b, part: part, invDiag: invDiag, schedule: schedule}, nil
}

// N returns the system dimension.
func (e *Executor) N() int { return e.a.N() }

// Colors returns the number of colors, i.e. barriers per sweep.
func (e *Executor) Colors() int { return len(e.schedule) }

// Sweep performs one full color-ordered sweep over x in place.
//
// Complexity:
//   - Time O(nnz) per sweep, split across the chunks of each color.
//
// Concurrency:
//   - Colors run strictly in order. Chunks of one color run concurrently
//     and the errgroup wait is a full barrier before the next color.
//   - Within a color every write x[i] targets a distinct node and every
//     read x[j] targets a different color, so x needs no locking.
//   - Not safe for concurrent Sweep calls on the same x.
//
// Errors:
//   - ErrInvalidRelaxation unless omega is in (0, 2].
//   - matrix.ErrDimensionMismatch if len(x) != N.
func (e *Executor) Sweep(x []float64, omega float64) error {
	if err := ValidateRelaxation(omega); err != nil {
		return fmt.Errorf("Sweep: %w", err)
	}
	if err := matrix.ValidateVecLen(x, e.a.N()); err != nil {
		return fmt.Errorf("Sweep: x: %w", err)
	}

	ctx := context.Background()
	for c, ranges := range e.schedule {
		nodes := e.part.NodesOfColor(c)
		err := parallel.Run(ctx, ranges, func(lo, hi int) {
			for _, i := range nodes[lo:hi] {
				update(e.a, e.b, e.invDiag[i], x, i, omega)
			}
		})
		if err != nil {
			return fmt.Errorf("Sweep: color %d: %w", c, err)
		}
	}

	return nil
}

// update applies the relaxed Gauss-Seidel step to x[i].
func update(a *matrix.Sparse, b []float64, inv float64, x []float64, i int, omega float64) {
	sum := 0.0
	if b != nil {
		sum = b[i]
	}
	cols, vals := a.RowEntries(i)
	for k, j := range cols {
		if j != i {
			sum -= vals[k] * x[j]
		}
	}
	xNew := sum * inv
	x[i] += omega * (xNew - x[i])
}

// ValidateRelaxation accepts ω in (0,2].
func ValidateRelaxation(omega float64) error {
	if math.IsNaN(omega) || omega <= 0 || omega > 2 {
		return fmt.Errorf("ω=%v: %w", omega, ErrInvalidRelaxation)
	}
	return nil
}
