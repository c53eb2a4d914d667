// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrInvalidRelaxation indicates ω outside (0,2] or NaN.
	ErrInvalidRelaxation = errors.New("sweep: relaxation factor must be in (0,2]")

	// ErrPartitionMismatch indicates a partition that does not cover the
	// matrix dimension, or an invalid node order for SequentialSweep.
	ErrPartitionMismatch = errors.New("sweep: partition does not match matrix")
)
