// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

// DiagonalShift returns a Constructor adding alpha to every diagonal entry
// of what earlier constructors produced. A negative alpha can destroy
// diagonal dominance; tests use that to build divergent systems.
func DiagonalShift(alpha float64) Constructor {
	return func(a *Assembly, _ builderConfig) error {
		if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
			return fmt.Errorf("DiagonalShift: alpha=%v: %w", alpha, ErrConstructFailed)
		}
		if a.n == 0 {
			return fmt.Errorf("DiagonalShift: empty assembly: %w", ErrConstructFailed)
		}
		for i := 0; i < a.n; i++ {
			a.add(i, i, alpha)
		}

		return nil
	}
}
