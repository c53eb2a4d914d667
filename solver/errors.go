// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrInvalidConfig indicates a Config or Run argument out of range.
	ErrInvalidConfig = errors.New("solver: invalid configuration")

	// ErrMissingRHS indicates b == nil without Config.ZeroRHS.
	ErrMissingRHS = errors.New("solver: right-hand side is required unless zeroRHS is set")

	// ErrSessionDiverged indicates Run on a session that already diverged.
	ErrSessionDiverged = errors.New("solver: session already diverged")
)
