// SPDX-License-Identifier: MIT

package coloring

import "errors"

var (
	// ErrNilGraph indicates that a nil *depgraph.Graph was supplied.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrInvalidColoring indicates a partition that is not a proper coloring
	// of the graph (monochromatic edge, wrong length or negative label).
	ErrInvalidColoring = errors.New("coloring: invalid coloring")

	// ErrColoringDidNotConverge is returned by ConflictRecolor when conflicts
	// remain after the configured number of repair rounds. Fatal: coloring
	// is a prerequisite of the solve, partial colorings are never returned.
	ErrColoringDidNotConverge = errors.New("coloring: conflict repair did not converge")

	// ErrUnknownStrategy indicates an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")
)
