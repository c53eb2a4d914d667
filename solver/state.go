// SPDX-License-Identifier: MIT

package solver

// State is the convergence controller's state.
type State int

const (
	// Running is the only non-terminal state; a Report carries it only
	// when a Run was cancelled.
	Running State = iota
	Converged
	MaxIterationsReached
	Diverged
)

var stateNames = [...]string{
	Running:              "Running",
	Converged:            "Converged",
	MaxIterationsReached: "MaxIterationsReached",
	Diverged:             "Diverged",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether s ends a Run.
func (s State) Terminal() bool { return s != Running }
