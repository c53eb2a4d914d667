// SPDX-License-Identifier: MIT

package depgraph

import "errors"

// ErrNilMatrix is returned when FromMatrix receives a nil matrix.
var ErrNilMatrix = errors.New("depgraph: matrix is nil")
