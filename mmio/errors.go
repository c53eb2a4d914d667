// SPDX-License-Identifier: MIT

package mmio

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed %%MatrixMarket banner
	// or size line.
	ErrBadHeader = errors.New("mmio: bad header")

	// ErrUnsupported indicates a valid but unsupported object, format,
	// field or symmetry.
	ErrUnsupported = errors.New("mmio: unsupported matrix market variant")

	// ErrBadEntry indicates an unparsable data line.
	ErrBadEntry = errors.New("mmio: bad entry")

	// ErrTruncated indicates fewer data lines than the size line announced.
	ErrTruncated = errors.New("mmio: unexpected end of data")
)
