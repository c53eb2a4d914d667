// SPDX-License-Identifier: MIT

// Package mmio reads and writes the NIST Matrix Market exchange format.
//
// Supported on input:
//   - coordinate matrices with field real, integer or pattern (pattern
//     entries get value 1) and symmetry general, symmetric or
//     skew-symmetric (the mirrored half is expanded on read);
//   - dense column vectors in array format (rows × 1), or coordinate
//     format with a single column.
//
// Complex and hermitian files are rejected with ErrUnsupported. Indices in
// files are 1-based; everything returned is 0-based.
//
// Output is always "coordinate real general" for matrices and
// "array real general" for vectors, with values printed in the shortest
// representation that round-trips.
package mmio
