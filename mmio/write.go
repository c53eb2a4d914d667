// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mcgs/matrix"
)

// WriteMatrix writes a as "coordinate real general".
func WriteMatrix(w io.Writer, a *matrix.Sparse) error {
	if a == nil {
		return fmt.Errorf("WriteMatrix: %w", matrix.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s matrix %s %s %s\n", banner, Coordinate, Real, General)
	fmt.Fprintf(bw, "%d %d %d\n", a.N(), a.N(), a.NNZ())
	for i := 0; i < a.N(); i++ {
		cols, vals := a.RowEntries(i)
		for k, j := range cols {
			fmt.Fprintf(bw, "%d %d %s\n", i+1, j+1, formatFloat(vals[k]))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	return nil
}

// WriteVector writes x as an "array real general" column vector.
func WriteVector(w io.Writer, x []float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s matrix %s %s %s\n", banner, Array, Real, General)
	fmt.Fprintf(bw, "%d 1\n", len(x))
	for _, v := range x {
		bw.WriteString(formatFloat(v))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteVector: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
