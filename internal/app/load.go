package app

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mcgs/builder"
	"github.com/katalvlaran/mcgs/matrix"
	"github.com/katalvlaran/mcgs/mmio"
)

// loadSystem returns A and b. Without an explicit right-hand side and
// outside no-b mode, b = A·1 so the exact solution is the ones vector.
func (a *App) loadSystem() (*matrix.Sparse, []float64, error) {
	var (
		m   *matrix.Sparse
		err error
	)
	if a.cfg.GenSpec != "" {
		ctor, perr := builder.Parse(a.cfg.GenSpec)
		if perr != nil {
			return nil, nil, perr
		}
		m, err = builder.Build([]builder.BuilderOption{builder.WithSeed(a.cfg.Solver.Seed)}, ctor)
	} else {
		m, err = readMatrixFile(a.cfg.MatrixPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load matrix: %w", err)
	}
	a.logger.Debug("Matrix loaded.", "source", a.cfg.Source(), "n", m.N(), "nnz", m.NNZ())

	switch {
	case a.cfg.RHSPath != "":
		b, err := readVectorFile(a.cfg.RHSPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load right-hand side: %w", err)
		}
		return m, b, nil
	case a.cfg.Solver.ZeroRHS:
		return m, nil, nil
	default:
		b, err := builder.RHSFor(m, builder.Ones(m.N()))
		if err != nil {
			return nil, nil, err
		}
		return m, b, nil
	}
}

func readMatrixFile(path string) (*matrix.Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mmio.ReadMatrix(f)
}

func readVectorFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mmio.ReadVector(f)
}

func writeVectorFile(path string, x []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return mmio.WriteVector(f, x)
}
