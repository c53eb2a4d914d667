package app

import (
	"errors"

	"github.com/katalvlaran/mcgs/solver"
)

// Config holds everything an App run needs.
type Config struct {
	MatrixPath  string // Matrix Market coordinate file
	GenSpec     string // builder generator spec, e.g. "grid:64x64"
	RHSPath     string // optional Matrix Market vector
	OutPath     string // optional solution output
	HistoryPath string // optional SQLite run log
	ListRuns    int    // > 0: print this many recorded runs and exit

	LogFormat string
	LogLevel  string

	Solver solver.Config
}

// NewConfig validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ListRuns > 0 {
		if cfg.HistoryPath == "" {
			return nil, errors.New("listing runs requires a history database")
		}
		return &cfg, nil
	}
	if (cfg.MatrixPath == "") == (cfg.GenSpec == "") {
		return nil, errors.New("exactly one of a matrix file or a generator spec is required")
	}
	if cfg.RHSPath != "" && cfg.Solver.ZeroRHS {
		return nil, errors.New("a right-hand side file cannot be combined with zero-rhs")
	}
	if err := cfg.Solver.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Source names the system being solved.
func (c *Config) Source() string {
	if c.GenSpec != "" {
		return c.GenSpec
	}
	return c.MatrixPath
}
