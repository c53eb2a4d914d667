// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/sweep"
)

// Config holds every recognised solve setting.
type Config struct {
	// MaxIterations is the sweep budget (> 0).
	MaxIterations int
	// Tolerance stops the run once ‖b − Ax‖₂ <= Tolerance; 0 runs exactly
	// MaxIterations sweeps.
	Tolerance float64
	// Relaxation is ω in (0,2].
	Relaxation float64
	// Strategy selects the coloring algorithm.
	Strategy coloring.Strategy
	// Seed drives the coloring permutation / ranks.
	Seed int64
	// Workers bounds goroutines for coloring and sweeps; 0 = GOMAXPROCS.
	Workers int
	// MaxColorRounds bounds conflict repair rounds.
	MaxColorRounds int
	// DivergenceFactor: residual > DivergenceFactor·max(r0, 1) is Diverged.
	DivergenceFactor float64
	// ZeroRHS enables no-b mode (b must then be nil).
	ZeroRHS bool
}

// Defaults.
const (
	DefaultMaxIterations    = 1000
	DefaultTolerance        = 1e-8
	DefaultRelaxation       = 1.0
	DefaultDivergenceFactor = 1e8
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations:    DefaultMaxIterations,
		Tolerance:        DefaultTolerance,
		Relaxation:       DefaultRelaxation,
		Strategy:         coloring.DefaultStrategy,
		Seed:             coloring.DefaultSeed,
		Workers:          coloring.DefaultWorkers,
		MaxColorRounds:   coloring.DefaultMaxRounds,
		DivergenceFactor: DefaultDivergenceFactor,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if err := validateRunArgs(c.MaxIterations, c.Tolerance, c.Relaxation); err != nil {
		return fmt.Errorf("Config: %w", err)
	}
	if _, err := coloring.ParseStrategy(c.Strategy.String()); err != nil {
		return fmt.Errorf("Config: strategy %v: %w", c.Strategy, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("Config: workers=%d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.MaxColorRounds < 1 {
		return fmt.Errorf("Config: maxColorRounds=%d: %w", c.MaxColorRounds, ErrInvalidConfig)
	}
	if !(c.DivergenceFactor > 1) || math.IsInf(c.DivergenceFactor, 0) {
		return fmt.Errorf("Config: divergenceFactor=%v: %w", c.DivergenceFactor, ErrInvalidConfig)
	}
	return nil
}

func validateRunArgs(maxIterations int, tolerance, omega float64) error {
	if maxIterations <= 0 {
		return fmt.Errorf("maxIterations=%d: %w", maxIterations, ErrInvalidConfig)
	}
	if tolerance < 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return fmt.Errorf("tolerance=%v: %w", tolerance, ErrInvalidConfig)
	}
	if err := sweep.ValidateRelaxation(omega); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
