// SPDX-License-Identifier: MIT
// Package: solver
//
// session.go - the convergence controller.

package solver

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/depgraph"
	"github.com/katalvlaran/mcgs/matrix"
	"github.com/katalvlaran/mcgs/sweep"
)

const methodNewSession = "NewSession"

// Report is the outcome of a Run.
type Report struct {
	X               []float64
	State           State
	Iterations      int // total sweeps performed by the session
	Residual        float64
	InitialResidual float64
	History         []float64 // residual after each sweep
	Colors          int
	Components      int // connected components of the dependency graph
	Strategy        coloring.Strategy
	ColoringTime    time.Duration
	SweepTime       time.Duration // cumulative, residual evaluation included
}

// Session is one solve of A·x = b. It is not safe for concurrent use.
type Session struct {
	a    *matrix.Sparse
	b    []float64
	cfg  Config
	log  *slog.Logger
	part *coloring.Partition
	exec *sweep.Executor
	comp int

	x       []float64
	prev    []float64
	scratch []float64

	state        State
	iterations   int
	initial      float64
	residual     float64
	history      []float64
	coloringTime time.Duration
	sweepTime    time.Duration
}

// NewSession validates the inputs, colors A and prepares the sweep
// executor. A missing diagonal is reported here, before any sweep.
func NewSession(ctx context.Context, a *matrix.Sparse, b []float64, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}
	if a == nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, matrix.ErrNilMatrix)
	}
	switch {
	case b == nil && !cfg.ZeroRHS:
		return nil, fmt.Errorf("%s: %w", methodNewSession, ErrMissingRHS)
	case b != nil && cfg.ZeroRHS:
		return nil, fmt.Errorf("%s: zeroRHS set but b supplied: %w", methodNewSession, ErrInvalidConfig)
	}
	if err := matrix.ValidateRHS(b, a.N()); err != nil {
		return nil, fmt.Errorf("%s: b: %w", methodNewSession, err)
	}
	if err := a.ValidateDiagonal(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}
	o := gatherOptions(opts...)
	log := o.logger.With("n", a.N(), "nnz", a.NNZ())

	if cfg.ZeroRHS && cfg.Relaxation >= 1 {
		log.Warn("No-b mode without under-relaxation may diverge", "relaxation", cfg.Relaxation)
	}

	x := make([]float64, a.N())
	switch {
	case o.x0 != nil:
		if err := matrix.ValidateVecLen(o.x0, a.N()); err != nil {
			return nil, fmt.Errorf("%s: initial guess: %w", methodNewSession, err)
		}
		copy(x, o.x0)
	case cfg.ZeroRHS:
		for i := range x {
			x[i] = 1
		}
	}

	started := time.Now()
	g, err := depgraph.FromMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}
	part, err := coloring.Color(ctx, g,
		coloring.WithStrategy(cfg.Strategy),
		coloring.WithSeed(cfg.Seed),
		coloring.WithWorkers(cfg.Workers),
		coloring.WithMaxRounds(cfg.MaxColorRounds),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}
	coloringTime := time.Since(started)
	_, comp := g.Components()
	log.Debug("Coloring complete",
		"strategy", cfg.Strategy.String(), "colors", part.ColorCount(),
		"maxDegree", g.MaxDegree(), "components", comp, "elapsed", coloringTime)

	eopts := []sweep.Option{sweep.WithWorkers(cfg.Workers)}
	if o.grain > 0 {
		eopts = append(eopts, sweep.WithGrain(o.grain))
	}
	exec, err := sweep.NewExecutor(a, b, part, eopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}

	s := &Session{
		a:            a,
		b:            b,
		cfg:          cfg,
		log:          log,
		part:         part,
		exec:         exec,
		comp:         comp,
		x:            x,
		prev:         make([]float64, a.N()),
		scratch:      make([]float64, a.N()),
		coloringTime: coloringTime,
	}
	s.initial, err = a.ResidualNormTo(s.scratch, b, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}
	s.residual = s.initial

	return s, nil
}

// Partition returns the coloring used by the session.
func (s *Session) Partition() *coloring.Partition { return s.part }

// X returns a copy of the current iterate.
func (s *Session) X() []float64 { return append([]float64(nil), s.x...) }

// Run performs up to maxIterations sweeps at relaxation omega. A positive
// tolerance stops at the first residual <= tolerance; tolerance 0 runs the
// full budget. Run may be called again to continue a session that ended
// Converged or MaxIterationsReached.
//
// On cancellation Run returns the partial report (State Running) together
// with the context error.
//
// Complexity:
//   - Time O(k·nnz) for k sweeps (one sweep plus one residual each).
//
// Concurrency:
//   - Each sweep is internally parallel; sweeps run one after another.
//     ctx is checked between sweeps only. A Session is not safe for
//     concurrent use.
//
// Errors:
//   - ErrInvalidConfig for a non-positive budget, a negative or non-finite
//     tolerance, or omega outside (0, 2].
//   - ErrSessionDiverged once the session has reached Diverged.
//   - ctx.Err() (wrapped) on cancellation.
//   - Diverged and MaxIterationsReached are terminal states, not errors.
func (s *Session) Run(ctx context.Context, maxIterations int, tolerance, omega float64) (*Report, error) {
	if err := validateRunArgs(maxIterations, tolerance, omega); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if s.state == Diverged {
		return s.report(), fmt.Errorf("Run: %w", ErrSessionDiverged)
	}

	s.state = Running
	if tolerance > 0 && s.residual <= tolerance {
		s.state = Converged
		s.logTerminal()
		return s.report(), nil
	}

	limit := s.cfg.DivergenceFactor * math.Max(s.initial, 1)
	for k := 0; k < maxIterations; k++ {
		if err := ctx.Err(); err != nil {
			s.log.Info("Solve cancelled", "iterations", s.iterations, "residual", s.residual)
			return s.report(), fmt.Errorf("Run: %w", err)
		}

		copy(s.prev, s.x)
		started := time.Now()
		if err := s.exec.Sweep(s.x, omega); err != nil {
			return s.report(), fmt.Errorf("Run: %w", err)
		}
		res, err := s.a.ResidualNormTo(s.scratch, s.b, s.x)
		s.sweepTime += time.Since(started)
		if err != nil {
			return s.report(), fmt.Errorf("Run: %w", err)
		}
		s.iterations++
		s.history = append(s.history, res)

		if math.IsNaN(res) || math.IsInf(res, 0) || res > limit {
			copy(s.x, s.prev)
			s.state = Diverged
			s.log.Warn("Solve diverged", "iteration", s.iterations, "residual", res, "limit", limit)
			return s.report(), nil
		}
		s.residual = res
		s.log.Debug("Sweep complete", "iteration", s.iterations, "residual", res)

		if tolerance > 0 && res <= tolerance {
			s.state = Converged
			s.logTerminal()
			return s.report(), nil
		}
	}

	s.state = MaxIterationsReached
	s.logTerminal()
	return s.report(), nil
}

func (s *Session) logTerminal() {
	s.log.Info("Solve finished",
		"state", s.state.String(), "iterations", s.iterations,
		"residual", s.residual, "colors", s.part.ColorCount(),
		"coloringTime", s.coloringTime, "sweepTime", s.sweepTime)
}

func (s *Session) report() *Report {
	return &Report{
		X:               s.X(),
		State:           s.state,
		Iterations:      s.iterations,
		Residual:        s.residual,
		InitialResidual: s.initial,
		History:         append([]float64(nil), s.history...),
		Colors:          s.part.ColorCount(),
		Components:      s.comp,
		Strategy:        s.cfg.Strategy,
		ColoringTime:    s.coloringTime,
		SweepTime:       s.sweepTime,
	}
}

// Solve runs a fresh Session with cfg's iteration budget, tolerance and
// relaxation.
func Solve(ctx context.Context, a *matrix.Sparse, b []float64, cfg Config, opts ...Option) (*Report, error) {
	s, err := NewSession(ctx, a, b, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, cfg.MaxIterations, cfg.Tolerance, cfg.Relaxation)
}
