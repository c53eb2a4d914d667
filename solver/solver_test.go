// SPDX-License-Identifier: MIT
package solver_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mcgs/builder"
	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/matrix"
	"github.com/katalvlaran/mcgs/solver"
)

var strategies = []coloring.Strategy{
	coloring.StrategyRandomizedSequential,
	coloring.StrategyConflictRecolor,
	coloring.StrategyLibrary,
}

// illConditioned is [[1,2],[-2,1]]: Gauss-Seidel amplifies by 4 per sweep
// at ω=1, while ω=0.3 gives an iteration with spectral radius 0.7.
func illConditioned(t *testing.T) *matrix.Sparse {
	t.Helper()
	a, err := matrix.FromDense([][]float64{{1, 2}, {-2, 1}})
	require.NoError(t, err)
	return a
}

func TestSolve_ThreeByThree(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromDense([][]float64{
		{4, 1, 0},
		{1, 4, 1},
		{0, 1, 4},
	})
	require.NoError(t, err)
	b := []float64{5, 6, 5}

	for _, s := range strategies {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			cfg := solver.DefaultConfig()
			cfg.Tolerance = 1e-6
			cfg.MaxIterations = 20
			cfg.Strategy = s

			rep, err := solver.Solve(context.Background(), a, b, cfg)
			require.NoError(t, err)
			require.Equal(t, solver.Converged, rep.State)
			require.Less(t, rep.Iterations, 20)
			require.LessOrEqual(t, rep.Residual, 1e-6)
			require.InDeltaSlice(t, []float64{1, 1, 1}, rep.X, 1e-6)
			require.Equal(t, 2, rep.Colors)
			require.Len(t, rep.History, rep.Iterations)
			require.Equal(t, s, rep.Strategy)
		})
	}
}

func TestSolve_DisconnectedTwoColors(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromDense([][]float64{
		{3, 1, 0, 0},
		{1, 3, 0, 0},
		{0, 0, 3, -1},
		{0, 0, -1, 3},
	})
	require.NoError(t, err)
	b, err := builder.RHSFor(a, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	cfg := solver.DefaultConfig()
	cfg.Strategy = coloring.StrategyRandomizedSequential
	rep, err := solver.Solve(context.Background(), a, b, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, rep.Colors)
	require.Equal(t, 2, rep.Components)
	require.Equal(t, solver.Converged, rep.State)
	require.InDeltaSlice(t, []float64{1, 2, 3, 4}, rep.X, 1e-7)
}

func TestSolve_MissingDiagonalBeforeSweep(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromDense([][]float64{
		{4, 1, 0},
		{1, 0, 1},
		{0, 1, 4},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err = solver.Solve(context.Background(), a, []float64{1, 1, 1}, solver.DefaultConfig(), solver.WithLogger(logger))
	require.ErrorIs(t, err, matrix.ErrMissingDiagonal)
	require.NotContains(t, buf.String(), "Sweep complete")
}

func TestSolve_ZeroRHSDivergesWithoutRelaxation(t *testing.T) {
	t.Parallel()
	a := illConditioned(t)
	cfg := solver.DefaultConfig()
	cfg.ZeroRHS = true
	cfg.Tolerance = 0
	cfg.MaxIterations = 100

	rep, err := solver.Solve(context.Background(), a, nil, cfg)
	require.NoError(t, err)
	require.Equal(t, solver.Diverged, rep.State)
	require.Less(t, rep.Iterations, 30)
	for _, v := range rep.X {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	// The kept x is the last one that passed the divergence check.
	require.LessOrEqual(t, rep.Residual, cfg.DivergenceFactor*math.Max(rep.InitialResidual, 1))
	got, err := a.ResidualNorm(nil, rep.X)
	require.NoError(t, err)
	require.InDelta(t, rep.Residual, got, 1e-9*rep.Residual)
}

func TestSolve_ZeroRHSBoundedWithRelaxation(t *testing.T) {
	t.Parallel()
	a := illConditioned(t)
	cfg := solver.DefaultConfig()
	cfg.ZeroRHS = true
	cfg.Tolerance = 0
	cfg.MaxIterations = 60
	cfg.Relaxation = 0.3

	rep, err := solver.Solve(context.Background(), a, nil, cfg)
	require.NoError(t, err)
	require.Equal(t, solver.MaxIterationsReached, rep.State)
	require.Equal(t, 60, rep.Iterations)
	for _, r := range rep.History {
		require.LessOrEqual(t, r, 10*rep.InitialResidual)
	}
	require.Less(t, rep.Residual, rep.InitialResidual)
}

func TestSolve_MatchesDenseReference(t *testing.T) {
	t.Parallel()
	a, err := builder.Build(nil, builder.Laplacian2D(8, 8))
	require.NoError(t, err)
	b := builder.Ones(a.N())

	var want mat.VecDense
	require.NoError(t, want.SolveVec(a.ToDense(), mat.NewVecDense(a.N(), b)))

	cfg := solver.DefaultConfig()
	cfg.Tolerance = 1e-11
	cfg.Strategy = coloring.StrategyConflictRecolor
	rep, err := solver.Solve(context.Background(), a, b, cfg, solver.WithGrain(4))
	require.NoError(t, err)
	require.Equal(t, solver.Converged, rep.State)
	require.LessOrEqual(t, rep.Colors, 5)
	require.InDeltaSlice(t, want.RawVector().Data, rep.X, 1e-9)
}

func TestSolve_MaxIterationsReached(t *testing.T) {
	t.Parallel()
	a, err := builder.Build([]builder.BuilderOption{builder.WithDiagonalMargin(0.01)}, builder.Laplacian1D(200))
	require.NoError(t, err)
	cfg := solver.DefaultConfig()
	cfg.MaxIterations = 5
	cfg.Tolerance = 1e-12
	rep, err := solver.Solve(context.Background(), a, builder.Ones(a.N()), cfg)
	require.NoError(t, err)
	require.Equal(t, solver.MaxIterationsReached, rep.State)
	require.Equal(t, 5, rep.Iterations)
}

func TestSession_RunContinues(t *testing.T) {
	t.Parallel()
	a, err := builder.Build(nil, builder.Laplacian2D(6, 6))
	require.NoError(t, err)
	cfg := solver.DefaultConfig()
	s, err := solver.NewSession(context.Background(), a, builder.Ones(a.N()), cfg)
	require.NoError(t, err)

	rep, err := s.Run(context.Background(), 3, 0, 1)
	require.NoError(t, err)
	require.Equal(t, solver.MaxIterationsReached, rep.State)
	first := rep.Residual

	rep, err = s.Run(context.Background(), 500, 1e-10, 1)
	require.NoError(t, err)
	require.Equal(t, solver.Converged, rep.State)
	require.Greater(t, rep.Iterations, 3)
	require.Less(t, rep.Residual, first)
	require.Len(t, rep.History, rep.Iterations)
}

func TestSession_RunAfterDiverged(t *testing.T) {
	t.Parallel()
	cfg := solver.DefaultConfig()
	cfg.ZeroRHS = true
	s, err := solver.NewSession(context.Background(), illConditioned(t), nil, cfg)
	require.NoError(t, err)
	rep, err := s.Run(context.Background(), 100, 0, 1)
	require.NoError(t, err)
	require.Equal(t, solver.Diverged, rep.State)

	_, err = s.Run(context.Background(), 1, 0, 0.3)
	require.ErrorIs(t, err, solver.ErrSessionDiverged)
}

func TestSession_Cancelled(t *testing.T) {
	t.Parallel()
	a, err := builder.Build(nil, builder.Laplacian1D(10))
	require.NoError(t, err)
	s, err := solver.NewSession(context.Background(), a, builder.Ones(10), solver.DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := s.Run(ctx, 10, 0, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, solver.Running, rep.State)
	require.Zero(t, rep.Iterations)
}

func TestSolve_InputErrors(t *testing.T) {
	t.Parallel()
	a, err := builder.Build(nil, builder.Laplacian1D(3))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = solver.Solve(ctx, a, nil, solver.DefaultConfig())
	require.ErrorIs(t, err, solver.ErrMissingRHS)

	zero := solver.DefaultConfig()
	zero.ZeroRHS = true
	_, err = solver.Solve(ctx, a, []float64{1, 1, 1}, zero)
	require.ErrorIs(t, err, solver.ErrInvalidConfig)

	_, err = solver.Solve(ctx, a, []float64{1}, solver.DefaultConfig())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = solver.Solve(ctx, nil, nil, solver.DefaultConfig())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = solver.Solve(ctx, a, []float64{1, 1, 1}, solver.DefaultConfig(), solver.WithInitialGuess([]float64{0}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := solver.NewSession(ctx, a, []float64{1, 1, 1}, solver.DefaultConfig())
	require.NoError(t, err)
	_, err = s.Run(ctx, 0, 0, 1)
	require.ErrorIs(t, err, solver.ErrInvalidConfig)
	_, err = s.Run(ctx, 1, 0, 2.5)
	require.ErrorIs(t, err, solver.ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	require.NoError(t, solver.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*solver.Config)
	}{
		{"maxIterations", func(c *solver.Config) { c.MaxIterations = 0 }},
		{"negative tolerance", func(c *solver.Config) { c.Tolerance = -1 }},
		{"NaN tolerance", func(c *solver.Config) { c.Tolerance = math.NaN() }},
		{"relaxation zero", func(c *solver.Config) { c.Relaxation = 0 }},
		{"relaxation above two", func(c *solver.Config) { c.Relaxation = 2.1 }},
		{"strategy", func(c *solver.Config) { c.Strategy = coloring.Strategy(7) }},
		{"workers", func(c *solver.Config) { c.Workers = -2 }},
		{"rounds", func(c *solver.Config) { c.MaxColorRounds = 0 }},
		{"divergence", func(c *solver.Config) { c.DivergenceFactor = 1 }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := solver.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), solver.ErrInvalidConfig)
		})
	}
}

func TestSolve_LogsWarningInNoBMode(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := solver.DefaultConfig()
	cfg.ZeroRHS = true
	cfg.MaxIterations = 5
	cfg.Tolerance = 0
	cfg.Relaxation = 0.3

	_, err := solver.Solve(context.Background(), illConditioned(t), nil, cfg, solver.WithLogger(logger))
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "may diverge")
	require.Contains(t, buf.String(), "Coloring complete")
	require.Contains(t, buf.String(), "state=MaxIterationsReached")

	buf.Reset()
	cfg.Relaxation = 1
	_, err = solver.Solve(context.Background(), illConditioned(t), nil, cfg, solver.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "may diverge")
}

func TestState_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Converged", solver.Converged.String())
	require.Equal(t, "Unknown", solver.State(9).String())
	require.False(t, solver.Running.Terminal())
	require.True(t, solver.Diverged.Terminal())
}
