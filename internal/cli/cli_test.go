package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/internal/config"
	"github.com/katalvlaran/mcgs/solver"
)

func TestParse(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	empty := t.TempDir()

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"-h"}, &out, empty)
		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, cfg)
	})

	t.Run("no input prints usage", func(t *testing.T) {
		var out bytes.Buffer
		_, exit, err := Parse(nil, &out, empty)
		require.NoError(t, err)
		require.True(t, exit)
		require.Contains(t, out.String(), "Generator specs")
	})

	t.Run("generator with flags", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{
			"-gen", "grid:8x8", "-relaxation", "0.9", "-strategy", "library",
			"-tolerance", "0", "-max-iterations", "50", "-log-level", "DEBUG",
		}, &out, empty)
		require.NoError(t, err)
		require.False(t, exit)
		require.Equal(t, "grid:8x8", cfg.GenSpec)
		require.Equal(t, 0.9, cfg.Solver.Relaxation)
		require.Equal(t, coloring.StrategyLibrary, cfg.Solver.Strategy)
		require.Equal(t, 0.0, cfg.Solver.Tolerance)
		require.Equal(t, 50, cfg.Solver.MaxIterations)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("positional matrix", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{"system.mtx"}, &out, empty)
		require.NoError(t, err)
		require.Equal(t, "system.mtx", cfg.MatrixPath)
		require.Equal(t, solver.DefaultConfig(), cfg.Solver)
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := [][]string{
			{"-gen", "path:5", "-strategy", "dsatur"},
			{"-gen", "path:5", "-log-format", "xml"},
			{"-gen", "path:5", "-log-level", "trace"},
			{"-gen", "path:5", "-relaxation", "3"},
			{"-gen", "path:5", "m.mtx"},
			{"-gen", "path:5", "-zero-rhs", "-rhs", "b.mtx"},
			{"-list-runs", "3"},
			{"-no-such-flag"},
		}
		for _, args := range cases {
			var out bytes.Buffer
			_, _, err := Parse(args, &out, empty)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr, "%v", args)
			require.Equal(t, 2, exitErr.Code)
		}
	})
}

func TestParse_ConfigFileThenFlags(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mcgs.yaml"), []byte(`
relaxationFactor: 0.5
randomSeed: 9
logFormat: json
historyPath: runs.db
`), 0o644))

	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-gen", "path:5", "-seed", "3"}, &out, dir)
	require.NoError(t, err)
	require.Equal(t, 0.5, cfg.Solver.Relaxation)
	require.Equal(t, int64(3), cfg.Solver.Seed)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "runs.db", cfg.HistoryPath)

	hclPath := filepath.Join(t.TempDir(), "other.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte("coloringStrategy = \"conflictDetectRecolor\"\n"), 0o644))
	cfg, _, err = Parse([]string{"-config", hclPath, "-gen", "path:5"}, &out, dir)
	require.NoError(t, err)
	require.Equal(t, coloring.StrategyConflictRecolor, cfg.Solver.Strategy)
	require.Equal(t, solver.DefaultRelaxation, cfg.Solver.Relaxation)
}
