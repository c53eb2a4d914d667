package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/internal/app"
	"github.com/katalvlaran/mcgs/internal/config"
	"github.com/katalvlaran/mcgs/solver"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// configDir is searched for mcgs.yaml / mcgs.hcl when neither -config nor
// $MCGS_CONFIG is given.
func Parse(args []string, output io.Writer, configDir string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	fs := flag.NewFlagSet("mcgs", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(output, `
mcgs - multicolor parallel Gauss-Seidel solver.

Usage:
  mcgs [options] [MATRIX.mtx]
  mcgs [options] -gen grid:64x64

Generator specs:
  path:N  grid:RxC  random:N:P  bounded:N:D  complete:N

Options:
`)
		fs.PrintDefaults()
	}

	defaults := solver.DefaultConfig()
	var (
		configFlag    = fs.String("config", "", "Path to a YAML or HCL config file.")
		matrixFlag    = fs.String("matrix", "", "Matrix Market coordinate file.")
		genFlag       = fs.String("gen", "", "Generator spec instead of a matrix file.")
		rhsFlag       = fs.String("rhs", "", "Matrix Market right-hand side vector. Default: A times ones.")
		outFlag       = fs.String("out", "", "Write the solution vector to this file.")
		historyFlag   = fs.String("history", "", "SQLite database recording every run.")
		listRunsFlag  = fs.Int("list-runs", 0, "Print the N most recent recorded runs and exit.")
		logFormatFlag = fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
		logLevelFlag  = fs.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

		maxIterFlag  = fs.Int("max-iterations", defaults.MaxIterations, "Sweep budget.")
		tolFlag      = fs.Float64("tolerance", defaults.Tolerance, "Residual tolerance; 0 runs a fixed number of sweeps.")
		omegaFlag    = fs.Float64("relaxation", defaults.Relaxation, "Relaxation factor in (0,2].")
		strategyFlag = fs.String("strategy", defaults.Strategy.String(), "Coloring strategy: randomizedSequential, conflictDetectRecolor or library.")
		seedFlag     = fs.Int64("seed", defaults.Seed, "Random seed for coloring and generators.")
		workersFlag  = fs.Int("workers", defaults.Workers, "Worker goroutines; 0 uses GOMAXPROCS.")
		roundsFlag   = fs.Int("max-color-rounds", defaults.MaxColorRounds, "Bound on conflict repair rounds.")
		divFlag      = fs.Float64("divergence-factor", defaults.DivergenceFactor, "Residual growth factor treated as divergence.")
		zeroRHSFlag  = fs.Bool("zero-rhs", defaults.ZeroRHS, "Solve with b = 0 (no-b mode); use with relaxation < 1.")
	)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	slog.Debug("Arguments parsed successfully.", "set", len(set))

	matrixPath := *matrixFlag
	if matrixPath == "" && fs.NArg() > 0 {
		matrixPath = fs.Arg(0)
	}
	if matrixPath == "" && *genFlag == "" && *listRunsFlag <= 0 {
		slog.Debug("No matrix provided, printing usage and exiting.")
		fs.Usage()
		return nil, true, nil
	}

	// Config file first, explicit flags on top.
	cfg := defaults
	var file *config.File
	path := *configFlag
	if path == "" {
		path = config.FindConfigPath(configDir)
	}
	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		if err := f.Apply(&cfg); err != nil {
			return nil, false, usageError("%v", err)
		}
		file = f
		slog.Debug("Config file loaded.", "path", path)
	}

	if set["max-iterations"] {
		cfg.MaxIterations = *maxIterFlag
	}
	if set["tolerance"] {
		cfg.Tolerance = *tolFlag
	}
	if set["relaxation"] {
		cfg.Relaxation = *omegaFlag
	}
	if set["strategy"] {
		s, err := coloring.ParseStrategy(*strategyFlag)
		if err != nil {
			return nil, false, usageError("invalid strategy: %q", *strategyFlag)
		}
		cfg.Strategy = s
	}
	if set["seed"] {
		cfg.Seed = *seedFlag
	}
	if set["workers"] {
		cfg.Workers = *workersFlag
	}
	if set["max-color-rounds"] {
		cfg.MaxColorRounds = *roundsFlag
	}
	if set["divergence-factor"] {
		cfg.DivergenceFactor = *divFlag
	}
	if set["zero-rhs"] {
		cfg.ZeroRHS = *zeroRHSFlag
	}

	logFormat := pick(set["log-format"], *logFormatFlag, file, func(f *config.File) *string { return f.LogFormat })
	logLevel := pick(set["log-level"], *logLevelFlag, file, func(f *config.File) *string { return f.LogLevel })
	historyPath := pick(set["history"], *historyFlag, file, func(f *config.File) *string { return f.HistoryPath })

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	appCfg, err := app.NewConfig(app.Config{
		MatrixPath:  matrixPath,
		GenSpec:     *genFlag,
		RHSPath:     *rhsFlag,
		OutPath:     *outFlag,
		HistoryPath: historyPath,
		ListRuns:    *listRunsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Solver:      cfg,
	})
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.")
	return appCfg, false, nil
}

// pick prefers an explicit flag, then the config file, then the flag default.
func pick(explicit bool, flagVal string, file *config.File, get func(*config.File) *string) string {
	if explicit || file == nil {
		return flagVal
	}
	if v := get(file); v != nil {
		return *v
	}
	return flagVal
}
