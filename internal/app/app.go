package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/mcgs/internal/history"
	"github.com/katalvlaran/mcgs/solver"
)

// App encapsulates the application's configuration, output and logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp builds an App that prints results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Run executes one solve (or lists recorded runs).
func (a *App) Run(ctx context.Context) error {
	if a.cfg.ListRuns > 0 {
		return a.listRuns(ctx)
	}

	started := time.Now()
	m, b, err := a.loadSystem()
	if err != nil {
		return err
	}

	rep, err := solver.Solve(ctx, m, b, a.cfg.Solver, solver.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	a.printReport(rep)

	if a.cfg.OutPath != "" {
		if err := writeVectorFile(a.cfg.OutPath, rep.X); err != nil {
			return fmt.Errorf("failed to write solution: %w", err)
		}
		a.logger.Info("Solution written.", "path", a.cfg.OutPath)
	}

	if a.cfg.HistoryPath != "" {
		run := history.NewRun(a.cfg.Source(), m.N(), m.NNZ(), a.cfg.Solver, rep, started)
		if err := a.record(ctx, run); err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "run id:      %s\n", run.ID)
	}

	return nil
}

func (a *App) printReport(rep *solver.Report) {
	fmt.Fprintf(a.outW, "source:      %s\n", a.cfg.Source())
	fmt.Fprintf(a.outW, "state:       %s\n", rep.State)
	fmt.Fprintf(a.outW, "iterations:  %d\n", rep.Iterations)
	fmt.Fprintf(a.outW, "residual:    %.6e (initial %.6e)\n", rep.Residual, rep.InitialResidual)
	fmt.Fprintf(a.outW, "colors:      %d (%s)\n", rep.Colors, rep.Strategy)
	fmt.Fprintf(a.outW, "components:  %d\n", rep.Components)
	fmt.Fprintf(a.outW, "coloring:    %s\n", rep.ColoringTime)
	fmt.Fprintf(a.outW, "sweeps:      %s\n", rep.SweepTime)
}

func (a *App) record(ctx context.Context, run history.Run) error {
	store, err := history.Open(a.cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Record(ctx, run); err != nil {
		return err
	}
	a.logger.Debug("Run recorded.", "id", run.ID, "path", a.cfg.HistoryPath)
	return nil
}

func (a *App) listRuns(ctx context.Context) error {
	store, err := history.Open(a.cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(ctx, a.cfg.ListRuns)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tSOURCE\tN\tCOLORS\tSTATE\tITER\tRESIDUAL")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%d\t%.3e\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Source, r.N, r.Colors, r.State, r.Iterations, r.Residual)
	}
	return tw.Flush()
}
