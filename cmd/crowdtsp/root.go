// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowdtsp/config"
	"github.com/katalvlaran/crowdtsp/render"
	"github.com/katalvlaran/crowdtsp/report"
	"github.com/katalvlaran/crowdtsp/solver"
	"github.com/katalvlaran/crowdtsp/tsplib"
)

// errMissingArgument is returned when the coordinate file path is absent.
var errMissingArgument = errors.New("missing path to the .tsp coordinate file")

// flagValues holds raw flag values; only flags the user set override config.
type flagValues struct {
	configPath string
	envFile    string

	seed         int64
	generations  int
	population   int
	mutationRate float64
	crowd        int
	workers      int
	tolerance    float64
	exact        int
	plot         string
	metricsFile  string
	logLevel     string
	logFormat    string
	color        bool
}

// execute runs the command and maps the outcome to an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errMissingArgument) {
			fmt.Fprintf(stderr, "Error: %v\n\n%s", err, cmd.UsageString())
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "crowdtsp [flags] <file.tsp>",
		Short: "Genetic algorithm + wisdom of crowds TSP solver",
		Long: "crowdtsp runs many independent genetic searches (SCX crossover, RSM mutation)\n" +
			"and derives a consensus tour from their best tours by positional voting.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errMissingArgument
			}
			if len(args) > 1 {
				return fmt.Errorf("expected one coordinate file, got %d arguments", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], &fv, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&fv.configPath, "config", "", "YAML configuration file")
	f.StringVar(&fv.envFile, "env-file", "", "dotenv file with CROWDTSP_* variables")
	f.Int64Var(&fv.seed, "seed", 0, "base random seed (0 picks a fresh seed and logs it)")
	f.IntVar(&fv.generations, "generations", 0, "generations per GA run")
	f.IntVar(&fv.population, "population", 0, "population size per GA run (0 = city count)")
	f.Float64Var(&fv.mutationRate, "mutation-rate", 0, "RSM mutation probability")
	f.IntVar(&fv.crowd, "crowd", 0, "number of independent GA runs")
	f.IntVar(&fv.workers, "workers", 0, "concurrent GA runs (0 = GOMAXPROCS)")
	f.Float64Var(&fv.tolerance, "tolerance", 0, "modal distance tolerance (0 = exact equality)")
	f.IntVar(&fv.exact, "exact", 0, "report the exact optimum for instances up to this many cities")
	f.StringVar(&fv.plot, "plot", "", "write the consensus tour image to this path")
	f.StringVar(&fv.metricsFile, "metrics-textfile", "", "write prometheus metrics to this file")
	f.StringVar(&fv.logLevel, "log-level", "", "debug|info|warn|error")
	f.StringVar(&fv.logFormat, "log-format", "", "text|json")
	f.BoolVar(&fv.color, "color", false, "colourise the report")

	return cmd
}

// applyFlags overlays the flags the user set onto cfg.
func applyFlags(cmd *cobra.Command, fv *flagValues, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = fv.seed
	}
	if set("generations") {
		cfg.GA.Generations = fv.generations
	}
	if set("population") {
		cfg.GA.PopulationSize = fv.population
	}
	if set("mutation-rate") {
		cfg.GA.MutationRate = fv.mutationRate
	}
	if set("crowd") {
		cfg.Crowd.Size = fv.crowd
	}
	if set("workers") {
		cfg.Crowd.Workers = fv.workers
	}
	if set("tolerance") {
		cfg.Crowd.Tolerance = fv.tolerance
	}
	if set("exact") {
		cfg.Exact.MaxCities = fv.exact
	}
	if set("plot") {
		cfg.Plot.Path = fv.plot
	}
	if set("metrics-textfile") {
		cfg.Metrics.Textfile = fv.metricsFile
	}
	if set("log-level") {
		cfg.Log.Level = fv.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = fv.logFormat
	}
	if set("color") {
		cfg.Report.Color = fv.color
	}
}

// newLogger builds the stderr logger described by cfg.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func run(cmd *cobra.Command, path string, fv *flagValues, stdout, stderr io.Writer) error {
	cfg, err := config.Load(fv.configPath, fv.envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, fv, &cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Info("picked a fresh seed", "seed", cfg.Seed)
	}

	in, err := tsplib.Read(path)
	if err != nil {
		return err
	}
	table, err := in.Table()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("instance loaded", "path", path, "name", in.Name, "cities", table.N())

	reg := prometheus.NewRegistry()
	metrics, err := solver.NewMetrics(reg)
	if err != nil {
		return err
	}
	with := []solver.SolveOption{solver.WithLogger(logger), solver.WithMetrics(metrics)}
	if cfg.Plot.Path != "" {
		png := render.NewPNG(cfg.Plot.Path)
		png.WidthCm, png.HeightCm = cfg.Plot.WidthCm, cfg.Plot.HeightCm
		if in.Name != "" {
			png.Title = in.Name
		} else {
			png.Title = filepath.Base(path)
		}
		with = append(with, solver.WithRenderer(png))
	}

	res, err := solver.Solve(cmd.Context(), table, cfg.SolverOptions(), with...)
	if err != nil {
		return err
	}

	if err = report.Write(stdout, table, res, report.Options{Color: cfg.Report.Color}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Metrics.Textfile != "" {
		if err = prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.Metrics.Textfile)
	}

	return nil
}
