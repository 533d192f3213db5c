// SPDX-License-Identifier: MIT

// Command fisheries runs stock-dynamics scenarios described in YAML files.
//
// Usage:
//
//	fisheries run -scenario cod.yaml [-csv cod.csv] [-log-level info]
//	fisheries validate -scenario cod.yaml
//	fisheries batch [-workers n] [-csv-dir out/] a.yaml b.yaml ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/fisheries/params"
	"github.com/katalvlaran/fisheries/simulate"
)

var errUsage = errors.New("usage: fisheries run|validate|batch [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:], stdout)
	case "validate":
		return runValidate(args[1:], stdout)
	case "batch":
		return runBatch(ctx, args[1:], stdout)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s: %w", msg, errUsage)
}

func runRun(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	scenario := fs.String("scenario", "", "scenario YAML file")
	csvPath := fs.String("csv", "", "write the output series to this CSV file")
	level := fs.String("log-level", "info", "log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenario == "" {
		return usageError("run: -scenario is required")
	}
	logger, err := newLogger(os.Stderr, *level)
	if err != nil {
		return err
	}

	sc, err := params.LoadFile(*scenario)
	if err != nil {
		return err
	}
	res, err := simulate.Run(&sc.Record, sc.Config, simulate.WithLogger(logger.With("scenario", sc.Name)))
	if err != nil {
		return err
	}

	printSummary(stdout, sc.Name, res)
	if *csvPath != "" {
		if err := writeCSVFile(*csvPath, res); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", *csvPath)
	}

	return nil
}

func runValidate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	scenario := fs.String("scenario", "", "scenario YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenario == "" {
		return usageError("validate: -scenario is required")
	}

	sc, err := params.LoadFile(*scenario)
	if err != nil {
		return err
	}
	tables, err := params.Normalize(&sc.Record, sc.Config)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: ok (%s, %d classes, %d regions, %d sexes, %d migratory classes)\n",
		sc.Name, sc.Config.PopulationType, len(tables.Classes), len(tables.Regions),
		tables.Sexes, tables.MigratoryClasses())

	return nil
}

func runBatch(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	workers := fs.Int("workers", 0, "parallel runs (0 = GOMAXPROCS)")
	csvDir := fs.String("csv-dir", "", "write one CSV per scenario into this directory")
	level := fs.String("log-level", "warn", "log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageError("batch: at least one scenario file is required")
	}
	logger, err := newLogger(os.Stderr, *level)
	if err != nil {
		return err
	}

	jobs := make([]simulate.Job, 0, fs.NArg())
	for _, path := range fs.Args() {
		sc, err := params.LoadFile(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, simulate.Job{
			Name:    sc.Name,
			Record:  &sc.Record,
			Config:  sc.Config,
			Options: []simulate.Option{simulate.WithLogger(logger.With("scenario", sc.Name))},
		})
	}

	var failed int
	for _, br := range simulate.Batch(ctx, jobs, *workers) {
		if br.Err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: FAILED: %v\n", br.Name, br.Err)
			continue
		}
		printSummary(stdout, br.Name, br.Results)
		if *csvDir != "" {
			base := strings.TrimSuffix(filepath.Base(br.Name), filepath.Ext(br.Name))
			if err := writeCSVFile(filepath.Join(*csvDir, base+".csv"), br.Results); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d runs failed", failed, len(jobs))
	}

	return nil
}

func printSummary(w io.Writer, name string, res *simulate.Results) {
	f := res.Final()
	fmt.Fprintf(w, "%s: %s, %d timesteps, run %s\n", name, res.PopulationType, res.Timesteps(), res.RunID)
	fmt.Fprintf(w, "  final harvest   %s\n", humanize.CommafWithDigits(f.Harvest, 2))
	fmt.Fprintf(w, "  final value     %s\n", humanize.CommafWithDigits(f.Value, 2))
	fmt.Fprintf(w, "  final spawners  %s\n", humanize.CommafWithDigits(f.Spawners, 2))
	fmt.Fprintf(w, "  final abundance %s\n", humanize.CommafWithDigits(res.TotalAbundance(res.Timesteps()-1), 0))
}

// newLogger picks a human-readable handler for terminals and JSON otherwise.
func newLogger(w *os.File, level string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, usageError(fmt.Sprintf("bad -log-level %q", level))
	}
	opts := &slog.HandlerOptions{Level: lv}
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}
