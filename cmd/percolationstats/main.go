// SPDX-License-Identifier: MIT

// Command percolationstats estimates the percolation threshold of an n×n grid
// over a number of Monte Carlo trials.
//
//	percolationstats [-seed S] [-confidence L] [-v] n trials
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/percolation/montecarlo"
)

type options struct {
	n, trials  int
	seed       int64
	seeded     bool
	confidence float64
	verbose    bool
}

var errUsage = errors.New("usage: percolationstats [-seed S] [-confidence L] [-v] n trials")

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err = run(os.Stdout, opts, logger); err != nil {
		logger.Error("percolationstats failed", "err", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("percolationstats", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (default: time based)")
	fs.Float64Var(&opts.confidence, "confidence", 0.95, "two-sided confidence level in (0,1)")
	fs.BoolVar(&opts.verbose, "v", false, "log every trial")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})
	if fs.NArg() != 2 {
		return opts, errUsage
	}

	var err error
	if opts.n, err = strconv.Atoi(fs.Arg(0)); err != nil {
		return opts, fmt.Errorf("%w: n: %v", errUsage, err)
	}
	if opts.trials, err = strconv.Atoi(fs.Arg(1)); err != nil {
		return opts, fmt.Errorf("%w: trials: %v", errUsage, err)
	}
	if !(opts.confidence > 0 && opts.confidence < 1) {
		return opts, fmt.Errorf("%w: confidence %v not in (0,1)", errUsage, opts.confidence)
	}

	return opts, nil
}

func run(w io.Writer, opts options, logger *slog.Logger) error {
	mcOpts := []montecarlo.Option{montecarlo.WithLogger(logger)}
	if opts.seeded {
		mcOpts = append(mcOpts, montecarlo.WithSeed(opts.seed))
	}
	if opts.confidence != 0.95 {
		mcOpts = append(mcOpts, montecarlo.WithConfidenceLevel(opts.confidence))
	}

	s, err := montecarlo.New(opts.n, opts.trials, mcOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "mean                    = %1.10f\n", s.Mean())
	fmt.Fprintf(w, "stddev                  = %1.10f\n", s.StdDev())
	fmt.Fprintf(w, "%s%% confidence interval = %1.10f, %1.10f\n",
		strconv.FormatFloat(s.Level()*100, 'f', -1, 64), s.ConfidenceLo(), s.ConfidenceHi())

	return nil
}
