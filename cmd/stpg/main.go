// The stpg command reads a PACE 2018 Steiner Tree instance in .gr format
// (from stdin, or a path given as the single positional argument) and
// writes an approximate solution to stdout: a "VALUE w" line followed by
// one line per original edge in the solution tree.
//
// Explicitly out of the core per spec.md §1: kept to stdlib flag and
// os/signal, matching the corpus's total absence of a CLI framework (see
// DESIGN.md's CLI justification).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goderik01/PACE2018/pace"
	"github.com/goderik01/PACE2018/solve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stpg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	deadline := fs.Duration("deadline", 0, "wall-clock budget for the whole run (0 = no deadline, rely on signals only)")
	localFraction := fs.Float64("local-search-fraction", 0, "fraction of the deadline given to local search after star contraction (0 = package default)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "stpg:", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	g, err := pace.NewReader(in).Read()
	if err != nil {
		fmt.Fprintln(stderr, "stpg: reading instance:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *deadline)
		defer cancel()
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	opts := []solve.Option{solve.WithLogger(logger)}
	if *localFraction > 0 {
		opts = append(opts, solve.WithLocalSearchFraction(*localFraction))
	}

	start := time.Now()
	result := solve.Run(ctx, g, opts...)
	logger.Info("solve finished", "elapsed", time.Since(start), "weight", result.SolutionWeight())

	if err := pace.WriteSolution(stdout, result); err != nil {
		fmt.Fprintln(stderr, "stpg: writing solution:", err)
		return 1
	}
	return 0
}
