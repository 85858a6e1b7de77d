// Command eytzbench compares lookup, fetch, build and memory costs of
// eytzmap.Map against the Go map, a sorted slice and two ordered trees.
//
// Results are written to stdout as ';' separated rows, one per container
// size, suitable for pasting into a spreadsheet.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "eytzbench: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger.New(cfg.logLevel)
	defer logger.OnExit()

	codec, err := newReportCodec()
	if err != nil {
		return err
	}

	if cfg.child != "" {
		c, err := candidateByID(cfg.child)
		if err != nil {
			return err
		}
		return runChild(codec, c, cfg.n, stdout)
	}

	if cfg.noColor {
		color.NoColor = true
	}
	runID, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	b := &bench{
		cfg:   cfg,
		log:   logger.Sugar.WithServiceName("eytzbench"),
		runID: runID,
		meter: meter{trials: cfg.trials, trialTime: cfg.trialTime, now: time.Now},
		out:   newReportWriter(stdout),
	}
	if slices.Contains(cfg.suites(), suiteMemory) {
		if b.child, err = execChild(codec); err != nil {
			return err
		}
	}
	return b.run(ctx)
}
