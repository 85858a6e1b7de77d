package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"time"
)

const (
	suiteLookup = "lookup"
	suiteFetch  = "fetch"
	suiteBuild  = "build"
	suiteMemory = "memory"
	suiteAll    = "all"
)

var suiteOrder = []string{suiteLookup, suiteFetch, suiteBuild, suiteMemory}

type config struct {
	suite     string
	min       int
	max       int
	step      int
	growth    float64
	trials    int
	trialTime time.Duration
	logLevel  string
	noColor   bool

	// child mode, set only when the benchmark re-executes itself
	child string
	n     int
}

func parseConfig(args []string, errOut io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("eytzbench", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&cfg.suite, "suite", suiteAll, "suite to run: lookup, fetch, build, memory or all")
	fs.IntVar(&cfg.min, "min", 1000, "smallest container size")
	fs.IntVar(&cfg.max, "max", 10000000, "largest container size")
	fs.IntVar(&cfg.step, "step", 200, "initial size increment")
	fs.Float64Var(&cfg.growth, "growth", 1.2, "factor applied to the size increment after each size")
	fs.IntVar(&cfg.trials, "trials", 20, "trials per measurement, two are dropped from each end")
	fs.DurationVar(&cfg.trialTime, "trial-time", 200*time.Millisecond, "minimum duration of a timing trial")
	fs.StringVar(&cfg.logLevel, "log-level", "INFO", "logging level")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored headers")
	fs.StringVar(&cfg.child, "child", "", "internal: measure the memory of one candidate and exit")
	fs.IntVar(&cfg.n, "n", 0, "internal: container size for -child")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	if cfg.child != "" {
		if cfg.n < 1 {
			return fmt.Errorf("%w: -n must be positive with -child, got %d", ErrInvalidFlag, cfg.n)
		}
		return nil
	}
	if cfg.suite != suiteAll && !slices.Contains(suiteOrder, cfg.suite) {
		return fmt.Errorf("%w: %q", ErrUnknownSuite, cfg.suite)
	}
	switch {
	case cfg.min < 1:
		return fmt.Errorf("%w: -min must be positive, got %d", ErrInvalidFlag, cfg.min)
	case cfg.max < cfg.min:
		return fmt.Errorf("%w: -max %d is below -min %d", ErrInvalidFlag, cfg.max, cfg.min)
	case cfg.step < 1:
		return fmt.Errorf("%w: -step must be positive, got %d", ErrInvalidFlag, cfg.step)
	case cfg.growth < 1:
		return fmt.Errorf("%w: -growth must be at least 1, got %g", ErrInvalidFlag, cfg.growth)
	case cfg.trials < 1:
		return fmt.Errorf("%w: -trials must be positive, got %d", ErrInvalidFlag, cfg.trials)
	case cfg.trialTime <= 0:
		return fmt.Errorf("%w: -trial-time must be positive, got %v", ErrInvalidFlag, cfg.trialTime)
	}
	return nil
}

func (cfg config) suites() []string {
	if cfg.suite == suiteAll {
		return suiteOrder
	}
	return []string{cfg.suite}
}
