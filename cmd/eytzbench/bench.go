package main

import (
	"context"
	"fmt"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type bench struct {
	cfg   config
	log   logger.Logger
	runID uuid.UUID
	meter meter
	out   *reportWriter
	child childRunner
}

func (b *bench) run(ctx context.Context) error {
	ns := sizes(b.cfg.min, b.cfg.max, b.cfg.step, b.cfg.growth)
	b.log.Infof("run %s: suites %v, %d sizes from %d to %d", b.runID, b.cfg.suites(), len(ns), ns[0], ns[len(ns)-1])

	for _, suite := range b.cfg.suites() {
		start := time.Now()
		var err error
		switch suite {
		case suiteLookup:
			err = b.timed(ctx, "lookup times, us per element", ns, func(c container, n int) func() uint64 {
				return func() uint64 { return lookup(c, n) }
			})
		case suiteFetch:
			err = b.timed(ctx, "lookup and fetch times, us per element", ns, func(c container, n int) func() uint64 {
				return func() uint64 { return lookupAndFetch(c, n) }
			})
		case suiteBuild:
			err = b.building(ctx, ns)
		case suiteMemory:
			err = b.memory(ctx, ns)
		}
		if err != nil {
			return fmt.Errorf("suite %s: %w", suite, err)
		}
		b.log.Infof("run %s: suite %s done in %v", b.runID, suite, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// timed measures op against a prebuilt container of every candidate at every
// size.
func (b *bench) timed(ctx context.Context, title string, ns []int, op func(c container, n int) func() uint64) error {
	b.out.header(title, candidateNames())
	for _, n := range ns {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries := testEntries(n)
		values := make([]float64, 0, len(candidates))
		for _, cand := range candidates {
			built := cand.build(entries)
			values = append(values, perElement(b.meter.measure(op(built, n)), n))
		}
		b.out.row(n, values)
	}
	return b.out.end()
}

func (b *bench) building(ctx context.Context, ns []int) error {
	b.out.header("build and release times, us per element", candidateNames())
	for _, n := range ns {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries := testEntries(n)
		values := make([]float64, 0, len(candidates))
		for _, cand := range candidates {
			d := b.meter.measure(func() uint64 {
				return uint64(cand.build(entries).Count(n))
			})
			values = append(values, perElement(d, n))
		}
		b.out.row(n, values)
	}
	return b.out.end()
}

func (b *bench) memory(ctx context.Context, ns []int) error {
	b.out.header("heap retained by process, bytes per element", candidateNames())
	for _, n := range ns {
		values := make([]float64, 0, len(candidates))
		for _, cand := range candidates {
			v, err := memoryPerElement(ctx, b.child, cand, n, b.cfg.trials)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		b.out.row(n, values)
	}
	return b.out.end()
}
