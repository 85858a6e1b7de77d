package main

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/forestrie/go-eytzinger/eytzmap"
)

const (
	// trimCount trials are dropped from each end of the sorted trials
	trimCount = 2
	querySeed = 34862
)

// sink keeps measured results observable so the work is not optimized away.
var sink uint64

type number interface {
	~int | ~int64 | ~uint64 | ~float64
}

// trimmedMean sorts xs in place and averages it without the trimCount
// smallest and largest values. Too few values to trim are averaged as is.
func trimmedMean[T number](xs []T) T {
	if len(xs) == 0 {
		return 0
	}
	slices.Sort(xs)
	if len(xs) > 2*trimCount {
		xs = xs[trimCount : len(xs)-trimCount]
	}
	var sum T
	for _, x := range xs {
		sum += x
	}
	return sum / T(len(xs))
}

// sizes returns lo, then each size grown by a step that is itself scaled by
// growth after every use, up to and including hi.
func sizes(lo, hi, step int, growth float64) []int {
	var out []int
	for n, dn := lo, step; n <= hi; n, dn = n+dn, int(float64(dn)*growth) {
		out = append(out, n)
		if dn <= 0 {
			break
		}
	}
	return out
}

type meter struct {
	trials    int
	trialTime time.Duration
	now       func() time.Time
}

// measure runs f repeatedly for each trial until the trial time has elapsed
// and returns the trimmed mean time of one run.
func (m meter) measure(f func() uint64) time.Duration {
	trials := make([]time.Duration, m.trials)
	for i := range trials {
		runs := 0
		start := m.now()
		elapsed := time.Duration(0)
		for ; elapsed < m.trialTime; elapsed = m.now().Sub(start) {
			sink += f()
			runs++
		}
		trials[i] = elapsed / time.Duration(max(runs, 1))
	}
	return trimmedMean(trials)
}

// perElement converts a duration for n elements to microseconds per element.
func perElement(d time.Duration, n int) float64 {
	return float64(d.Nanoseconds()) / float64(n) / 1e3
}

func querySource(n int) func() int {
	rng := rand.New(rand.NewPCG(querySeed, uint64(n)))
	return func() int { return rng.IntN(n) }
}

func lookup(c container, n int) uint64 {
	next := querySource(n)
	var sum uint64
	for range n {
		sum += uint64(c.Count(next()))
	}
	return sum
}

func lookupAndFetch(c container, n int) uint64 {
	next := querySource(n)
	var sum uint64
	for range n {
		sum += uint64(c.At(next()))
	}
	return sum
}

func testEntries(n int) []eytzmap.Entry[int, int] {
	entries := make([]eytzmap.Entry[int, int], n)
	for i := range entries {
		entries[i] = eytzmap.Entry[int, int]{Key: i, Value: i}
	}
	return entries
}
