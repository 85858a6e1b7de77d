package eytztesting

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/forestrie/go-eytzinger/eytzmap"
	"github.com/google/uuid"
)

// TestGenerator produces deterministic input sequences for map builds.
type TestGenerator struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

// NewTestGenerator returns a generator whose output depends only on seed.
func NewTestGenerator(seed int64) *TestGenerator {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], uint64(seed))
	src := rand.NewChaCha8(s)
	return &TestGenerator{src: src, rng: rand.New(src)}
}

// IntEntries returns (i, i) for i in [0, n), in order.
func (g *TestGenerator) IntEntries(n int) []eytzmap.Entry[int, int] {
	entries := make([]eytzmap.Entry[int, int], n)
	for i := range n {
		entries[i] = eytzmap.Entry[int, int]{Key: i, Value: i}
	}
	return entries
}

// ShuffledWithDuplicates returns n distinct keys from [0, 2n) plus dups
// repeats of randomly chosen ones, in random order. Each value is the position
// of its entry in the returned slice, so the surviving value identifies which
// occurrence a build retained.
func (g *TestGenerator) ShuffledWithDuplicates(n, dups int) []eytzmap.Entry[int, int] {
	keys := g.rng.Perm(2 * n)[:n]
	entries := make([]eytzmap.Entry[int, int], 0, n+dups)
	for _, k := range keys {
		entries = append(entries, eytzmap.Entry[int, int]{Key: k})
	}
	for range dups {
		if n == 0 {
			break
		}
		entries = append(entries, eytzmap.Entry[int, int]{Key: keys[g.rng.IntN(n)]})
	}
	g.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	for i := range entries {
		entries[i].Value = i
	}
	return entries
}

// StringEntries returns n entries keyed by random uuid strings drawn from the
// generator source, each mapping to its own key.
func (g *TestGenerator) StringEntries(n int) ([]eytzmap.Entry[string, string], error) {
	entries := make([]eytzmap.Entry[string, string], 0, n)
	for range n {
		id, err := uuid.NewRandomFromReader(g.src)
		if err != nil {
			return nil, err
		}
		entries = append(entries, eytzmap.Entry[string, string]{Key: id.String(), Value: id.String()})
	}
	return entries, nil
}

// Probes returns count random integers in [lo, hi).
func (g *TestGenerator) Probes(count, lo, hi int) []int {
	probes := make([]int, count)
	for i := range probes {
		probes[i] = lo + g.rng.IntN(hi-lo)
	}
	return probes
}
