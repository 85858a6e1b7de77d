package eytztesting

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/forestrie/go-eytzinger/eytzmap"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	ErrFixtureKeyKind    = errors.New("fixture keys must be int or string")
	ErrFixtureDuplicates = errors.New("fixture duplicates must be first or last")
)

// Pair is a key/value entry as written in a fixture. Keys are parsed according
// to Fixture.Keys, values are always strings.
type Pair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Bound is an expected lower/upper bound for a query. A nil key expects the
// end position.
type Bound struct {
	Query string  `yaml:"query"`
	Lower *string `yaml:"lower"`
	Upper *string `yaml:"upper"`
}

// Fixture describes one build and the answers the built map must give.
type Fixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Keys is "int" or "string"
	Keys string `yaml:"keys"`
	// Duplicates is "first" (the default) or "last"
	Duplicates string `yaml:"duplicates"`

	Input  []Pair   `yaml:"input"`
	Expect []Pair   `yaml:"expect"`
	Absent []string `yaml:"absent"`
	Bounds []Bound  `yaml:"bounds"`

	path string
}

// LoadFixture reads a single YAML fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, err
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path
	if f.Name == "" {
		f.Name = filepath.Base(path)
	}
	if _, err := f.Policy(); err != nil {
		return Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	if f.Keys != "int" && f.Keys != "string" {
		return Fixture{}, fmt.Errorf("%s: %w, got %q", path, ErrFixtureKeyKind, f.Keys)
	}
	return f, nil
}

// LoadFixtures reads every *.yaml file in dir, ordered by file name.
func LoadFixtures(dir string) ([]Fixture, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	fixtures := make([]Fixture, 0, len(paths))
	for _, path := range paths {
		f, err := LoadFixture(path)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func (f Fixture) Policy() (eytzmap.DuplicatePolicy, error) {
	switch f.Duplicates {
	case "", "first":
		return eytzmap.KeepFirst, nil
	case "last":
		return eytzmap.KeepLast, nil
	}
	return eytzmap.KeepFirst, fmt.Errorf("%w, got %q", ErrFixtureDuplicates, f.Duplicates)
}

// Run builds the fixture input and checks every expectation it declares, and
// the general properties against the oracle.
func (f Fixture) Run(tc TestContext) {
	tc.T.Helper()
	switch f.Keys {
	case "int":
		runTyped(tc, f, strconv.Atoi)
	case "string":
		runTyped(tc, f, func(s string) (string, error) { return s, nil })
	}
}

func runTyped[K cmp.Ordered](tc TestContext, f Fixture, parse func(string) (K, error)) {
	t := tc.T
	t.Helper()

	policy, err := f.Policy()
	require.NoError(t, err)

	parsePairs := func(pairs []Pair) []eytzmap.Entry[K, string] {
		entries := make([]eytzmap.Entry[K, string], 0, len(pairs))
		for _, p := range pairs {
			k, err := parse(p.Key)
			require.NoError(t, err, "%s: key %q", f.Name, p.Key)
			entries = append(entries, eytzmap.Entry[K, string]{Key: k, Value: p.Value})
		}
		return entries
	}
	parseKeys := func(keys []string) []K {
		out := make([]K, 0, len(keys))
		for _, s := range keys {
			k, err := parse(s)
			require.NoError(t, err, "%s: key %q", f.Name, s)
			out = append(out, k)
		}
		return out
	}

	input := parsePairs(f.Input)
	m := eytzmap.New(input, eytzmap.WithDuplicates(policy), eytzmap.WithLogger(tc.Log))
	tc.Log.Infof("fixture %s: %d inputs, %d entries", f.Name, len(input), m.Len())

	if f.Expect != nil {
		require.Equal(t, parsePairs(f.Expect), m.Entries(), f.Name)
	}

	absent := parseKeys(f.Absent)
	for _, q := range absent {
		require.False(t, m.Contains(q), "%s: %v should be absent", f.Name, q)
	}

	probes := slices.Clone(absent)
	for _, b := range f.Bounds {
		q, err := parse(b.Query)
		require.NoError(t, err)
		probes = append(probes, q)
		checkBound(t, f.Name, "lower", m.LowerBound(q), b.Lower, parse)
		checkBound(t, f.Name, "upper", m.UpperBound(q), b.Upper, parse)
	}
	for _, e := range input {
		probes = append(probes, e.Key)
	}

	CheckProperties(t, m, input, policy, probes)
}

func checkBound[K cmp.Ordered](
	t *testing.T, name, which string, it eytzmap.Iterator[K, string], want *string, parse func(string) (K, error),
) {
	t.Helper()
	if want == nil {
		require.False(t, it.Valid(), "%s: %s bound should be the end", name, which)
		return
	}
	k, err := parse(*want)
	require.NoError(t, err)
	require.True(t, it.Valid(), "%s: %s bound should be %v", name, which, k)
	require.Equal(t, k, it.Key(), "%s: %s bound", name, which)
}
