package main

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/forestrie/go-eytzinger/eytzmap"
	"github.com/google/btree"
)

// container is the read surface every candidate offers the benchmark: a
// membership count and a fetch of a key known to be present.
type container interface {
	Count(k int) int
	At(k int) int
}

type candidate struct {
	// id selects the candidate in child mode
	id string
	// name is the report column header
	name  string
	build func(entries []eytzmap.Entry[int, int]) container
}

var candidates = []candidate{
	{id: "map", name: "map[int]int", build: newGoMap},
	{id: "slice", name: "sorted slice", build: newSortedSlice},
	{id: "btree", name: "btree.BTreeG", build: newBTree},
	{id: "treemap", name: "treemap.Map", build: newTreeMap},
	{id: "eytzmap", name: "eytzmap.Map[int,int]", build: newEytzMap},
}

func candidateByID(id string) (candidate, error) {
	for _, c := range candidates {
		if c.id == id {
			return c, nil
		}
	}
	return candidate{}, fmt.Errorf("%w: %q", ErrUnknownCandidate, id)
}

func candidateNames() []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}
	return names
}

type goMap map[int]int

func newGoMap(entries []eytzmap.Entry[int, int]) container {
	m := make(goMap, len(entries))
	for _, e := range entries {
		if _, ok := m[e.Key]; !ok {
			m[e.Key] = e.Value
		}
	}
	return m
}

func (m goMap) Count(k int) int {
	if _, ok := m[k]; ok {
		return 1
	}
	return 0
}

func (m goMap) At(k int) int {
	v, ok := m[k]
	if !ok {
		panic(fmt.Errorf("%w: %d", eytzmap.ErrKeyNotFound, k))
	}
	return v
}

// sortedSlice is the flat sorted array baseline, searched by bisection.
type sortedSlice struct {
	keys   []int
	values []int
}

func newSortedSlice(entries []eytzmap.Entry[int, int]) container {
	sorted := make([]eytzmap.Entry[int, int], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	s := &sortedSlice{
		keys:   make([]int, 0, len(sorted)),
		values: make([]int, 0, len(sorted)),
	}
	for i, e := range sorted {
		if i > 0 && sorted[i-1].Key == e.Key {
			continue
		}
		s.keys = append(s.keys, e.Key)
		s.values = append(s.values, e.Value)
	}
	return s
}

func (s *sortedSlice) search(k int) int {
	return sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= k })
}

func (s *sortedSlice) Count(k int) int {
	i := s.search(k)
	if i < len(s.keys) && s.keys[i] == k {
		return 1
	}
	return 0
}

func (s *sortedSlice) At(k int) int {
	i := s.search(k)
	if i == len(s.keys) || s.keys[i] != k {
		panic(fmt.Errorf("%w: %d", eytzmap.ErrKeyNotFound, k))
	}
	return s.values[i]
}

const btreeDegree = 32

type bTree struct {
	t *btree.BTreeG[eytzmap.Entry[int, int]]
}

func newBTree(entries []eytzmap.Entry[int, int]) container {
	t := btree.NewG(btreeDegree, func(a, b eytzmap.Entry[int, int]) bool { return a.Key < b.Key })
	for _, e := range entries {
		if !t.Has(e) {
			t.ReplaceOrInsert(e)
		}
	}
	return bTree{t: t}
}

func (b bTree) Count(k int) int {
	if b.t.Has(eytzmap.Entry[int, int]{Key: k}) {
		return 1
	}
	return 0
}

func (b bTree) At(k int) int {
	e, ok := b.t.Get(eytzmap.Entry[int, int]{Key: k})
	if !ok {
		panic(fmt.Errorf("%w: %d", eytzmap.ErrKeyNotFound, k))
	}
	return e.Value
}

// treeMap is a red-black tree, the node based ordered map baseline.
type treeMap struct {
	m *treemap.Map
}

func newTreeMap(entries []eytzmap.Entry[int, int]) container {
	m := treemap.NewWithIntComparator()
	for _, e := range entries {
		if _, ok := m.Get(e.Key); !ok {
			m.Put(e.Key, e.Value)
		}
	}
	return treeMap{m: m}
}

func (t treeMap) Count(k int) int {
	if _, ok := t.m.Get(k); ok {
		return 1
	}
	return 0
}

func (t treeMap) At(k int) int {
	v, ok := t.m.Get(k)
	if !ok {
		panic(fmt.Errorf("%w: %d", eytzmap.ErrKeyNotFound, k))
	}
	return v.(int)
}

type eytzMap struct {
	m *eytzmap.Map[int, int]
}

func newEytzMap(entries []eytzmap.Entry[int, int]) container {
	return eytzMap{m: eytzmap.New(entries)}
}

func (e eytzMap) Count(k int) int { return e.m.Count(k) }
func (e eytzMap) At(k int) int    { return e.m.MustAt(k) }
