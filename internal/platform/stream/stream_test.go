package stream_test

import (
	"cmp"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/realm-chronicle/internal/platform/stream"
)

func TestMap(t *testing.T) {
	t.Parallel()

	got := slices.Collect(stream.Map(slices.Values([]int{1, 2, 3}), strconv.Itoa))
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }
	got := slices.Collect(stream.Filter(slices.Values([]int{1, 2, 3, 4, 5, 6}), even))
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestFilterMap(t *testing.T) {
	t.Parallel()

	lookup := map[int]string{1: "one", 3: "three"}
	fn := func(k int) (string, bool) {
		v, ok := lookup[k]
		return v, ok
	}

	got := slices.Collect(stream.FilterMap(slices.Values([]int{1, 2, 3, 4}), fn))
	assert.Equal(t, []string{"one", "three"}, got)
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	repeat := func(v int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for range v {
				if !yield(v) {
					return
				}
			}
		}
	}

	got := slices.Collect(stream.FlatMap(slices.Values([]int{1, 0, 2}), repeat))
	assert.Equal(t, []int{1, 2, 2}, got)
}

func TestReduce(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence reports false", func(t *testing.T) {
		t.Parallel()
		_, ok := stream.Reduce(slices.Values([]int(nil)), func(a, b int) int { return a + b })
		assert.False(t, ok)
	})

	t.Run("single element is returned untouched", func(t *testing.T) {
		t.Parallel()
		calls := 0
		got, ok := stream.Reduce(slices.Values([]int{7}), func(a, b int) int {
			calls++
			return a + b
		})
		assert.True(t, ok)
		assert.Equal(t, 7, got)
		assert.Zero(t, calls)
	})

	t.Run("folds left to right", func(t *testing.T) {
		t.Parallel()
		got, ok := stream.Reduce(slices.Values([]string{"a", "b", "c"}), func(a, b string) string { return a + b })
		assert.True(t, ok)
		assert.Equal(t, "abc", got)
	})
}

func TestSortedStableFunc(t *testing.T) {
	t.Parallel()

	in := []string{"ccc", "a", "bb", "d", "ee", "f"}
	byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }

	got := stream.SortedStableFunc(slices.Values(in), byLen)
	assert.Equal(t, []string{"a", "d", "f", "bb", "ee", "ccc"}, got)
	assert.Equal(t, []string{"ccc", "a", "bb", "d", "ee", "f"}, in, "input must not be reordered")
}

func TestToMap_LastWins(t *testing.T) {
	t.Parallel()

	type pair struct {
		k string
		v int
	}
	in := []pair{{"a", 1}, {"b", 2}, {"a", 3}}

	got := stream.ToMap(slices.Values(in),
		func(p pair) string { return p.k },
		func(p pair) int { return p.v },
	)
	assert.Equal(t, map[string]int{"a": 3, "b": 2}, got)
}

func TestDistinctFunc(t *testing.T) {
	t.Parallel()

	got := slices.Collect(stream.DistinctFunc(slices.Values([]int{3, 1, 3, 2, 1}), func(v int) int { return v }))
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestOperators_StopEarly(t *testing.T) {
	t.Parallel()

	pulled := 0
	var src iter.Seq[int] = func(yield func(int) bool) {
		for i := range 100 {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	for v := range stream.Map(stream.Filter(src, func(int) bool { return true }), func(v int) int { return v }) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 3, pulled)
}
