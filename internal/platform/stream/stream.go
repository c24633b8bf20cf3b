// Package stream provides lazy, generic operators over iter.Seq for
// composing read-only query pipelines:
//
//	names := stream.Map(view.Characters(), character.Character.Name)
//	titled := stream.Filter(view.Characters(), character.Character.IsTitled)
//	longest, ok := stream.Reduce(view.Characters(), pickLonger)
//
// Operators never pull from their source until the returned sequence is
// ranged over, and they stop pulling as soon as the consumer stops.
// Terminal operators (Reduce, SortedStableFunc, ToMap) drain the source.
package stream

import (
	"iter"
	"slices"
)

// Map returns a sequence yielding fn(v) for every v in seq.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter returns a sequence yielding the elements of seq for which keep
// returns true, in their original order.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterMap applies fn to every element and yields the result only when fn
// reports ok. It is the zero-or-one flavour of FlatMap, used for lookups
// that may miss.
func FilterMap[T, R any](seq iter.Seq[T], fn func(T) (R, bool)) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			r, ok := fn(v)
			if ok && !yield(r) {
				return
			}
		}
	}
}

// FlatMap yields every element of every sequence produced by fn, in order.
func FlatMap[T, R any](seq iter.Seq[T], fn func(T) iter.Seq[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			for r := range fn(v) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Reduce folds seq from the left with combine, using the first element as
// the initial accumulator. It returns false when seq is empty.
func Reduce[T any](seq iter.Seq[T], combine func(acc, next T) T) (T, bool) {
	var (
		acc  T
		seen bool
	)
	for v := range seq {
		if !seen {
			acc, seen = v, true
			continue
		}
		acc = combine(acc, v)
	}
	return acc, seen
}

// SortedStableFunc drains seq and returns its elements sorted by cmp.
// Elements that compare equal keep their original relative order.
func SortedStableFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) []T {
	out := slices.Collect(seq)
	slices.SortStableFunc(out, cmp)
	return out
}

// ToMap drains seq into a map. When two elements produce the same key, the
// later element wins.
func ToMap[T any, K comparable, V any](seq iter.Seq[T], key func(T) K, value func(T) V) map[K]V {
	out := make(map[K]V)
	for v := range seq {
		out[key(v)] = value(v)
	}
	return out
}

// DistinctFunc yields the first element seen for each key, dropping later
// elements that map to a key already produced.
func DistinctFunc[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
