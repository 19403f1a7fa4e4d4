// Package pkg provides generic utilities for suitegate.
package pkg

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of distinct comparable values.
type Set[T cmp.Ordered] interface {
	Len() int
	Contains(item T) bool
	Add(item T) bool
	Difference(other Set[T]) Set[T]
	Intersect(other Set[T]) Set[T]
	Union(other Set[T]) Set[T]
	Sorted() []T
}

type setImpl[T cmp.Ordered] struct {
	items map[T]struct{}
}

// NewSet creates a set from items. Duplicates collapse silently; use
// Duplicates beforehand when they must be rejected.
func NewSet[T cmp.Ordered](items ...T) Set[T] {
	s := &setImpl[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}

	return s
}

// Duplicates returns, sorted, every value that occurs more than once in items.
func Duplicates[T cmp.Ordered](items []T) []T {
	seen := make(map[T]int, len(items))
	for _, item := range items {
		seen[item]++
	}

	dups := make([]T, 0)

	for item, count := range seen {
		if count > 1 {
			dups = append(dups, item)
		}
	}

	slices.Sort(dups)

	return dups
}

// Len implements Set.
func (s *setImpl[T]) Len() int {
	return len(s.items)
}

// Contains implements Set.
func (s *setImpl[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Add implements Set. It reports whether item was newly added.
func (s *setImpl[T]) Add(item T) bool {
	if s.Contains(item) {
		return false
	}

	s.items[item] = struct{}{}

	return true
}

// Difference implements Set: items in s that are not in other.
func (s *setImpl[T]) Difference(other Set[T]) Set[T] {
	out := &setImpl[T]{items: make(map[T]struct{})}

	for item := range s.items {
		if !other.Contains(item) {
			out.items[item] = struct{}{}
		}
	}

	return out
}

// Intersect implements Set.
func (s *setImpl[T]) Intersect(other Set[T]) Set[T] {
	out := &setImpl[T]{items: make(map[T]struct{})}

	for item := range s.items {
		if other.Contains(item) {
			out.items[item] = struct{}{}
		}
	}

	return out
}

// Union implements Set.
func (s *setImpl[T]) Union(other Set[T]) Set[T] {
	out := &setImpl[T]{items: make(map[T]struct{}, len(s.items)+other.Len())}

	for item := range s.items {
		out.items[item] = struct{}{}
	}

	for _, item := range other.Sorted() {
		out.items[item] = struct{}{}
	}

	return out
}

// Sorted implements Set. The result is never nil.
func (s *setImpl[T]) Sorted() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}

	slices.Sort(out)

	return out
}
