// Package collections provides small container types shared by aggregates.
package collections

import "slices"

// OrderedSet holds unique values in the order they were first added.
// The zero value is ready to use.
type OrderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewOrderedSet builds a set from values, dropping duplicates.
//
// Example:
//
//	NewOrderedSet("b", "a", "b").Items()
//	// Returns: []string{"b", "a"}
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Remove deletes v and reports whether it was present. Order of the remaining
// values is preserved.
func (s *OrderedSet[T]) Remove(v T) bool {
	if _, ok := s.index[v]; !ok {
		return false
	}
	delete(s.index, v)
	s.items = slices.DeleteFunc(s.items, func(item T) bool { return item == v })
	return true
}

func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the values in insertion order.
func (s *OrderedSet[T]) Items() []T {
	return slices.Clone(s.items)
}

// Dedupe removes duplicates from values. Order is preserved.
func Dedupe[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}
	return NewOrderedSet(values...).Items()
}
