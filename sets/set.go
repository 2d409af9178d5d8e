package sets

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// seed is shared by every Set and Family so that hashes are comparable
// across instances within a process.
var seed = maphash.MakeSeed()

// Set represents a finite set of distinct elements that remembers the
// order in which elements were first added. Iteration always follows
// insertion order, which makes enumerations built on top of it deterministic.
//
// The zero value is not usable; create Sets with New.
type Set[K comparable] struct {
	index map[K]int
	items []K
}

// New creates a Set containing the given items, in order.
// Repeated items are kept once, at their first position.
func New[K comparable](items ...K) *Set[K] {
	s := &Set[K]{
		index: make(map[K]int, len(items)),
		items: make([]K, 0, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add includes item in the Set. It returns false if item was already present.
func (s *Set[K]) Add(item K) bool {
	if _, ok := s.index[item]; ok {
		return false
	}

	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// AddAll adds every item of other to the Set, in other's order.
func (s *Set[K]) AddAll(other *Set[K]) {
	for _, item := range other.items {
		s.Add(item)
	}
}

// Contains returns whether item is in the Set.
func (s *Set[K]) Contains(item K) bool {
	_, ok := s.index[item]
	return ok
}

// Len gets the number of elements in the Set.
func (s *Set[K]) Len() int {
	return len(s.items)
}

// IsEmpty returns whether the Set has no elements.
func (s *Set[K]) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the elements in insertion order.
func (s *Set[K]) Items() []K {
	result := make([]K, len(s.items))
	copy(result, s.items)
	return result
}

func (s *Set[K]) Iter(cb func(item K)) {
	for _, item := range s.items {
		cb(item)
	}
}

// Clone returns an independent copy of the Set.
func (s *Set[K]) Clone() *Set[K] {
	return New(s.items...)
}

// Union returns a new Set with the elements of s followed by those of other.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	result := s.Clone()
	result.AddAll(other)
	return result
}

// IsSubsetOf returns whether every element of s is also in other.
func (s *Set[K]) IsSubsetOf(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}

	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}

	return true
}

// Equal reports whether both Sets hold the same elements.
// Insertion order is ignored.
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.Len() == other.Len() && s.IsSubsetOf(other)
}

// Hash returns a hash of the Set's elements that does not depend on
// insertion order. Equal Sets have equal hashes.
func (s *Set[K]) Hash() uint64 {
	var h uint64
	for _, item := range s.items {
		h += maphash.Comparable(seed, item)
	}

	return h
}

// String implements Stringer.
func (s *Set[K]) String() string {
	result := make([]string, len(s.items))
	for i, item := range s.items {
		result[i] = fmt.Sprint(item)
	}

	return "{" + strings.Join(result, ", ") + "}"
}
