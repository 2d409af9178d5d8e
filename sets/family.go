package sets

import (
	"strings"
)

// Family is an insertion-ordered set of Sets. Two member Sets are
// considered the same if they hold the same elements, regardless of
// the order those elements were added in.
type Family[K comparable] struct {
	sets    []*Set[K]
	buckets map[uint64][]int
}

func NewFamily[K comparable](sets ...*Set[K]) *Family[K] {
	f := &Family[K]{
		sets:    make([]*Set[K], 0, len(sets)),
		buckets: make(map[uint64][]int, len(sets)),
	}
	for _, s := range sets {
		f.Add(s)
	}

	return f
}

// Add includes s in the Family unless an equal Set is already present.
// The Family keeps a reference to s; callers must not modify it afterwards.
func (f *Family[K]) Add(s *Set[K]) bool {
	h := s.Hash()
	for _, i := range f.buckets[h] {
		if f.sets[i].Equal(s) {
			return false
		}
	}

	f.buckets[h] = append(f.buckets[h], len(f.sets))
	f.sets = append(f.sets, s)
	return true
}

// Contains returns whether a Set equal to s is in the Family.
func (f *Family[K]) Contains(s *Set[K]) bool {
	for _, i := range f.buckets[s.Hash()] {
		if f.sets[i].Equal(s) {
			return true
		}
	}

	return false
}

// Len gets the number of distinct Sets in the Family.
func (f *Family[K]) Len() int {
	return len(f.sets)
}

// Sets returns the member Sets in insertion order.
func (f *Family[K]) Sets() []*Set[K] {
	result := make([]*Set[K], len(f.sets))
	copy(result, f.sets)
	return result
}

func (f *Family[K]) Iter(cb func(s *Set[K])) {
	for _, s := range f.sets {
		cb(s)
	}
}

// Equal reports whether both Families hold the same Sets, in any order.
func (f *Family[K]) Equal(other *Family[K]) bool {
	if f.Len() != other.Len() {
		return false
	}

	for _, s := range f.sets {
		if !other.Contains(s) {
			return false
		}
	}

	return true
}

// String implements Stringer.
func (f *Family[K]) String() string {
	result := make([]string, len(f.sets))
	for i, s := range f.sets {
		result[i] = s.String()
	}

	return "{" + strings.Join(result, ", ") + "}"
}
