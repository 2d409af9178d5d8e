// Package sets implements insertion-ordered sets and the combinatorial
// enumerations (power sets, cartesian products) used to build candidate
// supports for equilibrium computation.
package sets

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrTooFewSets is returned when a cartesian product is requested over
// fewer than two sets.
var ErrTooFewSets = errors.New("cartesian product needs at least two sets")

// PowerSet returns every subset of set, including the empty set and set
// itself. The result always has exactly 2^n members for an n-element set.
//
// Subsets are built by fixing the first element and combining it with every
// subset of the remaining elements, so each subset containing the head is
// emitted right before the same subset without it.
//
// The result grows exponentially; callers must keep set small.
func PowerSet[K comparable](set *Set[K]) *Family[K] {
	// Fold from the last element to the first, which yields the same order
	// as fixing the head and recursing on the tail.
	result := NewFamily(New[K]())
	for i := set.Len() - 1; i >= 0; i-- {
		head := set.items[i]
		next := &Family[K]{
			sets:    make([]*Set[K], 0, 2*result.Len()),
			buckets: make(map[uint64][]int, 2*result.Len()),
		}
		for _, rest := range result.sets {
			withHead := New(head)
			withHead.AddAll(rest)
			next.Add(withHead)
			next.Add(rest)
		}
		result = next
	}

	glog.V(2).Infof("Power set of %d elements has %d subsets", set.Len(), result.Len())
	return result
}

// CartesianProduct returns every combination formed by choosing one element
// from each of the given sets.
//
// Combinations are represented as Sets, not tuples: only which elements were
// chosen matters, not the position they were chosen from. If two input sets
// share an element, combinations that pick it twice collapse into a smaller
// Set and combinations differing only by position are merged, so the result
// may have fewer members than the product of the input sizes. Callers that
// need positional identity must tag their elements per position.
func CartesianProduct[K comparable](sets []*Set[K]) (*Family[K], error) {
	if len(sets) < 2 {
		return nil, errors.Wrapf(ErrTooFewSets, "got %d", len(sets))
	}

	result := NewFamily(New[K]())
	for i := len(sets) - 1; i >= 0; i-- {
		next := NewFamily[K]()
		for _, element := range sets[i].items {
			for _, partial := range result.sets {
				combination := partial.Clone()
				combination.Add(element)
				next.Add(combination)
			}
		}
		result = next
	}

	glog.V(2).Infof("Cartesian product of %d sets has %d combinations", len(sets), result.Len())
	return result, nil
}

// CartesianSquare returns the cartesian product of set with itself.
func CartesianSquare[K comparable](set *Set[K]) *Family[K] {
	result, err := CartesianProduct([]*Set[K]{set, set})
	if err != nil {
		// Two sets are always supplied.
		panic(err)
	}

	return result
}
