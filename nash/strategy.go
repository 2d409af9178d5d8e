package nash

import (
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"

	"github.com/dmonti/NashFinder/sets"
)

var seed = maphash.MakeSeed()

// Strategy is a mixed strategy: the probability a player assigns to each
// of its actions. Actions that were never added have probability zero and
// are not stored. Iteration follows insertion order.
type Strategy[A comparable] struct {
	probabilities map[A]float64
	actions       []A
}

func NewStrategy[A comparable]() *Strategy[A] {
	return &Strategy[A]{
		probabilities: make(map[A]float64),
	}
}

// Add sets the probability of action. Re-adding an action keeps its
// original position.
func (s *Strategy[A]) Add(action A, probability float64) {
	if _, ok := s.probabilities[action]; !ok {
		s.actions = append(s.actions, action)
	}

	s.probabilities[action] = probability
}

// Probability returns the probability stored for action, if any.
func (s *Strategy[A]) Probability(action A) (float64, bool) {
	p, ok := s.probabilities[action]
	return p, ok
}

// Actions returns the stored actions in insertion order.
func (s *Strategy[A]) Actions() []A {
	result := make([]A, len(s.actions))
	copy(result, s.actions)
	return result
}

func (s *Strategy[A]) Len() int {
	return len(s.actions)
}

// Support returns the actions played with non-zero probability.
func (s *Strategy[A]) Support() *sets.Set[A] {
	result := sets.New[A]()
	for _, action := range s.actions {
		if s.probabilities[action] > 0 {
			result.Add(action)
		}
	}

	return result
}

// Probabilities returns the probability of each of the given actions,
// zero for those not stored.
func (s *Strategy[A]) Probabilities(actions []A) []float32 {
	result := make([]float32, len(actions))
	for i, action := range actions {
		result[i] = float32(s.probabilities[action])
	}

	return result
}

// Equal reports whether both strategies assign the same probabilities
// to the same actions. Insertion order is ignored.
func (s *Strategy[A]) Equal(other *Strategy[A]) bool {
	if s == nil || other == nil {
		return s == other
	}

	if len(s.probabilities) != len(other.probabilities) {
		return false
	}

	for action, p := range s.probabilities {
		if q, ok := other.probabilities[action]; !ok || q != p {
			return false
		}
	}

	return true
}

// Hash returns a hash that does not depend on insertion order.
// Equal strategies have equal hashes.
func (s *Strategy[A]) Hash() uint64 {
	if s == nil {
		return 0
	}

	var h uint64
	for action, p := range s.probabilities {
		h += maphash.Comparable(seed, strategyEntry[A]{action, p})
	}

	return h
}

// String implements Stringer.
func (s *Strategy[A]) String() string {
	if s == nil {
		return "<nil>"
	}

	result := make([]string, len(s.actions))
	for i, action := range s.actions {
		result[i] = fmt.Sprintf("%v: %s", action, formatNumber(s.probabilities[action]))
	}

	return "{" + strings.Join(result, ", ") + "}"
}

type strategyEntry[A comparable] struct {
	action      A
	probability float64
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', RoundingScale, 64)
}
