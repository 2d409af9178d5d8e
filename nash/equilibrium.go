package nash

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// Equilibrium is a Nash equilibrium of a two-player game: a mixed strategy
// and an expected utility for every player.
//
// An Equilibrium is populated once, either by ExtractFromResult or through
// its setters, and treated as read-only afterwards.
type Equilibrium[P, A comparable] struct {
	strategies map[P]*Strategy[A]
	utilities  map[P]float64
	// Players in the order their strategy was first set.
	players []P
}

// NewEquilibrium creates an empty Equilibrium.
func NewEquilibrium[P, A comparable]() *Equilibrium[P, A] {
	return &Equilibrium[P, A]{
		strategies: make(map[P]*Strategy[A]),
		utilities:  make(map[P]float64),
	}
}

func (e *Equilibrium[P, A]) SetExpectedUtility(player P, utility float64) {
	e.utilities[player] = utility
}

func (e *Equilibrium[P, A]) SetStrategy(player P, strategy *Strategy[A]) {
	if _, ok := e.strategies[player]; !ok {
		e.players = append(e.players, player)
	}

	e.strategies[player] = strategy
}

// ExpectedUtility returns the expected utility of player in this equilibrium.
func (e *Equilibrium[P, A]) ExpectedUtility(player P) (float64, bool) {
	u, ok := e.utilities[player]
	return u, ok
}

// Strategy returns the mixed strategy player follows in this equilibrium.
func (e *Equilibrium[P, A]) Strategy(player P) (*Strategy[A], bool) {
	s, ok := e.strategies[player]
	return s, ok
}

// Players returns the players with a strategy, in insertion order.
func (e *Equilibrium[P, A]) Players() []P {
	result := make([]P, len(e.players))
	copy(result, e.players)
	return result
}

// Equal reports whether both equilibria hold the same strategies and
// utilities for the same players, irrespective of the order in which
// they were set.
func (e *Equilibrium[P, A]) Equal(other *Equilibrium[P, A]) bool {
	if e == nil || other == nil {
		return e == other
	}

	if len(e.strategies) != len(other.strategies) || len(e.utilities) != len(other.utilities) {
		return false
	}

	for player, s := range e.strategies {
		if t, ok := other.strategies[player]; !ok || !s.Equal(t) {
			return false
		}
	}

	for player, u := range e.utilities {
		if v, ok := other.utilities[player]; !ok || u != v {
			return false
		}
	}

	return true
}

// Hash returns a hash consistent with Equal.
func (e *Equilibrium[P, A]) Hash() uint64 {
	if e == nil {
		return 0
	}

	var h uint64
	for player, s := range e.strategies {
		h += maphash.Comparable(seed, playerHash[P]{player, s.Hash()})
	}
	for player, u := range e.utilities {
		h += 31 * maphash.Comparable(seed, playerUtility[P]{player, u})
	}

	return h
}

// String renders one line per player, in the order strategies were set:
//
//	<player>: <utility> <strategy>
func (e *Equilibrium[P, A]) String() string {
	if e == nil {
		return "<nil>"
	}

	lines := make([]string, len(e.players))
	for i, player := range e.players {
		utility := "<nil>"
		if u, ok := e.utilities[player]; ok {
			utility = formatNumber(u)
		}
		lines[i] = fmt.Sprintf("\t%v: %s %v", player, utility, e.strategies[player])
	}

	return strings.Join(lines, "\n")
}

type playerHash[P comparable] struct {
	player P
	hash   uint64
}

type playerUtility[P comparable] struct {
	player  P
	utility float64
}
