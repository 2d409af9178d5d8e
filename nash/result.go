// Package nash holds the two-player equilibrium model and the routines
// that turn the flat output of a solved complementarity program into it.
package nash

import (
	"fmt"

	"github.com/dmonti/NashFinder/sets"
)

// UtilityTag identifies the expected utility variable of a player by its
// position in the game's player order.
type UtilityTag int

const (
	FirstPlayerUtility UtilityTag = iota
	SecondPlayerUtility
)

var utilityTagStr = [...]string{
	"FirstPlayerUtility",
	"SecondPlayerUtility",
}

func (t UtilityTag) String() string {
	if t < 0 || int(t) >= len(utilityTagStr) {
		return fmt.Sprintf("UtilityTag(%d)", int(t))
	}

	return utilityTagStr[t]
}

// PlayerAction is the key of the probability variable a solver assigns
// to a player choosing an action.
type PlayerAction[P, A comparable] struct {
	Player P
	Action A
}

func (pa PlayerAction[P, A]) String() string {
	return fmt.Sprintf("%v:%v", pa.Player, pa.Action)
}

// Result is a solved program. Variables the solver did not assign
// are reported as absent.
type Result[P, A comparable] interface {
	ExpectedUtility(tag UtilityTag) (float64, bool)
	Probability(key PlayerAction[P, A]) (float64, bool)
}

// Game exposes the players of a strategic game, in order, and the
// actions available to each of them.
type Game[P, A comparable] interface {
	Players() []P
	Actions(player P) *sets.Set[A]
}
