package nash

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/dmonti/NashFinder/sets"
)

var (
	// ErrNotTwoPlayer is returned when an equilibrium is extracted for a game
	// that does not provide two players with action sets.
	ErrNotTwoPlayer = errors.New("equilibrium extraction requires a two-player game")
	// ErrMissingUtility is returned when a solved result does not assign
	// an expected utility to one of the players.
	ErrMissingUtility = errors.New("result has no expected utility")
)

// ExtractFromResult builds the Nash equilibrium described by a solved
// program for the first two players of game.
//
// A nil result means the solver found no solution; ExtractFromResult then
// returns a nil Equilibrium and no error.
func ExtractFromResult[P, A comparable](result Result[P, A], game Game[P, A]) (*Equilibrium[P, A], error) {
	if result == nil {
		glog.V(1).Info("No solver result, no Nash equilibrium")
		return nil, nil
	}

	players := game.Players()
	if len(players) < 2 {
		return nil, errors.Wrapf(ErrNotTwoPlayer, "got %d players", len(players))
	}
	if players[0] == players[1] {
		return nil, errors.Wrapf(ErrNotTwoPlayer, "duplicate player %v", players[0])
	}
	if len(players) > 2 {
		glog.Warningf("Game has %d players, extracting equilibrium for the first two only", len(players))
	}

	eq := NewEquilibrium[P, A]()
	tags := [2]UtilityTag{FirstPlayerUtility, SecondPlayerUtility}
	for i, player := range players[:2] {
		actions := game.Actions(player)
		if actions == nil {
			return nil, errors.Wrapf(ErrNotTwoPlayer, "player %v has no action set", player)
		}

		utility, ok := result.ExpectedUtility(tags[i])
		if !ok {
			return nil, errors.Wrapf(ErrMissingUtility, "%v (player %v)", tags[i], player)
		}

		eq.SetExpectedUtility(player, Round(utility))
		eq.SetStrategy(player, ExtractPlayerStrategy(result, player, actions))
	}

	return eq, nil
}

// ExtractPlayerStrategy reads the probability the solver assigned to each
// of player's actions. Actions without a value are left out of the strategy.
func ExtractPlayerStrategy[P, A comparable](result Result[P, A], player P, actions *sets.Set[A]) *Strategy[A] {
	strategy := NewStrategy[A]()
	actions.Iter(func(action A) {
		p, ok := result.Probability(PlayerAction[P, A]{player, action})
		if !ok {
			return
		}

		strategy.Add(action, Round(p))
	})

	glog.V(2).Infof("Player %v strategy: %v", player, strategy)
	return strategy
}
