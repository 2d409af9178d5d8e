// Package nashfinder enumerates candidate supports of two-player games and
// works with the Nash equilibria extracted from solved programs.
package nashfinder

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/dmonti/NashFinder/nash"
	"github.com/dmonti/NashFinder/sets"
)

// SupportProfile is a candidate support for each of the two players:
// the actions each of them may play with non-zero probability.
type SupportProfile[P, A comparable] struct {
	Players  [2]P
	Supports [2]*sets.Set[A]
}

// EnumerateSupports returns every non-empty subset of actions.
func EnumerateSupports[A comparable](actions *sets.Set[A]) []*sets.Set[A] {
	all := sets.PowerSet(actions)
	result := make([]*sets.Set[A], 0, all.Len()-1)
	all.Iter(func(s *sets.Set[A]) {
		if !s.IsEmpty() {
			result = append(result, s)
		}
	})

	return result
}

// supportRef tags a support with the player it belongs to, so that
// supports of different players never compare equal in a product.
type supportRef struct {
	player int
	index  int
}

// EnumerateSupportProfiles calls cb with every pair of non-empty supports of
// the first two players of g. If balanced is set, only supports of equal
// size are paired, which is sufficient for nondegenerate games.
func EnumerateSupportProfiles[P, A comparable](g nash.Game[P, A], balanced bool, cb func(SupportProfile[P, A])) error {
	players := g.Players()
	if len(players) < 2 {
		return errors.Wrapf(nash.ErrNotTwoPlayer, "got %d players", len(players))
	}

	var supports [2][]*sets.Set[A]
	var refs [2]*sets.Set[supportRef]
	for i, player := range players[:2] {
		actions := g.Actions(player)
		if actions == nil {
			return errors.Wrapf(nash.ErrNotTwoPlayer, "player %v has no action set", player)
		}

		supports[i] = EnumerateSupports(actions)
		refs[i] = sets.New[supportRef]()
		for j := range supports[i] {
			refs[i].Add(supportRef{player: i, index: j})
		}
		glog.V(1).Infof("Player %v has %d candidate supports", player, len(supports[i]))
	}

	product, err := sets.CartesianProduct(refs[:])
	if err != nil {
		return err
	}

	n := 0
	product.Iter(func(combination *sets.Set[supportRef]) {
		profile := SupportProfile[P, A]{Players: [2]P{players[0], players[1]}}
		combination.Iter(func(ref supportRef) {
			profile.Supports[ref.player] = supports[ref.player][ref.index]
		})

		if balanced && profile.Supports[0].Len() != profile.Supports[1].Len() {
			return
		}

		n++
		cb(profile)
	})

	glog.V(1).Infof("Enumerated %d support profiles", n)
	return nil
}
