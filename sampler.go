package nashfinder

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr/sampling"

	"github.com/dmonti/NashFinder/nash"
)

// SampleProfile draws one action for each player of eq according to
// the player's mixed strategy. Players are visited in the order of
// eq.Players(), and the returned actions follow the same order.
func SampleProfile[P, A comparable](eq *nash.Equilibrium[P, A], rng *rand.Rand) ([]A, error) {
	players := eq.Players()
	result := make([]A, len(players))
	for i, player := range players {
		strategy, ok := eq.Strategy(player)
		if !ok || strategy == nil {
			return nil, errors.Errorf("player %v has no strategy", player)
		}

		actions := strategy.Actions()
		if len(actions) == 0 {
			return nil, errors.Errorf("player %v has an empty strategy", player)
		}

		p := strategy.Probabilities(actions)
		// Rounded probabilities need not sum to exactly one.
		normalize(p)
		selected := sampling.SampleOne(p, rng.Float32())
		result[i] = actions[selected]
	}

	return result, nil
}

func normalize(p []float32) {
	var total float32
	for _, x := range p {
		total += x
	}

	if total == 0 {
		for i := range p {
			p[i] = 1.0 / float32(len(p))
		}
		return
	}

	for i := range p {
		p[i] /= total
	}
}
