// Package matrixgame approximates equilibria of bimatrix games by
// fictitious play.
package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"

	"github.com/dmonti/NashFinder/game"
	"github.com/dmonti/NashFinder/nash"
)

type Params struct {
	NumIterations int
	// Probability that a player explores a uniformly random action instead
	// of best-responding in a given iteration.
	MixingLambda float64
	Seed         int64
}

// FictitiousPlay repeatedly lets each player best-respond to the empirical
// play of the other, and returns the empirical frequencies of both players.
// payoffs0 and payoffs1 are the payoff matrices of the row and column
// player, both indexed by [row][column].
func FictitiousPlay(payoffs0, payoffs1 [][]float64, params Params) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(params.Seed))
	p0PlayCounts := make([]int, len(payoffs0))
	p1PlayCounts := make([]int, len(payoffs0[0]))
	logEvery := max(params.NumIterations/10, 1)
	for i := 1; i <= params.NumIterations; i++ {
		var p0Selected int
		if rng.Float64() < params.MixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(rng, payoffs0, p1PlayCounts)
		}

		var p1Selected int
		if rng.Float64() < params.MixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(rng, payoffs1, p0PlayCounts)
		}
		p0PlayCounts[p0Selected] += 1
		p1PlayCounts[p1Selected] += 1

		if i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(1).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts)
}

// Solve runs fictitious play on g and reports the empirical frequencies
// and the resulting expected utilities as a solved result. Actions that
// were never played are left unassigned.
func Solve[P, A comparable](g *game.Bimatrix[P, A], params Params) *nash.Solution[P, A] {
	glog.Infof("Running %d iterations of fictitious play", params.NumIterations)
	p, q := FictitiousPlay(g.Matrix(0), g.Matrix(1), params)

	players := g.Players()
	solution := nash.NewSolution[P, A]()
	for i, weights := range [][]float64{p, q} {
		for j, action := range g.ActionList(i) {
			if weights[j] > 0 {
				solution.SetProbability(players[i], action, weights[j])
			}
		}
	}

	solution.SetExpectedUtility(nash.FirstPlayerUtility, g.ExpectedUtility(0, p, q))
	solution.SetExpectedUtility(nash.SecondPlayerUtility, g.ExpectedUtility(1, p, q))
	return solution
}

func getP0BestResponse(rng *rand.Rand, payoffs [][]float64, p1PlayCounts []int) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(rng, utilities)
	return br
}

func getP1BestResponse(rng *rand.Rand, payoffs [][]float64, p0PlayCounts []int) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] += float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(rng, utilities)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	if total == 0 {
		return result
	}

	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax breaks ties uniformly at random.
func argMax(rng *rand.Rand, vs []float64) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	nTied := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
			nTied = 1
		} else if v == best {
			nTied++
			if rng.Intn(nTied) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}
