// Package game implements two-player games in normal form.
package game

import (
	"github.com/pkg/errors"

	"github.com/dmonti/NashFinder/sets"
)

// ErrInvalidGame is returned when a game's players, actions and payoffs
// are inconsistent.
var ErrInvalidGame = errors.New("invalid game")

// Bimatrix is a two-player game in normal form. Player 0 chooses a row,
// player 1 chooses a column, and each player has its own payoff matrix
// indexed by [row][column].
type Bimatrix[P, A comparable] struct {
	players  [2]P
	actions  [2]*sets.Set[A]
	payoffs  [2][][]float64
	actionOf [2]map[A]int
}

// NewBimatrix creates a Bimatrix game. rowActions belong to players[0]
// and colActions to players[1]; payoffs[i] is the payoff matrix of players[i].
func NewBimatrix[P, A comparable](players [2]P, rowActions, colActions []A, payoffs [2][][]float64) (*Bimatrix[P, A], error) {
	if players[0] == players[1] {
		return nil, errors.Wrapf(ErrInvalidGame, "duplicate player %v", players[0])
	}

	g := &Bimatrix[P, A]{players: players, payoffs: payoffs}
	for i, actions := range [2][]A{rowActions, colActions} {
		if len(actions) == 0 {
			return nil, errors.Wrapf(ErrInvalidGame, "player %v has no actions", players[i])
		}

		g.actions[i] = sets.New(actions...)
		if g.actions[i].Len() != len(actions) {
			return nil, errors.Wrapf(ErrInvalidGame, "player %v has duplicate actions", players[i])
		}

		g.actionOf[i] = make(map[A]int, len(actions))
		for j, action := range actions {
			g.actionOf[i][action] = j
		}
	}

	for i, matrix := range payoffs {
		if err := checkDimensions(matrix, len(rowActions), len(colActions)); err != nil {
			return nil, errors.Wrapf(err, "player %v payoffs", players[i])
		}
	}

	return g, nil
}

func checkDimensions(matrix [][]float64, nRows, nCols int) error {
	if len(matrix) != nRows {
		return errors.Wrapf(ErrInvalidGame, "got %d rows, expected %d", len(matrix), nRows)
	}

	for i, row := range matrix {
		if len(row) != nCols {
			return errors.Wrapf(ErrInvalidGame, "row %d has %d columns, expected %d", i, len(row), nCols)
		}
	}

	return nil
}

// Players returns both players, row player first.
func (g *Bimatrix[P, A]) Players() []P {
	return []P{g.players[0], g.players[1]}
}

// Actions returns the actions of player, or nil if player is not in the game.
func (g *Bimatrix[P, A]) Actions(player P) *sets.Set[A] {
	i, ok := g.indexOf(player)
	if !ok {
		return nil
	}

	return g.actions[i].Clone()
}

// ActionList returns the actions of the player at index i (0 or 1), in order.
func (g *Bimatrix[P, A]) ActionList(i int) []A {
	return g.actions[i].Items()
}

// Payoff returns the payoff of the player at index i when the row player
// plays row and the column player plays col.
func (g *Bimatrix[P, A]) Payoff(i int, row, col A) (float64, error) {
	r, ok := g.actionOf[0][row]
	if !ok {
		return 0, errors.Errorf("unknown action %v for player %v", row, g.players[0])
	}

	c, ok := g.actionOf[1][col]
	if !ok {
		return 0, errors.Errorf("unknown action %v for player %v", col, g.players[1])
	}

	return g.payoffs[i][r][c], nil
}

// Matrix returns the payoff matrix of the player at index i.
func (g *Bimatrix[P, A]) Matrix(i int) [][]float64 {
	return g.payoffs[i]
}

// ExpectedUtility returns the expected payoff of the player at index i when
// the row player mixes according to p and the column player according to q.
func (g *Bimatrix[P, A]) ExpectedUtility(i int, p, q []float64) float64 {
	total := 0.0
	for r, pr := range p {
		for c, qc := range q {
			total += pr * qc * g.payoffs[i][r][c]
		}
	}

	return total
}

func (g *Bimatrix[P, A]) indexOf(player P) (int, bool) {
	for i, p := range g.players {
		if p == player {
			return i, true
		}
	}

	return 0, false
}
