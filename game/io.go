package game

import (
	"encoding/json"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type bimatrixJSON struct {
	Players []string               `json:"players"`
	Actions map[string][]string    `json:"actions"`
	Payoffs map[string][][]float64 `json:"payoffs"`
}

// LoadJSON reads a two-player game of the form:
//
//	{
//	  "players": ["row", "col"],
//	  "actions": {"row": ["U", "D"], "col": ["L", "R"]},
//	  "payoffs": {"row": [[1, 0], [0, 1]], "col": [[0, 1], [1, 0]]}
//	}
//
// Payoff matrices are indexed by [row action][column action] for both players.
func LoadJSON(r io.Reader) (*Bimatrix[string, string], error) {
	var doc bimatrixJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding game")
	}

	if len(doc.Players) != 2 {
		return nil, errors.Wrapf(ErrInvalidGame, "got %d players, expected 2", len(doc.Players))
	}

	players := [2]string{doc.Players[0], doc.Players[1]}
	var payoffs [2][][]float64
	for i, player := range players {
		matrix, ok := doc.Payoffs[player]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidGame, "no payoffs for player %v", player)
		}
		payoffs[i] = matrix
	}

	g, err := NewBimatrix(players, doc.Actions[players[0]], doc.Actions[players[1]], payoffs)
	if err != nil {
		return nil, err
	}

	glog.V(1).Infof("Loaded %dx%d game between %v and %v",
		len(doc.Actions[players[0]]), len(doc.Actions[players[1]]), players[0], players[1])
	return g, nil
}
