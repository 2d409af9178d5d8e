package game

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmonti/NashFinder/sets"
)

const matchingPennies = `{
	"players": ["even", "odd"],
	"actions": {"even": ["H", "T"], "odd": ["H", "T"]},
	"payoffs": {
		"even": [[1, -1], [-1, 1]],
		"odd":  [[-1, 1], [1, -1]]
	}
}`

func TestLoadJSON(t *testing.T) {
	g, err := LoadJSON(strings.NewReader(matchingPennies))
	require.NoError(t, err)

	assert.Equal(t, []string{"even", "odd"}, g.Players())
	assert.True(t, g.Actions("even").Equal(sets.New("H", "T")))
	assert.Equal(t, []string{"H", "T"}, g.ActionList(1))
	assert.Nil(t, g.Actions("nobody"))

	u, err := g.Payoff(0, "H", "T")
	require.NoError(t, err)
	assert.Equal(t, -1.0, u)

	u, err = g.Payoff(1, "H", "T")
	require.NoError(t, err)
	assert.Equal(t, 1.0, u)

	_, err = g.Payoff(0, "X", "T")
	assert.Error(t, err)
}

func TestLoadJSON_Invalid(t *testing.T) {
	cases := map[string]string{
		"one player":      `{"players": ["a"], "actions": {"a": ["x"]}, "payoffs": {"a": [[1]]}}`,
		"missing payoffs": `{"players": ["a", "b"], "actions": {"a": ["x"], "b": ["y"]}, "payoffs": {"a": [[1]]}}`,
		"no actions":      `{"players": ["a", "b"], "actions": {"a": ["x"]}, "payoffs": {"a": [[1]], "b": [[1]]}}`,
		"bad rows":        `{"players": ["a", "b"], "actions": {"a": ["x", "z"], "b": ["y"]}, "payoffs": {"a": [[1]], "b": [[1]]}}`,
		"bad columns":     `{"players": ["a", "b"], "actions": {"a": ["x"], "b": ["y", "w"]}, "payoffs": {"a": [[1, 2]], "b": [[1]]}}`,
		"duplicate":       `{"players": ["a", "b"], "actions": {"a": ["x", "x"], "b": ["y"]}, "payoffs": {"a": [[1], [1]], "b": [[1], [1]]}}`,
		"same player":     `{"players": ["a", "a"], "actions": {"a": ["x"]}, "payoffs": {"a": [[1]]}}`,
	}

	for name, doc := range cases {
		_, err := LoadJSON(strings.NewReader(doc))
		assert.True(t, errors.Is(err, ErrInvalidGame), "%s: got %v", name, err)
	}
}

func TestExpectedUtility(t *testing.T) {
	g, err := LoadJSON(strings.NewReader(matchingPennies))
	require.NoError(t, err)

	uniform := []float64{0.5, 0.5}
	assert.InDelta(t, 0.0, g.ExpectedUtility(0, uniform, uniform), 1e-12)
	assert.InDelta(t, 1.0, g.ExpectedUtility(0, []float64{1, 0}, []float64{1, 0}), 1e-12)
	assert.InDelta(t, -1.0, g.ExpectedUtility(1, []float64{1, 0}, []float64{1, 0}), 1e-12)
}
