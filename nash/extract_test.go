package nash

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmonti/NashFinder/sets"
)

type testGame struct {
	players []string
	actions map[string]*sets.Set[string]
}

func (g testGame) Players() []string                  { return g.players }
func (g testGame) Actions(p string) *sets.Set[string] { return g.actions[p] }

func newTestGame() testGame {
	return testGame{
		players: []string{"P1", "P2"},
		actions: map[string]*sets.Set[string]{
			"P1": sets.New("a", "b"),
			"P2": sets.New("c", "d"),
		},
	}
}

func newTestSolution() *Solution[string, string] {
	s := NewSolution[string, string]()
	s.SetExpectedUtility(FirstPlayerUtility, 0.3333)
	s.SetExpectedUtility(SecondPlayerUtility, 0.6667)
	s.SetProbability("P1", "a", 0.5)
	s.SetProbability("P1", "b", 0.5)
	s.SetProbability("P2", "c", 1.0)
	return s
}

func TestExtractFromResult(t *testing.T) {
	eq, err := ExtractFromResult[string, string](newTestSolution(), newTestGame())
	require.NoError(t, err)
	require.NotNil(t, eq)

	u1, ok := eq.ExpectedUtility("P1")
	assert.True(t, ok)
	assert.Equal(t, 0.33, u1)

	u2, ok := eq.ExpectedUtility("P2")
	assert.True(t, ok)
	assert.Equal(t, 0.67, u2)

	s1, ok := eq.Strategy("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, s1.Actions())
	p, _ := s1.Probability("a")
	assert.Equal(t, 0.5, p)
	p, _ = s1.Probability("b")
	assert.Equal(t, 0.5, p)

	s2, ok := eq.Strategy("P2")
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, s2.Actions())
	p, _ = s2.Probability("c")
	assert.Equal(t, 1.0, p)
	_, ok = s2.Probability("d")
	assert.False(t, ok, "unassigned action should be omitted")

	assert.Equal(t, []string{"P1", "P2"}, eq.Players())
}

func TestExtractFromResult_NoResult(t *testing.T) {
	eq, err := ExtractFromResult[string, string](nil, newTestGame())
	assert.NoError(t, err)
	assert.Nil(t, eq)
}

func TestExtractFromResult_OnePlayer(t *testing.T) {
	game := testGame{
		players: []string{"P1"},
		actions: map[string]*sets.Set[string]{"P1": sets.New("a")},
	}

	_, err := ExtractFromResult[string, string](newTestSolution(), game)
	assert.True(t, errors.Is(err, ErrNotTwoPlayer), "got %v", err)
}

func TestExtractFromResult_DuplicatePlayer(t *testing.T) {
	game := testGame{
		players: []string{"P1", "P1"},
		actions: map[string]*sets.Set[string]{"P1": sets.New("a", "b")},
	}

	eq, err := ExtractFromResult[string, string](newTestSolution(), game)
	assert.True(t, errors.Is(err, ErrNotTwoPlayer), "got %v", err)
	assert.Nil(t, eq)
}

func TestExtractFromResult_MissingActionSet(t *testing.T) {
	game := newTestGame()
	delete(game.actions, "P2")

	_, err := ExtractFromResult[string, string](newTestSolution(), game)
	assert.True(t, errors.Is(err, ErrNotTwoPlayer), "got %v", err)
}

func TestExtractFromResult_MissingUtility(t *testing.T) {
	s := NewSolution[string, string]()
	s.SetExpectedUtility(FirstPlayerUtility, 1)

	_, err := ExtractFromResult[string, string](s, newTestGame())
	assert.True(t, errors.Is(err, ErrMissingUtility), "got %v", err)
}

func TestExtractFromResult_ExtraPlayersIgnored(t *testing.T) {
	game := newTestGame()
	game.players = append(game.players, "P3")
	game.actions["P3"] = sets.New("e")

	eq, err := ExtractFromResult[string, string](newTestSolution(), game)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2"}, eq.Players())
	_, ok := eq.ExpectedUtility("P3")
	assert.False(t, ok)
}

func TestExtractPlayerStrategy_Rounds(t *testing.T) {
	s := NewSolution[string, string]()
	s.SetProbability("P1", "a", 0.333333)
	s.SetProbability("P1", "b", 0.666667)
	s.SetProbability("P1", "c", 0)

	strategy := ExtractPlayerStrategy[string, string](s, "P1", sets.New("c", "b", "a", "z"))
	assert.Equal(t, []string{"c", "b", "a"}, strategy.Actions())

	p, _ := strategy.Probability("a")
	assert.Equal(t, 0.33, p)
	p, _ = strategy.Probability("b")
	assert.Equal(t, 0.67, p)
	p, ok := strategy.Probability("c")
	assert.True(t, ok, "explicit zero should be kept")
	assert.Equal(t, 0.0, p)

	assert.True(t, strategy.Support().Equal(sets.New("a", "b")))
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		0.3333:  0.33,
		0.6667:  0.67,
		0.125:   0.13,
		-0.125:  -0.13,
		1:       1,
		2.71828: 2.72,
	}

	for v, expected := range cases {
		assert.Equal(t, expected, Round(v), "Round(%v)", v)
	}
}

func TestRound_NegativeZero(t *testing.T) {
	for _, v := range []float64{-1e-12, -0.004, math.Copysign(0, -1)} {
		r := Round(v)
		assert.Equal(t, 0.0, r, "Round(%v)", v)
		assert.False(t, math.Signbit(r), "Round(%v) should not be negative zero", v)
	}

	s := NewStrategy[string]()
	s.Add("a", Round(-1e-12))
	assert.Equal(t, "{a: 0.00}", s.String())
}

func TestLoadSolutionJSON(t *testing.T) {
	doc := `{
		"utilities": [0.3333, 0.6667],
		"probabilities": {"P1": {"a": 0.5, "b": 0.5}, "P2": {"c": 1}}
	}`
	s, err := LoadSolutionJSON(strings.NewReader(doc))
	require.NoError(t, err)

	eq, err := ExtractFromResult[string, string](s, newTestGame())
	require.NoError(t, err)

	expected, err := ExtractFromResult[string, string](newTestSolution(), newTestGame())
	require.NoError(t, err)
	assert.True(t, expected.Equal(eq), "got %v, expected %v", eq, expected)
}

func TestLoadSolutionJSON_Null(t *testing.T) {
	s, err := LoadSolutionJSON(strings.NewReader("null"))
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestLoadSolutionJSON_Invalid(t *testing.T) {
	_, err := LoadSolutionJSON(strings.NewReader(`{"utilities": [1, 2, 3]}`))
	assert.Error(t, err)

	_, err = LoadSolutionJSON(strings.NewReader(`{"utilities": `))
	assert.Error(t, err)
}
