package nash

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Solution is an in-memory Result: a solver's variable assignment held
// in maps.
type Solution[P, A comparable] struct {
	utilities     map[UtilityTag]float64
	probabilities map[PlayerAction[P, A]]float64
}

func NewSolution[P, A comparable]() *Solution[P, A] {
	return &Solution[P, A]{
		utilities:     make(map[UtilityTag]float64),
		probabilities: make(map[PlayerAction[P, A]]float64),
	}
}

func (s *Solution[P, A]) SetExpectedUtility(tag UtilityTag, utility float64) {
	s.utilities[tag] = utility
}

func (s *Solution[P, A]) SetProbability(player P, action A, probability float64) {
	s.probabilities[PlayerAction[P, A]{player, action}] = probability
}

// ExpectedUtility implements Result.
func (s *Solution[P, A]) ExpectedUtility(tag UtilityTag) (float64, bool) {
	u, ok := s.utilities[tag]
	return u, ok
}

// Probability implements Result.
func (s *Solution[P, A]) Probability(key PlayerAction[P, A]) (float64, bool) {
	p, ok := s.probabilities[key]
	return p, ok
}

type solutionJSON struct {
	// Expected utilities of the first and second player.
	Utilities []float64 `json:"utilities"`
	// Player => action => probability. Missing actions are unassigned.
	Probabilities map[string]map[string]float64 `json:"probabilities"`
}

// LoadSolutionJSON reads a Solution over string players and actions.
// A JSON null document means the solver found no solution, in which
// case LoadSolutionJSON returns a nil Solution and no error.
func LoadSolutionJSON(r io.Reader) (*Solution[string, string], error) {
	var doc *solutionJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding solution")
	}
	if doc == nil {
		return nil, nil
	}

	if len(doc.Utilities) > 2 {
		return nil, errors.Errorf("solution has %d utilities, expected at most 2", len(doc.Utilities))
	}

	s := NewSolution[string, string]()
	for i, u := range doc.Utilities {
		s.SetExpectedUtility(UtilityTag(i), u)
	}
	for player, actions := range doc.Probabilities {
		for action, p := range actions {
			s.SetProbability(player, action, p)
		}
	}

	return s, nil
}
