package agent

import (
	"fmt"
	"relearn/game"
	"relearn/searcher"
)

// MinMaxLearner holds the configuration of a min-max agent that has not learned yet.
type MinMaxLearner struct {
	Options []searcher.Option
}

func NewMinMaxLearner(options ...searcher.Option) MinMaxLearner {
	return MinMaxLearner{Options: options}
}

func (l MinMaxLearner) Learn(g game.Game) (Agent, error) {
	policy, err := searcher.NewSolver(g, l.Options...).Learn()
	if err != nil {
		return nil, err
	}
	return NewMinMax(g, policy), nil
}

// MinMax plays the moves of a solved policy. It can only be built from a finished
// policy, so every call is a table lookup.
type MinMax struct {
	game   game.Game
	policy *searcher.Policy
}

// NewMinMax binds policy to g. The policy must have been learned for g.
func NewMinMax(g game.Game, policy *searcher.Policy) *MinMax {
	if policy == nil {
		panic("min-max agent needs a policy")
	}
	if policy.Game != g.Name() {
		panic(fmt.Sprintf("policy of %s cannot play %s", policy.Game, g.Name()))
	}
	return &MinMax{game: g, policy: policy}
}

func (a *MinMax) Name() string {
	return string(MinMaxKind)
}

func (a *MinMax) Policy() *searcher.Policy {
	return a.policy
}

func (a *MinMax) SelectMove(state game.State) (game.Move, error) {
	// Keys are only unique within one game.
	if !a.game.Owns(state) {
		return game.NoMove, fmt.Errorf("%w: not a %s position\n%s", ErrUnlearnedState, a.policy.Game, state)
	}
	entry, ok := a.policy.Lookup(state)
	if !ok {
		return game.NoMove, fmt.Errorf("%w: %s position\n%s", ErrUnlearnedState, a.policy.Game, state)
	}
	if entry.Move == game.NoMove {
		return game.NoMove, fmt.Errorf("%w: position is terminal\n%s", ErrNoLegalMove, state)
	}
	return entry.Move, nil
}
