package agent

import (
	"errors"
	"relearn/game"
)

var (
	// ErrNoLegalMove is returned when an agent is asked to move in a finished game.
	ErrNoLegalMove = errors.New("no legal move")
	// ErrUnlearnedState is returned by a min-max agent for a position missing from its policy.
	ErrUnlearnedState = errors.New("state was not learned")
	ErrNotLearnable   = errors.New("agent cannot learn")
	ErrUnknownAgent   = errors.New("unknown agent")
)

// Agent picks moves for the player to move. An agent is bound to one game when it is built.
type Agent interface {
	Name() string
	// SelectMove returns a legal move for state, which must be ongoing.
	SelectMove(state game.State) (game.Move, error)
}

// Learner is implemented by agent kinds that precompute a policy offline. Learn returns
// the sealed agent playing that policy.
type Learner interface {
	Learn(g game.Game) (Agent, error)
}
