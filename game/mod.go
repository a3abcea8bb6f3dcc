package game

import "errors"

// ErrIllegalMove is returned by Apply when the move is not offered by the state.
var ErrIllegalMove = errors.New("illegal move")

// Move identifies an action. It is only meaningful for the state it was generated from.
type Move int

// NoMove is stored for states that have no legal move.
const NoMove Move = -1

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the player to move
	Player() Player
	// Hash returns the canonical key of the position. Keys are exact: equal positions
	// share a key and different positions of the same game never do.
	Hash() StateHash
	String() string
}

// Game holds the rules. It is stateless, positions are passed around as State values.
type Game interface {
	Name() string
	InitialState() State
	// Owns reports whether s is a position of this game. The other methods panic on
	// states they do not own.
	Owns(s State) bool
	// LegalMoves lists the moves of the player to move in a stable order. It is empty
	// exactly when the state is terminal.
	LegalMoves(State) []Move
	// Apply returns the successor of state after move, leaving state untouched.
	Apply(state State, move Move) (State, error)
	Outcome(State) Outcome
	// StateBound is an upper bound on the number of distinct reachable states.
	StateBound() int
	// MaxPlies is an upper bound on the length of any game.
	MaxPlies() int
}
