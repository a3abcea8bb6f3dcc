package searcher

import (
	"errors"
	"relearn/game"
)

// Terminal values, from the point of view of the player to move
const (
	Win  int8 = 1
	Draw int8 = 0
	Loss      = -Win
)

// DefaultMaxStates caps the declared state space of games the solver accepts.
const DefaultMaxStates = 2_000_000

var ErrUnsupportedGameSize = errors.New("game too large for exhaustive search")

// Entry is what the solver knows about a position: its negamax value for the player to
// move and the first move reaching it. Terminal positions store game.NoMove.
type Entry struct {
	Value int8
	Move  game.Move
}

// Policy is the learned artifact of a Solver. It is never modified after Learn returns and
// can be shared read-only.
type Policy struct {
	Game    string
	Entries map[game.StateHash]Entry
}

func (p *Policy) Lookup(state game.State) (Entry, bool) {
	entry, ok := p.Entries[state.Hash()]
	return entry, ok
}

func (p *Policy) Len() int {
	return len(p.Entries)
}
