package agent

import (
	"fmt"
	"relearn/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves. Two agents built with the same seed
// make the same choices.
type Random struct {
	game game.Game
	rng  *rand.Rand
}

func NewRandom(g game.Game, seed uint64) *Random {
	return &Random{
		game: g,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *Random) Name() string {
	return string(RandomKind)
}

func (a *Random) SelectMove(state game.State) (game.Move, error) {
	moves := a.game.LegalMoves(state)
	if len(moves) == 0 {
		return game.NoMove, fmt.Errorf("%w: position is terminal\n%s", ErrNoLegalMove, state)
	}
	return moves[a.rng.Intn(len(moves))], nil
}
