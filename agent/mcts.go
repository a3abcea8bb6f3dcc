package agent

import (
	"fmt"
	"relearn/game"
	"relearn/searcher"
)

// MCTS searches every move with a fresh UCT tree. Agents built with the same seed and
// episode count play the same moves.
type MCTS struct {
	game   game.Game
	search *searcher.MCTS
}

func NewMCTS(g game.Game, seed uint64, episodes int) *MCTS {
	return &MCTS{
		game:   g,
		search: searcher.NewMCTS(g, searcher.WithSeed(seed), searcher.WithEpisodes(episodes)),
	}
}

func (a *MCTS) Name() string {
	return string(MCTSKind)
}

func (a *MCTS) SelectMove(state game.State) (game.Move, error) {
	if a.game.Outcome(state).IsTerminal() {
		return game.NoMove, fmt.Errorf("%w: position is terminal\n%s", ErrNoLegalMove, state)
	}
	return a.search.FindMove(state)
}
