package searcher

import (
	"fmt"
	"relearn/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultEpisodes is the number of simulations per move of an MCTS searcher.
const DefaultEpisodes = 1000

type MCTSOption func(m *MCTS)

func WithEpisodes(episodes int) MCTSOption {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithSearchMetrics(collector MetricsCollector) MCTSOption {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// MCTS is a sequential UCT search with uniformly random playouts. It needs no learning,
// every move is found by a fresh search from the given state.
type MCTS struct {
	game     game.Game
	episodes int
	rng      *rand.Rand
	metrics  MetricsCollector
}

func NewMCTS(g game.Game, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		game:     g,
		episodes: DefaultEpisodes,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindMove searches from state, which must be ongoing, and returns its most visited move.
func (m *MCTS) FindMove(state game.State) (game.Move, error) {
	root := newNode(nil, m.game, state)
	if len(root.moves) == 0 {
		return game.NoMove, fmt.Errorf("no move to search from terminal state\n%s", state)
	}

	m.metrics.Start()
	for i := 0; i < m.episodes; i++ {
		if err := m.simulate(root, state); err != nil {
			return game.NoMove, err
		}
	}
	metric := m.metrics.Complete()

	move := root.bestMove()
	log.Trace().
		Int("episodes", m.episodes).
		Int64("expansions", metric.Expansions).
		Dur("duration", metric.Duration).
		Int("move", int(move)).
		Msg("searched")
	return move, nil
}

func (m *MCTS) simulate(root *node, state game.State) error {
	leaf, leafState, err := m.selectThenExpand(root, state)
	if err != nil {
		return err
	}
	outcome, err := m.rollout(leafState)
	if err != nil {
		return err
	}
	backup(leaf, outcome)
	return nil
}

func (m *MCTS) selectThenExpand(root *node, state game.State) (*node, game.State, error) {
	parent := root
	child, state, selected, err := parent.selectOrExpand(m.game, state)
	for err == nil && selected {
		parent = child
		child, state, selected, err = parent.selectOrExpand(m.game, state)
	}
	if err == nil && child != parent {
		m.metrics.AddExpansion()
	}
	return child, state, err
}

func (m *MCTS) rollout(state game.State) (game.Outcome, error) {
	outcome := m.game.Outcome(state)
	// Random rollout policy till game over
	for depth := 0; !outcome.IsTerminal(); depth++ {
		if depth >= m.game.MaxPlies() {
			return outcome, fmt.Errorf("rollout did not end after %d plies\n%s", depth, state)
		}
		moves := m.game.LegalMoves(state)
		next, err := m.game.Apply(state, moves[m.rng.Intn(len(moves))])
		if err != nil {
			return outcome, err
		}
		state = next
		outcome = m.game.Outcome(state)
	}
	return outcome, nil
}

func backup(leaf *node, outcome game.Outcome) {
	for n := leaf; n != nil; {
		n = n.backup(outcome)
	}
}
