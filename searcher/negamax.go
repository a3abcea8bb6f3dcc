package searcher

import (
	"fmt"
	"math"
	"relearn/game"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(s *Solver)

func WithMaxStates(maxStates int) Option {
	return func(s *Solver) {
		if maxStates > 0 {
			s.maxStates = maxStates
		}
	}
}

func WithMetrics(collector MetricsCollector) Option {
	return func(s *Solver) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Solver computes the game-theoretic value and best move of every position reachable
// from the initial state with a memoized negamax search.
type Solver struct {
	game      game.Game
	maxStates int
	metrics   MetricsCollector
	table     map[game.StateHash]Entry
}

func NewSolver(g game.Game, options ...Option) *Solver {
	s := &Solver{ // Default values
		game:      g,
		maxStates: DefaultMaxStates,
		metrics:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Learn solves the game and returns the policy. Games whose declared state bound exceeds
// the solver limit are rejected before any position is expanded.
func (s *Solver) Learn() (*Policy, error) {
	if bound := s.game.StateBound(); bound > s.maxStates {
		return nil, fmt.Errorf("%w: %s may reach %d states, limit is %d",
			ErrUnsupportedGameSize, s.game.Name(), bound, s.maxStates)
	}

	log.Info().Msgf("learning %s...", s.game.Name())

	s.table = make(map[game.StateHash]Entry)
	defer func() { s.table = nil }()

	start := time.Now()
	s.metrics.Start()
	value, err := s.negamax(s.game.InitialState())
	if err != nil {
		return nil, fmt.Errorf("learn %s: %w", s.game.Name(), err)
	}
	metric := s.metrics.Complete()

	event := log.Info().
		Int("states", len(s.table)).
		Int8("value", value).
		Dur("duration", time.Since(start))
	// The no-op collector never starts.
	if !metric.StartTime.IsZero() {
		event = event.Int64("hits", metric.TableHits)
	}
	event.Msgf("learned %s", s.game.Name())

	return &Policy{Game: s.game.Name(), Entries: s.table}, nil
}

func (s *Solver) negamax(state game.State) (int8, error) {
	key := state.Hash()
	if entry, ok := s.table[key]; ok {
		s.metrics.AddTableHit()
		return entry.Value, nil
	}
	s.metrics.AddExpansion()

	if outcome := s.game.Outcome(state); outcome.IsTerminal() {
		value := outcome.Value(state.Player())
		s.table[key] = Entry{Value: value, Move: game.NoMove}
		return value, nil
	}

	best := Entry{Value: math.MinInt8, Move: game.NoMove}
	for _, move := range s.game.LegalMoves(state) {
		next, err := s.game.Apply(state, move)
		if err != nil {
			return 0, err
		}

		value, err := s.negamax(next)
		if err != nil {
			return 0, err
		}

		// Strict comparison: the first maximal move in enumeration order is kept.
		if -value > best.Value {
			best = Entry{Value: -value, Move: move}
		}
	}

	s.table[key] = best
	return best.Value, nil
}
