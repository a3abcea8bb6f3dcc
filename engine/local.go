package engine

import (
	"fmt"
	"relearn/agent"
	"relearn/game"
	"relearn/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(s *Simulator)

// WithGameCount sets the number of trials. Negative counts are ignored.
func WithGameCount(n int) Option {
	return func(s *Simulator) {
		if n >= 0 {
			s.gameCount = n
		}
	}
}

func WithStartingPolicy(p StartingPolicy) Option {
	return func(s *Simulator) {
		s.starting = p
	}
}

// WithMaxPlies caps the length of a trial. The default is the game's own bound.
func WithMaxPlies(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.maxPlies = n
		}
	}
}

// WithMetrics records a metrics.GameRecord per trial, available from Records after Run.
func WithMetrics(collector metrics.Collector) Option {
	return func(s *Simulator) {
		if collector != nil {
			s.metrics = collector
			s.record = true
		}
	}
}

// Simulator plays repeated trials of one game between two agents.
type Simulator struct {
	game      game.Game
	agents    [2]agent.Agent
	gameCount int
	starting  StartingPolicy
	maxPlies  int
	metrics   metrics.Collector
	record    bool
	records   []metrics.GameRecord
}

func NewSimulator(g game.Game, a, b agent.Agent, options ...Option) *Simulator {
	if a == nil || b == nil {
		panic("simulator needs two agents")
	}
	s := &Simulator{ // Default values
		game:      g,
		agents:    [2]agent.Agent{a, b},
		gameCount: DefaultGameCount,
		starting:  Alternating,
		maxPlies:  g.MaxPlies(),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run plays every trial in sequence. The first error aborts the run.
func (s *Simulator) Run() (MatchResult, error) {
	var result MatchResult
	s.records = nil

	log.Info().
		Str("game", s.game.Name()).
		Str("agent1", s.agents[0].Name()).
		Str("agent2", s.agents[1].Name()).
		Int("games", s.gameCount).
		Stringer("starting", s.starting).
		Msg("simulation started")

	start := time.Now()
	for trial := 1; trial <= s.gameCount; trial++ {
		first := 0
		if s.starting == Alternating && trial%2 == 0 {
			first = 1
		}

		winner, err := s.trial(trial, first)
		if err != nil {
			return MatchResult{}, fmt.Errorf("trial %d: %w", trial, err)
		}

		switch winner {
		case metrics.Agent1:
			result.Wins++
		case metrics.Agent2:
			result.Losses++
		default:
			result.Draws++
		}
		result.GamesPlayed++
	}

	log.Info().
		Int("wins", result.Wins).
		Int("draws", result.Draws).
		Int("losses", result.Losses).
		Dur("duration", time.Since(start)).
		Msg("simulation finished")

	return result, nil
}

// Records returns the per-trial records of the last run. It is empty unless the
// simulator was built WithMetrics.
func (s *Simulator) Records() []metrics.GameRecord {
	return s.records
}

// trial plays one game with agent index first in the first seat and returns the
// winning agent label, metrics.Draw for a draw.
func (s *Simulator) trial(id, first int) (int, error) {
	seats := [2]int{first, 1 - first} // seat -> agent index
	s.metrics.Start(first + 1)

	state := s.game.InitialState()
	for plies := 0; ; plies++ {
		if outcome := s.game.Outcome(state); outcome.IsTerminal() {
			winner := metrics.Draw
			if outcome.Status == game.Win {
				winner = seats[outcome.Winner] + 1
			}
			s.complete(id, winner)

			log.Debug().Int("trial", id).Int("plies", plies).Stringer("outcome", outcome).Msg("trial finished")
			return winner, nil
		}

		if plies >= s.maxPlies {
			return 0, fmt.Errorf("%w: no outcome after %d plies\n%s", ErrTrialDidNotTerminate, plies, state)
		}

		player := state.Player()
		current := s.agents[seats[player]]

		start := time.Now()
		move, err := current.SelectMove(state)
		if err != nil {
			return 0, fmt.Errorf("%s as %s player: %w", current.Name(), player, err)
		}
		s.metrics.AddMove(seats[player]+1, time.Since(start))

		next, err := s.game.Apply(state, move)
		if err != nil {
			return 0, fmt.Errorf("%s as %s player: %w", current.Name(), player, err)
		}

		log.Trace().Int("trial", id).Int("ply", plies+1).Str("agent", current.Name()).Int("move", int(move)).Msg("played")
		state = next
	}
}

func (s *Simulator) complete(id, winner int) {
	metric := s.metrics.Complete(winner)
	if !s.record {
		return
	}
	s.records = append(s.records, metrics.GameRecord{
		ID:         id,
		Agent1:     s.agents[0].Name(),
		Agent2:     s.agents[1].Name(),
		GameMetric: metric,
	})
}
