package engine

import (
	"errors"
	"relearn/agent"
	"relearn/game"
	"relearn/metrics"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// endless never reaches an outcome.
type endless struct{}

type endlessState struct{ plies int }

func (s endlessState) Player() game.Player { return game.Player(s.plies % 2) }
func (s endlessState) Hash() game.StateHash { return game.StateHash(s.plies) }
func (s endlessState) String() string       { return "endless" }

func (endless) Name() string                      { return "endless" }
func (endless) InitialState() game.State          { return endlessState{} }
func (endless) LegalMoves(game.State) []game.Move { return []game.Move{0} }
func (endless) Outcome(game.State) game.Outcome   { return game.InProgress }
func (endless) StateBound() int                   { return 100 }
func (endless) MaxPlies() int                     { return 10 }
func (endless) Owns(s game.State) bool {
	_, ok := s.(endlessState)
	return ok
}
func (endless) Apply(s game.State, _ game.Move) (game.State, error) {
	return endlessState{plies: s.(endlessState).plies + 1}, nil
}

// scripted returns its moves in order, then fails.
type scripted struct {
	moves []game.Move
	err   error
}

func (a *scripted) Name() string { return "scripted" }

func (a *scripted) SelectMove(game.State) (game.Move, error) {
	if len(a.moves) == 0 {
		return game.NoMove, a.err
	}
	move := a.moves[0]
	a.moves = a.moves[1:]
	return move, nil
}

func minmax(t *testing.T, g game.Game) agent.Agent {
	t.Helper()
	a, err := agent.NewMinMaxLearner().Learn(g)
	require.NoError(t, err)
	return a
}

func TestSimulatorTicTacToe(t *testing.T) {
	g := game.TicTacToe()
	search := minmax(t, g)

	t.Run("min-max never loses against random", func(t *testing.T) {
		result, err := NewSimulator(g, search, agent.NewRandom(g, 1), WithGameCount(1000)).Run()
		require.NoError(t, err)
		require.Equal(t, 1000, result.GamesPlayed)
		require.Zero(t, result.Losses)
		require.Equal(t, 1000, result.Wins+result.Draws)
		require.InDelta(t, 1.0, result.WinRate()+result.DrawRate(), 1e-9)
		require.Greater(t, result.Wins, 500, "random play should give most games away")
	})

	t.Run("min-max against itself draws every game", func(t *testing.T) {
		result, err := NewSimulator(g, search, search, WithGameCount(20)).Run()
		require.NoError(t, err)
		require.Equal(t, MatchResult{Draws: 20, GamesPlayed: 20}, result)
	})

	t.Run("random agents with different seeds", func(t *testing.T) {
		run := func(seedA, seedB uint64) MatchResult {
			result, err := NewSimulator(g, agent.NewRandom(g, seedA), agent.NewRandom(g, seedB), WithGameCount(1000)).Run()
			require.NoError(t, err)
			require.Equal(t, 1000, result.GamesPlayed)
			return result
		}
		require.NotEqual(t, run(1, 2), run(3, 4))
		require.Equal(t, run(5, 6), run(5, 6), "fixed seeds replay the same run")
	})

	t.Run("zero games", func(t *testing.T) {
		result, err := NewSimulator(g, search, search, WithGameCount(0)).Run()
		require.NoError(t, err)
		require.Equal(t, MatchResult{}, result)
		require.Zero(t, result.WinRate())
	})
}

func TestSimulatorSeating(t *testing.T) {
	g, err := game.NewNim(8, 3) // lost for the first player
	require.NoError(t, err)
	search := minmax(t, g)

	t.Run("fixed seating", func(t *testing.T) {
		result, err := NewSimulator(g, agent.NewRandom(g, 9), search,
			WithGameCount(100), WithStartingPolicy(Fixed)).Run()
		require.NoError(t, err)
		require.Equal(t, MatchResult{Losses: 100, GamesPlayed: 100}, result)
	})

	t.Run("alternating seating", func(t *testing.T) {
		result, err := NewSimulator(g, search, search, WithGameCount(10)).Run()
		require.NoError(t, err)
		require.Equal(t, MatchResult{Wins: 5, Losses: 5, GamesPlayed: 10}, result,
			"the second seat wins and the agents swap every trial")
	})

	t.Run("records", func(t *testing.T) {
		s := NewSimulator(g, search, agent.NewRandom(g, 1),
			WithGameCount(4), WithMetrics(metrics.NewCollector()))
		_, err := s.Run()
		require.NoError(t, err)

		records := s.Records()
		require.Len(t, records, 4)
		for i, record := range records {
			require.Equal(t, i+1, record.ID)
			require.Equal(t, "minmax", record.Agent1)
			require.Equal(t, "random", record.Agent2)
			require.Equal(t, 1+i%2, record.StartingAgent)
			require.Equal(t, record.TotalMoves, len(record.Moves))
			require.Equal(t, record.StartingAgent, record.Moves[0].Agent)
		}
		require.Equal(t, metrics.Agent1, records[1].Winner, "min-max seated second wins")
	})

	t.Run("no records without metrics", func(t *testing.T) {
		s := NewSimulator(g, search, search, WithGameCount(2))
		_, err := s.Run()
		require.NoError(t, err)
		require.Empty(t, s.Records())
	})
}

func TestSimulatorErrors(t *testing.T) {
	t.Run("trial without an outcome", func(t *testing.T) {
		g := endless{}
		_, err := NewSimulator(g, agent.NewRandom(g, 1), agent.NewRandom(g, 2), WithGameCount(3)).Run()
		require.ErrorIs(t, err, ErrTrialDidNotTerminate)
		require.True(t, strings.HasPrefix(err.Error(), "trial 1:"))
	})

	t.Run("ply cap override", func(t *testing.T) {
		g := game.TicTacToe()
		_, err := NewSimulator(g, agent.NewRandom(g, 1), agent.NewRandom(g, 2), WithMaxPlies(3)).Run()
		require.ErrorIs(t, err, ErrTrialDidNotTerminate)
	})

	t.Run("illegal move aborts the run", func(t *testing.T) {
		g := game.TicTacToe()
		cheat := &scripted{moves: []game.Move{4, 4}}
		_, err := NewSimulator(g, cheat, agent.NewRandom(g, 1), WithStartingPolicy(Fixed)).Run()
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("agent errors carry the trial number", func(t *testing.T) {
		g := game.TicTacToe()
		broken := errors.New("broken")
		a := &scripted{err: broken}
		_, err := NewSimulator(g, a, agent.NewRandom(g, 1), WithStartingPolicy(Fixed)).Run()
		require.ErrorIs(t, err, broken)
		require.Equal(t, "trial 1: scripted as first player: broken", err.Error())
	})
}

func TestMatchResult(t *testing.T) {
	result := MatchResult{Wins: 1, Draws: 1, Losses: 1, GamesPlayed: 3}
	require.Equal(t, "Win: 33.33%, Draw: 33.33%, Loss: 33.33%, Game Count: 3", result.String())
	require.Equal(t, "Win: 0.00%, Draw: 0.00%, Loss: 0.00%, Game Count: 0", MatchResult{}.String())
}

func TestParseStartingPolicy(t *testing.T) {
	p, err := ParseStartingPolicy("Fixed")
	require.NoError(t, err)
	require.Equal(t, Fixed, p)
	require.Equal(t, "alternating", Alternating.String())

	_, err = ParseStartingPolicy("random")
	require.Error(t, err)
}
