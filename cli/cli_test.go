package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"relearn/agent"
	"relearn/config"
	"relearn/searcher"
	"relearn/store"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	SetupLogging(io.Discard)

	var out bytes.Buffer
	root := Root()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(in))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestPlay(t *testing.T) {
	cache := t.TempDir()

	t.Run("min-max against random", func(t *testing.T) {
		out, err := run(t, "", "play", "minmax", "random", "1000", "--seed", "1", "--cache-dir", cache)
		require.NoError(t, err)
		require.Regexp(t, regexp.MustCompile(`^Win: \d+\.\d\d%, Draw: \d+\.\d\d%, Loss: 0\.00%, Game Count: 1000\n$`), out)
	})

	t.Run("game count defaults to the configuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relearn.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game: nim\ngame-count: 10\nstarting-player: fixed\n"), 0644))

		out, err := run(t, "", "play", "minmax", "random", "--config", path, "--cache-dir", cache)
		require.NoError(t, err)
		require.Equal(t, "Win: 100.00%, Draw: 0.00%, Loss: 0.00%, Game Count: 10\n", out)
	})

	t.Run("same seed replays the same run", func(t *testing.T) {
		first, err := run(t, "", "play", "random", "random", "200", "--seed", "5")
		require.NoError(t, err)
		second, err := run(t, "", "play", "random", "random", "200", "--seed", "5")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("mcts agent", func(t *testing.T) {
		out, err := run(t, "", "play", "mcts", "random", "10", "--episodes", "100", "--seed", "2")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, "Game Count: 10\n"))
	})

	t.Run("human player", func(t *testing.T) {
		input := strings.Repeat("1\n", 10)
		out, err := run(t, input, "play", "human", "random", "1", "--game", "nim", "--seed", "3")
		require.NoError(t, err)
		require.Contains(t, out, "Available moves")
		require.True(t, strings.HasSuffix(out, "Game Count: 1\n"))
	})

	t.Run("two human players", func(t *testing.T) {
		input := strings.Repeat("1\n", 20)
		out, err := run(t, input, "play", "human", "human", "1", "--game", "nim")
		require.NoError(t, err)
		require.Contains(t, out, "first player to move")
		require.Contains(t, out, "second player to move")
		require.True(t, strings.HasSuffix(out, "Game Count: 1\n"))
	})

	t.Run("records", func(t *testing.T) {
		records := t.TempDir()
		_, err := run(t, "", "play", "random", "random", "5", "--game", "nim", "--records", records)
		require.NoError(t, err)

		files, err := filepath.Glob(filepath.Join(records, "*", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 2)
	})
}

func TestPlayFailsFast(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown first agent", []string{"play", "alphabeta", "random", "10"}, agent.ErrUnknownAgent},
		{"unknown second agent", []string{"play", "random", "alphabeta", "10"}, agent.ErrUnknownAgent},
		{"malformed count", []string{"play", "random", "random", "ten"}, config.ErrInvalidConfig},
		{"zero count", []string{"play", "random", "random", "0"}, config.ErrInvalidConfig},
		{"unknown game", []string{"play", "random", "random", "--game", "chess"}, config.ErrInvalidConfig},
		{"unknown seating", []string{"play", "random", "random", "--starting-player", "coin"}, config.ErrInvalidConfig},
		{"unsolvable game", []string{"play", "minmax", "random", "--game", "mnk44", "--cache-dir", os.TempDir()}, searcher.ErrUnsupportedGameSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.ErrorIs(t, err, tt.err)
			require.Empty(t, out, "nothing is printed before the error")
		})
	}

	t.Run("wrong number of arguments", func(t *testing.T) {
		_, err := run(t, "", "play", "random")
		require.Error(t, err)
	})
}

func TestLearn(t *testing.T) {
	t.Run("stores the policy", func(t *testing.T) {
		cache := t.TempDir()
		out, err := run(t, "", "learn", "minmax", "--cache-dir", cache)
		require.NoError(t, err)
		require.Equal(t, "Learned 5478 states of mnk-3x3-3\n", out)

		policy, err := store.New(cache).Load("mnk-3x3-3")
		require.NoError(t, err)
		require.Equal(t, 5478, policy.Len())
	})

	t.Run("agents without learning", func(t *testing.T) {
		_, err := run(t, "", "learn", "random", "--cache-dir", t.TempDir())
		require.ErrorIs(t, err, agent.ErrNotLearnable)
	})

	t.Run("game too large", func(t *testing.T) {
		cache := t.TempDir()
		_, err := run(t, "", "learn", "minmax", "--game", "mnk44", "--cache-dir", cache)
		require.ErrorIs(t, err, searcher.ErrUnsupportedGameSize)

		files, err := os.ReadDir(cache)
		require.NoError(t, err)
		require.Empty(t, files)
	})

	t.Run("state limit flag", func(t *testing.T) {
		_, err := run(t, "", "learn", "minmax", "--max-states", "100", "--cache-dir", t.TempDir())
		require.ErrorIs(t, err, searcher.ErrUnsupportedGameSize)
	})
}
