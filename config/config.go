package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"relearn/engine"
	"relearn/game"
	"relearn/searcher"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything a learn or play run can be tuned with.
type Config struct {
	Game string `yaml:"game"`
	// Seed makes random agents reproducible. A nil seed is drawn from the clock.
	Seed           *uint64 `yaml:"seed,omitempty"`
	GameCount      int     `yaml:"game-count"`
	StartingPlayer string  `yaml:"starting-player"`
	// MaxPlies caps trials, 0 keeps the game's own bound.
	MaxPlies  int    `yaml:"max-plies"`
	MaxStates int    `yaml:"max-states"`
	Episodes  int    `yaml:"episodes"` // per move, for mcts agents
	CacheDir  string `yaml:"cache-dir,omitempty"`
	// Records is a directory receiving per-game CSV records, nothing is written when empty.
	Records string `yaml:"records,omitempty"`
}

func Default() Config {
	return Config{
		Game:           string(game.TicTacToeKind),
		GameCount:      engine.DefaultGameCount,
		StartingPlayer: engine.Alternating.String(),
		MaxStates:      searcher.DefaultMaxStates,
		Episodes:       searcher.DefaultEpisodes,
	}
}

// Load reads a yaml file on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(file))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if _, err := game.ParseKind(c.Game); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.GameCount < 1 {
		return fmt.Errorf("%w: game-count must be positive, got %d", ErrInvalidConfig, c.GameCount)
	}
	if _, err := engine.ParseStartingPolicy(c.StartingPlayer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("%w: max-plies cannot be negative, got %d", ErrInvalidConfig, c.MaxPlies)
	}
	if c.MaxStates < 1 {
		return fmt.Errorf("%w: max-states must be positive, got %d", ErrInvalidConfig, c.MaxStates)
	}
	if c.Episodes < 1 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrInvalidConfig, c.Episodes)
	}
	return nil
}

// NewGame builds the configured game. Call Validate first.
func (c Config) NewGame() (game.Game, error) {
	kind, err := game.ParseKind(c.Game)
	if err != nil {
		return nil, err
	}
	return kind.New()
}

func (c Config) StartingPolicy() engine.StartingPolicy {
	p, _ := engine.ParseStartingPolicy(c.StartingPlayer)
	return p
}

// Seeds returns the seeds of the first and second agent of a match: the configured
// seed and its successor.
func (c Config) Seeds() (uint64, uint64) {
	seed := uint64(time.Now().UnixNano())
	if c.Seed != nil {
		seed = *c.Seed
	}
	return seed, seed + 1
}

func (c Config) SolverOptions() []searcher.Option {
	return []searcher.Option{searcher.WithMaxStates(c.MaxStates)}
}

func (c Config) String() string {
	data, _ := yaml.Marshal(c)
	return string(data)
}
