package cli

import (
	"fmt"
	"io"
	"relearn/config"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// SetupLogging sends human readable logs to w at Info level.
func SetupLogging(w io.Writer) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func Root() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:   "relearn",
		Short: "Learn and compare agents for small two-player games",
		Long: heredoc.Doc(`relearn pits game playing agents against each other in
			deterministic two-player games with perfect information and
			reports how the first agent fared.

			The minmax agent solves the game exhaustively. Its policy can be
			learned once with "relearn learn minmax" and is then reused by
			"relearn play" from the policy cache.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			if trace, _ := cmd.Flags().GetBool("trace"); trace {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}

			loaded, err := load(cmd)
			if err != nil {
				return err
			}
			cfg = loaded
			log.Debug().Msgf("configuration:\n%s", cfg)
			return nil
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.StringP("config", "c", "", "Read settings from a yaml file")
	flags.StringP("game", "g", "", "Game to play (tictactoe, mnk34, mnk44, nim)")
	flags.Uint64("seed", 0, "Seed of the random agents")
	flags.String("starting-player", "", "Seating of the agents (alternating, fixed)")
	flags.Int("max-plies", 0, "Abort a trial after this many plies")
	flags.Int("max-states", 0, "Largest game the minmax agent will try to solve")
	flags.Int("episodes", 0, "Simulations per move of the mcts agent")
	flags.String("cache-dir", "", "Directory of learned policies")
	flags.String("records", "", "Write per-game CSV records below this directory")

	root.Version = version
	root.SetVersionTemplate(version + "\n")

	// Register the various commands.
	root.AddCommand(Learn(&cfg))
	root.AddCommand(Play(&cfg))

	return root
}

// load reads the configuration file, if any, and applies the flags set on the command
// line on top of it.
func load(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if flags.Changed("game") {
		cfg.Game, _ = flags.GetString("game")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Seed = &seed
	}
	if flags.Changed("starting-player") {
		cfg.StartingPlayer, _ = flags.GetString("starting-player")
	}
	if flags.Changed("max-plies") {
		cfg.MaxPlies, _ = flags.GetInt("max-plies")
	}
	if flags.Changed("max-states") {
		cfg.MaxStates, _ = flags.GetInt("max-states")
	}
	if flags.Changed("episodes") {
		cfg.Episodes, _ = flags.GetInt("episodes")
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir, _ = flags.GetString("cache-dir")
	}
	if flags.Changed("records") {
		cfg.Records, _ = flags.GetString("records")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("configuration: %w", err)
	}
	return cfg, nil
}
