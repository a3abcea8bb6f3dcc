package cli

import (
	"bufio"
	"errors"
	"fmt"
	"relearn/agent"
	"relearn/config"
	"relearn/engine"
	"relearn/game"
	"relearn/metrics"
	"relearn/searcher"
	"relearn/stats"
	"relearn/store"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// relearn play
func Play(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play agent1 agent2 [game-count]",
		Short: "Play a match between two agents",
		Args:  cobra.RangeArgs(2, 3),
		Long: heredoc.Doc(`play runs game-count games between agent1 and agent2 and
			prints the results from the point of view of agent1. The agents
			are random, minmax, mcts and human.

			By default the agents take turns to move first. A minmax agent
			uses the cached policy of the game, learning it first when the
			cache has none.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Everything is validated before the first game starts.
			kinds := make([]agent.Kind, 2)
			for i, name := range args[:2] {
				kind, err := agent.ParseKind(name)
				if err != nil {
					return err
				}
				kinds[i] = kind
			}

			count := cfg.GameCount
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil || n < 1 {
					return fmt.Errorf("%w: game count must be a positive integer, got %q",
						config.ErrInvalidConfig, args[2])
				}
				count = n
			}

			g, err := cfg.NewGame()
			if err != nil {
				return err
			}

			seeds := make([]uint64, 2)
			seeds[0], seeds[1] = cfg.Seeds()

			// Both agents may be human on the same terminal.
			input := bufio.NewScanner(cmd.InOrStdin())

			var policy *searcher.Policy
			agents := make([]agent.Agent, 2)
			for i, kind := range kinds {
				options := agent.Options{
					Seed:          seeds[i],
					SolverOptions: cfg.SolverOptions(),
					Episodes:      cfg.Episodes,
					Input:         input,
					Out:           cmd.OutOrStdout(),
				}
				if kind == agent.MinMaxKind {
					if policy == nil {
						policy, err = cachedPolicy(cfg, g)
						if err != nil {
							return err
						}
					}
					options.Policy = policy
				}

				agents[i], err = kind.New(g, options)
				if err != nil {
					return err
				}
			}

			simulatorOptions := []engine.Option{
				engine.WithGameCount(count),
				engine.WithStartingPolicy(cfg.StartingPolicy()),
				engine.WithMaxPlies(cfg.MaxPlies),
			}
			if cfg.Records != "" {
				simulatorOptions = append(simulatorOptions, engine.WithMetrics(metrics.NewCollector()))
			}

			simulator := engine.NewSimulator(g, agents[0], agents[1], simulatorOptions...)
			result, err := simulator.Run()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			log.Info().Msgf("%s %s", agents[0].Name(), stats.Elo(result.Wins, result.Draws, result.Losses))

			if cfg.Records != "" {
				return writeRecords(cfg.Records, simulator.Records())
			}
			return nil
		},
	}
}

// cachedPolicy loads the min-max policy of g, learning it when the cache has none.
func cachedPolicy(cfg *config.Config, g game.Game) (*searcher.Policy, error) {
	policy, err := store.New(cfg.CacheDir).Load(g.Name())
	if err == nil {
		return policy, nil
	}
	if !errors.Is(err, store.ErrPolicyNotCached) {
		return nil, err
	}

	log.Warn().Msgf("no cached policy for %s, learning it now", g.Name())
	return searcher.NewSolver(g, cfg.SolverOptions()...).Learn()
}

func writeRecords(dir string, games []metrics.GameRecord) error {
	w, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords(games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(metrics.MoveRecordsOf(games)); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}
