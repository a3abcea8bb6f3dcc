package cli

import (
	"fmt"
	"relearn/agent"
	"relearn/config"
	"relearn/searcher"
	"relearn/store"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const spinnerCharSet = 14

// policyAgent is implemented by agents playing a learned policy.
type policyAgent interface {
	agent.Agent
	Policy() *searcher.Policy
}

// relearn learn
func Learn(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "learn agent",
		Short: "Learn the policy of an agent",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`learn runs the offline learning phase of the given agent for
			the configured game and stores the result in the policy cache,
			so that later runs of play can start without learning again.

			Only the minmax agent learns. Games too large to be solved
			exhaustively are rejected before any work is done.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := agent.ParseKind(args[0])
			if err != nil {
				return err
			}
			learner, err := kind.Learner(agent.Options{SolverOptions: cfg.SolverOptions()})
			if err != nil {
				return err
			}

			g, err := cfg.NewGame()
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond,
				spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = fmt.Sprintf(" learning %s...", g.Name())
			s.Start() // Start the ~working~ spinner.
			learned, err := learner.Learn(g)
			s.Stop() // Stop the ~working~ spinner.
			if err != nil {
				return err
			}

			learnedPolicy, ok := learned.(policyAgent)
			if !ok {
				return fmt.Errorf("%s agent has no policy to store", kind)
			}
			policy := learnedPolicy.Policy()

			path, err := store.New(cfg.CacheDir).Save(policy)
			if err != nil {
				return err
			}

			log.Info().Str("path", path).Msgf("stored %s policy", kind)
			fmt.Fprintf(cmd.OutOrStdout(), "Learned %d states of %s\n", policy.Len(), policy.Game)
			return nil
		},
	}
}
