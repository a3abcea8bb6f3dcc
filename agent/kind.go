package agent

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"relearn/game"
	"relearn/searcher"
	"strings"
)

// Kind names an agent implementation.
type Kind string

const (
	RandomKind Kind = "random"
	MinMaxKind Kind = "minmax"
	HumanKind  Kind = "human"
	MCTSKind   Kind = "mcts"
)

var Kinds = []Kind{RandomKind, MinMaxKind, HumanKind, MCTSKind}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownAgent, name, Kinds)
}

// Options carries what the different kinds need to be built. Fields a kind does not use
// are ignored.
type Options struct {
	Seed uint64

	// Policy is a previously learned min-max policy. When nil, a min-max agent learns one.
	Policy        *searcher.Policy
	SolverOptions []searcher.Option

	// Episodes is the search budget per move of an MCTS agent.
	Episodes int

	// Input is read by human agents. Build it once per terminal and share it.
	Input *bufio.Scanner
	Out   io.Writer
}

// Learnable reports whether the kind precomputes a policy.
func (k Kind) Learnable() bool {
	return k == MinMaxKind
}

// Learner returns the unlearned form of a learnable kind.
func (k Kind) Learner(options Options) (Learner, error) {
	if !k.Learnable() {
		return nil, fmt.Errorf("%w: %s", ErrNotLearnable, k)
	}
	return NewMinMaxLearner(options.SolverOptions...), nil
}

// New builds an agent of kind k bound to g.
func (k Kind) New(g game.Game, options Options) (Agent, error) {
	switch k {
	case RandomKind:
		return NewRandom(g, options.Seed), nil
	case MinMaxKind:
		if options.Policy == nil {
			return NewMinMaxLearner(options.SolverOptions...).Learn(g)
		}
		if options.Policy.Game != g.Name() {
			return nil, fmt.Errorf("%w: policy was learned for %s, not %s",
				ErrUnlearnedState, options.Policy.Game, g.Name())
		}
		return NewMinMax(g, options.Policy), nil
	case MCTSKind:
		return NewMCTS(g, options.Seed, options.Episodes), nil
	case HumanKind:
		in, out := options.Input, options.Out
		if in == nil {
			in = bufio.NewScanner(os.Stdin)
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHuman(g, in, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, string(k))
	}
}
