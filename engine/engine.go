package engine

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultGameCount is the number of trials of a run when none is configured.
const DefaultGameCount = 1000

var ErrTrialDidNotTerminate = errors.New("trial did not terminate")

// StartingPolicy decides which agent takes the first seat of each trial.
type StartingPolicy int

const (
	// Alternating seats the first agent first in odd trials and the second agent first in
	// even trials.
	Alternating StartingPolicy = iota
	// Fixed always seats the first agent first.
	Fixed
)

func ParseStartingPolicy(name string) (StartingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alternating":
		return Alternating, nil
	case "fixed":
		return Fixed, nil
	default:
		return 0, fmt.Errorf("unknown starting policy %q (expected alternating or fixed)", name)
	}
}

func (p StartingPolicy) String() string {
	switch p {
	case Alternating:
		return "alternating"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("StartingPolicy(%d)", int(p))
	}
}

// MatchResult counts the outcomes of a run from the first agent's point of view.
type MatchResult struct {
	Wins        int
	Draws       int
	Losses      int
	GamesPlayed int
}

func (r MatchResult) WinRate() float64 {
	return r.rate(r.Wins)
}

func (r MatchResult) DrawRate() float64 {
	return r.rate(r.Draws)
}

func (r MatchResult) LossRate() float64 {
	return r.rate(r.Losses)
}

func (r MatchResult) rate(n int) float64 {
	if r.GamesPlayed == 0 {
		return 0
	}
	return float64(n) / float64(r.GamesPlayed)
}

func (r MatchResult) String() string {
	return fmt.Sprintf("Win: %.2f%%, Draw: %.2f%%, Loss: %.2f%%, Game Count: %d",
		100*r.WinRate(), 100*r.DrawRate(), 100*r.LossRate(), r.GamesPlayed)
}
