package game

import "fmt"

// Player is one of the two seats of a game. First moves first.
type Player int

const (
	First Player = iota
	Second
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "?"
	}
}

type Status int

const (
	Ongoing Status = iota
	Win
	Draw
)

// Outcome classifies a state. Winner is only set when Status is Win.
type Outcome struct {
	Status Status
	Winner Player
}

func Won(p Player) Outcome {
	return Outcome{Status: Win, Winner: p}
}

var (
	Drawn      = Outcome{Status: Draw}
	InProgress = Outcome{Status: Ongoing}
)

func (o Outcome) IsTerminal() bool {
	return o.Status != Ongoing
}

// Value scores a terminal outcome from player's point of view: +1 for a win,
// 0 for a draw and -1 for a loss.
func (o Outcome) Value(player Player) int8 {
	switch {
	case o.Status == Draw:
		return 0
	case o.Status == Win && o.Winner == player:
		return 1
	case o.Status == Win:
		return -1
	default:
		panic("value of an ongoing outcome")
	}
}

func (o Outcome) String() string {
	switch o.Status {
	case Win:
		return fmt.Sprintf("%s player wins", o.Winner)
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
