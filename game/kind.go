package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGame = errors.New("unknown game")

// Kind names one of the games the harness knows how to build.
type Kind string

const (
	TicTacToeKind Kind = "tictactoe"
	MNK34Kind     Kind = "mnk34"
	MNK44Kind     Kind = "mnk44"
	NimKind       Kind = "nim"
)

var Kinds = []Kind{TicTacToeKind, MNK34Kind, MNK44Kind, NimKind}

func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds {
		if strings.EqualFold(name, string(kind)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w %q (known: %s)", ErrUnknownGame, name, joinKinds())
}

// New builds the game. 4x4 boards are registered even though they are too large for
// exhaustive search, random play still works on them.
func (k Kind) New() (Game, error) {
	switch k {
	case TicTacToeKind:
		return TicTacToe(), nil
	case MNK34Kind:
		return NewMNK(3, 4, 3)
	case MNK44Kind:
		return NewMNK(4, 4, 3)
	case NimKind:
		return NewNim(10, 3)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, string(k))
	}
}

func joinKinds() string {
	names := make([]string, len(Kinds))
	for i, kind := range Kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}
