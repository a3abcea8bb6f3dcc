package agent

import (
	"bufio"
	"fmt"
	"io"
	"relearn/game"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/exp/slices"
)

// Human asks a person for moves. It prints the position and the available moves to out
// and reads one move per line from in, asking again until the entry is legal. Humans
// sharing a terminal must share in, a scanner reads ahead of the line it returns.
type Human struct {
	game game.Game
	in   *bufio.Scanner
	w    io.Writer
	out  *termenv.Output
}

func NewHuman(g game.Game, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{
		game: g,
		in:   in,
		w:    out,
		out:  termenv.NewOutput(out),
	}
}

func (a *Human) Name() string {
	return string(HumanKind)
}

func (a *Human) SelectMove(state game.State) (game.Move, error) {
	moves := a.game.LegalMoves(state)
	if len(moves) == 0 {
		return game.NoMove, fmt.Errorf("%w: position is terminal\n%s", ErrNoLegalMove, state)
	}

	for {
		fmt.Fprint(a.w, a.render(state))
		fmt.Fprintf(a.w, "%s player to move. Available moves: %v\n", state.Player(), moves)

		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.NoMove, fmt.Errorf("read move: %w", err)
			}
			return game.NoMove, fmt.Errorf("read move: %w", io.ErrUnexpectedEOF)
		}

		entry := strings.TrimSpace(a.in.Text())
		n, err := strconv.Atoi(entry)
		if err == nil && slices.Contains(moves, game.Move(n)) {
			return game.Move(n), nil
		}

		warning := a.out.String(fmt.Sprintf("%q is not an available move", entry)).Foreground(a.out.Color("1"))
		fmt.Fprintln(a.w, warning.String())
	}
}

// render draws boards with coloured marks and the index of every free cell, other
// positions use their own String.
func (a *Human) render(state game.State) string {
	b, ok := state.(game.Board)
	if !ok {
		return state.String() + "\n"
	}

	var sb strings.Builder
	sep := strings.Repeat("---+", b.Cols()-1) + "---\n"
	for r := 0; r < b.Rows(); r++ {
		if r > 0 {
			sb.WriteString(sep)
		}
		for c := 0; c < b.Cols(); c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			cell := r*b.Cols() + c
			switch mark := b.At(cell); mark {
			case game.Cross:
				sb.WriteString(" " + a.out.String(mark.String()).Foreground(a.out.Color("4")).Bold().String() + " ")
			case game.Nought:
				sb.WriteString(" " + a.out.String(mark.String()).Foreground(a.out.Color("3")).Bold().String() + " ")
			default:
				sb.WriteString(a.out.String(fmt.Sprintf("%2d ", cell)).Faint().String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
