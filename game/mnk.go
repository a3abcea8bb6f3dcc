package game

import (
	"fmt"
	"strings"
)

// MaxCells bounds the board size so a position still fits a base-3 StateHash.
const MaxCells = 25

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	Cross
	Nought
)

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return " "
	}
}

// markOf returns the mark placed by player. The first player plays crosses.
func markOf(player Player) Mark {
	if player == First {
		return Cross
	}
	return Nought
}

func ownerOf(mark Mark) Player {
	if mark == Cross {
		return First
	}
	return Second
}

// Board is a position of an m,n,k game. Cells are indexed row by row.
type Board struct {
	cells  [MaxCells]Mark
	rows   int
	cols   int
	placed int
}

func (b Board) Player() Player {
	if b.placed%2 == 0 {
		return First
	}
	return Second
}

func (b Board) Hash() StateHash {
	var h StateHash
	for i := b.size() - 1; i >= 0; i-- {
		h = h*3 + StateHash(b.cells[i])
	}
	return h
}

func (b Board) At(cell int) Mark {
	return b.cells[cell]
}

func (b Board) Rows() int { return b.rows }
func (b Board) Cols() int { return b.cols }

func (b Board) size() int {
	return b.rows * b.cols
}

func (b Board) String() string {
	var sb strings.Builder
	sep := strings.Repeat("---+", b.cols-1) + "---\n"
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteString(sep)
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			fmt.Fprintf(&sb, " %s ", b.cells[r*b.cols+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MNK is the m,n,k game: two players alternately place marks on an m by n board and
// the first to get k marks in a row, column or diagonal wins.
type MNK struct {
	rows  int
	cols  int
	k     int
	lines [][]int
}

func NewMNK(rows, cols, k int) (*MNK, error) {
	if rows < 1 || cols < 1 || rows*cols > MaxCells {
		return nil, fmt.Errorf("mnk: board %dx%d must have between 1 and %d cells", rows, cols, MaxCells)
	}
	if k < 1 || (k > rows && k > cols) {
		return nil, fmt.Errorf("mnk: cannot place %d in a row on a %dx%d board", k, rows, cols)
	}

	g := &MNK{rows: rows, cols: cols, k: k}
	directions := [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, d := range directions {
				endR, endC := r+d[0]*(k-1), c+d[1]*(k-1)
				if endR < 0 || endR >= rows || endC < 0 || endC >= cols {
					continue
				}
				line := make([]int, k)
				for i := range line {
					line[i] = (r+d[0]*i)*cols + c + d[1]*i
				}
				g.lines = append(g.lines, line)
			}
		}
	}

	// A single cell is a line in every direction, keep one copy.
	if k == 1 {
		g.lines = g.lines[:0]
		for cell := 0; cell < rows*cols; cell++ {
			g.lines = append(g.lines, []int{cell})
		}
	}
	return g, nil
}

// TicTacToe returns the 3,3,3 game.
func TicTacToe() *MNK {
	g, err := NewMNK(3, 3, 3)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *MNK) Name() string {
	return fmt.Sprintf("mnk-%dx%d-%d", g.rows, g.cols, g.k)
}

func (g *MNK) InitialState() State {
	return Board{rows: g.rows, cols: g.cols}
}

func (g *MNK) LegalMoves(s State) []Move {
	b := g.board(s)
	if g.Outcome(b).IsTerminal() {
		return nil
	}

	moves := make([]Move, 0, b.size()-b.placed)
	for cell := 0; cell < b.size(); cell++ {
		if b.cells[cell] == Empty {
			moves = append(moves, Move(cell))
		}
	}
	return moves
}

func (g *MNK) Apply(s State, move Move) (State, error) {
	b := g.board(s)
	if g.Outcome(b).IsTerminal() {
		return nil, fmt.Errorf("%w: cell %d, game is over", ErrIllegalMove, move)
	}
	if move < 0 || int(move) >= b.size() {
		return nil, fmt.Errorf("%w: cell %d is off the board", ErrIllegalMove, move)
	}
	if b.cells[move] != Empty {
		return nil, fmt.Errorf("%w: cell %d is taken", ErrIllegalMove, move)
	}

	next := b
	next.cells[move] = markOf(b.Player())
	next.placed++
	return next, nil
}

func (g *MNK) Outcome(s State) Outcome {
	b := g.board(s)
	for _, line := range g.lines {
		mark := b.cells[line[0]]
		if mark == Empty {
			continue
		}

		complete := true
		for _, cell := range line[1:] {
			if b.cells[cell] != mark {
				complete = false
				break
			}
		}
		if complete {
			return Won(ownerOf(mark))
		}
	}

	if b.placed == b.size() {
		return Drawn
	}
	return InProgress
}

func (g *MNK) StateBound() int {
	bound := 1
	for i := 0; i < g.rows*g.cols; i++ {
		bound *= 3
	}
	return bound
}

func (g *MNK) MaxPlies() int {
	return g.rows * g.cols
}

func (g *MNK) Owns(s State) bool {
	b, ok := s.(Board)
	return ok && b.rows == g.rows && b.cols == g.cols
}

func (g *MNK) board(s State) Board {
	b, ok := s.(Board)
	if !ok {
		panic("unexpected state type")
	}
	if b.rows != g.rows || b.cols != g.cols {
		panic(fmt.Sprintf("board %dx%d does not belong to %s", b.rows, b.cols, g.Name()))
	}
	return b
}
