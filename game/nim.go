package game

import "fmt"

// Pile is a position of a Nim game.
type Pile struct {
	Remaining int
	Turn      Player
}

func (p Pile) Player() Player {
	return p.Turn
}

func (p Pile) Hash() StateHash {
	return StateHash(p.Remaining)<<1 | StateHash(p.Turn)
}

func (p Pile) String() string {
	return fmt.Sprintf("%d left, %s player to move", p.Remaining, p.Turn)
}

// Nim is the single pile subtraction game: players alternately take between one and
// MaxTake objects and whoever takes the last one wins. The first player can force a
// win exactly when the pile is not a multiple of MaxTake+1.
type Nim struct {
	pile    int
	maxTake int
}

func NewNim(pile, maxTake int) (*Nim, error) {
	if pile < 1 {
		return nil, fmt.Errorf("nim: pile must hold at least one object, got %d", pile)
	}
	if maxTake < 1 {
		return nil, fmt.Errorf("nim: players must be able to take at least one object, got %d", maxTake)
	}
	return &Nim{pile: pile, maxTake: maxTake}, nil
}

func (g *Nim) Name() string {
	return fmt.Sprintf("nim-%d-%d", g.pile, g.maxTake)
}

func (g *Nim) InitialState() State {
	return Pile{Remaining: g.pile, Turn: First}
}

func (g *Nim) LegalMoves(s State) []Move {
	p := g.position(s)
	n := min(g.maxTake, p.Remaining)
	moves := make([]Move, 0, n)
	for take := 1; take <= n; take++ {
		moves = append(moves, Move(take))
	}
	return moves
}

func (g *Nim) Apply(s State, move Move) (State, error) {
	p := g.position(s)
	if p.Remaining == 0 {
		return nil, fmt.Errorf("%w: take %d, pile is empty", ErrIllegalMove, move)
	}
	if move < 1 || int(move) > g.maxTake || int(move) > p.Remaining {
		return nil, fmt.Errorf("%w: cannot take %d of %d", ErrIllegalMove, move, p.Remaining)
	}
	return Pile{Remaining: p.Remaining - int(move), Turn: p.Turn.Opponent()}, nil
}

func (g *Nim) Outcome(s State) Outcome {
	p := g.position(s)
	if p.Remaining == 0 {
		// The player who emptied the pile moved last.
		return Won(p.Turn.Opponent())
	}
	return InProgress
}

func (g *Nim) StateBound() int {
	return 2 * (g.pile + 1)
}

func (g *Nim) MaxPlies() int {
	return g.pile
}

func (g *Nim) Owns(s State) bool {
	p, ok := s.(Pile)
	return ok && p.Remaining >= 0 && p.Remaining <= g.pile
}

func (g *Nim) position(s State) Pile {
	p, ok := s.(Pile)
	if !ok {
		panic("unexpected state type")
	}
	return p
}
