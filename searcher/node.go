package searcher

import (
	"math"
	"relearn/game"
)

// node is a position of the search tree. Its statistics are kept from the point of view
// of mover, the player whose move led to it, so a parent picks the child best for itself.
type node struct {
	parent   *node
	mover    game.Player
	moves    []game.Move // children[i] is reached by moves[i]
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, g game.Game, state game.State) *node {
	return &node{
		parent: parent,
		mover:  state.Player().Opponent(),
		moves:  g.LegalMoves(state),
	}
}

// selectOrExpand descends one level. It adds the next unexplored child of an expandable
// node, picks the best child of a fully expanded one and stays on a terminal node.
func (n *node) selectOrExpand(g game.Game, state game.State) (*node, game.State, bool, error) {
	if len(n.moves) == 0 { // Terminal node
		return n, state, false, nil
	}

	if len(n.moves) > len(n.children) { // Expandable node
		next, err := g.Apply(state, n.moves[len(n.children)])
		if err != nil {
			return nil, nil, false, err
		}
		child := newNode(n, g, next)
		n.children = append(n.children, child)
		return child, next, false, nil
	}

	// Fully expanded node
	ith := n.pickChild()
	next, err := g.Apply(state, n.moves[ith])
	if err != nil {
		return nil, nil, false, err
	}
	return n.children[ith], next, true, nil
}

func (n *node) pickChild() int {
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(CSquared, float64(n.visits))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := policy.evaluate(child.rewards, float64(child.visits))
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *node) backup(outcome game.Outcome) *node {
	n.rewards += reward(outcome.Value(n.mover))
	n.visits++
	return n.parent
}

// bestMove returns the most visited move, the first one on ties.
func (n *node) bestMove() game.Move {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := n.children[0].visits
	for i, child := range n.children[1:] {
		if child.visits > maxVisits {
			maxVisits = child.visits
			bestIndex = i + 1
		}
	}
	return n.moves[bestIndex]
}
