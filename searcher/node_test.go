package searcher

import (
	"relearn/game"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests a sequential UCT node over deterministic moves
- selection:
	- happy path: fully expanded node -> max UCB child, child state
	- edge case: terminal node -> same node, same state
- expansion:
	- happy path: expandable node -> next unexplored child in move order, child state
- backup:
	- happy path: outcome -> rewards from each mover's point of view, visits++ up to the root
*/

func TestNodeSelectOrExpand(t *testing.T) {
	g := game.TicTacToe()

	t.Run("expanding the next unexplored move", func(t *testing.T) {
		state := g.InitialState()
		root := newNode(nil, g, state)
		root.children = append(root.children, newNode(root, g, apply(t, g, 0)))

		child, childState, selected, err := root.selectOrExpand(g, state)

		require.NoError(t, err)
		require.False(t, selected, "Node should expand, not select")
		require.Len(t, root.children, 2, "Node should add one child")
		require.Same(t, root.children[1], child)
		require.Equal(t, apply(t, g, 1), childState, "Child state should follow the second move")
		require.Equal(t, game.First, child.mover, "X moved into the child")
		require.Len(t, child.moves, 8)
	})

	t.Run("selecting from a fully expanded node", func(t *testing.T) {
		state := apply(t, g, 0, 1, 2, 3, 4, 5, 7) // two empty cells left
		root := newNode(nil, g, state)
		require.Equal(t, []game.Move{6, 8}, root.moves)

		worse := &node{parent: root, rewards: 1, visits: 4}
		better := &node{parent: root, rewards: 3, visits: 4}
		root.children = []*node{worse, better}
		root.visits = 8

		child, childState, selected, err := root.selectOrExpand(g, state)

		require.NoError(t, err)
		require.True(t, selected, "Node should select")
		require.Same(t, better, child, "Node should select child with max UCB value")
		require.Equal(t, apply(t, g, 0, 1, 2, 3, 4, 5, 7, 8), childState)
		require.Equal(t, 8, root.visits, "Selection should not change stats")
	})

	t.Run("staying on a terminal node", func(t *testing.T) {
		state := apply(t, g, 0, 3, 1, 4, 2)
		leaf := newNode(nil, g, state)

		child, childState, selected, err := leaf.selectOrExpand(g, state)

		require.NoError(t, err)
		require.Same(t, leaf, child)
		require.Equal(t, state, childState)
		require.False(t, selected)
	})
}

func TestNodeBackup(t *testing.T) {
	root := &node{mover: game.Second}
	child := &node{parent: root, mover: game.First}
	leaf := &node{parent: child, mover: game.Second}

	backup(leaf, game.Won(game.First))

	require.Equal(t, 0.0, leaf.rewards, "Second player lost")
	require.Equal(t, 1.0, child.rewards, "First player won")
	require.Equal(t, 0.0, root.rewards)
	for _, n := range []*node{root, child, leaf} {
		require.Equal(t, 1, n.visits)
	}

	backup(leaf, game.Drawn)
	require.Equal(t, 0.5, leaf.rewards)
	require.Equal(t, 1.5, child.rewards)
	require.Equal(t, 2, root.visits)
}

func TestNodeBestMove(t *testing.T) {
	t.Run("most visited child", func(t *testing.T) {
		n := &node{
			moves:    []game.Move{3, 5, 7},
			children: []*node{{visits: 2}, {visits: 9}, {visits: 4}},
		}
		require.Equal(t, game.Move(5), n.bestMove())
	})

	t.Run("first child on ties", func(t *testing.T) {
		n := &node{
			moves:    []game.Move{3, 5},
			children: []*node{{visits: 4}, {visits: 4}},
		}
		require.Equal(t, game.Move(3), n.bestMove())
	})

	t.Run("panics without children", func(t *testing.T) {
		require.Panics(t, func() { (&node{}).bestMove() })
	})
}
