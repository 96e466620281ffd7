package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

func TestNewKnowledgeTree(t *testing.T) {
	first := NewKnowledgeTree(ttt.Cross)
	require.NotNil(t, first.Root())
	assert.Equal(t, 1, first.Size())
	assert.Equal(t, 9, first.Root().Len())
	assert.Equal(t, ttt.NewBoard(), first.Root().Board())
	assert.Equal(t, ttt.Cross, first.Root().Player())

	second := NewKnowledgeTree(ttt.Circle)
	assert.Nil(t, second.Root())
	assert.Zero(t, second.Size())
	assert.Equal(t, ttt.Circle, second.Player())
}

func TestGetOrCreate(t *testing.T) {
	tree := NewKnowledgeTree(ttt.Circle)
	board := ttt.MustParseBoard("X../.../...")

	node := tree.GetOrCreate(board)
	require.NotNil(t, node)
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, ttt.Circle, node.Player())

	// Keys are compared by value, not by identity
	same := ttt.NewBoard()
	same.Play(ttt.Cross, ttt.A1)
	assert.Same(t, node, tree.GetOrCreate(same))
	assert.Equal(t, 1, tree.Size())

	found, ok := tree.Lookup(same)
	assert.True(t, ok)
	assert.Same(t, node, found)

	_, ok = tree.Lookup(ttt.MustParseBoard(".X./.../..."))
	assert.False(t, ok)

	tree.GetOrCreate(ttt.MustParseBoard(".X./.../..."))
	assert.Equal(t, 2, tree.Size())
}

func TestWalkOrder(t *testing.T) {
	tree := NewKnowledgeTree(ttt.Circle)
	notations := []string{"..X/.../...", "X../.../...", ".../.X./...", ".X./.../..."}
	for _, n := range notations {
		tree.GetOrCreate(ttt.MustParseBoard(n))
	}

	var visited []ttt.Board
	tree.Walk(func(node *TurnNode) bool {
		visited = append(visited, node.Board())
		return true
	})

	require.Len(t, visited, 4)
	for i := 1; i < len(visited); i++ {
		assert.Equal(t, -1, ttt.Compare(visited[i-1], visited[i]))
	}

	count := 0
	tree.Walk(func(*TurnNode) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestKnowledgeTreeClone(t *testing.T) {
	tree := NewKnowledgeTree(ttt.Cross)
	tree.GetOrCreate(ttt.MustParseBoard("XO./.../..."))
	clone := tree.Clone()

	require.Equal(t, tree.Size(), clone.Size())
	require.NotNil(t, clone.Root())
	assert.NotSame(t, tree.Root(), clone.Root())

	node, ok := clone.Lookup(ttt.NewBoard())
	require.True(t, ok)
	assert.Same(t, clone.Root(), node)

	tree.Root().MakeMove(&scriptedRand{})
	tree.Root().MarkGood()
	assert.Equal(t, InitialWorth, clone.Root().Decision(0).Worth)
	assert.Greater(t, tree.Root().Decision(0).Worth, InitialWorth)
}
