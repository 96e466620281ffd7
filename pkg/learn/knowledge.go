package learn

import (
	"slices"

	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

// Everything one agent has learned: turn nodes keyed by board configuration.
// Nodes are created lazily, the first time the agent has to move from a board.
type KnowledgeTree struct {
	player ttt.PlayerType
	root   *TurnNode
	nodes  map[ttt.Board]*TurnNode
}

// Create a fresh tree for given player. The player that moves first (Cross)
// gets a root for the empty board, the other one has no root - its first node
// depends on the opponent's move.
func NewKnowledgeTree(player ttt.PlayerType) *KnowledgeTree {
	tree := &KnowledgeTree{
		player: player,
		nodes:  make(map[ttt.Board]*TurnNode, 256),
	}

	if player == ttt.Cross {
		tree.root = tree.GetOrCreate(ttt.NewBoard())
	}
	return tree
}

// Get the node for given board configuration, creating and inserting it if it's not there
func (tree *KnowledgeTree) GetOrCreate(board ttt.Board) *TurnNode {
	node, ok := tree.nodes[board]
	if !ok {
		node = NewTurnNode(board, tree.player)
		tree.nodes[board] = node
	}
	return node
}

func (tree *KnowledgeTree) Lookup(board ttt.Board) (*TurnNode, bool) {
	node, ok := tree.nodes[board]
	return node, ok
}

// Node for the empty board, nil if this tree's player moves second
func (tree *KnowledgeTree) Root() *TurnNode {
	return tree.root
}

func (tree *KnowledgeTree) Player() ttt.PlayerType {
	return tree.player
}

// Number of nodes in the tree
func (tree *KnowledgeTree) Size() int {
	return len(tree.nodes)
}

// Visit every node in lexicographic board order, stops when fn returns false
func (tree *KnowledgeTree) Walk(fn func(*TurnNode) bool) {
	boards := make([]ttt.Board, 0, len(tree.nodes))
	for board := range tree.nodes {
		boards = append(boards, board)
	}
	slices.SortFunc(boards, ttt.Compare)

	for _, board := range boards {
		if !fn(tree.nodes[board]) {
			return
		}
	}
}

// Deep copy of the tree, sharing no nodes with the original
func (tree *KnowledgeTree) Clone() *KnowledgeTree {
	clone := &KnowledgeTree{
		player: tree.player,
		nodes:  make(map[ttt.Board]*TurnNode, len(tree.nodes)),
	}
	for board, node := range tree.nodes {
		clone.nodes[board] = node.Clone()
	}
	if tree.root != nil {
		clone.root = clone.nodes[tree.root.board]
	}
	return clone
}
