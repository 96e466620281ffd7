package bench

import (
	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

// Anything that can play one side of the game
type Agent interface {
	Name() string
	Player() ttt.PlayerType
	// Choose a move on given board, it's always this agent's turn
	Move(board ttt.Board, r learn.Rand) ttt.PosType
	// Independent copy, safe to use from another goroutine
	Clone() Agent
}

// Plays with the learned probabilities of a knowledge tree, without learning
type TreeAgent struct {
	name string
	tree *learn.KnowledgeTree
}

func NewTreeAgent(name string, tree *learn.KnowledgeTree) *TreeAgent {
	return &TreeAgent{name: name, tree: tree}
}

func (a *TreeAgent) Name() string {
	return a.name
}

func (a *TreeAgent) Player() ttt.PlayerType {
	return a.tree.Player()
}

func (a *TreeAgent) Move(board ttt.Board, r learn.Rand) ttt.PosType {
	return a.tree.GetOrCreate(board).MakeMove(r).Pos
}

func (a *TreeAgent) Clone() Agent {
	return &TreeAgent{name: a.name, tree: a.tree.Clone()}
}

// Plays uniformly random legal moves
type RandomAgent struct {
	player ttt.PlayerType
}

func NewRandomAgent(player ttt.PlayerType) *RandomAgent {
	return &RandomAgent{player: player}
}

func (a *RandomAgent) Name() string {
	return "random-" + a.player.String()
}

func (a *RandomAgent) Player() ttt.PlayerType {
	return a.player
}

func (a *RandomAgent) Move(board ttt.Board, r learn.Rand) ttt.PosType {
	moves := board.EmptyCells()
	return moves.Moves[r.Intn(int(moves.Size))]
}

func (a *RandomAgent) Clone() Agent {
	return &RandomAgent{player: a.player}
}
