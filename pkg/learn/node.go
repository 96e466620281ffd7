package learn

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

// Value of lastMove before any move was made
const NoMove = -1

// Learned policy at one board configuration, it's always 'player' to move.
// sum is fixed at creation, the total worth of the decisions never drops below it.
type TurnNode struct {
	board     ttt.Board
	player    ttt.PlayerType
	decisions []Decision
	sum       int
	lastMove  int
}

// Create a new node for given board, with 'player' to move.
// Every empty cell gets InitialWorth, then if there is a winning move for 'player',
// or a move blocking opponent's win, it becomes certain (all the other moves get 0 worth).
func NewTurnNode(board ttt.Board, player ttt.PlayerType) *TurnNode {
	moves := board.EmptyCells()
	node := &TurnNode{
		board:     board,
		player:    player,
		decisions: make([]Decision, 0, moves.Size),
		lastMove:  NoMove,
	}

	for _, pos := range moves.Slice() {
		node.decisions = append(node.decisions, NewDecision(pos, InitialWorth))
		node.sum += InitialWorth
	}

	if forced := node.forcedMove(); forced != NoMove {
		for i := range node.decisions {
			node.decisions[i].Worth = 0
		}
		node.decisions[forced].Worth = node.sum
	}

	return node
}

// Index of the last winning move, or if there is none, of the first move
// blocking opponent's win
func (node *TurnNode) forcedMove() int {
	forced := NoMove
	opponent := node.player.Opponent()
	for i := range node.decisions {
		pos := node.decisions[i].Pos
		if node.board.WouldMove(node.player, pos) == ttt.Win {
			forced = i
		} else if forced == NoMove && node.board.WouldMove(opponent, pos) == ttt.Win {
			forced = i
		}
	}
	return forced
}

// Randomly pick a decision, the worth of each is its unnormalized probability
func (node *TurnNode) MakeMove(r Rand) Decision {
	if node.sum <= 0 {
		panic(fmt.Sprintf("[learn] MakeMove: node has no worth to choose from (sum=%d, decisions=%d)\n%s",
			node.sum, len(node.decisions), node.board))
	}

	target := r.Intn(node.sum) + 1
	total := 0
	for i := range node.decisions {
		total += node.decisions[i].Worth
		if target <= total {
			node.lastMove = i
			return node.decisions[i]
		}
	}

	// sum is out of sync with decisions
	panic(fmt.Sprintf("[learn] MakeMove: sum=%d exceeds total worth %d", node.sum, total))
}

func (node *TurnNode) mustHaveMove(op string) {
	if node.lastMove < 0 || node.lastMove >= len(node.decisions) {
		panic(fmt.Sprintf("[learn] %s: called before any MakeMove", op))
	}
}

// The last move contributed to a win (or draw), so increase its probability.
// The chosen decision gets the whole reward up front, clamped to sum, then the
// same amount is taken from the other decisions in a round-robin way, one at a
// time. Taking stops early once decisions at 0 were met n-1 times in total,
// so the total worth may end up above sum (never below it).
func (node *TurnNode) MarkGood() {
	node.mustHaveMove("MarkGood")

	n := len(node.decisions)
	take := (n - 1) + GoodReward
	chosen := &node.decisions[node.lastMove]
	chosen.Worth += take
	if chosen.Worth > node.sum || chosen.Worth < 0 {
		chosen.Worth = node.sum
	}

	for i, zeros := 0, 1; zeros < n && take > 0; i = (i + 1) % n {
		if i == node.lastMove {
			continue
		}
		if node.decisions[i].Worth <= 0 {
			zeros++
		} else {
			node.decisions[i].Worth--
			take--
		}
	}
}

// The last move contributed to a loss, so decrease its probability,
// the lost worth is spread evenly (round-robin) across the other decisions.
// A node with a single decision is left unchanged.
func (node *TurnNode) MarkBad() {
	node.mustHaveMove("MarkBad")

	n := len(node.decisions)
	if n <= 1 {
		return
	}

	chosen := &node.decisions[node.lastMove]
	give := min((n-1)+BadPenalty, chosen.Worth)
	chosen.Worth -= give

	for i := 0; give > 0; i = (i + 1) % n {
		if i == node.lastMove {
			continue
		}
		node.decisions[i].Worth++
		give--
	}
}

// Board configuration, for which this node decides
func (node *TurnNode) Board() ttt.Board {
	return node.board
}

// The player to move
func (node *TurnNode) Player() ttt.PlayerType {
	return node.player
}

// Copy of the decisions, in ascending position order
func (node *TurnNode) Decisions() []Decision {
	decisions := make([]Decision, len(node.decisions))
	copy(decisions, node.decisions)
	return decisions
}

// Get decision by index
func (node *TurnNode) Decision(i int) Decision {
	return node.decisions[i]
}

// Get decision by position on the board
func (node *TurnNode) DecisionAt(pos ttt.PosType) (Decision, bool) {
	for i := range node.decisions {
		if node.decisions[i].Pos == pos {
			return node.decisions[i], true
		}
	}
	return Decision{}, false
}

func (node *TurnNode) Len() int {
	return len(node.decisions)
}

// Total worth of the decisions at creation, the range of MakeMove's draw
func (node *TurnNode) Sum() int {
	return node.sum
}

// Index of the last chosen decision, NoMove if none was made
func (node *TurnNode) LastMove() int {
	return node.lastMove
}

// Selection probability of the i-th decision, in percents
func (node *TurnNode) Percent(i int) int {
	if node.sum <= 0 {
		return 0
	}
	return int(float64(node.decisions[i].Worth) / float64(node.sum) * 100)
}

// Deep copy of the node
func (node *TurnNode) Clone() *TurnNode {
	clone := *node
	clone.decisions = node.Decisions()
	return &clone
}

// Lists the decisions as '{col,row}: worth', one per line
func (node *TurnNode) String() string {
	if len(node.decisions) == 0 {
		return "NO CONTEXT"
	}

	builder := strings.Builder{}
	for i := range node.decisions {
		col, row := node.decisions[i].Pos.ColRow()
		if i > 0 {
			builder.WriteByte('\n')
		}
		fmt.Fprintf(&builder, "{%d,%d}: %d", col, row, node.decisions[i].Worth)
	}
	return builder.String()
}
