package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// Counters shared by the arena workers
type VersusArenaStats struct {
	p1Wins    atomic.Uint32
	p2Wins    atomic.Uint32
	draws     atomic.Uint32
	crossWins atomic.Uint32 // the side that moves first
	ringWins  atomic.Uint32
}

func (vas *VersusArenaStats) record(result VersusMatchResult, winner ttt.PlayerType) {
	switch result {
	case VersusDraw:
		vas.draws.Add(1)
	case VersusPl1Win:
		vas.p1Wins.Add(1)
	default:
		vas.p2Wins.Add(1)
	}

	switch winner {
	case ttt.Cross:
		vas.crossWins.Add(1)
	case ttt.Circle:
		vas.ringWins.Add(1)
	}
}

func (vas *VersusArenaStats) reset() {
	vas.p1Wins.Store(0)
	vas.p2Wins.Store(0)
	vas.draws.Store(0)
	vas.crossWins.Store(0)
	vas.ringWins.Store(0)
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.crossWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.ringWins.Load())
}

// Player 1 score in [0, 1], a draw counts as half a win
func (vas *VersusArenaStats) P1Score() float64 {
	total := vas.Total()
	if total == 0 {
		return 0
	}
	return (float64(vas.P1Wins()) + float64(vas.Draws())/2) / float64(total)
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Moves         []ttt.PosType
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int     `json:"total_games"`
	P1Wins           int     `json:"player1_wins"`
	P2Wins           int     `json:"player2_wins"`
	FirstToMoveWins  int     `json:"first_to_move_wins"`
	SecondToMoveWins int     `json:"second_to_move_wins"`
	Draws            int     `json:"draws"`
	P1Score          float64 `json:"player1_score"`
	Workers          int     `json:"workers"`
	P1Name           string  `json:"player1_name"`
	P2Name           string  `json:"player2_name"`
}

// maps a game winner to which agent won, p1 is the agent that played 'p1Mark'
func toAgentResult(winner ttt.PlayerType, p1Mark ttt.PlayerType) VersusMatchResult {
	switch winner {
	case ttt.None:
		return VersusDraw
	case p1Mark:
		return VersusPl1Win
	}
	return VersusPl2Win
}
