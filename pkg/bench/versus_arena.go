package bench

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of games between two agents,
for example a trained knowledge tree against a random player.
*/

var (
	ErrNilAgent   = errors.New("bench: agent is nil")
	ErrSamePlayer = errors.New("bench: both agents play the same side")
)

type VersusArena struct {
	VersusArenaStats
	Player1  Agent
	Player2  Agent
	NGames   uint
	NThreads uint
	log      *zap.Logger
	wg       sync.WaitGroup
	ctx      context.Context
}

func NewVersusArena(p1, p2 Agent) (*VersusArena, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilAgent
	}
	if p1.Player() == p2.Player() {
		return nil, ErrSamePlayer
	}

	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		log:      zap.NewNop(),
		ctx:      context.Background(),
	}, nil
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) WithLogger(log *zap.Logger) *VersusArena {
	if log != nil {
		va.log = log
	}
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

// Play all of the games and wait for the workers, returns the summary
func (va *VersusArena) Run(listener ListenerLike) VersusSummaryInfo {
	if listener == nil {
		listener = DefaultListener{}
	}
	va.reset()
	log := va.log.With(zap.String("arena", uuid.NewString()))
	log.Info("arena started",
		zap.String("player1", va.Player1.Name()),
		zap.String("player2", va.Player2.Name()),
		zap.Uint("games", va.NGames),
		zap.Uint("workers", va.NThreads),
	)

	// Equally distributed work between the workers
	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	var listenerMu sync.Mutex
	for i := range va.NThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Always use a clone, agents are not safe for concurrent use
		go va.worker(int(i), int(nGames+delta), va.Player1.Clone(), va.Player2.Clone(), listener, &listenerMu)
	}
	va.wg.Wait()

	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		P1Score:          va.P1Score(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
	log.Info("arena finished",
		zap.Int("games", summary.TotalGames),
		zap.Int("p1Wins", summary.P1Wins),
		zap.Int("p2Wins", summary.P2Wins),
		zap.Int("draws", summary.Draws),
	)
	listener.Summary(summary)
	return summary
}

func (va *VersusArena) worker(id, nGames int, p1, p2 Agent, listener ListenerLike, listenerMu *sync.Mutex) {
	defer va.wg.Done()

	r := learn.NewRand()
	var p1Wins, p2Wins, draws int
	moves := make([]ttt.PosType, 0, 9)

Loop:
	for i := range nGames {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		var winner ttt.PlayerType
		moves, winner = playGame(p1, p2, r, moves[:0])

		result := toAgentResult(winner, p1.Player())
		va.record(result, winner)
		switch result {
		case VersusDraw:
			draws++
		case VersusPl1Win:
			p1Wins++
		default:
			p2Wins++
		}

		listenerMu.Lock()
		listener.OnFinishedGame(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			Moves:         slices.Clone(moves),
			P1Wins:        p1Wins,
			P2Wins:        p2Wins,
			Draws:         draws,
		})
		listenerMu.Unlock()
	}

	listenerMu.Lock()
	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: p1Wins + p2Wins + draws,
		P1Wins:        p1Wins,
		P2Wins:        p2Wins,
		Draws:         draws,
	})
	listenerMu.Unlock()
}

// Play a single game from the empty board, Cross moves first.
// Returns the moves played and the winner (None on a draw).
func playGame(p1, p2 Agent, r learn.Rand, moves []ttt.PosType) ([]ttt.PosType, ttt.PlayerType) {
	board := ttt.NewBoard()
	current, other := p1, p2
	if current.Player() != ttt.Cross {
		current, other = other, current
	}

	for {
		mark := current.Player()
		pos := current.Move(board, r)
		if board.WouldMove(mark, pos) == ttt.Bad {
			// Illegal move loses the game
			return moves, other.Player()
		}
		board.Play(mark, pos)
		moves = append(moves, pos)

		switch board.Evaluate(mark) {
		case ttt.Won:
			return moves, mark
		case ttt.Complete:
			return moves, ttt.None
		}
		current, other = other, current
	}
}
