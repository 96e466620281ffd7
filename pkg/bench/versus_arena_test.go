package bench

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/selfplay"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

func TestMain(m *testing.M) {
	learn.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	os.Exit(m.Run())
}

type countingListener struct {
	DefaultListener
	mu       sync.Mutex
	games    int
	workers  int
	summary  VersusSummaryInfo
	maxMoves int
}

func (c *countingListener) OnFinishedGame(info VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games++
	c.maxMoves = max(c.maxMoves, len(info.Moves))
}

func (c *countingListener) OnFinishedWork(VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.workers++
}

func (c *countingListener) Summary(summary VersusSummaryInfo) {
	c.summary = summary
}

func trainedTrees(t *testing.T, games uint32) (*learn.KnowledgeTree, *learn.KnowledgeTree) {
	t.Helper()
	first, second := learn.NewKnowledgeTree(ttt.Cross), learn.NewKnowledgeTree(ttt.Circle)
	trainer, err := selfplay.NewTrainer(first, second, selfplay.WithLimits(selfplay.DefaultLimits().SetGames(games)))
	require.NoError(t, err)
	trainer.Train(context.Background())
	return first, second
}

func TestNewVersusArenaErrors(t *testing.T) {
	_, err := NewVersusArena(nil, NewRandomAgent(ttt.Circle))
	assert.ErrorIs(t, err, ErrNilAgent)

	_, err = NewVersusArena(NewRandomAgent(ttt.Cross), NewRandomAgent(ttt.Cross))
	assert.ErrorIs(t, err, ErrSamePlayer)
}

func TestRandomArena(t *testing.T) {
	arena, err := NewVersusArena(NewRandomAgent(ttt.Circle), NewRandomAgent(ttt.Cross))
	require.NoError(t, err)
	arena.Setup(101, 4)

	listener := &countingListener{}
	summary := arena.Run(listener)

	assert.Equal(t, 101, summary.TotalGames)
	assert.Equal(t, 101, listener.games)
	assert.Equal(t, 4, listener.workers)
	assert.Equal(t, summary, listener.summary)
	assert.Equal(t, summary.P1Wins+summary.P2Wins, summary.FirstToMoveWins+summary.SecondToMoveWins)
	// Player 1 plays circle, so it wins only as the second to move
	assert.Equal(t, summary.P1Wins, summary.SecondToMoveWins)
	assert.LessOrEqual(t, listener.maxMoves, 9)
	assert.Equal(t, "random-O", summary.P1Name)
}

// Keeps every game's moves, along with a copy made inside the callback
type movesListener struct {
	DefaultListener
	kept   [][]ttt.PosType
	copies [][]ttt.PosType
}

func (m *movesListener) OnFinishedGame(info VersusWorkerInfo) {
	m.kept = append(m.kept, info.Moves)
	m.copies = append(m.copies, append([]ttt.PosType(nil), info.Moves...))
}

func TestFinishedGameMovesKept(t *testing.T) {
	arena, err := NewVersusArena(NewRandomAgent(ttt.Cross), NewRandomAgent(ttt.Circle))
	require.NoError(t, err)
	arena.Setup(50, 1)

	listener := &movesListener{}
	arena.Run(listener)

	require.Len(t, listener.kept, 50)
	assert.Equal(t, listener.copies, listener.kept)
}

func TestTrainedAgentBeatsRandom(t *testing.T) {
	first, _ := trainedTrees(t, 50_000)
	trained := NewTreeAgent("trained", first)
	before := first.Size()

	arena, err := NewVersusArena(trained, NewRandomAgent(ttt.Circle))
	require.NoError(t, err)
	arena.Setup(400, 2)
	summary := arena.Run(nil)

	t.Logf("%+v", summary)
	assert.Equal(t, 400, summary.TotalGames)
	assert.Greater(t, summary.P1Wins, summary.P2Wins)
	assert.Greater(t, summary.P1Score, 0.5)

	// Workers play on clones, the original tree is untouched
	assert.Equal(t, before, first.Size())
}

func TestArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena, err := NewVersusArena(NewRandomAgent(ttt.Cross), NewRandomAgent(ttt.Circle))
	require.NoError(t, err)
	arena.WithContext(ctx).Setup(50, 2)

	summary := arena.Run(nil)
	assert.Zero(t, summary.TotalGames)
	assert.Zero(t, summary.P1Score)
}

func TestToAgentResult(t *testing.T) {
	assert.Equal(t, VersusDraw, toAgentResult(ttt.None, ttt.Cross))
	assert.Equal(t, VersusPl1Win, toAgentResult(ttt.Cross, ttt.Cross))
	assert.Equal(t, VersusPl2Win, toAgentResult(ttt.Circle, ttt.Cross))
}

type illegalAgent struct{ RandomAgent }

func (a *illegalAgent) Move(ttt.Board, learn.Rand) ttt.PosType { return ttt.PosIllegal }
func (a *illegalAgent) Clone() Agent                           { return a }

func TestIllegalMoveLoses(t *testing.T) {
	moves, winner := playGame(&illegalAgent{RandomAgent{player: ttt.Cross}}, NewRandomAgent(ttt.Circle), learn.NewRand(), nil)
	assert.Empty(t, moves)
	assert.Equal(t, ttt.Circle, winner)
}
