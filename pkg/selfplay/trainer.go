package selfplay

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

var (
	ErrNilTree    = errors.New("selfplay: knowledge tree is nil")
	ErrSamePlayer = errors.New("selfplay: both knowledge trees belong to the same player")
)

// One side of the self-play, the current node is set before each of its moves
type agent struct {
	tree    *learn.KnowledgeTree
	current *learn.TurnNode
}

// Plays games between two knowledge trees, every game outcome is
// propagated back to all of the nodes visited in that game
type Trainer struct {
	first    agent
	second   agent
	limiter  *Limiter
	listener StatsListener
	rand     learn.Rand
	log      *zap.Logger
	stats    Stats
}

type Option func(*Trainer)

func WithRand(r learn.Rand) Option {
	return func(t *Trainer) {
		if r != nil {
			t.rand = r
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(t *Trainer) {
		if log != nil {
			t.log = log
		}
	}
}

func WithLimits(limits *Limits) Option {
	return func(t *Trainer) {
		if limits != nil {
			t.limiter.SetLimits(limits)
		}
	}
}

func WithListener(listener StatsListener) Option {
	return func(t *Trainer) {
		t.listener = listener
	}
}

// Create new trainer, 'first' tree's player makes the first move of every game
func NewTrainer(first, second *learn.KnowledgeTree, opts ...Option) (*Trainer, error) {
	if first == nil || second == nil {
		return nil, ErrNilTree
	}
	if first.Player() == second.Player() {
		return nil, ErrSamePlayer
	}

	trainer := &Trainer{
		first:    agent{tree: first},
		second:   agent{tree: second},
		limiter:  NewLimiter(),
		listener: NewStatsListener(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(trainer)
	}
	if trainer.rand == nil {
		trainer.rand = learn.NewRand()
	}
	return trainer, nil
}

func (t *Trainer) First() *learn.KnowledgeTree {
	return t.first.tree
}

func (t *Trainer) Second() *learn.KnowledgeTree {
	return t.second.tree
}

func (t *Trainer) SetLimits(limits *Limits) {
	t.limiter.SetLimits(limits)
}

func (t *Trainer) Limits() *Limits {
	return t.limiter.Limits()
}

func (t *Trainer) SetListener(listener StatsListener) {
	t.listener = listener
}

// Play one game from the empty board and learn from its outcome
func (t *Trainer) PlayGame() Outcome {
	return t.playFrom(ttt.NewBoard(), &t.first, &t.second)
}

// Play the rest of the game from given board, 'active' moves first
func (t *Trainer) playFrom(board ttt.Board, active, inactive *agent) Outcome {
	var outcome Outcome
	active.current = active.tree.GetOrCreate(board)
	t.play(&board, active, inactive, &outcome)
	return outcome
}

// Active agent makes a move, then the roles are swapped until the game ends.
// Returns the player, which is credited with the result: the one that made
// the final move (either winning or filling the board), or if the result
// came back up, the one it was credited to. Nodes of the credited player are
// marked good, the others bad.
func (t *Trainer) play(board *ttt.Board, active, inactive *agent, outcome *Outcome) ttt.PlayerType {
	node := active.current
	mark := active.tree.Player()
	decision := node.MakeMove(t.rand)
	board.Play(mark, decision.Pos)
	outcome.Plies++

	// Base case: the game has ended (won or drawn)
	if state := board.Evaluate(mark); state != ttt.Incomplete {
		if state == ttt.Won {
			outcome.Winner = mark
		} else {
			outcome.Draw = true
		}
		node.MarkGood()
		return mark
	}

	inactive.current = inactive.tree.GetOrCreate(*board)
	if t.play(board, inactive, active, outcome) == mark {
		node.MarkGood()
		return mark
	}
	node.MarkBad()
	return mark.Opponent()
}

func (t *Trainer) currentStats() Stats {
	stats := t.stats
	stats.TimeMs = int(t.limiter.Elapsed())
	stats.Gps = uint32(int64(stats.Games) * 1000 / int64(max(stats.TimeMs, 1)))
	stats.FirstSize = t.first.tree.Size()
	stats.SecondSize = t.second.tree.Size()
	stats.StopReason = t.limiter.StopReason()
	return stats
}

// Play games until the limits are reached or the context is cancelled
func (t *Trainer) Train(ctx context.Context) Stats {
	t.limiter.SetContext(ctx)
	t.limiter.Reset()
	t.stats = Stats{}

	log := t.log.With(zap.String("run", uuid.NewString()))
	log.Info("training started",
		zap.Stringer("first", t.first.tree.Player()),
		zap.Stringer("second", t.second.tree.Player()),
		zap.Stringer("limits", t.limiter.Limits()),
	)

	for t.limiter.Ok(uint32(t.stats.Games)) {
		t.stats.add(t.PlayGame())

		if t.listener.gameDue(t.stats.Games) {
			stats := t.currentStats()
			log.Debug("training progress", zap.Int("games", stats.Games), zap.Uint32("gps", stats.Gps))
			t.listener.invokeGame(stats)
		}
	}

	t.limiter.EvaluateStopReason(uint32(t.stats.Games))
	stats := t.currentStats()
	log.Info("training stopped",
		zap.Int("games", stats.Games),
		zap.Int("crossWins", stats.CrossWins),
		zap.Int("circleWins", stats.CircleWins),
		zap.Int("draws", stats.Draws),
		zap.Int("timeMs", stats.TimeMs),
		zap.Int("firstNodes", stats.FirstSize),
		zap.Int("secondNodes", stats.SecondSize),
		zap.Stringer("reason", stats.StopReason),
	)
	t.listener.invokeStop(stats)
	return stats
}
