package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

var ErrNilTree = errors.New("session: knowledge tree is nil")

type Result int

const (
	ResultComputerWon Result = iota
	ResultHumanWon
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultComputerWon:
		return "computer won"
	case ResultHumanWon:
		return "human won"
	}
	return "draw"
}

// Human versus trained computer, every game's outcome is learned by
// the computer's knowledge tree
type Session struct {
	tree    *learn.KnowledgeTree
	scanner *bufio.Scanner
	out     *termenv.Output
	rand    learn.Rand
	log     *zap.Logger
	outOpts []termenv.OutputOption
	// nodes visited by the computer in the current game
	visited []*learn.TurnNode
}

type Option func(*Session)

func WithRand(r learn.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rand = r
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// Force the color profile of the output, termenv.Ascii disables colors
func WithProfile(profile termenv.Profile) Option {
	return func(s *Session) {
		s.outOpts = append(s.outOpts, termenv.WithProfile(profile))
	}
}

// Create new session, the computer plays with the tree's player. If that's
// the first player (Cross), the computer makes the first move.
func New(tree *learn.KnowledgeTree, in io.Reader, out io.Writer, opts ...Option) (*Session, error) {
	if tree == nil {
		return nil, ErrNilTree
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	s := &Session{
		tree:    tree,
		scanner: scanner,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.out = termenv.NewOutput(out, s.outOpts...)
	if s.rand == nil {
		s.rand = learn.NewRand()
	}
	return s, nil
}

func (s *Session) Computer() ttt.PlayerType {
	return s.tree.Player()
}

func (s *Session) Human() ttt.PlayerType {
	return s.tree.Player().Opponent()
}

// Next whitespace separated token, io.EOF when the input ends
func (s *Session) token() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("session: read input: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *Session) readInt() (int, error) {
	for {
		tok, err := s.token()
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(tok); err == nil {
			return v, nil
		}
		s.printf("bad input, try again: ")
	}
}

// Ask the human for a move until it's a legal one
func (s *Session) humanMove(board ttt.Board) (ttt.PosType, error) {
	for {
		s.printf("your turn: ")
		col, err := s.readInt()
		if err != nil {
			return ttt.PosIllegal, err
		}
		row, err := s.readInt()
		if err != nil {
			return ttt.PosIllegal, err
		}

		pos := ttt.PosFromColRow(col, row)
		if board.WouldMove(s.Human(), pos) == ttt.Bad {
			s.printf("you cannot play there!\n")
			continue
		}
		return pos, nil
	}
}

func (s *Session) computerMove(board ttt.Board) ttt.PosType {
	node := s.tree.GetOrCreate(board)
	s.visited = append(s.visited, node)
	decision := node.MakeMove(s.rand)

	col, row := decision.Pos.ColRow()
	s.printf("%s\n", node)
	s.printf("computer decision: {%d, %d} %d%%\n", col, row, node.Percent(node.LastMove()))
	s.log.Debug("computer moved",
		zap.Int("col", col), zap.Int("row", row),
		zap.Int("worth", decision.Worth), zap.Int("sum", node.Sum()),
	)
	return decision.Pos
}

// Play a single game, then the computer learns from the outcome
func (s *Session) PlayGame() (Result, error) {
	s.visited = s.visited[:0]
	board := ttt.NewBoard()
	player := ttt.Cross
	result := ResultDraw

	for {
		var pos ttt.PosType
		if player == s.Computer() {
			pos = s.computerMove(board)
		} else {
			var err error
			if pos, err = s.humanMove(board); err != nil {
				return ResultDraw, err
			}
		}
		board.Play(player, pos)

		state := board.Evaluate(player)
		if state == ttt.Complete {
			s.printf("it's a draw\n")
			break
		}
		if state == ttt.Won {
			if player == s.Computer() {
				s.printf("you lost!\n")
				result = ResultComputerWon
			} else {
				s.printf("you won!\n")
				result = ResultHumanWon
			}
			break
		}

		if player == s.Computer() {
			s.printBoard(board)
			s.printf("\n--------------------\n")
		}
		player = player.Opponent()
	}

	s.printBoard(board)
	s.printf("\n--------------------\n")
	s.learn(result)
	return result, nil
}

// Draw counts as a success for the computer
func (s *Session) learn(result Result) {
	good := result != ResultHumanWon
	for _, node := range s.visited {
		if good {
			node.MarkGood()
		} else {
			node.MarkBad()
		}
	}
	s.log.Debug("game learned",
		zap.Stringer("result", result),
		zap.Int("nodes", len(s.visited)),
		zap.Int("treeSize", s.tree.Size()),
	)
	s.visited = s.visited[:0]
}

// Ask whether to play again, anything but 'y' ends the session
func (s *Session) playAgain() (bool, error) {
	s.printf("play again (y/n)? ")
	tok, err := s.token()
	if err != nil {
		return false, err
	}
	return tok[0] == 'y', nil
}

// Play games until the human declines or the input ends
func (s *Session) Run() error {
	for {
		if _, err := s.PlayGame(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		again, err := s.playAgain()
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
