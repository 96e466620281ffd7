package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

// Always picks the first decision with a positive worth
type firstRand struct{}

func (firstRand) Intn(int) int {
	return 0
}

func newTestSession(t *testing.T, player ttt.PlayerType, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s, err := New(learn.NewKnowledgeTree(player), strings.NewReader(input), out,
		WithRand(firstRand{}), WithProfile(termenv.Ascii))
	require.NoError(t, err)
	return s, out
}

func TestNewNilTree(t *testing.T) {
	_, err := New(nil, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNilTree)
}

func TestHumanWinIsLearned(t *testing.T) {
	// X: A1, A2, B2, C3 wins on the diagonal
	// O: B1, then the forced blocks A3 and C2
	s, out := newTestSession(t, ttt.Circle, "0 0\n0 1\n1 1\n2 2\n")
	require.Equal(t, ttt.Cross, s.Human())

	result, err := s.PlayGame()
	require.NoError(t, err)
	assert.Equal(t, ResultHumanWon, result)
	assert.Contains(t, out.String(), "you won!")
	assert.Contains(t, out.String(), "XO.\nXXO\nO.X")

	node, ok := s.tree.Lookup(ttt.MustParseBoard("X../.../..."))
	require.True(t, ok)
	decision, ok := node.DecisionAt(ttt.B1)
	require.True(t, ok)
	// 100 - (7 + 50)
	assert.Equal(t, 43, decision.Worth)
	assert.Equal(t, 800, node.Sum())
	assert.Equal(t, 3, s.tree.Size())
}

func TestBadInputIsRepeated(t *testing.T) {
	s, out := newTestSession(t, ttt.Circle, "a 0 0\n0 0\n5 5\n0 1\n1 1\n2 2\n")

	result, err := s.PlayGame()
	require.NoError(t, err)
	assert.Equal(t, ResultHumanWon, result)
	assert.Equal(t, 1, strings.Count(out.String(), "bad input, try again: "))
	assert.Equal(t, 2, strings.Count(out.String(), "you cannot play there!"))
}

func TestComputerFirstDraw(t *testing.T) {
	// X: A1, B1, A3 (block), C2 (block), C3
	// O: B2, C1, A2, B3
	s, out := newTestSession(t, ttt.Cross, "1 1\n2 0\n0 1\n1 2\n")
	require.Equal(t, ttt.Cross, s.Computer())

	result, err := s.PlayGame()
	require.NoError(t, err)
	assert.Equal(t, ResultDraw, result)
	assert.Contains(t, out.String(), "it's a draw")
	assert.Contains(t, out.String(), "computer decision: {0, 0} 11%")

	// Draw is a success for the computer
	root := s.tree.Root()
	assert.Equal(t, 208, root.Decision(0).Worth)
	assert.Equal(t, 900, root.Sum())
	assert.Equal(t, 5, s.tree.Size())
}

func TestRunStopsOnAnswer(t *testing.T) {
	s, out := newTestSession(t, ttt.Circle, "0 0\n0 1\n1 1\n2 2\nn\n")

	require.NoError(t, s.Run())
	assert.Equal(t, 1, strings.Count(out.String(), "play again (y/n)? "))
}

func TestRunPlaysAgain(t *testing.T) {
	// Second game ends with the input
	s, out := newTestSession(t, ttt.Circle, "0 0\n0 1\n1 1\n2 2\ny\n0 0\n")

	require.NoError(t, s.Run())
	assert.Equal(t, 1, strings.Count(out.String(), "you won!"))
	assert.Equal(t, 6, strings.Count(out.String(), "your turn: "))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "computer won", ResultComputerWon.String())
	assert.Equal(t, "human won", ResultHumanWon.String())
	assert.Equal(t, "draw", ResultDraw.String())
}
