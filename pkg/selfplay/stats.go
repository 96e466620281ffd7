package selfplay

import (
	"fmt"

	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

// Result of a single self-play game
type Outcome struct {
	Winner ttt.PlayerType // None on a draw
	Draw   bool
	Plies  int
}

// Training statistics, counted since the last Train call
type Stats struct {
	Games      int
	CrossWins  int
	CircleWins int
	Draws      int
	TimeMs     int
	Gps        uint32 // games per second
	FirstSize  int    // nodes in the first player's tree
	SecondSize int
	StopReason StopReason
}

func (s *Stats) add(outcome Outcome) {
	s.Games++
	switch {
	case outcome.Draw:
		s.Draws++
	case outcome.Winner == ttt.Cross:
		s.CrossWins++
	case outcome.Winner == ttt.Circle:
		s.CircleWins++
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("games %d x-wins %d o-wins %d draws %d time %dms gps %d nodes %d/%d stop %s",
		s.Games, s.CrossWins, s.CircleWins, s.Draws, s.TimeMs, s.Gps, s.FirstSize, s.SecondSize, s.StopReason)
}
