package selfplay

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Games    uint32
	Movetime int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	// A million self-play games gives a strong opening for both sides
	DefaultGamesLimit    uint32 = 1_000_000
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Games:    DefaultGamesLimit,
		Movetime: DefaultMovetimeLimit,
	}
}

// Set the number of self-play games to train with
func (l *Limits) SetGames(games uint32) *Limits {
	l.Games = games
	l.Infinite = false
	return l
}

// Set the maximum training time in milliseconds, negative value disables it
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}

// Ignore the game limit, train until the context is cancelled or time runs out
func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}
