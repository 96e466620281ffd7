package cmd

import (
	"runtime"
	"sync/atomic"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/selfplay"
)

// Command line configuration, filled by the flags
type Config struct {
	Games         uint32
	Movetime      int // ms, 0 disables it
	Seed          int64
	Verbose       bool
	ComputerFirst bool
	NoColor       bool
	ArenaGames    uint
	Workers       uint
}

func DefaultConfig() Config {
	return Config{
		Games:      selfplay.DefaultGamesLimit,
		ArenaGames: 10_000,
		Workers:    uint(runtime.NumCPU()),
	}
}

var config = DefaultConfig()

func (c Config) Limits() *selfplay.Limits {
	movetime := c.Movetime
	if movetime <= 0 {
		movetime = selfplay.DefaultMovetimeLimit
	}
	return selfplay.DefaultLimits().SetGames(c.Games).SetMovetime(movetime)
}

// Fixed seed makes the runs reproducible, every new generator gets the next seed
func (c Config) ApplySeed() {
	if c.Seed == 0 {
		return
	}
	next := c.Seed
	learn.SetSeedGeneratorFn(func() int64 {
		return atomic.AddInt64(&next, 1) - 1
	})
}
