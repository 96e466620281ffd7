package selfplay

// Listener function callback, will receive current training statistics
type ListenerFunc func(Stats)

type StatsListener struct {
	// called every N finished games
	onGame ListenerFunc
	nGames int

	// called once, when the training stops
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nGames: 1}
}

// Attach on finished game callback, called every N games (see SetGameInterval)
func (listener *StatsListener) OnGame(onGame ListenerFunc) *StatsListener {
	listener.onGame = onGame
	return listener
}

func (listener *StatsListener) SetGameInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nGames = n
	return listener
}

// Attach 'on training end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) gameDue(games int) bool {
	return listener.onGame != nil && games%max(listener.nGames, 1) == 0
}

func (listener *StatsListener) invokeGame(stats Stats) {
	if listener.gameDue(stats.Games) {
		listener.onGame(stats)
	}
}

func (listener *StatsListener) invokeStop(stats Stats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
