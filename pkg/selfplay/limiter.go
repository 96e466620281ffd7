package selfplay

import (
	"context"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // context cancellation
	StopMovetime  StopReason = 2 // time limit reached
	StopGames     StopReason = 4 // game limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopGames, "Games"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type timer struct {
	start    time.Time
	duration time.Duration
}

func (t *timer) IsEnd() bool {
	return t.duration > 0 && time.Since(t.start) >= t.duration
}

// Elapsed milliseconds, at least 1
func (t *timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}

// In milliseconds, negative value disables the timer
func (t *timer) Movetime(movetime int) {
	if movetime < 0 {
		t.duration = -1
	} else {
		t.duration = time.Duration(movetime) * time.Millisecond
	}
}

// Decides when the training loop should stop
type Limiter struct {
	limits *Limits
	timer  timer
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  timer{start: time.Now(), duration: -1},
		ctx:    context.Background(),
	}
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Start measuring time and clear the stop reason, called before training
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.start = time.Now()
	l.reason = StopNone
}

// Elapsed time in ms since the last Reset
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.timer.Deltatime())
}

func (l *Limiter) interrupted() bool {
	select {
	case <-l.ctx.Done():
		return true
	default:
		return false
	}
}

func (l *Limiter) mask(games uint32) StopReason {
	reason := StopNone
	if l.interrupted() {
		reason |= StopInterrupt
	}
	if l.timer.IsEnd() {
		reason |= StopMovetime
	}
	if !l.limits.Infinite && l.limits.Games <= games {
		reason |= StopGames
	}
	return reason
}

// Whether the training can continue after 'games' played games
func (l *Limiter) Ok(games uint32) bool {
	return l.mask(games) == StopNone
}

// Evaluate and store the stop reason, called once after the training ends
func (l *Limiter) EvaluateStopReason(games uint32) {
	l.reason = l.mask(games)
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}
