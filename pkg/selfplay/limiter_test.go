package selfplay

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	if !limiter.Ok(0) || !limiter.Ok(DefaultGamesLimit-1) {
		t.Error("Default limiter should allow games below the default limit")
	}
	if limiter.Ok(DefaultGamesLimit) {
		t.Errorf("Games=%d: ok=true, want=false", DefaultGamesLimit)
	}

	limiter.SetLimits(DefaultLimits().SetGames(100))
	limiter.Reset()
	if ok := limiter.Ok(101); ok {
		t.Errorf(">Games=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if ok := limiter.Ok(99); !ok {
		t.Errorf("<Games=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetInfinite(true))
	limiter.Reset()
	if ok := limiter.Ok(DefaultGamesLimit * 2); !ok {
		t.Errorf("Infinite: ok=%v, want=%v", ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(50))
	limiter.Reset()
	time.Sleep(time.Millisecond * 51)
	if ok := limiter.Ok(1); ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterStopReason(t *testing.T) {
	limiter := NewLimiter()
	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	limiter.SetLimits(DefaultLimits().SetGames(10))
	limiter.Reset()

	if limiter.StopReason() != StopNone {
		t.Errorf("StopReason after reset: %s, want None", limiter.StopReason())
	}

	cancel()
	if limiter.Ok(1) {
		t.Error("Cancelled context should stop the training")
	}

	limiter.EvaluateStopReason(10)
	if want := StopInterrupt | StopGames; limiter.StopReason() != want {
		t.Errorf("StopReason: %s, want %s", limiter.StopReason(), want)
	}
}

func TestStopReasonTyped(t *testing.T) {
	for _, reason := range []any{StopNone, StopInterrupt, StopMovetime, StopGames} {
		if _, ok := reason.(StopReason); !ok {
			t.Errorf("%v is %T, want StopReason", reason, reason)
		}
	}
}
