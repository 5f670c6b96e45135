package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/config"
)

func refreshCfg() config.RefreshConfig {
	return config.RefreshConfig{IntervalMinutes: 5, OpenHour: 9, CloseHour: 17}
}

// fixedClock returns a clock pinned to t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Local times on known weekdays. 2025-06-02 is a Monday, 2025-06-07 a
// Saturday.
var (
	monday10   = time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	monday9    = time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local)
	monday859  = time.Date(2025, 6, 2, 8, 59, 0, 0, time.Local)
	monday17   = time.Date(2025, 6, 2, 17, 0, 0, 0, time.Local)
	friday1659 = time.Date(2025, 6, 6, 16, 59, 0, 0, time.Local)
	saturday10 = time.Date(2025, 6, 7, 10, 0, 0, 0, time.Local)
	sunday12   = time.Date(2025, 6, 8, 12, 0, 0, 0, time.Local)
)

func newTestScheduler(now time.Time, refresh func(ctx context.Context)) *Scheduler {
	if refresh == nil {
		refresh = func(ctx context.Context) {}
	}
	s := NewScheduler(refreshCfg(), refresh, common.NewSilentLogger())
	s.SetClock(fixedClock(now))
	return s
}

func TestScheduler_GateOpenCases(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want SchedulerState
	}{
		{"monday mid-morning", monday10, StateArmed},
		{"monday open boundary", monday9, StateArmed},
		{"monday before open", monday859, StateIdle},
		{"monday close boundary", monday17, StateIdle},
		{"friday before close", friday1659, StateArmed},
		{"saturday", saturday10, StateIdle},
		{"sunday", sunday12, StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler(tt.now, nil)
			defer s.Stop()

			s.Start()
			if got := s.State(); got != tt.want {
				t.Errorf("State() at %s = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestScheduler_GateEvaluatedOnce(t *testing.T) {
	// Started on Saturday: idle. Advancing the clock into market hours and
	// calling Start again must not arm — the gate is checked exactly once
	// per process lifetime.
	now := saturday10
	s := NewScheduler(refreshCfg(), func(ctx context.Context) {}, common.NewSilentLogger())
	s.SetClock(func() time.Time { return now })
	defer s.Stop()

	s.Start()
	if s.State() != StateIdle {
		t.Fatal("expected idle on saturday start")
	}

	now = monday10
	s.Start()
	if s.State() != StateIdle {
		t.Error("expected scheduler to stay idle after crossing into the window")
	}
}

func TestScheduler_ArmedTicksInvokeRefresh(t *testing.T) {
	var count int64
	s := newTestScheduler(monday10, func(ctx context.Context) {
		atomic.AddInt64(&count, 1)
	})
	s.SetInterval(10 * time.Millisecond)
	defer s.Stop()

	s.Start()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt64(&count) < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 refresh passes, got %d", atomic.LoadInt64(&count))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestScheduler_IdleNeverTicks(t *testing.T) {
	var count int64
	s := newTestScheduler(sunday12, func(ctx context.Context) {
		atomic.AddInt64(&count, 1)
	})
	s.SetInterval(5 * time.Millisecond)
	defer s.Stop()

	s.Start()
	time.Sleep(50 * time.Millisecond)

	if got := atomic.LoadInt64(&count); got != 0 {
		t.Errorf("expected no refresh passes while idle, got %d", got)
	}
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	var count int64
	s := newTestScheduler(monday10, func(ctx context.Context) {
		atomic.AddInt64(&count, 1)
	})
	s.SetInterval(10 * time.Millisecond)

	s.Start()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt64(&count) == 0 {
		select {
		case <-deadline:
			t.Fatal("expected at least one refresh pass before stop")
		case <-time.After(5 * time.Millisecond):
		}
	}

	s.Stop()
	settled := atomic.LoadInt64(&count)
	time.Sleep(50 * time.Millisecond)

	// One in-flight tick may still land after Stop; the count must not
	// keep growing.
	if got := atomic.LoadInt64(&count); got > settled+1 {
		t.Errorf("expected ticks to stop, count grew from %d to %d", settled, got)
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := newTestScheduler(saturday10, nil)
	s.Start()
	s.Stop()
	s.Stop()
}

func TestScheduler_TicksDoNotWaitForSlowPasses(t *testing.T) {
	var started int64
	block := make(chan struct{})
	s := newTestScheduler(monday10, func(ctx context.Context) {
		atomic.AddInt64(&started, 1)
		<-block
	})
	s.SetInterval(10 * time.Millisecond)
	defer func() {
		close(block)
		s.Stop()
	}()

	s.Start()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt64(&started) < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected overlapping passes, got %d started", atomic.LoadInt64(&started))
		case <-time.After(5 * time.Millisecond):
		}
	}
}
