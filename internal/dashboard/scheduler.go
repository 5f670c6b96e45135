package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/config"
)

// SchedulerState is the refresh scheduler's lifecycle state.
type SchedulerState string

const (
	// StateIdle means the gate evaluated closed at start; the scheduler
	// stays idle for the rest of the process lifetime.
	StateIdle SchedulerState = "idle"
	// StateArmed means the gate evaluated open and the recurring refresh
	// is running.
	StateArmed SchedulerState = "armed"
)

// Scheduler re-runs the refreshable cycles on a fixed interval, but only
// when started during market hours: local weekday Monday through Friday
// with the hour in [OpenHour, CloseHour). The gate is evaluated exactly
// once, at Start; a portal started outside the window never arms, even if
// wall-clock time later crosses into it. Ticks fire regardless of whether
// the previous pass finished, so overlapping in-flight fetches are normal
// and the snapshot store's last write wins.
type Scheduler struct {
	interval  time.Duration
	openHour  int
	closeHour int
	clock     func() time.Time
	refresh   func(ctx context.Context)
	logger    *common.Logger

	mu       sync.Mutex
	state    SchedulerState
	started  bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a scheduler that invokes refresh on each tick.
func NewScheduler(cfg config.RefreshConfig, refresh func(ctx context.Context), logger *common.Logger) *Scheduler {
	return &Scheduler{
		interval:  time.Duration(cfg.IntervalMinutes) * time.Minute,
		openHour:  cfg.OpenHour,
		closeHour: cfg.CloseHour,
		clock:     time.Now,
		refresh:   refresh,
		logger:    logger,
		state:     StateIdle,
		stopChan:  make(chan struct{}),
	}
}

// SetClock replaces the wall clock. Tests use this to pin the gate
// evaluation to a known instant. Must be called before Start.
func (s *Scheduler) SetClock(clock func() time.Time) {
	s.clock = clock
}

// SetInterval overrides the tick interval. Must be called before Start.
func (s *Scheduler) SetInterval(d time.Duration) {
	s.interval = d
}

// Start evaluates the gate once and, if open, arms the recurring refresh.
// Calling Start more than once has no effect.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	now := s.clock()
	if !s.gateOpen(now) {
		if s.logger != nil {
			s.logger.Info().
				Str("weekday", now.Weekday().String()).
				Int("hour", now.Hour()).
				Msg("outside market hours at startup, auto-refresh stays idle")
		}
		return
	}

	s.state = StateArmed
	if s.logger != nil {
		s.logger.Info().
			Str("interval", s.interval.String()).
			Msg("market hours at startup, auto-refresh armed")
	}

	go s.loop()
}

// Stop halts the recurring refresh. Idempotent; safe on an idle scheduler.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// State reports whether the scheduler armed at start.
func (s *Scheduler) State() SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// gateOpen reports whether t falls inside the refresh window.
func (s *Scheduler) gateOpen(t time.Time) bool {
	wd := t.Weekday()
	if wd < time.Monday || wd > time.Friday {
		return false
	}
	return t.Hour() >= s.openHour && t.Hour() < s.closeHour
}

// loop fires refresh passes until stopped. Each pass runs in its own
// goroutine so a slow pass never delays the next tick.
func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			go s.refresh(context.Background())
		}
	}
}
