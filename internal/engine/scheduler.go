// Package engine drives a snake session in real time. A Runner goroutine
// owns the session and a Scheduler, applies queued input, and steps the
// simulation whenever the scheduler's ticker fires.
package engine

import "time"

// Ticker is the subset of *time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Scheduler owns at most one active ticker. It is not safe for concurrent
// use; the Runner goroutine is its only caller.
type Scheduler struct {
	newTicker  TickerFunc
	ticker     Ticker
	interval   time.Duration
	generation uint64
}

// NewScheduler creates a stopped scheduler. A nil newTicker uses real
// tickers.
func NewScheduler(newTicker TickerFunc) *Scheduler {
	if newTicker == nil {
		newTicker = NewRealTicker
	}
	return &Scheduler{newTicker: newTicker}
}

// Start begins ticking every d. Calling Start on an active scheduler
// replaces the ticker, like Reschedule.
func (s *Scheduler) Start(d time.Duration) {
	s.Reschedule(d)
}

// Reschedule stops the current ticker, if any, and installs a new one
// firing every d.
func (s *Scheduler) Reschedule(d time.Duration) {
	s.Stop()
	s.ticker = s.newTicker(d)
	s.interval = d
	s.generation++
}

// Stop halts ticking. It is safe to call on a stopped scheduler.
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// C returns the active ticker's channel, or nil when stopped. Receiving
// from a nil channel blocks forever, so a select case on C is disabled
// while the scheduler is stopped.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}

// Active reports whether a ticker is installed.
func (s *Scheduler) Active() bool { return s.ticker != nil }

// Interval returns the period of the last installed ticker.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Generation counts installed tickers.
func (s *Scheduler) Generation() uint64 { return s.generation }
