// Package timers abstracts wall-clock scheduling behind a cancellable
// handle so components can be driven by a fake clock in tests.
package timers

import "time"

// Timer is the handle returned by AfterFunc. Stop cancels the pending
// callback; stopping an already-fired or already-stopped timer is a no-op.
type Timer interface {
	Stop()
}

// Ticker delivers repeated callbacks until stopped.
type Ticker interface {
	Stop()
}

// Clock schedules work against a time source.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
	TickFunc(d time.Duration, f func()) Ticker
}

// System returns a Clock backed by the runtime clock.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return &systemTimer{t: time.AfterFunc(d, f)}
}

func (systemClock) TickFunc(d time.Duration, f func()) Ticker {
	t := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				f()
			case <-done:
				return
			}
		}
	}()
	return &systemTicker{t: t, done: done}
}

type systemTimer struct {
	t *time.Timer
}

func (s *systemTimer) Stop() { s.t.Stop() }

type systemTicker struct {
	t       *time.Ticker
	done    chan struct{}
	stopped bool
}

func (s *systemTicker) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.t.Stop()
	close(s.done)
}
