// Package breath runs the fixed-duration guided breathing exercise: a
// one-second tick cycling inhale/hold/exhale phases, capped at sixty
// seconds.
package breath

import (
	"sync"
	"time"

	"tableflip.dev/hush/pkg/timers"
)

// Phase is the current breathing instruction.
type Phase string

const (
	Inhale Phase = "inhale"
	Hold   Phase = "hold"
	Exhale Phase = "exhale"
)

// Label returns the spoken instruction for the phase.
func (p Phase) Label() string {
	switch p {
	case Hold:
		return "hold..."
	case Exhale:
		return "breathe out..."
	default:
		return "breathe in..."
	}
}

// SessionSeconds caps a session; reaching it auto-stops with a
// completion event.
const SessionSeconds = 60

// PhaseAt maps elapsed seconds onto the 8-second cycle: four seconds
// inhale, two hold, two exhale.
func PhaseAt(elapsed int) Phase {
	switch cycle := elapsed % 8; {
	case cycle < 4:
		return Inhale
	case cycle < 6:
		return Hold
	default:
		return Exhale
	}
}

// Observer receives session events. Fields may be left nil.
type Observer struct {
	OnPhase func(p Phase, elapsed int)
	OnStop  func(completed bool)
}

// Session is the breathing timer. Toggle has start/stop semantics:
// starting while running stops the exercise instead. The system clock
// delivers ticks on a background goroutine, so state is guarded and
// safe to read from the UI loop; set Observer before the first Toggle.
type Session struct {
	Clock    timers.Clock
	Observer Observer

	mu      sync.Mutex
	ticker  timers.Ticker
	elapsed int
	running bool
}

// Running reports whether a session is in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns seconds since the session started.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Toggle starts the exercise, or stops it when already running.
// It returns true when a session was started.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	if s.running {
		s.stopLocked()
		s.mu.Unlock()
		s.emitStop(false)
		return false
	}
	s.running = true
	s.elapsed = 0
	s.ticker = s.Clock.TickFunc(time.Second, s.tick)
	s.mu.Unlock()
	s.emitPhase(0)
	return true
}

// Stop cancels a running session. Stopping an idle session is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.stopLocked()
	s.mu.Unlock()
	s.emitStop(false)
}

func (s *Session) tick() {
	s.mu.Lock()
	if !s.running {
		// A tick delivered after cancellation must not mutate state.
		s.mu.Unlock()
		return
	}
	s.elapsed++
	if s.elapsed >= SessionSeconds {
		s.stopLocked()
		s.mu.Unlock()
		s.emitStop(true)
		return
	}
	elapsed := s.elapsed
	s.mu.Unlock()
	s.emitPhase(elapsed)
}

func (s *Session) stopLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.running = false
	s.elapsed = 0
}

// Observer callbacks run outside the lock so they may call back into
// the session.
func (s *Session) emitStop(completed bool) {
	if s.Observer.OnStop != nil {
		s.Observer.OnStop(completed)
	}
}

func (s *Session) emitPhase(elapsed int) {
	if s.Observer.OnPhase != nil {
		s.Observer.OnPhase(PhaseAt(elapsed), elapsed)
	}
}
