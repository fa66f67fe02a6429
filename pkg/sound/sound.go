// Package sound enforces mutual exclusion over the fixed set of
// looping ambient tracks and caps playback with an auto-stop ceiling.
package sound

import (
	"fmt"
	"sync"
	"time"

	"tableflip.dev/hush/pkg/timers"
)

// Track is one ambient loop.
type Track string

const (
	Rain   Track = "rain"
	Waves  Track = "waves"
	Forest Track = "forest"
)

// Tracks lists the fixed set.
func Tracks() []Track {
	return []Track{Rain, Waves, Forest}
}

// Valid reports whether t is a known track.
func (t Track) Valid() bool {
	switch t {
	case Rain, Waves, Forest:
		return true
	}
	return false
}

// DefaultCeiling stops playback after thirty minutes.
const DefaultCeiling = 30 * time.Minute

// Playback starts and stops actual audio. Start failures leave the
// player in the "none playing" state.
type Playback interface {
	Start(t Track) error
	Stop(t Track)
}

// Silent is the no-audio Playback used when no audio device is wired.
// The player state machine still runs so toggles behave normally.
type Silent struct{}

func (Silent) Start(Track) error { return nil }
func (Silent) Stop(Track)        {}

// Player owns the exclusive-playback state machine. The ceiling timer
// fires on a background goroutine under the system clock, so state is
// guarded.
type Player struct {
	Clock    timers.Clock
	Playback Playback
	Ceiling  time.Duration

	mu      sync.Mutex
	active  Track
	ceiling timers.Timer
}

// Active returns the playing track, or "" when silent.
func (p *Player) Active() Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Toggle starts t, stopping whatever plays first. Toggling the active
// track stops it. It reports whether t is playing afterwards.
func (p *Player) Toggle(t Track) (bool, error) {
	if !t.Valid() {
		return false, fmt.Errorf("sound: unknown track %q", t)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == t {
		p.stopActiveLocked()
		return false, nil
	}
	if p.active != "" {
		p.stopActiveLocked()
	}
	if err := p.Playback.Start(t); err != nil {
		return false, fmt.Errorf("sound: start %s: %w", t, err)
	}
	p.active = t
	ceiling := p.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	p.ceiling = p.Clock.AfterFunc(ceiling, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		// Only the track that armed this timer may be stopped by it.
		if p.active == t {
			p.stopActiveLocked()
		}
	})
	return true, nil
}

// StopAll silences the player.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopActiveLocked()
}

func (p *Player) stopActiveLocked() {
	if p.ceiling != nil {
		p.ceiling.Stop()
		p.ceiling = nil
	}
	if p.active != "" {
		p.Playback.Stop(p.active)
		p.active = ""
	}
}
