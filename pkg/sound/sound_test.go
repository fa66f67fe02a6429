package sound

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/hush/pkg/timers"
)

type playbackRecorder struct {
	started []Track
	stopped []Track
	fail    map[Track]error
}

func (r *playbackRecorder) Start(t Track) error {
	if err := r.fail[t]; err != nil {
		return err
	}
	r.started = append(r.started, t)
	return nil
}

func (r *playbackRecorder) Stop(t Track) {
	r.stopped = append(r.stopped, t)
}

func TestToggleStartsAndStops(t *testing.T) {
	clock := timers.NewFake(time.Now())
	rec := &playbackRecorder{}
	p := &Player{Clock: clock, Playback: rec}

	playing, err := p.Toggle(Rain)
	if err != nil || !playing {
		t.Fatalf("expected rain to start, got %v %v", playing, err)
	}
	if p.Active() != Rain {
		t.Fatalf("expected rain active, got %q", p.Active())
	}

	playing, err = p.Toggle(Rain)
	if err != nil || playing {
		t.Fatalf("expected rain to stop, got %v %v", playing, err)
	}
	if p.Active() != "" {
		t.Fatalf("expected silence, got %q", p.Active())
	}
}

func TestMutualExclusion(t *testing.T) {
	clock := timers.NewFake(time.Now())
	rec := &playbackRecorder{}
	p := &Player{Clock: clock, Playback: rec}

	_, _ = p.Toggle(Rain)
	playing, err := p.Toggle(Waves)
	if err != nil || !playing {
		t.Fatalf("expected waves to start, got %v %v", playing, err)
	}

	if p.Active() != Waves {
		t.Fatalf("expected exactly waves active, got %q", p.Active())
	}
	if len(rec.stopped) != 1 || rec.stopped[0] != Rain {
		t.Fatalf("expected rain stopped first, got %v", rec.stopped)
	}
}

func TestCeilingAutoStops(t *testing.T) {
	clock := timers.NewFake(time.Now())
	rec := &playbackRecorder{}
	p := &Player{Clock: clock, Playback: rec}

	_, _ = p.Toggle(Forest)
	clock.Advance(DefaultCeiling + time.Minute)

	if p.Active() != "" {
		t.Fatalf("expected auto-stop after ceiling, got %q", p.Active())
	}
	if len(rec.stopped) != 1 || rec.stopped[0] != Forest {
		t.Fatalf("expected forest stopped, got %v", rec.stopped)
	}
}

func TestStaleCeilingDoesNotStopReplacement(t *testing.T) {
	clock := timers.NewFake(time.Now())
	rec := &playbackRecorder{}
	p := &Player{Clock: clock, Playback: rec}

	_, _ = p.Toggle(Rain)
	clock.Advance(10 * time.Minute)
	_, _ = p.Toggle(Waves)

	// Rain's original ceiling window elapses; waves must keep playing
	// until its own ceiling.
	clock.Advance(21 * time.Minute)
	if p.Active() != Waves {
		t.Fatalf("stale ceiling stopped replacement, active %q", p.Active())
	}

	clock.Advance(10 * time.Minute)
	if p.Active() != "" {
		t.Fatalf("expected waves stopped by its own ceiling")
	}
}

func TestStartFailureLeavesSilence(t *testing.T) {
	clock := timers.NewFake(time.Now())
	rec := &playbackRecorder{fail: map[Track]error{Waves: errors.New("media unavailable")}}
	p := &Player{Clock: clock, Playback: rec}

	_, _ = p.Toggle(Rain)
	playing, err := p.Toggle(Waves)
	if err == nil || playing {
		t.Fatalf("expected start failure, got %v %v", playing, err)
	}
	if p.Active() != "" {
		t.Fatalf("failed start must leave nothing playing, got %q", p.Active())
	}
}

func TestUnknownTrackRejected(t *testing.T) {
	p := &Player{Clock: timers.NewFake(time.Now()), Playback: &playbackRecorder{}}
	if _, err := p.Toggle(Track("thunder")); err == nil {
		t.Fatalf("expected error for unknown track")
	}
}

func TestCustomCeiling(t *testing.T) {
	clock := timers.NewFake(time.Now())
	rec := &playbackRecorder{}
	p := &Player{Clock: clock, Playback: rec, Ceiling: 5 * time.Minute}

	_, _ = p.Toggle(Rain)
	clock.Advance(5*time.Minute + time.Second)
	if p.Active() != "" {
		t.Fatalf("expected custom ceiling to stop playback")
	}
}
