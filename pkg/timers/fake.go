package timers

import (
	"sort"
	"time"
)

// Fake is a manually advanced Clock. Advance fires due callbacks on the
// calling goroutine in schedule order, so tests stay deterministic and
// never sleep.
type Fake struct {
	now  time.Time
	seq  int
	due  []*fakeEntry
	tick []*fakeTicker
}

// NewFake returns a Fake clock pinned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

type fakeEntry struct {
	at      time.Time
	seq     int
	f       func()
	stopped bool
}

func (e *fakeEntry) Stop() { e.stopped = true }

type fakeTicker struct {
	every   time.Duration
	next    time.Time
	f       func()
	stopped bool
}

func (t *fakeTicker) Stop() { t.stopped = true }

func (c *Fake) Now() time.Time { return c.now }

func (c *Fake) AfterFunc(d time.Duration, f func()) Timer {
	c.seq++
	e := &fakeEntry{at: c.now.Add(d), seq: c.seq, f: f}
	c.due = append(c.due, e)
	return e
}

func (c *Fake) TickFunc(d time.Duration, f func()) Ticker {
	t := &fakeTicker{every: d, next: c.now.Add(d), f: f}
	c.tick = append(c.tick, t)
	return t
}

// Advance moves the clock forward, firing timers and ticker callbacks
// whose deadlines fall inside the window, in time order.
func (c *Fake) Advance(d time.Duration) {
	end := c.now.Add(d)
	for {
		e, t := c.nextDue(end)
		switch {
		case e == nil && t == nil:
			c.now = end
			return
		case t == nil || (e != nil && !e.at.After(t.next)):
			c.now = e.at
			e.stopped = true
			e.f()
		default:
			c.now = t.next
			t.next = t.next.Add(t.every)
			t.f()
		}
	}
}

func (c *Fake) nextDue(end time.Time) (*fakeEntry, *fakeTicker) {
	live := c.due[:0]
	for _, e := range c.due {
		if !e.stopped {
			live = append(live, e)
		}
	}
	c.due = live
	sort.SliceStable(c.due, func(i, j int) bool {
		if c.due[i].at.Equal(c.due[j].at) {
			return c.due[i].seq < c.due[j].seq
		}
		return c.due[i].at.Before(c.due[j].at)
	})

	var e *fakeEntry
	if len(c.due) > 0 && !c.due[0].at.After(end) {
		e = c.due[0]
	}
	var t *fakeTicker
	for _, cand := range c.tick {
		if cand.stopped || cand.next.After(end) {
			continue
		}
		if t == nil || cand.next.Before(t.next) {
			t = cand
		}
	}
	return e, t
}
