package timers

import (
	"testing"
	"time"
)

func TestFakeAfterFuncFiresInOrder(t *testing.T) {
	c := NewFake(time.Date(2024, time.December, 1, 8, 0, 0, 0, time.UTC))

	var got []string
	c.AfterFunc(3*time.Second, func() { got = append(got, "b") })
	c.AfterFunc(1*time.Second, func() { got = append(got, "a") })

	c.Advance(5 * time.Second)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestFakeStopCancelsPending(t *testing.T) {
	c := NewFake(time.Now())

	fired := false
	h := c.AfterFunc(time.Second, func() { fired = true })
	h.Stop()
	c.Advance(2 * time.Second)

	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestFakeStopIsIdempotent(t *testing.T) {
	c := NewFake(time.Now())
	h := c.AfterFunc(time.Second, func() {})
	h.Stop()
	h.Stop()
}

func TestFakeTickerFiresEachInterval(t *testing.T) {
	c := NewFake(time.Now())

	count := 0
	tk := c.TickFunc(time.Second, func() { count++ })
	c.Advance(3 * time.Second)
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}

	tk.Stop()
	c.Advance(3 * time.Second)
	if count != 3 {
		t.Fatalf("ticker fired after stop, count %d", count)
	}
}

func TestFakeAdvanceMovesNow(t *testing.T) {
	start := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	c := NewFake(start)
	c.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !c.Now().Equal(want) {
		t.Fatalf("expected now %v, got %v", want, c.Now())
	}
}

func TestFakeCallbackSeesAdvancedNow(t *testing.T) {
	start := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	c := NewFake(start)

	var at time.Time
	c.AfterFunc(10*time.Second, func() { at = c.Now() })
	c.Advance(time.Minute)

	if want := start.Add(10 * time.Second); !at.Equal(want) {
		t.Fatalf("callback saw %v, want %v", at, want)
	}
}
