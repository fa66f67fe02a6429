// Package notify presents transient user-facing messages. At most one
// notification is visible at a time; a new message replaces the current
// one rather than queueing behind it.
package notify

import (
	"sync"
	"time"

	"tableflip.dev/hush/pkg/timers"
)

// Severity classifies a notification.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Notification is one message with its severity.
type Notification struct {
	Message  string
	Severity Severity
}

// Sink renders notifications. Show is called when a notification
// becomes active, Clear when it is dismissed or replaced.
type Sink interface {
	Show(n Notification)
	Clear()
}

// DismissAfter is how long a notification stays visible.
const DismissAfter = 5 * time.Second

// Presenter owns the single active notification and its dismiss timer.
// The dismiss fires on a background goroutine under the system clock,
// so state is guarded.
type Presenter struct {
	clock timers.Clock
	sink  Sink

	mu      sync.Mutex
	active  *Notification
	dismiss timers.Timer
}

// NewPresenter builds a presenter over the given clock and sink. A nil
// sink is tolerated; notifications are still tracked for Active.
func NewPresenter(clock timers.Clock, sink Sink) *Presenter {
	return &Presenter{clock: clock, sink: sink}
}

// Show replaces any active notification and arms the dismiss timer.
func (p *Presenter) Show(message string, sev Severity) {
	n := Notification{Message: message, Severity: sev}
	p.mu.Lock()
	if p.dismiss != nil {
		p.dismiss.Stop()
	}
	p.active = &n
	// The timer may only dismiss the notification it was armed for.
	p.dismiss = p.clock.AfterFunc(DismissAfter, func() { p.clear(&n) })
	p.mu.Unlock()
	if p.sink != nil {
		p.sink.Show(n)
	}
}

// Active returns the currently visible notification, if any.
func (p *Presenter) Active() (Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		return Notification{}, false
	}
	return *p.active, true
}

func (p *Presenter) clear(n *Notification) {
	p.mu.Lock()
	if p.active != n {
		p.mu.Unlock()
		return
	}
	p.active = nil
	p.dismiss = nil
	p.mu.Unlock()
	if p.sink != nil {
		p.sink.Clear()
	}
}
