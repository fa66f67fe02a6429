// Package safety scans free-text input for crisis keywords and
// surfaces the helpline resource, rate-limited so a writing session is
// never interrupted twice inside the cool-down window.
package safety

import (
	"strings"
	"time"

	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

// Cooldown suppresses repeat alerts after one has been shown.
const Cooldown = 5 * time.Minute

// Helpline is the fixed direct-dial crisis number (Bangladesh national
// helpline).
const Helpline = "333"

// keywords is the fixed multilingual crisis term list. Matching is
// case-insensitive containment.
var keywords = []string{
	"আত্মহত্যা", "মারা যাই", "মরতে", "খুন", "হত্যা", "মারি",
	"suicide", "kill", "die", "dead", "end my life", "want to die",
}

// Resource is the informational crisis overlay content. It carries no
// automatic escalation: just a dismissal and a direct-dial option.
type Resource struct {
	Heading  string
	Body     string
	Helpline string
}

// DefaultResource returns the overlay content.
func DefaultResource() Resource {
	return Resource{
		Heading:  "Need urgent support?",
		Body:     "If you are worried about your own or someone else's safety, please reach out right now.",
		Helpline: Helpline,
	}
}

// Matches reports whether text contains any crisis keyword.
func Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Monitor rate-limits crisis alerts using a persisted last-shown stamp.
type Monitor struct {
	Store profile.Store
	Clock timers.Clock
}

// Scan inspects one input event. It returns the crisis resource when a
// keyword matches outside the cool-down window, stamping the window as
// it does; otherwise it returns nothing.
func (m *Monitor) Scan(text string) (Resource, bool) {
	if !Matches(text) {
		return Resource{}, false
	}
	now := m.Clock.Now()
	if last, ok := m.Store.Stamp(profile.StampLastCrisisAlert); ok {
		if now.Sub(last) < Cooldown {
			return Resource{}, false
		}
	}
	_ = m.Store.SetStamp(profile.StampLastCrisisAlert, now)
	return DefaultResource(), true
}
