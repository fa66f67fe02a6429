// Package profile owns the durable user profile: name, theme, daily
// mood, counters, drafts, and the session history ring. All mutation
// goes through the Store so every write is a synchronous flush.
package profile

import (
	"time"
)

// Theme is the two-value visual mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Profile is the durable user state. Mood is the raw stored value; the
// mood package interprets it together with MoodDate.
type Profile struct {
	Name        string    `json:"name"`
	Theme       Theme     `json:"theme"`
	Mood        string    `json:"mood,omitempty"`
	MoodDate    string    `json:"moodDate,omitempty"`
	LastVisit   time.Time `json:"lastVisit,omitempty"`
	ReviewCount int       `json:"reviewCount"`
	ShareCount  int       `json:"shareCount"`
}

// Defaults hydrates missing fields for a first run.
func (p *Profile) Defaults() {
	if !p.Theme.Valid() {
		p.Theme = ThemeLight
	}
	if p.ReviewCount < 0 {
		p.ReviewCount = 0
	}
	if p.ShareCount < 0 {
		p.ShareCount = 0
	}
}

// HistoryEntry is one element of the bounded session history ring.
type HistoryEntry struct {
	Page      string    `json:"page"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryCap bounds the session history; the oldest entry is evicted
// once the ring is full.
const HistoryCap = 50

// Well-known stamp keys.
const (
	StampLastCrisisAlert = "lastCrisisAlert"
	StampVisited         = "visited"
)
