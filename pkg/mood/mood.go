// Package mood tracks the single daily mood selection. Exactly one
// mood value is valid per calendar day; a stored value from another day
// is cleared before it is ever shown.
package mood

import (
	"fmt"

	"tableflip.dev/hush/pkg/glyph"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

// Mood is one of the four daily mood values.
type Mood string

const (
	Happy   Mood = "happy"
	Neutral Mood = "neutral"
	Sad     Mood = "sad"
	Anxious Mood = "anxious"
)

// Values lists moods in display order.
func Values() []Mood {
	return []Mood{Happy, Neutral, Sad, Anxious}
}

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case Happy, Neutral, Sad, Anxious:
		return true
	}
	return false
}

// Glyph returns the emoji for m.
func (m Mood) Glyph() glyph.Glyph {
	return glyph.ForKey(string(m))
}

func (m Mood) String() string {
	return string(m)
}

const layoutISO = "2006-01-02"

// Tracker persists the daily selection through the profile store.
type Tracker struct {
	Store profile.Store
	Clock timers.Clock
}

// Select records m for today. Re-selecting the same value re-persists
// the same state; a different value replaces it and stamps today.
func (t *Tracker) Select(m Mood) error {
	if !m.Valid() {
		return fmt.Errorf("mood: unknown value %q", m)
	}
	p, err := t.Store.Get()
	if err != nil {
		return err
	}
	p.Mood = string(m)
	p.MoodDate = t.Clock.Now().Local().Format(layoutISO)
	return t.Store.Save(p)
}

// Current returns today's mood. A selection stamped on another day is
// cleared from the store before reporting no selection.
func (t *Tracker) Current() (Mood, bool, error) {
	p, err := t.Store.Get()
	if err != nil {
		return "", false, err
	}
	if p.Mood == "" {
		return "", false, nil
	}
	today := t.Clock.Now().Local().Format(layoutISO)
	if p.MoodDate != today {
		p.Mood = ""
		p.MoodDate = ""
		if err := t.Store.Save(p); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	m := Mood(p.Mood)
	if !m.Valid() {
		return "", false, nil
	}
	return m, true, nil
}

// CurrentOrNeutral is the value sent with remote submissions: today's
// mood when set, otherwise neutral.
func (t *Tracker) CurrentOrNeutral() Mood {
	m, ok, err := t.Current()
	if err != nil || !ok {
		return Neutral
	}
	return m
}
