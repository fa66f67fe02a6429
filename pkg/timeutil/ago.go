package timeutil

import (
	"fmt"
	"time"
)

// Ago renders a relative label for ts as seen from now: "now" inside a
// minute, then minutes, hours, and days, and an absolute date once the
// entry is a week old.
func Ago(ts, now time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return ts.Local().Format("January 2, 2006")
	}
}

// FormatClock renders an elapsed duration as m:ss for writing-session
// stat lines.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// SameDay reports whether both instants fall on the same local calendar
// day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
