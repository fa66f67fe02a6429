package review

import (
	"context"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/timers"
)

// Entry is one rendered feed item. Likes start from the remote count;
// Like increments are display-only and never synced back.
type Entry struct {
	backend.Review
	Sample bool
}

// Feed holds the transient fetched snapshot of public reviews.
type Feed struct {
	Client *backend.Client
	Clock  timers.Clock

	entries []Entry
}

// Entries returns the current snapshot.
func (f *Feed) Entries() []Entry {
	return f.entries
}

// Refresh fetches the remote feed. A failed fetch or an empty result
// substitutes the built-in samples so the page is never empty; neither
// case is reported as an error.
func (f *Feed) Refresh(ctx context.Context) {
	fetched, err := f.Client.FetchReviews(ctx)
	if err != nil || len(fetched) == 0 {
		f.entries = Samples(f.Clock.Now())
		return
	}
	entries := make([]Entry, 0, len(fetched))
	for _, r := range fetched {
		entries = append(entries, Entry{Review: r})
	}
	f.entries = entries
}

// Like bumps the display-only helpful counter for entry i.
func (f *Feed) Like(i int) {
	if i < 0 || i >= len(f.entries) {
		return
	}
	f.entries[i].Likes++
}
