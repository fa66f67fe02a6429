// Package review handles anonymous review submission and the public
// feed. The feed never shows a bare error: a failed or empty fetch
// falls back to a built-in sample set.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

// MaxLen bounds review text, counted in runes.
const MaxLen = 500

// Privacy levels a review can be attributed under.
type Privacy string

const (
	PrivacyAnonymous Privacy = "anonymous"
	PrivacyNamed     Privacy = "named"
	PrivacyPublic    Privacy = "public"
)

// DefaultName attributes reviews whose author stayed nameless.
const DefaultName = "নামহীন ব্যক্তি"

// Validation failures, raised before any network attempt.
var (
	ErrEmpty   = errors.New("review: write something first")
	ErrTooLong = fmt.Errorf("review: keep it within %d characters", MaxLen)
)

// Submission is one outgoing review.
type Submission struct {
	Text    string
	Privacy Privacy
	Name    string
	Emoji   string
	Mood    string
}

type reviewPayload struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Privacy   string `json:"privacy"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Mood      string `json:"mood"`
	Timestamp string `json:"timestamp"`
}

// Reviews submits reviews and bumps the local counter on confirmed
// success.
type Reviews struct {
	Store  profile.Store
	Client *backend.Client
	Clock  timers.Clock
}

// Validate checks sub without touching the network.
func Validate(sub Submission) error {
	if sub.Text == "" {
		return ErrEmpty
	}
	if len([]rune(sub.Text)) > MaxLen {
		return ErrTooLong
	}
	return nil
}

// Submit validates and posts sub. The busy guard is released on every
// path. On confirmed success the local review counter is incremented.
func (r *Reviews) Submit(ctx context.Context, sub Submission, busy notify.Busy) error {
	if err := Validate(sub); err != nil {
		return err
	}

	name := sub.Name
	if sub.Privacy != PrivacyNamed || name == "" {
		name = DefaultName
	}
	emoji := sub.Emoji
	if emoji == "" {
		emoji = "😊"
	}

	err := notify.WhileBusy(busy, func() error {
		return r.Client.Post(ctx, reviewPayload{
			Type:      backend.TypeReview,
			Text:      sub.Text,
			Privacy:   string(sub.Privacy),
			Name:      name,
			Emoji:     emoji,
			Mood:      sub.Mood,
			Timestamp: r.Clock.Now().Format(time.RFC3339),
		})
	})
	if err != nil {
		return err
	}

	p, err := r.Store.Get()
	if err != nil {
		return err
	}
	p.ReviewCount++
	return r.Store.Save(p)
}
