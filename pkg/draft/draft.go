// Package draft implements the two draft-backed text editors: free
// writing (released locally, never transmitted) and sharing (optionally
// submitted to the remote backend). Text is autosaved to the profile
// store after a ten-second idle window; each keystroke restarts the
// window so only the final burst is ever persisted.
package draft

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

// Kind identifies an editor and keys its persisted draft.
type Kind string

const (
	KindFree  Kind = "free"
	KindShare Kind = "share"
)

// Privacy is the visibility chosen for a share submission. Only Public
// ever leaves the client.
type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyPublic  Privacy = "public"
)

// AutosaveDelay is the idle window before a draft is persisted.
const AutosaveDelay = 10 * time.Second

// ErrEmpty rejects operations that need content.
var ErrEmpty = errors.New("draft: nothing written yet")

// Stats describes the current writing session.
type Stats struct {
	Words   int
	Chars   int
	Elapsed time.Duration
}

// WordCount counts maximal whitespace-delimited non-empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Editor is one draft-backed text area. The autosave callback fires on
// a background goroutine under the system clock, so state is guarded.
type Editor struct {
	Kind  Kind
	Store profile.Store
	Clock timers.Clock

	mu        sync.Mutex
	text      string
	startedAt time.Time
	pending   timers.Timer
}

// Load hydrates the editor from its persisted draft.
func (e *Editor) Load() error {
	text, err := e.Store.Draft(string(e.Kind))
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.text = text
	e.mu.Unlock()
	return nil
}

// Text returns the current content.
func (e *Editor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// SetText replaces the content, stamps the first keystroke, and arms
// the debounced autosave. The previous pending save, if any, is
// cancelled so the latest text always wins.
func (e *Editor) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
	if e.startedAt.IsZero() && text != "" {
		e.startedAt = e.Clock.Now()
	}
	if e.pending != nil {
		e.pending.Stop()
	}
	e.pending = e.Clock.AfterFunc(AutosaveDelay, e.autosave)
}

func (e *Editor) autosave() {
	e.mu.Lock()
	e.pending = nil
	text := e.text
	e.mu.Unlock()
	_ = e.Store.SetDraft(string(e.Kind), text)
}

// Flush persists the draft immediately, cancelling any pending
// autosave. Console runners call it before exiting.
func (e *Editor) Flush() error {
	e.mu.Lock()
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	text := e.text
	e.mu.Unlock()
	return e.Store.SetDraft(string(e.Kind), text)
}

// Stats recomputes word, character, and elapsed-time figures.
func (e *Editor) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := Stats{
		Words: WordCount(e.text),
		Chars: len([]rune(e.text)),
	}
	if !e.startedAt.IsZero() {
		s.Elapsed = e.Clock.Now().Sub(e.startedAt)
	}
	return s
}

// Clear discards content, stats, and the persisted draft. Non-empty
// content requires confirmation; a declined confirm leaves everything
// untouched. It reports whether anything was cleared. The lock is not
// held across confirm, which may block on the user.
func (e *Editor) Clear(confirm func() bool) (bool, error) {
	if strings.TrimSpace(e.Text()) == "" {
		return false, nil
	}
	if confirm != nil && !confirm() {
		return false, nil
	}
	return true, e.reset()
}

func (e *Editor) reset() error {
	e.mu.Lock()
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.text = ""
	e.startedAt = time.Time{}
	e.mu.Unlock()
	return e.Store.ClearDraft(string(e.Kind))
}

// Export writes the current text as a UTF-8 .txt file in dir, named
// <kind>-<epoch-millis>.txt, and returns the path. Empty content is an
// ErrEmpty no-op.
func (e *Editor) Export(dir string) (string, error) {
	text := strings.TrimSpace(e.Text())
	if text == "" {
		return "", ErrEmpty
	}
	name := fmt.Sprintf("%s-%d.txt", e.Kind, e.Clock.Now().UnixMilli())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("draft: export: %w", err)
	}
	return path, nil
}

// Release is the free editor's local-only submission: the words are let
// go, never transmitted. Content and draft are cleared.
func (e *Editor) Release() error {
	if strings.TrimSpace(e.Text()) == "" {
		return ErrEmpty
	}
	return e.reset()
}

// ShareRequest carries everything a share submission needs.
type ShareRequest struct {
	Privacy Privacy
	Mood    string
	Client  *backend.Client
	Busy    notify.Busy
}

// sharePayload is the wire shape for public shares.
type sharePayload struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Privacy   string `json:"privacy"`
	Mood      string `json:"mood"`
	Timestamp string `json:"timestamp"`
}

// Share submits the content. Public privacy posts to the backend and
// reports transmitted=true on confirmed success; any other privacy
// stays local. Content and draft are cleared on every successful path,
// and the loading guard is released whatever the outcome.
func (e *Editor) Share(ctx context.Context, req ShareRequest) (transmitted bool, err error) {
	text := strings.TrimSpace(e.Text())
	if text == "" {
		return false, ErrEmpty
	}

	err = notify.WhileBusy(req.Busy, func() error {
		if req.Privacy != PrivacyPublic {
			return nil
		}
		return req.Client.Post(ctx, sharePayload{
			Type:      backend.TypePublicShare,
			Text:      text,
			Privacy:   string(req.Privacy),
			Mood:      req.Mood,
			Timestamp: e.Clock.Now().Format(time.RFC3339),
		})
	})
	if err != nil {
		return false, err
	}
	if req.Privacy == PrivacyPublic {
		if p, perr := e.Store.Get(); perr == nil {
			p.ShareCount++
			_ = e.Store.Save(p)
		}
	}
	return req.Privacy == PrivacyPublic, e.reset()
}
