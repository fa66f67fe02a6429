// Package router maps an opaque page identifier to the single visible
// view and keeps it in sync with a shareable location fragment.
package router

import (
	"errors"
	"fmt"
)

// Page identifies one view in the closed page set.
type Page string

const (
	Home       Page = "home"
	About      Page = "about"
	HowItWorks Page = "how-it-works"
	Sessions   Page = "sessions"
	Reviews    Page = "reviews"
	Share      Page = "share"
	Resources  Page = "resources"
	Start      Page = "start"
)

// Pages lists the closed set in navigation order.
func Pages() []Page {
	return []Page{Home, About, HowItWorks, Sessions, Reviews, Share, Resources, Start}
}

// Valid reports whether p is a member of the closed set.
func (p Page) Valid() bool {
	for _, known := range Pages() {
		if p == known {
			return true
		}
	}
	return false
}

// ErrUnknownPage rejects navigation to identifiers outside the set.
var ErrUnknownPage = errors.New("router: unknown page")

// Effects receives the side effects of a completed transition. All
// methods are optional fine-grained hooks for the binding layer; the
// core never depends on what they do.
type Effects interface {
	SetFragment(p Page)
	CloseOverlay()
	ScrollTop()
}

// EnterHook runs after navigating onto a page. The reviews page uses it
// to kick off the asynchronous feed refresh.
type EnterHook func(p Page)

// Router is the page state machine.
type Router struct {
	current Page
	effects Effects
	onEnter map[Page][]EnterHook
	history func(HistoryEntry)
}

// HistoryEntry records a page view for the session history ring.
type HistoryEntry struct {
	Page   Page
	Action string
}

// New builds a router starting on home. effects may be nil.
func New(effects Effects) *Router {
	return &Router{
		current: Home,
		effects: effects,
		onEnter: make(map[Page][]EnterHook),
	}
}

// OnEnter registers a hook fired after entering p.
func (r *Router) OnEnter(p Page, hook EnterHook) {
	r.onEnter[p] = append(r.onEnter[p], hook)
}

// RecordWith wires a sink for page-view history entries.
func (r *Router) RecordWith(record func(HistoryEntry)) {
	r.history = record
}

// Current returns the active page.
func (r *Router) Current() Page {
	return r.current
}

// Navigate transitions to p. Unknown pages are rejected; navigating to
// the active page is a no-op with no side effects.
func (r *Router) Navigate(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}
	if p == r.current {
		return nil
	}

	r.current = p
	if r.effects != nil {
		r.effects.SetFragment(p)
		r.effects.CloseOverlay()
		r.effects.ScrollTop()
	}
	if r.history != nil {
		r.history(HistoryEntry{Page: p, Action: "view"})
	}
	for _, hook := range r.onEnter[p] {
		hook(p)
	}
	return nil
}

// HandleFragment applies a location fragment change. Empty or unknown
// fragments land on home.
func (r *Router) HandleFragment(frag string) {
	p := Page(frag)
	if !p.Valid() {
		p = Home
	}
	_ = r.Navigate(p)
}
