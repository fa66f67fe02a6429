// Package app assembles the hush components into one Service. Every
// collaborator is constructed and wired here so the TUI and the CLI
// runners share the same graph and tests can substitute clocks, stores,
// and sinks.
package app

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/breath"
	"tableflip.dev/hush/pkg/draft"
	"tableflip.dev/hush/pkg/mood"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/request"
	"tableflip.dev/hush/pkg/review"
	"tableflip.dev/hush/pkg/router"
	"tableflip.dev/hush/pkg/safety"
	"tableflip.dev/hush/pkg/sound"
	"tableflip.dev/hush/pkg/timers"
)

// WelcomeBackAfter is how long an absence must be before the
// returning-visitor greeting fires instead of nothing.
const WelcomeBackAfter = 7 * 24 * time.Hour

// Service owns one wired instance of everything.
type Service struct {
	Store     profile.Store
	Clock     timers.Clock
	Presenter *notify.Presenter
	Router    *router.Router

	Moods     *mood.Tracker
	Breathing *breath.Session
	Free      *draft.Editor
	Share     *draft.Editor
	Monitor   *safety.Monitor
	Player    *sound.Player

	Backend  *backend.Client
	Reviews  *review.Reviews
	Feed     *review.Feed
	Requests *request.Requests
}

// Options carries the injectable seams. Zero values select production
// defaults.
type Options struct {
	Config   profile.Config
	Store    profile.Store
	Clock    timers.Clock
	Sink     notify.Sink
	Playback sound.Playback
	Effects  router.Effects
}

// New builds the full component graph.
func New(opts Options) (*Service, error) {
	if opts.Config == nil {
		var err error
		opts.Config, err = profile.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("app: load config: %w", err)
		}
	}
	if opts.Clock == nil {
		opts.Clock = timers.System()
	}
	if opts.Store == nil {
		store, err := profile.Open(opts.Config)
		if err != nil {
			return nil, fmt.Errorf("app: open store: %w", err)
		}
		opts.Store = store
	}
	if opts.Sink == nil {
		opts.Sink = &notify.Console{}
	}
	if opts.Playback == nil {
		opts.Playback = sound.Silent{}
	}

	client := backend.New(opts.Config.Backend())

	s := &Service{
		Store:     opts.Store,
		Clock:     opts.Clock,
		Presenter: notify.NewPresenter(opts.Clock, opts.Sink),
		Router:    router.New(opts.Effects),
		Moods:     &mood.Tracker{Store: opts.Store, Clock: opts.Clock},
		Breathing: &breath.Session{Clock: opts.Clock},
		Free:      &draft.Editor{Kind: draft.KindFree, Store: opts.Store, Clock: opts.Clock},
		Share:     &draft.Editor{Kind: draft.KindShare, Store: opts.Store, Clock: opts.Clock},
		Monitor:   &safety.Monitor{Store: opts.Store, Clock: opts.Clock},
		Player:    &sound.Player{Clock: opts.Clock, Playback: opts.Playback},
		Backend:   client,
		Reviews:   &review.Reviews{Store: opts.Store, Client: client, Clock: opts.Clock},
		Feed:      &review.Feed{Client: client, Clock: opts.Clock},
		Requests:  &request.Requests{Store: opts.Store, Client: client, Clock: opts.Clock},
	}

	s.Router.RecordWith(func(e router.HistoryEntry) {
		_ = opts.Store.AppendHistory(profile.HistoryEntry{
			Page:      string(e.Page),
			Action:    e.Action,
			Timestamp: opts.Clock.Now(),
		})
	})

	return s, nil
}

// Start greets the visitor, loads the drafts, and records the visit.
// First runs get the welcome message; a gap longer than WelcomeBackAfter
// gets the returning-visitor variant.
func (s *Service) Start(ctx context.Context) error {
	p, err := s.Store.Get()
	if err != nil {
		return fmt.Errorf("app: load profile: %w", err)
	}

	now := s.Clock.Now()
	if _, seen := s.Store.Stamp(profile.StampVisited); !seen {
		s.Presenter.Show(welcome(p.Name), notify.Info)
	} else if !p.LastVisit.IsZero() && now.Sub(p.LastVisit) > WelcomeBackAfter {
		s.Presenter.Show(welcomeBack(p.Name), notify.Info)
	}
	if err := s.Store.SetStamp(profile.StampVisited, now); err != nil {
		s.Presenter.Show("Could not record this visit.", notify.Warning)
	}
	p.LastVisit = now
	if err := s.Store.Save(p); err != nil {
		s.Presenter.Show("Could not save your profile.", notify.Warning)
	}

	if err := s.Free.Load(); err != nil {
		return fmt.Errorf("app: load draft: %w", err)
	}
	if err := s.Share.Load(); err != nil {
		return fmt.Errorf("app: load draft: %w", err)
	}
	return nil
}

// Inspect scans one text input through the crisis monitor and raises
// the resource as an error notification when it trips.
func (s *Service) Inspect(text string) (safety.Resource, bool) {
	r, hit := s.Monitor.Scan(text)
	if hit {
		s.Presenter.Show(r.Heading+" Call "+r.Helpline+".", notify.Error)
	}
	return r, hit
}

// Shutdown flushes unsaved drafts and quiets everything running.
func (s *Service) Shutdown() {
	_ = s.Free.Flush()
	_ = s.Share.Flush()
	s.Breathing.Stop()
	s.Player.StopAll()
}

func welcome(name string) string {
	if name == "" {
		return "Welcome. This is your quiet space."
	}
	return "Welcome, " + name + ". This is your quiet space."
}

func welcomeBack(name string) string {
	if name == "" {
		return "Welcome back. It is good to see you again."
	}
	return "Welcome back, " + name + ". It is good to see you again."
}
