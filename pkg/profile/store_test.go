package profile

import (
	"context"
	"testing"
	"time"
)

func open(t *testing.T) Store {
	t.Helper()
	s, err := Open(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestGetHydratesDefaults(t *testing.T) {
	s := open(t)

	p, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Theme != ThemeLight {
		t.Fatalf("expected light theme default, got %q", p.Theme)
	}
	if p.Name != "" || p.Mood != "" {
		t.Fatalf("expected empty name and mood, got %q %q", p.Name, p.Mood)
	}
	if p.ReviewCount != 0 || p.ShareCount != 0 {
		t.Fatalf("expected zero counters")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s := open(t)

	visit := time.Date(2024, time.December, 1, 10, 30, 0, 0, time.UTC)
	in := Profile{
		Name:        "Ayesha",
		Theme:       ThemeDark,
		Mood:        "happy",
		MoodDate:    "2024-12-01",
		LastVisit:   visit,
		ReviewCount: 2,
		ShareCount:  5,
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != in.Name || out.Theme != in.Theme || out.Mood != in.Mood || out.MoodDate != in.MoodDate {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if !out.LastVisit.Equal(visit) {
		t.Fatalf("expected last visit %v, got %v", visit, out.LastVisit)
	}
	if out.ReviewCount != 2 || out.ShareCount != 5 {
		t.Fatalf("counter mismatch: %+v", out)
	}
}

func TestDraftsAreIndependentPerEditor(t *testing.T) {
	s := open(t)

	if err := s.SetDraft("free", "quiet thoughts"); err != nil {
		t.Fatalf("set draft: %v", err)
	}
	if err := s.SetDraft("share", "for others"); err != nil {
		t.Fatalf("set draft: %v", err)
	}

	free, err := s.Draft("free")
	if err != nil || free != "quiet thoughts" {
		t.Fatalf("expected free draft, got %q err %v", free, err)
	}
	share, _ := s.Draft("share")
	if share != "for others" {
		t.Fatalf("expected share draft, got %q", share)
	}

	if err := s.ClearDraft("free"); err != nil {
		t.Fatalf("clear draft: %v", err)
	}
	if got, _ := s.Draft("free"); got != "" {
		t.Fatalf("expected cleared draft, got %q", got)
	}
	if got, _ := s.Draft("share"); got != "for others" {
		t.Fatalf("clearing free must not touch share, got %q", got)
	}
}

func TestClearMissingDraftIsNoop(t *testing.T) {
	s := open(t)
	if err := s.ClearDraft("free"); err != nil {
		t.Fatalf("expected no error clearing absent draft, got %v", err)
	}
}

func TestStampRoundTrip(t *testing.T) {
	s := open(t)

	if _, ok := s.Stamp(StampLastCrisisAlert); ok {
		t.Fatalf("expected no stamp on fresh store")
	}
	at := time.Date(2024, time.December, 1, 9, 0, 0, 0, time.UTC)
	if err := s.SetStamp(StampLastCrisisAlert, at); err != nil {
		t.Fatalf("set stamp: %v", err)
	}
	got, ok := s.Stamp(StampLastCrisisAlert)
	if !ok || !got.Equal(at) {
		t.Fatalf("expected stamp %v, got %v ok=%v", at, got, ok)
	}
}

func TestHistoryRingEvictsOldest(t *testing.T) {
	s := open(t)

	base := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < HistoryCap+3; i++ {
		e := HistoryEntry{Page: "home", Action: "view", Timestamp: base.Add(time.Duration(i) * time.Minute)}
		if err := s.AppendHistory(e); err != nil {
			t.Fatalf("append history: %v", err)
		}
	}

	list := s.History()
	if len(list) != HistoryCap {
		t.Fatalf("expected %d entries, got %d", HistoryCap, len(list))
	}
	if want := base.Add(3 * time.Minute); !list[0].Timestamp.Equal(want) {
		t.Fatalf("expected oldest surviving entry %v, got %v", want, list[0].Timestamp)
	}
}

func TestWatchEmitsDraftChanges(t *testing.T) {
	s := open(t)

	// Seed the drafts directory so the watcher covers it from the start.
	if err := s.SetDraft("free", "seed"); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := s.SetDraft("free", "hello"); err != nil {
		t.Fatalf("set draft: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventDraftChanged && evt.Draft == "free" {
				return
			}
			if evt.Type == EventProfileChanged {
				// Directory creation can surface as a profile event first.
				continue
			}
		case <-deadline:
			t.Fatal("timed out waiting for draft change event")
		}
	}
}
