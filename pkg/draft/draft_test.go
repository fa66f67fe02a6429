package draft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

func editor(t *testing.T, kind Kind, clock timers.Clock) (*Editor, profile.Store) {
	t.Helper()
	s, err := profile.Open(profile.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return &Editor{Kind: kind, Store: s, Clock: clock}, s
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two words", 2},
		{"  spaced   out\ttokens\nhere  ", 4},
		{"হ্যালো পৃথিবী", 2},
	}
	for _, tc := range cases {
		if got := WordCount(tc.text); got != tc.want {
			t.Fatalf("WordCount(%q): expected %d, got %d", tc.text, tc.want, got)
		}
	}
}

func TestAutosaveCoalescesKeystrokes(t *testing.T) {
	clock := timers.NewFake(time.Now())
	e, s := editor(t, KindFree, clock)

	e.SetText("f")
	clock.Advance(2 * time.Second)
	e.SetText("fi")
	clock.Advance(2 * time.Second)
	e.SetText("final")

	// Nothing persisted while keystrokes keep arriving.
	if got, _ := s.Draft("free"); got != "" {
		t.Fatalf("autosave fired early: %q", got)
	}

	clock.Advance(AutosaveDelay)
	if got, _ := s.Draft("free"); got != "final" {
		t.Fatalf("expected final text persisted once, got %q", got)
	}
}

func TestStatsElapsedFromFirstKeystroke(t *testing.T) {
	clock := timers.NewFake(time.Now())
	e, _ := editor(t, KindFree, clock)

	e.SetText("hello")
	clock.Advance(65 * time.Second)
	e.SetText("hello world")

	st := e.Stats()
	if st.Words != 2 {
		t.Fatalf("expected 2 words, got %d", st.Words)
	}
	if st.Chars != len([]rune("hello world")) {
		t.Fatalf("unexpected char count %d", st.Chars)
	}
	if st.Elapsed != 65*time.Second {
		t.Fatalf("expected 65s elapsed, got %v", st.Elapsed)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	clock := timers.NewFake(time.Now())
	e, s := editor(t, KindFree, clock)

	e.SetText("precious words")
	if err := e.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	cleared, err := e.Clear(func() bool { return false })
	if err != nil || cleared {
		t.Fatalf("declined confirm must not clear, got %v %v", cleared, err)
	}
	if e.Text() != "precious words" {
		t.Fatalf("text lost on declined clear")
	}

	cleared, err = e.Clear(func() bool { return true })
	if err != nil || !cleared {
		t.Fatalf("expected clear, got %v %v", cleared, err)
	}
	if e.Text() != "" {
		t.Fatalf("text not cleared")
	}
	if got, _ := s.Draft("free"); got != "" {
		t.Fatalf("draft not cleared: %q", got)
	}
	if st := e.Stats(); st.Elapsed != 0 {
		t.Fatalf("elapsed not reset: %v", st.Elapsed)
	}
}

func TestClearEmptyIsNoop(t *testing.T) {
	clock := timers.NewFake(time.Now())
	e, _ := editor(t, KindFree, clock)

	confirmed := false
	cleared, err := e.Clear(func() bool { confirmed = true; return true })
	if err != nil || cleared {
		t.Fatalf("empty clear must be a no-op, got %v %v", cleared, err)
	}
	if confirmed {
		t.Fatalf("must not ask confirmation for empty content")
	}
}

func TestExportWritesTimestampedFile(t *testing.T) {
	clock := timers.NewFake(time.Date(2024, time.December, 1, 12, 0, 0, 0, time.UTC))
	e, _ := editor(t, KindShare, clock)

	dir := t.TempDir()
	e.SetText("shared thoughts")
	path, err := e.Export(dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".txt") {
		t.Fatalf("unexpected path %q", path)
	}
	if !strings.Contains(path, "share-") {
		t.Fatalf("filename missing editor kind: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "shared thoughts" {
		t.Fatalf("unexpected file contents %q err %v", data, err)
	}
}

func TestExportEmptyFails(t *testing.T) {
	clock := timers.NewFake(time.Now())
	e, _ := editor(t, KindFree, clock)
	if _, err := e.Export(t.TempDir()); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestReleaseClearsDraft(t *testing.T) {
	clock := timers.NewFake(time.Now())
	e, s := editor(t, KindFree, clock)

	e.SetText("let it go")
	_ = e.Flush()

	if err := e.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if e.Text() != "" {
		t.Fatalf("text not cleared")
	}
	if got, _ := s.Draft("free"); got != "" {
		t.Fatalf("draft not cleared: %q", got)
	}
}

func TestSharePublicPostsAndClears(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	clock := timers.NewFake(time.Now())
	e, s := editor(t, KindShare, clock)
	e.SetText("হ্যালো")

	transmitted, err := e.Share(context.Background(), ShareRequest{
		Privacy: PrivacyPublic,
		Mood:    "neutral",
		Client:  backend.New(srv.URL),
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if !transmitted {
		t.Fatalf("expected public share to transmit")
	}
	if got["type"] != "public_share" || got["text"] != "হ্যালো" || got["privacy"] != "public" || got["mood"] != "neutral" {
		t.Fatalf("unexpected payload: %v", got)
	}
	if e.Text() != "" {
		t.Fatalf("editor not cleared after share")
	}
	if d, _ := s.Draft("share"); d != "" {
		t.Fatalf("draft not cleared after share")
	}
	p, err := s.Get()
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if p.ShareCount != 1 {
		t.Fatalf("ShareCount = %d, want 1 after a confirmed public share", p.ShareCount)
	}
}

func TestSharePrivateNeverTransmits(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	clock := timers.NewFake(time.Now())
	e, s := editor(t, KindShare, clock)
	e.SetText("only for me")

	transmitted, err := e.Share(context.Background(), ShareRequest{
		Privacy: PrivacyPrivate,
		Mood:    "sad",
		Client:  backend.New(srv.URL),
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if transmitted {
		t.Fatalf("private share must not transmit")
	}
	if calls != 0 {
		t.Fatalf("private share hit the network %d times", calls)
	}
	if e.Text() != "" {
		t.Fatalf("editor not cleared after private share")
	}
	p, err := s.Get()
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if p.ShareCount != 0 {
		t.Fatalf("ShareCount = %d, want 0 after a private share", p.ShareCount)
	}
}

func TestShareBackendFailureKeepsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	clock := timers.NewFake(time.Now())
	e, _ := editor(t, KindShare, clock)
	e.SetText("keep me")

	busy := &busyRecorder{}
	_, err := e.Share(context.Background(), ShareRequest{
		Privacy: PrivacyPublic,
		Mood:    "neutral",
		Client:  backend.New(srv.URL),
		Busy:    busy,
	})
	if !errors.Is(err, backend.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if e.Text() != "keep me" {
		t.Fatalf("failed share must not discard content")
	}
	if busy.begin != 1 || busy.end != 1 {
		t.Fatalf("loading guard not balanced: begin=%d end=%d", busy.begin, busy.end)
	}
}

type busyRecorder struct {
	begin, end int
}

func (b *busyRecorder) Begin() { b.begin++ }
func (b *busyRecorder) End()   { b.end++ }
