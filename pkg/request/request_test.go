package request

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

func requests(t *testing.T, url string) (*Requests, profile.Store) {
	t.Helper()
	s, err := profile.Open(profile.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return &Requests{
		Store:  s,
		Client: backend.New(url),
		Clock:  timers.NewFake(time.Date(2024, time.December, 1, 12, 0, 0, 0, time.UTC)),
	}, s
}

func valid() Form {
	return Form{
		Name:          "Rafi",
		SessionType:   "listening",
		ContactMethod: ContactTelegram,
		Telegram:      "@rafi",
		PreferredTime: "evenings",
	}
}

func TestValidateAggregatesMissingFields(t *testing.T) {
	err := Validate(Form{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	joined := strings.Join(ve.Fields, ",")
	if !strings.Contains(joined, "session-type") || !strings.Contains(joined, "contact-method") {
		t.Fatalf("expected aggregated fields, got %v", ve.Fields)
	}
}

func TestValidateContactMethodExclusivity(t *testing.T) {
	f := valid()
	f.ContactMethod = ContactEmail
	f.Telegram = ""
	f.Email = "rafi@example.com"
	if err := Validate(f); err != nil {
		t.Fatalf("email-only contact should validate, got %v", err)
	}

	f.Email = ""
	err := Validate(f)
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) != 1 || ve.Fields[0] != "email" {
		t.Fatalf("expected email to be the single failed field, got %v", err)
	}
}

func TestValidateEmailShape(t *testing.T) {
	f := valid()
	f.ContactMethod = ContactEmail
	f.Email = "not-an-email"
	if err := Validate(f); !IsValidation(err) {
		t.Fatalf("expected validation failure for malformed email, got %v", err)
	}

	f.Email = "x@y.z"
	if err := Validate(f); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
}

func TestSubmitPostsStructuredPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	r, s := requests(t, srv.URL)
	err := r.Submit(context.Background(), valid(), profile.ThemeDark, "sessions", nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got["type"] != "session_request" || got["contactInfo"] != "@rafi" {
		t.Fatalf("unexpected payload: %v", got)
	}
	if got["theme"] != "dark" || got["page"] != "sessions" {
		t.Fatalf("expected theme and origin page, got %v", got)
	}

	p, _ := s.Get()
	if p.Name != "Rafi" {
		t.Fatalf("expected name remembered, got %q", p.Name)
	}
	history := s.History()
	if len(history) != 1 || history[0].Action != "session_request" {
		t.Fatalf("expected one history entry, got %+v", history)
	}
}

func TestSubmitValidationSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	r, _ := requests(t, srv.URL)
	if err := r.Submit(context.Background(), Form{}, profile.ThemeLight, "home", nil); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("validation failure must not hit the network")
	}
}

func TestSubmitFailureSurfacesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r, s := requests(t, srv.URL)
	if err := r.Submit(context.Background(), valid(), profile.ThemeLight, "sessions", nil); !errors.Is(err, backend.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(s.History()) != 0 {
		t.Fatalf("failed submit must not record history")
	}
}

func TestMailtoFallback(t *testing.T) {
	u := MailtoFallback(valid())
	if !strings.HasPrefix(u, "mailto:"+FallbackAddress+"?") {
		t.Fatalf("unexpected mailto prefix: %s", u)
	}
	if !strings.Contains(u, "Session%20Request") {
		t.Fatalf("expected subject in url: %s", u)
	}
	if !strings.Contains(u, "%40rafi") {
		t.Fatalf("expected contact info in body: %s", u)
	}
}
