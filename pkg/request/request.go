// Package request implements the session request form: client-side
// validation, structured submission to the remote backend, and the
// compose-an-email fallback when the backend is unreachable.
package request

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timers"
)

// ContactMethod selects which contact field is required. The two are
// mutually exclusive: only the selected method's field is validated.
type ContactMethod string

const (
	ContactTelegram ContactMethod = "telegram"
	ContactEmail    ContactMethod = "email"
)

// FallbackAddress receives the manual-contact email when the backend is
// down.
const FallbackAddress = "listener@hush.example"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the raw user input.
type Form struct {
	Name          string
	SessionType   string
	ContactMethod ContactMethod
	Telegram      string
	Email         string
	Message       string
	PreferredTime string
}

// ContactInfo returns the value for the selected contact method.
func (f Form) ContactInfo() string {
	if f.ContactMethod == ContactTelegram {
		return strings.TrimSpace(f.Telegram)
	}
	return strings.TrimSpace(f.Email)
}

// ValidationError aggregates every failed field so the binding layer
// can mark them all in one pass.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request: please fill in all required fields (%s)", strings.Join(e.Fields, ", "))
}

// Validate runs all checks before any network attempt.
func Validate(f Form) error {
	var bad []string
	if strings.TrimSpace(f.SessionType) == "" {
		bad = append(bad, "session-type")
	}
	switch f.ContactMethod {
	case ContactTelegram:
		if strings.TrimSpace(f.Telegram) == "" {
			bad = append(bad, "telegram")
		}
	case ContactEmail:
		if strings.TrimSpace(f.Email) == "" {
			bad = append(bad, "email")
		}
	default:
		bad = append(bad, "contact-method")
	}
	if email := strings.TrimSpace(f.Email); email != "" && !emailPattern.MatchString(email) {
		bad = append(bad, "email")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

type requestPayload struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	SessionType   string `json:"sessionType"`
	ContactMethod string `json:"contactMethod"`
	ContactInfo   string `json:"contactInfo"`
	Message       string `json:"message"`
	PreferredTime string `json:"preferredTime"`
	Timestamp     string `json:"timestamp"`
	Theme         string `json:"theme"`
	Page          string `json:"page"`
}

// Requests submits session requests.
type Requests struct {
	Store  profile.Store
	Client *backend.Client
	Clock  timers.Clock
}

// Submit validates and posts the form. Origin page and theme ride along
// so the listener knows where the request came from. On confirmed
// success the provided name is remembered and a redacted history entry
// is recorded. Transport failures surface as-is; callers should offer
// MailtoFallback next.
func (r *Requests) Submit(ctx context.Context, f Form, theme profile.Theme, page string, busy notify.Busy) error {
	if err := Validate(f); err != nil {
		return err
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "Anonymous"
	}

	err := notify.WhileBusy(busy, func() error {
		return r.Client.Post(ctx, requestPayload{
			Type:          backend.TypeSessionRequest,
			Name:          name,
			SessionType:   f.SessionType,
			ContactMethod: string(f.ContactMethod),
			ContactInfo:   f.ContactInfo(),
			Message:       strings.TrimSpace(f.Message),
			PreferredTime: strings.TrimSpace(f.PreferredTime),
			Timestamp:     r.Clock.Now().Format(time.RFC3339),
			Theme:         string(theme),
			Page:          page,
		})
	})
	if err != nil {
		return err
	}

	if name != "Anonymous" {
		p, perr := r.Store.Get()
		if perr == nil {
			p.Name = name
			_ = r.Store.Save(p)
		}
	}
	// The message stays private even in local history.
	_ = r.Store.AppendHistory(profile.HistoryEntry{
		Page:      page,
		Action:    backend.TypeSessionRequest,
		Timestamp: r.Clock.Now(),
	})
	return nil
}

// MailtoFallback composes a prefilled mailto URL so a failed submission
// still leaves the user a next step.
func MailtoFallback(f Form) string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "Anonymous"
	}
	or := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "None"
		}
		return strings.TrimSpace(v)
	}
	body := fmt.Sprintf("New session request:\n\nName: %s\nSession: %s\nContact: %s - %s\nPreferred time: %s\nMessage: %s",
		name, f.SessionType, f.ContactMethod, f.ContactInfo(), or(f.PreferredTime), or(f.Message))

	q := url.Values{}
	q.Set("subject", "Session Request - hush")
	q.Set("body", body)
	return "mailto:" + FallbackAddress + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

// IsValidation reports whether err is a client-side validation failure
// (never retried, never offered the mailto fallback).
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
